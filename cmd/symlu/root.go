package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/matrix"
)

const envPrefix = "SYMLU"

// settings is the effective configuration shared by all subcommands.
type settings struct {
	Field     string  `mapstructure:"field"`
	Epsilon   float64 `mapstructure:"epsilon"`
	Precision int     `mapstructure:"precision"`
	LogLevel  string  `mapstructure:"log-level"`
	LogFormat string  `mapstructure:"log-format"`
}

// app carries the loaded settings from PersistentPreRunE to the subcommands.
type app struct {
	v   *viper.Viper
	cfg settings
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "symlu",
		Short: "Symbolic LU decomposition",
		Long: `symlu factors a square matrix A into a unit lower-triangular L and an
upper-triangular U by treating every factor entry as an unknown, expanding
L·U symbolically and solving one unknown per cell in row-major order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Settings file (toml, yaml or json)")
	pf.String("field", string(field.KindFloat), "Numeric field: float or decimal")
	pf.Float64("epsilon", field.DefaultEpsilon, "Zero tolerance of the float field")
	pf.Int("precision", matrix.DefaultPrecision, "Significant digits when printing")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")

	root.AddCommand(newDecomposeCmd(a), newExpandCmd(a))

	return root
}

// load merges flags, SYMLU_* environment variables and an optional config
// file into a.cfg.
func (a *app) load(cmd *cobra.Command) error {
	v := a.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}
	if a.cfg.Precision < 1 {
		return fmt.Errorf("precision must be at least 1, got %d", a.cfg.Precision)
	}

	return nil
}

// field builds the configured numeric backend.
func (a *app) field() (field.Field, error) {
	if a.cfg.Epsilon < 0 {
		return nil, fmt.Errorf("epsilon must be non-negative, got %g", a.cfg.Epsilon)
	}

	return field.New(field.Kind(a.cfg.Field), field.WithEpsilon(a.cfg.Epsilon))
}

func (a *app) formatOptions() []matrix.FormatOption {
	return []matrix.FormatOption{matrix.WithPrecision(a.cfg.Precision)}
}
