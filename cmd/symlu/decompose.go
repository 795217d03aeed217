package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symlu/lu"
	"github.com/katalvlaran/symlu/matrix"
)

var errVerify = errors.New("verification failed")

func newDecomposeCmd(a *app) *cobra.Command {
	var (
		inline string
		file   string
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Factor a square matrix into L and U",
		Long: `Factor a square matrix A into unit lower-triangular L and upper-triangular U
and print A, L and U.

Examples:
  symlu decompose                                   # built-in 3x3 demo
  symlu decompose --matrix "1,-1,0;2,2,3;-1,3,2"
  symlu decompose -f a.yaml --field decimal --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDecompose(cmd.OutOrStdout(), cmd.ErrOrStderr(), inline, file, verify)
		},
	}

	cmd.Flags().StringVarP(&inline, "matrix", "m", "", `Inline matrix, rows split by ';' (e.g. "4,3;6,3")`)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Matrix file (.toml, .yaml, .yml) with a 'matrix' key")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check L·U = A and compare with a numeric Doolittle factorization")

	return cmd
}

func (a *app) runDecompose(out, logOut io.Writer, inline, file string, verify bool) error {
	logger, err := newLogger(logOut, a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	f, err := a.field()
	if err != nil {
		return err
	}
	m, err := loadMatrix(f, inline, file)
	if err != nil {
		return err
	}
	logger.Info("decomposing", "size", describe(m), "field", string(f.Kind()))

	l, u, err := lu.Decompose(m, lu.WithLogger(logger))
	if err != nil {
		return err
	}

	opts := a.formatOptions()
	for _, part := range []struct {
		title string
		m     matrix.Matrix
	}{
		{"Given:", m},
		{"Lower Triangular Matrix:", l},
		{"Upper Triangular Matrix:", u},
	} {
		if _, err = fmt.Fprintln(out, part.title); err != nil {
			return err
		}
		if err = matrix.Format(out, part.m, opts...); err != nil {
			return err
		}
	}

	if verify {
		if err = crossCheck(m, l, u); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, "Verified: L·U = A, matches Doolittle")
	}

	return err
}

// crossCheck confirms L·U reproduces A and agrees with the numeric factors.
func crossCheck(a, l, u matrix.Matrix) error {
	prod, err := matrix.Mul(l, u)
	if err != nil {
		return err
	}
	if ok, err := matrix.EqualApprox(prod, a); err != nil || !ok {
		return fmt.Errorf("L·U differs from A: %w", errors.Join(errVerify, err))
	}

	dl, du, err := lu.Doolittle(a)
	if err != nil {
		return err
	}
	okL, err := matrix.EqualApprox(dl, l)
	if err != nil {
		return err
	}
	okU, err := matrix.EqualApprox(du, u)
	if err != nil {
		return err
	}
	if !okL || !okU {
		return fmt.Errorf("factors differ from Doolittle: %w", errVerify)
	}

	return nil
}
