// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"io"
	"log/slog"
)

// Factor tags which triangular factor an unknown belongs to.
type Factor byte

const (
	FactorL Factor = 'L'
	FactorU Factor = 'U'
)

// NameFunc names the unknown seeded for cell (i, j) (zero-based) of factor k.
type NameFunc func(k Factor, i, j int) string

const (
	panicLoggerNil = "lu: WithLogger: logger must be non-nil"
	panicNamingNil = "lu: WithNaming: naming function must be non-nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective solver configuration.
type Options struct {
	logger *slog.Logger
	naming NameFunc
}

// WithLogger routes solver tracing to l. Phase summaries log at Info,
// individual resolutions at Debug.
//
// Errors:
//   - Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithNaming replaces DefaultNaming.
//
// Errors:
//   - Panics on a nil function.
func WithNaming(fn NameFunc) Option {
	if fn == nil {
		panic(panicNamingNil)
	}

	return func(o *Options) { o.naming = fn }
}

// DefaultNaming returns a NameFunc producing 1-based names: "L21", "U33" for
// matrices below 10×10 and "L12_3" style names from 10×10 up, so every cell
// keeps a distinct name.
func DefaultNaming(n int) NameFunc {
	if n < 10 {
		return func(k Factor, i, j int) string { return fmt.Sprintf("%c%d%d", k, i+1, j+1) }
	}

	return func(k Factor, i, j int) string { return fmt.Sprintf("%c%d_%d", k, i+1, j+1) }
}

func gatherOptions(n int, user ...Option) Options {
	o := Options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		naming: DefaultNaming(n),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
