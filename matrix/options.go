// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text presentation layer.
// This file defines:
//   - FormatOption / FormatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits printed per entry.
	DefaultPrecision = 3

	// DefaultSeparator separates the entries of one row.
	DefaultSeparator = "\t"

	// DefaultSnapZero prints entries that are zero under the field's test as "0".
	DefaultSnapZero = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: digits must be >= 1"
	panicSeparatorInvalid = "matrix: WithSeparator: separator must be non-empty"
)

// FormatOption mutates internal format options.
type FormatOption func(*FormatOptions)

// FormatOptions stores the effective presentation configuration.
type FormatOptions struct {
	precision int    // >= 1; DefaultPrecision
	separator string // non-empty; DefaultSeparator
	snapZero  bool   // DefaultSnapZero
}

// WithPrecision sets the number of significant digits.
//
// Errors:
//   - Panics when digits < 1.
func WithPrecision(digits int) FormatOption {
	if digits < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *FormatOptions) { o.precision = digits }
}

// WithSeparator replaces the tab between entries.
//
// Errors:
//   - Panics on an empty separator.
func WithSeparator(sep string) FormatOption {
	if sep == "" {
		panic(panicSeparatorInvalid)
	}

	return func(o *FormatOptions) { o.separator = sep }
}

// WithoutZeroSnap prints near-zero float entries as computed (e.g. "1e-17").
func WithoutZeroSnap() FormatOption {
	return func(o *FormatOptions) { o.snapZero = false }
}

// gatherFormatOptions applies setters on top of defaults (last-writer-wins).
func gatherFormatOptions(user ...FormatOption) FormatOptions {
	o := FormatOptions{
		precision: DefaultPrecision,
		separator: DefaultSeparator,
		snapZero:  DefaultSnapZero,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
