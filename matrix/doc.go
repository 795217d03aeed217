// Package matrix offers dense matrices over a field.Field and the kernels
// needed to check a factorization.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix of field.Value with bounds-checked At/Set.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSameShape,
//     ValidateMulCompatible) returning tagged sentinel errors.
//   - Kernels: Mul, EqualApprox, IsUnitLower, IsUpper.
//   - Format / FormatPoly, the text presentation used by the CLI: tab-separated
//     rows with a fixed number of significant digits and near-zero snapping.
//
// Entries of one matrix always belong to one field; mixing the float and
// decimal backends is rejected with ErrMixedFields.
package matrix
