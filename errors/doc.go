// Package errors provides structured error types for the plbin module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type name, offending value and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("TypeDefs", "Class", "Methods").
//		GoType("assembly.Method").
//		Detail("duplicate key %q", name).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ShortRead(8, 3, 120)
//	err := errors.EnumOutOfBounds("attrs.Visibility", 9)
//
// All errors implement the standard error interface and support errors.Is/As.
// Match builds a phase-agnostic sentinel for errors.Is:
//
//	if errors.Is(err, plerrors.Match(plerrors.KindShortRead)) { ... }
package errors
