// Package errors provides structured error types for the binding.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: symbol path, Go/JS type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseProperty, errors.KindTypeMismatch).
//		Path("sprite", "rotation").
//		GoType("float64").
//		JSType("string").
//		Detail("cannot convert string to number").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseProperty, path, "float64", "string")
//	err := errors.SymbolMissing("PIXI", "Application")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
