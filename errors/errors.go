package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in the binding the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // script fetching and evaluation
	PhaseResolve  Phase = "resolve"  // namespace member lookup
	PhaseProperty Phase = "property" // property reads and writes
	PhaseCall     Phase = "call"     // function and method invocation
	PhaseCallback Phase = "callback" // foreign-to-host callback dispatch
	PhaseRuntime  Phase = "runtime"  // engine lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindLoadFailed     Kind = "load_failed"
	KindSymbolMissing  Kind = "symbol_missing"
	KindTypeMismatch   Kind = "type_mismatch"
	KindStaleReference Kind = "stale_reference"
	KindCallFailed     Kind = "call_failed"
	KindInvalidInput   Kind = "invalid_input"
	KindClosed         Kind = "closed"
)

// Error is the structured error type used throughout the binding
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	JSType string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.JSType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.JSType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", JS type ")
			b.WriteString(e.JSType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("JS type ")
			b.WriteString(e.JSType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.JSType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the member path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// JSType sets the JavaScript type name
func (b *Builder) JSType(t string) *Builder {
	b.err.JSType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Load creates a script loading error carrying the foreign diagnostic as cause
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindLoadFailed,
		Detail: detail,
		Cause:  cause,
	}
}

// SymbolMissing creates a missing-symbol error for an unresolved member path
func SymbolMissing(path ...string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindSymbolMissing,
		Path:   path,
		Detail: "symbol not found",
	}
}

// TypeMismatch creates a conversion error naming both sides of the failed cast
func TypeMismatch(phase Phase, path []string, goType, jsType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		GoType: goType,
		JSType: jsType,
	}
}

// StaleReference creates an error for use of an invalid or released handle
func StaleReference(phase Phase, path []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStaleReference,
		Path:   path,
		Detail: "reference is no longer valid",
	}
}

// CallFailed creates an invocation error carrying the thrown value as cause
func CallFailed(path []string, cause error) *Error {
	return &Error{
		Phase: PhaseCall,
		Kind:  KindCallFailed,
		Path:  path,
		Cause: cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed creates an error for operations after shutdown
func Closed(component string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", component),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Category predicates. Each inspects the outermost *Error in the chain, so a
// call failure wrapping a conversion still classifies as a call failure.

func matchKind(err error, k Kind) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == k
}

// IsLoad reports whether err is a script loading failure
func IsLoad(err error) bool { return matchKind(err, KindLoadFailed) }

// IsSymbolMissing reports whether err is an unresolved-symbol failure
func IsSymbolMissing(err error) bool { return matchKind(err, KindSymbolMissing) }

// IsTypeMismatch reports whether err is a value conversion failure
func IsTypeMismatch(err error) bool { return matchKind(err, KindTypeMismatch) }

// IsStaleReference reports whether err is a use of an invalid handle
func IsStaleReference(err error) bool { return matchKind(err, KindStaleReference) }

// IsCallFailed reports whether err is a foreign invocation failure
func IsCallFailed(err error) bool { return matchKind(err, KindCallFailed) }
