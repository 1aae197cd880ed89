package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseProperty,
				Kind:   KindTypeMismatch,
				Path:   []string{"app", "screen", "width"},
				GoType: "float64",
				JSType: "string",
				Detail: "cannot convert",
			},
			contains: []string{"[property]", "type_mismatch", "app.screen.width", "float64", "string", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindSymbolMissing,
			},
			contains: []string{"[resolve]", "symbol_missing"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindLoadFailed,
				Detail: "evaluate script",
				Cause:  errors.New("SyntaxError: unexpected token"),
			},
			contains: []string{"[load]", "load_failed", "evaluate script", "caused by", "SyntaxError"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseCall,
		Kind:  KindCallFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseProperty,
		Kind:  KindTypeMismatch,
		Path:  []string{"rotation"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseProperty, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseCall, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseProperty, Kind: KindStaleReference}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseProperty, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCall, KindTypeMismatch).
		Path("ticker", "add").
		GoType("float64").
		JSType("undefined").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "number", "undefined").
		Build()

	if err.Phase != PhaseCall {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCall)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "ticker" || err.Path[1] != "add" {
		t.Errorf("Path = %v, want [ticker add]", err.Path)
	}
	if err.GoType != "float64" {
		t.Errorf("GoType = %v, want 'float64'", err.GoType)
	}
	if err.JSType != "undefined" {
		t.Errorf("JSType = %v, want 'undefined'", err.JSType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected number, got undefined" {
		t.Errorf("Detail = %v, want 'expected number, got undefined'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		cause := errors.New("http 404")
		err := Load("fetch https://example.com/lib.js", cause)
		if err.Kind != KindLoadFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLoadFailed)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable via errors.Is")
		}
	})

	t.Run("SymbolMissing", func(t *testing.T) {
		err := SymbolMissing("PIXI", "Application")
		if err.Kind != KindSymbolMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSymbolMissing)
		}
		if len(err.Path) != 2 || err.Path[1] != "Application" {
			t.Errorf("Path = %v, want [PIXI Application]", err.Path)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseProperty, []string{"x"}, "float64", "object")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "float64" || err.JSType != "object" {
			t.Errorf("GoType=%v JSType=%v", err.GoType, err.JSType)
		}
	})

	t.Run("StaleReference", func(t *testing.T) {
		err := StaleReference(PhaseProperty, []string{"view"})
		if err.Kind != KindStaleReference {
			t.Errorf("Kind = %v, want %v", err.Kind, KindStaleReference)
		}
	})

	t.Run("CallFailed", func(t *testing.T) {
		cause := errors.New("TypeError: not a function")
		err := CallFailed([]string{"stage", "addChild"}, cause)
		if err.Kind != KindCallFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindCallFailed)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable via errors.Is")
		}
	})

	t.Run("Closed", func(t *testing.T) {
		err := Closed("engine")
		if err.Kind != KindClosed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindClosed)
		}
		if !containsSubstring(err.Detail, "engine") {
			t.Errorf("Detail = %v, should name the component", err.Detail)
		}
	})
}

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"load matches IsLoad", Load("fetch", nil), IsLoad, true},
		{"load is not symbol", Load("fetch", nil), IsSymbolMissing, false},
		{"symbol matches IsSymbolMissing", SymbolMissing("PIXI"), IsSymbolMissing, true},
		{"mismatch matches IsTypeMismatch", TypeMismatch(PhaseProperty, nil, "bool", "number"), IsTypeMismatch, true},
		{"stale matches IsStaleReference", StaleReference(PhaseProperty, nil), IsStaleReference, true},
		{"call matches IsCallFailed", CallFailed(nil, errors.New("thrown")), IsCallFailed, true},
		{"plain error matches nothing", errors.New("plain"), IsLoad, false},
		{"nil matches nothing", nil, IsCallFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoryPredicates_Outermost(t *testing.T) {
	// A call failure wrapping a conversion classifies by the outermost kind.
	inner := TypeMismatch(PhaseCall, []string{"delta"}, "float64", "string")
	outer := CallFailed([]string{"ticker", "update"}, inner)

	if !IsCallFailed(outer) {
		t.Error("outer error should classify as call failure")
	}
	if IsTypeMismatch(outer) {
		t.Error("outer error should not classify by the wrapped kind")
	}
	if !errors.Is(outer, inner) {
		t.Error("wrapped error should remain reachable via errors.Is")
	}
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
