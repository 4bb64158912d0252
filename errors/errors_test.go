package errors

import (
	"errors"
	"strings"
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
				Phase:  PhaseParse,
				Kind:   KindSyntax,
				Path:   []string{"User", "Name"},
				File:   "models.go",
				Detail: "unbalanced braces",
			},
			contains: []string{"[parse]", "syntax", "User.Name", "models.go", "unbalanced braces"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseScan,
				Kind:  KindNotFound,
			},
			contains: []string{"[scan]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRun,
				Kind:   KindIOFailure,
				Detail: "cannot open",
				Cause:  errors.New("permission denied"),
			},
			contains: []string{"[run]", "io_failure", "cannot open", "caused by", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindSyntax,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindSyntax,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseParse, Kind: KindSyntax}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseScan, Kind: KindSyntax}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseParse, Kind: KindIOFailure}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseParse, Kind: KindSyntax}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseParse, KindSyntax).
		Path("User", "Name").
		File("models.go").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "ident", "int").
		Build()

	if err.Phase != PhaseParse {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseParse)
	}
	if err.Kind != KindSyntax {
		t.Errorf("Kind = %v, want %v", err.Kind, KindSyntax)
	}
	if len(err.Path) != 2 || err.Path[0] != "User" || err.Path[1] != "Name" {
		t.Errorf("Path = %v, want [User Name]", err.Path)
	}
	if err.File != "models.go" {
		t.Errorf("File = %v, want 'models.go'", err.File)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected ident, got int" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("IOFailure", func(t *testing.T) {
		cause := errors.New("no such file")
		err := IOFailure(PhaseScan, "missing.go", cause)
		if err.Kind != KindIOFailure || err.File != "missing.go" {
			t.Errorf("got %+v", err)
		}
		if !errors.Is(err, &Error{Phase: PhaseScan, Kind: KindIOFailure}) {
			t.Error("errors.Is mismatch")
		}
	})

	t.Run("Syntax", func(t *testing.T) {
		err := Syntax(PhaseParse, "broken.go", errors.New("expected '}'"))
		if err.Kind != KindSyntax {
			t.Errorf("Kind = %v", err.Kind)
		}
		if !strings.Contains(err.Error(), "broken.go") {
			t.Errorf("message %q missing file", err.Error())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseRun, "struct Config")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v", err.Kind)
		}
		if !strings.Contains(err.Detail, "struct Config") {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseRun, "unknown format 'xml'")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v", err.Kind)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseReport, "format 'pdf'")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v", err.Kind)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseReport, KindIOFailure, cause, "writing report")
		if !errors.Is(err, cause) {
			t.Error("wrapped cause not reachable")
		}
	})
}
