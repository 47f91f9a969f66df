package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("L101")

	if err.Code != "L101" {
		t.Errorf("code = %q", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Errorf("category = %q, want config", err.Category)
	}
	if err.Suggestion == "" {
		t.Error("registered suggestion missing")
	}
	if got := err.Error(); got != "L101: config file is not valid JSON" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("L999")
	if err.Code != "L999" || err.Message != "unknown error" {
		t.Errorf("got %+v", err)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New("L401").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should satisfy errors.Is")
	}

	wrapped := fmt.Errorf("export: %w", err)
	if CodeOf(wrapped) != "L401" {
		t.Errorf("CodeOf through a chain = %q, want L401", CodeOf(wrapped))
	}
	if CodeOf(cause) != "" {
		t.Errorf("CodeOf(plain error) = %q, want empty", CodeOf(cause))
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("L301").
		WithDetail("bucket not set").
		Wrap(stderrors.New("underlying")).
		WithSuggestion("set LIFTLOG_BACKUP_BUCKET")

	out := err.Format()
	for _, want := range []string{
		"L301", "backup is not configured",
		"bucket not set",
		"caused by: underlying",
		"hint: set LIFTLOG_BACKUP_BUCKET",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted output missing %q:\n%s", want, out)
		}
	}
}

func TestRegistryCategories(t *testing.T) {
	for code, tmpl := range registry {
		if tmpl.Message == "" {
			t.Errorf("%s: empty message", code)
		}
		if tmpl.Category == "" {
			t.Errorf("%s: empty category", code)
		}
	}
}
