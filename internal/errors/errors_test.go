package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(errors.New("boom")); got != "Error: boom" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("habit %q not found", "Leer"); got != `Error: habit "Leer" not found` {
		t.Errorf("Formatf = %q", got)
	}
}
