package common

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "title"); got != "title" {
		t.Errorf("Coalesce = %q, want title", got)
	}
	if got := Coalesce(0, 3, 4); got != 3 {
		t.Errorf("Coalesce = %d, want 3", got)
	}
	if got := Coalesce[string](); got != "" {
		t.Errorf("Coalesce() = %q, want empty", got)
	}
}
