package window

import "testing"

func TestEngineWindow_SetTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"custom", "Case Study 01", "Case Study 01"},
		{"empty restores default", "", DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &engineWindow{title: "initial"}
			w.SetTitle(tt.title)
			if got := w.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngineWindow_Detached(t *testing.T) {
	w := &engineWindow{}
	if w.IsRunning() {
		t.Error("a window without a platform handle should not be running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("SurfaceDescriptor() should be nil without a platform handle")
	}
	if err := w.Close(); err == nil {
		t.Error("Close() should fail without a platform handle")
	}
}
