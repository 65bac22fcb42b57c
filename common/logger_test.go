package common

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTextLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
		debug   bool
	}{
		{"info", "info", false, false},
		{"debug upper case", "DEBUG", false, true},
		{"unknown", "loud", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := NewTextLogger(&buf, tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTextLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			l.Debug("mounted", "scene", "chaos_elements")
			if got := strings.Contains(buf.String(), "scene=chaos_elements"); got != tt.debug {
				t.Errorf("debug record written = %v, want %v (output %q)", got, tt.debug, buf.String())
			}
		})
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewTextLogger(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}
	SetLogger(l)
	Logger().Info("visible")
	SetLogger(nil)
	Logger().Info("hidden")

	if !strings.Contains(buf.String(), "visible") || strings.Contains(buf.String(), "hidden") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
