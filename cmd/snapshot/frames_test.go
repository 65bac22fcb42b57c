package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/engine/model"
)

func TestSweep(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{"none", 0, nil},
		{"single", 1, []float64{0}},
		{"ends", 2, []float64{0, 1}},
		{"quarters", 5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sweep(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("sweep(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sweep(%d)[%d] = %v, want %v", tt.n, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseProgressList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{"single", "0.2", []float64{0.2}, false},
		{"spaces and trailing comma", " 0, 0.5 ,1,", []float64{0, 0.5, 1}, false},
		{"out of range", "0.5,1.2", nil, true},
		{"not a number", "half", nil, true},
		{"empty", " , ", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProgressList(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseProgressList(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseProgressList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("value %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlan(t *testing.T) {
	frames := plan("out", []float64{0, 0.2})
	if len(frames) != 2 {
		t.Fatalf("len = %d, want 2", len(frames))
	}
	if want := filepath.Join("out", "frame_001_p0.200.png"); frames[1].Path != want {
		t.Errorf("Path = %q, want %q", frames[1].Path, want)
	}
	if frames[1].Index != 1 || frames[1].Progress != 0.2 {
		t.Errorf("frame = %+v", frames[1])
	}
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	frames := plan(dir, []float64{0, 0.2, 0.6})
	opts := options{
		width:     64,
		height:    36,
		elapsed:   1,
		lineWidth: 1,
		cull:      true,
		detail:    model.DetailLow,
		workers:   2,
	}
	if err := renderAll(frames, opts); err != nil {
		t.Fatalf("renderAll() error = %v", err)
	}
	for _, f := range frames {
		info, err := os.Stat(f.Path)
		if err != nil {
			t.Fatalf("frame %d not written: %v", f.Index, err)
		}
		if info.Size() == 0 {
			t.Errorf("frame %d is empty", f.Index)
		}
	}
}

func TestRenderAll_ReportsFailures(t *testing.T) {
	frames := plan(filepath.Join(t.TempDir(), "missing"), []float64{0.5})
	opts := options{width: 16, height: 16, workers: 1, detail: model.DetailLow}
	if err := renderAll(frames, opts); err == nil {
		t.Error("renderAll() should fail when the output directory does not exist")
	}
}

func TestCompose_ElapsedTurnsShapes(t *testing.T) {
	pose := func(elapsed float64) [3]float64 {
		t.Helper()
		_, tree, err := compose(frame{Progress: 0.05}, options{elapsed: elapsed})
		if err != nil {
			t.Fatalf("compose() error = %v", err)
		}
		if len(tree.Layers) == 0 || len(tree.Layers[0].Elements) == 0 {
			t.Fatal("no elements at progress 0.05")
		}
		return tree.Layers[0].Elements[0].Rotation
	}

	start, later := pose(0), pose(2)
	if start == later {
		t.Errorf("rotation after 2s = %v, same as at 0s", later)
	}
	if again := pose(2); again != later {
		t.Errorf("rotation after 2s = %v then %v, want repeatable", later, again)
	}
}
