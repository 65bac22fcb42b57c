package scene

import (
	"errors"
	"slices"
	"testing"
)

func TestTable_ActiveScenes(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		name     string
		progress float64
		want     []ID
	}{
		{"top of page", 0, []ID{FloatingShapes}},
		{"below zero clamps", -0.5, []ID{FloatingShapes}},
		{"chaos start is exclusive", 0.10, []ID{FloatingShapes}},
		{"hero and chaos overlap", 0.12, []ID{FloatingShapes, ChaosElements}},
		{"hero end is exclusive", 0.15, []ID{ChaosElements}},
		{"chaos alone", 0.2, []ID{ChaosElements}},
		{"chaos and order overlap", 0.25, []ID{ChaosElements, OrderElements}},
		{"calendar alone at matching start", 0.5, []ID{CalendarViz}},
		{"pipeline and principles overlap", 0.76, []ID{PipelineViz, PrinciplesViz}},
		{"after last scene", 0.95, nil},
		{"bottom of page", 1.0, nil},
		{"above one clamps", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.ActiveScenes(tt.progress)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ActiveScenes(%v) = %v, want %v", tt.progress, got, tt.want)
			}
		})
	}
}

func TestTable_NeverMoreThanTwoActive(t *testing.T) {
	table := DefaultTable()
	for i := 0; i <= 10000; i++ {
		p := float64(i) / 10000
		if n := len(table.ActiveScenes(p)); n > MaxOverlap {
			t.Fatalf("progress %v has %d active scenes", p, n)
		}
	}
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr error
	}{
		{"default table", DefaultTable(), nil},
		{"empty table", Table{}, nil},
		{"start after end", Table{{FloatingShapes, 0.5, 0.4}}, ErrInvalidWindow},
		{"end past one", Table{{FloatingShapes, 0.5, 1.2}}, ErrInvalidWindow},
		{"negative start", Table{{FloatingShapes, -0.1, 0.2}}, ErrInvalidWindow},
		{"empty window", Table{{FloatingShapes, 0.3, 0.3}}, ErrInvalidWindow},
		{"duplicate scene", Table{{FloatingShapes, 0, 0.2}, {FloatingShapes, 0.5, 0.6}}, ErrDuplicateScene},
		{
			"three overlapping",
			Table{{FloatingShapes, 0, 0.5}, {ChaosElements, 0.1, 0.6}, {OrderElements, 0.2, 0.7}},
			ErrOverlap,
		},
		{
			"touching windows do not overlap",
			Table{{FloatingShapes, 0, 0.5}, {ChaosElements, 0.2, 0.6}, {OrderElements, 0.5, 0.7}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWindow_Local(t *testing.T) {
	w := Window{Scene: ChaosElements, Start: 0.10, End: 0.28}
	tests := []struct {
		name     string
		progress float64
		want     float64
	}{
		{"before", 0.05, 0},
		{"start", 0.10, 0},
		{"middle", 0.19, 0.5},
		{"end", 0.28, 1},
		{"after", 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Local(tt.progress)
			if d := got - tt.want; d > 1e-9 || d < -1e-9 {
				t.Errorf("Local(%v) = %v, want %v", tt.progress, got, tt.want)
			}
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	table := DefaultTable()
	w, ok := table.Lookup(PipelineViz)
	if !ok || w.Start != 0.625 || w.End != 0.77 {
		t.Errorf("Lookup(PipelineViz) = %v, %v", w, ok)
	}
	if _, ok := table.Lookup(RotatingSphere); ok {
		t.Error("RotatingSphere should not be in the default table")
	}
}

func TestParseID(t *testing.T) {
	for id := FloatingShapes; id <= RotatingSphere; id++ {
		t.Run(id.String(), func(t *testing.T) {
			got, ok := ParseID(id.String())
			if !ok || got != id {
				t.Errorf("ParseID(%q) = %v, %v", id.String(), got, ok)
			}
		})
	}
	if _, ok := ParseID("nope"); ok {
		t.Error("ParseID(nope) should fail")
	}
	if got := ID(99).String(); got != "unknown" {
		t.Errorf("ID(99).String() = %q", got)
	}
}
