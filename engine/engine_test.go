package engine

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// testWindow records titles and exposes the callbacks the engine registers.
type testWindow struct {
	width, height int
	titles        []string

	onUpdate func()
	onResize func(width, height int)
}

var _ window.Window = &testWindow{}

func (w *testWindow) SetUpdateCallback(cb func())                  { w.onUpdate = cb }
func (w *testWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *testWindow) SetScrollCallback(func(delta float64))        {}
func (w *testWindow) SetKeyDownCallback(func(key int, shift bool)) {}
func (w *testWindow) SetTitle(title string)                        { w.titles = append(w.titles, title) }
func (w *testWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor   { return nil }
func (w *testWindow) IsRunning() bool                              { return false }
func (w *testWindow) Close() error                                 { return nil }
func (w *testWindow) ProcessMessages()                             {}
func (w *testWindow) Width() int                                   { return w.width }
func (w *testWindow) Height() int                                  { return w.height }

func (w *testWindow) Title() string {
	if len(w.titles) == 0 {
		return window.DefaultTitle
	}
	return w.titles[len(w.titles)-1]
}

func layerIDs(tree scene.RenderTree) []scene.ID {
	ids := make([]scene.ID, 0, len(tree.Layers))
	for _, l := range tree.Layers {
		ids = append(ids, l.Scene)
	}
	return ids
}

func TestEngine_Step(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     []scene.ID
	}{
		{"top of page", 0, []scene.ID{scene.FloatingShapes}},
		{"chaos only", 0.2, []scene.ID{scene.ChaosElements}},
		{"end of page", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := scroll.NewSource()
			src.SetProgress(tt.progress)
			e, err := NewEngine(WithSource(src))
			if err != nil {
				t.Fatalf("NewEngine() error = %v", err)
			}
			tree := e.Step(0, 1.0/60)
			got := layerIDs(tree)
			if len(got) != len(tt.want) {
				t.Fatalf("layers = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("layer %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if math.Abs(tree.Progress-tt.progress) > 1e-9 {
				t.Errorf("Progress = %v, want %v", tree.Progress, tt.progress)
			}
		})
	}
}

func TestEngine_StepSmoothing(t *testing.T) {
	src := scroll.NewSource(scroll.WithSmoothing(5))
	e, err := NewEngine(WithSource(src))
	if err != nil {
		t.Fatal(err)
	}
	src.SetProgress(1)
	first := e.Step(0, 0.1).Progress
	if first <= 0 || first >= 1 {
		t.Fatalf("smoothed progress after one frame = %v, want in (0, 1)", first)
	}
	second := e.Step(0.1, 0.1).Progress
	if second <= first {
		t.Errorf("smoothed progress should keep approaching the target: %v then %v", first, second)
	}
}

func TestEngine_FitDocument(t *testing.T) {
	src := scroll.NewSource()
	eng, err := NewEngine(WithSource(src), WithPages(4))
	if err != nil {
		t.Fatal(err)
	}
	e := eng.(*engine)

	e.fitDocument(500)
	src.SetScrollTop(750)
	if got := src.Progress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Progress() = %v, want 0.5 for a 2000px document and 500px viewport", got)
	}

	e.fitDocument(0)
	if got := src.Progress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("a zero viewport should be ignored, Progress() = %v", got)
	}

	for _, viewport := range []int{250, 1000, 333} {
		e.fitDocument(viewport)
		if got := src.Progress(); math.Abs(got-0.5) > 1e-9 {
			t.Errorf("after resizing to %d Progress() = %v, want 0.5", viewport, got)
		}
		if got, want := src.ScrollTop(), 1.5*float64(viewport); math.Abs(got-want) > 1e-6 {
			t.Errorf("after resizing to %d ScrollTop() = %v, want %v", viewport, got, want)
		}
	}
}

func TestEngine_RunHeadless(t *testing.T) {
	e, err := NewEngine(WithTickRate(120))
	if err != nil {
		t.Fatal(err)
	}
	frames := 0
	e.SetRenderCallback(func(tree scene.RenderTree, _ float64) {
		frames++
		if frames == 3 {
			e.Quit()
		}
	})
	e.Run()
	e.Quit()
	if frames < 3 {
		t.Errorf("rendered %d frames, want at least 3", frames)
	}
}

func TestEngine_SetTickRate(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	e := eng.(*engine)
	e.SetTickRate(0)
	if got := e.engineTickRate.Seconds(); math.Abs(got-1.0/60) > 1e-9 {
		t.Errorf("engineTickRate = %v, want 1/60s", got)
	}
	e.SetTickRate(30)
	if got := e.engineTickRate.Seconds(); math.Abs(got-1.0/30) > 1e-9 {
		t.Errorf("engineTickRate = %v, want 1/30s", got)
	}
}

func TestEngine_SectionTitles(t *testing.T) {
	win := &testWindow{width: 800, height: 600}
	src := scroll.NewSource()
	if _, err := NewEngine(WithWindow(win), WithSource(src), WithSectionTitles(true)); err != nil {
		t.Fatal(err)
	}
	if win.onUpdate == nil {
		t.Fatal("no update callback registered")
	}

	win.onUpdate()
	first := section.All()[0]
	if got, want := win.Title(), first.Label+" | "+first.Heading; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}

	src.SetProgress(0.5)
	win.onUpdate()
	win.onUpdate()
	s, _ := section.At(0.5)
	if got, want := win.Title(), s.Label+" | "+s.Heading; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if len(win.titles) != 2 {
		t.Errorf("SetTitle called %d times, want 2", len(win.titles))
	}
}

func TestEngine_WindowResizeKeepsProgress(t *testing.T) {
	win := &testWindow{width: 1600, height: 1000}
	src := scroll.NewSource()
	if _, err := NewEngine(WithWindow(win), WithSource(src)); err != nil {
		t.Fatal(err)
	}
	src.SetProgress(0.5)

	win.onResize(800, 500)
	if got := src.Progress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Progress() after halving the window = %v, want 0.5", got)
	}
	src.SetProgress(0.95)
	win.onResize(1600, 1000)
	if got := src.Progress(); math.Abs(got-0.95) > 1e-9 {
		t.Errorf("Progress() after doubling the window = %v, want 0.95", got)
	}
}
