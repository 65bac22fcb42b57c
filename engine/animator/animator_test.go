package animator

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

const tol = 1e-9

func vecNear(a, b common.Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func build(an Animator) element.Arena {
	a := element.NewArena()
	an.Build(a)
	return a
}

func TestAnimators_BuildAndUpdateAcrossRange(t *testing.T) {
	animators := map[string]func() Animator{
		"floating":   NewFloatingShapes,
		"chaos":      NewChaosElements,
		"order":      NewOrderElements,
		"calendar":   NewCalendarViz,
		"matching":   NewMatchingViz,
		"pipeline":   NewPipelineViz,
		"principles": NewPrinciplesViz,
		"sphere":     NewRotatingSphere,
	}
	for name, ctor := range animators {
		t.Run(name, func(t *testing.T) {
			an := ctor()
			a := build(an)
			if a.Len() == 0 {
				t.Fatal("Build created no elements")
			}
			for i := 0; i <= 20; i++ {
				local := float64(i) / 20
				an.Update(a, Frame{Progress: local, Local: local, Elapsed: float64(i) * 0.25, Delta: 1.0 / 60})
				a.Each(func(e *element.Element) {
					if math.IsNaN(e.Opacity) || e.Opacity < 0 || e.Opacity > 1 {
						t.Fatalf("element %d opacity %v at local %v", e.ID, e.Opacity, local)
					}
					for _, v := range append(e.Position[:], e.Scale[:]...) {
						if math.IsNaN(v) || math.IsInf(v, 0) {
							t.Fatalf("element %d has non-finite transform at local %v", e.ID, local)
						}
					}
				})
				if o := an.Opacity(local); o < 0 || o > 1 {
					t.Fatalf("Opacity(%v) = %v", local, o)
				}
			}
		})
	}
}

func TestAnimators_UpdateOnEmptyArenaIsNoop(t *testing.T) {
	an := NewMatchingViz()
	built := build(an)
	built.Release()
	an.Update(built, Frame{Local: 0.5})
	an.Update(element.NewArena(), Frame{Local: 0.5})
}

func TestFloatingShapes_LinearPath(t *testing.T) {
	an := NewFloatingShapes().(*floatingShapes)
	a := build(an)

	an.Update(a, Frame{Local: 0.5})
	e, _ := a.Get(an.shapes[0].solid)
	want := common.V3(-3.5, 2.5, -0.5)
	if !vecNear(e.Position, want, tol) {
		t.Errorf("shape 0 at local 0.5 = %v, want %v", e.Position, want)
	}
	w, _ := a.Get(an.shapes[0].wire)
	if w.Position != e.Position || !near(w.Scale[0], e.Scale[0]*wireScale) {
		t.Errorf("wireframe not tracking solid: %v / %v", w.Position, w.Scale)
	}
}

func TestFloatingShapes_SpinIntegratesDelta(t *testing.T) {
	an := NewFloatingShapes().(*floatingShapes)
	a := build(an)
	e, _ := a.Get(an.shapes[0].solid)
	before := e.Rotation

	an.Update(a, Frame{Local: 0, Delta: 0})
	if e.Rotation != before {
		t.Fatalf("zero delta changed rotation: %v -> %v", before, e.Rotation)
	}
	for range 60 {
		an.Update(a, Frame{Local: 0, Delta: 1.0 / 60})
	}
	want := before.Add(floatingShapeTable[0].spin.Scale(60))
	if !vecNear(e.Rotation, want, 1e-9) {
		t.Errorf("rotation after one second = %v, want %v", e.Rotation, want)
	}
}

func TestChaosIntensity(t *testing.T) {
	local := (0.20 - 0.10) / (0.28 - 0.10)
	if math.Abs(local-0.5556) > 1e-4 {
		t.Fatalf("local = %v", local)
	}
	if got := ChaosIntensity(local); math.Abs(got-0.9848) > 1e-3 {
		t.Errorf("ChaosIntensity(%v) = %v, want about 0.985", local, got)
	}
	if got := ChaosIntensity(0); got != 0 {
		t.Errorf("ChaosIntensity(0) = %v", got)
	}
	if got := ChaosIntensity(1); math.Abs(got) > 1e-12 {
		t.Errorf("ChaosIntensity(1) = %v", got)
	}
}

func TestChaosElements_RestAtEnds(t *testing.T) {
	an := NewChaosElements().(*chaosElements)
	a := build(an)
	an.Update(a, Frame{Local: 0, Elapsed: 3.7})
	for i, o := range an.shapes {
		e, _ := a.Get(o.solid)
		if !vecNear(e.Position, chaosShapeTable[i].position, tol) {
			t.Errorf("shape %d jittered at zero intensity: %v", i, e.Position)
		}
	}
}

func TestChaosElements_FadesBothWays(t *testing.T) {
	an := NewChaosElements()
	if got := an.Opacity(0.05); !near(got, 0.5) {
		t.Errorf("Opacity(0.05) = %v", got)
	}
	if got := an.Opacity(0.5); got != 1 {
		t.Errorf("Opacity(0.5) = %v", got)
	}
	if got := an.Opacity(0.95); !near(got, 0.5) {
		t.Errorf("Opacity(0.95) = %v", got)
	}
}

func TestOrderTarget_OnCircle(t *testing.T) {
	for i := range orderShapeTable {
		p := OrderTarget(i)
		if r := math.Hypot(p[0], p[1]); math.Abs(r-3) > 1e-12 || p[2] != 0 {
			t.Errorf("target %d = %v, radius %v", i, p, r)
		}
	}
	if p := OrderTarget(2); !vecNear(p, common.V3(0, 3, 0), 1e-12) {
		t.Errorf("target 2 = %v, want (0,3,0)", p)
	}
}

func TestOrderElements_EndState(t *testing.T) {
	an := NewOrderElements().(*orderElements)
	a := build(an)
	an.Update(a, Frame{Local: 1, Elapsed: 2})
	for i, o := range an.shapes {
		e, _ := a.Get(o.solid)
		if !vecNear(e.Position, OrderTarget(i), 1e-12) {
			t.Errorf("shape %d = %v, want %v", i, e.Position, OrderTarget(i))
		}
		if !near(e.Scale[0], orderShapeTable[i].scale) {
			t.Errorf("shape %d scale = %v", i, e.Scale[0])
		}
	}
	core, _ := a.Get(an.core)
	if !core.Visible || core.Opacity != 1 {
		t.Errorf("core visible=%v opacity=%v", core.Visible, core.Opacity)
	}

	an.Update(a, Frame{Local: 0.4})
	if core.Visible {
		t.Error("core visible before halfway")
	}
}

func TestCalendarBars(t *testing.T) {
	tests := []struct {
		i            int
		eased        float64
		wantX, wantH float64
	}{
		{0, 0, -4, 3},
		{4, 0, 4, 2.2},
		{0, 1, 0, 0.5},
		{3, 1, 0, 0.5},
		{4, 1, 0, 3},
	}
	for _, tt := range tests {
		if got := CalendarBarX(tt.i, tt.eased); !near(got, tt.wantX) {
			t.Errorf("CalendarBarX(%d, %v) = %v, want %v", tt.i, tt.eased, got, tt.wantX)
		}
		if got := CalendarBarHeight(tt.i, tt.eased); !near(got, tt.wantH) {
			t.Errorf("CalendarBarHeight(%d, %v) = %v, want %v", tt.i, tt.eased, got, tt.wantH)
		}
	}
}

func TestCalendarViz_BarsFadeExceptLast(t *testing.T) {
	an := NewCalendarViz().(*calendarViz)
	a := build(an)
	an.Update(a, Frame{Local: 1})
	for i, id := range an.bars {
		e, _ := a.Get(id)
		want := 0.2
		if i == calendarBars-1 {
			want = 1
		}
		if !near(e.Opacity, want) {
			t.Errorf("bar %d opacity = %v, want %v", i, e.Opacity, want)
		}
		if d := math.Abs(e.Color.R-calendarDone.R) + math.Abs(e.Color.G-calendarDone.G) + math.Abs(e.Color.B-calendarDone.B); d > tol {
			t.Errorf("bar %d color = %v", i, e.Color)
		}
	}
}

func TestMatchPositions(t *testing.T) {
	for i, d := range matchPairTable {
		l, r := MatchPositions(i, 0)
		if !vecNear(l, d.left, tol) || !vecNear(r, d.right, tol) {
			t.Errorf("pair %d at local 0 = %v %v, want %v %v", i, l, r, d.left, d.right)
		}
		l, r = MatchPositions(i, 1)
		if !vecNear(l, common.V3(-1.5, d.finalY, 0), tol) || !vecNear(r, common.V3(1.5, d.finalY, 0), tol) {
			t.Errorf("pair %d at local 1 = %v %v", i, l, r)
		}
	}
}

func TestMatchingViz_StaggeredPairs(t *testing.T) {
	an := NewMatchingViz().(*matchingViz)
	a := build(an)
	an.Update(a, Frame{Local: 0.3})

	first, _ := a.Get(an.pairs[0].link)
	last, _ := a.Get(an.pairs[len(an.pairs)-1].link)
	if first.Opacity <= last.Opacity {
		t.Errorf("first link opacity %v should lead last %v", first.Opacity, last.Opacity)
	}
	if last.Opacity != 0 {
		t.Errorf("last pair started early: %v", last.Opacity)
	}
	left, _ := a.Get(an.pairs[0].left)
	if first.LineStart != left.Position {
		t.Errorf("link start %v does not follow left item %v", first.LineStart, left.Position)
	}
}

func TestParticlePosition(t *testing.T) {
	if p := ParticlePosition(0, 0); !vecNear(p, common.V3(-5, -2, -1), tol) {
		t.Errorf("particle 0 start = %v", p)
	}
	if p := ParticlePosition(7, 0.5); !vecNear(p, common.V3(0, -0.5+math.Sin(3.5)*0.5, 0), tol) {
		t.Errorf("particle 7 mid = %v", p)
	}
	if p := ParticlePosition(14, 1); !vecNear(p, common.V3(4, 1, 1.5), tol) {
		t.Errorf("particle 14 end = %v", p)
	}
}

func TestParticleOpacity(t *testing.T) {
	tests := []struct{ pp, want float64 }{
		{0, 0}, {0.025, 0.5}, {0.5, 1}, {0.975, 0.5}, {1, 0},
	}
	for _, tt := range tests {
		if got := particleOpacity(tt.pp); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("particleOpacity(%v) = %v, want %v", tt.pp, got, tt.want)
		}
	}
}

func TestPipelineViz_Zones(t *testing.T) {
	an := NewPipelineViz().(*pipelineViz)
	a := build(an)

	an.Update(a, Frame{Local: 0.1})
	src, _ := a.Get(an.sourceZone)
	out, _ := a.Get(an.outputZone)
	if !src.Visible || out.Visible {
		t.Errorf("at 0.1: source visible=%v output visible=%v", src.Visible, out.Visible)
	}
	flow, _ := a.Get(an.flows[0])
	if flow.Visible {
		t.Error("flow lines visible before 0.2")
	}

	an.Update(a, Frame{Local: 0.9})
	if src.Visible || !out.Visible {
		t.Errorf("at 0.9: source visible=%v output visible=%v", src.Visible, out.Visible)
	}
	if !near(out.Opacity, 0.3) {
		t.Errorf("output zone opacity = %v, want 0.3", out.Opacity)
	}
	success, _ := a.Get(an.success)
	if !success.Visible {
		t.Error("success marker hidden at 0.9")
	}
}

func TestNodePosition(t *testing.T) {
	p := NodePosition(0, 0, 10)
	if !vecNear(p, common.V3(6.25, 0, 0), tol) {
		t.Errorf("scattered node 0 = %v, want (6.25,0,0)", p)
	}
	p = NodePosition(1, 1, 0)
	if math.Abs(math.Hypot(p[0], p[1])-orbitRadius) > tol {
		t.Errorf("settled node 1 radius = %v", math.Hypot(p[0], p[1]))
	}
}

func TestPrinciplesViz_SpokesFollowNodes(t *testing.T) {
	an := NewPrinciplesViz().(*principlesViz)
	a := build(an)
	an.Update(a, Frame{Local: 0.8, Elapsed: 4})
	for i, id := range an.nodes {
		n, _ := a.Get(id)
		s, _ := a.Get(an.spokes[i])
		if s.LineEnd != n.Position || s.LineStart != (common.Vec3{}) {
			t.Errorf("spoke %d = %v-%v, node at %v", i, s.LineStart, s.LineEnd, n.Position)
		}
	}
	glow, _ := a.Get(an.glow)
	if !glow.Visible || glow.Opacity > glowShellLimit {
		t.Errorf("glow visible=%v opacity=%v", glow.Visible, glow.Opacity)
	}
}

func TestRotatingSphere_TracksGlobalProgress(t *testing.T) {
	an := NewRotatingSphere().(*rotatingSphere)
	a := build(an)
	an.Update(a, Frame{Progress: 0.5, Local: 0})
	e, _ := a.Get(an.solid)
	if !vecNear(e.Rotation, common.V3(math.Pi, 2*math.Pi, 0), tol) {
		t.Errorf("rotation = %v", e.Rotation)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= tol
}
