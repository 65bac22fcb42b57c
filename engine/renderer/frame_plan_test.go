package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
	"github.com/Carmen-Shannon/oxy-scroll/engine/model"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
)

func treeWith(layerOpacity float64, elements ...*element.Element) scene.RenderTree {
	return scene.RenderTree{
		Camera:     camera.NewCamera(),
		Lights:     scene.DefaultLights(),
		Background: common.HexColor("#0a0a0a"),
		Layers:     []scene.Layer{{Scene: scene.FloatingShapes, Opacity: layerOpacity, Elements: elements}},
	}
}

func newElement(g element.Geometry, options ...element.ElementBuilderOption) *element.Element {
	a := element.NewArena()
	id := a.Create(g, options...)
	e, _ := a.Get(id)
	return e
}

func at(x, y, z float64) element.ElementBuilderOption {
	return element.WithPosition(common.V3(x, y, z))
}

func TestPlanFrame_NoCamera(t *testing.T) {
	plan := planFrame(scene.RenderTree{Lights: scene.DefaultLights()}, 1, model.NewCache(model.DetailLow), true)
	if len(plan.draws) != 0 || len(plan.instances) != 0 {
		t.Errorf("plan has %d draws and %d instances, want none", len(plan.draws), len(plan.instances))
	}
	if plan.lights.Count != 3 {
		t.Errorf("lights.Count = %d, want 3", plan.lights.Count)
	}
}

func TestPlanFrame_BatchesOpaque(t *testing.T) {
	tree := treeWith(1,
		newElement(element.Cube(1), at(-2, 0, 0)),
		newElement(element.Sphere(0.5), at(0, 0, 0)),
		newElement(element.Cube(1), at(2, 0, 0)),
		newElement(element.Cube(1), at(0, 2, 0)),
	)
	plan := planFrame(tree, 16.0/9.0, model.NewCache(model.DetailLow), true)

	want := []drawCall{
		{pipelineKey: PipelineOpaque, geometry: element.Cube(1), first: 0, count: 3},
		{pipelineKey: PipelineOpaque, geometry: element.Sphere(0.5), first: 3, count: 1},
	}
	if len(plan.draws) != len(want) {
		t.Fatalf("len(draws) = %d, want %d", len(plan.draws), len(want))
	}
	for i, d := range plan.draws {
		if d != want[i] {
			t.Errorf("draws[%d] = %+v, want %+v", i, d, want[i])
		}
	}
	if len(plan.instances) != 4 {
		t.Errorf("len(instances) = %d, want 4", len(plan.instances))
	}
	if plan.stats.Elements != 4 || plan.stats.DrawCalls != 2 {
		t.Errorf("stats = %+v", plan.stats)
	}
	if plan.clear != common.HexColor("#0a0a0a") {
		t.Errorf("clear = %v", plan.clear)
	}
}

func TestPlanFrame_SortsBlendedFarToNear(t *testing.T) {
	tree := treeWith(1,
		newElement(element.Cube(1), at(0, 0, 2), element.WithOpacity(0.5)),
		newElement(element.Sphere(0.5), at(0, 0, -1), element.WithWireframe()),
		newElement(element.Cube(1), at(0, 0, -4), element.WithOpacity(0.5)),
		newElement(element.Cube(1), at(1, 0, -4), element.WithOpacity(0.5)),
	)
	plan := planFrame(tree, 16.0/9.0, model.NewCache(model.DetailLow), true)

	want := []drawCall{
		{pipelineKey: PipelineBlended, geometry: element.Cube(1), first: 0, count: 2},
		{pipelineKey: PipelineLine, geometry: element.Sphere(0.5), first: 2, count: 1},
		{pipelineKey: PipelineBlended, geometry: element.Cube(1), first: 3, count: 1},
	}
	if len(plan.draws) != len(want) {
		t.Fatalf("len(draws) = %d, want %d: %+v", len(plan.draws), len(want), plan.draws)
	}
	for i, d := range plan.draws {
		if d != want[i] {
			t.Errorf("draws[%d] = %+v, want %+v", i, d, want[i])
		}
	}
	if plan.stats.Lines == 0 {
		t.Error("wireframe sphere should count lines")
	}
}

func TestPlanFrame_LayerFade(t *testing.T) {
	tree := treeWith(0.5, newElement(element.Cube(1), element.WithBackSide()))
	plan := planFrame(tree, 1, model.NewCache(model.DetailLow), true)
	if len(plan.draws) != 1 || plan.draws[0].pipelineKey != PipelineBlendedBack {
		t.Fatalf("draws = %+v, want one blended back-side draw", plan.draws)
	}
	if a := plan.instances[0].Color[3]; a != 0.5 {
		t.Errorf("instance alpha = %v, want 0.5", a)
	}
}

func TestPlanFrame_Culling(t *testing.T) {
	tree := treeWith(1,
		newElement(element.Cube(1)),
		newElement(element.Cube(1), at(100, 0, 0)),
		newElement(element.Cube(1), at(0, 0, 20)),
	)
	cache := model.NewCache(model.DetailLow)

	culled := planFrame(tree, 16.0/9.0, cache, true)
	if culled.stats.Culled != 2 || len(culled.instances) != 1 {
		t.Errorf("culled stats = %+v with %d instances", culled.stats, len(culled.instances))
	}

	all := planFrame(tree, 16.0/9.0, cache, false)
	if all.stats.Culled != 0 || len(all.instances) != 3 {
		t.Errorf("unculled stats = %+v with %d instances", all.stats, len(all.instances))
	}
}

func TestPipelineKeys(t *testing.T) {
	tests := []struct {
		name string
		e    *element.Element
		want string
	}{
		{"opaque", newElement(element.Cube(1)), PipelineOpaque},
		{"opaque back", newElement(element.Sphere(5), element.WithBackSide()), PipelineOpaqueBack},
		{"blended", newElement(element.Cube(1), element.WithOpacity(0.3)), PipelineBlended},
		{"line", newElement(element.Line(), element.WithEndpoints(common.V3(0, 0, 0), common.V3(1, 1, 0))), PipelineLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := treeWith(1, tt.e)
			plan := planFrame(tree, 1, model.NewCache(model.DetailLow), false)
			if len(plan.draws) != 1 || plan.draws[0].pipelineKey != tt.want {
				t.Errorf("draws = %+v, want key %q", plan.draws, tt.want)
			}
		})
	}
}
