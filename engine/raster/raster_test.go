package raster

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
)

func treeWith(elements ...*element.Element) scene.RenderTree {
	return scene.RenderTree{
		Camera:     camera.NewCamera(),
		Lights:     scene.DefaultLights(),
		Background: common.Black,
		Layers:     []scene.Layer{{Scene: scene.FloatingShapes, Opacity: 1, Elements: elements}},
	}
}

func newElement(g element.Geometry, options ...element.ElementBuilderOption) *element.Element {
	a := element.NewArena()
	id := a.Create(g, options...)
	e, _ := a.Get(id)
	return e
}

func TestRasterizer_EmptyTree(t *testing.T) {
	r := NewRasterizer(WithSize(64, 48))
	dc, err := r.Render(treeWith())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	defer dc.Close()

	if dc.Width() != 64 || dc.Height() != 48 {
		t.Errorf("size = %dx%d", dc.Width(), dc.Height())
	}
	red, green, blue, _ := dc.Image().At(32, 24).RGBA()
	if red != 0 || green != 0 || blue != 0 {
		t.Errorf("center pixel = %d %d %d, want background", red, green, blue)
	}
}

func TestRasterizer_NoCamera(t *testing.T) {
	r := NewRasterizer()
	if _, err := r.Render(scene.RenderTree{}); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Render() error = %v, want ErrNoCamera", err)
	}
}

func TestRasterizer_PaintsElement(t *testing.T) {
	r := NewRasterizer(WithSize(64, 48))
	box := newElement(element.Cube(2), element.WithUnlit(), element.WithColor(common.White))
	dc, err := r.Render(treeWith(box))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	defer dc.Close()

	red, _, _, _ := dc.Image().At(32, 24).RGBA()
	if red < 0x8000 {
		t.Errorf("center red = %#x, want a bright pixel", red)
	}
	corner, _, _, _ := dc.Image().At(0, 0).RGBA()
	if corner != 0 {
		t.Errorf("corner red = %#x, want background", corner)
	}
}

func TestRasterizer_FaceCulling(t *testing.T) {
	tests := []struct {
		name    string
		options []element.ElementBuilderOption
		want    int
	}{
		{"front side shows the near face", nil, 2},
		{"back side shows the inner faces", []element.ElementBuilderOption{element.WithBackSide()}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRasterizer(WithSize(64, 48))
			dc, err := r.Render(treeWith(newElement(element.Cube(1), tt.options...)))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			dc.Close()
			if got := r.Stats().Triangles; got != tt.want {
				t.Errorf("Triangles = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRasterizer_Stats(t *testing.T) {
	tests := []struct {
		name     string
		elements []*element.Element
		want     Stats
	}{
		{
			"wireframe strokes every edge",
			[]*element.Element{newElement(element.Cube(1), element.WithWireframe(), element.WithOpacity(0.5))},
			Stats{Elements: 1, Lines: 18},
		},
		{
			"line element",
			[]*element.Element{newElement(element.Line(), element.WithEndpoints(common.V3(-1, 0, 0), common.V3(1, 0, 0)))},
			Stats{Elements: 1, Lines: 1},
		},
		{
			"off screen element is culled",
			[]*element.Element{newElement(element.Sphere(0.5), element.WithPosition(common.V3(100, 0, 0)))},
			Stats{Elements: 1, Culled: 1},
		},
		{
			"element behind the camera is culled",
			[]*element.Element{newElement(element.Sphere(0.5), element.WithPosition(common.V3(0, 0, 20)))},
			Stats{Elements: 1, Culled: 1},
		},
		{
			"hidden element is skipped",
			[]*element.Element{newElement(element.Sphere(0.5), element.WithHidden())},
			Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRasterizer(WithSize(64, 48))
			dc, err := r.Render(treeWith(tt.elements...))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			dc.Close()
			if got := r.Stats(); got != tt.want {
				t.Errorf("Stats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRasterizer_WritePNG(t *testing.T) {
	r := NewRasterizer(WithSize(32, 32))
	var buf bytes.Buffer
	if err := r.WritePNG(&buf, treeWith(newElement(element.Icosahedron(1)))); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRasterizer_Resize(t *testing.T) {
	r := NewRasterizer()
	r.Resize(0, 10)
	if w, h := r.Size(); w != 1280 || h != 720 {
		t.Errorf("Size() = %d, %d after invalid resize", w, h)
	}
	r.Resize(320, 200)
	if w, h := r.Size(); w != 320 || h != 200 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}
