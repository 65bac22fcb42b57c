package element

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

func TestArena_CreateAssignsDenseIDs(t *testing.T) {
	a := NewArena()
	for want := ID(0); want < 5; want++ {
		if got := a.Create(Sphere(1)); got != want {
			t.Fatalf("Create() = %d, want %d", got, want)
		}
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %d, want 5", a.Len())
	}
}

func TestArena_Defaults(t *testing.T) {
	a := NewArena()
	id := a.Create(Cube(1))
	e, ok := a.Get(id)
	if !ok {
		t.Fatal("Get() reported missing element")
	}
	if !e.Visible || e.Opacity != 1 || e.Scale != common.Uniform(1) {
		t.Errorf("unexpected defaults: visible=%v opacity=%v scale=%v", e.Visible, e.Opacity, e.Scale)
	}
	if e.Transparent || e.Wireframe || e.BackSide {
		t.Error("new elements should be opaque solid front-side")
	}
}

func TestArena_Options(t *testing.T) {
	a := NewArena()
	magenta := common.HexColor("#ff00ff")
	id := a.Create(Octahedron(0.6),
		WithPosition(common.V3(1, 2, 3)),
		WithColor(magenta),
		WithEmissiveIntensity(0.5),
		WithMaterial(0.3, 0.4),
		WithOpacity(0.4),
		WithWireframe(),
		WithScale(0.7),
	)
	e, _ := a.Get(id)
	if e.Position != common.V3(1, 2, 3) {
		t.Errorf("Position = %v", e.Position)
	}
	if e.Color != magenta || e.Emissive != magenta {
		t.Errorf("Color = %v, Emissive = %v, want %v", e.Color, e.Emissive, magenta)
	}
	if !e.Transparent || e.Opacity != 0.4 || !e.Wireframe {
		t.Errorf("transparency not applied: %+v", e)
	}
	if e.Metalness != 0.3 || e.Roughness != 0.4 || e.EmissiveIntensity != 0.5 {
		t.Errorf("material not applied: %+v", e)
	}
	if e.Scale != common.Uniform(0.7) {
		t.Errorf("Scale = %v", e.Scale)
	}
}

func TestArena_GetUnknown(t *testing.T) {
	a := NewArena()
	a.Create(Sphere(1))
	for _, id := range []ID{-1, 1, 100} {
		if _, ok := a.Get(id); ok {
			t.Errorf("Get(%d) reported present", id)
		}
	}
	if a.Update(7, func(*Element) { t.Error("Update ran for unknown id") }) {
		t.Error("Update(7) = true")
	}
}

func TestArena_Release(t *testing.T) {
	a := NewArena()
	id := a.Create(Sphere(1))
	a.Release()
	a.Release()

	if !a.Released() {
		t.Fatal("Released() = false")
	}
	if _, ok := a.Get(id); ok {
		t.Error("released arena still resolves ids")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after release", a.Len())
	}
	if got := a.Create(Sphere(1)); got != -1 {
		t.Errorf("Create on released arena = %d, want -1", got)
	}
	a.Each(func(*Element) { t.Error("Each visited an element after release") })
}

func TestElement_Bounds(t *testing.T) {
	a := NewArena()
	id := a.Create(Line(), WithEndpoints(common.V3(-1, 0, 0), common.V3(3, 0, 0)))
	e, _ := a.Get(id)
	c, r := e.Bounds()
	if c != common.V3(1, 0, 0) || r != 2 {
		t.Errorf("Bounds() = %v, %v", c, r)
	}

	id = a.Create(Sphere(0.5), WithScale(2), WithPosition(common.V3(0, 1, 0)))
	e, _ = a.Get(id)
	c, r = e.Bounds()
	if c != common.V3(0, 1, 0) || r != 1 {
		t.Errorf("Bounds() = %v, %v", c, r)
	}
}
