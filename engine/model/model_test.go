package model

import (
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

func TestGenerate_Counts(t *testing.T) {
	tests := []struct {
		name      string
		geometry  element.Geometry
		triangles int
		edges     int
	}{
		{"box", element.Box(1, 2, 3), 12, 18},
		{"tetrahedron", element.Tetrahedron(1), 4, 6},
		{"octahedron", element.Octahedron(1), 8, 12},
		{"icosahedron", element.Icosahedron(1), 20, 30},
		{"dodecahedron", element.Dodecahedron(1), 36, 54},
		{"cylinder", element.Cylinder(0.3, 0.3, 2, 8), 32, 8*3 + 8*2 + 8},
		{"cone", element.Cone(0.5, 1, 6), 12, 6 + 6 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Generate(tt.geometry, DetailHigh)
			if got := len(m.Triangles()); got != tt.triangles {
				t.Errorf("triangles = %d, want %d", got, tt.triangles)
			}
			if got := m.EdgeCount() / 2; got != tt.edges {
				t.Errorf("edges = %d, want %d", got, tt.edges)
			}
			if m.IndexCount() != len(m.Triangles())*3 {
				t.Errorf("IndexCount() = %d", m.IndexCount())
			}
		})
	}
}

func TestGenerate_OutwardWinding(t *testing.T) {
	geometries := []element.Geometry{
		element.Box(0.8, 0.8, 0.8),
		element.Sphere(0.5),
		element.Cylinder(0.3, 0.3, 1.2, 8),
		element.Cone(0.5, 1, 8),
		element.Tetrahedron(0.7),
		element.Octahedron(0.6),
		element.Icosahedron(0.35),
		element.Dodecahedron(0.5),
	}

	for _, g := range geometries {
		for _, detail := range []Detail{DetailHigh, DetailLow} {
			t.Run(g.Kind.String(), func(t *testing.T) {
				m := Generate(g, detail)
				if len(m.Triangles()) == 0 {
					t.Fatal("no triangles")
				}
				for i, tri := range m.Triangles() {
					centroid := tri.Positions[0].Add(tri.Positions[1]).Add(tri.Positions[2]).Scale(1.0 / 3)
					if tri.Normal.Dot(centroid) <= 0 {
						t.Fatalf("triangle %d faces inward: normal %v centroid %v", i, tri.Normal, centroid)
					}
				}
			})
		}
	}
}

func TestGenerate_BoundingRadius(t *testing.T) {
	tests := []struct {
		name     string
		geometry element.Geometry
	}{
		{"box", element.Box(1.2, 0.4, 0.4)},
		{"sphere", element.Sphere(0.35)},
		{"tetrahedron", element.Tetrahedron(0.7)},
		{"octahedron", element.Octahedron(0.6)},
		{"icosahedron", element.Icosahedron(1)},
		{"dodecahedron", element.Dodecahedron(0.5)},
		{"torus", element.Torus(0.5, 0.2)},
		{"cylinder", element.Cylinder(0.2, 0.5, 1, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Generate(tt.geometry, DetailHigh)
			got := float64(m.BoundingRadius())
			want := tt.geometry.BoundingRadius()
			if math.Abs(got-want) > 1e-3 {
				t.Errorf("BoundingRadius() = %v, want %v", got, want)
			}
		})
	}

	t.Run("torus knot stays inside its bound", func(t *testing.T) {
		g := element.TorusKnot(1, 0.3)
		m := Generate(g, DetailHigh)
		if got := float64(m.BoundingRadius()); got > g.BoundingRadius()+1e-3 || got < 1 {
			t.Errorf("BoundingRadius() = %v, bound %v", got, g.BoundingRadius())
		}
	})
}

func TestGenerate_Line(t *testing.T) {
	m := Generate(element.Line(), DetailHigh)
	if len(m.Vertices()) != 2 || m.IndexCount() != 0 {
		t.Fatalf("line has %d vertices and %d indices", len(m.Vertices()), m.IndexCount())
	}
	segs := m.Segments()
	if len(segs) != 1 || segs[0].B[0] != 1 {
		t.Errorf("Segments() = %v, want one unit segment along x", segs)
	}
}

func TestGenerate_BufferSizes(t *testing.T) {
	m := Generate(element.Torus(1, 0.25), DetailLow)
	var v GPUVertex
	if got, want := len(m.VertexData()), len(m.Vertices())*v.Size(); got != want {
		t.Errorf("len(VertexData()) = %d, want %d", got, want)
	}
	if got, want := len(m.IndexData()), m.IndexCount()*4; got != want {
		t.Errorf("len(IndexData()) = %d, want %d", got, want)
	}
	if got, want := len(m.EdgeData()), m.EdgeCount()*4; got != want {
		t.Errorf("len(EdgeData()) = %d, want %d", got, want)
	}
}

func TestGPUVertex_Size(t *testing.T) {
	var v GPUVertex
	if v.Size() != 24 || len(v.Marshal()) != 24 {
		t.Errorf("GPUVertex size %d marshal %d", v.Size(), len(v.Marshal()))
	}
	if !strings.Contains(GPUVertexSource, "struct VertexInput") {
		t.Error("GPUVertexSource should define VertexInput")
	}
}

func TestCache(t *testing.T) {
	c := NewCache(DetailLow)
	a := c.Get(element.Sphere(0.3))
	b := c.Get(element.Sphere(0.3))
	if a != b {
		t.Error("Get should return the cached model")
	}
	c.Get(element.Sphere(0.4))
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	n := 0
	c.Each(func(Model) { n++ })
	if n != 2 {
		t.Errorf("Each visited %d models", n)
	}
}
