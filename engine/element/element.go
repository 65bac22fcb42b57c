package element

import "github.com/Carmen-Shannon/oxy-scroll/common"

// ID is a stable handle to an element inside one arena.
// IDs are dense indices assigned in creation order and are never reused
// while the arena is alive.
type ID int

// Element is the renderable record a scene animator drives every frame.
// Geometry is fixed at creation; every other field is mutable per frame.
type Element struct {
	ID       ID
	Geometry Geometry

	Position common.Vec3
	Rotation common.Vec3
	Scale    common.Vec3

	Color             common.Color
	Emissive          common.Color
	EmissiveIntensity float64
	Metalness         float64
	Roughness         float64
	Opacity           float64

	Transparent bool
	Wireframe   bool
	BackSide    bool
	Visible     bool
	// Unlit elements show their flat color and ignore scene lights.
	Unlit bool

	// LineStart and LineEnd are the endpoints of a line element.
	LineStart common.Vec3
	LineEnd   common.Vec3
}

// Drawn reports whether the element contributes to the frame.
func (e *Element) Drawn() bool {
	return e.Visible && e.Opacity > 0
}

// Blended reports whether the element needs alpha blending.
func (e *Element) Blended() bool {
	return e.Transparent || e.Opacity < 1
}

// Model returns the element's world transform.
func (e *Element) Model() common.Mat4 {
	if e.Geometry.Kind == KindLine {
		return common.SegmentMatrix(e.LineStart, e.LineEnd)
	}
	return common.ModelMatrix(e.Position, e.Rotation, e.Scale)
}

// Bounds returns a world-space bounding sphere for culling.
func (e *Element) Bounds() (center common.Vec3, radius float64) {
	if e.Geometry.Kind == KindLine {
		center = common.LerpVec3(e.LineStart, e.LineEnd, 0.5)
		return center, e.LineEnd.Sub(e.LineStart).Len() / 2
	}
	return e.Position, e.Geometry.BoundingRadius() * e.Scale.MaxComponent()
}
