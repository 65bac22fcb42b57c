package animator

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

type floatingShape struct {
	geometry element.Geometry
	start    common.Vec3
	end      common.Vec3
	spin     common.Vec3
	color    string
	scale    float64
}

var floatingShapeTable = []floatingShape{
	{element.Cube(1), common.V3(-4, 3, -2), common.V3(-3, 2, 1), common.V3(0.01, 0.015, 0.005), "#ff00ff", 0.6},
	{element.Sphere(0.5), common.V3(5, -2, -3), common.V3(3, -1, 0), common.V3(0.008, 0.012, 0.01), "#00ffff", 0.8},
	{element.Torus(0.5, 0.2), common.V3(-3, -3, 2), common.V3(-2, -2, -1), common.V3(0.015, 0.01, 0.012), "#ff00ff", 0.5},
	{element.Octahedron(0.6), common.V3(4, 2, 1), common.V3(2, 1, -2), common.V3(0.012, 0.018, 0.008), "#ff66ff", 0.7},
	{element.Icosahedron(0.5), common.V3(0, 4, -1), common.V3(0, 2, 2), common.V3(0.01, 0.01, 0.015), "#00ffff", 0.5},
	{element.TorusKnot(0.4, 0.15), common.V3(-5, 0, 0), common.V3(-3, 0, -2), common.V3(0.008, 0.015, 0.01), "#ff66ff", 0.4},
	{element.Cube(0.8), common.V3(3, -4, 2), common.V3(2, -2, 1), common.V3(0.015, 0.01, 0.012), "#00ffff", 0.3},
}

var floatingSurface = surface{emissive: 0.5, metalness: 0.3, roughness: 0.4, wireOpacity: 0.4}

type floatingShapes struct {
	shapes []overlay
}

var _ Animator = &floatingShapes{}

// NewFloatingShapes creates the hero scene: seven glowing primitives drift
// linearly from scattered positions toward a tighter cluster while spinning.
//
// Returns:
//   - Animator: the scene animator
func NewFloatingShapes() Animator {
	return &floatingShapes{}
}

func (s *floatingShapes) Build(a element.Arena) {
	s.shapes = s.shapes[:0]
	for _, d := range floatingShapeTable {
		o := newOverlay(a, d.geometry, common.HexColor(d.color), floatingSurface)
		o.pose(a, d.start, d.spin, d.scale)
		s.shapes = append(s.shapes, o)
	}
}

func (s *floatingShapes) Update(a element.Arena, f Frame) {
	for i, o := range s.shapes {
		d := floatingShapeTable[i]
		rot, ok := o.rotation(a)
		if !ok {
			continue
		}
		rot = rot.Add(d.spin.Scale(f.Ticks()))
		o.pose(a, common.LerpVec3(d.start, d.end, f.Local), rot, d.scale)
	}
}

func (s *floatingShapes) Opacity(float64) float64 {
	return 1
}
