package animator

import (
	"math"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

// orderRadius is the radius of the circle the shapes settle on.
const orderRadius = 3

// orderSettled is the local progress after which the shapes rotate in sync.
const orderSettled = 0.7

type orderShape struct {
	geometry element.Geometry
	start    common.Vec3
	color    string
	scale    float64
}

var orderShapeTable = []orderShape{
	{element.Cube(0.6), common.V3(-4, 2, -1), "#00ffff", 0.7},
	{element.Sphere(0.35), common.V3(3, -2, 1), "#4da6ff", 0.8},
	{element.Cube(0.5), common.V3(-2, -3, -2), "#00ffff", 0.6},
	{element.Octahedron(0.4), common.V3(4, 3, 2), "#80d4ff", 0.7},
	{element.Sphere(0.3), common.V3(-3, 1, 2), "#00ffff", 0.6},
	{element.Icosahedron(0.35), common.V3(2, -4, -1), "#4da6ff", 0.7},
	{element.Cube(0.55), common.V3(0, 4, -2), "#b3e0ff", 0.65},
	{element.Octahedron(0.38), common.V3(-4, -1, 1), "#00ffff", 0.7},
}

var orderSurface = surface{emissive: 0.4, metalness: 0.5, roughness: 0.2, wireOpacity: 0.3}

type orderElements struct {
	shapes []overlay
	core   element.ID
}

var _ Animator = &orderElements{}

// NewOrderElements creates the "transformation" scene: eight bright shapes ease
// from scattered positions onto a circle, then rotate in sync around a core
// sphere that fades in once they are halfway there.
//
// Returns:
//   - Animator: the scene animator
func NewOrderElements() Animator {
	return &orderElements{}
}

// OrderTarget returns where shape i settles: evenly spaced on a circle of
// radius 3 in the z = 0 plane.
func OrderTarget(i int) common.Vec3 {
	angle := float64(i) * math.Pi / 4
	return common.V3(math.Cos(angle)*orderRadius, math.Sin(angle)*orderRadius, 0)
}

func (s *orderElements) Build(a element.Arena) {
	s.shapes = s.shapes[:0]
	for _, d := range orderShapeTable {
		o := newOverlay(a, d.geometry, common.HexColor(d.color), orderSurface)
		o.pose(a, d.start, common.Vec3{}, d.scale*0.8)
		s.shapes = append(s.shapes, o)
	}
	s.core = a.Create(element.Sphere(0.5),
		element.WithColor(common.White),
		element.WithEmissive(common.HexColor("#00ffff"), 0.6),
		element.WithMaterial(0.8, 0.1),
		element.WithOpacity(0),
		element.WithHidden(),
	)
}

func (s *orderElements) Update(a element.Arena, f Frame) {
	eased := common.EaseInOutCubic(f.Local)
	settled := f.Local > orderSettled
	slowdown := math.Max(0, 1-eased)

	for i, o := range s.shapes {
		d := orderShapeTable[i]
		rot, ok := o.rotation(a)
		if !ok {
			continue
		}
		if settled {
			rot[1] += 0.003 * f.Ticks()
			rot[0] = math.Sin(f.Elapsed*0.5+float64(i)) * 0.1
		} else {
			rot[1] += 0.01 * slowdown * f.Ticks()
			rot[0] += 0.008 * slowdown * f.Ticks()
		}
		pos := common.LerpVec3(d.start, OrderTarget(i), eased)
		o.pose(a, pos, rot, d.scale*common.Lerp(0.8, 1, eased))
	}

	showWhen(a, s.core, f.Local > 0.5, common.Threshold(f.Local, 0.5, 0.5))
}

func (s *orderElements) Opacity(local float64) float64 {
	return fadeIn(local)
}
