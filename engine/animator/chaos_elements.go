package animator

import (
	"math"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

type chaosShape struct {
	geometry element.Geometry
	position common.Vec3
	spin     common.Vec3
	jitter   common.Vec3
	color    string
	scale    float64
}

var chaosShapeTable = []chaosShape{
	{element.Cube(0.8), common.V3(-3, 2, -1), common.V3(0.02, 0.025, 0.015), common.V3(1.2, 0.8, 1.5), "#ff4444", 0.6},
	{element.Cylinder(0.3, 0.3, 1.2, 8), common.V3(4, -1, 0), common.V3(0.018, 0.03, 0.012), common.V3(0.9, 1.4, 1.1), "#ff6644", 0.7},
	{element.Box(1.2, 0.4, 0.4), common.V3(-2, -2, 1), common.V3(0.025, 0.015, 0.028), common.V3(1.5, 1, 0.7), "#444444", 0.5},
	{element.Cone(0.5, 1, 8), common.V3(3, 3, -2), common.V3(0.022, 0.035, 0.018), common.V3(0.8, 1.6, 1.3), "#ff8844", 0.6},
	{element.Octahedron(0.6), common.V3(-4, 0, 2), common.V3(0.03, 0.02, 0.025), common.V3(1.1, 0.9, 1.7), "#666666", 0.5},
	{element.Box(0.5, 1.5, 0.5), common.V3(1, -3, -1), common.V3(0.028, 0.018, 0.032), common.V3(1.4, 1.2, 0.6), "#ff4444", 0.4},
	{element.Tetrahedron(0.7), common.V3(0, 2, 2), common.V3(0.015, 0.028, 0.022), common.V3(0.7, 1.5, 1), "#ff6644", 0.5},
	{element.Cylinder(0.2, 0.5, 1, 6), common.V3(-1, -1, -2), common.V3(0.032, 0.022, 0.018), common.V3(1.6, 0.8, 1.2), "#884444", 0.6},
	{element.Box(0.6, 0.6, 1.2), common.V3(5, 1, 1), common.V3(0.02, 0.03, 0.025), common.V3(0.9, 1.3, 1.4), "#555555", 0.5},
	{element.Dodecahedron(0.5), common.V3(-3, -4, 0), common.V3(0.025, 0.02, 0.03), common.V3(1.3, 1.1, 0.9), "#ff8844", 0.4},
}

var chaosSurface = surface{emissive: 0.6, metalness: 0.4, roughness: 0.3, wireOpacity: 0.5}

type chaosElements struct {
	shapes []overlay
}

var _ Animator = &chaosElements{}

// NewChaosElements creates the "problem" scene: ten dull shapes jitter and spin
// erratically, strongest in the middle of the scene.
//
// Returns:
//   - Animator: the scene animator
func NewChaosElements() Animator {
	return &chaosElements{}
}

// ChaosIntensity is the jitter strength for a local progress: 0 at both ends,
// 1 in the middle.
func ChaosIntensity(local float64) float64 {
	return math.Sin(local * math.Pi)
}

func (s *chaosElements) Build(a element.Arena) {
	s.shapes = s.shapes[:0]
	for _, d := range chaosShapeTable {
		o := newOverlay(a, d.geometry, common.HexColor(d.color), chaosSurface)
		o.pose(a, d.position, common.Vec3{}, d.scale)
		s.shapes = append(s.shapes, o)
	}
}

func (s *chaosElements) Update(a element.Arena, f Frame) {
	intensity := ChaosIntensity(f.Local)
	t := f.Elapsed
	pulse := 1 + math.Sin(t*2)*0.1*intensity

	for i, o := range s.shapes {
		d := chaosShapeTable[i]
		rot, ok := o.rotation(a)
		if !ok {
			continue
		}
		offset := common.V3(
			math.Sin(t*d.jitter[0])*intensity*2,
			math.Cos(t*d.jitter[1])*intensity*2,
			math.Sin(t*d.jitter[2])*intensity*1.5,
		)
		rot = rot.Add(d.spin.Scale((1 + intensity*2) * f.Ticks()))
		o.pose(a, d.position.Add(offset), rot, d.scale*pulse)
	}
}

func (s *chaosElements) Opacity(local float64) float64 {
	return common.FadeInOut(local, fadeBand, true)
}
