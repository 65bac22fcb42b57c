package animator

import (
	"math"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

const (
	orbitRadius    = 2.5
	scatterFactor  = 2.5
	glowShellLimit = 0.03
)

type orbitNode struct {
	speed float64
	phase float64
	color string
}

var orbitNodeTable = []orbitNode{
	{0.3, 0, "#7080ff"},
	{0.25, math.Pi / 2, "#90a0ff"},
	{0.35, math.Pi, "#a0b0ff"},
	{0.28, math.Pi * 3 / 2, "#b0c0ff"},
}

type principlesViz struct {
	nodes  []element.ID
	spokes []element.ID
	hub    element.ID
	ring   element.ID
	glow   element.ID
}

var _ Animator = &principlesViz{}

// NewPrinciplesViz creates the philosophy scene: four principle nodes pull in
// from far out to orbit a glowing hub, each tied to it by a pulsing spoke.
//
// Returns:
//   - Animator: the scene animator
func NewPrinciplesViz() Animator {
	return &principlesViz{}
}

// NodePosition returns where node i sits for an eased progress at time t.
// Nodes start scattered at 2.5 times the orbit radius and only begin to orbit
// as they arrive.
func NodePosition(i int, eased, t float64) common.Vec3 {
	d := orbitNodeTable[i]
	radius := common.Lerp(orbitRadius*scatterFactor, orbitRadius, eased)
	angle := d.phase + t*d.speed*eased
	return common.V3(
		math.Cos(angle)*radius,
		math.Sin(angle)*radius,
		math.Sin(angle*0.5)*0.5*eased,
	)
}

func (s *principlesViz) Build(a element.Arena) {
	s.nodes, s.spokes = s.nodes[:0], s.spokes[:0]

	s.ring = a.Create(element.Torus(orbitRadius, 0.01),
		element.WithRotation(common.V3(math.Pi/2, 0, 0)),
		element.WithColor(common.HexColor("#8096ff")),
		element.WithUnlit(),
		element.WithOpacity(0),
	)

	hub := common.HexColor("#a0b0ff")
	s.hub = a.Create(element.Sphere(0.6),
		element.WithColor(hub),
		element.WithEmissiveIntensity(0.6),
		element.WithMaterial(0.7, 0.2),
	)

	for i, d := range orbitNodeTable {
		c := common.HexColor(d.color)
		s.nodes = append(s.nodes, a.Create(element.Sphere(0.25),
			element.WithPosition(NodePosition(i, 0, 0)),
			element.WithColor(c),
			element.WithEmissiveIntensity(0.5),
			element.WithMaterial(0.6, 0.3),
		))
		s.spokes = append(s.spokes, a.Create(element.Line(),
			element.WithColor(c),
			element.WithUnlit(),
			element.WithOpacity(0),
		))
	}

	s.glow = a.Create(element.Sphere(4),
		element.WithColor(hub),
		element.WithUnlit(),
		element.WithBackSide(),
		element.WithOpacity(0),
		element.WithHidden(),
	)
}

func (s *principlesViz) Update(a element.Arena, f Frame) {
	eased := common.EaseInOutCubic(f.Local)
	t, ticks := f.Elapsed, f.Ticks()

	a.Update(s.ring, func(e *element.Element) {
		e.Opacity = f.Local * 0.15
		e.Rotation[2] += 0.001 * ticks
	})

	a.Update(s.hub, func(e *element.Element) {
		e.Rotation[1] += 0.002 * ticks
		e.Rotation[0] = math.Sin(t*0.3) * 0.1
		e.Scale = common.Uniform(1 + math.Sin(t*1.5)*0.05)
		e.EmissiveIntensity = 0.6 + f.Local*0.4
	})

	for i, id := range s.nodes {
		pos := NodePosition(i, eased, t)
		a.Update(id, func(e *element.Element) {
			e.Position = pos
			e.Rotation[1] += 0.01 * ticks
			e.Rotation[0] += 0.005 * ticks
		})
		if i >= len(s.spokes) {
			continue
		}
		a.Update(s.spokes[i], func(e *element.Element) {
			e.LineStart, e.LineEnd = common.Vec3{}, pos
			e.Opacity = eased * 0.4 * (math.Sin(t*2+orbitNodeTable[i].phase)*0.2 + 0.8)
		})
	}

	showWhen(a, s.glow, f.Local > 0.5, math.Min(glowShellLimit, (f.Local-0.5)*0.06))
}

func (s *principlesViz) Opacity(local float64) float64 {
	return fadeIn(local)
}
