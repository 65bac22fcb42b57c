package animator

import (
	"math"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

const (
	pipelineParticles = 15
	pipelineColumns   = 5
	particleDelay     = 0.07
	particleSize      = 0.15
)

var (
	sourceColors = []common.Color{
		common.HexColor("#ff4444"),
		common.HexColor("#ff8844"),
		common.HexColor("#ffaa44"),
		common.HexColor("#44ff88"),
		common.HexColor("#4488ff"),
	}
	pipelineColor = common.HexColor("#9664ff")
	stageX        = []float64{-1.5, 0, 1.5}
	flowSegments  = [][2]float64{{-5, -1.5}, {-1.5, 0}, {0, 1.5}, {1.5, 4}}
)

type pipelineViz struct {
	particles   []element.ID
	stages      []element.ID
	flows       []element.ID
	sourceZone  element.ID
	sourceLabel element.ID
	outputZone  element.ID
	outputLabel element.ID
	success     element.ID
}

var _ Animator = &pipelineViz{}

// NewPipelineViz creates the data pipeline case study: fifteen colored records
// leave their source systems one after another, pass through three processing
// stages, and land as a uniform grid on the output side.
//
// Returns:
//   - Animator: the scene animator
func NewPipelineViz() Animator {
	return &pipelineViz{}
}

// ParticlePosition returns where particle i is along its path for a particle
// progress. The path runs in two straight legs: source to the middle stage,
// then middle stage to the output grid.
func ParticlePosition(i int, pp float64) common.Vec3 {
	row, col := float64(i/pipelineColumns), float64(i%pipelineColumns)
	start := common.V3(-5, -2+row*1.5, -1+col*0.5)
	mid := common.V3(0, start[1]+math.Sin(float64(i)*0.5)*0.5, 0)
	end := common.V3(4, -2+row*1.5, -0.5+col*0.5)
	if pp < 0.5 {
		return common.LerpVec3(start, mid, pp*2)
	}
	return common.LerpVec3(mid, end, (pp-0.5)*2)
}

// particleOpacity ramps particles in over the first and out over the last 5%
// of their own journey.
func particleOpacity(pp float64) float64 {
	switch {
	case pp < 0.05:
		return pp / 0.05
	case pp > 0.95:
		return (1 - pp) / 0.05
	default:
		return 1
	}
}

func (s *pipelineViz) Build(a element.Arena) {
	s.particles, s.stages, s.flows = s.particles[:0], s.stages[:0], s.flows[:0]

	for i := range pipelineParticles {
		s.particles = append(s.particles, a.Create(element.Sphere(particleSize),
			element.WithPosition(ParticlePosition(i, 0)),
			element.WithColor(sourceColors[i%len(sourceColors)]),
			element.WithEmissiveIntensity(0.5),
			element.WithOpacity(0),
			element.WithScale(particleSize),
		))
	}

	for _, x := range stageX {
		s.stages = append(s.stages, a.Create(element.Cylinder(0.3, 0.3, 2, 16),
			element.WithPosition(common.V3(x, 0, 0)),
			element.WithColor(pipelineColor),
			element.WithEmissiveIntensity(0.7),
			element.WithMaterial(0.5, 0.3),
			element.WithOpacity(0),
		))
	}

	for _, seg := range flowSegments {
		s.flows = append(s.flows, a.Create(element.Line(),
			element.WithEndpoints(common.V3(seg[0], 0, 0), common.V3(seg[1], 0, 0)),
			element.WithColor(pipelineColor),
			element.WithUnlit(),
			element.WithOpacity(0),
			element.WithHidden(),
		))
	}

	s.sourceZone = a.Create(element.Box(1, 4, 2),
		element.WithPosition(common.V3(-5, 0, 0)),
		element.WithColor(common.HexColor("#ff6644")),
		element.WithWireframe(),
		element.WithOpacity(0.3),
	)
	s.sourceLabel = a.Create(element.Sphere(0.2),
		element.WithPosition(common.V3(-5, 3, 0)),
		element.WithColor(common.HexColor("#ff6644")),
		element.WithUnlit(),
		element.WithOpacity(1),
	)
	s.outputZone = a.Create(element.Box(1, 4, 2),
		element.WithPosition(common.V3(4, 0, 0)),
		element.WithColor(pipelineColor),
		element.WithWireframe(),
		element.WithOpacity(0),
		element.WithHidden(),
	)
	s.outputLabel = a.Create(element.Sphere(0.2),
		element.WithPosition(common.V3(4, 3, 0)),
		element.WithColor(pipelineColor),
		element.WithUnlit(),
		element.WithOpacity(0),
		element.WithHidden(),
	)
	s.success = a.Create(element.Sphere(0.4),
		element.WithPosition(common.V3(0, 4, 0)),
		element.WithColor(pipelineColor),
		element.WithEmissiveIntensity(1.5),
		element.WithOpacity(0),
		element.WithHidden(),
	)
}

func (s *pipelineViz) Update(a element.Arena, f Frame) {
	eased := common.EaseInOutCubic(f.Local)
	t := f.Elapsed

	for i, id := range s.particles {
		pp := common.Stagger(eased, float64(i%pipelineParticles)*particleDelay)
		a.Update(id, func(e *element.Element) {
			c := sourceColors[i%len(sourceColors)].Lerp(pipelineColor, pp)
			speed := 2 + float64(i%3)*0.5
			e.Position = ParticlePosition(i, pp)
			e.Color, e.Emissive = c, c
			e.EmissiveIntensity = 0.5 + pp*0.5
			e.Opacity = particleOpacity(pp)
			e.Scale = common.Uniform(particleSize * (1 + math.Sin(t*speed)*0.2*(1-pp)))
		})
	}

	pulse := math.Sin(t*3)*0.3 + 0.7
	for _, id := range s.stages {
		a.Update(id, func(e *element.Element) {
			e.EmissiveIntensity = f.Local * pulse
			e.Opacity = f.Local
		})
	}

	for _, id := range s.flows {
		showWhen(a, id, f.Local > 0.2, f.Local*0.3)
	}

	incoming := f.Local < 0.4
	showWhen(a, s.sourceZone, incoming, (1-f.Local*2.5)*0.3)
	showWhen(a, s.sourceLabel, incoming, 1-f.Local*2.5)

	outgoing := math.Min(1, (f.Local-0.6)*2.5)
	showWhen(a, s.outputZone, f.Local > 0.6, outgoing*0.4)
	showWhen(a, s.outputLabel, f.Local > 0.6, outgoing)

	showWhen(a, s.success, f.Local > 0.85, common.Threshold(f.Local, 0.85, 0.15))
}

func (s *pipelineViz) Opacity(local float64) float64 {
	return fadeIn(local)
}
