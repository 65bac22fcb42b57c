package animator

import (
	"math"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

type rotatingSphere struct {
	solid element.ID
	wire  element.ID
}

var _ Animator = &rotatingSphere{}

// NewRotatingSphere creates a single large sphere whose orientation tracks the
// global scroll position: two turns about y and one about x over the page.
//
// Returns:
//   - Animator: the scene animator
func NewRotatingSphere() Animator {
	return &rotatingSphere{}
}

func (s *rotatingSphere) Build(a element.Arena) {
	s.solid = a.Create(element.Sphere(3),
		element.WithColor(common.HexColor("#ff00ff")),
		element.WithEmissiveIntensity(1),
		element.WithMaterial(0.3, 0.4),
	)
	s.wire = a.Create(element.Sphere(3),
		element.WithColor(common.HexColor("#00ffff")),
		element.WithWireframe(),
		element.WithOpacity(0.6),
		element.WithScale(1.01),
	)
}

func (s *rotatingSphere) Update(a element.Arena, f Frame) {
	rot := common.V3(f.Progress*math.Pi*2, f.Progress*math.Pi*4, 0)
	for _, id := range []element.ID{s.solid, s.wire} {
		a.Update(id, func(e *element.Element) { e.Rotation = rot })
	}
}

func (s *rotatingSphere) Opacity(float64) float64 {
	return 1
}
