package animator

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

// pairDelay is how much later each successive pair starts matching.
const pairDelay = 0.12

// matchedX is the distance from the center where matched pairs come to rest.
const matchedX = 1.5

type matchPair struct {
	left   common.Vec3
	right  common.Vec3
	finalY float64
}

var matchPairTable = []matchPair{
	{common.V3(-4, 3, -1), common.V3(4, 2.8, -1.2), 2.5},
	{common.V3(-4, 1.5, 1), common.V3(4, 1.3, 0.8), 1.5},
	{common.V3(-4, 0, -1.5), common.V3(4, 0.2, 1), 0.5},
	{common.V3(-4, -1.5, 0.5), common.V3(4, -1.3, -0.8), -0.5},
	{common.V3(-4, -3, 1.2), common.V3(4, -2.8, 0), -1.5},
	{common.V3(-4, 2.2, 0.8), common.V3(4, -0.5, -1.5), -2.5},
	{common.V3(-4, -4, -0.5), common.V3(4, 4, 1.5), -3.5},
}

type matchingPair struct {
	left, right, link element.ID
}

type matchingViz struct {
	pairs   []matchingPair
	labels  []element.ID
	success element.ID
}

var _ Animator = &matchingViz{}

// NewMatchingViz creates the bank reconciliation case study: seven pairs of
// transactions start on opposite sides, then one after another slide together,
// turn to a matched color, and get linked.
//
// Returns:
//   - Animator: the scene animator
func NewMatchingViz() Animator {
	return &matchingViz{}
}

func unmatchedColor(i int) common.Color {
	if i%2 == 0 {
		return common.HexColor("#ff8844")
	}
	return common.HexColor("#ff6644")
}

func matchedColor(i int) common.Color {
	if i%3 == 0 {
		return common.HexColor("#64c8ff")
	}
	return common.HexColor("#64ff96")
}

// MatchPositions returns where pair i's left and right items sit for a local
// progress. Items keep their authored x of -4 and 4 until their pair starts.
func MatchPositions(i int, local float64) (left, right common.Vec3) {
	d := matchPairTable[i]
	pp := common.Stagger(common.EaseInOutCubic(local), float64(i)*pairDelay)
	left = common.V3(
		common.Lerp(d.left[0], -matchedX, pp),
		common.Lerp(d.left[1], d.finalY, pp),
		common.Lerp(d.left[2], 0, pp),
	)
	right = common.V3(
		common.Lerp(d.right[0], matchedX, pp),
		common.Lerp(d.right[1], d.finalY, pp),
		common.Lerp(d.right[2], 0, pp),
	)
	return left, right
}

func (s *matchingViz) Build(a element.Arena) {
	s.pairs, s.labels = s.pairs[:0], s.labels[:0]
	for i, d := range matchPairTable {
		item := func(pos common.Vec3) element.ID {
			return a.Create(element.Sphere(0.2),
				element.WithPosition(pos),
				element.WithColor(unmatchedColor(i)),
				element.WithEmissiveIntensity(0.3),
				element.WithMaterial(0.4, 0.3),
			)
		}
		s.pairs = append(s.pairs, matchingPair{
			left:  item(d.left),
			right: item(d.right),
			link: a.Create(element.Line(),
				element.WithEndpoints(d.left, d.right),
				element.WithColor(matchedColor(i)),
				element.WithUnlit(),
				element.WithOpacity(0),
			),
		})
	}

	for _, x := range []float64{-4, 4} {
		s.labels = append(s.labels, a.Create(element.Sphere(0.15),
			element.WithPosition(common.V3(x, 4.5, 0)),
			element.WithColor(common.HexColor("#ff6644")),
			element.WithUnlit(),
			element.WithOpacity(1),
		))
	}

	s.success = a.Create(element.Sphere(0.3),
		element.WithPosition(common.V3(0, 4.5, 0)),
		element.WithColor(common.HexColor("#64ff96")),
		element.WithEmissiveIntensity(1.2),
		element.WithOpacity(0),
		element.WithHidden(),
	)
}

func (s *matchingViz) Update(a element.Arena, f Frame) {
	eased := common.EaseInOutCubic(f.Local)

	for i, p := range s.pairs {
		pp := common.Stagger(eased, float64(i)*pairDelay)
		left, right := MatchPositions(i, f.Local)
		c := unmatchedColor(i).Lerp(matchedColor(i), pp)

		item := func(pos common.Vec3) func(*element.Element) {
			return func(e *element.Element) {
				e.Position = pos
				e.Color, e.Emissive = c, c
				e.EmissiveIntensity = 0.3 + pp*0.3
			}
		}
		a.Update(p.left, item(left))
		a.Update(p.right, item(right))
		a.Update(p.link, func(e *element.Element) {
			e.LineStart, e.LineEnd = left, right
			e.Opacity = pp * 0.8
			e.EmissiveIntensity = pp * 1.5
		})
	}

	for _, id := range s.labels {
		showWhen(a, id, f.Local < 0.3, 1-f.Local*3)
	}
	showWhen(a, s.success, f.Local > 0.8, common.Threshold(f.Local, 0.8, 0.2))
}

func (s *matchingViz) Opacity(local float64) float64 {
	return fadeIn(local)
}
