package animator

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

const calendarBars = 5

var (
	calendarEven    = common.HexColor("#ff6644")
	calendarOdd     = common.HexColor("#ff8844")
	calendarDone    = common.HexColor("#64ff96")
	calendarColumns = []float64{-4, -2, 0, 2, 4}
)

type calendarViz struct {
	bars    []element.ID
	grid    []element.ID
	markers []element.ID
	success element.ID
}

var _ Animator = &calendarViz{}

// NewCalendarViz creates the month-end close case study: five tall bars, one per
// working day, collapse toward the center and turn green while the last bar
// stays tall, over a faint timeline grid.
//
// Returns:
//   - Animator: the scene animator
func NewCalendarViz() Animator {
	return &calendarViz{}
}

// CalendarBarX returns the x position of bar i for an eased progress.
func CalendarBarX(i int, eased float64) float64 {
	return common.Lerp(float64(i-2)*2, 0, eased)
}

// CalendarBarHeight returns the height of bar i for an eased progress.
// Every bar shrinks to half a unit except the last, which ends at full height.
func CalendarBarHeight(i int, eased float64) float64 {
	end := 0.5
	if i == calendarBars-1 {
		end = 3
	}
	return common.Lerp(3-float64(i)*0.2, end, eased)
}

func barColor(i int) common.Color {
	if i%2 == 0 {
		return calendarEven
	}
	return calendarOdd
}

func (s *calendarViz) Build(a element.Arena) {
	s.bars, s.grid, s.markers = s.bars[:0], s.grid[:0], s.markers[:0]

	gridLine := func(g element.Geometry, pos common.Vec3) element.ID {
		return a.Create(g,
			element.WithPosition(pos),
			element.WithColor(common.White),
			element.WithUnlit(),
			element.WithOpacity(0),
		)
	}
	s.grid = append(s.grid, gridLine(element.Box(10, 0.05, 0.05), common.V3(0, -2, 0)))
	for _, x := range calendarColumns {
		s.grid = append(s.grid, gridLine(element.Box(0.05, 2, 0.05), common.V3(x, -1, 0)))
	}

	for i, x := range calendarColumns {
		opacity := 0.5
		if i == len(calendarColumns)-1 {
			opacity = 0.8
		}
		s.markers = append(s.markers, a.Create(element.Sphere(0.1),
			element.WithPosition(common.V3(x, -2.5, 0)),
			element.WithColor(calendarDone),
			element.WithUnlit(),
			element.WithOpacity(opacity),
		))
	}

	for i := range calendarBars {
		s.bars = append(s.bars, a.Create(element.Box(0.8, 1, 0.8),
			element.WithPosition(common.V3(CalendarBarX(i, 0), 0, 0)),
			element.WithColor(barColor(i)),
			element.WithEmissiveIntensity(0.4),
			element.WithMaterial(0.3, 0.4),
			element.WithOpacity(1),
		))
	}

	s.success = a.Create(element.Sphere(0.3),
		element.WithPosition(common.V3(0, 2.5, 0)),
		element.WithColor(calendarDone),
		element.WithEmissiveIntensity(0.8),
		element.WithOpacity(0),
		element.WithHidden(),
	)
}

func (s *calendarViz) Update(a element.Arena, f Frame) {
	eased := common.EaseInOutCubic(f.Local)

	for i, id := range s.bars {
		a.Update(id, func(e *element.Element) {
			c := barColor(i).Lerp(calendarDone, eased)
			e.Position[0] = CalendarBarX(i, eased)
			e.Scale[1] = CalendarBarHeight(i, eased)
			e.Color, e.Emissive = c, c
			e.EmissiveIntensity = 0.4 + eased*0.2
			if i < calendarBars-1 {
				e.Opacity = 1 - eased*0.8
			}
		})
	}

	for _, id := range s.grid {
		a.Update(id, func(e *element.Element) { e.Opacity = f.Local * 0.3 })
	}
	for _, id := range s.markers[:len(s.markers)-1] {
		a.Update(id, func(e *element.Element) { e.Opacity = (1 - f.Local) * 0.5 })
	}

	showWhen(a, s.success, f.Local > 0.7, common.Threshold(f.Local, 0.7, 0.3))
}

func (s *calendarViz) Opacity(local float64) float64 {
	return fadeIn(local)
}
