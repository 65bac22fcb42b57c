package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

var (
	// ErrInvalidWindow is returned for a window outside 0 <= start < end <= 1.
	ErrInvalidWindow = errors.New("invalid scene window")
	// ErrOverlap is returned when more than two windows cover the same progress.
	ErrOverlap = errors.New("too many overlapping scene windows")
	// ErrDuplicateScene is returned when a table lists a scene twice.
	ErrDuplicateScene = errors.New("duplicate scene in table")
)

// MaxOverlap is the largest number of windows allowed to cover one progress value.
const MaxOverlap = 2

// Window is the sub-range of global scroll progress during which a scene is mounted.
type Window struct {
	Scene ID
	Start float64
	End   float64
}

// Validate checks 0 <= Start < End <= 1.
//
// Returns:
//   - error: ErrInvalidWindow wrapped with the offending bounds, or nil
func (w Window) Validate() error {
	if !(w.Start >= 0 && w.Start < w.End && w.End <= 1) {
		return fmt.Errorf("%s [%v, %v]: %w", w.Scene, w.Start, w.End, ErrInvalidWindow)
	}
	return nil
}

// Contains reports whether p lies strictly inside the window.
// A window starting at 0 also contains 0, so the first scene is on screen
// before any scrolling happens.
//
// Parameters:
//   - p: global scroll progress
//
// Returns:
//   - bool: whether the scene should be mounted at p
func (w Window) Contains(p float64) bool {
	if p >= w.End {
		return false
	}
	return p > w.Start || (w.Start == 0 && p == 0)
}

// Local maps global progress into the window: 0 at Start, 1 at End, clamped.
//
// Parameters:
//   - p: global scroll progress
//
// Returns:
//   - float64: local progress in [0, 1]
func (w Window) Local(p float64) float64 {
	return common.Clamp01(common.Ratio(p-w.Start, w.End-w.Start))
}

// Table is the ordered list of scene windows.
type Table []Window

// DefaultTable returns the authored scene ranges. Neighbouring windows overlap
// by a few percent of the page so one scene fades out while the next fades in.
//
// Returns:
//   - Table: a fresh copy of the default table
func DefaultTable() Table {
	return Table{
		{FloatingShapes, 0.00, 0.15},
		{ChaosElements, 0.10, 0.28},
		{OrderElements, 0.23, 0.42},
		{CalendarViz, 0.37, 0.54},
		{MatchingViz, 0.50, 0.67},
		{PipelineViz, 0.625, 0.77},
		{PrinciplesViz, 0.75, 0.90},
	}
}

// ActiveScenes lists the scenes whose window contains p, in table order.
// Out-of-range input is clamped.
//
// Parameters:
//   - p: global scroll progress
//
// Returns:
//   - []ID: the active scenes, at most MaxOverlap for a valid table
func (t Table) ActiveScenes(p float64) []ID {
	p = common.Clamp01(p)
	var out []ID
	for _, w := range t {
		if w.Contains(p) {
			out = append(out, w.Scene)
		}
	}
	return out
}

// Lookup returns the window of a scene.
//
// Parameters:
//   - id: the scene
//
// Returns:
//   - Window: the scene's window
//   - bool: whether the table lists the scene
func (t Table) Lookup(id ID) (Window, bool) {
	for _, w := range t {
		if w.Scene == id {
			return w, true
		}
	}
	return Window{}, false
}

// Validate checks every window and that no progress value is covered by more
// than MaxOverlap windows.
//
// Returns:
//   - error: the first violation found, or nil
func (t Table) Validate() error {
	seen := make(map[ID]bool, len(t))
	points := make([]float64, 0, len(t)*2+2)
	for _, w := range t {
		if err := w.Validate(); err != nil {
			return err
		}
		if seen[w.Scene] {
			return fmt.Errorf("%s: %w", w.Scene, ErrDuplicateScene)
		}
		seen[w.Scene] = true
		points = append(points, w.Start, w.End)
	}
	points = append(points, 0, 1)
	slices.Sort(points)
	points = slices.Compact(points)

	probes := slices.Clone(points)
	for i := 0; i+1 < len(points); i++ {
		probes = append(probes, (points[i]+points[i+1])/2)
	}
	for _, p := range probes {
		if n := len(t.ActiveScenes(p)); n > MaxOverlap {
			return fmt.Errorf("%d windows cover progress %v: %w", n, p, ErrOverlap)
		}
	}
	return nil
}
