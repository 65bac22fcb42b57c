package scene

import "github.com/Carmen-Shannon/oxy-scroll/engine/animator"

// Factory creates a fresh animator for a scene.
type Factory func() animator.Animator

// DefaultRegistry maps every scene to its animator.
//
// Returns:
//   - map[ID]Factory: a fresh registry the caller may modify
func DefaultRegistry() map[ID]Factory {
	return map[ID]Factory{
		FloatingShapes: animator.NewFloatingShapes,
		ChaosElements:  animator.NewChaosElements,
		OrderElements:  animator.NewOrderElements,
		CalendarViz:    animator.NewCalendarViz,
		MatchingViz:    animator.NewMatchingViz,
		PipelineViz:    animator.NewPipelineViz,
		PrinciplesViz:  animator.NewPrinciplesViz,
		RotatingSphere: animator.NewRotatingSphere,
	}
}
