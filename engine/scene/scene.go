package scene

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/animator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

// State is the lifecycle state of a scene.
type State int

const (
	Unmounted State = iota
	Mounted
)

func (s State) String() string {
	if s == Mounted {
		return "mounted"
	}
	return "unmounted"
}

type scene struct {
	window   Window
	animator animator.Animator

	state   State
	arena   element.Arena
	local   float64
	opacity float64
}

// Scene couples a window of the scroll range with the animator that fills it.
// Its elements exist only while it is mounted: Mount builds a fresh arena and
// Unmount releases it, so every mount starts from the authored initial pose.
type Scene interface {
	// ID returns the scene identifier.
	ID() ID

	// Window returns the scroll range the scene occupies.
	Window() Window

	// State returns the lifecycle state.
	State() State

	// Mount builds the scene's elements. Mounting a mounted scene does nothing.
	//
	// Returns:
	//   - bool: whether the call changed the state
	Mount() bool

	// Unmount releases the scene's elements. Unmounting an unmounted scene does nothing.
	//
	// Returns:
	//   - bool: whether the call changed the state
	Unmount() bool

	// Update advances the animator for one frame. Ignored while unmounted.
	//
	// Parameters:
	//   - progress: global scroll progress
	//   - elapsed: seconds since the compositor started
	//   - delta: seconds since the previous frame
	Update(progress, elapsed, delta float64)

	// Local returns the local progress of the last update.
	Local() float64

	// Opacity returns the scene-wide opacity of the last update.
	Opacity() float64

	// Arena returns the live element arena, or nil while unmounted.
	Arena() element.Arena
}

var _ Scene = &scene{}

// NewScene creates an unmounted scene.
//
// Parameters:
//   - w: the scroll window
//   - an: the animator that builds and drives the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(w Window, an animator.Animator) Scene {
	return &scene{window: w, animator: an}
}

func (s *scene) ID() ID           { return s.window.Scene }
func (s *scene) Window() Window   { return s.window }
func (s *scene) State() State     { return s.state }
func (s *scene) Local() float64   { return s.local }
func (s *scene) Opacity() float64 { return s.opacity }

func (s *scene) Arena() element.Arena {
	if s.state != Mounted {
		return nil
	}
	return s.arena
}

func (s *scene) Mount() bool {
	if s.state == Mounted {
		return false
	}
	s.arena = element.NewArena()
	s.animator.Build(s.arena)
	s.state = Mounted
	s.local, s.opacity = 0, 0
	common.Logger().Debug("scene mounted", "scene", s.ID(), "elements", s.arena.Len())
	return true
}

func (s *scene) Unmount() bool {
	if s.state == Unmounted {
		return false
	}
	s.arena.Release()
	s.arena = nil
	s.state = Unmounted
	common.Logger().Debug("scene unmounted", "scene", s.ID())
	return true
}

func (s *scene) Update(progress, elapsed, delta float64) {
	if s.state != Mounted {
		return
	}
	s.local = s.window.Local(progress)
	s.opacity = common.Clamp01(s.animator.Opacity(s.local))
	s.animator.Update(s.arena, animator.Frame{
		Progress: progress,
		Local:    s.local,
		Elapsed:  elapsed,
		Delta:    delta,
	})
}
