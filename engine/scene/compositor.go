package scene

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
	"github.com/Carmen-Shannon/oxy-scroll/engine/light"
)

// maxDelta caps the time step handed to animators after a stall, so tick-based
// rotations do not jump when the window is dragged or the process is paused.
const maxDelta = 0.1

type compositorImpl struct {
	mu *sync.Mutex

	table    Table
	registry map[ID]Factory
	scenes   []Scene

	camera     camera.Camera
	lights     []light.Light
	background common.Color

	started     bool
	lastElapsed float64
}

// Compositor owns the scene table and the mounted scenes. Each frame it mounts
// the scenes whose window contains the scroll progress, unmounts the rest,
// advances the mounted ones, and returns the result as a RenderTree.
type Compositor interface {
	// Frame synchronizes mounts with progress and advances every mounted scene.
	//
	// Parameters:
	//   - progress: global scroll progress, clamped to [0, 1]
	//   - elapsed: seconds since the frame loop started
	//
	// Returns:
	//   - RenderTree: the frame's drawable content
	Frame(progress, elapsed float64) RenderTree

	// Advance runs the frame clock forward to elapsed in fixed steps at a
	// constant progress and returns the last frame. Headless renders use it
	// so rotations integrated from the frame delta reach the pose they would
	// have after elapsed seconds of playback.
	//
	// Parameters:
	//   - progress: global scroll progress, clamped to [0, 1]
	//   - elapsed: the target time in seconds
	//   - step: seconds per intermediate frame, capped at maxDelta
	//
	// Returns:
	//   - RenderTree: the frame at elapsed
	Advance(progress, elapsed, step float64) RenderTree

	// Sync mounts and unmounts scenes for progress without advancing them.
	//
	// Parameters:
	//   - progress: global scroll progress
	Sync(progress float64)

	// Mounted lists the mounted scenes in table order.
	//
	// Returns:
	//   - []ID: the mounted scenes
	Mounted() []ID

	// Scene returns the scene for id.
	//
	// Returns:
	//   - Scene: the scene
	//   - bool: whether the table lists id
	Scene(id ID) (Scene, bool)

	// Table returns a copy of the scene table.
	Table() Table

	// Camera returns the shared camera.
	Camera() camera.Camera

	// Lights returns the scene lights.
	Lights() []light.Light

	// Reset unmounts every scene and restarts the frame clock.
	Reset()
}

var _ Compositor = &compositorImpl{}

// NewCompositor creates a compositor for the default table with the default
// camera and lights unless options override them.
//
// Parameters:
//   - options: functional options to configure the compositor
//
// Returns:
//   - Compositor: the new compositor
//   - error: if the table is invalid or a scene has no animator
func NewCompositor(options ...CompositorBuilderOption) (Compositor, error) {
	c := &compositorImpl{
		mu:         &sync.Mutex{},
		table:      DefaultTable(),
		registry:   DefaultRegistry(),
		background: common.Black,
	}
	for _, option := range options {
		option(c)
	}

	if err := c.table.Validate(); err != nil {
		return nil, fmt.Errorf("scene table: %w", err)
	}
	if c.camera == nil {
		c.camera = camera.NewCamera()
	}
	if c.lights == nil {
		c.lights = DefaultLights()
	}

	c.scenes = make([]Scene, 0, len(c.table))
	for _, w := range c.table {
		factory, ok := c.registry[w.Scene]
		if !ok || factory == nil {
			return nil, fmt.Errorf("scene %s: no animator registered", w.Scene)
		}
		c.scenes = append(c.scenes, NewScene(w, factory()))
	}
	return c, nil
}

// DefaultLights returns the ambient fill and the two point lights of the backdrop.
//
// Returns:
//   - []light.Light: ambient 1, a key light at (10, 10, 10) and a fill at (-10, -10, -10)
func DefaultLights() []light.Light {
	return []light.Light{
		light.NewAmbient(1),
		light.NewPoint(common.V3(10, 10, 10), 2),
		light.NewPoint(common.V3(-10, -10, -10), 1),
	}
}

func (c *compositorImpl) Frame(progress, elapsed float64) RenderTree {
	c.mu.Lock()
	defer c.mu.Unlock()

	progress = common.Clamp01(progress)
	c.advance(progress, elapsed)
	return c.tree(progress, elapsed)
}

func (c *compositorImpl) Advance(progress, elapsed, step float64) RenderTree {
	c.mu.Lock()
	defer c.mu.Unlock()

	progress = common.Clamp01(progress)
	if step <= 0 || step > maxDelta {
		step = maxDelta
	}
	if !c.started {
		c.advance(progress, 0)
	}
	for c.lastElapsed+step < elapsed {
		c.advance(progress, c.lastElapsed+step)
	}
	c.advance(progress, elapsed)
	return c.tree(progress, elapsed)
}

func (c *compositorImpl) Sync(progress float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sync(common.Clamp01(progress))
}

func (c *compositorImpl) Mounted() []ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []ID
	for _, s := range c.scenes {
		if s.State() == Mounted {
			out = append(out, s.ID())
		}
	}
	return out
}

func (c *compositorImpl) Scene(id ID) (Scene, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.scenes {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

func (c *compositorImpl) Table() Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.table)
}

func (c *compositorImpl) Camera() camera.Camera {
	return c.camera
}

func (c *compositorImpl) Lights() []light.Light {
	return c.lights
}

func (c *compositorImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.scenes {
		s.Unmount()
	}
	c.started = false
	c.lastElapsed = 0
}

// advance moves the frame clock to elapsed and updates every mounted scene.
// Caller must hold the mutex.
func (c *compositorImpl) advance(progress, elapsed float64) {
	delta := 0.0
	if c.started {
		delta = common.Clamp(elapsed-c.lastElapsed, 0, maxDelta)
	}
	c.started = true
	c.lastElapsed = elapsed

	c.sync(progress)
	for _, s := range c.scenes {
		if s.State() == Mounted {
			s.Update(progress, elapsed, delta)
		}
	}
}

// tree collects the mounted scenes into a RenderTree. Caller must hold the mutex.
func (c *compositorImpl) tree(progress, elapsed float64) RenderTree {
	tree := RenderTree{
		Progress:   progress,
		Elapsed:    elapsed,
		Camera:     c.camera,
		Lights:     c.lights,
		Background: c.background,
	}
	for _, s := range c.scenes {
		if s.State() != Mounted {
			continue
		}
		layer := Layer{Scene: s.ID(), Opacity: s.Opacity()}
		s.Arena().Each(func(e *element.Element) {
			layer.Elements = append(layer.Elements, e)
		})
		tree.Layers = append(tree.Layers, layer)
	}
	return tree
}

// sync mounts entering scenes and unmounts leaving ones. Caller must hold the mutex.
func (c *compositorImpl) sync(progress float64) {
	for _, s := range c.scenes {
		if s.Window().Contains(progress) {
			s.Mount()
		} else {
			s.Unmount()
		}
	}
}
