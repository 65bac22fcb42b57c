package scene

import (
	"maps"
	"slices"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/light"
)

// CompositorBuilderOption is a functional option for configuring a Compositor.
type CompositorBuilderOption func(*compositorImpl)

// WithTable replaces the scene table. NewCompositor validates it.
//
// Parameters:
//   - t: the scene table
//
// Returns:
//   - CompositorBuilderOption: a function that applies the table option
func WithTable(t Table) CompositorBuilderOption {
	return func(c *compositorImpl) {
		c.table = slices.Clone(t)
	}
}

// WithRegistry replaces the scene to animator registry.
//
// Parameters:
//   - r: the registry
//
// Returns:
//   - CompositorBuilderOption: a function that applies the registry option
func WithRegistry(r map[ID]Factory) CompositorBuilderOption {
	return func(c *compositorImpl) {
		c.registry = maps.Clone(r)
	}
}

// WithAnimator assigns the animator factory for one scene, for example to show
// the rotating sphere in place of the floating shapes.
//
// Parameters:
//   - id: the scene
//   - f: the animator factory
//
// Returns:
//   - CompositorBuilderOption: a function that applies the animator option
func WithAnimator(id ID, f Factory) CompositorBuilderOption {
	return func(c *compositorImpl) {
		if c.registry == nil {
			c.registry = make(map[ID]Factory)
		}
		c.registry[id] = f
	}
}

// WithCamera sets the shared camera.
func WithCamera(cam camera.Camera) CompositorBuilderOption {
	return func(c *compositorImpl) {
		c.camera = cam
	}
}

// WithLights replaces the default lights.
func WithLights(lights ...light.Light) CompositorBuilderOption {
	return func(c *compositorImpl) {
		c.lights = lights
	}
}

// WithBackground sets the clear color.
func WithBackground(bg common.Color) CompositorBuilderOption {
	return func(c *compositorImpl) {
		c.background = bg
	}
}
