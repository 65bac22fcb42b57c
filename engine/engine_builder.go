package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets the window whose input drives the scroll source.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer each frame is drawn with. Without one the
// engine composes frames but draws nothing.
//
// Parameters:
//   - r: the renderer, usually created for the same window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCompositor replaces the default seven-scene compositor.
//
// Parameters:
//   - c: the compositor
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCompositor(c scene.Compositor) EngineBuilderOption {
	return func(e *engine) {
		e.compositor = c
	}
}

// WithSource replaces the default scroll source.
//
// Parameters:
//   - s: the scroll source
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSource(s scroll.Source) EngineBuilderOption {
	return func(e *engine) {
		e.source = s
	}
}

// WithPages sets the document height in viewports. Values <= 1 leave nothing
// to scroll and are ignored.
//
// Parameters:
//   - pages: viewports per document (default 8)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPages(pages float64) EngineBuilderOption {
	return func(e *engine) {
		if pages > 1 {
			e.pages = pages
		}
	}
}

// WithSectionTitles mirrors the heading of the section under the viewport into
// the window title.
//
// Parameters:
//   - enabled: if true, the title follows the scroll position
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSectionTitles(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.sectionTitles = enabled
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
