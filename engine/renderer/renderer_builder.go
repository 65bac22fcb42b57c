package renderer

import "github.com/Carmen-Shannon/oxy-scroll/engine/model"

// RendererBuilderOption is a functional option used to configure a Renderer during construction.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the initial present mode. The default is PresentModeVSync.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - RendererBuilderOption: a function that sets the present mode
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample count. The default is MSAA4x.
//
// Parameters:
//   - count: the sample count
//
// Returns:
//   - RendererBuilderOption: a function that sets the sample count
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer requests the fallback (CPU) adapter.
//
// Parameters:
//   - force: whether to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that sets the adapter preference
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithCache shares a mesh cache with other renderers.
//
// Parameters:
//   - cache: the mesh cache
//
// Returns:
//   - RendererBuilderOption: a function that sets the mesh cache
func WithCache(cache model.Cache) RendererBuilderOption {
	return func(r *renderer) {
		r.cache = cache
	}
}

// WithFrustumCulling toggles skipping elements outside the view. Enabled by default.
//
// Parameters:
//   - enabled: whether to cull
//
// Returns:
//   - RendererBuilderOption: a function that sets frustum culling
func WithFrustumCulling(enabled bool) RendererBuilderOption {
	return func(r *renderer) {
		r.frustumCull = enabled
	}
}
