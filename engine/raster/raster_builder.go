package raster

import "github.com/Carmen-Shannon/oxy-scroll/engine/model"

// RasterizerBuilderOption is a functional option for configuring a Rasterizer.
type RasterizerBuilderOption func(*rasterizerImpl)

// WithSize sets the output size in pixels. Non-positive sizes are ignored.
//
// Parameters:
//   - width: the image width
//   - height: the image height
//
// Returns:
//   - RasterizerBuilderOption: a function that applies the size option
func WithSize(width, height int) RasterizerBuilderOption {
	return func(r *rasterizerImpl) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

// WithCache shares a model cache, for example between rasterizers on a worker pool.
//
// Parameters:
//   - c: the model cache
//
// Returns:
//   - RasterizerBuilderOption: a function that applies the cache option
func WithCache(c model.Cache) RasterizerBuilderOption {
	return func(r *rasterizerImpl) {
		r.cache = c
	}
}

// WithLineWidth sets the stroke width of wireframes and lines in pixels.
func WithLineWidth(width float64) RasterizerBuilderOption {
	return func(r *rasterizerImpl) {
		if width > 0 {
			r.lineWidth = width
		}
	}
}

// WithFrustumCulling toggles skipping elements outside the view frustum.
func WithFrustumCulling(enabled bool) RasterizerBuilderOption {
	return func(r *rasterizerImpl) {
		r.frustumCull = enabled
	}
}
