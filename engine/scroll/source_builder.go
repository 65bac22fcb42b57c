package scroll

// SourceBuilderOption configures a Source.
type SourceBuilderOption func(*sourceImpl)

// WithViewportHeight sets the initial viewport height in pixels.
//
// Parameters:
//   - h: the viewport height
//
// Returns:
//   - SourceBuilderOption: a function that sets the viewport height
func WithViewportHeight(h float64) SourceBuilderOption {
	return func(s *sourceImpl) {
		s.viewportHeight = max(0, h)
	}
}

// WithDocumentHeight sets the initial document height in pixels.
//
// Parameters:
//   - h: the document height
//
// Returns:
//   - SourceBuilderOption: a function that sets the document height
func WithDocumentHeight(h float64) SourceBuilderOption {
	return func(s *sourceImpl) {
		s.documentHeight = max(0, h)
	}
}

// WithScrollTop sets the initial scroll offset in pixels.
//
// Parameters:
//   - px: the scroll offset
//
// Returns:
//   - SourceBuilderOption: a function that sets the scroll offset
func WithScrollTop(px float64) SourceBuilderOption {
	return func(s *sourceImpl) {
		s.scrollTop = px
	}
}

// WithWheelStep sets how many pixels one wheel notch scrolls.
//
// Parameters:
//   - px: pixels per notch
//
// Returns:
//   - SourceBuilderOption: a function that sets the wheel step
func WithWheelStep(px float64) SourceBuilderOption {
	return func(s *sourceImpl) {
		s.wheelStep = px
	}
}

// WithLineStep sets how many pixels an arrow key scrolls.
//
// Parameters:
//   - px: pixels per key press
//
// Returns:
//   - SourceBuilderOption: a function that sets the line step
func WithLineStep(px float64) SourceBuilderOption {
	return func(s *sourceImpl) {
		s.lineStep = px
	}
}

// WithSmoothing enables exponential easing of the rendered progress toward the
// scroll position. rate is in 1/seconds; 0 disables smoothing.
//
// Parameters:
//   - rate: the smoothing rate
//
// Returns:
//   - SourceBuilderOption: a function that sets the smoothing rate
func WithSmoothing(rate float64) SourceBuilderOption {
	return func(s *sourceImpl) {
		s.smoothingRate = max(0, rate)
	}
}
