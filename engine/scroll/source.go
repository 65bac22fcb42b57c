package scroll

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

type sourceImpl struct {
	mu *sync.Mutex

	scrollTop      float64
	documentHeight float64
	viewportHeight float64
	progress       float64

	wheelStep float64
	lineStep  float64

	smoothingRate float64
	rendered      float64

	subscribers map[int]func(float64)
	nextID      int
}

// Source turns document scroll events into a normalized progress value in [0, 1].
//
// Events (scroll, wheel, key, resize) may arrive on any goroutine; readers get a
// consistent value at any time. Subscribers are notified synchronously on the
// goroutine that delivered the event, and only when the progress changed.
type Source interface {
	// Progress returns scrollTop / (documentHeight - viewportHeight) clamped to [0, 1].
	// A document no taller than the viewport reports 0.
	//
	// Returns:
	//   - float64: the current scroll progress
	Progress() float64

	// Advance moves the rendered progress toward Progress using the configured
	// smoothing and returns it. Without smoothing it returns Progress unchanged.
	// The frame loop calls Advance exactly once per frame.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	//
	// Returns:
	//   - float64: the progress to render this frame
	Advance(dt float64) float64

	// ScrollTop returns the scroll offset in pixels.
	//
	// Returns:
	//   - float64: the current offset
	ScrollTop() float64

	// SetScrollTop scrolls to an absolute offset, clamped to the scrollable range.
	//
	// Parameters:
	//   - px: the requested offset in pixels
	SetScrollTop(px float64)

	// ScrollBy scrolls relative to the current offset.
	//
	// Parameters:
	//   - dy: the offset delta in pixels, positive scrolls down
	ScrollBy(dy float64)

	// SetProgress scrolls to the offset that yields progress p.
	//
	// Parameters:
	//   - p: the requested progress, clamped to [0, 1]
	SetProgress(p float64)

	// SetViewportHeight handles a resize of the visible area.
	//
	// Parameters:
	//   - h: the viewport height in pixels
	SetViewportHeight(h float64)

	// SetDocumentHeight handles a change of the total content height.
	//
	// Parameters:
	//   - h: the document height in pixels
	SetDocumentHeight(h float64)

	// Resize replaces both heights in one event and scales the scroll offset so
	// the progress is kept. Subscribers see at most one notification. A page
	// that no longer scrolls reports 0.
	//
	// Parameters:
	//   - viewport: the viewport height in pixels
	//   - document: the document height in pixels
	Resize(viewport, document float64)

	// HandleWheel converts a mouse wheel delta into a scroll.
	// Positive wheel deltas scroll toward the top of the document.
	//
	// Parameters:
	//   - delta: wheel notches, as reported by the windowing system
	HandleWheel(delta float64)

	// HandleKey scrolls for navigation keys: arrows by a line, Page Up/Down and
	// Space by a viewport, Home/End to the document bounds. Other keys are ignored.
	//
	// Parameters:
	//   - key: the key code (see common.Key*)
	//   - shift: whether shift is held (Space then scrolls up)
	HandleKey(key int, shift bool)

	// Subscribe registers fn to receive progress changes.
	//
	// Parameters:
	//   - fn: the callback
	//
	// Returns:
	//   - func(): removes the subscription; safe to call more than once
	Subscribe(fn func(progress float64)) (unsubscribe func())
}

var _ Source = &sourceImpl{}

// NewSource creates a scroll source with a 1000px viewport and a document of
// eight viewports, matching a page of eight full-height sections.
//
// Parameters:
//   - options: functional options to configure the source
//
// Returns:
//   - Source: the new source
func NewSource(options ...SourceBuilderOption) Source {
	s := &sourceImpl{
		mu:             &sync.Mutex{},
		viewportHeight: 1000,
		documentHeight: 8000,
		wheelStep:      100,
		lineStep:       40,
		subscribers:    make(map[int]func(float64)),
	}
	for _, option := range options {
		option(s)
	}
	s.scrollTop = s.clampTop(s.scrollTop)
	s.progress = s.compute()
	s.rendered = s.progress
	return s
}

func (s *sourceImpl) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

func (s *sourceImpl) Advance(dt float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.smoothingRate <= 0 {
		s.rendered = s.progress
		return s.rendered
	}
	if dt <= 0 {
		return s.rendered
	}
	k := 1 - math.Exp(-s.smoothingRate*dt)
	s.rendered += (s.progress - s.rendered) * k
	if math.Abs(s.progress-s.rendered) < 1e-5 {
		s.rendered = s.progress
	}
	return s.rendered
}

func (s *sourceImpl) ScrollTop() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollTop
}

func (s *sourceImpl) SetScrollTop(px float64) {
	s.apply(func() { s.scrollTop = px })
}

func (s *sourceImpl) ScrollBy(dy float64) {
	s.apply(func() { s.scrollTop += dy })
}

func (s *sourceImpl) SetProgress(p float64) {
	s.apply(func() { s.scrollTop = common.Clamp01(p) * s.scrollable() })
}

func (s *sourceImpl) SetViewportHeight(h float64) {
	s.apply(func() { s.viewportHeight = math.Max(0, h) })
}

func (s *sourceImpl) SetDocumentHeight(h float64) {
	s.apply(func() { s.documentHeight = math.Max(0, h) })
}

func (s *sourceImpl) Resize(viewport, document float64) {
	s.apply(func() {
		p := s.progress
		s.viewportHeight = math.Max(0, viewport)
		s.documentHeight = math.Max(0, document)
		s.scrollTop = p * s.scrollable()
	})
}

func (s *sourceImpl) HandleWheel(delta float64) {
	s.apply(func() { s.scrollTop -= delta * s.wheelStep })
}

func (s *sourceImpl) HandleKey(key int, shift bool) {
	s.apply(func() {
		switch key {
		case common.KeyDown:
			s.scrollTop += s.lineStep
		case common.KeyUp:
			s.scrollTop -= s.lineStep
		case common.KeyPageDown:
			s.scrollTop += s.viewportHeight
		case common.KeyPageUp:
			s.scrollTop -= s.viewportHeight
		case common.KeySpace:
			if shift {
				s.scrollTop -= s.viewportHeight
			} else {
				s.scrollTop += s.viewportHeight
			}
		case common.KeyHome:
			s.scrollTop = 0
		case common.KeyEnd:
			s.scrollTop = s.scrollable()
		}
	})
}

func (s *sourceImpl) Subscribe(fn func(progress float64)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// apply runs an event mutation, recomputes progress, and notifies subscribers
// outside the lock when the value changed.
func (s *sourceImpl) apply(mutate func()) {
	s.mu.Lock()
	mutate()
	s.scrollTop = s.clampTop(s.scrollTop)
	prev := s.progress
	s.progress = s.compute()
	changed := s.progress != prev
	var fns []func(float64)
	if changed {
		fns = make([]func(float64), 0, len(s.subscribers))
		for _, fn := range s.subscribers {
			fns = append(fns, fn)
		}
	}
	p := s.progress
	s.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// scrollable returns the maximum scroll offset. Caller must hold the mutex.
func (s *sourceImpl) scrollable() float64 {
	return math.Max(0, s.documentHeight-s.viewportHeight)
}

// clampTop bounds an offset into the scrollable range. Caller must hold the mutex.
func (s *sourceImpl) clampTop(px float64) float64 {
	return common.Clamp(px, 0, s.scrollable())
}

// compute derives progress from the current geometry. Caller must hold the mutex.
func (s *sourceImpl) compute() float64 {
	limit := s.scrollable()
	if limit <= 0 {
		return 0
	}
	return common.Clamp01(s.scrollTop / math.Max(1, limit))
}
