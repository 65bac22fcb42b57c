package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window     window.Window
	renderer   renderer.Renderer
	compositor scene.Compositor
	source     scroll.Source

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float64)
	renderCallback func(tree scene.RenderTree, deltaTime float64)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// pages is the document height in viewports; resizing keeps the ratio.
	pages float64

	sectionTitles bool
	section       int          // index of the section mirrored into the title; window thread only
	nextSection   atomic.Int32 // section under the viewport, written by the scroll subscription
	unsubscribe   func()

	start time.Time
}

// Engine runs the backdrop: window events move the scroll position, and the
// render loop turns the scroll progress into a composed frame once per frame.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	Window() window.Window

	// Renderer returns the GPU renderer, or nil when running headless.
	Renderer() renderer.Renderer

	// Compositor returns the scene compositor.
	Compositor() scene.Compositor

	// Source returns the scroll progress source driven by the window.
	Source() scroll.Source

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float64))

	// SetRenderCallback registers the function called after each frame is drawn.
	//
	// Parameters:
	//   - callback: function receiving the drawn tree and the frame delta in seconds
	SetRenderCallback(callback func(tree scene.RenderTree, deltaTime float64))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step composes and draws a single frame. The render loop calls it once per
	// frame; it is exported for headless drivers and tests.
	//
	// Parameters:
	//   - elapsed: seconds since the engine started
	//   - dt: seconds since the previous frame
	//
	// Returns:
	//   - scene.RenderTree: the composed frame
	Step(elapsed, dt float64) scene.RenderTree

	// Run starts the tick and render goroutines and runs the window loop on the
	// calling goroutine. Blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options and wires the
// window's input events into the scroll source.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: an error if the default compositor could not be built
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
		pages:           8,
		section:         -1,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.compositor == nil {
		c, err := scene.NewCompositor()
		if err != nil {
			return nil, err
		}
		e.compositor = c
	}
	if e.source == nil {
		e.source = scroll.NewSource()
	}

	if e.window != nil {
		e.fitDocument(e.window.Height())
		e.window.SetResizeCallback(func(width, height int) {
			if e.renderer != nil {
				e.renderer.Resize(width, height)
			}
			e.fitDocument(height)
		})
		e.window.SetScrollCallback(e.source.HandleWheel)
		e.window.SetKeyDownCallback(func(key int, shift bool) {
			if key == common.KeyP {
				e.toggleProfiler()
				return
			}
			e.source.HandleKey(key, shift)
		})
		if e.sectionTitles {
			_, idx := section.At(e.source.Progress())
			e.nextSection.Store(int32(idx))
			e.unsubscribe = e.source.Subscribe(func(p float64) {
				_, idx := section.At(p)
				e.nextSection.Store(int32(idx))
			})
			e.window.SetUpdateCallback(e.mirrorSection)
		}
	}

	return e, nil
}

// fitDocument resizes the virtual page to the viewport, keeping the page count
// and the scroll progress.
func (e *engine) fitDocument(viewport int) {
	if viewport <= 0 {
		return
	}
	e.source.Resize(float64(viewport), float64(viewport)*e.pages)
}

// mirrorSection copies the heading of the section under the viewport into the
// window title. Runs on the window thread; the index arrives through the scroll
// subscription.
func (e *engine) mirrorSection() {
	idx := int(e.nextSection.Load())
	if idx == e.section {
		return
	}
	e.section = idx
	s := section.All()[idx]
	e.window.SetTitle(s.Label + " | " + s.Heading)
	common.Logger().Debug("section", "index", idx, "label", s.Label)
}

func (e *engine) toggleProfiler() {
	enabled := !e.profilingEnabled.Load()
	e.profilingEnabled.Store(enabled)
	common.Logger().Info("profiler toggled", "enabled", enabled)
}

func (e *engine) Window() window.Window        { return e.window }
func (e *engine) Renderer() renderer.Renderer  { return e.renderer }
func (e *engine) Compositor() scene.Compositor { return e.compositor }
func (e *engine) Source() scroll.Source        { return e.source }

func (e *engine) Run() {
	e.start = time.Now()
	e.running.Store(true)
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
	e.running.Store(false)
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handle launches the tick and render goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			common.Logger().Error("render goroutine recovered from panic", "panic", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := now.Sub(lastRender).Seconds()
			lastRender = now

			e.Step(now.Sub(e.start).Seconds(), dt)

			if e.profilingEnabled.Load() {
				var attrs []slog.Attr
				if e.renderer != nil {
					st := e.renderer.Stats()
					attrs = append(attrs,
						slog.Int("elements", st.Elements),
						slog.Int("culled", st.Culled),
						slog.Int("draw_calls", st.DrawCalls),
					)
				}
				e.profiler.Tick(attrs...)
			}

			if e.renderFrameLimit > 0 {
				if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

func (e *engine) Step(elapsed, dt float64) scene.RenderTree {
	progress := e.source.Advance(dt)
	tree := e.compositor.Frame(progress, elapsed)

	if e.renderer != nil {
		if err := e.renderer.Draw(tree); err != nil {
			common.Logger().Warn("frame dropped", "error", err)
		}
	}
	if e.renderCallback != nil {
		e.renderCallback(tree, dt)
	}
	return tree
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}
	// Non-blocking send; a pending update is replaced.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(tree scene.RenderTree, deltaTime float64)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
