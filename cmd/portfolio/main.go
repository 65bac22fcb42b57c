// Command portfolio opens the scroll-driven backdrop in a window. The mouse
// wheel, arrow keys, Page Up/Down, Space, Home, and End scroll the virtual page;
// P toggles the profiler and Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		width      = flag.Int("width", 1280, "initial window width in pixels")
		height     = flag.Int("height", 720, "initial window height in pixels")
		pages      = flag.Float64("pages", 8, "document height in viewports")
		smoothing  = flag.Float64("smoothing", 0, "scroll smoothing rate in 1/s (0 = off)")
		autoScroll = flag.Float64("autoscroll", 0, "scroll this many pixels per second on its own")
		vsync      = flag.Bool("vsync", true, "wait for vertical blank when presenting")
		msaa       = flag.Bool("msaa", true, "enable 4x multisample anti-aliasing")
		software   = flag.Bool("software", false, "force the fallback (software) GPU adapter")
		cull       = flag.Bool("cull", true, "skip elements outside the view frustum")
		fpsCap     = flag.Float64("fps", 0, "render frame cap (0 = uncapped)")
		profile    = flag.Bool("profile", false, "log frame rate and memory statistics")
		hero       = flag.String("hero", scene.FloatingShapes.String(), "opening scene, e.g. floating_shapes or rotating_sphere")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger, err := common.NewTextLogger(os.Stderr, *logLevel)
	if err != nil {
		return err
	}
	common.SetLogger(logger)

	win := window.NewWindow(
		window.WithWidth(*width),
		window.WithHeight(*height),
	)
	defer win.Close()

	presentMode := renderer.PresentModeUncapped
	if *vsync {
		presentMode = renderer.PresentModeVSync
	}
	samples := renderer.MSAAOff
	if *msaa {
		samples = renderer.MSAA4x
	}
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(samples),
		renderer.WithForceSoftwareRenderer(*software),
		renderer.WithFrustumCulling(*cull),
	)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer r.Release()

	table, err := heroTable(*hero)
	if err != nil {
		return err
	}
	c, err := scene.NewCompositor(scene.WithTable(table))
	if err != nil {
		return err
	}

	src := scroll.NewSource(scroll.WithSmoothing(*smoothing))
	eng, err := engine.NewEngine(
		engine.WithCompositor(c),
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithSource(src),
		engine.WithPages(*pages),
		engine.WithSectionTitles(true),
		engine.WithProfiling(*profile),
		engine.WithRenderFrameLimit(*fpsCap),
	)
	if err != nil {
		return err
	}
	if *autoScroll != 0 {
		eng.SetTickCallback(func(dt float64) {
			src.ScrollBy(*autoScroll * dt)
		})
	}

	logger.Info("portfolio started", "width", win.Width(), "height", win.Height(), "pages", *pages)
	eng.Run()
	logger.Info("portfolio stopped")
	return nil
}

// heroTable returns the default scene table with the opening window handed to
// the named scene. A scene already elsewhere in the table is rejected by the
// compositor as a duplicate.
func heroTable(name string) (scene.Table, error) {
	id, ok := scene.ParseID(name)
	if !ok {
		return nil, fmt.Errorf("unknown hero scene %q", name)
	}
	table := scene.DefaultTable()
	table[0].Scene = id
	return table, nil
}
