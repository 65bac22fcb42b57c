// Command snapshot renders the backdrop at chosen scroll positions to PNG files
// without a window or GPU. Frames render in parallel, each on its own
// compositor, so the output is independent of the worker count.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/model"
	"github.com/Carmen-Shannon/oxy-scroll/engine/raster"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(1)
	}
}

// options are the parsed command-line settings.
type options struct {
	width, height int
	elapsed       float64
	lineWidth     float64
	cull          bool
	detail        model.Detail
	workers       int
}

func run() error {
	var (
		out       = flag.String("out", "snapshots", "output directory")
		count     = flag.Int("frames", 9, "number of evenly spaced frames over the whole page")
		at        = flag.String("at", "", "comma-separated progress values; overrides -frames")
		elapsed   = flag.Float64("elapsed", 2, "seconds of playback simulated before each frame is captured")
		width     = flag.Int("width", 1280, "image width in pixels")
		height    = flag.Int("height", 720, "image height in pixels")
		lineWidth = flag.Float64("line-width", 1.5, "stroke width for wireframes and lines")
		detail    = flag.String("detail", "low", "tessellation detail: low or high")
		cull      = flag.Bool("cull", true, "skip elements outside the view frustum")
		workers   = flag.Int("workers", runtime.NumCPU(), "parallel render workers")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger, err := common.NewTextLogger(os.Stderr, *logLevel)
	if err != nil {
		return err
	}
	common.SetLogger(logger)

	progress := sweep(*count)
	if *at != "" {
		if progress, err = parseProgressList(*at); err != nil {
			return err
		}
	}
	if len(progress) == 0 {
		return errors.New("nothing to render")
	}

	opts := options{
		width:     *width,
		height:    *height,
		elapsed:   *elapsed,
		lineWidth: *lineWidth,
		cull:      *cull,
		workers:   max(1, *workers),
	}
	switch *detail {
	case "low":
		opts.detail = model.DetailLow
	case "high":
		opts.detail = model.DetailHigh
	default:
		return fmt.Errorf("unknown detail %q", *detail)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	start := time.Now()
	if err := renderAll(plan(*out, progress), opts); err != nil {
		return err
	}
	logger.Info("snapshots written", "frames", len(progress), "dir", *out, "took", time.Since(start).Round(time.Millisecond))
	return nil
}

// renderAll renders every frame on a bounded worker pool and joins the failures.
func renderAll(frames []frame, opts options) error {
	cache := model.NewCache(opts.detail)
	pool := worker.NewDynamicWorkerPool(opts.workers, 256, time.Second)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, f := range frames {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: f.Index,
			Do: func() (any, error) {
				defer wg.Done()
				err := renderFrame(f, cache, opts)
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("frame %d (p=%.3f): %w", f.Index, f.Progress, err))
					mu.Unlock()
				}
				return f.Path, err
			},
		})
	}
	wg.Wait()
	return errors.Join(errs...)
}

// frameStep is the playback rate used to run the animation clock up to the
// requested elapsed time before a frame is captured.
const frameStep = 1.0 / 60

// compose plays a private compositor forward to opts.elapsed at the frame's
// progress, so delta-driven rotations match a live session of that length.
func compose(f frame, opts options) (scene.Compositor, scene.RenderTree, error) {
	c, err := scene.NewCompositor()
	if err != nil {
		return nil, scene.RenderTree{}, err
	}
	return c, c.Advance(f.Progress, opts.elapsed, frameStep), nil
}

// renderFrame composes one frame and writes it as PNG.
func renderFrame(f frame, cache model.Cache, opts options) error {
	c, tree, err := compose(f, opts)
	if err != nil {
		return err
	}
	defer c.Reset()

	r := raster.NewRasterizer(
		raster.WithSize(opts.width, opts.height),
		raster.WithCache(cache),
		raster.WithLineWidth(opts.lineWidth),
		raster.WithFrustumCulling(opts.cull),
	)
	if err := r.SavePNG(f.Path, tree); err != nil {
		return err
	}
	st := r.Stats()
	common.Logger().Debug("frame written", "path", f.Path, "progress", f.Progress, "elements", st.Elements, "culled", st.Culled)
	return nil
}
