// Package raster paints a render tree in software with gg. It is the headless
// counterpart of the WebGPU renderer: the same camera, lights, and material
// model, drawn as depth-sorted flat-shaded polygons and strokes.
package raster

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
	"github.com/Carmen-Shannon/oxy-scroll/engine/light"
	"github.com/Carmen-Shannon/oxy-scroll/engine/model"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/gogpu/gg"
)

// ErrNoCamera is returned when a render tree carries no camera.
var ErrNoCamera = errors.New("render tree has no camera")

// minDepth is the smallest view distance a projected point may have.
const minDepth = 1e-3

// Stats counts the work done by the last Render call.
type Stats struct {
	Elements  int
	Culled    int
	Triangles int
	Lines     int
}

// primitive is one depth-sorted shape ready to paint.
type primitive struct {
	depth  float64
	points [3][2]float64
	n      int
	color  common.Color
	alpha  float64
	stroke bool
}

type rasterizerImpl struct {
	mu *sync.Mutex

	width       int
	height      int
	cache       model.Cache
	lineWidth   float64
	frustumCull bool

	stats Stats
}

// Rasterizer renders scene.RenderTree frames to images without a GPU.
type Rasterizer interface {
	// Render paints tree into a new gg context. The caller closes the context.
	//
	// Parameters:
	//   - tree: the frame to draw
	//
	// Returns:
	//   - *gg.Context: the painted context
	//   - error: ErrNoCamera, or a paint failure
	Render(tree scene.RenderTree) (*gg.Context, error)

	// WritePNG renders tree and encodes it as PNG.
	//
	// Parameters:
	//   - w: the destination
	//   - tree: the frame to draw
	//
	// Returns:
	//   - error: a render or encode failure
	WritePNG(w io.Writer, tree scene.RenderTree) error

	// SavePNG renders tree into a PNG file.
	//
	// Parameters:
	//   - path: the output file
	//   - tree: the frame to draw
	//
	// Returns:
	//   - error: a render or write failure
	SavePNG(path string, tree scene.RenderTree) error

	// Resize changes the output size. Non-positive sizes are ignored.
	Resize(width, height int)

	// Size returns the output size in pixels.
	Size() (width, height int)

	// Stats returns the counters of the last Render.
	Stats() Stats
}

var _ Rasterizer = &rasterizerImpl{}

// NewRasterizer creates a 1280x720 rasterizer with frustum culling enabled.
//
// Parameters:
//   - options: functional options to configure the rasterizer
//
// Returns:
//   - Rasterizer: the new rasterizer
func NewRasterizer(options ...RasterizerBuilderOption) Rasterizer {
	r := &rasterizerImpl{
		mu:          &sync.Mutex{},
		width:       1280,
		height:      720,
		lineWidth:   1,
		frustumCull: true,
	}
	for _, option := range options {
		option(r)
	}
	if r.cache == nil {
		r.cache = model.NewCache(model.DetailLow)
	}
	return r
}

func (r *rasterizerImpl) Render(tree scene.RenderTree) (*gg.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tree.Camera == nil {
		return nil, ErrNoCamera
	}
	prims := r.collect(tree)

	dc := gg.NewContext(r.width, r.height)
	dc.ClearWithColor(tree.Background.RGBA(1))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, p := range prims {
		if err := r.paint(dc, p); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("paint: %w", err)
		}
	}
	return dc, nil
}

func (r *rasterizerImpl) WritePNG(w io.Writer, tree scene.RenderTree) error {
	dc, err := r.Render(tree)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *rasterizerImpl) SavePNG(path string, tree scene.RenderTree) error {
	dc, err := r.Render(tree)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (r *rasterizerImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
}

func (r *rasterizerImpl) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *rasterizerImpl) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// collect projects every drawn element into primitives sorted far to near.
// Caller must hold the mutex.
func (r *rasterizerImpl) collect(tree scene.RenderTree) []primitive {
	cam := tree.Camera
	cam.SetAspect(float32(r.width) / float32(r.height))
	vp := cam.ViewProjectionMatrix()
	frustum := common.ExtractFrustum(vp)
	eye := cam.Position()

	r.stats = Stats{}
	var prims []primitive
	tree.Each(func(l scene.Layer, e *element.Element) {
		r.stats.Elements++
		if r.frustumCull {
			center, radius := e.Bounds()
			if !frustum.IntersectsSphere(center, radius) {
				r.stats.Culled++
				return
			}
		}

		m := r.cache.Get(e.Geometry)
		world := e.Model()
		alpha := l.Alpha(e)

		if e.Wireframe || e.Geometry.Kind == element.KindLine {
			for _, s := range m.Segments() {
				a, da, okA := r.project(vp, world.TransformPoint(s.A))
				b, db, okB := r.project(vp, world.TransformPoint(s.B))
				if !okA || !okB {
					continue
				}
				prims = append(prims, primitive{
					depth:  (da + db) / 2,
					points: [3][2]float64{a, b},
					n:      2,
					color:  e.Color,
					alpha:  alpha,
					stroke: true,
				})
				r.stats.Lines++
			}
			return
		}

		normals := world.NormalMatrix()
		emissive := e.Emissive.Scale(e.EmissiveIntensity)
		for _, t := range m.Triangles() {
			var pts [3]common.Vec3
			for i, p := range t.Positions {
				pts[i] = world.TransformPoint(p)
			}
			centroid := pts[0].Add(pts[1]).Add(pts[2]).Scale(1.0 / 3)
			n := normals.TransformDir(t.Normal).Normalize()
			facing := n.Dot(eye.Sub(centroid)) > 0
			if e.BackSide {
				if facing {
					continue
				}
				n = n.Scale(-1)
			} else if !facing {
				continue
			}

			var prim primitive
			ok := true
			depth := 0.0
			for i, p := range pts {
				s, d, visible := r.project(vp, p)
				ok = ok && visible
				prim.points[i] = s
				depth += d
			}
			if !ok {
				continue
			}

			color := e.Color
			if !e.Unlit {
				color = light.Shade(light.Illuminate(tree.Lights, centroid, n), e.Color, emissive, e.Metalness)
			}
			prim.depth = depth / 3
			prim.n = 3
			prim.color = color
			prim.alpha = alpha
			prims = append(prims, prim)
			r.stats.Triangles++
		}
	})

	sort.SliceStable(prims, func(i, j int) bool {
		return prims[i].depth > prims[j].depth
	})
	return prims
}

// project maps a world point to pixel coordinates and its view depth.
func (r *rasterizerImpl) project(vp common.Mat4, p common.Vec3) ([2]float64, float64, bool) {
	c := vp.MulVec4([4]float32{float32(p[0]), float32(p[1]), float32(p[2]), 1})
	w := float64(c[3])
	if w < minDepth {
		return [2]float64{}, 0, false
	}
	x := (float64(c[0])/w*0.5 + 0.5) * float64(r.width)
	y := (0.5 - float64(c[1])/w*0.5) * float64(r.height)
	return [2]float64{x, y}, w, true
}

func (r *rasterizerImpl) paint(dc *gg.Context, p primitive) error {
	dc.SetRGBA(p.color.R, p.color.G, p.color.B, p.alpha)
	dc.MoveTo(p.points[0][0], p.points[0][1])
	for i := 1; i < p.n; i++ {
		dc.LineTo(p.points[i][0], p.points[i][1])
	}
	if p.stroke {
		dc.SetLineWidth(r.lineWidth)
		return dc.Stroke()
	}
	dc.ClosePath()
	if p.alpha < 1 {
		return dc.Fill()
	}
	// Opaque faces get a hairline of their own color to close anti-aliasing seams.
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetLineWidth(0.5)
	return dc.Stroke()
}
