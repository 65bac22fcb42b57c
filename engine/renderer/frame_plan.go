package renderer

import (
	"cmp"
	"slices"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
	"github.com/Carmen-Shannon/oxy-scroll/engine/light"
	"github.com/Carmen-Shannon/oxy-scroll/engine/model"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
)

// Pipeline keys of the backdrop's fixed pipeline set.
const (
	PipelineOpaque      = "opaque"
	PipelineOpaqueBack  = "opaque_back"
	PipelineBlended     = "blended"
	PipelineBlendedBack = "blended_back"
	PipelineLine        = "line"
)

// Stats counts the work of the last frame.
type Stats struct {
	Elements  int
	Culled    int
	DrawCalls int
	Triangles int
	Lines     int
}

// drawCall is one instanced draw over a contiguous range of the instance buffer.
type drawCall struct {
	pipelineKey string
	geometry    element.Geometry
	first       uint32
	count       uint32
}

// framePlan is everything the backend needs to encode one frame.
type framePlan struct {
	camera    camera.GPUCameraUniform
	lights    light.GPULightBlock
	clear     common.Color
	instances []material.GPUInstance
	draws     []drawCall
	stats     Stats
}

// pipelineKey maps a material to the pipeline that draws it.
func pipelineKey(m material.Material) string {
	switch m.Pass() {
	case material.PassLine:
		return PipelineLine
	case material.PassBlended:
		if m.Side() == material.SideBack {
			return PipelineBlendedBack
		}
		return PipelineBlended
	default:
		if m.Side() == material.SideBack {
			return PipelineOpaqueBack
		}
		return PipelineOpaque
	}
}

type batchKey struct {
	pipelineKey string
	geometry    element.Geometry
}

type sortedInstance struct {
	batchKey
	depth    float64
	instance material.GPUInstance
}

// planFrame flattens a render tree into instance records and draw calls.
// Opaque elements are batched per pipeline and geometry. Blended surfaces and
// lines are drawn after them, far to near, merging neighbours that share a batch.
//
// Parameters:
//   - tree: the frame to plan
//   - aspect: the viewport aspect ratio
//   - cache: the mesh cache used for primitive counts
//   - frustumCull: whether elements outside the view are skipped
//
// Returns:
//   - framePlan: the plan
func planFrame(tree scene.RenderTree, aspect float32, cache model.Cache, frustumCull bool) framePlan {
	plan := framePlan{
		clear:  tree.Background,
		lights: light.NewGPULightBlock(tree.Lights),
	}
	if tree.Camera == nil {
		return plan
	}

	cam := tree.Camera
	cam.SetAspect(aspect)
	plan.camera = cam.Uniform()
	frustum := common.ExtractFrustum(cam.ViewProjectionMatrix())
	eye := cam.Position()

	var order []batchKey
	opaque := make(map[batchKey][]material.GPUInstance)
	var sorted []sortedInstance

	tree.Each(func(l scene.Layer, e *element.Element) {
		plan.stats.Elements++
		center, radius := e.Bounds()
		if frustumCull && !frustum.IntersectsSphere(center, radius) {
			plan.stats.Culled++
			return
		}

		m := material.FromElement(e, l.Alpha(e))
		key := batchKey{pipelineKey: pipelineKey(m), geometry: e.Geometry}
		inst := m.Instance(e.Model())

		mesh := cache.Get(e.Geometry)
		if m.Pass() == material.PassLine {
			plan.stats.Lines += mesh.EdgeCount() / 2
		} else {
			plan.stats.Triangles += mesh.IndexCount() / 3
		}

		if m.Pass() == material.PassOpaque {
			if _, ok := opaque[key]; !ok {
				order = append(order, key)
			}
			opaque[key] = append(opaque[key], inst)
			return
		}
		sorted = append(sorted, sortedInstance{
			batchKey: key,
			depth:    center.Sub(eye).Len(),
			instance: inst,
		})
	})

	for _, key := range order {
		batch := opaque[key]
		plan.draws = append(plan.draws, drawCall{
			pipelineKey: key.pipelineKey,
			geometry:    key.geometry,
			first:       uint32(len(plan.instances)),
			count:       uint32(len(batch)),
		})
		plan.instances = append(plan.instances, batch...)
	}

	slices.SortStableFunc(sorted, func(a, b sortedInstance) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for _, s := range sorted {
		if n := len(plan.draws); n > 0 {
			last := &plan.draws[n-1]
			if last.pipelineKey == s.pipelineKey && last.geometry == s.geometry {
				last.count++
				plan.instances = append(plan.instances, s.instance)
				continue
			}
		}
		plan.draws = append(plan.draws, drawCall{
			pipelineKey: s.pipelineKey,
			geometry:    s.geometry,
			first:       uint32(len(plan.instances)),
			count:       1,
		})
		plan.instances = append(plan.instances, s.instance)
	}

	plan.stats.DrawCalls = len(plan.draws)
	return plan
}
