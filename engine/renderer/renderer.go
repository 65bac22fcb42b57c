package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
	"github.com/Carmen-Shannon/oxy-scroll/engine/light"
	"github.com/Carmen-Shannon/oxy-scroll/engine/model"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scene"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/scene.wgsl
var sceneShaderSource string

//go:embed assets/line.wgsl
var lineShaderSource string

// Bind group slots shared by every pipeline.
const (
	groupFrame     = 0
	groupInstances = 1

	bindingCamera    = 0
	bindingLights    = 1
	bindingInstances = 0

	initialInstanceCapacity = 256
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	pipelineCache map[string]pipeline.Pipeline
	cache         model.Cache
	meshes        map[element.Geometry]bind_group_provider.BindGroupProvider
	frame         bind_group_provider.BindGroupProvider
	instances     bind_group_provider.BindGroupProvider

	width, height int
	stats         Stats

	// configuration collected from builder options before the device exists
	presentMode          PresentMode
	msaa                 MSAASampleCount
	forceFallbackAdapter bool
	frustumCull          bool
}

// Renderer draws composed frames of the backdrop to a window surface on the GPU.
//
// Every pipeline shares one set of bind group layouts: group 0 holds the camera and
// light uniforms, group 1 the per-element instance records. Meshes are uploaded
// lazily the first time a geometry is drawn and kept until Release.
type Renderer interface {
	// Draw encodes, submits, and presents one frame.
	//
	// Parameters:
	//   - tree: the composed frame
	//
	// Returns:
	//   - error: an error if the surface could not be acquired or a resource failed to upload
	Draw(tree scene.RenderTree) error

	// Resize reconfigures the surface. Non-positive sizes, as reported for a
	// minimized window, are ignored.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// SetPresentMode switches between vsync and uncapped presentation. Takes effect
	// on the next surface configuration.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// Pipeline retrieves a registered pipeline by key, or nil.
	//
	// Parameters:
	//   - key: the pipeline key
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline
	Pipeline(key string) pipeline.Pipeline

	// Stats returns the counters of the last drawn frame.
	//
	// Returns:
	//   - Stats: the frame counters
	Stats() Stats

	// Release frees every GPU resource. The Renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given window, registers the backdrop's
// pipelines, and allocates the shared uniform and instance buffers.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - w: the window providing the surface
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: an error if the device or any pipeline could not be created
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		backendType:   backendType,
		pipelineCache: make(map[string]pipeline.Pipeline),
		meshes:        make(map[element.Geometry]bind_group_provider.BindGroupProvider),
		frame:         bind_group_provider.NewBindGroupProvider("frame"),
		instances:     bind_group_provider.NewBindGroupProvider("instances"),
		presentMode:   PresentModeVSync,
		msaa:          MSAA4x,
		frustumCull:   true,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.cache == nil {
		r.cache = model.NewCache(model.DetailHigh)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		backend, err := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
		if err != nil {
			return nil, err
		}
		r.backend = backend
	}

	r.backend.SetPresentMode(r.presentMode)
	r.width, r.height = w.Width(), w.Height()
	r.backend.ConfigureSurface(r.width, r.height)

	if err := r.init(); err != nil {
		r.Release()
		return nil, err
	}
	common.Logger().Info("renderer ready", "present", r.presentMode, "msaa", uint32(r.msaa), "pipelines", len(r.pipelineCache))
	return r, nil
}

// init compiles the shaders, registers the pipeline set, and creates the shared bind groups.
func (r *renderer) init() error {
	sceneVS, err := shader.NewShader("scene", shader.ShaderTypeVertex, sceneShaderSource)
	if err != nil {
		return err
	}
	sceneFS, err := shader.NewShader("scene", shader.ShaderTypeFragment, sceneShaderSource)
	if err != nil {
		return err
	}
	lineVS, err := shader.NewShader("line", shader.ShaderTypeVertex, lineShaderSource)
	if err != nil {
		return err
	}
	lineFS, err := shader.NewShader("line", shader.ShaderTypeFragment, lineShaderSource)
	if err != nil {
		return err
	}

	if err := r.backend.InitLayouts(shader.MergeBindGroupLayouts(sceneVS, sceneFS, lineVS, lineFS)); err != nil {
		return err
	}

	for _, p := range defaultPipelines(sceneVS, sceneFS, lineVS, lineFS) {
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("pipeline %s: %w", p.PipelineKey(), err)
		}
		r.pipelineCache[p.PipelineKey()] = p
		common.Logger().Debug("pipeline registered", "key", p.PipelineKey())
	}

	var cameraUniform camera.GPUCameraUniform
	var lightBlock light.GPULightBlock
	if err := r.backend.InitBindGroup(r.frame, groupFrame, map[int]uint64{
		bindingCamera: uint64(cameraUniform.Size()),
		bindingLights: uint64(lightBlock.Size()),
	}); err != nil {
		return err
	}
	return r.growInstances(initialInstanceCapacity)
}

// defaultPipelines builds the fixed pipeline set of the backdrop.
//
// Parameters:
//   - sceneVS, sceneFS: the lit surface shader stages
//   - lineVS, lineFS: the flat line shader stages
//
// Returns:
//   - []pipeline.Pipeline: the pipelines, keyed by the Pipeline* constants
func defaultPipelines(sceneVS, sceneFS, lineVS, lineFS shader.Shader) []pipeline.Pipeline {
	surface := func(key string, cull wgpu.CullMode, blended bool) pipeline.Pipeline {
		return pipeline.NewPipeline(key,
			pipeline.WithVertexShader(sceneVS),
			pipeline.WithFragmentShader(sceneFS),
			pipeline.WithCullMode(cull),
			pipeline.WithBlendEnabled(blended),
			pipeline.WithDepthWriteEnabled(!blended),
		)
	}
	return []pipeline.Pipeline{
		surface(PipelineOpaque, wgpu.CullModeBack, false),
		surface(PipelineOpaqueBack, wgpu.CullModeFront, false),
		surface(PipelineBlended, wgpu.CullModeBack, true),
		surface(PipelineBlendedBack, wgpu.CullModeFront, true),
		pipeline.NewPipeline(PipelineLine,
			pipeline.WithVertexShader(lineVS),
			pipeline.WithFragmentShader(lineFS),
			pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
			pipeline.WithBlendEnabled(true),
			pipeline.WithDepthWriteEnabled(false),
		),
	}
}

func (r *renderer) Draw(tree scene.RenderTree) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aspect := float32(r.width) / float32(max(r.height, 1))
	plan := planFrame(tree, aspect, r.cache, r.frustumCull)
	r.stats = plan.stats

	meshes := make([]bind_group_provider.BindGroupProvider, len(plan.draws))
	for i, d := range plan.draws {
		mesh, err := r.mesh(d.geometry)
		if err != nil {
			return err
		}
		meshes[i] = mesh
	}

	var inst material.GPUInstance
	if need := len(plan.instances) * inst.Size(); uint64(need) > r.instances.Capacity(bindingInstances) {
		if err := r.growInstances(len(plan.instances)); err != nil {
			return err
		}
	}

	writes := []bind_group_provider.BufferWrite{
		{Provider: r.frame, Binding: bindingCamera, Data: plan.camera.Marshal()},
		{Provider: r.frame, Binding: bindingLights, Data: plan.lights.Marshal()},
	}
	if len(plan.instances) > 0 {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: r.instances,
			Binding:  bindingInstances,
			Data:     common.SliceToBytes(plan.instances),
		})
	}
	r.backend.WriteBuffers(writes)
	r.backend.SetClearColor(plan.clear)

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	bindGroups := []bind_group_provider.BindGroupProvider{r.frame, r.instances}
	for i, d := range plan.draws {
		r.backend.DrawCall(r.pipelineCache[d.pipelineKey], meshes[i], bindGroups, d.first, d.count, d.pipelineKey == PipelineLine)
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

// mesh returns the uploaded buffers for a geometry, uploading on first use.
func (r *renderer) mesh(g element.Geometry) (bind_group_provider.BindGroupProvider, error) {
	if p, ok := r.meshes[g]; ok {
		return p, nil
	}
	m := r.cache.Get(g)
	p := bind_group_provider.NewBindGroupProvider("mesh:" + m.Name())
	if err := r.backend.InitMeshBuffers(p, m.VertexData(), m.IndexData(), m.IndexCount(), m.EdgeData(), m.EdgeCount()); err != nil {
		p.Release()
		return nil, fmt.Errorf("upload %s: %w", m.Name(), err)
	}
	r.meshes[g] = p
	return p, nil
}

// growInstances reallocates the instance buffer to hold at least n records,
// doubling from the current capacity.
func (r *renderer) growInstances(n int) error {
	var inst material.GPUInstance
	size := uint64(inst.Size())
	capacity := max(r.instances.Capacity(bindingInstances), size*initialInstanceCapacity)
	for capacity < uint64(n)*size {
		capacity *= 2
	}
	if err := r.backend.InitBindGroup(r.instances, groupInstances, map[int]uint64{bindingInstances: capacity}); err != nil {
		return err
	}
	common.Logger().Debug("instance buffer allocated", "instances", capacity/size)
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presentMode = mode
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(r.width, r.height)
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for g, p := range r.meshes {
		p.Release()
		delete(r.meshes, g)
	}
	r.frame.Release()
	r.instances.Release()
	if r.backend != nil {
		r.backend.Release()
	}
}
