package pipeline

import (
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
// It holds the render pipeline object and the state it was configured with.
type pipeline struct {
	pipelineKey string

	// shader references are required before the pipeline is created on the device
	vertexShader, fragmentShader shader.Shader

	renderPipeline *wgpu.RenderPipeline

	depthTestEnabled  bool
	depthWriteEnabled bool
	blendEnabled      bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
	writeMask         wgpu.ColorWriteMask
	blendState        *wgpu.BlendState
}

// Pipeline defines the interface for a GPU render pipeline. It holds all configuration
// state required for pipeline creation including depth, blend, cull, and topology settings.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the shader associated with the specified stage if it exists, nil otherwise.
	//
	// Parameters:
	//   - shaderType: the stage of the shader to retrieve
	//
	// Returns:
	//   - shader.Shader: the shader for the stage, or nil if not set
	Shader(shaderType shader.ShaderType) shader.Shader

	// Pipeline returns the underlying render pipeline, or nil before SetRenderPipeline.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the render pipeline
	Pipeline() *wgpu.RenderPipeline

	// DepthTestEnabled reports whether fragments are depth tested.
	DepthTestEnabled() bool

	// DepthWriteEnabled reports whether fragments write depth.
	DepthWriteEnabled() bool

	// BlendEnabled reports whether the color target blends.
	BlendEnabled() bool

	// CullMode returns which triangle faces are discarded.
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology.
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the winding considered front facing.
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask.
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state used when blending is enabled.
	BlendState() *wgpu.BlendState

	// Descriptor builds the device descriptor for this pipeline.
	//
	// Parameters:
	//   - layout: the pipeline layout
	//   - vs: the compiled vertex module
	//   - fs: the compiled fragment module
	//   - format: the color target format
	//   - depthFormat: the depth attachment format
	//   - samples: the MSAA sample count
	//
	// Returns:
	//   - *wgpu.RenderPipelineDescriptor: the descriptor ready for CreateRenderPipeline
	Descriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, format, depthFormat wgpu.TextureFormat, samples uint32) *wgpu.RenderPipelineDescriptor

	// SetRenderPipeline stores the pipeline created on the device.
	//
	// Parameters:
	//   - p: the created render pipeline
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new render Pipeline with default state: depth tested and
// written, no blending, no culling, triangle lists wound counter clockwise.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified configuration
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string                       { return p.pipelineKey }
func (p *pipeline) Pipeline() *wgpu.RenderPipeline            { return p.renderPipeline }
func (p *pipeline) DepthTestEnabled() bool                    { return p.depthTestEnabled }
func (p *pipeline) DepthWriteEnabled() bool                   { return p.depthWriteEnabled }
func (p *pipeline) BlendEnabled() bool                        { return p.blendEnabled }
func (p *pipeline) CullMode() wgpu.CullMode                   { return p.cullMode }
func (p *pipeline) Topology() wgpu.PrimitiveTopology          { return p.topology }
func (p *pipeline) FrontFace() wgpu.FrontFace                 { return p.frontFace }
func (p *pipeline) WriteMask() wgpu.ColorWriteMask            { return p.writeMask }
func (p *pipeline) BlendState() *wgpu.BlendState              { return p.blendState }
func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) { p.renderPipeline = rp }

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) Descriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, format, depthFormat wgpu.TextureFormat, samples uint32) *wgpu.RenderPipelineDescriptor {
	target := wgpu.ColorTargetState{
		Format:    format,
		WriteMask: p.writeMask,
	}
	if p.blendEnabled {
		target.Blend = p.blendState
	}

	var buffers []wgpu.VertexBufferLayout
	if p.vertexShader != nil {
		buffers = p.vertexShader.VertexLayout(0)
	}
	desc := &wgpu.RenderPipelineDescriptor{
		Label:  p.pipelineKey,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: entryPoint(p.vertexShader),
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: entryPoint(p.fragmentShader),
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.topology,
			FrontFace: p.frontFace,
			CullMode:  p.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: samples,
			Mask:  0xFFFFFFFF,
		},
	}
	if p.depthTestEnabled {
		desc.DepthStencil = &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: p.depthWriteEnabled,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		}
	}
	return desc
}

func entryPoint(s shader.Shader) string {
	if s == nil {
		return ""
	}
	return s.EntryPoint()
}
