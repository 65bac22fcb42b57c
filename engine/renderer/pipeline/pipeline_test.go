package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipeline_Defaults(t *testing.T) {
	p := NewPipeline("default")
	if p.PipelineKey() != "default" {
		t.Errorf("PipelineKey() = %q", p.PipelineKey())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("depth test and write should default on")
	}
	if p.BlendEnabled() {
		t.Error("blending should default off")
	}
	if p.CullMode() != wgpu.CullModeNone || p.Topology() != wgpu.PrimitiveTopologyTriangleList {
		t.Error("unexpected cull mode or topology")
	}
	if p.Pipeline() != nil {
		t.Error("Pipeline() should be nil before creation")
	}
}

func TestPipeline_Descriptor(t *testing.T) {
	tests := []struct {
		name      string
		opts      []PipelineBuilderOption
		blend     bool
		depth     bool
		depthMask bool
		topology  wgpu.PrimitiveTopology
		cull      wgpu.CullMode
	}{
		{
			name:      "opaque",
			opts:      []PipelineBuilderOption{WithCullMode(wgpu.CullModeBack)},
			depth:     true,
			depthMask: true,
			topology:  wgpu.PrimitiveTopologyTriangleList,
			cull:      wgpu.CullModeBack,
		},
		{
			name:     "blended",
			opts:     []PipelineBuilderOption{WithBlendEnabled(true), WithDepthWriteEnabled(false)},
			blend:    true,
			depth:    true,
			topology: wgpu.PrimitiveTopologyTriangleList,
			cull:     wgpu.CullModeNone,
		},
		{
			name:     "lines without depth",
			opts:     []PipelineBuilderOption{WithTopology(wgpu.PrimitiveTopologyLineList), WithDepthTestEnabled(false), WithBlendEnabled(true)},
			blend:    true,
			topology: wgpu.PrimitiveTopologyLineList,
			cull:     wgpu.CullModeNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := NewPipeline(tt.name, tt.opts...).Descriptor(nil, nil, nil, wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatDepth24Plus, 4)
			if desc.Label != tt.name {
				t.Errorf("Label = %q", desc.Label)
			}
			if got := desc.Fragment.Targets[0].Blend != nil; got != tt.blend {
				t.Errorf("blend set = %v, want %v", got, tt.blend)
			}
			if got := desc.DepthStencil != nil; got != tt.depth {
				t.Fatalf("depth set = %v, want %v", got, tt.depth)
			}
			if tt.depth && desc.DepthStencil.DepthWriteEnabled != tt.depthMask {
				t.Errorf("DepthWriteEnabled = %v, want %v", desc.DepthStencil.DepthWriteEnabled, tt.depthMask)
			}
			if desc.Primitive.Topology != tt.topology || desc.Primitive.CullMode != tt.cull {
				t.Errorf("primitive = %+v", desc.Primitive)
			}
			if desc.Multisample.Count != 4 {
				t.Errorf("Multisample.Count = %d, want 4", desc.Multisample.Count)
			}
		})
	}
}
