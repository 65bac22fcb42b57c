package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestPresentMode_String(t *testing.T) {
	tests := []struct {
		mode PresentMode
		want string
	}{
		{PresentModeVSync, "vsync"},
		{PresentModeUncapped, "uncapped"},
		{PresentMode(9), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultPipelines(t *testing.T) {
	mk := func(key string, typ shader.ShaderType, src string) shader.Shader {
		t.Helper()
		s, err := shader.NewShader(key, typ, src)
		if err != nil {
			t.Fatalf("NewShader(%s) error = %v", key, err)
		}
		return s
	}
	sceneVS := mk("scene", shader.ShaderTypeVertex, sceneShaderSource)
	sceneFS := mk("scene", shader.ShaderTypeFragment, sceneShaderSource)
	lineVS := mk("line", shader.ShaderTypeVertex, lineShaderSource)
	lineFS := mk("line", shader.ShaderTypeFragment, lineShaderSource)

	want := map[string]struct {
		blend      bool
		depthWrite bool
		cull       wgpu.CullMode
		topology   wgpu.PrimitiveTopology
	}{
		PipelineOpaque:      {false, true, wgpu.CullModeBack, wgpu.PrimitiveTopologyTriangleList},
		PipelineOpaqueBack:  {false, true, wgpu.CullModeFront, wgpu.PrimitiveTopologyTriangleList},
		PipelineBlended:     {true, false, wgpu.CullModeBack, wgpu.PrimitiveTopologyTriangleList},
		PipelineBlendedBack: {true, false, wgpu.CullModeFront, wgpu.PrimitiveTopologyTriangleList},
		PipelineLine:        {true, false, wgpu.CullModeNone, wgpu.PrimitiveTopologyLineList},
	}

	pipelines := defaultPipelines(sceneVS, sceneFS, lineVS, lineFS)
	if len(pipelines) != len(want) {
		t.Fatalf("got %d pipelines, want %d", len(pipelines), len(want))
	}
	for _, p := range pipelines {
		t.Run(p.PipelineKey(), func(t *testing.T) {
			w, ok := want[p.PipelineKey()]
			if !ok {
				t.Fatalf("unexpected pipeline %q", p.PipelineKey())
			}
			if p.BlendEnabled() != w.blend || p.DepthWriteEnabled() != w.depthWrite {
				t.Errorf("blend %v depth write %v, want %v %v", p.BlendEnabled(), p.DepthWriteEnabled(), w.blend, w.depthWrite)
			}
			if p.CullMode() != w.cull || p.Topology() != w.topology {
				t.Errorf("cull %v topology %v, want %v %v", p.CullMode(), p.Topology(), w.cull, w.topology)
			}
			if vs := p.Shader(shader.ShaderTypeVertex); vs == nil || len(vs.VertexLayout(0)) != 1 {
				t.Error("vertex shader should expose one vertex buffer layout")
			}
		})
	}

	layouts := shader.MergeBindGroupLayouts(sceneVS, sceneFS, lineVS, lineFS)
	if len(layouts) != 2 {
		t.Fatalf("got %d bind groups, want 2", len(layouts))
	}
	if n := len(layouts[groupFrame].Entries); n != 2 {
		t.Errorf("frame group has %d entries, want camera and lights", n)
	}
	inst := layouts[groupInstances].Entries
	if len(inst) != 1 || inst[0].Buffer.Type != wgpu.BufferBindingTypeReadOnlyStorage {
		t.Errorf("instance group = %+v, want one read-only storage binding", inst)
	}
}
