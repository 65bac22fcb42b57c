package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const testSource = `//@oxy:include camera
//@oxy:include instance
//@oxy:include vertex

//@oxy:group 0 0 storage_uniform camera camera
//@oxy:group 1 0 storage_read instances array<instance>

struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
};

@vertex
fn vs_test(in: VertexInput, @builtin(instance_index) idx: u32) -> VertexOutput {
    var out: VertexOutput;
    out.clip = camera.view_proj * instances[idx].model * vec4<f32>(in.position, 1.0);
    return out;
}

@fragment
fn fs_test() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func TestPreProcessor_Process(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process(testSource)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, want := range []string{
		"struct CameraUniform",
		"struct Instance",
		"struct VertexInput",
		"@group(0) @binding(0) var<uniform> camera: CameraUniform;",
		"@group(1) @binding(0) var<storage, read> instances: array<Instance>;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, annotationPrefix) {
		t.Error("output still contains annotations")
	}
	if got := len(pp.Declarations()); got != 2 {
		t.Errorf("len(Declarations()) = %d, want 2", got)
	}
}

func TestPreProcessor_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty", "//@oxy:"},
		{"unknown type", "//@oxy:shadow 0"},
		{"unknown include", "//@oxy:include texture"},
		{"include arity", "//@oxy:include camera light"},
		{"group arity", "//@oxy:group 0 0 storage_uniform camera"},
		{"bad group", "//@oxy:group x 0 storage_uniform camera camera"},
		{"bad binding", "//@oxy:group 0 y storage_uniform camera camera"},
		{"bad address space", "//@oxy:group 0 0 private camera camera"},
		{"bad array element", "//@oxy:group 0 0 storage_read xs array<bone>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPreProcessor().Process(tt.source); err == nil {
				t.Errorf("Process(%q) should fail", tt.source)
			}
		})
	}
}

func TestNewShader_Vertex(t *testing.T) {
	s, err := NewShader("test", ShaderTypeVertex, testSource)
	if err != nil {
		t.Fatalf("NewShader() error = %v", err)
	}
	if s.EntryPoint() != "vs_test" {
		t.Errorf("EntryPoint() = %q, want vs_test", s.EntryPoint())
	}

	layout := s.VertexLayout(0)
	if len(layout) != 1 {
		t.Fatalf("VertexLayout(0) has %d buffers, want 1", len(layout))
	}
	if layout[0].ArrayStride != 24 || len(layout[0].Attributes) != 2 {
		t.Errorf("stride %d with %d attributes, want 24 and 2", layout[0].ArrayStride, len(layout[0].Attributes))
	}
	if s.VertexLayout(1) != nil {
		t.Error("VertexOutput should not produce a vertex layout")
	}

	groups := s.BindGroupLayoutDescriptors()
	if len(groups) != 2 {
		t.Fatalf("len(BindGroupLayoutDescriptors()) = %d, want 2", len(groups))
	}
	if groups[0].Entries[0].Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Error("camera should bind as a uniform buffer")
	}
	if groups[1].Entries[0].Buffer.Type != wgpu.BufferBindingTypeReadOnlyStorage {
		t.Error("instances should bind as read-only storage")
	}
	if s.BindGroupVarName(1, 0) != "instances" {
		t.Errorf("BindGroupVarName(1, 0) = %q", s.BindGroupVarName(1, 0))
	}
	if s.Module().WGSLDescriptor.Code != s.Source() {
		t.Error("module code should be the processed source")
	}
}

func TestNewShader_Fragment(t *testing.T) {
	s, err := NewShader("test", ShaderTypeFragment, testSource)
	if err != nil {
		t.Fatalf("NewShader() error = %v", err)
	}
	if s.EntryPoint() != "fs_test" {
		t.Errorf("EntryPoint() = %q, want fs_test", s.EntryPoint())
	}
	if s.VertexLayout(0) != nil {
		t.Error("fragment shaders carry no vertex layouts")
	}
}

func TestNewShader_Errors(t *testing.T) {
	if _, err := NewShader("bad", ShaderTypeVertex, "//@oxy:include nothing"); err == nil {
		t.Error("NewShader should fail on a bad annotation")
	}
	if _, err := NewShader("none", ShaderTypeVertex, "fn helper() {}"); err == nil {
		t.Error("NewShader should fail without an entry point")
	}
}

func TestMergeBindGroupLayouts(t *testing.T) {
	vs, err := NewShader("test", ShaderTypeVertex, testSource)
	if err != nil {
		t.Fatal(err)
	}
	fs, err := NewShader("test", ShaderTypeFragment, testSource)
	if err != nil {
		t.Fatal(err)
	}
	merged := MergeBindGroupLayouts(vs, fs)
	want := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	for group, desc := range merged {
		for _, e := range desc.Entries {
			if e.Visibility != want {
				t.Errorf("group %d binding %d visibility %v, want vertex|fragment", group, e.Binding, e.Visibility)
			}
		}
	}
	if len(vs.BindGroupLayoutDescriptors()[0].Entries) != 1 {
		t.Error("merging must not mutate the source descriptors")
	}
}
