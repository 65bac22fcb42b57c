package bind_group_provider

import "testing"

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("mesh:box", WithMesh(nil, nil, 36, nil, 24), WithBuffer(0, nil, 160))
	if p.Label() != "mesh:box" {
		t.Errorf("Label() = %q", p.Label())
	}
	if p.IndexCount() != 36 || p.EdgeCount() != 24 {
		t.Errorf("counts = %d, %d, want 36, 24", p.IndexCount(), p.EdgeCount())
	}
	if p.Capacity(0) != 160 {
		t.Errorf("Capacity(0) = %d, want 160", p.Capacity(0))
	}
	if p.Capacity(3) != 0 {
		t.Errorf("Capacity(3) = %d, want 0", p.Capacity(3))
	}
}

func TestBindGroupProvider_Release(t *testing.T) {
	p := NewBindGroupProvider("frame")
	p.SetBuffer(1, nil, 400)
	p.SetIndexBuffer(nil, 12)
	p.SetEdgeBuffer(nil, 6)

	p.Release()
	p.Release()

	if len(p.Buffers()) != 0 || p.Capacity(1) != 0 {
		t.Error("Release should drop every buffer")
	}
	if p.IndexCount() != 0 || p.EdgeCount() != 0 {
		t.Error("Release should reset mesh counts")
	}
}

func TestBufferWrite(t *testing.T) {
	tests := []struct {
		name     string
		write    BufferWrite
		wantSize uint64
	}{
		{"no provider", BufferWrite{Offset: 16, Data: make([]byte, 64)}, 80},
		{"binding without buffer", BufferWrite{Provider: NewBindGroupProvider("frame", WithBuffer(0, nil, 80)), Data: make([]byte, 80)}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.write.Size(); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
			if tt.write.Fits() {
				t.Error("Fits() should be false without an allocated buffer")
			}
		})
	}
}
