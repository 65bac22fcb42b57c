package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUInstanceSource is the canonical WGSL definition of the Instance struct.
// Matches GPUInstance layout exactly (160 bytes, std430 aligned).
//
//go:embed assets/instance.wgsl
var GPUInstanceSource string

// GPUInstance is the per-element instance record consumed by the scene shader.
// Matches the WGSL Instance struct layout exactly (see GPUInstanceSource).
// Size: 160 bytes (std430 aligned, no padding required).
type GPUInstance struct {
	Model    [16]float32 // offset   0: model-to-world transform (64 bytes)
	Normal   [12]float32 // offset  64: normal matrix as three vec4 columns (48 bytes)
	Color    [4]float32  // offset 112: base color rgb, final opacity in w (16 bytes)
	Emissive [4]float32  // offset 128: emissive rgb premultiplied by intensity (16 bytes)
	Material [4]float32  // offset 144: metalness, roughness, unlit flag, unused (16 bytes)
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 160-byte buffer ready for GPU upload.
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, 160)
	off := 0
	put := func(vals []float32) {
		for _, v := range vals {
			binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
			off += 4
		}
	}
	put(g.Model[:])
	put(g.Normal[:])
	put(g.Color[:])
	put(g.Emissive[:])
	put(g.Material[:])
	return buf
}
