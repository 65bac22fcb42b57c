package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// GPUCameraUniformSource is the WGSL declaration the shader pre-processor
// injects for the camera struct key.
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the per-frame camera block bound at group 0.
// Size: 80 bytes; the eye position is padded out to a full vec4 slot.
type GPUCameraUniform struct {
	ViewProj common.Mat4 // offset  0: projection * view
	Eye      [3]float32  // offset 64: world-space eye, used for specular and sorting
	_        float32
}

// Size returns the uniform block size in bytes.
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal packs the block little-endian for a queue write.
//
// Returns:
//   - []byte: an 80-byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	put := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	}
	for i, v := range g.ViewProj {
		put(i*4, v)
	}
	for i, v := range g.Eye {
		put(64+i*4, v)
	}
	return buf
}
