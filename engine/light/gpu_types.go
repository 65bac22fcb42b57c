package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxGPULights is the number of light slots in the GPU light block. The
// backdrop uses three; the remainder are zeroed.
const MaxGPULights = 8

// GPULightSource is the WGSL definition of the Light struct.
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULightBlockSource is the WGSL definition of the LightBlock struct. The
// array length must stay equal to MaxGPULights.
//
//go:embed assets/light_block.wgsl
var GPULightBlockSource string

// GPULight is the GPU-aligned representation of a single light source.
// Matches the WGSL Light struct in the renderer's shader.
// Size: 48 bytes (WGSL uniform aligned).
type GPULight struct {
	Position  [3]float32 // offset  0: world-space position
	LightType uint32     // offset 12: 0 = ambient, 1 = point, 2 = directional
	Color     [3]float32 // offset 16: RGB color premultiplied by intensity
	Enabled   uint32     // offset 28: 1 = contributes, 0 = skipped
	Direction [3]float32 // offset 32: normalized travel direction
	_pad      float32    // offset 44: padding to 48 bytes
}

// GPULightBlock is the uniform block holding every light.
// Size: 16 + 48*MaxGPULights bytes.
type GPULightBlock struct {
	Count  uint32    // offset 0: number of populated slots
	_pad   [3]uint32 // offset 4: padding to 16 bytes
	Lights [MaxGPULights]GPULight
}

// Size returns the size of the GPULightBlock struct in bytes.
//
// Returns:
//   - int: the struct size in bytes
func (g *GPULightBlock) Size() int {
	return int(unsafe.Sizeof(*g))
}

// NewGPULightBlock packs up to MaxGPULights lights for upload.
//
// Parameters:
//   - lights: the lights to pack; extras are dropped
//
// Returns:
//   - GPULightBlock: the packed block
func NewGPULightBlock(lights []Light) GPULightBlock {
	var b GPULightBlock
	for _, l := range lights {
		if int(b.Count) == MaxGPULights {
			break
		}
		c := l.Color().Scale(l.Intensity())
		g := GPULight{
			Position:  l.Position().Float32(),
			LightType: uint32(l.Type()),
			Color:     [3]float32{float32(c.R), float32(c.G), float32(c.B)},
			Direction: l.Direction().Float32(),
		}
		if l.Enabled() {
			g.Enabled = 1
		}
		b.Lights[b.Count] = g
		b.Count++
	}
	return b
}

// Marshal serializes the GPULightBlock into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPULightBlock) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], g.Count)
	for i, l := range g.Lights {
		o := 16 + i*48
		putVec3(buf[o:], l.Position)
		binary.LittleEndian.PutUint32(buf[o+12:], l.LightType)
		putVec3(buf[o+16:], l.Color)
		binary.LittleEndian.PutUint32(buf[o+28:], l.Enabled)
		putVec3(buf[o+32:], l.Direction)
	}
	return buf
}

func putVec3(buf []byte, v [3]float32) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v[i]))
	}
}
