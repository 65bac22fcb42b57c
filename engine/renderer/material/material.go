package material

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

// Pass identifies which render pass a material is drawn in.
type Pass int

const (
	// PassOpaque draws filled triangles with depth writes and no blending.
	PassOpaque Pass = iota

	// PassBlended draws filled triangles with alpha blending, back to front,
	// without writing depth.
	PassBlended

	// PassLine draws the edge list of a mesh as blended lines.
	PassLine
)

// String returns the pass name used in pipeline keys and logs.
func (p Pass) String() string {
	switch p {
	case PassOpaque:
		return "opaque"
	case PassBlended:
		return "blended"
	case PassLine:
		return "line"
	default:
		return "unknown"
	}
}

// Side selects which faces of a closed mesh are rasterized.
type Side int

const (
	// SideFront draws outward-facing triangles.
	SideFront Side = iota

	// SideBack draws inward-facing triangles, for viewing a shell from inside.
	SideBack
)

// material is the implementation of the Material interface.
type material struct {
	name      string
	baseColor common.Color
	opacity   float64
	emissive  common.Color
	metallic  float64
	roughness float64
	unlit     bool
	blended   bool
	wireframe bool
	side      Side
}

// Material describes how one element's surface is shaded. It is derived from
// the element every frame, so it carries the final opacity after scene fades.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the surface color.
	//
	// Returns:
	//   - common.Color: the base color
	BaseColor() common.Color

	// Opacity retrieves the final opacity in [0, 1].
	//
	// Returns:
	//   - float64: the opacity
	Opacity() float64

	// Emissive retrieves the emitted color, already scaled by its intensity.
	//
	// Returns:
	//   - common.Color: the emissive color
	Emissive() common.Color

	// Metallic retrieves the metallic factor.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float64: the metallic factor
	Metallic() float64

	// Roughness retrieves the roughness factor.
	//
	// Returns:
	//   - float64: the roughness factor
	Roughness() float64

	// Unlit reports whether the surface ignores scene lights.
	//
	// Returns:
	//   - bool: true if unlit
	Unlit() bool

	// Pass returns the render pass this material belongs to.
	//
	// Returns:
	//   - Pass: the pass
	Pass() Pass

	// Side returns which faces are drawn.
	//
	// Returns:
	//   - Side: the face side
	Side() Side

	// Instance packs the material with a world transform for GPU upload.
	//
	// Parameters:
	//   - world: the model-to-world transform
	//
	// Returns:
	//   - GPUInstance: the instance record
	Instance(world common.Mat4) GPUInstance
}

var _ Material = &material{}

// NewMaterial creates a new opaque white Material configured by the given options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance with the specified configuration
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: common.White,
		opacity:   1,
		roughness: 1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FromElement derives the material of an element.
//
// Parameters:
//   - e: the element
//   - alpha: the final opacity after the scene layer fade
//
// Returns:
//   - Material: the element's material
func FromElement(e *element.Element, alpha float64) Material {
	line := e.Geometry.Kind == element.KindLine
	options := []MaterialBuilderOption{
		WithName(e.Geometry.Kind.String()),
		WithBaseColor(e.Color),
		WithOpacity(alpha),
		WithEmissive(e.Emissive, e.EmissiveIntensity),
		WithMetallic(e.Metalness),
		WithRoughness(e.Roughness),
		WithUnlit(e.Unlit || line),
		WithTransparent(e.Transparent),
		WithWireframe(e.Wireframe || line),
	}
	if e.BackSide {
		options = append(options, WithSide(SideBack))
	}
	return NewMaterial(options...)
}

func (m *material) Name() string            { return m.name }
func (m *material) BaseColor() common.Color { return m.baseColor }
func (m *material) Opacity() float64        { return m.opacity }
func (m *material) Emissive() common.Color  { return m.emissive }
func (m *material) Metallic() float64       { return m.metallic }
func (m *material) Roughness() float64      { return m.roughness }
func (m *material) Unlit() bool             { return m.unlit }
func (m *material) Side() Side              { return m.side }

func (m *material) Pass() Pass {
	switch {
	case m.wireframe:
		return PassLine
	case m.blended || m.opacity < 1:
		return PassBlended
	default:
		return PassOpaque
	}
}

func (m *material) Instance(world common.Mat4) GPUInstance {
	g := GPUInstance{
		Model:    world,
		Color:    m.baseColor.Float32(m.opacity),
		Emissive: m.emissive.Float32(0),
		Material: [4]float32{float32(m.metallic), float32(m.roughness), 0, 0},
	}
	normal := world.NormalMatrix()
	copy(g.Normal[:], normal[:12])
	if m.unlit {
		g.Material[2] = 1
	}
	return g
}
