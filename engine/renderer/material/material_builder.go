package material

import "github.com/Carmen-Shannon/oxy-scroll/common"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the surface color of the material.
//
// Parameters:
//   - color: the base color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color common.Color) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithOpacity is an option builder that sets the final opacity, clamped to [0, 1].
//
// Parameters:
//   - opacity: the opacity
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float64) MaterialBuilderOption {
	return func(m *material) {
		m.opacity = common.Clamp01(opacity)
	}
}

// WithEmissive is an option builder that sets the emitted color.
//
// Parameters:
//   - color: the emissive color
//   - intensity: the multiplier applied to color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive(color common.Color, intensity float64) MaterialBuilderOption {
	return func(m *material) {
		m.emissive = color.Scale(intensity)
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float64) MaterialBuilderOption {
	return func(m *material) {
		m.metallic = common.Clamp01(metallic)
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float64) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = common.Clamp01(roughness)
	}
}

// WithUnlit is an option builder that makes the material ignore scene lights.
//
// Parameters:
//   - unlit: whether the material is unlit
//
// Returns:
//   - MaterialBuilderOption: a function that applies the unlit option to a material
func WithUnlit(unlit bool) MaterialBuilderOption {
	return func(m *material) {
		m.unlit = unlit
	}
}

// WithTransparent is an option builder that forces alpha blending even at full opacity.
//
// Parameters:
//   - transparent: whether the material is blended
//
// Returns:
//   - MaterialBuilderOption: a function that applies the transparent option to a material
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.blended = transparent
	}
}

// WithWireframe is an option builder that draws the mesh edges instead of its faces.
//
// Parameters:
//   - wireframe: whether the material is drawn as lines
//
// Returns:
//   - MaterialBuilderOption: a function that applies the wireframe option to a material
func WithWireframe(wireframe bool) MaterialBuilderOption {
	return func(m *material) {
		m.wireframe = wireframe
	}
}

// WithSide is an option builder that selects which faces are drawn.
//
// Parameters:
//   - side: the face side
//
// Returns:
//   - MaterialBuilderOption: a function that applies the side option to a material
func WithSide(side Side) MaterialBuilderOption {
	return func(m *material) {
		m.side = side
	}
}
