package element

import "github.com/Carmen-Shannon/oxy-scroll/common"

// ElementBuilderOption configures an element at creation time.
type ElementBuilderOption func(*Element)

// WithPosition sets the initial world position.
func WithPosition(p common.Vec3) ElementBuilderOption {
	return func(e *Element) {
		e.Position = p
	}
}

// WithRotation sets the initial Euler rotation in radians.
func WithRotation(r common.Vec3) ElementBuilderOption {
	return func(e *Element) {
		e.Rotation = r
	}
}

// WithScale sets a uniform scale.
func WithScale(s float64) ElementBuilderOption {
	return func(e *Element) {
		e.Scale = common.Uniform(s)
	}
}

// WithColor sets the base color and, as most scenes expect, the emissive color.
func WithColor(c common.Color) ElementBuilderOption {
	return func(e *Element) {
		e.Color = c
		e.Emissive = c
	}
}

// WithEmissive overrides the emissive color and intensity.
func WithEmissive(c common.Color, intensity float64) ElementBuilderOption {
	return func(e *Element) {
		e.Emissive = c
		e.EmissiveIntensity = intensity
	}
}

// WithEmissiveIntensity sets the emissive strength, keeping the emissive color.
func WithEmissiveIntensity(intensity float64) ElementBuilderOption {
	return func(e *Element) {
		e.EmissiveIntensity = intensity
	}
}

// WithMaterial sets the physically based surface parameters.
func WithMaterial(metalness, roughness float64) ElementBuilderOption {
	return func(e *Element) {
		e.Metalness = metalness
		e.Roughness = roughness
	}
}

// WithOpacity marks the element transparent with the given opacity.
func WithOpacity(opacity float64) ElementBuilderOption {
	return func(e *Element) {
		e.Opacity = opacity
		e.Transparent = true
	}
}

// WithWireframe draws the element's edges instead of its faces.
// Wireframes are always unlit.
func WithWireframe() ElementBuilderOption {
	return func(e *Element) {
		e.Wireframe = true
		e.Unlit = true
	}
}

// WithUnlit shades the element with its flat color, ignoring lights.
func WithUnlit() ElementBuilderOption {
	return func(e *Element) {
		e.Unlit = true
	}
}

// WithBackSide renders only the inner faces, for enclosing shells.
func WithBackSide() ElementBuilderOption {
	return func(e *Element) {
		e.BackSide = true
	}
}

// WithHidden creates the element invisible.
func WithHidden() ElementBuilderOption {
	return func(e *Element) {
		e.Visible = false
	}
}

// WithEndpoints sets the endpoints of a line element.
func WithEndpoints(a, b common.Vec3) ElementBuilderOption {
	return func(e *Element) {
		e.LineStart = a
		e.LineEnd = b
	}
}
