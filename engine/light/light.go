package light

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every surface evenly regardless of orientation.
	LightTypeAmbient LightType = iota

	// LightTypePoint emits in all directions from a position. The backdrop is
	// small next to the light distances, so there is no distance falloff.
	LightTypePoint

	// LightTypeDirectional shines along a fixed direction from infinitely far away.
	LightTypeDirectional
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	lightType LightType
	position  common.Vec3
	direction common.Vec3
	color     common.Color
	intensity float64
	enabled   bool
}

// Light is a scene light. The compositor owns a fixed set of lights; both the
// GPU renderer and the software rasterizer evaluate them with the same model.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type
	Type() LightType

	// Position returns the world-space position. Meaningful for point lights.
	//
	// Returns:
	//   - common.Vec3: the position
	Position() common.Vec3

	// Direction returns the normalized direction the light travels in.
	// Meaningful for directional lights.
	//
	// Returns:
	//   - common.Vec3: the direction
	Direction() common.Vec3

	// Color returns the light color.
	//
	// Returns:
	//   - common.Color: the color
	Color() common.Color

	// Intensity returns the scalar intensity multiplier.
	//
	// Returns:
	//   - float64: the intensity
	Intensity() float64

	// Enabled reports whether the light contributes to shading.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetPosition moves the light.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p common.Vec3)

	// SetIntensity changes the intensity multiplier.
	//
	// Parameters:
	//   - intensity: the new intensity
	SetIntensity(intensity float64)

	// SetEnabled toggles the light.
	//
	// Parameters:
	//   - enabled: whether the light contributes
	SetEnabled(enabled bool)

	// Contribution returns the light arriving at a surface point with the given
	// unit normal, before it is modulated by the surface color.
	//
	// Parameters:
	//   - p: the surface point
	//   - n: the unit surface normal
	//
	// Returns:
	//   - common.Color: the incoming light
	Contribution(p, n common.Vec3) common.Color
}

var _ Light = &lightImpl{}

// NewLight creates a white point light at the origin with intensity 1.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the new light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		lightType: LightTypePoint,
		direction: common.V3(0, -1, 0),
		color:     common.White,
		intensity: 1,
		enabled:   true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lightType
}

func (l *lightImpl) Position() common.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Direction() common.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction
}

func (l *lightImpl) Color() common.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) SetPosition(p common.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = p
}

func (l *lightImpl) SetIntensity(intensity float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) Contribution(p, n common.Vec3) common.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return common.Black
	}
	var lambert float64
	switch l.lightType {
	case LightTypeAmbient:
		lambert = 1
	case LightTypePoint:
		lambert = math.Max(0, n.Dot(l.position.Sub(p).Normalize()))
	case LightTypeDirectional:
		lambert = math.Max(0, -n.Dot(l.direction))
	}
	return l.color.Scale(l.intensity * lambert)
}

// Illuminate sums the contribution of every light at a surface point.
//
// Parameters:
//   - lights: the scene lights
//   - p: the surface point
//   - n: the unit surface normal
//
// Returns:
//   - common.Color: the total incoming light
func Illuminate(lights []Light, p, n common.Vec3) common.Color {
	var total common.Color
	for _, l := range lights {
		total = total.Add(l.Contribution(p, n))
	}
	return total
}

// Shade applies the backdrop's material model: diffuse light scaled down for
// metallic surfaces plus emission. The result is clamped to displayable range.
//
// Parameters:
//   - incoming: the light arriving at the surface (see Illuminate)
//   - base: the surface color
//   - emissive: the emissive color, already scaled by its intensity
//   - metalness: the surface metalness in [0, 1]
//
// Returns:
//   - common.Color: the shaded color
func Shade(incoming, base, emissive common.Color, metalness float64) common.Color {
	diffuse := base.Mul(incoming).Scale(DiffuseScale * (1 - 0.5*common.Clamp01(metalness)))
	return diffuse.Add(emissive).Clamped()
}

// DiffuseScale keeps an ambient light of intensity 1 from saturating every surface.
const DiffuseScale = 0.35
