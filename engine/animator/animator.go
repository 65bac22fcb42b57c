// Package animator holds the per-scene choreography: each Animator builds the
// elements of one scene and maps scroll progress and time onto their visual
// parameters every frame.
package animator

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

// fadeBand is the fraction of a scene's local progress used to fade it in or out.
const fadeBand = 0.1

// wireScale is the overlay scale that keeps a wireframe just outside its solid.
const wireScale = 1.02

// Frame carries everything an animator may read for one frame.
// Animators read no clocks and no globals; the same Frame always yields the
// same pose apart from the rotations integrated from Delta.
type Frame struct {
	// Progress is the global scroll progress in [0, 1].
	Progress float64
	// Local is Progress mapped into the scene's window, in [0, 1].
	Local float64
	// Elapsed is the time in seconds since the compositor started.
	Elapsed float64
	// Delta is the time in seconds since the previous frame.
	Delta float64
}

// Ticks converts Delta into 60 Hz frame units, the unit the per-frame rotation
// speeds are authored in.
func (f Frame) Ticks() float64 {
	return f.Delta * 60
}

// Animator drives the elements of one scene.
type Animator interface {
	// Build creates the scene's elements in a fresh arena.
	//
	// Parameters:
	//   - a: the arena owned by the mounting scene
	Build(a element.Arena)

	// Update poses every element for the frame. Elements that cannot be
	// resolved are skipped.
	//
	// Parameters:
	//   - a: the arena passed to Build
	//   - f: the frame inputs
	Update(a element.Arena, f Frame)

	// Opacity returns the scene-wide opacity multiplier for a local progress.
	//
	// Parameters:
	//   - local: the scene's local progress
	//
	// Returns:
	//   - float64: opacity in [0, 1]; 0 hides the scene
	Opacity(local float64) float64
}

// overlay is a lit solid and its wireframe twin sharing one transform.
type overlay struct {
	solid element.ID
	wire  element.ID
}

// surface is the material shared by the solid half of an overlay.
type surface struct {
	emissive    float64
	metalness   float64
	roughness   float64
	wireOpacity float64
}

func newOverlay(a element.Arena, g element.Geometry, color common.Color, s surface, options ...element.ElementBuilderOption) overlay {
	solid := append([]element.ElementBuilderOption{
		element.WithColor(color),
		element.WithEmissiveIntensity(s.emissive),
		element.WithMaterial(s.metalness, s.roughness),
	}, options...)
	wire := append([]element.ElementBuilderOption{
		element.WithColor(color),
		element.WithWireframe(),
		element.WithOpacity(s.wireOpacity),
	}, options...)
	return overlay{
		solid: a.Create(g, solid...),
		wire:  a.Create(g, wire...),
	}
}

// pose places both halves; the wireframe is scaled slightly outward.
func (o overlay) pose(a element.Arena, pos, rot common.Vec3, scale float64) {
	a.Update(o.solid, func(e *element.Element) {
		e.Position, e.Rotation, e.Scale = pos, rot, common.Uniform(scale)
	})
	a.Update(o.wire, func(e *element.Element) {
		e.Position, e.Rotation, e.Scale = pos, rot, common.Uniform(scale*wireScale)
	})
}

// rotation reads the current rotation of the solid half.
func (o overlay) rotation(a element.Arena) (common.Vec3, bool) {
	e, ok := a.Get(o.solid)
	if !ok {
		return common.Vec3{}, false
	}
	return e.Rotation, true
}

// fadeIn is the opacity curve shared by scenes that fade in and then stay.
func fadeIn(local float64) float64 {
	return common.FadeInOut(local, fadeBand, false)
}

// showWhen toggles visibility and sets opacity in one step; an element at zero
// opacity is also hidden.
func showWhen(a element.Arena, id element.ID, visible bool, opacity float64) {
	a.Update(id, func(e *element.Element) {
		e.Visible = visible && opacity > 0
		e.Opacity = common.Clamp01(opacity)
	})
}
