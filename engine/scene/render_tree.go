package scene

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
	"github.com/Carmen-Shannon/oxy-scroll/engine/light"
)

// Layer is the drawable content of one mounted scene.
type Layer struct {
	Scene    ID
	Opacity  float64
	Elements []*element.Element
}

// Alpha returns the final opacity of an element in this layer.
func (l Layer) Alpha(e *element.Element) float64 {
	return common.Clamp01(e.Opacity * l.Opacity)
}

// RenderTree is everything a renderer needs to draw one frame.
// Element pointers stay valid until the next call to Compositor.Frame.
type RenderTree struct {
	Progress   float64
	Elapsed    float64
	Camera     camera.Camera
	Lights     []light.Light
	Background common.Color
	Layers     []Layer
}

// Each visits every element that contributes to the frame, in layer order.
// Hidden elements, fully transparent elements, and invisible layers are skipped.
//
// Parameters:
//   - fn: called with the element's layer and the element
func (t RenderTree) Each(fn func(l Layer, e *element.Element)) {
	for _, l := range t.Layers {
		if l.Opacity <= 0 {
			continue
		}
		for _, e := range l.Elements {
			if e.Drawn() && l.Alpha(e) > 0 {
				fn(l, e)
			}
		}
	}
}

// Count returns the number of elements Each would visit.
func (t RenderTree) Count() int {
	n := 0
	t.Each(func(Layer, *element.Element) { n++ })
	return n
}
