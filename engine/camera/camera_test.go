package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera(WithAspect(1))
	if c.Position() != common.V3(0, 0, 8) {
		t.Errorf("Position() = %v", c.Position())
	}
	if math.Abs(float64(c.Fov())-75*math.Pi/180) > 1e-6 {
		t.Errorf("Fov() = %v", c.Fov())
	}

	// The origin projects to the center of the screen.
	clip := c.ViewProjectionMatrix().MulVec4([4]float32{0, 0, 0, 1})
	if math.Abs(float64(clip[0]/clip[3])) > 1e-6 || math.Abs(float64(clip[1]/clip[3])) > 1e-6 {
		t.Errorf("origin projects to %v", clip)
	}
	if z := clip[2] / clip[3]; z <= 0 || z >= 1 {
		t.Errorf("origin depth = %v, want inside (0, 1)", z)
	}
}

func TestCamera_SetAspect(t *testing.T) {
	c := NewCamera(WithAspect(1))
	before := c.ProjectionMatrix()
	c.SetAspect(2)
	after := c.ProjectionMatrix()
	if math.Abs(float64(after[0]*2-before[0])) > 1e-6 {
		t.Errorf("x scale %v -> %v, want halved", before[0], after[0])
	}
	c.SetAspect(0)
	if c.Aspect() != 2 {
		t.Errorf("Aspect() = %v after invalid update", c.Aspect())
	}
}

func TestCamera_Uniform(t *testing.T) {
	c := NewCamera()
	u := c.Uniform()
	if u.ViewProj != c.ViewProjectionMatrix() || u.Eye != [3]float32{0, 0, 8} {
		t.Errorf("Uniform() = %+v", u)
	}
	if got := len(u.Marshal()); got != 80 {
		t.Errorf("Marshal() length = %d, want 80", got)
	}
}
