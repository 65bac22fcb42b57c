package light

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

func TestContribution(t *testing.T) {
	tests := []struct {
		name  string
		light Light
		n     common.Vec3
		want  float64
	}{
		{"ambient ignores normal", NewAmbient(1), common.V3(0, 0, -1), 1},
		{"point facing", NewPoint(common.V3(0, 0, 10), 2), common.V3(0, 0, 1), 2},
		{"point behind", NewPoint(common.V3(0, 0, -10), 2), common.V3(0, 0, 1), 0},
		{"point grazing", NewPoint(common.V3(10, 0, 0), 1), common.V3(0, 0, 1), 0},
		{"directional", NewLight(WithType(LightTypeDirectional), WithDirection(common.V3(0, 0, -3))), common.V3(0, 0, 1), 1},
		{"disabled", NewLight(WithEnabled(false), WithPosition(common.V3(0, 0, 5))), common.V3(0, 0, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.light.Contribution(common.Vec3{}, tt.n)
			if math.Abs(got.R-tt.want) > 1e-9 || got.R != got.G || got.G != got.B {
				t.Errorf("Contribution() = %+v, want gray %v", got, tt.want)
			}
		})
	}
}

func TestIlluminateAndShade(t *testing.T) {
	lights := []Light{NewAmbient(1), NewPoint(common.V3(0, 0, 10), 2)}
	in := Illuminate(lights, common.Vec3{}, common.V3(0, 0, 1))
	if in.R != 3 {
		t.Fatalf("Illuminate() = %+v, want 3", in)
	}

	red := common.Color{R: 1}
	got := Shade(in, red, common.Black, 0)
	if math.Abs(got.R-1) > 1e-9 || got.G != 0 {
		t.Errorf("Shade() = %+v, want clamped red", got)
	}
	glow := Shade(common.Black, common.Black, common.Color{B: 0.5}, 1)
	if glow != (common.Color{B: 0.5}) {
		t.Errorf("emission only = %+v", glow)
	}
}

func TestNewGPULightBlock(t *testing.T) {
	lights := []Light{
		NewAmbient(1),
		NewPoint(common.V3(10, 10, 10), 2),
		NewPoint(common.V3(-10, -10, -10), 1),
	}
	b := NewGPULightBlock(lights)
	if b.Count != 3 {
		t.Fatalf("Count = %d", b.Count)
	}
	if b.Lights[1].Color != [3]float32{2, 2, 2} || b.Lights[1].LightType != uint32(LightTypePoint) {
		t.Errorf("light 1 = %+v", b.Lights[1])
	}
	buf := b.Marshal()
	if len(buf) != b.Size() || b.Size() != 16+48*MaxGPULights {
		t.Errorf("marshaled %d bytes, Size() = %d", len(buf), b.Size())
	}
}
