package profiler

import (
	"testing"
	"time"
)

func TestProfiler_Tick(t *testing.T) {
	start := time.Unix(0, 0)
	clock := start
	p := NewProfiler()
	p.lastTime = start
	p.now = func() time.Time { return clock }

	for i := range 29 {
		clock = start.Add(time.Duration(i+1) * 10 * time.Millisecond)
		if _, ok := p.Tick(); ok {
			t.Fatalf("tick %d reported before the interval elapsed", i)
		}
	}

	clock = start.Add(time.Second)
	r, ok := p.Tick()
	if !ok {
		t.Fatal("Tick() should report once the interval elapsed")
	}
	if r.FPS != 30 {
		t.Errorf("FPS = %v, want 30", r.FPS)
	}
	if r.SysMB <= 0 {
		t.Errorf("SysMB = %v, want > 0", r.SysMB)
	}
	if p.frameCount != 0 {
		t.Errorf("frameCount = %d after report, want 0", p.frameCount)
	}
}
