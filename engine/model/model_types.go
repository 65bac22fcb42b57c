package model

import "github.com/Carmen-Shannon/oxy-scroll/common"

// Detail selects the tessellation density of curved geometry.
type Detail int

const (
	// DetailHigh is used by the GPU renderer.
	DetailHigh Detail = iota
	// DetailLow is used by the software rasterizer, which pays per triangle.
	DetailLow
)

// segments returns the tessellation counts for curved surfaces at a detail level.
type segments struct {
	sphereWidth  int
	sphereHeight int
	torusRadial  int
	torusTubular int
	knotRadial   int
	knotTubular  int
}

func (d Detail) segments() segments {
	if d == DetailLow {
		return segments{
			sphereWidth: 16, sphereHeight: 10,
			torusRadial: 8, torusTubular: 24,
			knotRadial: 6, knotTubular: 48,
		}
	}
	return segments{
		sphereWidth: 32, sphereHeight: 16,
		torusRadial: 16, torusTubular: 48,
		knotRadial: 8, knotTubular: 128,
	}
}

// Triangle is one face of a generated mesh in model space.
type Triangle struct {
	// Positions are the three corners, counter-clockwise seen from outside.
	Positions [3]common.Vec3

	// Normal is the geometric face normal.
	Normal common.Vec3
}

// Segment is one wireframe edge in model space.
type Segment struct {
	A common.Vec3
	B common.Vec3
}
