package element

import "math"

// GeometryKind enumerates the procedural shapes an element can be built from.
type GeometryKind int

const (
	KindBox GeometryKind = iota
	KindSphere
	KindCylinder
	KindTetrahedron
	KindOctahedron
	KindIcosahedron
	KindDodecahedron
	KindTorus
	KindTorusKnot
	KindLine
)

var kindNames = [...]string{
	KindBox:          "box",
	KindSphere:       "sphere",
	KindCylinder:     "cylinder",
	KindTetrahedron:  "tetrahedron",
	KindOctahedron:   "octahedron",
	KindIcosahedron:  "icosahedron",
	KindDodecahedron: "dodecahedron",
	KindTorus:        "torus",
	KindTorusKnot:    "torus_knot",
	KindLine:         "line",
}

func (k GeometryKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Geometry is the immutable shape description of an element.
// Geometry values are comparable and serve as mesh cache keys.
//
// Params by kind:
//   - box: width, height, depth
//   - sphere: radius
//   - cylinder: top radius, bottom radius, height, radial segments (a cone has top radius 0)
//   - polyhedra: radius
//   - torus, torus knot: radius, tube radius
//   - line: none (endpoints live on the element)
type Geometry struct {
	Kind   GeometryKind
	Params [4]float64
}

// Box returns a box geometry.
func Box(w, h, d float64) Geometry {
	return Geometry{Kind: KindBox, Params: [4]float64{w, h, d}}
}

// Cube returns a box with equal sides.
func Cube(size float64) Geometry {
	return Box(size, size, size)
}

// Sphere returns a sphere geometry.
func Sphere(radius float64) Geometry {
	return Geometry{Kind: KindSphere, Params: [4]float64{radius}}
}

// Cylinder returns a capped cylinder; segments below 3 are raised to 3.
func Cylinder(radiusTop, radiusBottom, height float64, segments int) Geometry {
	return Geometry{Kind: KindCylinder, Params: [4]float64{radiusTop, radiusBottom, height, float64(max(segments, 3))}}
}

// Cone returns a cylinder with a pointed top.
func Cone(radius, height float64, segments int) Geometry {
	return Cylinder(0, radius, height, segments)
}

// Tetrahedron returns a regular tetrahedron inscribed in a sphere of the given radius.
func Tetrahedron(radius float64) Geometry {
	return Geometry{Kind: KindTetrahedron, Params: [4]float64{radius}}
}

// Octahedron returns a regular octahedron inscribed in a sphere of the given radius.
func Octahedron(radius float64) Geometry {
	return Geometry{Kind: KindOctahedron, Params: [4]float64{radius}}
}

// Icosahedron returns a regular icosahedron inscribed in a sphere of the given radius.
func Icosahedron(radius float64) Geometry {
	return Geometry{Kind: KindIcosahedron, Params: [4]float64{radius}}
}

// Dodecahedron returns a regular dodecahedron inscribed in a sphere of the given radius.
func Dodecahedron(radius float64) Geometry {
	return Geometry{Kind: KindDodecahedron, Params: [4]float64{radius}}
}

// Torus returns a torus with the given ring and tube radii.
func Torus(radius, tube float64) Geometry {
	return Geometry{Kind: KindTorus, Params: [4]float64{radius, tube}}
}

// TorusKnot returns a (2,3) torus knot with the given radius and tube radius.
func TorusKnot(radius, tube float64) Geometry {
	return Geometry{Kind: KindTorusKnot, Params: [4]float64{radius, tube}}
}

// Line returns the segment geometry; endpoints are set per element.
func Line() Geometry {
	return Geometry{Kind: KindLine}
}

// BoundingRadius returns the radius of a sphere centered at the origin that
// encloses the unscaled geometry.
func (g Geometry) BoundingRadius() float64 {
	p := g.Params
	switch g.Kind {
	case KindBox:
		return math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]) / 2
	case KindCylinder:
		r := math.Max(p[0], p[1])
		return math.Sqrt(r*r + p[2]*p[2]/4)
	case KindTorus:
		return p[0] + p[1]
	case KindTorusKnot:
		// The (2,3) knot curve reaches 1.5 times the radius.
		return p[0]*1.5 + p[1]
	case KindLine:
		return 0
	default:
		return p[0]
	}
}
