package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

// meshBuilder accumulates vertices and outward-wound triangles.
type meshBuilder struct {
	vertices  []GPUVertex
	positions []common.Vec3
	normals   []common.Vec3
	indices   []uint32
}

func (b *meshBuilder) vertex(p, n common.Vec3) uint32 {
	b.vertices = append(b.vertices, GPUVertex{Position: p.Float32(), Normal: n.Float32()})
	b.positions = append(b.positions, p)
	b.normals = append(b.normals, n)
	return uint32(len(b.vertices) - 1)
}

// tri adds a triangle wound counter-clockwise around the average of its
// vertex normals. Degenerate triangles are dropped.
func (b *meshBuilder) tri(i, j, k uint32) {
	pa, pb, pc := b.positions[i], b.positions[j], b.positions[k]
	face := pb.Sub(pa).Cross(pc.Sub(pa))
	if face.Len() < 1e-12 {
		return
	}
	if face.Dot(b.normals[i].Add(b.normals[j]).Add(b.normals[k])) < 0 {
		j, k = k, j
	}
	b.indices = append(b.indices, i, j, k)
}

// quad adds the two triangles of a four-sided patch with corners in ring order.
func (b *meshBuilder) quad(i, j, k, l uint32) {
	b.tri(i, j, k)
	b.tri(i, k, l)
}

// flat adds a planar polygon with its own vertices and a shared face normal.
// The polygon is fan-triangulated from its first corner.
func (b *meshBuilder) flat(corners []common.Vec3, normal common.Vec3) {
	idx := make([]uint32, len(corners))
	for i, c := range corners {
		idx[i] = b.vertex(c, normal)
	}
	for i := 1; i+1 < len(idx); i++ {
		b.tri(idx[0], idx[i], idx[i+1])
	}
}

func (b *meshBuilder) build(g element.Geometry) Model {
	return NewModel(
		WithName(fmt.Sprintf("%s%v", g.Kind, g.Params)),
		WithGeometry(g),
		WithVertices(b.vertices),
		WithIndices(b.indices),
	)
}

// Generate tessellates a geometry into a Model.
//
// Parameters:
//   - g: the geometry to tessellate
//   - detail: the tessellation density for curved surfaces
//
// Returns:
//   - Model: the generated mesh
func Generate(g element.Geometry, detail Detail) Model {
	seg := detail.segments()
	p := g.Params
	b := &meshBuilder{}

	switch g.Kind {
	case element.KindBox:
		box(b, p[0], p[1], p[2])
	case element.KindSphere:
		sphere(b, p[0], seg.sphereWidth, seg.sphereHeight)
	case element.KindCylinder:
		cylinder(b, p[0], p[1], p[2], int(p[3]))
	case element.KindTetrahedron:
		hull(b, tetrahedronVertices(), p[0])
	case element.KindOctahedron:
		hull(b, octahedronVertices(), p[0])
	case element.KindIcosahedron:
		hull(b, icosahedronVertices(), p[0])
	case element.KindDodecahedron:
		dodecahedron(b, p[0])
	case element.KindTorus:
		torus(b, p[0], p[1], seg.torusRadial, seg.torusTubular)
	case element.KindTorusKnot:
		torusKnot(b, p[0], p[1], seg.knotRadial, seg.knotTubular)
	case element.KindLine:
		return NewModel(
			WithName("line"),
			WithGeometry(g),
			WithVertices([]GPUVertex{
				{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 1, 0}},
				{Position: [3]float32{1, 0, 0}, Normal: [3]float32{0, 1, 0}},
			}),
			WithIndices([]uint32{}),
			WithEdges([]uint32{0, 1}),
		)
	}
	return b.build(g)
}

func box(b *meshBuilder, w, h, d float64) {
	x, y, z := w/2, h/2, d/2
	faces := []struct {
		normal  common.Vec3
		corners []common.Vec3
	}{
		{common.V3(1, 0, 0), []common.Vec3{{x, -y, -z}, {x, y, -z}, {x, y, z}, {x, -y, z}}},
		{common.V3(-1, 0, 0), []common.Vec3{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}},
		{common.V3(0, 1, 0), []common.Vec3{{-x, y, -z}, {-x, y, z}, {x, y, z}, {x, y, -z}}},
		{common.V3(0, -1, 0), []common.Vec3{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}},
		{common.V3(0, 0, 1), []common.Vec3{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}}},
		{common.V3(0, 0, -1), []common.Vec3{{-x, -y, -z}, {-x, y, -z}, {x, y, -z}, {x, -y, -z}}},
	}
	for _, f := range faces {
		b.flat(f.corners, f.normal)
	}
}

func sphere(b *meshBuilder, r float64, width, height int) {
	rows := make([][]uint32, height+1)
	for iy := 0; iy <= height; iy++ {
		theta := float64(iy) / float64(height) * math.Pi
		rows[iy] = make([]uint32, width+1)
		for ix := 0; ix <= width; ix++ {
			phi := float64(ix) / float64(width) * 2 * math.Pi
			n := common.V3(-math.Cos(phi)*math.Sin(theta), math.Cos(theta), math.Sin(phi)*math.Sin(theta))
			rows[iy][ix] = b.vertex(n.Scale(r), n)
		}
	}
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			b.quad(rows[iy][ix+1], rows[iy][ix], rows[iy+1][ix], rows[iy+1][ix+1])
		}
	}
}

func cylinder(b *meshBuilder, rTop, rBottom, h float64, radial int) {
	half := h / 2
	slope := 0.0
	if h > 0 {
		slope = (rBottom - rTop) / h
	}

	top := make([]uint32, radial+1)
	bottom := make([]uint32, radial+1)
	for i := 0; i <= radial; i++ {
		theta := float64(i) / float64(radial) * 2 * math.Pi
		sin, cos := math.Sin(theta), math.Cos(theta)
		n := common.V3(sin, slope, cos).Normalize()
		top[i] = b.vertex(common.V3(rTop*sin, half, rTop*cos), n)
		bottom[i] = b.vertex(common.V3(rBottom*sin, -half, rBottom*cos), n)
	}
	for i := 0; i < radial; i++ {
		b.quad(top[i], bottom[i], bottom[i+1], top[i+1])
	}

	disk := func(r, y float64) {
		if r <= 0 {
			return
		}
		n := common.V3(0, math.Copysign(1, y), 0)
		center := b.vertex(common.V3(0, y, 0), n)
		ring := make([]uint32, radial+1)
		for i := 0; i <= radial; i++ {
			theta := float64(i) / float64(radial) * 2 * math.Pi
			ring[i] = b.vertex(common.V3(r*math.Sin(theta), y, r*math.Cos(theta)), n)
		}
		for i := 0; i < radial; i++ {
			b.tri(center, ring[i], ring[i+1])
		}
	}
	disk(rTop, half)
	disk(rBottom, -half)
}

func tetrahedronVertices() []common.Vec3 {
	return []common.Vec3{{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1}}
}

func octahedronVertices() []common.Vec3 {
	return []common.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
}

func icosahedronVertices() []common.Vec3 {
	t := (1 + math.Sqrt(5)) / 2
	return []common.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
}

// hullFaces finds the faces of a regular deltahedron: every vertex triple whose
// sides all equal the shortest vertex distance. Faces are wound outward.
func hullFaces(verts []common.Vec3) [][3]int {
	edge := math.Inf(1)
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			edge = math.Min(edge, verts[i].Sub(verts[j]).Len())
		}
	}
	isEdge := func(i, j int) bool {
		return math.Abs(verts[i].Sub(verts[j]).Len()-edge) < 1e-6*edge
	}

	var faces [][3]int
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			if !isEdge(i, j) {
				continue
			}
			for k := j + 1; k < len(verts); k++ {
				if !isEdge(i, k) || !isEdge(j, k) {
					continue
				}
				n := verts[j].Sub(verts[i]).Cross(verts[k].Sub(verts[i]))
				if n.Dot(verts[i].Add(verts[j]).Add(verts[k])) < 0 {
					faces = append(faces, [3]int{i, k, j})
				} else {
					faces = append(faces, [3]int{i, j, k})
				}
			}
		}
	}
	return faces
}

func hull(b *meshBuilder, verts []common.Vec3, r float64) {
	for i := range verts {
		verts[i] = verts[i].Normalize().Scale(r)
	}
	for _, f := range hullFaces(verts) {
		a, c, d := verts[f[0]], verts[f[1]], verts[f[2]]
		b.flat([]common.Vec3{a, c, d}, c.Sub(a).Cross(d.Sub(a)).Normalize())
	}
}

// dodecahedron builds the dual of the icosahedron: one pentagon per
// icosahedron vertex, through the centers of the five faces around it.
func dodecahedron(b *meshBuilder, r float64) {
	ico := icosahedronVertices()
	faces := hullFaces(ico)
	centers := make([]common.Vec3, len(faces))
	for i, f := range faces {
		centers[i] = ico[f[0]].Add(ico[f[1]]).Add(ico[f[2]]).Normalize().Scale(r)
	}

	for vi, v := range ico {
		axis := v.Normalize()
		var ring []common.Vec3
		for fi, f := range faces {
			if f[0] == vi || f[1] == vi || f[2] == vi {
				ring = append(ring, centers[fi])
			}
		}

		ref := ring[0].Sub(axis.Scale(ring[0].Dot(axis))).Normalize()
		side := axis.Cross(ref)
		sort.Slice(ring, func(i, j int) bool {
			return math.Atan2(ring[i].Dot(side), ring[i].Dot(ref)) < math.Atan2(ring[j].Dot(side), ring[j].Dot(ref))
		})
		b.flat(ring, axis)
	}
}

func torus(b *meshBuilder, radius, tube float64, radial, tubular int) {
	grid := make([][]uint32, radial+1)
	for j := 0; j <= radial; j++ {
		v := float64(j) / float64(radial) * 2 * math.Pi
		grid[j] = make([]uint32, tubular+1)
		for i := 0; i <= tubular; i++ {
			u := float64(i) / float64(tubular) * 2 * math.Pi
			p := common.V3(
				(radius+tube*math.Cos(v))*math.Cos(u),
				(radius+tube*math.Cos(v))*math.Sin(u),
				tube*math.Sin(v),
			)
			center := common.V3(radius*math.Cos(u), radius*math.Sin(u), 0)
			grid[j][i] = b.vertex(p, p.Sub(center).Normalize())
		}
	}
	for j := 1; j <= radial; j++ {
		for i := 1; i <= tubular; i++ {
			b.quad(grid[j][i-1], grid[j-1][i-1], grid[j-1][i], grid[j][i])
		}
	}
}

// knotPoint is a point on the (2,3) torus knot curve.
func knotPoint(u, radius float64) common.Vec3 {
	const p, q = 2.0, 3.0
	cs := math.Cos(q / p * u)
	return common.V3(
		radius*(2+cs)*0.5*math.Cos(u),
		radius*(2+cs)*0.5*math.Sin(u),
		radius*math.Sin(q/p*u)*0.5,
	)
}

func torusKnot(b *meshBuilder, radius, tube float64, radial, tubular int) {
	const p = 2.0
	grid := make([][]uint32, tubular+1)
	for i := 0; i <= tubular; i++ {
		u := float64(i) / float64(tubular) * p * 2 * math.Pi
		p1 := knotPoint(u, radius)
		p2 := knotPoint(u+0.01, radius)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		bn := t.Cross(n).Normalize()
		n = bn.Cross(t).Normalize()

		grid[i] = make([]uint32, radial+1)
		for j := 0; j <= radial; j++ {
			v := float64(j) / float64(radial) * 2 * math.Pi
			cx := -tube * math.Cos(v)
			cy := tube * math.Sin(v)
			pos := p1.Add(n.Scale(cx)).Add(bn.Scale(cy))
			grid[i][j] = b.vertex(pos, pos.Sub(p1).Normalize())
		}
	}
	for i := 1; i <= tubular; i++ {
		for j := 1; j <= radial; j++ {
			b.quad(grid[i-1][j-1], grid[i][j-1], grid[i][j], grid[i-1][j])
		}
	}
}
