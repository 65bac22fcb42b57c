package model

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/element"
)

type model struct {
	name     string
	geometry element.Geometry

	vertices []GPUVertex
	indices  []uint32
	edges    []uint32

	vertexData []byte
	indexData  []byte
	edgeData   []byte

	triangles []Triangle
	segments  []Segment

	boundingRadius float32
}

// Model is a generated triangle mesh with its wireframe edge list.
// A Model is immutable after construction and safe to share between goroutines.
type Model interface {
	// Name returns the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Geometry returns the geometry the model was generated from.
	//
	// Returns:
	//   - element.Geometry: the source geometry
	Geometry() element.Geometry

	// Vertices returns the vertex list.
	//
	// Returns:
	//   - []GPUVertex: the vertices, shared; do not modify
	Vertices() []GPUVertex

	// Indices returns the triangle list indices.
	//
	// Returns:
	//   - []uint32: three indices per triangle
	Indices() []uint32

	// Edges returns the wireframe line list indices, one pair per unique edge.
	//
	// Returns:
	//   - []uint32: two indices per edge
	Edges() []uint32

	// VertexData returns the vertices serialized for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex buffer contents
	VertexData() []byte

	// IndexData returns the triangle indices serialized for GPU upload.
	//
	// Returns:
	//   - []byte: the index buffer contents
	IndexData() []byte

	// EdgeData returns the edge indices serialized for GPU upload.
	//
	// Returns:
	//   - []byte: the edge index buffer contents
	EdgeData() []byte

	// IndexCount returns the number of triangle indices.
	IndexCount() int

	// EdgeCount returns the number of edge indices.
	EdgeCount() int

	// Triangles returns the faces in model space for CPU rendering.
	Triangles() []Triangle

	// Segments returns the wireframe edges in model space for CPU rendering.
	Segments() []Segment

	// BoundingRadius returns the maximum distance of any vertex from the origin.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model from raw mesh data.
// Missing edges are derived from the triangles; GPU buffers, model-space
// triangles, and the bounding radius are computed once here.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the new model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, option := range options {
		option(m)
	}
	if m.edges == nil {
		m.edges = uniqueEdges(m.vertices, m.indices)
	}
	m.vertexData = common.SliceToBytes(m.vertices)
	m.indexData = common.SliceToBytes(m.indices)
	m.edgeData = common.SliceToBytes(m.edges)
	m.triangles = buildTriangles(m.vertices, m.indices)
	m.segments = buildSegments(m.vertices, m.edges)
	if m.boundingRadius == 0 {
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
	return m
}

func (m *model) Name() string               { return m.name }
func (m *model) Geometry() element.Geometry { return m.geometry }
func (m *model) Vertices() []GPUVertex      { return m.vertices }
func (m *model) Indices() []uint32          { return m.indices }
func (m *model) Edges() []uint32            { return m.edges }
func (m *model) VertexData() []byte         { return m.vertexData }
func (m *model) IndexData() []byte          { return m.indexData }
func (m *model) EdgeData() []byte           { return m.edgeData }
func (m *model) IndexCount() int            { return len(m.indices) }
func (m *model) EdgeCount() int             { return len(m.edges) }
func (m *model) Triangles() []Triangle      { return m.triangles }
func (m *model) Segments() []Segment        { return m.segments }
func (m *model) BoundingRadius() float32    { return m.boundingRadius }

func position(v GPUVertex) common.Vec3 {
	return common.V3(float64(v.Position[0]), float64(v.Position[1]), float64(v.Position[2]))
}

func buildTriangles(vertices []GPUVertex, indices []uint32) []Triangle {
	out := make([]Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a := position(vertices[indices[i]])
		b := position(vertices[indices[i+1]])
		c := position(vertices[indices[i+2]])
		out = append(out, Triangle{
			Positions: [3]common.Vec3{a, b, c},
			Normal:    b.Sub(a).Cross(c.Sub(a)).Normalize(),
		})
	}
	return out
}

func buildSegments(vertices []GPUVertex, edges []uint32) []Segment {
	out := make([]Segment, 0, len(edges)/2)
	for i := 0; i+1 < len(edges); i += 2 {
		out = append(out, Segment{A: position(vertices[edges[i]]), B: position(vertices[edges[i+1]])})
	}
	return out
}

// uniqueEdges lists every triangle edge once. Vertices split for flat shading
// or texture seams share a position, so edges are keyed by position.
func uniqueEdges(vertices []GPUVertex, indices []uint32) []uint32 {
	type key [2][3]int32
	quant := func(v GPUVertex) [3]int32 {
		return [3]int32{
			int32(v.Position[0]*1e4 + 0.5*sign(v.Position[0])),
			int32(v.Position[1]*1e4 + 0.5*sign(v.Position[1])),
			int32(v.Position[2]*1e4 + 0.5*sign(v.Position[2])),
		}
	}
	less := func(a, b [3]int32) bool {
		for i := range a {
			if a[i] != b[i] {
				return a[i] < b[i]
			}
		}
		return false
	}

	seen := make(map[key]bool)
	var out []uint32
	for i := 0; i+2 < len(indices); i += 3 {
		tri := [3]uint32{indices[i], indices[i+1], indices[i+2]}
		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			qa, qb := quant(vertices[a]), quant(vertices[b])
			if qa == qb {
				continue
			}
			k := key{qa, qb}
			if less(qb, qa) {
				k = key{qb, qa}
			}
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, a, b)
		}
	}
	return out
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
