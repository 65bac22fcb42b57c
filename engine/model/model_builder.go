package model

import "github.com/Carmen-Shannon/oxy-scroll/engine/element"

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithGeometry is an option builder that records the geometry the Model was generated from.
//
// Parameters:
//   - g: the source geometry
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry option to a model
func WithGeometry(g element.Geometry) ModelBuilderOption {
	return func(m *model) {
		m.geometry = g
	}
}

// WithVertices is an option builder that sets the vertex list.
//
// Parameters:
//   - vertices: the mesh vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle list indices.
//
// Parameters:
//   - indices: three vertex indices per triangle
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithEdges is an option builder that sets the wireframe edges explicitly.
// Without it NewModel derives them from the triangles.
//
// Parameters:
//   - edges: two vertex indices per edge
//
// Returns:
//   - ModelBuilderOption: a function that applies the edges option to a model
func WithEdges(edges []uint32) ModelBuilderOption {
	return func(m *model) {
		m.edges = edges
	}
}

// WithBoundingRadius is an option builder that overrides the computed bounding radius.
//
// Parameters:
//   - radius: the bounding sphere radius
//
// Returns:
//   - ModelBuilderOption: a function that applies the bounding radius option to a model
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}
