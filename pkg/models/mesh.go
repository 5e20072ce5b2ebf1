// Package models loads glTF meshes and turns them into sphere proxies that
// the ray tracer can render.
package models

import (
	"math"

	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/shading"
)

// Mesh represents a triangle mesh with a single base color.
type Mesh struct {
	Name      string
	Vertices  []math3d.Tuple // Points in mesh space
	Faces     []Face
	BaseColor shading.Color

	// Bounding box (calculated on load)
	BoundsMin math3d.Tuple
	BoundsMax math3d.Tuple
}

// Face represents a triangle face with vertex indices.
type Face struct {
	V [3]int // Indices into Mesh.Vertices
}

// NewMesh creates an empty white mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  make([]math3d.Tuple, 0),
		Faces:     make([]Face, 0),
		BaseColor: shading.White,
		BoundsMin: math3d.Origin(),
		BoundsMax: math3d.Origin(),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = math3d.Point(
			math.Min(m.BoundsMin.X, v.X),
			math.Min(m.BoundsMin.Y, v.Y),
			math.Min(m.BoundsMin.Z, v.Z),
		)
		m.BoundsMax = math3d.Point(
			math.Max(m.BoundsMax.X, v.X),
			math.Max(m.BoundsMax.Y, v.Y),
			math.Max(m.BoundsMax.Z, v.Z),
		)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Tuple {
	return math3d.Point(
		(m.BoundsMin.X+m.BoundsMax.X)/2,
		(m.BoundsMin.Y+m.BoundsMax.Y)/2,
		(m.BoundsMin.Z+m.BoundsMax.Z)/2,
	)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Tuple {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// BoundingSphere returns a sphere around the bounding box center that
// contains every vertex.
func (m *Mesh) BoundingSphere() (center math3d.Tuple, radius float64) {
	center = m.Center()
	for _, v := range m.Vertices {
		radius = math.Max(radius, v.Sub(center).Magnitude())
	}
	return center, radius
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Matrix) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulTuple(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Tuple, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BaseColor: m.BaseColor,
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
