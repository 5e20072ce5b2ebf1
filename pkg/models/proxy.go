package models

import (
	"math"

	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/scene"
	"github.com/taigrr/lumen/pkg/shading"
)

// SphereProxies returns one sphere per mesh enclosing its vertices, colored
// with the mesh base color. With fit set, the meshes are first centered on
// the origin and scaled so the largest dimension of their combined bounds
// is 2. Meshes with no extent are skipped.
func SphereProxies(meshes []*Mesh, fit bool) []*scene.Sphere {
	fitTransform := math3d.Identity()
	if fit {
		fitTransform = fitToUnit(meshes)
	}

	proxies := make([]*scene.Sphere, 0, len(meshes))
	for _, m := range meshes {
		if m.VertexCount() == 0 {
			continue
		}

		fitted := m.Clone()
		fitted.Transform(fitTransform)

		center, radius := fitted.BoundingSphere()
		if radius <= 0 {
			continue
		}

		s := scene.NewSphere()
		s.SetTransform(math3d.Chain(
			math3d.Scaling(radius, radius, radius),
			math3d.Translation(center.X, center.Y, center.Z),
		))
		s.Material = shading.DefaultMaterial()
		s.Material.Color = m.BaseColor
		proxies = append(proxies, s)
	}
	return proxies
}

// fitToUnit centers the combined bounds of meshes on the origin and scales
// their largest dimension to 2.
func fitToUnit(meshes []*Mesh) math3d.Matrix {
	var all Mesh
	for _, m := range meshes {
		all.Vertices = append(all.Vertices, m.Vertices...)
	}
	if len(all.Vertices) == 0 {
		return math3d.Identity()
	}
	all.CalculateBounds()

	center := all.Center()
	size := all.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim <= 0 {
		return math3d.Translation(-center.X, -center.Y, -center.Z)
	}

	scale := 2.0 / maxDim
	return math3d.Chain(
		math3d.Translation(-center.X, -center.Y, -center.Z),
		math3d.Scaling(scale, scale, scale),
	)
}
