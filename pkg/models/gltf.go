package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/lumen/pkg/shading"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// SkipEmpty drops meshes that end up with no triangles.
	SkipEmpty bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		SkipEmpty: true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) ([]*Mesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load loads a GLTF or GLB file and returns one Mesh per glTF mesh.
func (l *GLTFLoader) Load(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	meshes, err := l.meshesFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return meshes, nil
}

// meshesFromDocument converts every mesh in doc.
func (l *GLTFLoader) meshesFromDocument(doc *gltf.Document) ([]*Mesh, error) {
	meshes := make([]*Mesh, 0, len(doc.Meshes))
	for i, m := range doc.Meshes {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", i)
		}

		mesh := NewMesh(name)
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", name, err)
		}
		if l.SkipEmpty && mesh.TriangleCount() == 0 {
			continue
		}

		mesh.CalculateBounds()
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	colorSet := false
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		if !colorSet && prim.Material != nil {
			if c, ok := baseColor(doc, *prim.Material); ok {
				mesh.BaseColor = c
				colorSet = true
			}
		}

		baseVertex := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				face := Face{V: [3]int{
					baseVertex + indices[i],
					baseVertex + indices[i+1],
					baseVertex + indices[i+2],
				}}
				for _, v := range face.V {
					if v >= len(mesh.Vertices) {
						return fmt.Errorf("index %d out of range", v-baseVertex)
					}
				}
				mesh.Faces = append(mesh.Faces, face)
			}
		} else {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{baseVertex + i, baseVertex + i + 1, baseVertex + i + 2},
				})
			}
		}
	}

	return nil
}

// baseColor returns the PBR base color factor of material idx.
func baseColor(doc *gltf.Document, idx int) (shading.Color, bool) {
	if idx < 0 || idx >= len(doc.Materials) {
		return shading.Color{}, false
	}
	pbr := doc.Materials[idx].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return shading.Color{}, false
	}
	f := pbr.BaseColorFactor
	return shading.RGB(f[0], f[1], f[2]), true
}
