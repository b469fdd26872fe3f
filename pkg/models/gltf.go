package models

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/wirepipe/pkg/logging"
	"github.com/taigrr/wirepipe/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// Options
	IncludeTriangles bool // keep triangle primitives as faces
	IncludeLines     bool // keep LINES, LINE_STRIP and LINE_LOOP primitives
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		IncludeTriangles: true,
		IncludeLines:     true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// LoadDocument converts an already decoded document with the default
// options.
func LoadDocument(doc *gltf.Document, name string) (*Mesh, error) {
	return NewGLTFLoader().LoadDocument(doc, name)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.LoadDocument(doc, filepath.Base(path))
}

// LoadDocument merges every mesh in doc into a single Mesh.
func (l *GLTFLoader) LoadDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()
	logging.Logger().Debug("gltf loaded",
		"name", name,
		"vertices", len(mesh.Vertices),
		"faces", len(mesh.Faces),
		"lines", len(mesh.Lines))

	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for i, prim := range m.Primitives {
		triangles := isTriangleMode(prim.Mode)
		lines := isLineMode(prim.Mode)
		if !triangles && !lines {
			logging.Logger().Warn("gltf primitive skipped",
				"mesh", m.Name, "primitive", i, "mode", prim.Mode)
			continue
		}
		if (triangles && !l.IncludeTriangles) || (lines && !l.IncludeLines) {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			logging.Logger().Warn("gltf primitive has no positions",
				"mesh", m.Name, "primitive", i)
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return fmt.Errorf("position accessor %d out of range", posIdx)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var indices []int
		if prim.Indices != nil {
			idx := *prim.Indices
			if idx < 0 || idx >= len(doc.Accessors) {
				return fmt.Errorf("index accessor %d out of range", idx)
			}
			raw, err := modeler.ReadIndices(doc, doc.Accessors[idx], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			indices = make([]int, len(raw))
			for j, v := range raw {
				indices[j] = int(v)
			}
		} else {
			indices = make([]int, len(positions))
			for j := range indices {
				indices[j] = j
			}
		}

		// Base vertex index for this primitive
		base := len(mesh.Vertices)
		for _, p := range positions {
			mesh.AddVertex(math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		if triangles {
			addTriangles(mesh, prim.Mode, base, indices)
		} else {
			addLines(mesh, prim.Mode, base, indices)
		}

		if mesh.Color.A == 0 && prim.Material != nil {
			if c, ok := materialColor(doc, *prim.Material); ok {
				mesh.Color = c
			}
		}
	}

	return nil
}

func isTriangleMode(mode gltf.PrimitiveMode) bool {
	switch mode {
	case gltf.PrimitiveTriangles, gltf.PrimitiveTriangleStrip, gltf.PrimitiveTriangleFan:
		return true
	}
	return false
}

func isLineMode(mode gltf.PrimitiveMode) bool {
	switch mode {
	case gltf.PrimitiveLines, gltf.PrimitiveLineStrip, gltf.PrimitiveLineLoop:
		return true
	}
	return false
}

func addTriangles(mesh *Mesh, mode gltf.PrimitiveMode, base int, idx []int) {
	switch mode {
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			mesh.AddFace(base+idx[i], base+idx[i+1], base+idx[i+2])
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			mesh.AddFace(base+idx[0], base+idx[i], base+idx[i+1])
		}
	default:
		for i := 0; i+2 < len(idx); i += 3 {
			mesh.AddFace(base+idx[i], base+idx[i+1], base+idx[i+2])
		}
	}
}

func addLines(mesh *Mesh, mode gltf.PrimitiveMode, base int, idx []int) {
	switch mode {
	case gltf.PrimitiveLineStrip, gltf.PrimitiveLineLoop:
		for i := 0; i+1 < len(idx); i++ {
			mesh.AddLine(base+idx[i], base+idx[i+1])
		}
		if mode == gltf.PrimitiveLineLoop && len(idx) > 2 {
			mesh.AddLine(base+idx[len(idx)-1], base+idx[0])
		}
	default:
		for i := 0; i+1 < len(idx); i += 2 {
			mesh.AddLine(base+idx[i], base+idx[i+1])
		}
	}
}

// materialColor returns the base color factor of material i as an opaque
// RGBA color.
func materialColor(doc *gltf.Document, i int) (color.RGBA, bool) {
	if i < 0 || i >= len(doc.Materials) {
		return color.RGBA{}, false
	}
	pbr := doc.Materials[i].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return color.RGBA{}, false
	}
	f := *pbr.BaseColorFactor
	return color.RGBA{unit8(f[0]), unit8(f[1]), unit8(f[2]), 255}, true
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
