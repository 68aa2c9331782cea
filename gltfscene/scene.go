// Package gltfscene writes a displayed rotation out as a glTF scene: the box marker and object axis arrows, oriented,
// over a ground grid and the world axes. The scene is Z-up, like the interactive views; viewers that assume glTF's
// Y-up convention will show it lying on its back.
package gltfscene

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/qmuntal/gltf/modeler"

	"github.com/solarlune/rotations"
	"github.com/solarlune/rotations/colors"
	"github.com/solarlune/rotations/present"
)

const lightsExtension = "KHR_lights_punctual"

// Node names in the built document.
const (
	NodeGrid       = "Grid"
	NodeWorldAxes  = "WorldAxes"
	NodeMarker     = "Marker"
	NodeObjectAxes = "ObjectAxes"
	NodeLight      = "Light"
)

// Options alters what Build puts into the scene.
type Options struct {
	Grid      bool // Whether to include the ground grid
	WorldAxes bool // Whether to include the world axes
	Light     bool // Whether to include a directional light (through KHR_lights_punctual)
}

// DefaultOptions creates an instance of Options with everything turned on.
func DefaultOptions() *Options {
	return &Options{
		Grid:      true,
		WorldAxes: true,
		Light:     true,
	}
}

// Build creates a glTF document showing the Result's orientation. Passing nil for options uses DefaultOptions().
func Build(result present.Result, options *Options) *gltf.Document {

	if options == nil {
		options = DefaultOptions()
	}

	marker := present.OrientMarker(result.Canonical())

	b := &builder{doc: gltf.NewDocument(), materials: map[colors.Color]int{}}
	b.doc.Asset.Generator = "rotations/gltfscene"
	b.doc.Scenes = []*gltf.Scene{{Name: "Rotation"}}
	b.doc.Scene = gltf.Index(0)

	if options.Grid {
		b.addNode(NodeGrid, b.addLineMesh(NodeGrid, present.Grid()), rotations.NewQuaternionIdentity())
	}

	if options.WorldAxes {
		b.addNode(NodeWorldAxes, b.addLineMesh(NodeWorldAxes, present.WorldAxes()), rotations.NewQuaternionIdentity())
	}

	b.addNode(NodeMarker, b.addBoxMesh(NodeMarker), marker.BoxRotation)

	// The arrows are stored unrotated and oriented by their node, so the scene carries the rotation itself.
	unrotated := present.OrientMarker(rotations.NewQuaternionIdentity())
	var arrowSegments []present.Segment
	for _, arrow := range unrotated.Arrows {
		arrowSegments = append(arrowSegments, arrow.Segments()...)
	}
	b.addNode(NodeObjectAxes, b.addLineMesh(NodeObjectAxes, arrowSegments), marker.Orientation)

	if options.Light {
		b.addLight()
	}

	return b.doc

}

type builder struct {
	doc       *gltf.Document
	materials map[colors.Color]int
}

func (b *builder) addNode(name string, mesh int, rotation rotations.Quaternion) int {

	b.doc.Nodes = append(b.doc.Nodes, &gltf.Node{
		Name:        name,
		Mesh:        gltf.Index(mesh),
		Matrix:      gltf.DefaultMatrix,
		Rotation:    rotation.Floats(),
		Scale:       gltf.DefaultScale,
		Translation: gltf.DefaultTranslation,
	})

	index := len(b.doc.Nodes) - 1
	b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, index)
	return index

}

// material returns the index of an unlit-looking material of the given color, creating it if necessary.
func (b *builder) material(c colors.Color) int {

	if index, ok := b.materials[c]; ok {
		return index
	}

	factor := c.Floats()

	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		Name: fmt.Sprintf("Color%02x%02x%02x", c.ToNRGBA().R, c.ToNRGBA().G, c.ToNRGBA().B),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &factor,
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	})

	index := len(b.doc.Materials) - 1
	b.materials[c] = index
	return index

}

// addLineMesh adds a mesh of line primitives, one primitive per color used by the segments.
func (b *builder) addLineMesh(name string, segments []present.Segment) int {

	mesh := &gltf.Mesh{Name: name}

	var order []colors.Color
	byColor := map[colors.Color][][3]float32{}

	for _, s := range segments {
		if _, ok := byColor[s.Color]; !ok {
			order = append(order, s.Color)
		}
		byColor[s.Color] = append(byColor[s.Color], toFloat32(s.From), toFloat32(s.To))
	}

	for _, c := range order {

		positions := byColor[c]
		indices := make([]uint16, len(positions))
		for i := range indices {
			indices[i] = uint16(i)
		}

		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Mode:       gltf.PrimitiveLines,
			Attributes: map[string]int{gltf.POSITION: modeler.WritePosition(b.doc, positions)},
			Indices:    gltf.Index(modeler.WriteIndices(b.doc, indices)),
			Material:   gltf.Index(b.material(c)),
		})

	}

	b.doc.Meshes = append(b.doc.Meshes, mesh)
	return len(b.doc.Meshes) - 1

}

// boxFaces lists the corners (indices into present.BoxCorners()) of each face, counter-clockwise from outside.
var boxFaces = [6][4]int{
	{0, 1, 2, 3}, // +Z
	{7, 6, 5, 4}, // -Z
	{4, 5, 1, 0}, // -Y
	{3, 2, 6, 7}, // +Y
	{1, 5, 6, 2}, // +X
	{4, 0, 3, 7}, // -X
}

// addBoxMesh adds the unrotated, solid box marker, with flat normals.
func (b *builder) addBoxMesh(name string) int {

	corners := present.BoxCorners()

	positions := make([][3]float32, 0, 24)
	normals := make([][3]float32, 0, 24)
	indices := make([]uint16, 0, 36)

	for _, face := range boxFaces {

		a, bb, c := corners[face[0]], corners[face[1]], corners[face[2]]
		normal := bb.Sub(a).Cross(c.Sub(a)).Unit()

		start := uint16(len(positions))

		for _, corner := range face {
			positions = append(positions, toFloat32(corners[corner]))
			normals = append(normals, toFloat32(normal))
		}

		indices = append(indices, start, start+1, start+2, start, start+2, start+3)

	}

	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Mode: gltf.PrimitiveTriangles,
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(b.doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(b.doc, normals),
			},
			Indices:  gltf.Index(modeler.WriteIndices(b.doc, indices)),
			Material: gltf.Index(b.material(present.MarkerColor)),
		}},
	})

	return len(b.doc.Meshes) - 1

}

// addLight adds a white directional light shining from (5, 5, 5) towards the origin.
func (b *builder) addLight() {

	b.doc.ExtensionsUsed = append(b.doc.ExtensionsUsed, lightsExtension)

	if b.doc.Extensions == nil {
		b.doc.Extensions = gltf.Extensions{}
	}

	b.doc.Extensions[lightsExtension] = lightspunctual.Lights{
		{Type: lightspunctual.TypeDirectional, Name: NodeLight, Intensity: gltf.Float(1)},
	}

	b.doc.Nodes = append(b.doc.Nodes, &gltf.Node{
		Name:        NodeLight,
		Matrix:      gltf.DefaultMatrix,
		Rotation:    lightRotation().Floats(),
		Scale:       gltf.DefaultScale,
		Translation: [3]float64{5, 5, 5},
		Extensions:  gltf.Extensions{lightsExtension: lightspunctual.LightIndex(0)},
	})

	b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, len(b.doc.Nodes)-1)

}

// lightRotation turns a glTF light's -Z facing towards the origin from (5, 5, 5).
func lightRotation() rotations.Quaternion {

	from := rotations.VecZ.Invert()
	to := rotations.NewVector(-1, -1, -1).Unit()

	axis := from.Cross(to)
	angle := rotations.ToDegrees(math.Acos(from.Dot(to)))

	q, err := rotations.AxisAngleToQuaternion(axis, angle)
	if err != nil {
		return rotations.NewQuaternionIdentity()
	}
	return q

}

func toFloat32(v rotations.Vector) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Renderer saves the scene for every Result it's given. Files ending in ".glb" are written as binary glTF;
// anything else is written as JSON glTF.
type Renderer struct {
	Path    string
	Options *Options
}

// Render builds and saves the scene for the Result.
func (r Renderer) Render(result present.Result) error {

	doc := Build(result, r.Options)

	var err error

	if strings.EqualFold(filepath.Ext(r.Path), ".glb") {
		err = gltf.SaveBinary(doc, r.Path)
	} else {
		// JSON glTF has nowhere to put buffer data but the URI.
		for _, buffer := range doc.Buffers {
			if buffer.URI == "" {
				buffer.EmbeddedResource()
			}
		}
		err = gltf.Save(doc, r.Path)
	}

	if err != nil {
		return fmt.Errorf("saving glTF scene to %s: %w", r.Path, err)
	}

	return nil

}
