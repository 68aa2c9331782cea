package present

import (
	"math"

	"github.com/solarlune/rotations"
	"github.com/solarlune/rotations/colors"
)

// Sizes of the rendered scene, in world units. The scene is Z-up.
const (
	MarkerSize    = 0.5 // Edge length of the box marker
	ArrowLength   = 1   // Length of each object axis arrow
	AxesSize      = 5   // Length of the world axes
	GridSize      = 10  // Width of the ground grid
	GridDivisions = 10
)

// Colors of the scene elements, in the same 0xRRGGBB values the rendered scene has always used.
var (
	MarkerColor = colors.NewColorFromHexInt(0x00ff00)
	XAxisColor  = colors.NewColorFromHexInt(0xff0000)
	YAxisColor  = colors.NewColorFromHexInt(0x00ff00)
	ZAxisColor  = colors.NewColorFromHexInt(0x0000ff)
	GridColor   = colors.NewColorFromHexInt(0x888888)
)

// MarkerAlignment is the fixed turn (-90 degrees around Z) applied to the box before the displayed orientation.
var MarkerAlignment = rotations.NewQuaternion(0, 0, -math.Sqrt2/2, math.Sqrt2/2)

// Segment is a colored line between two points in world space.
type Segment struct {
	From, To rotations.Vector
	Color    colors.Color
}

// Arrow is one of the three object axis indicators: a line from the origin to Tip, with a head.
type Arrow struct {
	Tip   rotations.Vector
	Color colors.Color
	side  rotations.Vector // Unit vector perpendicular to Tip, used to draw the head
	up    rotations.Vector // Unit vector perpendicular to both
}

// Segments returns the arrow's shaft, followed by the four lines of its head. The head is 20% of the
// arrow's length and a fifth as wide, the proportions ArrowHelper-style indicators use.
func (arrow Arrow) Segments() []Segment {

	length := arrow.Tip.Magnitude()
	headLength := 0.2 * length
	headWidth := 0.2 * headLength

	base := arrow.Tip.Scale((length - headLength) / length)

	segments := []Segment{{From: rotations.NewVectorZero(), To: arrow.Tip, Color: arrow.Color}}

	for _, offset := range []rotations.Vector{arrow.side, arrow.side.Invert(), arrow.up, arrow.up.Invert()} {
		segments = append(segments, Segment{
			From:  base.Add(offset.Scale(headWidth)),
			To:    arrow.Tip,
			Color: arrow.Color,
		})
	}

	return segments

}

// Marker is the displayed orientation, resolved into world-space geometry.
type Marker struct {
	Orientation rotations.Quaternion // Unit orientation, as applied to the arrows
	BoxRotation rotations.Quaternion // Orientation * MarkerAlignment, as applied to the box
	Corners     [8]rotations.Vector  // Box corners, rotated
	Arrows      [3]Arrow             // X, Y, Z object axes, rotated
}

// BoxEdges indexes pairs of Marker.Corners that make up the box's twelve edges.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // Top face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // Bottom face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Connecting lines
}

var boxCorners = [8]rotations.Vector{
	{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
}

// BoxCorners returns the corners of the unrotated box marker.
func BoxCorners() [8]rotations.Vector {
	var corners [8]rotations.Vector
	for i, c := range boxCorners {
		corners[i] = c.Scale(MarkerSize / 2)
	}
	return corners
}

// OrientMarker builds the Marker for the given orientation. The Quaternion is normalized first.
func OrientMarker(q rotations.Quaternion) Marker {

	q = q.Normalized()

	marker := Marker{
		Orientation: q,
		BoxRotation: q.Mult(MarkerAlignment),
	}

	boxMatrix := rotations.NewMatrix3FromQuaternion(marker.BoxRotation)

	for i, c := range BoxCorners() {
		marker.Corners[i] = boxMatrix.MultVec(c)
	}

	m := rotations.NewMatrix3FromQuaternion(q)

	axisColors := [3]colors.Color{XAxisColor, YAxisColor, ZAxisColor}

	for i := 0; i < 3; i++ {
		marker.Arrows[i] = Arrow{
			Tip:   m.Column(i).Scale(ArrowLength),
			Color: axisColors[i],
			side:  m.Column((i + 1) % 3),
			up:    m.Column((i + 2) % 3),
		}
	}

	return marker

}

// BoxSegments returns the box's twelve edges.
func (marker Marker) BoxSegments() []Segment {
	segments := make([]Segment, 0, len(BoxEdges))
	for _, e := range BoxEdges {
		segments = append(segments, Segment{From: marker.Corners[e[0]], To: marker.Corners[e[1]], Color: MarkerColor})
	}
	return segments
}

// Segments returns every line needed to draw the marker: box edges first, then the three arrows.
func (marker Marker) Segments() []Segment {
	segments := marker.BoxSegments()
	for _, arrow := range marker.Arrows {
		segments = append(segments, arrow.Segments()...)
	}
	return segments
}

// WorldAxes returns the fixed world axes drawn behind the marker.
func WorldAxes() []Segment {
	origin := rotations.NewVectorZero()
	return []Segment{
		{From: origin, To: rotations.VecX.Scale(AxesSize), Color: XAxisColor},
		{From: origin, To: rotations.VecY.Scale(AxesSize), Color: YAxisColor},
		{From: origin, To: rotations.VecZ.Scale(AxesSize), Color: ZAxisColor},
	}
}

// Grid returns the lines of the ground grid, which lies in the XY plane.
func Grid() []Segment {

	half := float64(GridSize) / 2
	step := float64(GridSize) / GridDivisions

	segments := make([]Segment, 0, (GridDivisions+1)*2)

	for i := 0; i <= GridDivisions; i++ {
		p := -half + float64(i)*step
		segments = append(segments,
			Segment{From: rotations.NewVector(p, -half, 0), To: rotations.NewVector(p, half, 0), Color: GridColor},
			Segment{From: rotations.NewVector(-half, p, 0), To: rotations.NewVector(half, p, 0), Color: GridColor},
		)
	}

	return segments

}
