package present

import (
	"math"
	"testing"

	"github.com/solarlune/rotations"
)

func TestOrientMarkerIdentity(t *testing.T) {

	marker := OrientMarker(rotations.NewQuaternionIdentity())

	want := [3]rotations.Vector{rotations.VecX, rotations.VecY, rotations.VecZ}

	for i, arrow := range marker.Arrows {
		if !arrow.Tip.EqualsTolerance(want[i].Scale(ArrowLength), 1e-12) {
			t.Errorf("arrow %d points to %s", i, arrow.Tip)
		}
	}

	if !marker.BoxRotation.Equivalent(MarkerAlignment, 1e-12) {
		t.Errorf("expected the box to carry only the alignment turn, got %s", marker.BoxRotation)
	}

	// The alignment turn is -90 degrees around Z, taking +X onto -Y.
	if v := MarkerAlignment.RotateVector(rotations.VecX); !v.EqualsTolerance(rotations.VecY.Invert(), 1e-12) {
		t.Errorf("alignment takes X to %s", v)
	}

}

func TestOrientMarkerRotated(t *testing.T) {

	q, err := rotations.AxisAngleToQuaternion(rotations.VecZ, 90)
	if err != nil {
		t.Fatal(err)
	}

	marker := OrientMarker(q)

	if tip := marker.Arrows[0].Tip; !tip.EqualsTolerance(rotations.VecY, 1e-12) {
		t.Errorf("expected the X arrow to point along Y, got %s", tip)
	}

	if tip := marker.Arrows[1].Tip; !tip.EqualsTolerance(rotations.VecX.Invert(), 1e-12) {
		t.Errorf("expected the Y arrow to point along -X, got %s", tip)
	}

	// Rotation keeps every corner the same distance from the center.
	want := math.Sqrt(3) * MarkerSize / 2
	for i, c := range marker.Corners {
		if math.Abs(c.Magnitude()-want) > 1e-12 {
			t.Errorf("corner %d is %f from the center", i, c.Magnitude())
		}
	}

	// A rotation that doesn't change the box's shape should leave its edges the same length.
	for _, s := range marker.BoxSegments() {
		if l := s.To.Sub(s.From).Magnitude(); math.Abs(l-MarkerSize) > 1e-12 {
			t.Errorf("edge has length %f", l)
		}
	}

}

func TestMarkerSegments(t *testing.T) {

	marker := OrientMarker(rotations.EulerToQuaternion(rotations.NewEulerAngles(10, 20, 30)))

	if n := len(marker.Segments()); n != len(BoxEdges)+3*5 {
		t.Errorf("expected %d segments, got %d", len(BoxEdges)+3*5, n)
	}

	for i, arrow := range marker.Arrows {

		segments := arrow.Segments()

		for _, s := range segments[1:] {

			if !s.To.Equals(arrow.Tip) {
				t.Errorf("arrow %d: head line doesn't end at the tip", i)
			}

			// Head lines start 80% of the way up the shaft.
			along := s.From.Dot(arrow.Tip.Unit())
			if math.Abs(along-0.8*ArrowLength) > 1e-9 {
				t.Errorf("arrow %d: head starts at %f", i, along)
			}

		}

	}

}

func TestSceneHelpers(t *testing.T) {

	if n := len(Grid()); n != (GridDivisions+1)*2 {
		t.Errorf("expected %d grid lines, got %d", (GridDivisions+1)*2, n)
	}

	for _, s := range Grid() {
		if s.From.Z != 0 || s.To.Z != 0 {
			t.Errorf("grid line %s-%s is off the XY plane", s.From, s.To)
		}
	}

	axes := WorldAxes()
	if len(axes) != 3 || axes[2].To != rotations.VecZ.Scale(AxesSize) || axes[0].Color != XAxisColor {
		t.Errorf("unexpected world axes %+v", axes)
	}

}
