package rotations

import (
	"math"
	"math/rand"
	"testing"
)

func BenchmarkMathInternalVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}

func TestVectorCross(t *testing.T) {

	if c := VecX.Cross(VecY); !c.Equals(VecZ) {
		t.Errorf("X cross Y = %s", c)
	}

	if c := VecY.Cross(VecZ); !c.Equals(VecX) {
		t.Errorf("Y cross Z = %s", c)
	}

	if c := VecZ.Cross(VecX); !c.Equals(VecY) {
		t.Errorf("Z cross X = %s", c)
	}

}

func TestVectorUnit(t *testing.T) {

	if u := NewVector(3, 0, 4).Unit(); !u.Equals(NewVector(0.6, 0, 0.8)) {
		t.Errorf("expected {0.6, 0, 0.8}, got %s", u)
	}

	// Too short to normalize; left as-is.
	tiny := NewVector(1e-9, 0, 0)
	if u := tiny.Unit(); u != tiny {
		t.Errorf("expected a tiny vector to be left alone, got %s", u)
	}

	if !tiny.IsZero() || NewVector(1e-7, 0, 0).IsZero() {
		t.Error("IsZero threshold is off")
	}

}

func TestVectorIsFinite(t *testing.T) {

	if !NewVector(1, 2, 3).IsFinite() {
		t.Error("expected a finite vector")
	}

	if NewVector(1, math.NaN(), 3).IsFinite() || NewVector(math.Inf(-1), 0, 0).IsFinite() {
		t.Error("expected NaN and Inf to be caught")
	}

}

func TestVectorMagnitudeScaled(t *testing.T) {

	tests := []struct {
		vec  Vector
		want float64
	}{
		{NewVector(3e200, 0, 4e200), 5e200},
		{NewVector(3e-200, 4e-200, 0), 5e-200},
		{NewVector(0, 0, 0), 0},
	}

	for _, test := range tests {
		if m := test.vec.Magnitude(); math.Abs(m-test.want) > test.want*1e-12 {
			t.Errorf("%v: expected magnitude %g, got %g", test.vec, test.want, m)
		}
	}

	if u := NewVector(1e300, 1e300, 0).Unit(); !u.EqualsTolerance(NewVector(math.Sqrt2/2, math.Sqrt2/2, 0), 1e-12) {
		t.Errorf("expected a unit diagonal, got %s", u)
	}

	if NewVector(1e200, 0, 0).IsZero() {
		t.Error("a huge vector isn't zero")
	}

}
