package present

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/solarlune/rotations"
)

// View is the single, fixed vantage point the renderers look at the scene from.
type View struct {
	Eye    rotations.Vector
	Target rotations.Vector
	Up     rotations.Vector
	FOV    float64 // Vertical field of view, in degrees
	Near   float64
	Far    float64

	// OrthoSize, if above zero, switches to an orthographic projection showing this many units above and below
	// the target.
	OrthoSize float64
}

// DefaultView creates a View looking at the origin from (5, 5, 5), with Z up and a 75 degree field of view.
func DefaultView() View {
	return View{
		Eye:    rotations.NewVector(5, 5, 5),
		Target: rotations.NewVectorZero(),
		Up:     rotations.VecZ,
		FOV:    75,
		Near:   0.1,
		Far:    1000,
	}
}

func toVec3(v rotations.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Matrix returns the combined projection and view matrix for a viewport of the given size.
func (view View) Matrix(width, height float64) mgl64.Mat4 {
	aspect := width / height
	projection := mgl64.Perspective(mgl64.DegToRad(view.FOV), aspect, view.Near, view.Far)
	if view.OrthoSize > 0 {
		h := view.OrthoSize
		projection = mgl64.Ortho(-h*aspect, h*aspect, -h, h, view.Near, view.Far)
	}
	camera := mgl64.LookAtV(toVec3(view.Eye), toVec3(view.Target), toVec3(view.Up))
	return projection.Mul4(camera)
}

// Projector maps world-space points onto a viewport.
type Projector struct {
	mvp           mgl64.Mat4
	width, height float64
}

// Projector returns a Projector for a viewport of the given size, in pixels (or cells).
func (view View) Projector(width, height float64) Projector {
	return Projector{mvp: view.Matrix(width, height), width: width, height: height}
}

// Project returns where the point lands on the viewport, with (0, 0) at the top-left. ok is false for points
// behind the near plane.
func (p Projector) Project(point rotations.Vector) (x, y float64, ok bool) {

	clip := p.mvp.Mul4x1(mgl64.Vec4{point.X, point.Y, point.Z, 1})

	if clip.W() <= 0 {
		return 0, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())

	return (ndc.X() + 1) / 2 * p.width, (1 - ndc.Y()) / 2 * p.height, true

}

// ProjectSegment projects both ends of the Segment; ok is false if either is behind the near plane.
func (p Projector) ProjectSegment(s Segment) (x0, y0, x1, y1 float64, ok bool) {
	x0, y0, ok0 := p.Project(s.From)
	x1, y1, ok1 := p.Project(s.To)
	return x0, y0, x1, y1, ok0 && ok1
}
