package editor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	camFOV    = 45 * math.Pi / 180
	camNear   = 0.1
	camFar    = 500
	camTilt   = 20 * math.Pi / 180 // lean from straight-down, toward +z
	camMargin = 1.1
)

// Camera returns the view and projection matrices framing the whole map
// footprint with a small margin, for the given viewport.
func (s *Session) Camera(viewW, viewH int) (mgl32.Mat4, mgl32.Mat4) {
	aspect := float32(viewW) / float32(viewH)
	if viewH == 0 {
		aspect = 1
	}

	hw := float32(s.doc.Width) * s.doc.TileSize * 0.5
	hh := float32(s.doc.Height) * s.doc.TileSize * 0.5
	radius := hw
	if hh > radius {
		radius = hh
	}
	radius *= camMargin
	dist := radius / float32(math.Tan(camFOV/2))

	forward := mgl32.Vec3{
		0,
		-float32(math.Cos(camTilt)),
		-float32(math.Sin(camTilt)),
	}
	target := mgl32.Vec3{0, 0, 0}
	eye := target.Sub(forward.Mul(dist))

	view := mgl32.LookAtV(eye, target, mgl32.Vec3{0, 0, -1})
	proj := mgl32.Perspective(camFOV, aspect, camNear, camFar)
	return view, proj
}

// screenToRay unprojects a screen pixel through the inverse
// view-projection at the near and far planes.
func screenToRay(view, proj mgl32.Mat4, sx, sy float32, viewW, viewH int) (mgl32.Vec3, mgl32.Vec3) {
	ndcX := 2*sx/float32(viewW) - 1
	ndcY := 1 - 2*sy/float32(viewH)

	inv := proj.Mul4(view).Inv()
	near := unproject(inv, ndcX, ndcY, -1)
	far := unproject(inv, ndcX, ndcY, 1)

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return near, dir
}

func unproject(inv mgl32.Mat4, x, y, z float32) mgl32.Vec3 {
	v := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if v.W() != 0 {
		return mgl32.Vec3{v.X() / v.W(), v.Y() / v.W(), v.Z() / v.W()}
	}
	return v.Vec3()
}
