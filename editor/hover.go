package editor

import "github.com/go-gl/mathgl/mgl32"

const (
	rayMaxDist = 500
	hitEpsilon = 0.1
)

type hoverState struct {
	valid bool
	x, y  int
}

// updateHover resolves the tile under the pointer by marching the pick
// ray across the heightfield in quarter-tile steps; misses fall back to
// the ground plane. The result is valid only inside the grid plus its
// expansion margin.
func (s *Session) updateHover() {
	s.hover.valid = false
	if s.doc == nil {
		return
	}

	viewW, viewH := s.backend.ViewportSize()
	view, proj := s.Camera(viewW, viewH)
	origin, dir := screenToRay(view, proj, s.mouseX, s.mouseY, viewW, viewH)

	step := s.doc.TileSize * 0.25
	if step <= 0 {
		return
	}
	for t := float32(0); t < rayMaxDist; t += step {
		p := origin.Add(dir.Mul(t))
		tx, ty := s.doc.WorldToTile(p.X(), p.Z())
		if !s.doc.InBounds(tx, ty) {
			continue
		}
		if p.Y() <= s.doc.SurfaceY(tx, ty)+hitEpsilon {
			s.hover = hoverState{valid: true, x: tx, y: ty}
			return
		}
	}

	// ground-plane fallback covers the expansion margin and grazing rays
	if dir.Y() >= 0 {
		return
	}
	t := -origin.Y() / dir.Y()
	p := origin.Add(dir.Mul(t))
	tx, ty := s.doc.WorldToTile(p.X(), p.Z())
	if s.doc.InPaddedBounds(tx, ty) {
		s.hover = hoverState{valid: true, x: tx, y: ty}
	}
}

// groundIntersect returns the ray's intersection with the horizontal
// plane at height y, used while rotating a directional tag.
func (s *Session) groundIntersect(planeY float32) (mgl32.Vec3, bool) {
	viewW, viewH := s.backend.ViewportSize()
	view, proj := s.Camera(viewW, viewH)
	origin, dir := screenToRay(view, proj, s.mouseX, s.mouseY, viewW, viewH)
	if dir.Y() >= 0 {
		return mgl32.Vec3{}, false
	}
	t := (planeY - origin.Y()) / dir.Y()
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}
