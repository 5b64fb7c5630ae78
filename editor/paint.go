package editor

import (
	"errors"
	"log"
	"math"

	"github.com/forgelight-studio/tankforge/level"
)

// mode is the current interaction state. Exactly one is active; painting
// and rotating cannot coexist.
type mode interface{ isMode() }

type idleMode struct{}

// paintMode is a press-drag edit in progress. The first click's resulting
// cell becomes the brush applied to every newly entered tile.
type paintMode struct {
	lower        bool
	brush        level.Cell
	lastX, lastY int
}

// rotateMode continuously aims a directional tag at the cursor until the
// left button commits or Escape/right cancels back to startAngle.
type rotateMode struct {
	placement  int
	startAngle float32
}

func (idleMode) isMode()   {}
func (paintMode) isMode()  {}
func (rotateMode) isMode() {}

// Painting reports whether a paint drag is in progress.
func (s *Session) Painting() bool {
	_, ok := s.mode.(paintMode)
	return ok
}

// Rotating reports whether rotation mode is active.
func (s *Session) Rotating() bool {
	_, ok := s.mode.(rotateMode)
	return ok
}

// beginPaint handles a pointer press on the canvas with a tile slot
// selected (or a right press with no placement under the cursor). A left
// press on a cell that already carries a placement never paints: a
// directional tag starts rotating, anything else is a no-op.
func (s *Session) beginPaint(lower bool) {
	if !s.hover.valid {
		return
	}
	x, y := s.hover.x, s.hover.y
	if !lower && s.beginRotateAt(x, y) {
		return
	}
	x, y, ok := s.ensureInBounds(x, y)
	if !ok {
		return
	}

	if !s.applyEdit(x, y, lower) {
		return
	}
	s.mode = paintMode{lower: lower, brush: s.doc.At(x, y), lastX: x, lastY: y}
}

// applyEdit performs the single-cell edit rule: same tile raises, a
// different tile replaces, right lowers; cells carrying a tag never
// change height. Reports whether anything changed.
func (s *Session) applyEdit(x, y int, lower bool) bool {
	cell := s.doc.At(x, y)
	tagged := s.doc.FindPlacementAt(x, y) >= 0

	if lower {
		if tagged || cell.Height <= level.MinHeight {
			return false
		}
		cell.Height--
		s.doc.SetCell(x, y, cell)
		s.markDirty()
		return true
	}

	slot := s.slots[s.selected]
	if slot.Kind != SlotTile || tagged {
		return false
	}
	if int(cell.TileIndex) == slot.TileIndex {
		if cell.Height >= level.MaxHeight {
			return false
		}
		cell.Height++
	} else {
		if slot.TileIndex < 0 || slot.TileIndex >= len(s.doc.TileDefs) {
			return false
		}
		cell.TileIndex = uint8(slot.TileIndex)
	}
	s.doc.SetCell(x, y, cell)
	s.markDirty()
	return true
}

// continuePaint applies the captured brush to the newly entered tile
// during a drag, skipping tag-occupied cells.
func (s *Session) continuePaint() {
	pm, ok := s.mode.(paintMode)
	if !ok || !s.hover.valid {
		return
	}
	x, y := s.hover.x, s.hover.y
	if x == pm.lastX && y == pm.lastY {
		return
	}
	x, y, ok = s.ensureInBounds(x, y)
	if !ok {
		return
	}
	// the expansion may have shifted the previous tile too
	if pm2, ok := s.mode.(paintMode); ok {
		pm = pm2
	}
	if x == pm.lastX && y == pm.lastY {
		return
	}

	if s.doc.FindPlacementAt(x, y) < 0 {
		cell := s.doc.At(x, y)
		if pm.lower {
			cell.Height = pm.brush.Height
		} else {
			cell = pm.brush
		}
		s.doc.SetCell(x, y, cell)
		s.markDirty()
	}
	pm.lastX, pm.lastY = x, y
	s.mode = pm
}

// endPaint leaves painting when the matching button is released.
func (s *Session) endPaint(lower bool) {
	if pm, ok := s.mode.(paintMode); ok && pm.lower == lower {
		s.mode = idleMode{}
	}
}

// ensureInBounds expands the canvas when (x,y) lies in the margin,
// returning the rebased coordinate. All session-held tile coordinates are
// shifted by the applied offset.
func (s *Session) ensureInBounds(x, y int) (int, int, bool) {
	if s.doc.InBounds(x, y) {
		return x, y, true
	}
	offX, offY, err := s.doc.ExpandToInclude(x, y)
	if err != nil {
		if !errors.Is(err, level.ErrOutsideMargin) {
			log.Printf("editor: cannot expand map: %v", err)
		}
		return x, y, false
	}
	if offX != 0 || offY != 0 {
		s.hover.x += offX
		s.hover.y += offY
		if pm, ok := s.mode.(paintMode); ok {
			pm.lastX += offX
			pm.lastY += offY
			s.mode = pm
		}
		s.markDirty()
	}
	return x + offX, y + offY, true
}

// beginRotateAt enters rotation mode when (x,y) carries a placement of a
// directional definition. The angle lives on the definition, so rotation
// pivots on its first placement no matter which one was clicked. Reports
// whether a placement occupies the cell.
func (s *Session) beginRotateAt(x, y int) bool {
	if !s.doc.InBounds(x, y) {
		return false
	}
	p := s.doc.FindPlacementAt(x, y)
	if p < 0 {
		return false
	}
	tag := s.doc.Placements[p].Tag
	if angle, ok := s.doc.TagDefs[tag].Angle(); ok {
		s.mode = rotateMode{placement: s.firstPlacementOf(tag), startAngle: angle}
	}
	return true
}

func (s *Session) firstPlacementOf(tag int) int {
	for i, p := range s.doc.Placements {
		if p.Tag == tag {
			return i
		}
	}
	return -1
}

// beginTagAction handles a left press with a tag slot selected: an
// existing rotatable placement enters rotation mode, an empty cell
// receives a new placement.
func (s *Session) beginTagAction() {
	if !s.hover.valid {
		return
	}
	x, y := s.hover.x, s.hover.y

	if s.beginRotateAt(x, y) {
		return
	}

	x, y, ok := s.ensureInBounds(x, y)
	if !ok {
		return
	}
	name := s.slots[s.selected].TagName
	def := s.doc.FindTagDef(name)
	if def < 0 {
		log.Printf("editor: slot tag %q no longer exists", name)
		s.slots[s.selected] = Slot{}
		return
	}
	if err := s.doc.AddPlacement(def, x, y); err != nil {
		log.Printf("editor: cannot place tag %q: %v", name, err)
		return
	}
	s.markDirty()
}

// removeTagAt handles a right press over a placement.
func (s *Session) removeTagAt(x, y int) bool {
	if !s.doc.InBounds(x, y) {
		return false
	}
	if !s.doc.RemovePlacementAt(x, y) {
		return false
	}
	s.markDirty()
	return true
}

// updateRotation re-aims the rotated tag at the ray's intersection with
// the placement tile's surface plane.
func (s *Session) updateRotation() {
	rm, ok := s.mode.(rotateMode)
	if !ok {
		return
	}
	if rm.placement < 0 || rm.placement >= len(s.doc.Placements) {
		s.mode = idleMode{}
		return
	}
	p := s.doc.Placements[rm.placement]
	cx, cz := s.doc.TileToWorld(p.X, p.Y)
	hit, ok := s.groundIntersect(s.doc.SurfaceY(p.X, p.Y))
	if !ok {
		return
	}
	dx := hit.X() - cx
	dz := hit.Z() - cz
	if dx == 0 && dz == 0 {
		return
	}
	s.doc.TagDefs[p.Tag].SetAngle(float32(math.Atan2(float64(dx), float64(dz))))
}

// commitRotation keeps the current angle and returns to idle.
func (s *Session) commitRotation() {
	if _, ok := s.mode.(rotateMode); ok {
		s.mode = idleMode{}
		s.markDirty()
	}
}

// cancelRotation restores the angle captured when rotation began.
func (s *Session) cancelRotation() {
	rm, ok := s.mode.(rotateMode)
	if !ok {
		return
	}
	if rm.placement >= 0 && rm.placement < len(s.doc.Placements) {
		p := s.doc.Placements[rm.placement]
		s.doc.TagDefs[p.Tag].SetAngle(rm.startAngle)
	}
	s.mode = idleMode{}
}
