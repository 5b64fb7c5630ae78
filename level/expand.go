package level

// ExpandToInclude grows the grid so that (tx,ty) becomes a valid cell
// coordinate. Growth happens per side; new cells default to ground at
// height 0. On success it returns the (offX, offY) shift applied to every
// pre-existing tile coordinate, which callers must add to any coordinate
// computed before the call. Either the whole expansion applies or nothing
// does.
func (m *Map) ExpandToInclude(tx, ty int) (int, int, error) {
	if m.InBounds(tx, ty) {
		return 0, 0, nil
	}
	if !m.InPaddedBounds(tx, ty) {
		return 0, 0, ErrOutsideMargin
	}

	growL, growR, growT, growB := 0, 0, 0, 0
	if tx < 0 {
		growL = -tx
	}
	if tx >= m.Width {
		growR = tx - m.Width + 1
	}
	if ty < 0 {
		growT = -ty
	}
	if ty >= m.Height {
		growB = ty - m.Height + 1
	}

	newW := m.Width + growL + growR
	newH := m.Height + growT + growB
	if newW > MaxSize || newH > MaxSize {
		return 0, 0, ErrCanvasLimit
	}

	cells := make([]Cell, newW*newH)
	for y := 0; y < m.Height; y++ {
		copy(cells[(y+growT)*newW+growL:(y+growT)*newW+growL+m.Width],
			m.Cells[y*m.Width:(y+1)*m.Width])
	}

	// Hazard center is stored in world units; world space is centered on
	// the grid, so rebase through tile space using the old extents, shift,
	// then convert back with the new extents.
	if m.Hazard.Enabled {
		oldHW := float32(m.Width) * m.TileSize * 0.5
		oldHH := float32(m.Height) * m.TileSize * 0.5
		fx := (m.Hazard.CenterX + oldHW) / m.TileSize
		fz := (m.Hazard.CenterZ + oldHH) / m.TileSize
		fx += float32(growL)
		fz += float32(growT)
		newHW := float32(newW) * m.TileSize * 0.5
		newHH := float32(newH) * m.TileSize * 0.5
		m.Hazard.CenterX = fx*m.TileSize - newHW
		m.Hazard.CenterZ = fz*m.TileSize - newHH
	}

	m.Cells = cells
	m.Width = newW
	m.Height = newH

	for i := range m.Placements {
		m.Placements[i].X += growL
		m.Placements[i].Y += growT
	}
	m.PrunePlacements()

	return growL, growT, nil
}
