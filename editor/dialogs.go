package editor

import (
	"fmt"

	"github.com/forgelight-studio/tankforge/level"
	"github.com/forgelight-studio/tankforge/ui"
)

const (
	toolbarHeight = 40
	slotBarHeight = 56
	slotSize      = 44
	rowHeight     = 26
)

// pointerOverToolbar reports whether the pointer sits on the fixed UI
// strips, which swallow canvas clicks.
func (s *Session) pointerOverToolbar() bool {
	_, viewH := s.backend.ViewportSize()
	if s.mouseY < toolbarHeight {
		return true
	}
	return s.mouseY >= float32(viewH-slotBarHeight)
}

// RenderUI draws the toolbar, the slot bar, the status line and every
// open dialog in stacking order. Only the active dialog gets widget
// input.
func (s *Session) RenderUI() {
	if s.doc == nil {
		return
	}
	viewW, viewH := s.backend.ViewportSize()

	s.ui.BeginFrame(s.mouseX, s.mouseY, s.leftDown, s.pressEdge, s.releaseEdge)

	active := s.ActiveWindow()
	anyWindow := active != windowCount

	// fixed chrome only reacts when no dialog claims the pointer
	s.ui.SetInputEnabled(!anyWindow)
	s.drawToolbar(viewW)
	s.drawSlotBar(viewW, viewH)
	s.drawStatusLine(viewW, viewH)

	for _, k := range s.openWindows() {
		s.ui.SetInputEnabled(k == active)
		s.drawDialog(k)
	}

	s.pressEdge, s.releaseEdge = false, false
}

func (s *Session) drawToolbar(viewW int) {
	s.ui.Panel(0, 0, float32(viewW), toolbarHeight)

	x := float32(8)
	bw, bh := float32(72), float32(toolbarHeight-12)
	y := float32(6)

	if s.ui.Button(x, y, bw, bh, "Tiles") {
		s.ToggleDialog(winTilePicker)
	}
	x += bw + 6
	if s.ui.Button(x, y, bw, bh, "Tags") {
		s.ToggleDialog(winTags)
	}
	x += bw + 6
	if s.ui.Button(x, y, bw, bh, "Settings") {
		s.ToggleDialog(winMapSettings)
	}
	x += bw + 6
	if s.ui.Button(x, y, bw, bh, "Save") {
		if err := s.ForceSave(); err == nil {
			s.statusFlash = "saved " + s.path
		}
	}
	x += bw + 6
	autoLabel := "AUTO off"
	if s.autoSave {
		autoLabel = "AUTO on"
	}
	if s.ui.Button(x, y, bw, bh, autoLabel) {
		s.autoSave = !s.autoSave
	}
	x += bw + 16

	name := s.doc.Name
	if s.dirty {
		name += " *"
	}
	s.ui.Label(x, y+4, name, ui.ColText)
	if s.ui.Button(x+s.backend.TextWidth(name)+12, y, 60, bh, "Rename") {
		s.BeginMapRename()
	}
}

func (s *Session) drawSlotBar(viewW, viewH int) {
	y := float32(viewH - slotBarHeight)
	s.ui.Panel(0, y, float32(viewW), slotBarHeight)

	x := float32(8)
	for i := 0; i < SlotCount; i++ {
		if s.ui.Slot(x, y+6, slotSize, s.slotLabel(i), i == s.selected) {
			s.SelectSlot(i)
		}
		x += slotSize + 6
	}
}

func (s *Session) slotLabel(i int) string {
	sl := s.slots[i]
	switch sl.Kind {
	case SlotTile:
		if sl.TileIndex >= 0 && sl.TileIndex < len(s.doc.TileDefs) {
			sym := s.doc.TileDefs[sl.TileIndex].Symbol
			if sym == "" {
				sym = s.doc.TileDefs[sl.TileIndex].Name
			}
			return sym
		}
		return "?"
	case SlotTag:
		return sl.TagName
	}
	return ""
}

func (s *Session) drawStatusLine(viewW, viewH int) {
	y := float32(viewH-slotBarHeight) - s.backend.LineHeight() - 4
	text := fmt.Sprintf("%dx%d", s.doc.Width, s.doc.Height)
	if s.hover.valid {
		text = fmt.Sprintf("%s  tile %d,%d", text, s.hover.x, s.hover.y)
	}
	switch {
	case s.Rotating():
		text += "  rotating: left commits, right cancels"
	case s.Painting():
		text += "  painting"
	}
	if s.statusFlash != "" {
		text += "  " + s.statusFlash
	}
	s.ui.Label(8, y, text, ui.ColTextDim)
}

func (s *Session) drawDialog(k windowKind) {
	w, h := k.size()
	if s.ui.Window(&s.windows[k], k.title(), w, h) {
		s.open[k] = false
		return
	}
	x, y, _, _ := s.windowRect(k)
	bodyX := x + 10
	bodyY := y + ui.TitleBarHeight + 8

	switch k {
	case winTags:
		s.drawTagsDialog(bodyX, bodyY, w)
	case winTagEditor:
		s.drawTagEditor(bodyX, bodyY, w)
	case winTilePicker:
		s.drawTilePicker(bodyX, bodyY, w)
	case winConfirmClose:
		s.drawConfirmClose(bodyX, bodyY, w)
	case winTagRename, winMapRename:
		s.drawRenameDialog(k, bodyX, bodyY, w)
	case winMapSettings:
		s.drawMapSettings(bodyX, bodyY, w)
	}
}

const tagRowsVisible = 7

func (s *Session) drawTagsDialog(x, y, w float32) {
	if s.tagScroll > len(s.doc.TagDefs)-tagRowsVisible {
		s.tagScroll = len(s.doc.TagDefs) - tagRowsVisible
	}
	if s.tagScroll < 0 {
		s.tagScroll = 0
	}

	rowY := y
	end := s.tagScroll + tagRowsVisible
	if end > len(s.doc.TagDefs) {
		end = len(s.doc.TagDefs)
	}
	for i := s.tagScroll; i < end; i++ {
		def := &s.doc.TagDefs[i]
		s.ui.Label(x, rowY+4, fmt.Sprintf("%-8s %s", def.Name, def.Type), ui.ColText)
		bx := x + w - 20 - 4*48
		if s.ui.Button(bx, rowY, 44, rowHeight-4, "Bind") {
			s.SetSlotTag(s.selected, def.Name)
		}
		if s.ui.Button(bx+48, rowY, 44, rowHeight-4, "Edit") {
			s.editTag = i
			s.OpenDialog(winTagEditor)
		}
		if s.ui.Button(bx+96, rowY, 44, rowHeight-4, "Ren") {
			s.BeginTagRename(i)
		}
		if s.ui.Button(bx+144, rowY, 44, rowHeight-4, "Del") {
			s.RemoveTagDef(i)
			return
		}
		rowY += rowHeight
	}

	if len(s.doc.TagDefs) > tagRowsVisible {
		if s.ui.Button(x+w-60, y-2, 20, 18, "^") {
			s.tagScroll--
		}
		if s.ui.Button(x+w-36, y-2, 20, 18, "v") {
			s.tagScroll++
		}
	}

	addY := y + float32(tagRowsVisible)*rowHeight + 8
	labels := []struct {
		text string
		t    level.TagType
	}{
		{"+Spawn", level.TagSpawn},
		{"+Enemy", level.TagEnemy},
		{"+Powerup", level.TagPowerup},
		{"+Barrier", level.TagBarrier},
	}
	bx := x
	for _, l := range labels {
		if s.ui.Button(bx, addY, 74, rowHeight, l.text) {
			if i, err := s.AddTagDef(l.t); err == nil {
				s.SetSlotTag(s.selected, s.doc.TagDefs[i].Name)
			}
		}
		bx += 78
	}
}

func (s *Session) drawTagEditor(x, y, w float32) {
	if s.editTag < 0 || s.editTag >= len(s.doc.TagDefs) {
		s.CloseDialog(winTagEditor)
		return
	}
	def := &s.doc.TagDefs[s.editTag]
	s.ui.Label(x, y, fmt.Sprintf("%s (%s)", def.Name, def.Type), ui.ColAccent)
	rowY := y + rowHeight + 4

	switch def.Type {
	case level.TagSpawn:
		s.numberRow(x, rowY, w, "Team", def.Spawn.Team, func(d int) {
			def.Spawn.Team = clampInt(def.Spawn.Team+d, 0, 3)
			s.markDirty()
		})
	case level.TagEnemy:
		s.cycleRow(x, rowY, w, "Kind", def.Enemy.Kind, func(d int) {
			def.Enemy.Kind = cycleString(EnemyKinds, def.Enemy.Kind, d)
			s.markDirty()
		})
	case level.TagPowerup:
		p := def.Powerup
		s.cycleRow(x, rowY, w, "Kind", p.Kind, func(d int) {
			p.Kind = cycleString(PowerupKinds, p.Kind, d)
			s.markDirty()
		})
		rowY += rowHeight
		s.numberRow(x, rowY, w, "Respawn", p.RespawnSeconds, func(d int) {
			p.RespawnSeconds = clampInt(p.RespawnSeconds+d*5, 5, 120)
			s.markDirty()
		})
		rowY += rowHeight
		barrier := p.BarrierTag
		if barrier == "" {
			barrier = "-"
		}
		s.cycleRow(x, rowY, w, "Barrier", barrier, func(d int) {
			p.BarrierTag = s.cycleBarrierTag(p.BarrierTag, d)
			s.markDirty()
		})
		rowY += rowHeight
		s.numberRow(x, rowY, w, "Count", p.BarrierCount, func(d int) {
			p.BarrierCount = clampInt(p.BarrierCount+d, 1, 8)
			s.markDirty()
		})
	case level.TagBarrier:
		b := def.Barrier
		tileName := "?"
		if b.TileIndex >= 0 && b.TileIndex < len(s.doc.TileDefs) {
			tileName = s.doc.TileDefs[b.TileIndex].Name
		}
		s.cycleRow(x, rowY, w, "Tile", tileName, func(d int) {
			n := len(s.doc.TileDefs)
			if n > 0 {
				b.TileIndex = (b.TileIndex + d + n) % n
				s.markDirty()
			}
		})
		rowY += rowHeight
		s.numberRow(x, rowY, w, "Health", b.Health, func(d int) {
			b.Health = clampInt(b.Health+d*5, 5, 200)
			s.markDirty()
		})
	}
}

// cycleBarrierTag steps through the barrier-type definitions, with the
// empty name meaning "none".
func (s *Session) cycleBarrierTag(current string, dir int) string {
	var names []string
	for i := range s.doc.TagDefs {
		if s.doc.TagDefs[i].Type == level.TagBarrier {
			names = append(names, s.doc.TagDefs[i].Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	options := append([]string{""}, names...)
	idx := 0
	for i, n := range options {
		if n == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(options)) % len(options)
	return options[idx]
}

func (s *Session) drawTilePicker(x, y, w float32) {
	types := s.tiles.All()
	const visible = 8
	if s.tileScroll > len(types)-visible {
		s.tileScroll = len(types) - visible
	}
	if s.tileScroll < 0 {
		s.tileScroll = 0
	}
	end := s.tileScroll + visible
	if end > len(types) {
		end = len(types)
	}
	rowY := y
	for i := s.tileScroll; i < end; i++ {
		t := types[i]
		if s.ui.Button(x, rowY, w-40, rowHeight-4, fmt.Sprintf("%s (%s)", t.Name, t.Symbol)) {
			if err := s.PickTile(t.Name); err == nil {
				s.CloseDialog(winTilePicker)
			}
		}
		rowY += rowHeight
	}
	if len(types) > visible {
		if s.ui.Button(x+w-36, y, 20, 18, "^") {
			s.tileScroll--
		}
		if s.ui.Button(x+w-36, y+24, 20, 18, "v") {
			s.tileScroll++
		}
	}
}

func (s *Session) drawConfirmClose(x, y, w float32) {
	by := y + rowHeight + 10
	if !s.dirty {
		s.ui.Label(x, y, "Leave the editor?", ui.ColText)
		if s.ui.Button(x, by, 92, rowHeight, "Exit") {
			s.CloseDialog(winConfirmClose)
			s.closeRequested = true
		}
		if s.ui.Button(x+100, by, 92, rowHeight, "Cancel") {
			s.CloseDialog(winConfirmClose)
		}
		return
	}
	s.ui.Label(x, y, "Save changes before leaving?", ui.ColText)
	if s.ui.Button(x, by, 92, rowHeight, "Save & Exit") {
		if err := s.ForceSave(); err == nil {
			s.CloseDialog(winConfirmClose)
			s.closeRequested = true
		}
	}
	if s.ui.Button(x+100, by, 92, rowHeight, "Discard") {
		s.CloseDialog(winConfirmClose)
		s.closeRequested = true
	}
	if s.ui.Button(x+200, by, 92, rowHeight, "Cancel") {
		s.CloseDialog(winConfirmClose)
	}
}

func (s *Session) drawRenameDialog(k windowKind, x, y, w float32) {
	s.ui.TextField(x, y, w-24, rowHeight, s.textBuf, true)
	if s.textErr != "" {
		s.ui.Label(x, y+rowHeight+4, s.textErr, ui.ColError)
	}
	by := y + rowHeight + 26
	if s.ui.Button(x, by, 80, rowHeight, "OK") {
		s.commitTextDialog()
	}
	if s.ui.Button(x+90, by, 80, rowHeight, "Cancel") {
		s.cancelTextDialog()
	}
}

func (s *Session) drawMapSettings(x, y, w float32) {
	rowY := y
	s.toggleRow(x, rowY, w, "Water", s.doc.Water.Enabled, func() {
		s.doc.Water.Enabled = !s.doc.Water.Enabled
		s.markDirty()
	})
	rowY += rowHeight
	s.numberRow(x, rowY, w, "Water level", int(s.doc.Water.Level), func(d int) {
		s.doc.Water.Level = int8(clampInt(int(s.doc.Water.Level)+d, level.MinHeight, level.MaxHeight))
		s.markDirty()
	})
	rowY += rowHeight
	s.toggleRow(x, rowY, w, "Sun", s.doc.Lighting.Sun, func() {
		s.doc.Lighting.Sun = !s.doc.Lighting.Sun
		s.markDirty()
	})
	rowY += rowHeight
	s.numberRow(x, rowY, w, "Darkness %", int(s.doc.Lighting.AmbientDarkness*100), func(d int) {
		v := clampInt(int(s.doc.Lighting.AmbientDarkness*100)+d*5, 0, 90)
		s.doc.Lighting.AmbientDarkness = float32(v) / 100
		s.markDirty()
	})
	rowY += rowHeight
	s.toggleRow(x, rowY, w, "Hazard zone", s.doc.Hazard.Enabled, func() {
		s.doc.Hazard.Enabled = !s.doc.Hazard.Enabled
		s.markDirty()
	})
	rowY += rowHeight
	s.numberRow(x, rowY, w, "Hazard radius", int(s.doc.Hazard.Radius), func(d int) {
		s.doc.Hazard.Radius = float32(clampInt(int(s.doc.Hazard.Radius)+d*2, 2, 200))
		s.markDirty()
	})
	rowY += rowHeight
	s.numberRow(x, rowY, w, "Hazard delay", int(s.doc.Hazard.Delay), func(d int) {
		s.doc.Hazard.Delay = float32(clampInt(int(s.doc.Hazard.Delay)+d*5, 0, 600))
		s.markDirty()
	})
}

func (s *Session) toggleRow(x, y, w float32, label string, on bool, flip func()) {
	s.ui.Label(x, y+4, label, ui.ColText)
	state := "off"
	if on {
		state = "on"
	}
	if s.ui.Button(x+w-80, y, 56, rowHeight-4, state) {
		flip()
	}
}

func (s *Session) numberRow(x, y, w float32, label string, value int, adjust func(int)) {
	s.ui.Label(x, y+4, label, ui.ColText)
	if s.ui.Button(x+w-110, y, 24, rowHeight-4, "-") {
		adjust(-1)
	}
	s.ui.LabelCentered(x+w-68, y+4, fmt.Sprintf("%d", value), ui.ColText)
	if s.ui.Button(x+w-48, y, 24, rowHeight-4, "+") {
		adjust(1)
	}
}

func (s *Session) cycleRow(x, y, w float32, label, value string, step func(int)) {
	s.ui.Label(x, y+4, label, ui.ColText)
	if s.ui.Button(x+w-150, y, 24, rowHeight-4, "<") {
		step(-1)
	}
	s.ui.LabelCentered(x+w-85, y+4, value, ui.ColText)
	if s.ui.Button(x+w-48, y, 24, rowHeight-4, ">") {
		step(1)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cycleString(options []string, current string, dir int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	return options[(idx+dir+len(options))%len(options)]
}
