package editor

import (
	"sort"

	"github.com/forgelight-studio/tankforge/ui"
)

// windowKind enumerates the editor's dialogs. Each kind owns one
// persistent ui.WindowState.
type windowKind int

const (
	winTags windowKind = iota
	winTagEditor
	winTilePicker
	winConfirmClose
	winTagRename
	winMapRename
	winMapSettings
	windowCount
)

func (k windowKind) title() string {
	switch k {
	case winTags:
		return "Tags"
	case winTagEditor:
		return "Edit Tag"
	case winTilePicker:
		return "Tiles"
	case winConfirmClose:
		return "Unsaved Changes"
	case winTagRename:
		return "Rename Tag"
	case winMapRename:
		return "Rename Map"
	case winMapSettings:
		return "Map Settings"
	}
	return ""
}

func (k windowKind) size() (float32, float32) {
	switch k {
	case winTags:
		return 340, 320
	case winTagEditor:
		return 320, 260
	case winTilePicker:
		return 300, 280
	case winConfirmClose:
		return 320, 140
	case winTagRename, winMapRename:
		return 320, 150
	case winMapSettings:
		return 360, 330
	}
	return 200, 150
}

// OpenDialog opens a dialog, assigning it a fresh topmost stacking rank.
func (s *Session) OpenDialog(k windowKind) {
	if s.open[k] {
		s.promote(k)
		return
	}
	s.open[k] = true
	s.windows[k].Reset()
	s.promote(k)
}

// CloseDialog closes a dialog and resets its window so a reopen lands
// centered and on top.
func (s *Session) CloseDialog(k windowKind) {
	if !s.open[k] {
		return
	}
	s.open[k] = false
	s.windows[k].Reset()
}

// ToggleDialog flips a dialog's open state.
func (s *Session) ToggleDialog(k windowKind) {
	if s.open[k] {
		s.CloseDialog(k)
	} else {
		s.OpenDialog(k)
	}
}

// DialogOpen reports whether the dialog is open.
func (s *Session) DialogOpen(k windowKind) bool { return s.open[k] }

func (s *Session) anyDialogOpen() bool {
	for k := windowKind(0); k < windowCount; k++ {
		if s.open[k] {
			return true
		}
	}
	return false
}

// promote raises k above every other window.
func (s *Session) promote(k windowKind) {
	s.windows[k].Z = s.maxZ() + 1
}

func (s *Session) maxZ() int {
	max := 0
	for k := windowKind(0); k < windowCount; k++ {
		if s.open[k] && s.windows[k].Z > max {
			max = s.windows[k].Z
		}
	}
	return max
}

// openWindows returns the open dialogs sorted by stacking rank ascending,
// so the topmost is drawn and arbitrated last. Windows that were never
// stacked get a fresh rank first.
func (s *Session) openWindows() []windowKind {
	var kinds []windowKind
	for k := windowKind(0); k < windowCount; k++ {
		if !s.open[k] {
			continue
		}
		if s.windows[k].Z == 0 {
			s.promote(k)
		}
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(a, b int) bool {
		return s.windows[kinds[a]].Z < s.windows[kinds[b]].Z
	})
	return kinds
}

// windowRect resolves dialog k's current on-screen rectangle.
func (s *Session) windowRect(k windowKind) (x, y, w, h float32) {
	w, h = k.size()
	viewW, viewH := s.backend.ViewportSize()
	x, y = ui.WindowRect(&s.windows[k], w, h, viewW, viewH)
	return x, y, w, h
}

func (s *Session) windowContains(k windowKind, mx, my float32) bool {
	x, y, w, h := s.windowRect(k)
	return mx >= x && mx < x+w && my >= y && my < y+h
}

// ActiveWindow picks the single dialog that receives widget input this
// frame: a window mid-drag wins, otherwise the topmost one under the
// pointer. Returns windowCount when no dialog claims the pointer.
func (s *Session) ActiveWindow() windowKind {
	kinds := s.openWindows()
	if len(kinds) == 0 {
		return windowCount
	}
	for _, k := range kinds {
		if s.windows[k].Dragging {
			return k
		}
	}
	active := windowCount
	for _, k := range kinds {
		if s.windowContains(k, s.mouseX, s.mouseY) {
			active = k
		}
	}
	return active
}

// pressOnWindows routes a pointer press to the dialogs: the active
// window is promoted to the top and the press is consumed.
func (s *Session) pressOnWindows() bool {
	k := s.ActiveWindow()
	if k == windowCount {
		return false
	}
	s.promote(k)
	return true
}
