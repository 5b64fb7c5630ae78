package ui

import "github.com/forgelight-studio/tankforge/render"

// TitleBarHeight is the draggable strip at the top of every window.
const TitleBarHeight = 28

// WindowState is the persistent per-dialog record: position, drag
// progress and stacking rank. A position of exactly (0,0) means
// "auto-center on next draw"; a Z of 0 means "not yet stacked".
type WindowState struct {
	X, Y     float32
	Dragging bool
	DragDX   float32
	DragDY   float32
	Z        int
}

// Reset returns the window to the auto-center position and unset Z so a
// reopened dialog lands centered and on top.
func (s *WindowState) Reset() {
	s.X, s.Y = 0, 0
	s.Dragging = false
	s.Z = 0
}

// WindowRect resolves the on-screen rectangle for a window of size w×h:
// auto-centers states still at the origin sentinel and clamps the result
// fully inside the viewport.
func WindowRect(s *WindowState, w, h float32, viewW, viewH int) (float32, float32) {
	x, y := s.X, s.Y
	if x == 0 && y == 0 {
		x = (float32(viewW) - w) / 2
		y = (float32(viewH) - h) / 2
	}
	if x+w > float32(viewW) {
		x = float32(viewW) - w
	}
	if y+h > float32(viewH) {
		y = float32(viewH) - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Window draws the chrome (panel, title bar, close button) and handles
// title-bar dragging while input is enabled. It reports whether the close
// button was clicked; the caller owns the open/closed flag.
func (c *Context) Window(s *WindowState, title string, w, h float32) bool {
	viewW, viewH := c.backend.ViewportSize()
	x, y := WindowRect(s, w, h, viewW, viewH)

	if c.inputEnabled {
		if s.Dragging {
			if c.mouseDown {
				x = c.mouseX - s.DragDX
				y = c.mouseY - s.DragDY
			} else {
				s.Dragging = false
			}
		}
	} else {
		s.Dragging = false
	}

	// re-clamp after drag movement
	if x+w > float32(viewW) {
		x = float32(viewW) - w
	}
	if y+h > float32(viewH) {
		y = float32(viewH) - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	s.X, s.Y = x, y

	c.Panel(x, y, w, h)
	c.backend.FillRect(x, y, w, TitleBarHeight, ColTitleBar)
	c.backend.DrawLabel(x+8, y+(TitleBarHeight-c.backend.LineHeight())/2, title, ColText, render.AlignLeft)

	closeSize := float32(TitleBarHeight - 8)
	closeX := x + w - closeSize - 4
	closeY := y + 4
	closed := false
	if c.inputEnabled && c.hovered(closeX, closeY, closeSize, closeSize) {
		c.backend.FillRect(closeX, closeY, closeSize, closeSize, ColButtonHot)
		if c.mousePressed {
			closed = true
			c.mouseConsumed = true
		}
	}
	c.backend.DrawLabel(closeX+closeSize/2, closeY+(closeSize-c.backend.LineHeight())/2, "x", ColText, render.AlignCenter)

	if c.inputEnabled && !closed && c.mousePressed &&
		c.hovered(x, y, w, TitleBarHeight) && !c.hovered(closeX, closeY, closeSize, closeSize) {
		s.Dragging = true
		s.DragDX = c.mouseX - x
		s.DragDY = c.mouseY - y
		c.mouseConsumed = true
	}

	// a window swallows any pointer press inside it
	if c.inputEnabled && c.mousePressed && c.hovered(x, y, w, h) {
		c.mouseConsumed = true
	}

	if closed {
		s.Reset()
	}
	return closed
}
