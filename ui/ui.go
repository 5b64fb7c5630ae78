// Package ui is a small immediate-mode widget layer drawn through a
// render.Backend. Widgets register clicks only while input is enabled,
// which is how the editor grants the active dialog exclusive input.
package ui

import (
	"github.com/forgelight-studio/tankforge/render"
)

var (
	ColPanel      = render.RGBA{R: 0.13, G: 0.14, B: 0.16, A: 0.96}
	ColPanelEdge  = render.RGBA{R: 0.35, G: 0.37, B: 0.4, A: 1}
	ColTitleBar   = render.RGBA{R: 0.2, G: 0.22, B: 0.26, A: 1}
	ColButton     = render.RGBA{R: 0.24, G: 0.26, B: 0.3, A: 1}
	ColButtonHot  = render.RGBA{R: 0.32, G: 0.36, B: 0.42, A: 1}
	ColText       = render.RGBA{R: 0.92, G: 0.92, B: 0.9, A: 1}
	ColTextDim    = render.RGBA{R: 0.6, G: 0.6, B: 0.58, A: 1}
	ColAccent     = render.RGBA{R: 0.95, G: 0.75, B: 0.25, A: 1}
	ColError      = render.RGBA{R: 0.9, G: 0.35, B: 0.3, A: 1}
	ColSlotBorder = render.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
)

// Context carries per-frame pointer state and the drawing surface. One
// Context serves the whole editor; BeginFrame resets it each frame.
type Context struct {
	backend render.Backend

	mouseX, mouseY float32
	mouseDown      bool
	mousePressed   bool
	mouseReleased  bool

	inputEnabled  bool
	mouseConsumed bool
}

func NewContext(backend render.Backend) *Context {
	return &Context{backend: backend, inputEnabled: true}
}

// BeginFrame records this frame's pointer state and clears the consumed
// flag. pressed/released are edge transitions for the left button.
func (c *Context) BeginFrame(mx, my float32, down, pressed, released bool) {
	c.mouseX, c.mouseY = mx, my
	c.mouseDown = down
	c.mousePressed = pressed
	c.mouseReleased = released
	c.mouseConsumed = false
	c.inputEnabled = true
}

// SetInputEnabled gates click registration for subsequent widgets.
// Disabled widgets still draw, reflecting live state, but never react.
func (c *Context) SetInputEnabled(enabled bool) { c.inputEnabled = enabled }

// MouseConsumed reports whether any widget accepted the pointer this
// frame; the canvas ignores clicks the UI ate.
func (c *Context) MouseConsumed() bool { return c.mouseConsumed }

// ConsumeMouse marks the pointer as handled without a widget.
func (c *Context) ConsumeMouse() { c.mouseConsumed = true }

func (c *Context) Backend() render.Backend { return c.backend }

func (c *Context) MousePos() (float32, float32) { return c.mouseX, c.mouseY }

func (c *Context) hovered(x, y, w, h float32) bool {
	return c.mouseX >= x && c.mouseX < x+w && c.mouseY >= y && c.mouseY < y+h
}

// Panel draws a filled, outlined rectangle.
func (c *Context) Panel(x, y, w, h float32) {
	c.backend.FillRect(x, y, w, h, ColPanel)
	c.backend.StrokeRect(x, y, w, h, 1, ColPanelEdge)
}

func (c *Context) Label(x, y float32, text string, col render.RGBA) {
	c.backend.DrawLabel(x, y, text, col, render.AlignLeft)
}

func (c *Context) LabelCentered(x, y float32, text string, col render.RGBA) {
	c.backend.DrawLabel(x, y, text, col, render.AlignCenter)
}

// Button draws a push button and reports whether it was clicked this
// frame. Hover feedback only renders while input is enabled.
func (c *Context) Button(x, y, w, h float32, text string) bool {
	hot := c.inputEnabled && c.hovered(x, y, w, h)
	col := ColButton
	if hot {
		col = ColButtonHot
	}
	c.backend.FillRect(x, y, w, h, col)
	c.backend.StrokeRect(x, y, w, h, 1, ColPanelEdge)
	c.backend.DrawLabel(x+w/2, y+(h-c.backend.LineHeight())/2, text, ColText, render.AlignCenter)
	if hot && c.mousePressed {
		c.mouseConsumed = true
		return true
	}
	return false
}

// Slot draws one palette slot; selected slots get an accent border.
// Returns whether the slot was clicked.
func (c *Context) Slot(x, y, size float32, label string, selected bool) bool {
	c.backend.FillRect(x, y, size, size, ColButton)
	border := ColSlotBorder
	if selected {
		border = ColAccent
	}
	c.backend.StrokeRect(x, y, size, size, 2, border)
	c.backend.DrawLabel(x+size/2, y+(size-c.backend.LineHeight())/2, label, ColText, render.AlignCenter)
	if c.inputEnabled && c.hovered(x, y, size, size) && c.mousePressed {
		c.mouseConsumed = true
		return true
	}
	return false
}

// TextField draws a text entry box with a trailing caret when focused.
func (c *Context) TextField(x, y, w, h float32, text string, focused bool) {
	c.backend.FillRect(x, y, w, h, render.RGBA{R: 0.08, G: 0.09, B: 0.1, A: 1})
	border := ColPanelEdge
	if focused {
		border = ColAccent
	}
	c.backend.StrokeRect(x, y, w, h, 1, border)
	shown := text
	if focused {
		shown += "_"
	}
	c.backend.DrawLabel(x+6, y+(h-c.backend.LineHeight())/2, shown, ColText, render.AlignLeft)
}
