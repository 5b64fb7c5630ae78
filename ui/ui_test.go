package ui

import (
	"testing"

	"github.com/forgelight-studio/tankforge/render"
)

func newTestContext() (*Context, *render.NullBackend) {
	b := render.NewNullBackend(800, 600)
	return NewContext(b), b
}

func TestButtonClick(t *testing.T) {
	c, _ := newTestContext()

	c.BeginFrame(50, 50, true, true, false)
	if !c.Button(40, 40, 80, 24, "OK") {
		t.Fatal("click inside button not registered")
	}
	if !c.MouseConsumed() {
		t.Fatal("click should consume the mouse")
	}

	c.BeginFrame(200, 200, true, true, false)
	if c.Button(40, 40, 80, 24, "OK") {
		t.Fatal("click outside button registered")
	}
}

func TestButtonIgnoredWhenInputDisabled(t *testing.T) {
	c, _ := newTestContext()
	c.BeginFrame(50, 50, true, true, false)
	c.SetInputEnabled(false)
	if c.Button(40, 40, 80, 24, "OK") {
		t.Fatal("disabled button registered a click")
	}
	if c.MouseConsumed() {
		t.Fatal("disabled widget consumed the mouse")
	}
}

func TestWindowRectAutoCenterAndClamp(t *testing.T) {
	tests := []struct {
		name   string
		state  WindowState
		wantX  float32
		wantY  float32
		width  float32
		height float32
	}{
		{"origin sentinel centers", WindowState{}, 300, 250, 200, 100},
		{"placed window stays", WindowState{X: 10, Y: 20}, 10, 20, 200, 100},
		{"clamped to right edge", WindowState{X: 750, Y: 20}, 600, 20, 200, 100},
		{"clamped to top left", WindowState{X: -40, Y: -10}, 0, 0, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := WindowRect(&tt.state, tt.width, tt.height, 800, 600)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("rect = (%v,%v), want (%v,%v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWindowDrag(t *testing.T) {
	c, _ := newTestContext()
	s := &WindowState{X: 100, Y: 100}

	// press on the title bar
	c.BeginFrame(110, 110, true, true, false)
	c.Window(s, "Test", 200, 150)
	if !s.Dragging {
		t.Fatal("title bar press did not start a drag")
	}

	// move with the button held
	c.BeginFrame(160, 140, true, false, false)
	c.Window(s, "Test", 200, 150)
	if s.X != 150 || s.Y != 130 {
		t.Fatalf("window at (%v,%v), want (150,130)", s.X, s.Y)
	}

	// release ends the drag
	c.BeginFrame(160, 140, false, false, true)
	c.Window(s, "Test", 200, 150)
	if s.Dragging {
		t.Fatal("drag survived button release")
	}
}

func TestWindowCloseResetsState(t *testing.T) {
	c, _ := newTestContext()
	s := &WindowState{X: 100, Y: 100, Z: 5}

	// close button occupies the title bar's right edge
	closeX := float32(100 + 200 - (TitleBarHeight - 8) - 4 + 2)
	c.BeginFrame(closeX, 106, true, true, false)
	closed := c.Window(s, "Test", 200, 150)
	if !closed {
		t.Fatal("close button not registered")
	}
	if s.Z != 0 || s.X != 0 || s.Y != 0 {
		t.Fatalf("state not reset: %+v", s)
	}
}

func TestWindowBodyClickConsumesMouse(t *testing.T) {
	c, _ := newTestContext()
	s := &WindowState{X: 100, Y: 100}
	c.BeginFrame(150, 180, true, true, false)
	c.Window(s, "Test", 200, 150)
	if !c.MouseConsumed() {
		t.Fatal("click inside window body should consume the mouse")
	}
	if s.Dragging {
		t.Fatal("body click must not start a drag")
	}
}
