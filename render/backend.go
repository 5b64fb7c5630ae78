// Package render abstracts the drawing surface the editor targets. The
// host application supplies a Backend; tests use NullBackend.
package render

import "github.com/go-gl/mathgl/mgl32"

// RGBA is a premultiplied-free color in [0,1] channels.
type RGBA struct {
	R, G, B, A float32
}

// Vertex is one world-space vertex of a shaded primitive.
type Vertex struct {
	Pos   mgl32.Vec3
	Color RGBA
}

// Align selects horizontal label alignment relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Backend receives all editor draw calls. World-space methods take the
// current view-projection; screen-space methods take pixels with the
// origin at the top left.
type Backend interface {
	ViewportSize() (int, int)

	// DrawTriangles renders a world-space triangle list under vp.
	DrawTriangles(vp mgl32.Mat4, verts []Vertex)
	// DrawLines renders a world-space line list (pairs) under vp.
	DrawLines(vp mgl32.Mat4, verts []Vertex)

	FillRect(x, y, w, h float32, col RGBA)
	StrokeRect(x, y, w, h, thickness float32, col RGBA)
	DrawLabel(x, y float32, text string, col RGBA, align Align)

	TextWidth(text string) float32
	LineHeight() float32
}
