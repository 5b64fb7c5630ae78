package render

import "github.com/go-gl/mathgl/mgl32"

// NullBackend discards draw calls while counting them. It stands in for a
// real surface in tests and headless runs.
type NullBackend struct {
	Width, Height int

	Triangles int
	Lines     int
	Rects     int
	Labels    []string
}

func NewNullBackend(w, h int) *NullBackend {
	return &NullBackend{Width: w, Height: h}
}

func (n *NullBackend) ViewportSize() (int, int) {
	if n.Width == 0 {
		return 1280, 720
	}
	return n.Width, n.Height
}

func (n *NullBackend) DrawTriangles(_ mgl32.Mat4, verts []Vertex) {
	n.Triangles += len(verts) / 3
}

func (n *NullBackend) DrawLines(_ mgl32.Mat4, verts []Vertex) {
	n.Lines += len(verts) / 2
}

func (n *NullBackend) FillRect(_, _, _, _ float32, _ RGBA) { n.Rects++ }

func (n *NullBackend) StrokeRect(_, _, _, _, _ float32, _ RGBA) { n.Rects++ }

func (n *NullBackend) DrawLabel(_, _ float32, text string, _ RGBA, _ Align) {
	n.Labels = append(n.Labels, text)
}

func (n *NullBackend) TextWidth(text string) float32 { return float32(len(text)) * 7 }

func (n *NullBackend) LineHeight() float32 { return 16 }

// Reset clears the recorded counters between frames.
func (n *NullBackend) Reset() {
	n.Triangles, n.Lines, n.Rects = 0, 0, 0
	n.Labels = n.Labels[:0]
}
