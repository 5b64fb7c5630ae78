package editor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/forgelight-studio/tankforge/level"
	"github.com/forgelight-studio/tankforge/render"
)

// tileColor resolves a document tile index to its catalog color.
func (s *Session) tileColor(idx uint8) render.RGBA {
	if int(idx) < len(s.doc.TileDefs) {
		if t, ok := s.tiles.Lookup(s.doc.TileDefs[idx].Name); ok {
			c := t.Color.NRGBA
			return render.RGBA{
				R: float32(c.R) / 255,
				G: float32(c.G) / 255,
				B: float32(c.B) / 255,
				A: 1,
			}
		}
	}
	return render.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
}

// RenderMap draws the terrain under vp, rebuilding the cached mesh after
// edits.
func (s *Session) RenderMap(vp mgl32.Mat4) {
	if s.doc == nil {
		return
	}
	if s.meshStale || s.mesh == nil {
		s.mesh = render.BuildMapMesh(s.doc, s.tileColor)
		s.meshStale = false
	}
	s.backend.DrawTriangles(vp, s.mesh)
}

// RenderOverlays draws the hover highlight, the expansion margin outline
// and every tag marker.
func (s *Session) RenderOverlays(vp mgl32.Mat4) {
	if s.doc == nil {
		return
	}

	var lines []render.Vertex

	// expansion margin
	lines = appendRectOutline(lines, s.doc, -level.PaddingTiles, -level.PaddingTiles,
		s.doc.Width+level.PaddingTiles, s.doc.Height+level.PaddingTiles, 0.02,
		render.RGBA{R: 0.4, G: 0.4, B: 0.45, A: 0.5})

	if s.hover.valid {
		y := float32(0.05)
		if s.doc.InBounds(s.hover.x, s.hover.y) {
			y = s.doc.SurfaceY(s.hover.x, s.hover.y) + 0.06
		}
		lines = appendRectOutline(lines, s.doc, s.hover.x, s.hover.y,
			s.hover.x+1, s.hover.y+1, y, render.RGBA{R: 1, G: 0.85, B: 0.2, A: 1})
	}

	for _, p := range s.doc.Placements {
		lines = s.appendTagMarker(lines, p)
	}

	if len(lines) > 0 {
		s.backend.DrawLines(vp, lines)
	}
}

func appendRectOutline(lines []render.Vertex, m *level.Map, x0, y0, x1, y1 int, y float32, col render.RGBA) []render.Vertex {
	hw := float32(m.Width) * m.TileSize * 0.5
	hh := float32(m.Height) * m.TileSize * 0.5
	ax := float32(x0)*m.TileSize - hw
	az := float32(y0)*m.TileSize - hh
	bx := float32(x1)*m.TileSize - hw
	bz := float32(y1)*m.TileSize - hh
	c := [4]mgl32.Vec3{
		{ax, y, az}, {bx, y, az}, {bx, y, bz}, {ax, y, bz},
	}
	for i := 0; i < 4; i++ {
		lines = append(lines,
			render.Vertex{Pos: c[i], Color: col},
			render.Vertex{Pos: c[(i+1)%4], Color: col})
	}
	return lines
}

// appendTagMarker draws a diamond over the placement's tile, with a
// facing line for rotatable tags.
func (s *Session) appendTagMarker(lines []render.Vertex, p level.Placement) []render.Vertex {
	if p.Tag < 0 || p.Tag >= len(s.doc.TagDefs) {
		return lines
	}
	def := &s.doc.TagDefs[p.Tag]
	cx, cz := s.doc.TileToWorld(p.X, p.Y)
	y := s.doc.SurfaceY(p.X, p.Y) + 0.1
	r := s.doc.TileSize * 0.35

	col := tagTypeColor(def.Type)
	pts := [4]mgl32.Vec3{
		{cx, y, cz - r}, {cx + r, y, cz}, {cx, y, cz + r}, {cx - r, y, cz},
	}
	for i := 0; i < 4; i++ {
		lines = append(lines,
			render.Vertex{Pos: pts[i], Color: col},
			render.Vertex{Pos: pts[(i+1)%4], Color: col})
	}

	if angle, ok := def.Angle(); ok {
		dx := float32(math.Sin(float64(angle))) * r * 1.6
		dz := float32(math.Cos(float64(angle))) * r * 1.6
		lines = append(lines,
			render.Vertex{Pos: mgl32.Vec3{cx, y, cz}, Color: col},
			render.Vertex{Pos: mgl32.Vec3{cx + dx, y, cz + dz}, Color: col})
	}
	return lines
}

func tagTypeColor(t level.TagType) render.RGBA {
	switch t {
	case level.TagSpawn:
		return render.RGBA{R: 0.3, G: 0.9, B: 0.4, A: 1}
	case level.TagEnemy:
		return render.RGBA{R: 0.95, G: 0.3, B: 0.3, A: 1}
	case level.TagPowerup:
		return render.RGBA{R: 0.95, G: 0.8, B: 0.25, A: 1}
	case level.TagBarrier:
		return render.RGBA{R: 0.4, G: 0.6, B: 0.95, A: 1}
	}
	return render.RGBA{R: 1, G: 1, B: 1, A: 1}
}
