package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/forgelight-studio/tankforge/level"
)

// TileColor resolves a document tile index to a base color.
type TileColor func(tileIndex uint8) RGBA

const heightStep = 1.5

// BuildMapMesh produces the shaded triangle list for the map surface: one
// top quad per cell plus side walls down to lower neighbors. The editor
// regenerates it whenever the document is marked dirty.
func BuildMapMesh(m *level.Map, tileColor TileColor) []Vertex {
	verts := make([]Vertex, 0, m.Width*m.Height*6)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.At(x, y)
			top := float32(c.Height) * heightStep
			base := tileColor(c.TileIndex)
			col := shade(m.Lighting, base, mgl32.Vec3{0, 1, 0})

			x0, z0 := cellCorner(m, x, y)
			x1, z1 := x0+m.TileSize, z0+m.TileSize

			verts = appendQuad(verts,
				mgl32.Vec3{x0, top, z0}, mgl32.Vec3{x1, top, z0},
				mgl32.Vec3{x1, top, z1}, mgl32.Vec3{x0, top, z1}, col)

			verts = appendWall(verts, m, x, y, x-1, y, tileColor,
				mgl32.Vec3{x0, top, z1}, mgl32.Vec3{x0, top, z0}, mgl32.Vec3{-1, 0, 0})
			verts = appendWall(verts, m, x, y, x+1, y, tileColor,
				mgl32.Vec3{x1, top, z0}, mgl32.Vec3{x1, top, z1}, mgl32.Vec3{1, 0, 0})
			verts = appendWall(verts, m, x, y, x, y-1, tileColor,
				mgl32.Vec3{x0, top, z0}, mgl32.Vec3{x1, top, z0}, mgl32.Vec3{0, 0, -1})
			verts = appendWall(verts, m, x, y, x, y+1, tileColor,
				mgl32.Vec3{x1, top, z1}, mgl32.Vec3{x0, top, z1}, mgl32.Vec3{0, 0, 1})
		}
	}

	if m.Water.Enabled {
		verts = appendWaterPlane(verts, m)
	}
	return verts
}

func cellCorner(m *level.Map, x, y int) (float32, float32) {
	hw := float32(m.Width) * m.TileSize * 0.5
	hh := float32(m.Height) * m.TileSize * 0.5
	return float32(x)*m.TileSize - hw, float32(y)*m.TileSize - hh
}

// appendWall emits the vertical face between a cell top and its neighbor's
// top when the neighbor (or the void outside the grid) is lower.
func appendWall(verts []Vertex, m *level.Map, x, y, nx, ny int, tileColor TileColor, a, b mgl32.Vec3, normal mgl32.Vec3) []Vertex {
	c := m.At(x, y)
	bottom := float32(level.MinHeight) * heightStep
	if m.InBounds(nx, ny) {
		n := m.At(nx, ny)
		if n.Height >= c.Height {
			return verts
		}
		bottom = float32(n.Height) * heightStep
	}
	col := shade(m.Lighting, tileColor(c.TileIndex), normal)
	col.R *= 0.8
	col.G *= 0.8
	col.B *= 0.8
	return appendQuad(verts,
		a, b,
		mgl32.Vec3{b.X(), bottom, b.Z()},
		mgl32.Vec3{a.X(), bottom, a.Z()}, col)
}

func appendWaterPlane(verts []Vertex, m *level.Map) []Vertex {
	hw := float32(m.Width) * m.TileSize * 0.5
	hh := float32(m.Height) * m.TileSize * 0.5
	y := float32(m.Water.Level)*heightStep - 0.5
	col := RGBA{m.Water.Color.R, m.Water.Color.G, m.Water.Color.B, 0.6}
	if col.R == 0 && col.G == 0 && col.B == 0 {
		col = RGBA{0.2, 0.4, 0.7, 0.6}
	}
	return appendQuad(verts,
		mgl32.Vec3{-hw, y, -hh}, mgl32.Vec3{hw, y, -hh},
		mgl32.Vec3{hw, y, hh}, mgl32.Vec3{-hw, y, hh}, col)
}

func appendQuad(verts []Vertex, a, b, c, d mgl32.Vec3, col RGBA) []Vertex {
	return append(verts,
		Vertex{a, col}, Vertex{b, col}, Vertex{c, col},
		Vertex{a, col}, Vertex{c, col}, Vertex{d, col})
}

func shade(l level.Lighting, base RGBA, normal mgl32.Vec3) RGBA {
	ambient := 1 - l.AmbientDarkness
	if ambient <= 0 {
		ambient = 0.1
	}
	intensity := ambient
	if l.Sun {
		dir := mgl32.Vec3{l.SunDir[0], l.SunDir[1], l.SunDir[2]}
		if dir.Len() > 0 {
			dir = dir.Normalize()
		}
		diffuse := -dir.Dot(normal)
		if diffuse < 0 {
			diffuse = 0
		}
		intensity += diffuse * 0.6
	}
	if intensity > 1 {
		intensity = 1
	}
	return RGBA{base.R * intensity, base.G * intensity, base.B * intensity, base.A}
}
