// Package level holds the map document the editor mutates and the game
// consumes: a bounded grid of terrain cells plus tile definitions, tag
// definitions and tag placements.
package level

import (
	"fmt"
)

const (
	// MaxSize bounds either grid dimension.
	MaxSize = 64
	// MaxTileDefs bounds the per-document tile definition table.
	MaxTileDefs = 32
	// MaxTagDefs bounds the tag definition table.
	MaxTagDefs = 32
	// MaxPlacements bounds the tag placement table.
	MaxPlacements = 128
	// PaddingTiles is the expansion margin around the grid within which
	// painting triggers automatic growth.
	PaddingTiles = 2

	MinHeight = -3
	MaxHeight = 10

	DefaultTileSize = 2.0
)

// Cell is one grid square: terrain height plus an index into Map.TileDefs.
type Cell struct {
	Height    int8  `json:"height"`
	TileIndex uint8 `json:"tile"`
}

// TileDef is a document-local terrain type.
type TileDef struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Color is an RGB triple in [0,1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

// Water configures the document's water plane.
type Water struct {
	Enabled bool  `json:"enabled"`
	Level   int8  `json:"level"`
	Color   Color `json:"color"`
}

// Lighting configures sun and ambient light for the level.
type Lighting struct {
	Sun             bool       `json:"sun"`
	SunDir          [3]float32 `json:"sun_dir"`
	SunColor        Color      `json:"sun_color"`
	AmbientColor    Color      `json:"ambient_color"`
	AmbientDarkness float32    `json:"ambient_darkness"`
}

// Hazard is the shrinking hazard zone; its center is stored in world units
// and therefore rebased when the canvas expands.
type Hazard struct {
	Enabled bool    `json:"enabled"`
	CenterX float32 `json:"center_x"`
	CenterZ float32 `json:"center_z"`
	Radius  float32 `json:"radius"`
	Delay   float32 `json:"delay"`
}

// SpawnPoint is a derived world-space spawn used by the game; rebuilt from
// spawn-type placements, never edited directly.
type SpawnPoint struct {
	X     float32 `json:"x"`
	Z     float32 `json:"z"`
	Angle float32 `json:"angle"`
	Team  int     `json:"team"`
}

// Map is the level document. The editor session owns it exclusively while
// editing; the game receives it back on exit.
type Map struct {
	Name     string  `json:"name"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TileSize float32 `json:"tile_size"`

	Cells    []Cell    `json:"cells"`
	TileDefs []TileDef `json:"tile_defs"`

	TagDefs    []TagDef    `json:"tag_defs,omitempty"`
	Placements []Placement `json:"tag_placements,omitempty"`

	Water    Water    `json:"water"`
	Lighting Lighting `json:"lighting"`
	Hazard   Hazard   `json:"hazard"`

	Spawns []SpawnPoint `json:"spawns,omitempty"`
}

// New returns a blank w×h document with a single ground tile def.
func New(name string, w, h int) (*Map, error) {
	if w <= 0 || h <= 0 || w > MaxSize || h > MaxSize {
		return nil, fmt.Errorf("map size %dx%d out of range", w, h)
	}
	if name == "" {
		name = "Untitled"
	}
	m := &Map{
		Name:     name,
		Width:    w,
		Height:   h,
		TileSize: DefaultTileSize,
		Cells:    make([]Cell, w*h),
		TileDefs: []TileDef{{Name: "ground", Symbol: "."}},
		Lighting: Lighting{
			Sun:             true,
			SunDir:          [3]float32{-0.4, -1, -0.3},
			SunColor:        Color{1, 1, 0.95},
			AmbientColor:    Color{0.55, 0.6, 0.7},
			AmbientDarkness: 0.35,
		},
	}
	return m, nil
}

// InBounds reports whether (x,y) is a valid cell coordinate.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// InPaddedBounds reports whether (x,y) lies inside the grid or its
// expansion margin.
func (m *Map) InPaddedBounds(x, y int) bool {
	return x >= -PaddingTiles && y >= -PaddingTiles &&
		x < m.Width+PaddingTiles && y < m.Height+PaddingTiles
}

// At returns the cell at (x,y). Callers must bounds-check first.
func (m *Map) At(x, y int) Cell {
	return m.Cells[y*m.Width+x]
}

// SetCell stores c at (x,y). Callers must bounds-check first.
func (m *Map) SetCell(x, y int, c Cell) {
	m.Cells[y*m.Width+x] = c
}

// TileToWorld maps a tile coordinate to the world-space center of that
// cell. The grid footprint is centered on the world origin.
func (m *Map) TileToWorld(tx, ty int) (float32, float32) {
	hw := float32(m.Width) * m.TileSize * 0.5
	hh := float32(m.Height) * m.TileSize * 0.5
	wx := (float32(tx)+0.5)*m.TileSize - hw
	wz := (float32(ty)+0.5)*m.TileSize - hh
	return wx, wz
}

// WorldToTile is the inverse of TileToWorld up to floating rounding. The
// returned coordinate may lie outside the grid.
func (m *Map) WorldToTile(wx, wz float32) (int, int) {
	hw := float32(m.Width) * m.TileSize * 0.5
	hh := float32(m.Height) * m.TileSize * 0.5
	tx := int(floor((wx + hw) / m.TileSize))
	ty := int(floor((wz + hh) / m.TileSize))
	return tx, ty
}

// SurfaceY returns the pickable surface height of the cell at (x,y). When
// the cell is submerged the water surface overrides the terrain.
func (m *Map) SurfaceY(x, y int) float32 {
	h := m.At(x, y).Height
	surf := -0.01 + float32(h)*1.5
	if m.Water.Enabled && h < m.Water.Level {
		ws := -0.01 + float32(m.Water.Level)*1.5 - 0.5
		if ws > surf {
			return ws
		}
	}
	return surf
}

// AddTileDef appends a tile definition, returning its index. Returns the
// existing index when a def with the same name is already present.
func (m *Map) AddTileDef(def TileDef) (int, error) {
	for i, d := range m.TileDefs {
		if d.Name == def.Name {
			return i, nil
		}
	}
	if len(m.TileDefs) >= MaxTileDefs {
		return -1, ErrTileDefsFull
	}
	m.TileDefs = append(m.TileDefs, def)
	return len(m.TileDefs) - 1, nil
}

func floor(v float32) float32 {
	i := float32(int(v))
	if v < 0 && v != i {
		i--
	}
	return i
}
