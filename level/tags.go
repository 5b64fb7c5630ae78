package level

// TagType classifies a tag definition.
type TagType int

const (
	TagSpawn TagType = iota
	TagEnemy
	TagPowerup
	TagBarrier
)

func (t TagType) String() string {
	switch t {
	case TagSpawn:
		return "spawn"
	case TagEnemy:
		return "enemy"
	case TagPowerup:
		return "powerup"
	case TagBarrier:
		return "barrier"
	}
	return "unknown"
}

// Prefix is the letter used when auto-generating names for this type.
func (t TagType) Prefix() byte {
	switch t {
	case TagSpawn:
		return 'P'
	case TagEnemy:
		return 'E'
	case TagPowerup:
		return 'W'
	case TagBarrier:
		return 'B'
	}
	return 'T'
}

// SpawnParams configures a player spawn point. Spawn definitions are
// singleton-per-definition: at most one placement across the document.
type SpawnParams struct {
	Angle float32 `json:"angle"`
	Team  int     `json:"team"`
}

// EnemyParams configures an enemy marker.
type EnemyParams struct {
	Kind  string  `json:"kind"`
	Angle float32 `json:"angle"`
}

// PowerupParams configures a powerup marker. BarrierTag names a barrier
// definition by its tag name and is rewritten when that tag is renamed.
type PowerupParams struct {
	Kind           string `json:"kind"`
	RespawnSeconds int    `json:"respawn_seconds"`
	BarrierTag     string `json:"barrier_tag,omitempty"`
	BarrierCount   int    `json:"barrier_count,omitempty"`
}

// BarrierParams configures a destructible barrier marker.
type BarrierParams struct {
	TileIndex int `json:"tile_index"`
	Health    int `json:"health"`
}

// TagDef is a named, typed gameplay marker template. Exactly one of the
// parameter pointers matching Type is set.
type TagDef struct {
	Name string  `json:"name"`
	Type TagType `json:"type"`

	Spawn   *SpawnParams   `json:"spawn,omitempty"`
	Enemy   *EnemyParams   `json:"enemy,omitempty"`
	Powerup *PowerupParams `json:"powerup,omitempty"`
	Barrier *BarrierParams `json:"barrier,omitempty"`
}

// Angle returns the facing angle for rotatable definitions (spawn, enemy).
func (d *TagDef) Angle() (float32, bool) {
	switch {
	case d.Spawn != nil:
		return d.Spawn.Angle, true
	case d.Enemy != nil:
		return d.Enemy.Angle, true
	}
	return 0, false
}

// SetAngle updates the facing angle for rotatable definitions.
func (d *TagDef) SetAngle(a float32) {
	switch {
	case d.Spawn != nil:
		d.Spawn.Angle = a
	case d.Enemy != nil:
		d.Enemy.Angle = a
	}
}

// Placement binds a tag definition (by index into Map.TagDefs) to a cell.
type Placement struct {
	Tag int `json:"tag"`
	X   int `json:"x"`
	Y   int `json:"y"`
}

// FindTagDef returns the index of the definition named name, or -1.
func (m *Map) FindTagDef(name string) int {
	for i := range m.TagDefs {
		if m.TagDefs[i].Name == name {
			return i
		}
	}
	return -1
}

// FindPlacementAt returns the index of the placement occupying (x,y), or -1.
func (m *Map) FindPlacementAt(x, y int) int {
	for i := range m.Placements {
		if m.Placements[i].X == x && m.Placements[i].Y == y {
			return i
		}
	}
	return -1
}

// AddPlacement records a placement of definition tag at (x,y), enforcing
// one-per-cell and the spawn singleton rule.
func (m *Map) AddPlacement(tag, x, y int) error {
	if i := m.FindPlacementAt(x, y); i >= 0 {
		m.Placements = append(m.Placements[:i], m.Placements[i+1:]...)
	}
	if tag >= 0 && tag < len(m.TagDefs) && m.TagDefs[tag].Type == TagSpawn {
		m.removePlacementsOf(tag)
	}
	if len(m.Placements) >= MaxPlacements {
		return ErrPlacementsFull
	}
	m.Placements = append(m.Placements, Placement{Tag: tag, X: x, Y: y})
	m.RebuildSpawns()
	return nil
}

// RemovePlacementAt removes the placement at (x,y) if one exists,
// reporting whether it did.
func (m *Map) RemovePlacementAt(x, y int) bool {
	i := m.FindPlacementAt(x, y)
	if i < 0 {
		return false
	}
	m.Placements = append(m.Placements[:i], m.Placements[i+1:]...)
	m.RebuildSpawns()
	return true
}

func (m *Map) removePlacementsOf(tag int) {
	out := m.Placements[:0]
	for _, p := range m.Placements {
		if p.Tag != tag {
			out = append(out, p)
		}
	}
	m.Placements = out
}

// RemoveTagDef deletes the definition at index i, drops its placements and
// rewrites placement indices above it. Out-of-range indices are ignored.
func (m *Map) RemoveTagDef(i int) {
	if i < 0 || i >= len(m.TagDefs) {
		return
	}
	m.TagDefs = append(m.TagDefs[:i], m.TagDefs[i+1:]...)
	out := m.Placements[:0]
	for _, p := range m.Placements {
		if p.Tag == i {
			continue
		}
		if p.Tag > i {
			p.Tag--
		}
		out = append(out, p)
	}
	m.Placements = out
	m.RebuildSpawns()
}

// PrunePlacements repairs the placement table: keeps the first placement
// per occupied cell and drops out-of-bounds or dangling entries. It is
// deterministic and idempotent; run it after load and after expansion.
func (m *Map) PrunePlacements() {
	seen := make(map[[2]int]bool, len(m.Placements))
	out := m.Placements[:0]
	for _, p := range m.Placements {
		if !m.InBounds(p.X, p.Y) || p.Tag < 0 || p.Tag >= len(m.TagDefs) {
			continue
		}
		key := [2]int{p.X, p.Y}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	m.Placements = out
	m.RebuildSpawns()
}

// RebuildSpawns regenerates the derived spawn list from spawn placements.
func (m *Map) RebuildSpawns() {
	m.Spawns = m.Spawns[:0]
	for _, p := range m.Placements {
		if p.Tag < 0 || p.Tag >= len(m.TagDefs) {
			continue
		}
		d := &m.TagDefs[p.Tag]
		if d.Type != TagSpawn || d.Spawn == nil {
			continue
		}
		wx, wz := m.TileToWorld(p.X, p.Y)
		m.Spawns = append(m.Spawns, SpawnPoint{
			X: wx, Z: wz, Angle: d.Spawn.Angle, Team: d.Spawn.Team,
		})
	}
}
