package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/forgelight-studio/tankforge/level"
)

var (
	// ErrInvalidName rejects tag or map names outside A-Z, a-z, 0-9, _.
	ErrInvalidName = errors.New("invalid name")
	// ErrDuplicateName rejects a tag name already held by another def.
	ErrDuplicateName = errors.New("duplicate name")
)

// EnemyKinds are the archetypes an enemy tag can reference.
var EnemyKinds = []string{"sentry", "skirmisher", "hunter", "sniper"}

// PowerupKinds are the pickup kinds a powerup tag can reference.
var PowerupKinds = []string{"machine_gun", "ricochet", "barrier_placer"}

const defaultEnemyKind = 3 // sniper

// AddTagDef creates a definition of the given type with a generated
// unique name and per-type defaults, returning its index.
func (s *Session) AddTagDef(t level.TagType) (int, error) {
	if len(s.doc.TagDefs) >= level.MaxTagDefs {
		log.Printf("editor: tag definition table full")
		return -1, level.ErrTagDefsFull
	}
	def := level.TagDef{Name: s.generateTagName(t), Type: t}
	switch t {
	case level.TagSpawn:
		def.Spawn = &level.SpawnParams{}
	case level.TagEnemy:
		def.Enemy = &level.EnemyParams{Kind: EnemyKinds[defaultEnemyKind]}
	case level.TagPowerup:
		def.Powerup = &level.PowerupParams{
			Kind:           PowerupKinds[0],
			RespawnSeconds: 15,
			BarrierCount:   2,
		}
	case level.TagBarrier:
		tileIdx := 0
		if len(s.doc.TileDefs) > 1 {
			tileIdx = 1
		}
		def.Barrier = &level.BarrierParams{TileIndex: tileIdx, Health: 20}
	}
	s.doc.TagDefs = append(s.doc.TagDefs, def)
	s.markDirty()
	return len(s.doc.TagDefs) - 1, nil
}

// generateTagName builds prefix + smallest unused suffix in 1..99, with a
// literal X suffix as the overflow fallback.
func (s *Session) generateTagName(t level.TagType) string {
	prefix := t.Prefix()
	for n := 1; n < 100; n++ {
		name := fmt.Sprintf("%c%d", prefix, n)
		if s.doc.FindTagDef(name) < 0 {
			return name
		}
	}
	return fmt.Sprintf("%cX", prefix)
}

// ValidTagName reports whether name is non-empty and uses only letters,
// digits and underscore.
func ValidTagName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// RenameTagDef validates and applies a rename, rewriting every slot and
// powerup barrier reference that pointed at the old name.
func (s *Session) RenameTagDef(i int, newName string) error {
	if i < 0 || i >= len(s.doc.TagDefs) {
		return fmt.Errorf("rename tag: index %d out of range", i)
	}
	if !ValidTagName(newName) {
		return ErrInvalidName
	}
	if j := s.doc.FindTagDef(newName); j >= 0 && j != i {
		return ErrDuplicateName
	}

	oldName := s.doc.TagDefs[i].Name
	if oldName == newName {
		return nil
	}
	s.doc.TagDefs[i].Name = newName

	for k := range s.slots {
		if s.slots[k].Kind == SlotTag && s.slots[k].TagName == oldName {
			s.slots[k].TagName = newName
		}
	}
	for k := range s.doc.TagDefs {
		if p := s.doc.TagDefs[k].Powerup; p != nil && p.BarrierTag == oldName {
			p.BarrierTag = newName
		}
	}
	s.markDirty()
	return nil
}

// RemoveTagDef deletes the definition at i along with its placements and
// any slot bound to it.
func (s *Session) RemoveTagDef(i int) {
	if i < 0 || i >= len(s.doc.TagDefs) {
		return
	}
	name := s.doc.TagDefs[i].Name
	for k := range s.slots {
		if s.slots[k].Kind == SlotTag && s.slots[k].TagName == name {
			s.slots[k] = Slot{}
		}
	}
	for k := range s.doc.TagDefs {
		if p := s.doc.TagDefs[k].Powerup; p != nil && p.BarrierTag == name {
			p.BarrierTag = ""
		}
	}
	if rm, ok := s.mode.(rotateMode); ok {
		if rm.placement < len(s.doc.Placements) && s.doc.Placements[rm.placement].Tag == i {
			s.mode = idleMode{}
		}
	}
	s.doc.RemoveTagDef(i)
	if s.editTag == i {
		s.editTag = -1
		s.open[winTagEditor] = false
	} else if s.editTag > i {
		s.editTag--
	}
	s.markDirty()
}
