package editor

import (
	"log"

	"github.com/forgelight-studio/tankforge/level"
)

// SlotCount is the size of the brush palette.
const SlotCount = 6

// SlotKind discriminates what a palette slot is bound to.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotTile
	SlotTag
)

// Slot is one palette entry: a tile brush, a tag brush, or empty. Tags
// are referenced by name so definition edits stay visible through the
// slot.
type Slot struct {
	Kind      SlotKind
	TileIndex int
	TagName   string
}

// SetSlotTile binds slot i to the document tile definition at index def.
func (s *Session) SetSlotTile(i, def int) {
	if i < 0 || i >= SlotCount {
		return
	}
	s.slots[i] = Slot{Kind: SlotTile, TileIndex: def}
}

// SetSlotTag binds slot i to the tag definition named name.
func (s *Session) SetSlotTag(i int, name string) {
	if i < 0 || i >= SlotCount {
		return
	}
	s.slots[i] = Slot{Kind: SlotTag, TagName: name}
}

// ClearSlot empties slot i.
func (s *Session) ClearSlot(i int) {
	if i < 0 || i >= SlotCount {
		return
	}
	s.slots[i] = Slot{}
}

// Slot returns the palette entry at i.
func (s *Session) Slot(i int) Slot {
	if i < 0 || i >= SlotCount {
		return Slot{}
	}
	return s.slots[i]
}

// SelectedSlot returns the index of the selected palette entry.
func (s *Session) SelectedSlot() int { return s.selected }

// SelectSlot makes slot i the active brush.
func (s *Session) SelectSlot(i int) {
	if i < 0 || i >= SlotCount {
		return
	}
	s.selected = i
}

// CycleSlot moves the selection by dir, skipping empty slots and
// wrapping. With every slot empty the selection is unchanged.
func (s *Session) CycleSlot(dir int) {
	if dir == 0 {
		return
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	i := s.selected
	for n := 0; n < SlotCount; n++ {
		i = (i + step + SlotCount) % SlotCount
		if s.slots[i].Kind != SlotEmpty {
			s.selected = i
			return
		}
	}
}

// PickTile binds the selected slot to the catalog tile named name,
// registering it in the document's tile definition table if needed.
func (s *Session) PickTile(name string) error {
	t, ok := s.tiles.Lookup(name)
	if !ok {
		log.Printf("editor: unknown tile %q", name)
		return nil
	}
	before := len(s.doc.TileDefs)
	idx, err := s.doc.AddTileDef(level.TileDef{Name: t.Name, Symbol: t.Symbol})
	if err != nil {
		log.Printf("editor: cannot register tile %q: %v", name, err)
		return err
	}
	s.slots[s.selected] = Slot{Kind: SlotTile, TileIndex: idx}
	if len(s.doc.TileDefs) != before {
		s.markDirty()
	}
	return nil
}
