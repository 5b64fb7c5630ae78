// Package editor implements the in-game level editor session: picking,
// painting, tag placement, floating dialogs and document lifecycle. It
// draws through render.Backend and never touches the windowing layer
// directly, so it runs headless under tests.
package editor

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/forgelight-studio/tankforge/level"
	"github.com/forgelight-studio/tankforge/render"
	"github.com/forgelight-studio/tankforge/tile"
	"github.com/forgelight-studio/tankforge/ui"
)

// autoSaveDelay is how long the document must stay dirty before an
// auto-save fires.
const autoSaveDelay = 5.0

// Session is the editor. Construct with New, feed events and Update each
// frame, and Exit to take the document back.
type Session struct {
	backend render.Backend
	ui      *ui.Context
	tiles   *tile.Registry

	doc  *level.Map
	path string

	mouseX, mouseY float32
	leftDown       bool
	rightDown      bool
	pressEdge      bool
	releaseEdge    bool

	hover hoverState
	mode  mode

	slots    [SlotCount]Slot
	selected int

	windows [windowCount]ui.WindowState
	open    [windowCount]bool

	// text-entry sub-state, meaningful while winTagRename or winMapRename
	// is open
	textBuf    string
	textErr    string
	renameTag  int
	editTag    int
	tagScroll  int
	tileScroll int

	statusFlash string

	dirty      bool
	dirtySince float64
	clock      float64
	autoSave   bool

	closeRequested bool

	mesh      []render.Vertex
	meshStale bool
}

// New creates a session drawing through backend with the given tile
// catalog. The session starts inactive; call Enter or EnterPath.
func New(backend render.Backend, tiles *tile.Registry) (*Session, error) {
	if backend == nil {
		return nil, errors.New("editor: nil backend")
	}
	if tiles == nil {
		var err error
		tiles, err = tile.Default()
		if err != nil {
			return nil, fmt.Errorf("editor: %w", err)
		}
	}
	return &Session{
		backend: backend,
		ui:      ui.NewContext(backend),
		tiles:   tiles,
		mode:    idleMode{},
		editTag: -1,
	}, nil
}

// SetTileRegistry swaps the tile catalog, e.g. after a live reload. Tile
// colors may change, so the map mesh is rebuilt.
func (s *Session) SetTileRegistry(tiles *tile.Registry) {
	if tiles == nil {
		return
	}
	s.tiles = tiles
	s.meshStale = true
}

// Active reports whether a document is open for editing.
func (s *Session) Active() bool { return s.doc != nil }

// Doc exposes the open document; nil when inactive.
func (s *Session) Doc() *level.Map { return s.doc }

// Enter takes ownership of doc and begins editing it. path is where saves
// go; empty defers the path to the first explicit save.
func (s *Session) Enter(doc *level.Map, path string) error {
	if doc == nil {
		return errors.New("editor: nil document")
	}
	doc.PrunePlacements()
	s.doc = doc
	s.path = path
	s.reset()
	return nil
}

// EnterPath loads the document at path, creating a fresh one when the
// file does not exist.
func (s *Session) EnterPath(path string) error {
	doc, err := level.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		doc, err = level.New("", 10, 10)
		if err != nil {
			return err
		}
		log.Printf("editor: %s not found, starting a new map", path)
	}
	return s.Enter(doc, path)
}

// Exit hands the document back and clears the session. Pending edits are
// not saved; callers that want them must ForceSave first.
func (s *Session) Exit() *level.Map {
	doc := s.doc
	s.doc = nil
	s.path = ""
	s.mesh = nil
	s.reset()
	return doc
}

func (s *Session) reset() {
	s.mode = idleMode{}
	s.hover = hoverState{}
	s.selected = 0
	for i := range s.slots {
		s.slots[i] = Slot{}
	}
	if s.doc != nil && len(s.doc.TileDefs) > 0 {
		s.slots[0] = Slot{Kind: SlotTile, TileIndex: 0}
	}
	for k := windowKind(0); k < windowCount; k++ {
		s.open[k] = false
		s.windows[k] = ui.WindowState{}
	}
	s.textBuf, s.textErr = "", ""
	s.statusFlash = ""
	s.renameTag, s.editTag = -1, -1
	s.tagScroll, s.tileScroll = 0, 0
	s.dirty = false
	s.closeRequested = false
	s.meshStale = true
	s.leftDown, s.rightDown = false, false
	s.pressEdge, s.releaseEdge = false, false
}

// CloseRequested reports whether the operator confirmed leaving the
// editor; the host exits the session and clears the request.
func (s *Session) CloseRequested() bool { return s.closeRequested }

// ClearCloseRequest resets the close request.
func (s *Session) ClearCloseRequest() { s.closeRequested = false }

// Dirty reports unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// AutoSave reports whether debounced auto-save is enabled.
func (s *Session) AutoSave() bool { return s.autoSave }

// SetAutoSave toggles debounced auto-save.
func (s *Session) SetAutoSave(on bool) { s.autoSave = on }

// markDirty records an edit: the dirty timestamp starts the auto-save
// debounce and the map mesh is rebuilt before the next draw.
func (s *Session) markDirty() {
	if !s.dirty {
		s.dirty = true
		s.dirtySince = s.clock
	}
	s.statusFlash = ""
	s.meshStale = true
}

// ForceSave writes the document immediately. With no path yet, a file
// name is derived from the map name.
func (s *Session) ForceSave() error {
	if s.doc == nil {
		return errors.New("editor: no document")
	}
	if s.path == "" {
		s.path = fmt.Sprintf("%s.json", s.doc.Name)
	}
	if err := level.Save(s.doc, s.path); err != nil {
		log.Printf("editor: save failed: %v", err)
		return err
	}
	s.dirty = false
	return nil
}

// Update advances the per-frame state: rotation tracking and the
// auto-save debounce. dt is in seconds.
func (s *Session) Update(dt float64) {
	if s.doc == nil {
		return
	}
	s.clock += dt

	s.updateRotation()

	if s.autoSave && s.dirty && s.clock-s.dirtySince >= autoSaveDelay {
		if err := s.ForceSave(); err != nil {
			// stay dirty; the next debounce window retries
			s.dirtySince = s.clock
		}
	}
}

// HandleEvent feeds one input event to the session, reporting whether it
// was consumed (the host suppresses gameplay input while editing).
func (s *Session) HandleEvent(ev Event) bool {
	if s.doc == nil {
		return false
	}
	switch e := ev.(type) {
	case MouseMove:
		s.mouseX, s.mouseY = e.X, e.Y
		s.updateHover()
		if pm, ok := s.mode.(paintMode); ok {
			held := s.leftDown
			if pm.lower {
				held = s.rightDown
			}
			if held {
				s.continuePaint()
			}
		}
		return true
	case MouseDown:
		return s.handleMouseDown(e.Button)
	case MouseUp:
		return s.handleMouseUp(e.Button)
	case Scroll:
		if e.Delta > 0 {
			s.CycleSlot(-1)
		} else if e.Delta < 0 {
			s.CycleSlot(1)
		}
		return true
	case KeyDown:
		return s.handleKeyDown(e)
	case KeyUp:
		return true
	case Char:
		return s.handleChar(e.Rune)
	}
	return false
}

func (s *Session) handleMouseDown(b Button) bool {
	if b == ButtonLeft {
		s.leftDown = true
		s.pressEdge = true
	} else {
		s.rightDown = true
	}

	if s.Rotating() {
		if b == ButtonLeft {
			s.commitRotation()
		} else {
			s.cancelRotation()
		}
		return true
	}

	// dialogs claim the pointer before the canvas does, for both buttons
	if s.pressOnWindows() {
		return true
	}
	if s.pointerOverToolbar() {
		return true
	}

	if b == ButtonRight {
		if s.hover.valid && s.removeTagAt(s.hover.x, s.hover.y) {
			return true
		}
		if s.slots[s.selected].Kind == SlotTile {
			s.beginPaint(true)
		}
		return true
	}

	switch s.slots[s.selected].Kind {
	case SlotTile:
		s.beginPaint(false)
	case SlotTag:
		s.beginTagAction()
	}
	return true
}

func (s *Session) handleMouseUp(b Button) bool {
	if b == ButtonLeft {
		s.leftDown = false
		s.releaseEdge = true
		s.endPaint(false)
	} else {
		s.rightDown = false
		s.endPaint(true)
	}
	return true
}

func (s *Session) handleKeyDown(e KeyDown) bool {
	// text dialogs own the keyboard while open; key repeat only matters
	// for editing text
	if s.open[winTagRename] || s.open[winMapRename] {
		return s.handleTextKey(e.Key)
	}
	if e.Repeat {
		return true
	}

	switch e.Key {
	case KeyEscape:
		s.handleEscape()
	case KeyS:
		if e.Ctrl {
			if err := s.ForceSave(); err == nil {
				log.Printf("editor: saved %s", s.path)
			}
		}
	case KeyTab:
		s.CycleSlot(1)
	case Key1, Key2, Key3, Key4, Key5, Key6:
		s.SelectSlot(int(e.Key - Key1))
	}
	return true
}

// handleEscape walks the dialog priority chain; with nothing open it asks
// to leave the editor.
func (s *Session) handleEscape() {
	switch {
	case s.Rotating():
		s.cancelRotation()
	case s.open[winConfirmClose]:
		s.CloseDialog(winConfirmClose)
	case s.open[winTilePicker]:
		s.CloseDialog(winTilePicker)
	case s.open[winTagEditor]:
		s.CloseDialog(winTagEditor)
	case s.open[winTags]:
		s.CloseDialog(winTags)
	case s.open[winMapSettings]:
		s.CloseDialog(winMapSettings)
	default:
		s.OpenDialog(winConfirmClose)
	}
}
