package editor

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/forgelight-studio/tankforge/level"
	"github.com/forgelight-studio/tankforge/render"
)

const (
	testViewW = 800
	testViewH = 600
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(render.NewNullBackend(testViewW, testViewH), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc, err := level.New("test", 10, 10)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "test.json")
	if err := s.Enter(doc, path); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	return s
}

// screenPos projects a tile's surface center to screen pixels so tests
// can aim the pointer at it.
func screenPos(s *Session, tx, ty int) (float32, float32) {
	view, proj := s.Camera(testViewW, testViewH)
	wx, wz := s.doc.TileToWorld(tx, ty)
	y := float32(-0.01)
	if s.doc.InBounds(tx, ty) {
		y = s.doc.SurfaceY(tx, ty)
	}
	clip := proj.Mul4(view).Mul4x1(mgl32.Vec4{wx, y, wz, 1})
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * testViewW, (1 - ndcY) / 2 * testViewH
}

func moveTo(s *Session, tx, ty int) {
	x, y := screenPos(s, tx, ty)
	s.HandleEvent(MouseMove{X: x, Y: y})
}

func clickTile(s *Session, tx, ty int, b Button) {
	moveTo(s, tx, ty)
	s.HandleEvent(MouseDown{Button: b})
	s.HandleEvent(MouseUp{Button: b})
}

func TestHoverResolvesTileUnderPointer(t *testing.T) {
	s := newTestSession(t)
	for _, tc := range [][2]int{{5, 5}, {0, 0}, {9, 9}, {2, 7}} {
		moveTo(s, tc[0], tc[1])
		if !s.hover.valid {
			t.Fatalf("no hover at tile %v", tc)
		}
		if s.hover.x != tc[0] || s.hover.y != tc[1] {
			t.Fatalf("hover = (%d,%d), want %v", s.hover.x, s.hover.y, tc)
		}
	}
}

func TestHoverOnRaisedTile(t *testing.T) {
	s := newTestSession(t)
	s.doc.SetCell(4, 4, level.Cell{Height: 6})
	moveTo(s, 4, 4)
	if !s.hover.valid || s.hover.x != 4 || s.hover.y != 4 {
		t.Fatalf("hover = %+v", s.hover)
	}
}

func TestPaintScenario(t *testing.T) {
	s := newTestSession(t)

	moveTo(s, 5, 5)
	s.HandleEvent(MouseDown{Button: ButtonLeft})
	if c := s.doc.At(5, 5); c.Height != 1 || c.TileIndex != 0 {
		t.Fatalf("cell(5,5) = %+v, want height 1 tile 0", c)
	}
	if !s.Dirty() {
		t.Fatal("edit did not mark dirty")
	}
	if !s.Painting() {
		t.Fatal("press did not enter painting")
	}

	// drag copies the brush, it does not raise again
	moveTo(s, 6, 5)
	if c := s.doc.At(6, 5); c.Height != 1 {
		t.Fatalf("cell(6,5) = %+v, want brush height 1", c)
	}

	s.HandleEvent(MouseUp{Button: ButtonLeft})
	if s.Painting() {
		t.Fatal("release did not end painting")
	}
}

func TestHeightClamps(t *testing.T) {
	s := newTestSession(t)
	// a tile in the near half of the map: its top stays inside the canvas
	// band at every height, clear of the toolbar and slot bar strips
	for i := 0; i < level.MaxHeight+5; i++ {
		clickTile(s, 3, 8, ButtonLeft)
	}
	if h := s.doc.At(3, 8).Height; h != level.MaxHeight {
		t.Fatalf("height = %d, want %d", h, level.MaxHeight)
	}
	for i := 0; i < 2*level.MaxHeight; i++ {
		clickTile(s, 3, 8, ButtonRight)
	}
	if h := s.doc.At(3, 8).Height; h != level.MinHeight {
		t.Fatalf("height = %d, want %d", h, level.MinHeight)
	}
}

func TestRightDragLowersEnteredTiles(t *testing.T) {
	s := newTestSession(t)
	moveTo(s, 5, 5)
	s.HandleEvent(MouseDown{Button: ButtonRight})
	if h := s.doc.At(5, 5).Height; h != -1 {
		t.Fatalf("press height = %d, want -1", h)
	}
	if !s.Painting() {
		t.Fatal("right press did not enter painting")
	}

	// lowering keeps applying while the right button drags
	moveTo(s, 6, 5)
	if h := s.doc.At(6, 5).Height; h != -1 {
		t.Fatalf("dragged height = %d, want -1", h)
	}

	s.HandleEvent(MouseUp{Button: ButtonRight})
	if s.Painting() {
		t.Fatal("release did not end painting")
	}
}

func TestTilePressOnTaggedCellDoesNotPaint(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "E1")
	s.SelectSlot(1)
	clickTile(s, 5, 5, ButtonLeft)

	s.SelectSlot(0)
	if err := s.PickTile("sand"); err != nil {
		t.Fatalf("PickTile: %v", err)
	}
	before := s.doc.At(5, 5)
	clickTile(s, 5, 5, ButtonLeft)
	if c := s.doc.At(5, 5); c.TileIndex != before.TileIndex {
		t.Fatalf("tile type replaced under a tag: %d -> %d", before.TileIndex, c.TileIndex)
	}
	if s.Painting() {
		t.Fatal("press on a tagged cell must not start painting")
	}
	if !s.Rotating() {
		t.Fatal("directional tag under a tile press should start rotating")
	}
	s.HandleEvent(KeyDown{Key: KeyEscape})

	// a placement without a facing is a strict no-op
	if _, err := s.AddTagDef(level.TagPowerup); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(2, "W1")
	s.SelectSlot(2)
	clickTile(s, 7, 7, ButtonLeft)
	s.SelectSlot(0)
	clickTile(s, 7, 7, ButtonLeft)
	if s.Painting() || s.Rotating() {
		t.Fatal("press on a powerup cell must be inert")
	}
	if c := s.doc.At(7, 7); c.TileIndex != 0 || c.Height != 0 {
		t.Fatalf("powerup cell changed: %+v", c)
	}
}

func TestDifferentTileReplacesKeepingHeight(t *testing.T) {
	s := newTestSession(t)
	clickTile(s, 2, 2, ButtonLeft)
	clickTile(s, 2, 2, ButtonLeft)
	if h := s.doc.At(2, 2).Height; h != 2 {
		t.Fatalf("height = %d", h)
	}

	if err := s.PickTile("sand"); err != nil {
		t.Fatalf("PickTile: %v", err)
	}
	clickTile(s, 2, 2, ButtonLeft)
	c := s.doc.At(2, 2)
	if c.Height != 2 {
		t.Fatalf("replace changed height to %d", c.Height)
	}
	if s.doc.TileDefs[c.TileIndex].Name != "sand" {
		t.Fatalf("tile not replaced: %+v", c)
	}
}

func TestExpandOnMarginClick(t *testing.T) {
	s := newTestSession(t)
	clickTile(s, -1, 5, ButtonLeft)
	if s.doc.Width != 11 {
		t.Fatalf("width = %d, want 11", s.doc.Width)
	}
	if c := s.doc.At(0, 5); c.Height != 1 {
		t.Fatalf("margin click did not raise the new cell: %+v", c)
	}
}

func TestExpandDuringDragRebasesAnchor(t *testing.T) {
	s := newTestSession(t)

	moveTo(s, 0, 5)
	s.HandleEvent(MouseDown{Button: ButtonLeft})
	if c := s.doc.At(0, 5); c.Height != 1 {
		t.Fatalf("first click: %+v", c)
	}

	moveTo(s, -1, 5)
	if s.doc.Width != 11 {
		t.Fatalf("drag into margin did not expand, width = %d", s.doc.Width)
	}
	// the old (0,5) is now (1,5); the margin tile became the new (0,5)
	if c := s.doc.At(0, 5); c.Height != 1 {
		t.Fatalf("brush not applied to expanded cell: %+v", c)
	}
	if c := s.doc.At(1, 5); c.Height != 1 {
		t.Fatalf("original cell lost: %+v", c)
	}

	pm, ok := s.mode.(paintMode)
	if !ok {
		t.Fatal("paint drag did not survive expansion")
	}
	if pm.lastX != 0 || pm.lastY != 5 {
		t.Fatalf("anchor = (%d,%d), want (0,5)", pm.lastX, pm.lastY)
	}
	s.HandleEvent(MouseUp{Button: ButtonLeft})
}

func TestTagPlacementAndExclusivity(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	if _, err := s.AddTagDef(level.TagPowerup); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}

	s.SetSlotTag(1, "E1")
	s.SelectSlot(1)
	clickTile(s, 5, 5, ButtonLeft)
	if len(s.doc.Placements) != 1 {
		t.Fatalf("placements = %d", len(s.doc.Placements))
	}

	s.SetSlotTag(2, "W1")
	s.SelectSlot(2)
	clickTile(s, 5, 5, ButtonLeft)
	// the occupied cell keeps its enemy; the click grabbed it for rotation
	if len(s.doc.Placements) != 1 || s.doc.TagDefs[s.doc.Placements[0].Tag].Name != "E1" {
		t.Fatalf("occupied-cell click must not replace: %+v", s.doc.Placements)
	}
	if !s.Rotating() {
		t.Fatal("clicking a rotatable placement should enter rotation")
	}
	s.HandleEvent(KeyDown{Key: KeyEscape})

	clickTile(s, 6, 6, ButtonLeft)
	if len(s.doc.Placements) != 2 {
		t.Fatalf("placements = %d", len(s.doc.Placements))
	}
}

func TestTagBlocksHeightEdits(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagBarrier); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "B1")
	s.SelectSlot(1)
	clickTile(s, 4, 4, ButtonLeft)

	s.SelectSlot(0)
	clickTile(s, 4, 4, ButtonLeft)
	if h := s.doc.At(4, 4).Height; h != 0 {
		t.Fatalf("tagged cell raised to %d", h)
	}
}

func TestRightClickRemovesPlacement(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "E1")
	s.SelectSlot(1)
	clickTile(s, 5, 5, ButtonLeft)

	s.SelectSlot(0)
	clickTile(s, 5, 5, ButtonRight)
	if len(s.doc.Placements) != 0 {
		t.Fatalf("placement not removed: %+v", s.doc.Placements)
	}
	// the removal consumed the click; the cell was not lowered
	if h := s.doc.At(5, 5).Height; h != 0 {
		t.Fatalf("height = %d", h)
	}
}

func TestSpawnSingletonViaClicks(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagSpawn); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "P1")
	s.SelectSlot(1)
	clickTile(s, 2, 2, ButtonLeft)
	clickTile(s, 7, 7, ButtonLeft)
	if len(s.doc.Placements) != 1 {
		t.Fatalf("placements = %d, want 1", len(s.doc.Placements))
	}
	if p := s.doc.Placements[0]; p.X != 7 || p.Y != 7 {
		t.Fatalf("spawn at (%d,%d), want (7,7)", p.X, p.Y)
	}
}

func TestRotationCommitAndCancel(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "E1")
	s.SelectSlot(1)
	clickTile(s, 5, 5, ButtonLeft)

	// clicking the placement again enters rotation
	moveTo(s, 5, 5)
	s.HandleEvent(MouseDown{Button: ButtonLeft})
	s.HandleEvent(MouseUp{Button: ButtonLeft})
	if !s.Rotating() {
		t.Fatal("click on rotatable placement did not enter rotation")
	}
	start, _ := s.doc.TagDefs[0].Angle()

	moveTo(s, 8, 5)
	s.Update(0.016)
	angle, _ := s.doc.TagDefs[0].Angle()
	if math.Abs(float64(angle)-math.Pi/2) > 0.15 {
		t.Fatalf("angle = %v, want about pi/2", angle)
	}

	s.HandleEvent(KeyDown{Key: KeyEscape})
	if s.Rotating() {
		t.Fatal("escape did not cancel rotation")
	}
	got, _ := s.doc.TagDefs[0].Angle()
	if got != start {
		t.Fatalf("cancel restored angle %v, want %v", got, start)
	}
}

func TestRotationCommitKeepsAngle(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "E1")
	s.SelectSlot(1)
	clickTile(s, 5, 5, ButtonLeft)
	clickTile(s, 5, 5, ButtonLeft) // enter rotation

	moveTo(s, 5, 8)
	s.Update(0.016)
	want, _ := s.doc.TagDefs[0].Angle()

	s.HandleEvent(MouseDown{Button: ButtonLeft}) // commit
	s.HandleEvent(MouseUp{Button: ButtonLeft})
	if s.Rotating() {
		t.Fatal("commit did not leave rotation")
	}
	got, _ := s.doc.TagDefs[0].Angle()
	if got != want {
		t.Fatalf("angle changed on commit: %v != %v", got, want)
	}
}

func TestRotationPivotsOnFirstPlacement(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "E1")
	s.SelectSlot(1)
	clickTile(s, 2, 2, ButtonLeft)
	clickTile(s, 7, 7, ButtonLeft)
	if len(s.doc.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(s.doc.Placements))
	}

	// the angle lives on the definition, so rotation always pivots on its
	// first placement, whichever one was grabbed
	clickTile(s, 7, 7, ButtonLeft)
	rm, ok := s.mode.(rotateMode)
	if !ok {
		t.Fatal("clicking a placement did not enter rotation")
	}
	if p := s.doc.Placements[rm.placement]; p.X != 2 || p.Y != 2 {
		t.Fatalf("pivot at (%d,%d), want (2,2)", p.X, p.Y)
	}
}

func TestKeyRepeatIgnoredOutsideTextDialogs(t *testing.T) {
	s := newTestSession(t)
	s.HandleEvent(KeyDown{Key: KeyEscape})
	if !s.DialogOpen(winConfirmClose) {
		t.Fatal("escape should open confirm-close")
	}
	s.HandleEvent(KeyDown{Key: KeyEscape, Repeat: true})
	if !s.DialogOpen(winConfirmClose) {
		t.Fatal("a held escape must not toggle the confirmation")
	}
}

func TestRenamePropagation(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagBarrier); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	if _, err := s.AddTagDef(level.TagPowerup); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.doc.TagDefs[1].Powerup.BarrierTag = "B1"
	s.SetSlotTag(2, "B1")

	if err := s.RenameTagDef(0, "WALL_A"); err != nil {
		t.Fatalf("RenameTagDef: %v", err)
	}
	if s.doc.TagDefs[0].Name != "WALL_A" {
		t.Fatalf("def name = %q", s.doc.TagDefs[0].Name)
	}
	if s.slots[2].TagName != "WALL_A" {
		t.Fatalf("slot not rewritten: %+v", s.slots[2])
	}
	if s.doc.TagDefs[1].Powerup.BarrierTag != "WALL_A" {
		t.Fatalf("barrier reference not rewritten: %q", s.doc.TagDefs[1].Powerup.BarrierTag)
	}
	if s.doc.FindTagDef("B1") >= 0 {
		t.Fatal("old name still present")
	}
}

func TestRenameValidation(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}

	if err := s.RenameTagDef(0, "bad name"); err != ErrInvalidName {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
	if err := s.RenameTagDef(0, ""); err != ErrInvalidName {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
	if err := s.RenameTagDef(0, "E2"); err != ErrDuplicateName {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	// renaming to its own name is fine
	if err := s.RenameTagDef(0, "E1"); err != nil {
		t.Fatalf("self rename: %v", err)
	}
}

func TestTagNameGeneration(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 3; i++ {
		if _, err := s.AddTagDef(level.TagEnemy); err != nil {
			t.Fatalf("AddTagDef: %v", err)
		}
	}
	want := []string{"E1", "E2", "E3"}
	for i, n := range want {
		if s.doc.TagDefs[i].Name != n {
			t.Fatalf("def %d name = %q, want %q", i, s.doc.TagDefs[i].Name, n)
		}
	}
	// freeing a suffix makes it the next generated name
	s.RemoveTagDef(1)
	if i, _ := s.AddTagDef(level.TagEnemy); s.doc.TagDefs[i].Name != "E2" {
		t.Fatalf("generated %q, want E2", s.doc.TagDefs[i].Name)
	}
}

func TestRemoveTagDefClearsSlot(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.SetSlotTag(1, "E1")
	s.SelectSlot(1)
	clickTile(s, 5, 5, ButtonLeft)

	s.RemoveTagDef(0)
	if s.slots[1].Kind != SlotEmpty {
		t.Fatalf("slot not cleared: %+v", s.slots[1])
	}
	if len(s.doc.Placements) != 0 {
		t.Fatalf("placements not removed: %+v", s.doc.Placements)
	}
}

func TestSlotCyclingSkipsEmpties(t *testing.T) {
	s := newTestSession(t)
	// slot 0 holds the ground tile; bind slot 3 and leave the rest empty
	s.SetSlotTile(3, 0)
	s.SelectSlot(0)

	s.CycleSlot(1)
	if s.selected != 3 {
		t.Fatalf("selected = %d, want 3", s.selected)
	}
	s.CycleSlot(1)
	if s.selected != 0 {
		t.Fatalf("selected = %d, want 0 (wrap)", s.selected)
	}
	s.CycleSlot(-1)
	if s.selected != 3 {
		t.Fatalf("selected = %d, want 3", s.selected)
	}
}

func TestCycleAllEmptyKeepsSelection(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < SlotCount; i++ {
		s.ClearSlot(i)
	}
	s.selected = 2
	s.CycleSlot(1)
	if s.selected != 2 {
		t.Fatalf("selected = %d, want 2", s.selected)
	}
}

func TestAutoSaveDebounce(t *testing.T) {
	s := newTestSession(t)
	s.SetAutoSave(true)

	clickTile(s, 5, 5, ButtonLeft)
	s.Update(2.0)
	if _, err := os.Stat(s.path); !os.IsNotExist(err) {
		t.Fatal("auto-save fired before the debounce delay")
	}

	s.Update(3.5)
	if _, err := os.Stat(s.path); err != nil {
		t.Fatalf("auto-save did not fire: %v", err)
	}
	if s.Dirty() {
		t.Fatal("auto-save left the document dirty")
	}
}

func TestForceSaveAndExit(t *testing.T) {
	s := newTestSession(t)
	clickTile(s, 1, 1, ButtonLeft)
	if err := s.ForceSave(); err != nil {
		t.Fatalf("ForceSave: %v", err)
	}
	if s.Dirty() {
		t.Fatal("save left dirty set")
	}

	doc := s.Exit()
	if doc == nil {
		t.Fatal("Exit returned nil document")
	}
	if s.Active() {
		t.Fatal("session still active after Exit")
	}
	if c := doc.At(1, 1); c.Height != 1 {
		t.Fatalf("returned document lost the edit: %+v", c)
	}
}

func TestEnterPathCreatesNewMap(t *testing.T) {
	s, err := New(render.NewNullBackend(testViewW, testViewH), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "missing.json")
	if err := s.EnterPath(path); err != nil {
		t.Fatalf("EnterPath: %v", err)
	}
	if !s.Active() || s.doc.Width != 10 || s.doc.Height != 10 {
		t.Fatalf("fresh map not created: %+v", s.doc)
	}
	if s.doc.Name != "Untitled" {
		t.Fatalf("name = %q", s.doc.Name)
	}
}

func TestEscapePriorityChain(t *testing.T) {
	s := newTestSession(t)
	s.OpenDialog(winMapSettings)
	s.OpenDialog(winTags)
	s.OpenDialog(winTilePicker)

	s.HandleEvent(KeyDown{Key: KeyEscape})
	if s.DialogOpen(winTilePicker) {
		t.Fatal("tile picker should close first")
	}
	s.HandleEvent(KeyDown{Key: KeyEscape})
	if s.DialogOpen(winTags) {
		t.Fatal("tags dialog should close second")
	}
	s.HandleEvent(KeyDown{Key: KeyEscape})
	if s.DialogOpen(winMapSettings) {
		t.Fatal("map settings should close last")
	}

	// nothing open: escape asks for confirmation, clean or dirty
	s.HandleEvent(KeyDown{Key: KeyEscape})
	if !s.DialogOpen(winConfirmClose) {
		t.Fatal("escape with nothing open should open confirm-close")
	}
	if s.CloseRequested() {
		t.Fatal("close must wait for confirmation")
	}
	s.HandleEvent(KeyDown{Key: KeyEscape})
	if s.DialogOpen(winConfirmClose) {
		t.Fatal("escape should close the confirmation")
	}

	clickTile(s, 5, 5, ButtonLeft)
	s.HandleEvent(KeyDown{Key: KeyEscape})
	if !s.DialogOpen(winConfirmClose) {
		t.Fatal("dirty escape should open confirm-close")
	}
	if s.CloseRequested() {
		t.Fatal("close must wait for confirmation")
	}
}

func TestTextDialogTyping(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.BeginTagRename(0)
	if s.textBuf != "E1" {
		t.Fatalf("buffer = %q", s.textBuf)
	}

	s.HandleEvent(KeyDown{Key: KeyBackspace})
	s.HandleEvent(KeyDown{Key: KeyBackspace})
	for _, r := range "Boss_1" {
		s.HandleEvent(Char{Rune: r})
	}
	s.HandleEvent(KeyDown{Key: KeyEnter})

	if s.DialogOpen(winTagRename) {
		t.Fatal("commit left the dialog open")
	}
	if s.doc.TagDefs[0].Name != "Boss_1" {
		t.Fatalf("name = %q", s.doc.TagDefs[0].Name)
	}
}

func TestTextDialogValidationKeepsOpen(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	if _, err := s.AddTagDef(level.TagEnemy); err != nil {
		t.Fatalf("AddTagDef: %v", err)
	}
	s.BeginTagRename(0)
	s.textBuf = "E2"
	s.HandleEvent(KeyDown{Key: KeyEnter})
	if !s.DialogOpen(winTagRename) {
		t.Fatal("duplicate name should keep the dialog open")
	}
	if s.textErr == "" {
		t.Fatal("no error message shown")
	}
	if s.doc.TagDefs[0].Name != "E1" {
		t.Fatalf("name changed to %q", s.doc.TagDefs[0].Name)
	}

	s.HandleEvent(KeyDown{Key: KeyEscape})
	if s.DialogOpen(winTagRename) {
		t.Fatal("escape did not cancel the dialog")
	}
}

func TestScrollCyclesSlots(t *testing.T) {
	s := newTestSession(t)
	s.SetSlotTile(1, 0)
	s.SelectSlot(0)
	s.HandleEvent(Scroll{Delta: -1})
	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1", s.selected)
	}
	s.HandleEvent(Scroll{Delta: 1})
	if s.selected != 0 {
		t.Fatalf("selected = %d, want 0", s.selected)
	}
}

func TestNumberKeysSelectSlots(t *testing.T) {
	s := newTestSession(t)
	s.HandleEvent(KeyDown{Key: Key4})
	if s.selected != 3 {
		t.Fatalf("selected = %d, want 3", s.selected)
	}
}
