package render

import (
	"testing"

	"github.com/forgelight-studio/tankforge/level"
)

func flatColor(uint8) RGBA { return RGBA{1, 1, 1, 1} }

func TestBuildMapMeshFlat(t *testing.T) {
	m, err := level.New("flat", 3, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	verts := BuildMapMesh(m, flatColor)
	// flat interior has no walls between cells, only the grid-edge skirts
	// plus one top quad per cell
	if len(verts)%3 != 0 {
		t.Fatalf("vertex count %d not a triangle list", len(verts))
	}
	tops := m.Width * m.Height * 6
	edges := (2*m.Width + 2*m.Height) * 6
	if len(verts) != tops+edges {
		t.Fatalf("verts = %d, want %d tops + %d edge walls", len(verts), tops, edges)
	}
}

func TestBuildMapMeshRaisedCellAddsWalls(t *testing.T) {
	m, err := level.New("hill", 3, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	flat := len(BuildMapMesh(m, flatColor))
	m.SetCell(1, 1, level.Cell{Height: 2})
	raised := len(BuildMapMesh(m, flatColor))
	// the raised cell gains 4 walls
	if raised != flat+4*6 {
		t.Fatalf("raised verts = %d, want %d", raised, flat+4*6)
	}
}

func TestBuildMapMeshWaterPlane(t *testing.T) {
	m, err := level.New("wet", 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dry := len(BuildMapMesh(m, flatColor))
	m.Water.Enabled = true
	m.Water.Level = 1
	wet := len(BuildMapMesh(m, flatColor))
	if wet != dry+6 {
		t.Fatalf("water plane missing: %d vs %d", wet, dry)
	}
}
