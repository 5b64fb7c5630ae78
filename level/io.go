package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the document to path as indented JSON, creating the parent
// directory if needed.
func Save(m *Map, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads a document from path and repairs what older or hand-edited
// files may be missing: a tile def table, a usable tile size, and a clean
// placement table.
func Load(path string) (*Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	var m Map
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := repair(&m); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &m, nil
}

func repair(m *Map) error {
	if m.Width <= 0 || m.Height <= 0 || m.Width > MaxSize || m.Height > MaxSize {
		return fmt.Errorf("map size %dx%d out of range", m.Width, m.Height)
	}
	if m.Name == "" {
		m.Name = "Untitled"
	}
	if m.TileSize <= 0 {
		m.TileSize = DefaultTileSize
	}
	if len(m.TileDefs) == 0 {
		m.TileDefs = []TileDef{{Name: "ground", Symbol: "."}}
	}
	if len(m.TileDefs) > MaxTileDefs {
		m.TileDefs = m.TileDefs[:MaxTileDefs]
	}
	if len(m.Cells) != m.Width*m.Height {
		cells := make([]Cell, m.Width*m.Height)
		copy(cells, m.Cells)
		m.Cells = cells
	}
	for i := range m.Cells {
		if int(m.Cells[i].TileIndex) >= len(m.TileDefs) {
			m.Cells[i].TileIndex = 0
		}
		if m.Cells[i].Height < MinHeight {
			m.Cells[i].Height = MinHeight
		}
		if m.Cells[i].Height > MaxHeight {
			m.Cells[i].Height = MaxHeight
		}
	}
	m.PrunePlacements()
	return nil
}
