package tile

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(reg.All()) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	ground, ok := reg.Lookup("ground")
	if !ok {
		t.Fatal("ground missing from embedded catalog")
	}
	if ground.Symbol != "." {
		t.Fatalf("ground symbol = %q", ground.Symbol)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`tiles:
  - name: ground
    symbol: "G"
    color: "#102030"
  - name: swamp
    symbol: "w"
    color: "#334422"
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ground, _ := reg.Lookup("ground")
	if ground.Symbol != "G" {
		t.Fatalf("override not applied, symbol = %q", ground.Symbol)
	}
	if ground.Color.NRGBA != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("color = %+v", ground.Color.NRGBA)
	}
	if _, ok := reg.Lookup("swamp"); !ok {
		t.Fatal("new type not appended")
	}
}

func TestParseRejectsUnnamed(t *testing.T) {
	if _, err := parse([]byte("tiles:\n  - symbol: x\n")); err == nil {
		t.Fatal("expected error for unnamed tile")
	}
}

func TestHexColorFormats(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ff8000"`, color.NRGBA{0xff, 0x80, 0x00, 0xff}, false},
		{"rgba", `"#ff800080"`, color.NRGBA{0xff, 0x80, 0x00, 0x80}, false},
		{"too short", `"#fff"`, color.NRGBA{}, true},
		{"garbage", `"#zzzzzz"`, color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := parse([]byte("tiles:\n  - name: t\n    color: " + tt.in + "\n"))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := reg.All()[0].Color.NRGBA; got != tt.want {
				t.Fatalf("color = %+v, want %+v", got, tt.want)
			}
		})
	}
}
