package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/forgelight-studio/tankforge/editor"
	"github.com/forgelight-studio/tankforge/render"
	"github.com/forgelight-studio/tankforge/tile"
)

var backgroundColor = color.RGBA{R: 0x16, G: 0x18, B: 0x1d, A: 0xff}

// game hosts the editor session inside an ebiten loop and implements
// render.Backend for it.
type game struct {
	cfg        Config
	configPath string

	session *editor.Session
	face    text.Face
	white   *ebiten.Image
	watcher *tile.Watcher

	screen       *ebiten.Image
	viewW, viewH int
	lastMX       int
	lastMY       int
}

func newGame(cfg Config, tiles *tile.Registry) (*game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	g := &game{
		cfg:   cfg,
		face:  &text.GoTextFace{Source: src, Size: 14},
		white: white,
		viewW: cfg.WindowWidth,
		viewH: cfg.WindowHeight,
	}

	g.session, err = editor.New(g, tiles)
	if err != nil {
		return nil, err
	}

	if cfg.TileCatalog != "" {
		w, err := tile.NewWatcher(filepath.Dir(cfg.TileCatalog))
		if err != nil {
			log.Printf("tile watcher: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *game) close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *game) Update() error {
	g.drainWatcher()
	g.feedInput()
	g.session.Update(1.0 / float64(ebiten.TPS()))

	if g.session.CloseRequested() {
		g.cfg.AutoSave = g.session.AutoSave()
		saveConfig(g.configPath, g.cfg)
		g.session.Exit()
		return ebiten.Termination
	}
	return nil
}

// drainWatcher applies tile catalog changes on the frame they arrive,
// keeping all registry swaps on the main thread.
func (g *game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("tile watcher: %v", err)
			}
		default:
			if reload {
				reg, err := tile.Load(g.cfg.TileCatalog)
				if err != nil {
					log.Printf("tile catalog reload: %v", err)
					return
				}
				g.session.SetTileRegistry(reg)
				log.Printf("tile catalog reloaded")
			}
			return
		}
	}
}

var keyTable = []struct {
	eb ebiten.Key
	ed editor.Key
}{
	{ebiten.KeyEscape, editor.KeyEscape},
	{ebiten.KeyEnter, editor.KeyEnter},
	{ebiten.KeyBackspace, editor.KeyBackspace},
	{ebiten.KeyTab, editor.KeyTab},
	{ebiten.KeyS, editor.KeyS},
	{ebiten.KeyDigit1, editor.Key1},
	{ebiten.KeyDigit2, editor.Key2},
	{ebiten.KeyDigit3, editor.Key3},
	{ebiten.KeyDigit4, editor.Key4},
	{ebiten.KeyDigit5, editor.Key5},
	{ebiten.KeyDigit6, editor.Key6},
}

func (g *game) feedInput() {
	mx, my := ebiten.CursorPosition()
	if mx != g.lastMX || my != g.lastMY {
		g.lastMX, g.lastMY = mx, my
		g.session.HandleEvent(editor.MouseMove{X: float32(mx), Y: float32(my)})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.HandleEvent(editor.MouseDown{Button: editor.ButtonLeft})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.HandleEvent(editor.MouseUp{Button: editor.ButtonLeft})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.session.HandleEvent(editor.MouseDown{Button: editor.ButtonRight})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.session.HandleEvent(editor.MouseUp{Button: editor.ButtonRight})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.session.HandleEvent(editor.Scroll{Delta: float32(wy)})
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		g.session.HandleEvent(editor.Char{Rune: r})
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)
	for _, k := range keyTable {
		if inpututil.IsKeyJustPressed(k.eb) {
			g.session.HandleEvent(editor.KeyDown{Key: k.ed, Ctrl: ctrl})
		}
		if inpututil.IsKeyJustReleased(k.eb) {
			g.session.HandleEvent(editor.KeyUp{Key: k.ed})
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen = screen
	defer func() { g.screen = nil }()

	screen.Fill(backgroundColor)
	if !g.session.Active() {
		return
	}

	view, proj := g.session.Camera(g.viewW, g.viewH)
	vp := proj.Mul4(view)
	g.session.RenderMap(vp)
	g.session.RenderOverlays(vp)
	g.session.RenderUI()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW, g.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// render.Backend implementation

func (g *game) ViewportSize() (int, int) { return g.viewW, g.viewH }

// project maps a world position to screen pixels plus the clip-space w
// used for depth ordering; ok is false behind the camera.
func (g *game) project(vp mgl32.Mat4, p mgl32.Vec3) (float32, float32, float32, bool) {
	clip := vp.Mul4x1(mgl32.Vec4{p.X(), p.Y(), p.Z(), 1})
	if clip.W() <= 0.01 {
		return 0, 0, 0, false
	}
	sx := (clip.X()/clip.W() + 1) / 2 * float32(g.viewW)
	sy := (1 - clip.Y()/clip.W()) / 2 * float32(g.viewH)
	return sx, sy, clip.W(), true
}

func (g *game) DrawTriangles(vp mgl32.Mat4, verts []render.Vertex) {
	if g.screen == nil {
		return
	}
	type tri struct {
		depth float32
		base  int
	}
	projected := make([][3]float32, len(verts)) // sx, sy, w
	visible := make([]bool, len(verts))
	for i, v := range verts {
		sx, sy, w, ok := g.project(vp, v.Pos)
		projected[i] = [3]float32{sx, sy, w}
		visible[i] = ok
	}

	tris := make([]tri, 0, len(verts)/3)
	for i := 0; i+2 < len(verts); i += 3 {
		if !visible[i] || !visible[i+1] || !visible[i+2] {
			continue
		}
		d := (projected[i][2] + projected[i+1][2] + projected[i+2][2]) / 3
		tris = append(tris, tri{depth: d, base: i})
	}
	// painter's algorithm: far triangles first
	sort.Slice(tris, func(a, b int) bool { return tris[a].depth > tris[b].depth })

	sub := g.white.SubImage(g.white.Bounds().Inset(1)).(*ebiten.Image)
	ev := make([]ebiten.Vertex, 0, len(tris)*3)
	ei := make([]uint16, 0, len(tris)*3)
	flush := func() {
		if len(ei) > 0 {
			g.screen.DrawTriangles(ev, ei, sub, nil)
			ev = ev[:0]
			ei = ei[:0]
		}
	}
	for _, t := range tris {
		if len(ev)+3 > 0xffff {
			flush()
		}
		for k := 0; k < 3; k++ {
			v := verts[t.base+k]
			ev = append(ev, ebiten.Vertex{
				DstX:   projected[t.base+k][0],
				DstY:   projected[t.base+k][1],
				SrcX:   1,
				SrcY:   1,
				ColorR: v.Color.R,
				ColorG: v.Color.G,
				ColorB: v.Color.B,
				ColorA: v.Color.A,
			})
			ei = append(ei, uint16(len(ev)-1))
		}
	}
	flush()
}

func (g *game) DrawLines(vp mgl32.Mat4, verts []render.Vertex) {
	if g.screen == nil {
		return
	}
	for i := 0; i+1 < len(verts); i += 2 {
		x0, y0, _, ok0 := g.project(vp, verts[i].Pos)
		x1, y1, _, ok1 := g.project(vp, verts[i+1].Pos)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(g.screen, x0, y0, x1, y1, 2, toColor(verts[i].Color), true)
	}
}

func (g *game) FillRect(x, y, w, h float32, col render.RGBA) {
	if g.screen == nil {
		return
	}
	vector.DrawFilledRect(g.screen, x, y, w, h, toColor(col), false)
}

func (g *game) StrokeRect(x, y, w, h, thickness float32, col render.RGBA) {
	if g.screen == nil {
		return
	}
	vector.StrokeRect(g.screen, x, y, w, h, thickness, toColor(col), false)
}

func (g *game) DrawLabel(x, y float32, s string, col render.RGBA, align render.Align) {
	if g.screen == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	switch align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toColor(col))
	text.Draw(g.screen, s, g.face, op)
}

func (g *game) TextWidth(s string) float32 {
	w, _ := text.Measure(s, g.face, 0)
	return float32(w)
}

func (g *game) LineHeight() float32 {
	return float32(g.face.Metrics().HAscent + g.face.Metrics().HDescent)
}

func toColor(c render.RGBA) color.RGBA {
	clamp := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R * c.A), G: clamp(c.G * c.A), B: clamp(c.B * c.A), A: clamp(c.A)}
}
