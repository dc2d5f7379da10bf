// Package ebitenview drives a zoomer.Zoomer from an Ebitengine game loop.
//
// The game reads mouse, wheel, touch and keyboard input each tick, hands it
// to the engine and draws a frame only when the view changes or deferred
// work remains.
package ebitenview

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/zoomer"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Scale divides the window size to get the canvas size. Values below 1
	// mean 1.
	Scale   int
	ShowFPS bool
}

// Game implements ebiten.Game around a Zoomer.
type Game struct {
	z     *zoomer.Zoomer
	cfg   RunConfig
	input pointerState

	canvas *ebiten.Image
	pix    []byte
	fps    *fpsOverlay
}

// NewGame wraps z for ebiten.RunGame.
func NewGame(z *zoomer.Zoomer, cfg RunConfig) *Game {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	g := &Game{z: z, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Run opens a resizable window and blocks until it closes.
func Run(z *zoomer.Zoomer, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "zoomer"
	}
	w, h := z.Size()
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg.Width, cfg.Height = w, h
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g := NewGame(z, cfg)
	zoomer.Logger().Info("window opened", slog.String("title", cfg.Title),
		slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))
	return ebiten.RunGame(g)
}

// Update reads input, advances the engine and renders a frame when needed.
func (g *Game) Update() error {
	if quit := g.handleKeys(); quit {
		return ebiten.Termination
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	if g.z.Update(dt, g.input.read(g.cfg.Scale)) {
		g.z.DrawFrame(false)
	}
	if g.fps != nil {
		g.fps.update(float64(dt), g.z.LastStats())
	}
	return nil
}

// handleKeys applies keyboard toggles. Returns true when the game should
// exit.
func (g *Game) handleKeys() bool {
	cfg := g.z.Config()
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyEscape, ebiten.KeyQ:
			return true
		case ebiten.KeyR:
			g.z.Reset()
		case ebiten.KeyS:
			g.z.SetSymmetry(!cfg.Symmetry)
			g.z.DrawFrame(true)
		case ebiten.KeyG:
			g.z.SetSolidGuess(!cfg.SolidGuess)
		case ebiten.KeyI:
			g.z.SetIncremental(!cfg.Incremental)
		case ebiten.KeyP:
			g.z.Screenshot("capture")
			g.z.DrawFrame(false)
		case ebiten.KeyF:
			if g.fps == nil {
				g.fps = newFPSOverlay()
			} else {
				g.fps = nil
			}
		default:
			continue
		}
		zoomer.Logger().Debug("key", slog.String("key", k.String()))
	}
	return false
}

// Draw uploads the raster and scales it onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	r := g.z.Raster()
	if g.canvas == nil || g.canvas.Bounds().Dx() != r.Width || g.canvas.Bounds().Dy() != r.Height {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(r.Width, r.Height)
	}
	g.pix = r.AppendBytes(g.pix[:0])
	g.canvas.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.canvas, op)

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout sizes the canvas to the window divided by Scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/g.cfg.Scale, 1)
	h := max(outsideHeight/g.cfg.Scale, 1)
	if err := g.z.Resize(w, h); err != nil {
		zoomer.Logger().Warn("resize", slog.Any("err", err))
	}
	return w * g.cfg.Scale, h * g.cfg.Scale
}
