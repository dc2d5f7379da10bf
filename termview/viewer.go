// Package termview renders a zoomer.Zoomer in a terminal through tcell.
//
// Each terminal cell shows two canvas pixels stacked vertically using the
// upper half block: the foreground carries the top pixel and the background
// the bottom one. Keyboard and mouse input drive the view.
package termview

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/zoomer"
)

const (
	halfBlock = '▀'
	panStep   = 8 // canvas pixels per arrow key press
	zoomSteps = 6 // frames of zoom per +/- key press
)

// Viewer draws frames onto a tcell screen.
type Viewer struct {
	z      *zoomer.Zoomer
	screen tcell.Screen
	tick   time.Duration

	pointer zoomer.PointerDelta
	held    zoomer.Buttons
}

// New wraps an initialised screen. The canvas is resized to the screen's
// cell grid with two pixels per cell vertically.
func New(z *zoomer.Zoomer, screen tcell.Screen) (*Viewer, error) {
	v := &Viewer{z: z, screen: screen, tick: 33 * time.Millisecond}
	if err := v.resize(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return v, nil
}

// SetTick changes the frame interval of Run.
func (v *Viewer) SetTick(d time.Duration) {
	if d > 0 {
		v.tick = d
	}
}

func (v *Viewer) resize() error {
	w, h := v.screen.Size()
	return v.z.Resize(max(w, 1), max(2*h, 1))
}

// Run polls events and draws frames until ctx is done or the user quits.
// The screen is not finalised; the caller owns it.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(v.tick)
	defer ticker.Stop()

	v.z.DrawFrame(true)
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.Handle(ev) {
				zoomer.Logger().Info("terminal viewer closed")
				return nil
			}
		case <-ticker.C:
			v.Step(float32(v.tick.Seconds()))
		}
	}
}

// Step advances the engine by dt seconds and redraws when needed.
func (v *Viewer) Step(dt float32) {
	d := v.pointer
	d.Buttons = v.held
	v.pointer.PrevX, v.pointer.PrevY = v.pointer.X, v.pointer.Y
	v.pointer.Wheel = 0
	if v.z.Update(dt, d) {
		v.z.DrawFrame(false)
		v.Draw()
	}
}

// Draw copies the raster onto the screen.
func (v *Viewer) Draw() {
	r := v.z.Raster()
	w, h := v.screen.Size()
	for y := 0; y < h; y++ {
		top := 2 * y
		if top >= r.Height {
			break
		}
		for x := 0; x < w && x < r.Width; x++ {
			fg := cellColor(r.At(x, top))
			bg := fg
			if top+1 < r.Height {
				bg = cellColor(r.At(x, top+1))
			}
			v.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	v.screen.Show()
}

func cellColor(c uint32) tcell.Color {
	r, g, b, _ := zoomer.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Handle applies one event. Returns false when the user asked to quit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		if err := v.resize(); err != nil {
			zoomer.Logger().Warn("terminal resize", slog.Any("err", err))
		}
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	w, h := v.z.Size()
	cx, cy := float64(w)/2, float64(h)/2
	cfg := v.z.Config()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.z.PanBy(-panStep, 0)
	case tcell.KeyRight:
		v.z.PanBy(panStep, 0)
	case tcell.KeyUp:
		v.z.PanBy(0, -panStep)
	case tcell.KeyDown:
		v.z.PanBy(0, panStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '+', '=':
			v.z.InjectZoom(cx, cy, zoomSteps, 1)
		case '-', '_':
			v.z.InjectZoom(cx, cy, zoomSteps, -1)
		case 'r':
			v.z.Reset()
		case 's':
			v.z.SetSymmetry(!cfg.Symmetry)
		case 'g':
			v.z.SetSolidGuess(!cfg.SolidGuess)
		case 'i':
			v.z.SetIncremental(!cfg.Incremental)
		}
	}
	return true
}

// handleMouse records button and wheel state. Cell rows map to the upper
// pixel of each cell.
func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	v.pointer.X, v.pointer.Y = float64(x), float64(2*y)
	btn := ev.Buttons()
	var held zoomer.Buttons
	if btn&tcell.Button1 != 0 {
		held |= zoomer.ButtonLeft
	}
	if btn&tcell.Button2 != 0 {
		held |= zoomer.ButtonRight
	}
	if btn&tcell.Button3 != 0 {
		held |= zoomer.ButtonMiddle
	}
	if held == 0 || v.held == 0 {
		v.pointer.PrevX, v.pointer.PrevY = v.pointer.X, v.pointer.Y
	}
	v.held = held
	switch {
	case btn&tcell.WheelUp != 0:
		v.pointer.Wheel += 1
	case btn&tcell.WheelDown != 0:
		v.pointer.Wheel -= 1
	}
}
