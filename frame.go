package zoomer

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Zoomer renders a fractal incrementally, reusing rows and columns of the
// previous frame whenever the view moves by small amounts. A Zoomer is
// driven from a single goroutine and is not safe for concurrent use.
type Zoomer struct {
	cfg    Config
	params *FractalParameters
	region Region
	area   Area

	rows    []Line
	columns []Line

	price     *priceEngine
	moveTable []Move
	fillTable []Move
	queue     []*Line
	raster    *Raster

	surface  Surface
	observer FrameObserver
	clock    Clock

	start      time.Time
	fudge      time.Duration
	incomplete bool
	zooming    bool
	needsReset bool
	symmetry   Vec2
	frame      int
	stats      FrameStats

	fly         *flyAnim
	injectQueue []PointerDelta
	script      *ScriptRunner

	ScreenshotDir   string
	screenshotQueue []string
}

// New creates a Zoomer for the canvas in cfg. Zero timing and zoom fields
// in cfg take their defaults; boolean toggles are used as given, so start
// from DefaultConfig to enable every optimization.
func New(cfg Config, params *FractalParameters) (*Zoomer, error) {
	if !validSize(cfg.Width, cfg.Height) {
		return nil, fmt.Errorf("new zoomer: %w (%dx%d)", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if params == nil {
		return nil, fmt.Errorf("new zoomer: %w", ErrNilParameters)
	}
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("new zoomer: %w", err)
	}
	if cfg.MinFPS == 0 {
		cfg.MinFPS = DefaultMinFPS
	}
	if cfg.IdleFPS == 0 {
		cfg.IdleFPS = DefaultIdleFPS
	}
	if cfg.FPSMargin == 0 {
		cfg.FPSMargin = DefaultFPSMargin
	}
	if cfg.ZoomStep == 0 {
		cfg.ZoomStep = DefaultZoomStep
	}
	if cfg.ZoomMul == 0 {
		cfg.ZoomMul = DefaultZoomMul
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	z := &Zoomer{
		cfg:           cfg,
		params:        params,
		region:        params.Region,
		clock:         cfg.Clock,
		ScreenshotDir: "screenshots",
	}
	z.allocate(cfg.Width, cfg.Height)
	return z, nil
}

// allocate sizes every per-canvas table once.
func (z *Zoomer) allocate(w, h int) {
	z.cfg.Width, z.cfg.Height = w, h
	z.columns = make([]Line, w)
	z.rows = make([]Line, h)
	initialize(z.columns, 0, 1, false)
	initialize(z.rows, 0, 1, true)
	z.price = newPriceEngine(max(w, h))
	z.moveTable = make([]Move, w+1)
	z.fillTable = make([]Move, w+1)
	z.queue = make([]*Line, 0, w+h)
	z.raster = NewRaster(w, h)
	z.needsReset = true
}

// Resize reallocates the canvas. The next frame is a full reset.
func (z *Zoomer) Resize(w, h int) error {
	if !validSize(w, h) {
		return fmt.Errorf("resize zoomer: %w (%dx%d)", ErrInvalidSize, w, h)
	}
	if w == z.cfg.Width && h == z.cfg.Height {
		return nil
	}
	z.allocate(w, h)
	Logger().Info("canvas resized", slog.Int("width", w), slog.Int("height", h))
	return nil
}

// SetSurface sets where finished frames are presented. Nil disables
// presentation; the raster is still available through Raster.
func (z *Zoomer) SetSurface(s Surface) { z.surface = s }

// SetFrameObserver registers a callback for per-frame stats.
func (z *Zoomer) SetFrameObserver(o FrameObserver) { z.observer = o }

// SetParameters swaps the fractal and forces a full reset.
func (z *Zoomer) SetParameters(p *FractalParameters) error {
	if p == nil {
		return ErrNilParameters
	}
	if err := p.validate(); err != nil {
		return err
	}
	z.params = p
	z.needsReset = true
	return nil
}

// Parameters returns the active fractal.
func (z *Zoomer) Parameters() *FractalParameters { return z.params }

// Config returns the effective configuration.
func (z *Zoomer) Config() Config { return z.cfg }

// SetSymmetry toggles the mirror resolver.
func (z *Zoomer) SetSymmetry(on bool) { z.cfg.Symmetry = on }

// SetSolidGuess toggles solid guessing. The next frame is a full reset so
// the whole image reflects the new setting.
func (z *Zoomer) SetSolidGuess(on bool) {
	z.cfg.SolidGuess = on
	z.needsReset = true
}

// SetIncremental toggles frame-to-frame reuse.
func (z *Zoomer) SetIncremental(on bool) { z.cfg.Incremental = on }

// Size returns the canvas dimensions.
func (z *Zoomer) Size() (int, int) { return z.cfg.Width, z.cfg.Height }

// Rows returns the row lines. The slice is owned by the Zoomer.
func (z *Zoomer) Rows() []Line { return z.rows }

// Columns returns the column lines. The slice is owned by the Zoomer.
func (z *Zoomer) Columns() []Line { return z.columns }

// Raster returns the pixel buffers.
func (z *Zoomer) Raster() *Raster { return z.raster }

// Incomplete reports whether the last frame deferred work.
func (z *Zoomer) Incomplete() bool { return z.incomplete }

// Zooming reports whether the view is changing.
func (z *Zoomer) Zooming() bool { return z.zooming }

// Fudge returns the current frame budget bias.
func (z *Zoomer) Fudge() time.Duration { return z.fudge }

// LastStats returns the stats of the most recent frame.
func (z *Zoomer) LastStats() FrameStats { return z.stats }

// NeedsRedraw reports whether calling DrawFrame would change the image.
func (z *Zoomer) NeedsRedraw() bool {
	return z.zooming || z.incomplete || z.needsReset || z.fly != nil
}

// DrawFrame builds one frame. force discards all previous pixels; it is
// implied for the first frame and after size or fractal changes.
func (z *Zoomer) DrawFrame(force bool) FrameStats {
	force = force || z.needsReset
	z.needsReset = false
	reset := force || !z.cfg.Incremental

	z.start = z.clock.Now()
	z.frame++
	z.stats = FrameStats{
		Frame:     z.frame,
		Lines:     len(z.rows) + len(z.columns),
		FullReset: reset,
	}
	z.area = z.ConvertArea()

	z.relocate(z.columns, z.area.X, false, reset)
	z.relocate(z.rows, z.area.Y, true, reset)
	if !reset {
		z.stats.Reused = countReused(z.columns) + countReused(z.rows)
	}
	z.stats.Mirrored = z.prepareMirrors()

	z.raster.Swap()
	z.stats.MovedPixels = z.movePixels()
	// Only incremental frames run under a deadline.
	z.calculate(!reset)
	if z.stats.Mirrored > 0 {
		z.copyRows()
		z.copyColumns()
	}
	if z.cfg.Debug {
		debugCheckLinks("row", z.rows)
		debugCheckLinks("column", z.columns)
	}

	if z.surface != nil {
		z.surface.Present(z.raster)
	}
	z.flushScreenshots()
	z.updatePositions()

	elapsed := z.clock.Now().Sub(z.start)
	z.updateFPS(elapsed)
	z.stats.Elapsed = elapsed
	z.stats.Fudge = z.fudge
	z.stats.Incomplete = z.incomplete

	if z.observer != nil {
		z.observer.FrameDone(z.stats)
	}
	z.debugLog(z.stats)
	return z.stats
}

// ConvertArea resolves the region against the canvas aspect ratio. The
// wider of the two radii decides the scale so the view is never stretched.
func (z *Zoomer) ConvertArea() Area {
	aspect := float64(z.cfg.Width) / float64(z.cfg.Height)
	size := max(z.region.Radius.X, z.region.Radius.Y*aspect)
	half := size / 2
	c := z.region.Center
	return Area{
		X: Range{Min: c.X - half, Max: c.X + half},
		Y: Range{Min: c.Y - half/aspect, Max: c.Y + half/aspect},
	}
}

// prepareMirrors links symmetric lines for every mirror axis crossing the
// view. Returns the number of mirror lines.
func (z *Zoomer) prepareMirrors() int {
	if !z.cfg.Symmetry {
		return 0
	}
	sym := z.params.Symmetry
	z.symmetry = Vec2{X: sym.X, Y: sym.Y}
	n := 0
	if sym.HasY {
		n += prepareSymmetry(z.rows, z.area.Y.Min, z.area.Y.Max, sym.Y)
	}
	if sym.HasX {
		n += prepareSymmetry(z.columns, z.area.X.Min, z.area.X.Max, sym.X)
	}
	return n
}

func countReused(lines []Line) int {
	n := 0
	for i := range lines {
		if !lines[i].Recalculate {
			n++
		}
	}
	return n
}

// updatePositions makes this frame's positions the next frame's sources.
// Lines left dirty hold no valid pixels and get a NaN position, which the
// price engine never reuses.
func (z *Zoomer) updatePositions() {
	snapshot(z.columns)
	snapshot(z.rows)
}

func snapshot(lines []Line) {
	for i := range lines {
		if lines[i].Dirty {
			lines[i].OldPosition = math.NaN()
		} else {
			lines[i].OldPosition = lines[i].NewPosition
		}
	}
}

// updateFPS nudges the fudge factor toward holding MinFPS.
func (z *Zoomer) updateFPS(elapsed time.Duration) {
	fps := float64(time.Second) / float64(max(elapsed, time.Nanosecond))
	switch {
	case fps < z.cfg.MinFPS:
		z.fudge += fudgeStep
	case fps > z.cfg.MinFPS+z.cfg.FPSMargin && z.fudge > 0:
		z.fudge -= fudgeStep
	}
}
