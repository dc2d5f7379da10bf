package zoomer

import (
	"errors"
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// fakeClock is a Clock that only moves when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// stepClock advances by a fixed step on every reading.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// testConfig returns a deterministic configuration for a w×h canvas. The
// clock never moves, so no frame runs out of budget, and solid guessing is
// off so every pixel can be checked against the formula.
func testConfig(w, h int) Config {
	cfg := DefaultConfig(w, h)
	cfg.Clock = newFakeClock()
	cfg.SolidGuess = false
	return cfg
}

// lowIter returns a cheap Mandelbrot for tests.
func lowIter() *FractalParameters {
	p := Mandelbrot()
	p.MaxIter = 64
	return p
}

func newTestZoomer(t testing.TB, w, h int, p *FractalParameters) *Zoomer {
	t.Helper()
	z, err := New(testConfig(w, h), p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return z
}

// checkExact verifies that every pixel matches the formula at its line
// positions.
func checkExact(t *testing.T, z *Zoomer) {
	t.Helper()
	bad := 0
	for y, row := range z.rows {
		for x, col := range z.columns {
			want := z.params.Pixel(col.NewPosition, row.NewPosition)
			if got := z.raster.At(x, y); got != want {
				if bad < 5 {
					t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
				}
				bad++
			}
		}
	}
	if bad > 0 {
		t.Errorf("%d pixels differ from the formula", bad)
	}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -4, 4},
		{"too large", maxDimension + 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(testConfig(tt.w, tt.h), Mandelbrot())
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewRejectsMissingFormula(t *testing.T) {
	if _, err := New(testConfig(8, 8), nil); !errors.Is(err, ErrNilParameters) {
		t.Errorf("nil params error = %v, want ErrNilParameters", err)
	}
	if _, err := New(testConfig(8, 8), &FractalParameters{}); !errors.Is(err, ErrNoFormula) {
		t.Errorf("empty params error = %v, want ErrNoFormula", err)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	z, err := New(Config{Width: 4, Height: 4}, Mandelbrot())
	if err != nil {
		t.Fatal(err)
	}
	cfg := z.Config()
	if cfg.MinFPS != DefaultMinFPS || cfg.IdleFPS != DefaultIdleFPS || cfg.FPSMargin != DefaultFPSMargin {
		t.Errorf("fps defaults = %v/%v/%v", cfg.MinFPS, cfg.IdleFPS, cfg.FPSMargin)
	}
	if cfg.ZoomStep != DefaultZoomStep || cfg.ZoomMul != DefaultZoomMul {
		t.Errorf("zoom defaults = %v/%v", cfg.ZoomStep, cfg.ZoomMul)
	}
	if cfg.Clock == nil {
		t.Error("Clock = nil, want system clock")
	}
	if !z.NeedsRedraw() {
		t.Error("NeedsRedraw = false before the first frame")
	}
}

func TestResize(t *testing.T) {
	z := newTestZoomer(t, 8, 6, lowIter())
	z.DrawFrame(true)
	if err := z.Resize(0, 6); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 6) error = %v, want ErrInvalidSize", err)
	}
	if err := z.Resize(12, 9); err != nil {
		t.Fatal(err)
	}
	if w, h := z.Size(); w != 12 || h != 9 {
		t.Errorf("Size = %dx%d, want 12x9", w, h)
	}
	if len(z.Columns()) != 12 || len(z.Rows()) != 9 || len(z.Raster().Pix) != 12*9 {
		t.Fatalf("tables not resized: %d columns, %d rows, %d pixels",
			len(z.Columns()), len(z.Rows()), len(z.Raster().Pix))
	}
	s := z.DrawFrame(false)
	if !s.FullReset {
		t.Error("frame after Resize is not a full reset")
	}
	checkExact(t, z)
}

func TestRangeHelpers(t *testing.T) {
	r := Range{Min: -1, Max: 3}
	if r.Width() != 4 {
		t.Errorf("Width = %v, want 4", r.Width())
	}
	if !r.Contains(-1) || !r.Contains(3) || r.Contains(3.5) {
		t.Error("Contains is not the closed interval")
	}
}
