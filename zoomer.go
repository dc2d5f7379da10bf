package zoomer

import (
	"errors"
	"time"
)

// Vec2 is a point or extent on the complex plane. X is the real part and Y
// the imaginary part.
type Vec2 struct {
	X, Y float64
}

// Range is a half-open coordinate interval [Min, Max) along one axis.
type Range struct {
	Min, Max float64
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies inside the closed interval [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Region is the visible part of the plane. Radius holds the full extent of
// the view on each axis; the larger of the two (after aspect correction)
// wins. Angle is carried for completeness and ignored by the engine.
type Region struct {
	Center Vec2
	Radius Vec2
	Angle  float64
}

// Area is a Region resolved against a canvas aspect ratio.
type Area struct {
	X, Y Range
}

// NoLine marks an unset line reference (Source, SymTo, SymRef).
const NoLine = -1

// Line is one row or one column of the image. Lines are owned by the Zoomer
// and exposed read-only through Rows and Columns.
type Line struct {
	Index int
	IsRow bool

	// OldPosition is the coordinate the line had at the end of the previous
	// frame; NewPosition is the coordinate it is assigned this frame.
	OldPosition float64
	NewPosition float64

	// Recalculate means the line must be computed this frame. Dirty means the
	// buffer content does not correspond to NewPosition yet.
	Recalculate bool
	Dirty       bool

	// Source is the previous-frame line whose pixels are reused.
	Source int

	// SymTo names the donor line this line mirrors; SymRef names the mirror
	// fed by this line.
	SymTo  int
	SymRef int

	Priority float64
}

// Engine tuning constants.
const (
	searchRange = 4                   // reuse window in pixels
	fpMul       = 64                  // fixed-point grid cells per pixel
	fpRange     = fpMul * searchRange // reuse window in grid cells
	newPrice    = fpRange * fpRange   // cost of computing a line from scratch
	guessRange  = 4                   // solid-guess neighbour window in pixels
	fudgeStep   = time.Millisecond    // fudge factor increment
	priceSlots  = 2*searchRange + 1   // price nodes per line
)

// maxDimension bounds either canvas side.
const maxDimension = 1 << 15

// Defaults for Config.
const (
	DefaultMinFPS    = 60
	DefaultIdleFPS   = 10
	DefaultFPSMargin = 10
	DefaultZoomStep  = 0.008 * 3
	DefaultZoomMul   = 0.3
)

var (
	// ErrInvalidSize is returned when a canvas dimension is not positive or
	// exceeds the supported maximum.
	ErrInvalidSize = errors.New("zoomer: invalid canvas size")
	// ErrNilParameters is returned when no fractal parameters are supplied.
	ErrNilParameters = errors.New("zoomer: nil fractal parameters")
	// ErrNoFormula is returned when parameters carry neither a Formula nor a
	// ColorFunc.
	ErrNoFormula = errors.New("zoomer: fractal has no formula")
)

// Config controls canvas size and engine behaviour.
type Config struct {
	Width, Height int

	// MinFPS is the frame rate held while zooming. IdleFPS applies while the
	// view is still. FPSMargin is the headroom above MinFPS before the fudge
	// factor is relaxed.
	MinFPS    float64
	IdleFPS   float64
	FPSMargin float64

	// Symmetry, SolidGuess and Incremental toggle the mirror resolver, the
	// solid-guess shortcut and frame-to-frame reuse.
	Symmetry    bool
	SolidGuess  bool
	Incremental bool

	// ZoomStep and ZoomMul shape one zoom step: the view scales by
	// (1 - 2*ZoomStep)^ZoomMul per frame.
	ZoomStep float64
	ZoomMul  float64

	// Clock supplies frame timing. Nil uses the wall clock.
	Clock Clock

	// Debug enables per-frame stats logging at debug level.
	Debug bool
}

// DefaultConfig returns a Config for a w×h canvas with every optimization on.
func DefaultConfig(w, h int) Config {
	return Config{
		Width:       w,
		Height:      h,
		MinFPS:      DefaultMinFPS,
		IdleFPS:     DefaultIdleFPS,
		FPSMargin:   DefaultFPSMargin,
		Symmetry:    true,
		SolidGuess:  true,
		Incremental: true,
		ZoomStep:    DefaultZoomStep,
		ZoomMul:     DefaultZoomMul,
	}
}

func validSize(w, h int) bool {
	return w > 0 && h > 0 && w <= maxDimension && h <= maxDimension
}
