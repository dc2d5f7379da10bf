package zoomer

import "time"

// FrameStats describes the work done by one DrawFrame call.
type FrameStats struct {
	Frame int

	// Line counts over both axes.
	Reused    int // kept from the previous frame by the price engine
	Mirrored  int // derived from a symmetric line
	Computed  int // rendered this frame
	Deferred  int // left for the next frame after the budget ran out
	Lines     int // rows + columns
	FullReset bool

	FormulaCalls  int
	GuessedPixels int
	MovedPixels   int

	Incomplete bool
	Elapsed    time.Duration
	Fudge      time.Duration
}

// ReuseRatio returns the share of lines that were not recomputed.
func (s FrameStats) ReuseRatio() float64 {
	if s.Lines == 0 {
		return 0
	}
	return float64(s.Reused+s.Mirrored) / float64(s.Lines)
}

// FrameObserver receives stats after every frame.
type FrameObserver interface {
	FrameDone(stats FrameStats)
}

// FrameObserverFunc adapts a function to FrameObserver.
type FrameObserverFunc func(FrameStats)

// FrameDone calls f(stats).
func (f FrameObserverFunc) FrameDone(stats FrameStats) { f(stats) }
