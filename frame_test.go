package zoomer

import (
	"math"
	"testing"
)

func TestFirstFrameIsExact(t *testing.T) {
	z := newTestZoomer(t, 32, 24, lowIter())
	s := z.DrawFrame(false)
	if !s.FullReset {
		t.Error("first frame is not a full reset")
	}
	if s.Reused != 0 {
		t.Errorf("reused = %d on the first frame", s.Reused)
	}
	if s.Computed+s.Mirrored != s.Lines {
		t.Errorf("computed %d + mirrored %d != %d lines", s.Computed, s.Mirrored, s.Lines)
	}
	checkExact(t, z)
}

func TestZoomThenSubPixelPan(t *testing.T) {
	const w, h = 400, 300
	z := newTestZoomer(t, w, h, Mandelbrot())
	z.DrawFrame(true)

	z.ZoomAt(w/2, h/2, 1)
	step := 0.008 * 3
	want := 2.5 * math.Pow(1-2*step, 0.3)
	if r := z.Region().Radius; r.X != want || r.Y != want {
		t.Fatalf("radius = %v, want %v", r, want)
	}
	s := z.DrawFrame(false)
	if s.Reused == 0 {
		t.Error("zoom step reused nothing")
	}
	checkExact(t, z)

	z.PanBy(0.3, 0)
	s = z.DrawFrame(false)
	if ratio := s.ReuseRatio(); ratio < 0.95 {
		t.Errorf("reuse ratio after a sub-pixel pan = %.3f, want >= 0.95", ratio)
	}
	checkExact(t, z)
}

func TestIncrementalFramesStayExact(t *testing.T) {
	const w, h = 64, 48
	z := newTestZoomer(t, w, h, lowIter())
	z.DrawFrame(true)

	moves := []func(){
		func() { z.ZoomAt(20, 30, 1) },
		func() { z.ZoomAt(20, 30, 1) },
		func() { z.ZoomAt(50, 10, 1) },
		func() { z.PanBy(3.5, -2.25) },
		func() { z.PanBy(-12, 0) },
		func() { z.ZoomAt(32, 24, -1) },
		func() { z.ZoomAt(0, 0, -2) },
		func() { z.ZoomBy(40, 20, 0.5) },
	}
	for i, move := range moves {
		move()
		s := z.DrawFrame(false)
		if s.FullReset {
			t.Fatalf("move %d: unexpected full reset", i)
		}
		if s.Incomplete {
			t.Fatalf("move %d: frame incomplete with a frozen clock", i)
		}
		checkExact(t, z)
		if t.Failed() {
			t.Fatalf("move %d broke the image", i)
		}
	}
}

func TestMirrorsAcrossIncrementalFrames(t *testing.T) {
	const w, h = 48, 36
	z := newTestZoomer(t, w, h, lowIter())
	z.DrawFrame(true)
	mirrored := 0
	for range 6 {
		z.ZoomBy(10, h/2+3, 0.8)
		s := z.DrawFrame(false)
		mirrored += s.Mirrored
		checkExact(t, z)
	}
	if mirrored == 0 {
		t.Error("no mirror lines while zooming near the real axis")
	}
}

func TestToggles(t *testing.T) {
	t.Run("symmetry off", func(t *testing.T) {
		z := newTestZoomer(t, 32, 24, lowIter())
		z.SetSymmetry(false)
		if s := z.DrawFrame(true); s.Mirrored != 0 {
			t.Errorf("mirrored = %d with symmetry off", s.Mirrored)
		}
		checkExact(t, z)
	})
	t.Run("symmetry on", func(t *testing.T) {
		z := newTestZoomer(t, 32, 24, lowIter())
		if s := z.DrawFrame(true); s.Mirrored == 0 {
			t.Error("no mirrored lines with the real axis in view")
		}
	})
	t.Run("incremental off", func(t *testing.T) {
		z := newTestZoomer(t, 32, 24, lowIter())
		z.DrawFrame(true)
		z.SetIncremental(false)
		z.PanBy(0.5, 0)
		s := z.DrawFrame(false)
		if !s.FullReset || s.Reused != 0 {
			t.Errorf("full=%v reused=%d with reuse disabled", s.FullReset, s.Reused)
		}
		checkExact(t, z)
	})
	t.Run("solid guess forces reset", func(t *testing.T) {
		z := newTestZoomer(t, 32, 24, lowIter())
		z.DrawFrame(true)
		z.SetSolidGuess(true)
		if !z.NeedsRedraw() {
			t.Fatal("NeedsRedraw = false after toggling solid guessing")
		}
		if s := z.DrawFrame(false); !s.FullReset {
			t.Error("toggle did not reset the frame")
		}
	})
}

func TestSetParameters(t *testing.T) {
	z := newTestZoomer(t, 16, 12, lowIter())
	z.DrawFrame(true)
	if err := z.SetParameters(nil); err == nil {
		t.Error("SetParameters(nil) succeeded")
	}
	j := Julia(-0.8, 0.156)
	j.MaxIter = 64
	if err := z.SetParameters(j); err != nil {
		t.Fatal(err)
	}
	if s := z.DrawFrame(false); !s.FullReset {
		t.Error("new fractal did not reset the frame")
	}
	checkExact(t, z)
}

func TestObserverAndSurface(t *testing.T) {
	z := newTestZoomer(t, 16, 12, lowIter())
	var frames []FrameStats
	z.SetFrameObserver(FrameObserverFunc(func(s FrameStats) { frames = append(frames, s) }))
	var presented *Raster
	z.SetSurface(SurfaceFunc(func(r *Raster) { presented = r }))

	z.DrawFrame(true)
	z.ZoomAt(8, 6, 1)
	z.DrawFrame(false)

	if len(frames) != 2 || frames[0].Frame != 1 || frames[1].Frame != 2 {
		t.Fatalf("observed frames = %+v", frames)
	}
	if frames[1] != z.LastStats() {
		t.Error("observer stats differ from LastStats")
	}
	if presented != z.Raster() {
		t.Error("surface did not receive the raster")
	}
}

func TestStillViewNeedsNoRedraw(t *testing.T) {
	z := newTestZoomer(t, 16, 12, lowIter())
	z.DrawFrame(true)
	if z.NeedsRedraw() {
		t.Error("NeedsRedraw = true for a still, complete view")
	}
	z.PanBy(1, 0)
	if !z.NeedsRedraw() {
		t.Error("NeedsRedraw = false while panning")
	}
}

func TestConvertArea(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		radius Vec2
		want   Area
	}{
		{"wide canvas", 400, 200, Vec2{X: 2, Y: 2}, Area{X: Range{-2, 2}, Y: Range{-1, 1}}},
		{"tall canvas", 200, 400, Vec2{X: 2, Y: 2}, Area{X: Range{-1, 1}, Y: Range{-2, 2}}},
		{"wide radius", 100, 100, Vec2{X: 4, Y: 1}, Area{X: Range{-2, 2}, Y: Range{-2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := newTestZoomer(t, tt.w, tt.h, lowIter())
			z.SetRegion(Vec2{}, tt.radius)
			a := z.ConvertArea()
			if a != tt.want {
				t.Errorf("area = %+v, want %+v", a, tt.want)
			}
		})
	}
}
