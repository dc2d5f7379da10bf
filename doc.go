// Package zoomer is an incremental fractal zoom engine.
//
// Instead of evaluating every pixel on every frame, the engine treats the
// image as a set of rows and columns positioned on the complex plane. When
// the view moves, each row and column is either reused from the previous
// frame (possibly shifted), derived from a mirror line when the fractal is
// symmetric, or recomputed. Recomputation is ordered by priority and bounded
// by a per-frame time budget, so zooming stays smooth and the image sharpens
// over the following frames.
//
// # Quick start
//
//	z, err := zoomer.New(zoomer.DefaultConfig(640, 480), zoomer.Mandelbrot())
//	if err != nil {
//		return err
//	}
//	z.DrawFrame(true)
//	for range 100 {
//		z.ZoomAt(320, 240, 1)
//		z.DrawFrame(false)
//	}
//
// Front ends live in sub-packages: ebitenview drives the engine from an
// [Ebitengine] game loop and termview draws it in a terminal through tcell.
// The cmd/zoomer binary wraps both plus a headless PNG renderer. The nested
// ecs module publishes frame stats into a donburi world.
//
// # Frame pipeline
//
// [Zoomer.DrawFrame] runs, in order:
//
//   - area conversion from the current [Region] and the canvas aspect ratio
//   - relocation of both axes: a dynamic-programming match of old line
//     positions against the new grid, with unmatched runs interpolated
//   - symmetry linking across declared mirror axes
//   - a buffer swap and block moves of every reused pixel run
//   - priority-ordered rendering of the remaining lines with solid guessing,
//     stopping at the frame budget and filling the rest with placeholders
//   - mirror copy-back, presentation to the [Surface] and position snapshot
//
// The budget comes from [Config.MinFPS] while zooming and [Config.IdleFPS]
// otherwise, corrected each frame by an adaptive fudge factor.
//
// # Input
//
// Input adapters produce one [PointerDelta] per frame and hand it to
// [Zoomer.Update] or [Zoomer.ApplyPointer]. Left zooms in, right zooms out,
// middle (or left and right together) drags. [Zoomer.FlyTo] animates the
// view with [gween] tweens. Zoom scripts ([LoadScript]) replay input for
// automated captures.
//
// # Logging
//
// The package logs through log/slog and is silent until [SetLogger] is
// called.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package zoomer
