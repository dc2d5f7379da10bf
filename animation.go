package zoomer

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flyAnim interpolates between two regions. The tween only drives progress
// in [0, 1]; coordinates are blended in float64 so deep views keep their
// precision. Radii are blended in log space so the zoom speed looks even.
type flyAnim struct {
	tween    *gween.Tween
	from, to Region
}

// FlyTo animates the view to target over seconds using easeFn (nil means
// ease.InOutQuad). Frames during the flight are incremental.
func (z *Zoomer) FlyTo(target Region, seconds float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.InOutQuad
	}
	if seconds <= 0 {
		z.region = target
		z.zooming = true
		z.fly = nil
		return
	}
	z.fly = &flyAnim{
		tween: gween.New(0, 1, seconds, easeFn),
		from:  z.region,
		to:    target,
	}
}

// Flying reports whether a fly-to is in progress.
func (z *Zoomer) Flying() bool { return z.fly != nil }

// advanceFly moves the fly-to forward by dt seconds.
func (z *Zoomer) advanceFly(dt float32) {
	if z.fly == nil {
		return
	}
	t, done := z.fly.tween.Update(dt)
	z.region = z.fly.at(float64(t))
	z.zooming = true
	if done {
		z.region = z.fly.to
		z.fly = nil
	}
}

func (f *flyAnim) at(t float64) Region {
	return Region{
		Center: Vec2{
			X: lerp(f.from.Center.X, f.to.Center.X, t),
			Y: lerp(f.from.Center.Y, f.to.Center.Y, t),
		},
		Radius: Vec2{
			X: logLerp(f.from.Radius.X, f.to.Radius.X, t),
			Y: logLerp(f.from.Radius.Y, f.to.Radius.Y, t),
		},
		Angle: lerp(f.from.Angle, f.to.Angle, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// logLerp blends positive values geometrically and falls back to linear
// blending otherwise.
func logLerp(a, b, t float64) float64 {
	if a <= 0 || b <= 0 {
		return lerp(a, b, t)
	}
	return math.Exp(lerp(math.Log(a), math.Log(b), t))
}

// Update advances scripted input, injected pointer events and any fly-to
// by dt seconds, then applies pointer for this frame unless injected input
// took its place. It returns whether DrawFrame should run.
func (z *Zoomer) Update(dt float32, pointer PointerDelta) bool {
	if z.script != nil {
		z.script.step(z)
	}
	if !z.processInjectedInput() {
		z.ApplyPointer(pointer)
	}
	z.advanceFly(dt)
	return z.NeedsRedraw()
}
