package zoomer

import (
	"log/slog"
	"math"
)

// Region returns the current view.
func (z *Zoomer) Region() Region { return z.region }

// Area returns the plane ranges of the last frame.
func (z *Zoomer) Area() Area { return z.area }

// SetRegion jumps to a new view. Any fly-to in progress is cancelled and
// the next frame is a full reset.
func (z *Zoomer) SetRegion(center, radius Vec2) {
	z.region = Region{Center: center, Radius: radius}
	z.fly = nil
	z.needsReset = true
}

// Reset returns to the fractal's initial view.
func (z *Zoomer) Reset() {
	z.SetRegion(z.params.Region.Center, z.params.Region.Radius)
	Logger().Info("region reset", slog.String("fractal", z.params.Name))
}

// ScreenToPlane maps canvas pixel coordinates to the plane.
func (z *Zoomer) ScreenToPlane(x, y float64) Vec2 {
	a := z.ConvertArea()
	return Vec2{
		X: a.X.Min + x*a.X.Width()/float64(z.cfg.Width),
		Y: a.Y.Min + y*a.Y.Width()/float64(z.cfg.Height),
	}
}

// PixelSize returns the plane extent of one pixel on each axis.
func (z *Zoomer) PixelSize() Vec2 {
	a := z.ConvertArea()
	return Vec2{
		X: a.X.Width() / float64(z.cfg.Width),
		Y: a.Y.Width() / float64(z.cfg.Height),
	}
}

// ZoomFactor returns the radius multiplier of one zoom step in direction
// dir: positive zooms in, negative zooms out.
func (z *Zoomer) ZoomFactor(dir float64) float64 {
	step := dir * 2 * z.cfg.ZoomStep
	if step >= 1 {
		step = 0.99
	}
	return math.Pow(1-step, z.cfg.ZoomMul)
}

// ZoomAt zooms one step around the canvas point (x, y), which stays fixed
// on screen.
func (z *Zoomer) ZoomAt(x, y, dir float64) {
	z.ZoomBy(x, y, z.ZoomFactor(dir))
}

// ZoomBy scales the view by factor around the canvas point (x, y).
func (z *Zoomer) ZoomBy(x, y, factor float64) {
	p := z.ScreenToPlane(x, y)
	c := z.region.Center
	z.region.Center = Vec2{
		X: p.X + (c.X-p.X)*factor,
		Y: p.Y + (c.Y-p.Y)*factor,
	}
	z.region.Radius.X *= factor
	z.region.Radius.Y *= factor
	z.zooming = true
}

// PanBy moves the view by (dx, dy) canvas pixels.
func (z *Zoomer) PanBy(dx, dy float64) {
	s := z.PixelSize()
	z.region.Center.X += dx * s.X
	z.region.Center.Y += dy * s.Y
	z.zooming = true
}

// Stop marks the view as still so frames fall back to the idle budget.
func (z *Zoomer) Stop() { z.zooming = false }
