package zoomer

// Buttons is a set of pressed pointer buttons.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Has reports whether every button in b is pressed.
func (s Buttons) Has(b Buttons) bool { return s&b == b }

// PointerDelta is one frame of pointer state produced by an input adapter:
// the current and previous canvas positions, pressed buttons and wheel
// movement (positive zooms in).
type PointerDelta struct {
	X, Y         float64
	PrevX, PrevY float64
	Buttons      Buttons
	Wheel        float64
}

// Moved returns the pointer displacement since the previous frame.
func (d PointerDelta) Moved() (dx, dy float64) {
	return d.X - d.PrevX, d.Y - d.PrevY
}

// ApplyPointer updates the view from one frame of pointer input. Middle, or
// left and right together, drag the view; left zooms in and right zooms out
// around the pointer; the wheel zooms by its delta. Returns whether the view
// is changing.
func (z *Zoomer) ApplyPointer(d PointerDelta) bool {
	switch {
	case d.Buttons.Has(ButtonMiddle) || d.Buttons.Has(ButtonLeft|ButtonRight):
		dx, dy := d.Moved()
		z.PanBy(-dx, -dy)
	case d.Buttons.Has(ButtonLeft):
		z.ZoomAt(d.X, d.Y, 1)
	case d.Buttons.Has(ButtonRight):
		z.ZoomAt(d.X, d.Y, -1)
	case d.Wheel != 0:
		z.ZoomAt(d.X, d.Y, d.Wheel)
	default:
		if z.fly == nil {
			z.zooming = false
		}
	}
	return z.zooming
}
