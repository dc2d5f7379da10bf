package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/zoomer"
)

// rawPointer is one tick of device state in window pixels.
type rawPointer struct {
	X, Y                float64
	Left, Middle, Right bool
	Wheel               float64
	Touches             []touchPoint
}

type touchPoint struct {
	X, Y float64
}

// pointerState turns raw device readings into zoomer pointer deltas.
type pointerState struct {
	prevX, prevY float64
	seen         bool
	touchCount   int
	touchIDs     []ebiten.TouchID
	touches      []touchPoint
}

// read samples mouse, wheel and touch input from ebiten.
func (p *pointerState) read(scale int) zoomer.PointerDelta {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	raw := rawPointer{
		X:      float64(mx),
		Y:      float64(my),
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Wheel:  wy,
	}
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.touches = p.touches[:0]
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p.touches = append(p.touches, touchPoint{X: float64(tx), Y: float64(ty)})
	}
	raw.Touches = p.touches
	return p.next(raw, scale)
}

// next converts raw device state into a delta in canvas pixels. One touch
// zooms in at the finger, two or more drag the view by their centroid.
func (p *pointerState) next(raw rawPointer, scale int) zoomer.PointerDelta {
	s := float64(max(scale, 1))
	x, y := raw.X, raw.Y
	var b zoomer.Buttons
	if raw.Left {
		b |= zoomer.ButtonLeft
	}
	if raw.Middle {
		b |= zoomer.ButtonMiddle
	}
	if raw.Right {
		b |= zoomer.ButtonRight
	}
	if n := len(raw.Touches); n > 0 {
		x, y = 0, 0
		for _, t := range raw.Touches {
			x += t.X
			y += t.Y
		}
		x /= float64(n)
		y /= float64(n)
		if n == 1 {
			b = zoomer.ButtonLeft
		} else {
			b = zoomer.ButtonMiddle
		}
	}
	x /= s
	y /= s
	// Released buttons or a change of finger count reset the drag origin.
	if !p.seen || b == 0 || len(raw.Touches) != p.touchCount {
		p.prevX, p.prevY = x, y
	}
	p.touchCount = len(raw.Touches)
	d := zoomer.PointerDelta{
		X: x, Y: y,
		PrevX: p.prevX, PrevY: p.prevY,
		Buttons: b,
		Wheel:   raw.Wheel,
	}
	p.prevX, p.prevY, p.seen = x, y, true
	return d
}
