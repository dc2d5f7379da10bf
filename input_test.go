package zoomer

import "testing"

func TestButtonsHas(t *testing.T) {
	b := ButtonLeft | ButtonRight
	if !b.Has(ButtonLeft) || !b.Has(ButtonRight) || !b.Has(ButtonLeft|ButtonRight) {
		t.Error("Has misses pressed buttons")
	}
	if b.Has(ButtonMiddle) || b.Has(ButtonLeft|ButtonMiddle) {
		t.Error("Has reports a released button")
	}
}

func TestApplyPointer(t *testing.T) {
	tests := []struct {
		name    string
		d       PointerDelta
		radius  int // -1 shrinks, 0 keeps, 1 grows
		moved   bool
		zooming bool
	}{
		{"left zooms in", PointerDelta{X: 10, Y: 10, PrevX: 10, PrevY: 10, Buttons: ButtonLeft}, -1, true, true},
		{"right zooms out", PointerDelta{X: 10, Y: 10, PrevX: 10, PrevY: 10, Buttons: ButtonRight}, 1, true, true},
		{"middle drags", PointerDelta{X: 14, Y: 8, PrevX: 10, PrevY: 10, Buttons: ButtonMiddle}, 0, true, true},
		{"left and right drag", PointerDelta{X: 14, Y: 8, PrevX: 10, PrevY: 10, Buttons: ButtonLeft | ButtonRight}, 0, true, true},
		{"wheel zooms", PointerDelta{X: 3, Y: 3, PrevX: 3, PrevY: 3, Wheel: 1}, -1, true, true},
		{"released", PointerDelta{X: 3, Y: 3, PrevX: 3, PrevY: 3}, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := newTestZoomer(t, 40, 30, lowIter())
			z.zooming = true
			before := z.Region()
			if got := z.ApplyPointer(tt.d); got != tt.zooming {
				t.Errorf("ApplyPointer = %v, want %v", got, tt.zooming)
			}
			after := z.Region()
			switch r := after.Radius.X; {
			case tt.radius < 0 && !(r < before.Radius.X),
				tt.radius > 0 && !(r > before.Radius.X),
				tt.radius == 0 && r != before.Radius.X:
				t.Errorf("radius %v -> %v", before.Radius.X, r)
			}
			if moved := after.Center != before.Center; moved != tt.moved {
				t.Errorf("center moved = %v, want %v", moved, tt.moved)
			}
		})
	}
}

func TestDragFollowsPointer(t *testing.T) {
	z := newTestZoomer(t, 40, 30, lowIter())
	grab := z.ScreenToPlane(10, 10)
	z.ApplyPointer(PointerDelta{X: 14, Y: 8, PrevX: 10, PrevY: 10, Buttons: ButtonMiddle})
	if got := z.ScreenToPlane(14, 8); !approxEqual(got.X, grab.X, epsilon) || !approxEqual(got.Y, grab.Y, epsilon) {
		t.Errorf("grabbed point now at %v, want %v", got, grab)
	}
}
