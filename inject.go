package zoomer

// InjectPointer queues one frame of synthetic pointer input. Queued input
// replaces real pointer input in Update, one entry per frame.
func (z *Zoomer) InjectPointer(d PointerDelta) {
	z.injectQueue = append(z.injectQueue, d)
}

// InjectZoom queues frames of zooming around canvas point (x, y): in with
// dir > 0, out with dir < 0. A release frame follows so the view settles.
func (z *Zoomer) InjectZoom(x, y float64, frames int, dir float64) {
	b := ButtonLeft
	if dir < 0 {
		b = ButtonRight
	}
	for range max(frames, 1) {
		z.InjectPointer(PointerDelta{X: x, Y: y, PrevX: x, PrevY: y, Buttons: b})
	}
	z.InjectPointer(PointerDelta{X: x, Y: y, PrevX: x, PrevY: y})
}

// InjectPan queues a middle-button drag from (fromX, fromY) to (toX, toY)
// spread linearly over frames, followed by a release. The view follows the
// pointer as it would under a real drag.
func (z *Zoomer) InjectPan(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 1)
	px, py := fromX, fromY
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		z.InjectPointer(PointerDelta{X: x, Y: y, PrevX: px, PrevY: py, Buttons: ButtonMiddle})
		px, py = x, y
	}
	z.InjectPointer(PointerDelta{X: toX, Y: toY, PrevX: toX, PrevY: toY})
}

// Pending reports how many injected frames are still queued.
func (z *Zoomer) Pending() int { return len(z.injectQueue) }

// processInjectedInput applies one queued entry. Returns true if an entry
// was consumed and real input should be skipped.
func (z *Zoomer) processInjectedInput() bool {
	if len(z.injectQueue) == 0 {
		return false
	}
	d := z.injectQueue[0]
	copy(z.injectQueue, z.injectQueue[1:])
	z.injectQueue = z.injectQueue[:len(z.injectQueue)-1]
	z.ApplyPointer(d)
	return true
}
