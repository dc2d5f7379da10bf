package zoomer

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// propagatePriority scales priorities inside the run lines[begin..end] by
// bisection, so lines splitting large unresolved gaps are computed first.
// Donors of a mirror are halved.
func propagatePriority(lines []Line, begin, end int, step float64) {
	for begin < end {
		mid := begin + (end-begin)>>1
		line := &lines[mid]
		line.Priority *= (lines[end].NewPosition - line.NewPosition) / step
		if line.SymRef != NoLine {
			line.Priority /= 2
		}
		propagatePriority(lines, begin, mid, step)
		begin = mid + 1
	}
}

// enqueue appends every line flagged for recomputation to the queue and
// weights each run.
func (z *Zoomer) enqueue(lines []Line, step float64) {
	for i := 0; i < len(lines); i++ {
		if !lines[i].Recalculate {
			continue
		}
		j := i
		for ; j < len(lines) && lines[j].Recalculate; j++ {
			z.queue = append(z.queue, &lines[j])
		}
		if j == len(lines) {
			j--
		}
		propagatePriority(lines, i, j, step)
		i = j
	}
}

// byPriority orders lines by descending priority with NaN last.
func byPriority(a, b *Line) int {
	an, bn := math.IsNaN(a.Priority), math.IsNaN(b.Priority)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmp.Compare(b.Priority, a.Priority)
}

// budget returns the frame time allowed at the current zoom state.
func (z *Zoomer) budget() time.Duration {
	fps := z.cfg.IdleFPS
	if z.zooming {
		fps = z.cfg.MinFPS
	}
	if !(fps > 0) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(float64(time.Second) / fps)
}

// tooSlow reports whether the frame has used up its budget.
func (z *Zoomer) tooSlow() bool {
	return z.clock.Now().Sub(z.start)+z.fudge > z.budget()
}

// calculate renders queued lines in priority order. When deadline is set
// and the budget runs out, the remaining lines are deferred: they keep
// their flag and get placeholder pixels from the filler.
func (z *Zoomer) calculate(deadline bool) {
	z.incomplete = false
	z.queue = z.queue[:0]
	z.enqueue(z.columns, z.area.X.Width()/float64(len(z.columns)))
	z.enqueue(z.rows, z.area.Y.Width()/float64(len(z.rows)))
	slices.SortFunc(z.queue, byPriority)

	for i, line := range z.queue {
		if line.IsRow {
			z.renderRow(line)
		} else {
			z.renderColumn(line)
		}
		if deadline && i+1 < len(z.queue) && z.tooSlow() {
			z.incomplete = true
			z.stats.Deferred = len(z.queue) - i - 1
			z.fill()
			break
		}
	}
}
