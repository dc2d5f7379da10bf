package zoomer

import "math"

// initialize resets every line of an axis to a uniform grid over
// [begin, end), all of them waiting to be computed.
func initialize(lines []Line, begin, end float64, isRow bool) {
	step := (end - begin) / float64(len(lines))
	for i := range lines {
		p := begin + float64(i)*step
		lines[i] = Line{
			Index:       i,
			IsRow:       isRow,
			OldPosition: p,
			NewPosition: p,
			Recalculate: true,
			Dirty:       true,
			Source:      NoLine,
			SymTo:       NoLine,
			SymRef:      NoLine,
			Priority:    1,
		}
	}
}

// degenerate reports whether [begin, end) cannot be mapped onto lines.
func degenerate(begin, end float64) bool {
	w := end - begin
	return !(w > 0) || math.IsInf(w, 0)
}

// relocate prepares one axis for a frame: either a full reset or a price
// engine pass followed by redistribution of the recomputed runs.
func (z *Zoomer) relocate(lines []Line, r Range, isRow, reset bool) {
	begin, end := r.Min, r.Max
	if begin > end {
		begin = end
	}
	if reset || degenerate(begin, end) {
		initialize(lines, begin, end, isRow)
		return
	}
	flag := z.price.approximate(lines, begin, end)
	redistribute(lines, begin, end, flag)
}

// redistribute interpolates positions across every maximal run of lines
// flagged for recomputation and weights them for the scheduler. Runs that
// touch an edge are anchored on a virtual line one step before begin or at
// end, so a run covering the whole axis lands on the uniform grid.
func redistribute(lines []Line, begin, end float64, flag redistribution) {
	n := len(lines)
	step := (end - begin) / float64(n)
	for i := 0; i < n; {
		if !lines[i].Recalculate {
			i++
			continue
		}
		s := i
		for i < n && lines[i].Recalculate {
			i++
		}
		e := i

		var lo, hi float64
		if s == 0 {
			lo = begin - step
		} else {
			lo = lines[s-1].NewPosition
		}
		if e == n {
			hi = end
		} else {
			hi = lines[e].NewPosition
		}
		if lo > hi {
			if s == 0 {
				lo = hi
			} else {
				hi = lo
			}
		}

		delta := (hi - lo) / float64(e-s+1)
		for j := s; j < e; j++ {
			p := lo + float64(j-s+1)*delta
			line := &lines[j]
			line.NewPosition = p
			dist := math.Abs(line.OldPosition-p) / step
			if math.IsNaN(dist) {
				dist = 1
			}
			switch flag {
			case redistributeAnchored:
				line.Priority = 1 / (1 + dist)
			case redistributeOpenEdges:
				line.Priority = dist
			default:
				line.Priority = 1
			}
		}
	}
}
