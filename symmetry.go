package zoomer

import "math"

// prepareSymmetry links lines on the low side of mirror to lines on the
// high side whose reflection lands within searchRange pixels. Each pair has
// one donor supplying pixels and one mirror that is not computed. A line
// reused by the price engine is never turned into a mirror. Returns the
// number of links made.
func prepareSymmetry(lines []Line, begin, end, mirror float64) int {
	n := len(lines)
	step := (end - begin) / float64(n)
	if !(step > 0) || mirror < begin || mirror > end {
		return 0
	}
	symi := int(math.Floor((mirror - begin) / step))
	if symi < 0 || symi >= n {
		return 0
	}
	twice := 2 * mirror
	links := 0

	for i := max(0, 2*symi-n); i < symi; i++ {
		line := &lines[i]
		if line.SymTo != NoLine || line.SymRef != NoLine {
			continue
		}
		best := NoLine
		bestDist := step * searchRange
		center := 2*symi - i
		for j := -searchRange; j < searchRange; j++ {
			o := center + j
			if o <= symi || o >= n {
				continue
			}
			other := &lines[o]
			if other.SymTo != NoLine || other.SymRef != NoLine {
				continue
			}
			var moved int
			var p float64
			switch {
			case line.Recalculate:
				moved, p = i, twice-other.NewPosition
			case other.Recalculate:
				moved, p = o, twice-line.NewPosition
			default:
				continue
			}
			dist := math.Abs(p - lines[moved].NewPosition)
			if dist >= bestDist || !fitsBetween(lines, moved, p) {
				continue
			}
			best, bestDist = o, dist
		}
		if best == NoLine {
			continue
		}
		if line.Recalculate {
			linkMirror(lines, i, best, twice)
		} else {
			linkMirror(lines, best, i, twice)
		}
		links++
	}
	return links
}

// fitsBetween reports whether position p keeps line i strictly between its
// neighbours.
func fitsBetween(lines []Line, i int, p float64) bool {
	if i > 0 && p <= lines[i-1].NewPosition {
		return false
	}
	if i+1 < len(lines) && p >= lines[i+1].NewPosition {
		return false
	}
	return true
}

// linkMirror makes line m the reflection of donor d. The mirror inherits
// the donor's source and dirty state, so a reused donor yields a mirror the
// mover fills directly.
func linkMirror(lines []Line, m, d int, twice float64) {
	mirror, donor := &lines[m], &lines[d]
	mirror.SymTo = d
	donor.SymRef = m
	mirror.Recalculate = false
	mirror.NewPosition = twice - donor.NewPosition
	mirror.Dirty = donor.Dirty
	if donor.Recalculate {
		mirror.Source = d
	} else {
		mirror.Source = donor.Source
	}
}

// copyRows copies every clean donor row into its mirror.
func (z *Zoomer) copyRows() {
	w := z.raster.Width
	pix := z.raster.Pix
	twice := 2 * z.symmetry.Y
	for i := range z.rows {
		row := &z.rows[i]
		if row.SymTo == NoLine || z.rows[row.SymTo].Dirty {
			continue
		}
		donor := &z.rows[row.SymTo]
		copy(pix[i*w:(i+1)*w], pix[row.SymTo*w:(row.SymTo+1)*w])
		row.NewPosition = twice - donor.NewPosition
		row.Dirty = false
	}
}

// copyColumns copies every clean donor column into its mirror.
func (z *Zoomer) copyColumns() {
	w := z.raster.Width
	pix := z.raster.Pix
	twice := 2 * z.symmetry.X
	for i := range z.columns {
		col := &z.columns[i]
		if col.SymTo == NoLine || z.columns[col.SymTo].Dirty {
			continue
		}
		donor := &z.columns[col.SymTo]
		for off := 0; off < len(pix); off += w {
			pix[off+i] = pix[off+col.SymTo]
		}
		col.NewPosition = twice - donor.NewPosition
		col.Dirty = false
	}
}
