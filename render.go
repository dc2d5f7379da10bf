package zoomer

// cleanWithin returns the nearest clean line to i in direction dir (±1)
// no more than guessRange lines away, or NoLine.
func cleanWithin(lines []Line, i, dir int) int {
	for j := i + dir; j >= 0 && j < len(lines) && (j-i)*dir <= guessRange; j += dir {
		if !lines[j].Dirty {
			return j
		}
	}
	return NoLine
}

// eval computes one pixel through the fractal parameters.
func (z *Zoomer) eval(re, im float64) uint32 {
	z.stats.FormulaCalls++
	return z.params.Pixel(re, im)
}

// renderRow computes the clean-column pixels of row. With solid guessing on
// and clean rows within reach above and below, a pixel whose left, up,
// down and four diagonal neighbours agree is copied instead of evaluated.
func (z *Zoomer) renderRow(row *Line) {
	w := z.raster.Width
	pix := z.raster.Pix
	cols := z.columns
	off := row.Index * w
	im := row.NewPosition

	up := cleanWithin(z.rows, row.Index, -1)
	down := cleanWithin(z.rows, row.Index, 1)
	if !z.cfg.SolidGuess || up == NoLine || down == NoLine {
		for k := range cols {
			if !cols[k].Dirty {
				pix[off+k] = z.eval(cols[k].NewPosition, im)
			}
		}
		z.finish(row)
		return
	}

	offU, offD := up*w, down*w
	left := NoLine
	for k := range cols {
		if cols[k].Dirty {
			continue
		}
		if left != NoLine && k-left <= guessRange {
			if right := cleanWithin(cols, k, 1); right != NoLine {
				n := pix[off+left]
				if n == pix[offU+k] && n == pix[offD+k] &&
					n == pix[offU+left] && n == pix[offU+right] &&
					n == pix[offD+left] && n == pix[offD+right] {
					pix[off+k] = n
					z.stats.GuessedPixels++
					left = k
					continue
				}
			}
		}
		pix[off+k] = z.eval(cols[k].NewPosition, im)
		left = k
	}
	z.finish(row)
}

// renderColumn is renderRow transposed.
func (z *Zoomer) renderColumn(col *Line) {
	w := z.raster.Width
	pix := z.raster.Pix
	rows := z.rows
	c := col.Index
	re := col.NewPosition

	left := cleanWithin(z.columns, c, -1)
	right := cleanWithin(z.columns, c, 1)
	if !z.cfg.SolidGuess || left == NoLine || right == NoLine {
		for k := range rows {
			if !rows[k].Dirty {
				pix[k*w+c] = z.eval(re, rows[k].NewPosition)
			}
		}
		z.finish(col)
		return
	}

	up := NoLine
	for k := range rows {
		if rows[k].Dirty {
			continue
		}
		if up != NoLine && k-up <= guessRange {
			if down := cleanWithin(rows, k, 1); down != NoLine {
				offU, offK, offD := up*w, k*w, down*w
				n := pix[offU+c]
				if n == pix[offK+left] && n == pix[offK+right] &&
					n == pix[offU+left] && n == pix[offU+right] &&
					n == pix[offD+left] && n == pix[offD+right] {
					pix[offK+c] = n
					z.stats.GuessedPixels++
					up = k
					continue
				}
			}
		}
		pix[k*w+c] = z.eval(re, rows[k].NewPosition)
		up = k
	}
	z.finish(col)
}

// finish marks a rendered line clean. It becomes its own source.
func (z *Zoomer) finish(l *Line) {
	l.Source = l.Index
	l.Recalculate = false
	l.Dirty = false
	z.stats.Computed++
}
