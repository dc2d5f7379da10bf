package zoomer

// fillNeighbor picks the clean line that stands in for the dirty run
// [i, k): the right neighbour k when it exists and is closer to the run
// start than the left neighbour i-1, otherwise the left one. Returns NoLine
// when the run spans the whole axis.
func fillNeighbor(lines []Line, i, k int) int {
	left := i - 1
	if k < len(lines) && (left < 0 || lines[i].NewPosition-lines[left].NewPosition > lines[k].NewPosition-lines[i].NewPosition) {
		return k
	}
	if left < 0 {
		return NoLine
	}
	return left
}

// dirtyRun returns the end of the dirty run starting at i.
func dirtyRun(lines []Line, i int) int {
	k := i + 1
	for k < len(lines) && lines[k].Dirty {
		k++
	}
	return k
}

// prepareFill builds the column fill table. Filled columns take their
// neighbour's position and count as clean, while staying flagged for
// recomputation.
func (z *Zoomer) prepareFill() int {
	cols := z.columns
	s := 0
	for i := 0; i < len(cols); i++ {
		if !cols[i].Dirty {
			continue
		}
		k := dirtyRun(cols, i)
		from := fillNeighbor(cols, i, k)
		if from == NoLine {
			i = k - 1
			continue
		}
		z.fillTable[s] = Move{From: from, To: i, Length: k - i}
		s++
		for j := i; j < k; j++ {
			cols[j].NewPosition = cols[from].NewPosition
			cols[j].Dirty = false
		}
		i = k - 1
	}
	z.fillTable[s] = Move{}
	return s
}

// fillRow applies the column fill table inside row r.
func (z *Zoomer) fillRow(r int) {
	off := r * z.raster.Width
	pix := z.raster.Pix
	for _, f := range z.fillTable {
		if f.Length == 0 {
			break
		}
		v := pix[off+f.From]
		for t := off + f.To; t < off+f.To+f.Length; t++ {
			pix[t] = v
		}
	}
}

// doFill applies column fills to clean rows and copies a neighbouring row
// into every dirty row.
func (z *Zoomer) doFill() {
	w := z.raster.Width
	pix := z.raster.Pix
	rows := z.rows
	for i := 0; i < len(rows); i++ {
		if !rows[i].Dirty {
			z.fillRow(i)
			continue
		}
		k := dirtyRun(rows, i)
		from := fillNeighbor(rows, i, k)
		if from == NoLine {
			i = k - 1
			continue
		}
		// The left neighbour has been filled already, the right one not yet.
		if from == k {
			z.fillRow(from)
		}
		for j := i; j < k; j++ {
			copy(pix[j*w:(j+1)*w], pix[from*w:(from+1)*w])
			rows[j].NewPosition = rows[from].NewPosition
			rows[j].Dirty = false
		}
		i = k - 1
	}
}

// fill replaces every dirty pixel with a copy of a nearby clean one.
func (z *Zoomer) fill() {
	z.prepareFill()
	z.doFill()
}
