package zoomer

// Move is a run of adjacent columns copied as one block. A zero Length
// terminates a table.
type Move struct {
	From, To, Length int
}

// prepareMove groups clean columns into runs whose index minus source is
// constant. Returns the number of entries written before the sentinel.
func (z *Zoomer) prepareMove() int {
	cols := z.columns
	s := 0
	for i := 0; i < len(cols); {
		if cols[i].Dirty {
			i++
			continue
		}
		m := Move{From: cols[i].Source, To: i, Length: 1}
		j := i + 1
		for ; j < len(cols); j++ {
			if cols[j].Dirty || j-cols[j].Source != m.To-m.From {
				break
			}
			m.Length++
		}
		z.moveTable[s] = m
		s++
		i = j
	}
	z.moveTable[s] = Move{}
	return s
}

// doMove copies the move table runs from the old buffer into every clean
// row of the new one, reading the row's source line.
func (z *Zoomer) doMove() int {
	w := z.raster.Width
	dst, src := z.raster.Pix, z.raster.old
	moved := 0
	for r := range z.rows {
		row := &z.rows[r]
		if row.Dirty {
			continue
		}
		newOff := r * w
		oldOff := row.Source * w
		for _, m := range z.moveTable {
			if m.Length == 0 {
				break
			}
			copy(dst[newOff+m.To:newOff+m.To+m.Length], src[oldOff+m.From:oldOff+m.From+m.Length])
			moved += m.Length
		}
	}
	return moved
}

// movePixels relocates all reusable pixels for the frame.
func (z *Zoomer) movePixels() int {
	z.prepareMove()
	return z.doMove()
}
