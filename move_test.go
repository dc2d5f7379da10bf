package zoomer

import "testing"

// setLines marks lines clean with the given sources; NoLine means dirty.
func setLines(lines []Line, sources ...int) {
	for i, s := range sources {
		lines[i].Source = s
		lines[i].Dirty = s == NoLine
		lines[i].Recalculate = s == NoLine
	}
}

func TestPrepareMove(t *testing.T) {
	z := newTestZoomer(t, 8, 4, lowIter())
	setLines(z.columns, 2, 3, NoLine, 4, 5, 7, NoLine, NoLine)

	n := z.prepareMove()
	want := []Move{{From: 2, To: 0, Length: 2}, {From: 4, To: 3, Length: 2}, {From: 7, To: 5, Length: 1}}
	if n != len(want) {
		t.Fatalf("entries = %d, want %d: %v", n, len(want), z.moveTable[:n])
	}
	for i, m := range want {
		if z.moveTable[i] != m {
			t.Errorf("entry %d = %+v, want %+v", i, z.moveTable[i], m)
		}
	}
	if z.moveTable[n].Length != 0 {
		t.Error("table not terminated")
	}
}

func TestPrepareMoveCoversCleanColumns(t *testing.T) {
	tests := []struct {
		name    string
		sources []int
	}{
		{"all clean", []int{0, 1, 2, 3, 4, 5}},
		{"all dirty", []int{NoLine, NoLine, NoLine, NoLine, NoLine, NoLine}},
		{"alternating", []int{0, NoLine, 2, NoLine, 4, NoLine}},
		{"every gap", []int{0, 2, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := newTestZoomer(t, 6, 2, lowIter())
			setLines(z.columns, tt.sources...)
			n := z.prepareMove()
			covered := 0
			for _, m := range z.moveTable[:n] {
				covered += m.Length
			}
			dirty := 0
			for _, c := range z.columns {
				if c.Dirty {
					dirty++
				}
			}
			if covered+dirty != len(z.columns) {
				t.Errorf("moved %d + dirty %d != %d columns", covered, dirty, len(z.columns))
			}
		})
	}
}

func TestDoMove(t *testing.T) {
	z := newTestZoomer(t, 4, 3, lowIter())
	setLines(z.columns, 1, 2, NoLine, 3)
	setLines(z.rows, 2, NoLine, 0)

	old := z.raster.Previous()
	for i := range old {
		old[i] = uint32(100 + i)
	}
	for i := range z.raster.Pix {
		z.raster.Pix[i] = 0
	}
	if moved := z.movePixels(); moved != 6 {
		t.Errorf("moved = %d, want 6", moved)
	}

	at := func(x, y int) uint32 { return uint32(100 + y*4 + x) }
	want := [][]uint32{
		{at(1, 2), at(2, 2), 0, at(3, 2)},
		{0, 0, 0, 0},
		{at(1, 0), at(2, 0), 0, at(3, 0)},
	}
	for y, row := range want {
		for x, v := range row {
			if got := z.raster.At(x, y); got != v {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, v)
			}
		}
	}
}
