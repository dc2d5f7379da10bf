package zoomer

import "testing"

func TestPrepareSymmetryLinksRecomputedPairs(t *testing.T) {
	// Positions -1, -0.75 ... 0.75 with the mirror at 0.
	lines := uniformLines(8, -1, 1)
	links := prepareSymmetry(lines, -1, 1, 0)
	if links != 3 {
		t.Fatalf("links = %d, want 3", links)
	}
	for _, pair := range [][2]int{{1, 7}, {2, 6}, {3, 5}} {
		m, d := pair[0], pair[1]
		if lines[m].SymTo != d || lines[d].SymRef != m {
			t.Errorf("line %d: SymTo = %d, donor %d SymRef = %d", m, lines[m].SymTo, d, lines[d].SymRef)
		}
		if lines[m].Recalculate {
			t.Errorf("mirror %d still flagged for recomputation", m)
		}
		if !lines[m].Dirty {
			t.Errorf("mirror %d of a recomputed donor is clean", m)
		}
		if lines[m].NewPosition != -lines[d].NewPosition {
			t.Errorf("mirror %d at %v, want %v", m, lines[m].NewPosition, -lines[d].NewPosition)
		}
	}
	if lines[0].SymTo != NoLine || lines[4].SymTo != NoLine {
		t.Error("lines without a reflection in view were linked")
	}
	debugCheckLinks("row", lines)
}

func TestPrepareSymmetryKeepsReusedLines(t *testing.T) {
	lines := uniformLines(8, -1, 1)
	for i := 1; i <= 3; i++ {
		lines[i].Recalculate = false
		lines[i].Dirty = false
		lines[i].Source = i + 2
	}
	links := prepareSymmetry(lines, -1, 1, 0)
	if links != 3 {
		t.Fatalf("links = %d, want 3", links)
	}
	for i := 1; i <= 3; i++ {
		if lines[i].SymTo != NoLine {
			t.Errorf("reused line %d became a mirror of %d", i, lines[i].SymTo)
		}
		m := lines[i].SymRef
		if m == NoLine {
			t.Fatalf("reused line %d donates to nothing", i)
		}
		if lines[m].Source != lines[i].Source || lines[m].Dirty {
			t.Errorf("mirror %d: source %d dirty %v, want donor source %d clean",
				m, lines[m].Source, lines[m].Dirty, lines[i].Source)
		}
	}
	debugCheckLinks("row", lines)
}

func TestPrepareSymmetrySkips(t *testing.T) {
	tests := []struct {
		name   string
		mirror float64
		reuse  bool
	}{
		{"mirror outside view", 5, false},
		{"every line reused", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := uniformLines(8, -1, 1)
			if tt.reuse {
				for i := range lines {
					lines[i].Recalculate = false
				}
			}
			if links := prepareSymmetry(lines, -1, 1, tt.mirror); links != 0 {
				t.Errorf("links = %d, want 0", links)
			}
		})
	}
}

func TestPrepareSymmetryRejectsMisfits(t *testing.T) {
	lines := uniformLines(8, -1, 1)
	// The only free partner of line 3 reflects past line 4.
	lines[3].NewPosition = -0.3
	lines[4].NewPosition = -0.28
	if links := prepareSymmetry(lines, -1, 1, 0); links != 2 {
		t.Fatalf("links = %d, want 2", links)
	}
	if lines[3].SymTo != NoLine || lines[5].SymRef != NoLine {
		t.Errorf("line 3 linked to %d across its neighbour", lines[3].SymTo)
	}
	for i := range lines {
		l := lines[i]
		if l.SymTo == NoLine {
			continue
		}
		if !fitsBetween(lines, i, l.NewPosition) {
			t.Errorf("mirror %d at %v breaks ordering", i, l.NewPosition)
		}
	}
}

func TestMirrorCopyBack(t *testing.T) {
	p := lowIter()
	z := newTestZoomer(t, 16, 12, p)
	s := z.DrawFrame(true)
	if s.Mirrored == 0 {
		t.Fatal("no mirrored lines with the mirror in view")
	}
	for i, row := range z.rows {
		if row.SymTo == NoLine {
			continue
		}
		d := row.SymTo
		if row.NewPosition != -z.rows[d].NewPosition {
			t.Errorf("mirror row %d at %v, donor at %v", i, row.NewPosition, z.rows[d].NewPosition)
		}
		for x := 0; x < z.raster.Width; x++ {
			if z.raster.At(x, i) != z.raster.At(x, d) {
				t.Fatalf("mirror row %d differs from donor %d at x=%d", i, d, x)
			}
		}
	}
	checkExact(t, z)
}
