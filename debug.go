package zoomer

import "log/slog"

// debugLog prints frame stats when Config.Debug is set.
func (z *Zoomer) debugLog(s FrameStats) {
	if !z.cfg.Debug {
		return
	}
	Logger().Debug("frame",
		slog.Int("frame", s.Frame),
		slog.Int("reused", s.Reused),
		slog.Int("mirrored", s.Mirrored),
		slog.Int("computed", s.Computed),
		slog.Int("deferred", s.Deferred),
		slog.Int("formula", s.FormulaCalls),
		slog.Int("guessed", s.GuessedPixels),
		slog.Int("moved", s.MovedPixels),
		slog.Duration("elapsed", s.Elapsed),
		slog.Duration("fudge", s.Fudge),
		slog.Bool("full", s.FullReset),
	)
}

// debugCheckLinks panics when symmetry links are not pairwise consistent.
// Only called in debug mode.
func debugCheckLinks(axis string, lines []Line) {
	for i := range lines {
		l := &lines[i]
		if l.SymTo != NoLine && l.SymRef != NoLine {
			panic("zoomer debug: " + axis + " line is both mirror and donor")
		}
		if l.SymTo != NoLine && lines[l.SymTo].SymRef != i {
			panic("zoomer debug: " + axis + " mirror has no back-reference")
		}
		if l.SymRef != NoLine && lines[l.SymRef].SymTo != i {
			panic("zoomer debug: " + axis + " donor back-reference is stale")
		}
	}
}
