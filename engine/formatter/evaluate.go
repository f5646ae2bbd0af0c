package formatter

import (
	"math"
)

// Gap is the free space between the glyphs of two adjacent tick contexts.
type Gap struct {
	X1, X2 float64
}

// ContextGaps are the gaps between all adjacent tick contexts, as of the
// last evaluation.
type ContextGaps struct {
	Total float64
	Gaps  []Gap
}

// DurationStat is the space used by notes of a duration.
type DurationStat struct {
	Mean  float64
	Count int
}

// Evaluate calculates the cost of the current layout. Notes of equal
// duration should use similar space; the cost is the root of the summed
// squared deviations of every note from the mean of its duration.
//
// Evaluate records for every tickable the space it uses, the mean and
// deviation for its duration, and the free space to its neighbours. The cost
// is appended to the loss history.
func (f *Formatter) Evaluate() float64 {
	contexts := f.contexts.Contexts()
	if len(contexts) == 0 {
		return 0
	}
	f.contextGaps = ContextGaps{}
	for i := 1; i < len(contexts); i++ {
		prev, tc := contexts[i-1], contexts[i]
		pm, m := prev.Metrics(), tc.Metrics()
		insideRightEdge := prev.X() + pm.NotePx + pm.TotalRightPx
		insideLeftEdge := tc.X() - m.TotalLeftPx
		gap := insideLeftEdge - insideRightEdge
		f.contextGaps.Total += gap
		f.contextGaps.Gaps = append(f.contextGaps.Gaps, Gap{X1: insideRightEdge, X2: insideLeftEdge})
		tc.freedom.Left = gap
		prev.freedom.Right = gap
	}
	stats := make(map[string]DurationStat)
	for vi, v := range f.voices {
		tickables := v.Tickables()
		for i, t := range tickables {
			x := f.contexts.Map[f.voiceTicks[vi][i]].X()
			m, fm := t.Metrics(), t.FormatterMetrics()
			leftNoteEdge := x + m.NotePx + m.ModRightPx + m.RightDisplacedHeadPx
			var space float64
			if i < len(tickables)-1 {
				next := tickables[i+1]
				nx := f.contexts.Map[f.voiceTicks[vi][i+1]].X()
				nm := next.Metrics()
				rightNoteEdge := nx - nm.ModLeftPx - nm.LeftDisplacedHeadPx
				space = rightNoteEdge - leftNoteEdge
				fm.Space.Used = nx - x
				next.FormatterMetrics().Freedom.Left = space
			} else {
				space = f.justifyWidth - leftNoteEdge
				fm.Space.Used = f.justifyWidth - x
			}
			fm.Freedom.Right = space
			duration := t.Ticks().Simplify().String()
			if s, ok := stats[duration]; ok {
				s.Count++
				s.Mean = (s.Mean + fm.Space.Used) / 2
				stats[duration] = s
			} else {
				stats[duration] = DurationStat{Mean: fm.Space.Used, Count: 1}
			}
		}
	}
	f.durationStats = stats
	totalDeviation := 0.0
	for _, v := range f.voices {
		for _, t := range v.Tickables() {
			fm := t.FormatterMetrics()
			fm.Duration = t.Ticks().Simplify().String()
			fm.Space.Mean = stats[fm.Duration].Mean
			fm.Space.Deviation = fm.Space.Mean - fm.Space.Used
			fm.Iterations++
			totalDeviation += fm.Space.Deviation * fm.Space.Deviation
		}
	}
	f.totalCost = math.Sqrt(totalDeviation)
	f.lossHistory = append(f.lossHistory, f.totalCost)
	tracer().Debugf("layout cost = %.3f", f.totalCost)
	return f.totalCost
}

// Tune shifts tick contexts to decrease the cost of the layout, using the
// results of the last evaluation.
//
// The cost of a context is the negated sum of its tickables' deviations.
// As a deviation is Mean - Used, a positive cost means the notes of the
// context use more space than the mean of their durations (too loose), and
// the following context is pulled left, bounded by the context's right
// freedom. A negative cost means the notes are too tight, and the following
// context is pushed right, bounded by its own right freedom. This is the
// inverse of the convention where deviations are Used - Mean and a
// positive cost denotes a tight context; with that convention tuning
// increases the cost. Shifts are damped by alpha. A non-positive alpha
// selects the configured default.
//
// Tune returns the cost of the tuned layout.
func (f *Formatter) Tune(alpha float64) float64 {
	contexts := f.contexts.Contexts()
	if len(contexts) == 0 {
		return 0
	}
	if alpha <= 0 {
		alpha = f.opts.TuningAlpha
	}
	shift := 0.0
	f.totalShift = 0
	for i, tc := range contexts {
		var prev, next *TickContext
		if i > 0 {
			prev = contexts[i-1]
		}
		if i < len(contexts)-1 {
			next = contexts[i+1]
		}
		tc.move(shift, prev, next)
		cost := 0.0
		for _, t := range tc.Tickables() {
			cost -= t.FormatterMetrics().Space.Deviation
		}
		if cost > 0 {
			shift = -math.Min(tc.freedom.Right, math.Abs(cost))
		} else if cost < 0 {
			if next != nil {
				shift = math.Min(next.freedom.Right, math.Abs(cost))
			} else {
				shift = 0
			}
		}
		shift *= alpha
		f.totalShift += shift
	}
	tracer().Debugf("tuned layout, total shift = %.3f", f.totalShift)
	return f.Evaluate()
}

// ContextGaps returns the gaps between tick contexts of the last evaluation.
func (f *Formatter) ContextGaps() ContextGaps { return f.contextGaps }

// DurationStats returns the space statistics per duration of the last
// evaluation, keyed by the simplified duration, e.g. "4096/1".
func (f *Formatter) DurationStats() map[string]DurationStat { return f.durationStats }
