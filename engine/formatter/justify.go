package formatter

import (
	"math"

	"github.com/npillmayer/notensatz/engine/voice"
)

// justifier runs the second pass of PreFormat.
type justifier struct {
	f           *Formatter
	contexts    []*TickContext
	totalTicks  float64 // sum of max ticks of all contexts
	adjusted    float64 // justify width without the glyph extents at both ends
	expTicksSum float64 // denominator of the global softmax
}

// distance is the ideal distance of a context to the context holding the
// preceding note of one of its voices.
type distance struct {
	expected         float64
	maxNegativeShift float64
	from             *TickContext
	found            bool
}

func (j *justifier) prepareGlobalSoftmax() {
	if !j.f.opts.GlobalSoftmax || j.totalTicks <= 0 {
		return
	}
	for _, tc := range j.contexts {
		j.expTicksSum += math.Pow(j.f.opts.SoftmaxFactor, tc.MaxTicks().Value()/j.totalTicks)
	}
}

// idealDistances computes for every context how far it should be from its
// predecessor, if the notes of a voice got a share of target according to
// their durations.
func (j *justifier) idealDistances(target float64) []distance {
	dists := make([]distance, len(j.contexts))
	maxCompression := j.f.opts.MaxCompression.Of(j.adjusted)
	for i := 1; i < len(j.contexts); i++ {
		tc := j.contexts[i]
		for k := i - 1; k >= 0; k-- {
			back := j.contexts[k]
			d, ok := j.distanceTo(tc, back, target)
			if !ok {
				continue
			}
			prev := j.contexts[i-1]
			d.maxNegativeShift = math.Min(d.maxNegativeShift, tc.X()-(prev.X()+maxCompression))
			dists[i] = d
			break
		}
	}
	return dists
}

// distanceTo matches the voices of tc against the voices of back. If they
// share a voice, the ideal distance is calculated from the longest note in
// back among the shared voices.
func (j *justifier) distanceTo(tc, back *TickContext, target float64) (distance, bool) {
	var backTickable voice.Tickable
	backVoice := -1
	maxTicks := 0.0
	maxNegativeShift := math.Inf(1)
	for _, vi := range tc.Voices() {
		bt, ok := back.TickableForVoice(vi)
		if !ok {
			continue
		}
		if ticks := bt.Ticks().Value(); backTickable == nil || ticks > maxTicks {
			backTickable, backVoice, maxTicks = bt, vi, ticks
		}
		t, _ := tc.TickableForVoice(vi)
		tm, bm := t.Metrics(), bt.Metrics()
		insideLeftEdge := tc.X() - (tm.ModLeftPx + tm.LeftDisplacedHeadPx)
		insideRightEdge := back.X() + bm.NotePx + bm.ModRightPx + bm.RightDisplacedHeadPx
		maxNegativeShift = math.Min(maxNegativeShift, insideLeftEdge-insideRightEdge)
	}
	if backTickable == nil {
		return distance{}, false
	}
	d := distance{
		maxNegativeShift: maxNegativeShift,
		from:             back,
		found:            true,
	}
	if j.f.opts.GlobalSoftmax && j.expTicksSum > 0 {
		d.expected = math.Pow(j.f.opts.SoftmaxFactor, maxTicks/j.totalTicks) /
			j.expTicksSum * target
	} else {
		d.expected = j.f.voices[backVoice].Softmax(maxTicks) * target
	}
	return d, true
}

// shiftToIdealDistances moves the contexts left to right, accumulating the
// difference between ideal and actual distances. Moving left is limited by
// the maximum negative shift of a context. It returns the resulting width
// from the first to the last context.
func (j *justifier) shiftToIdealDistances(dists []distance) float64 {
	spaceAccum := 0.0
	centerX := j.adjusted / 2
	for i, tc := range j.contexts {
		if i > 0 {
			if d := dists[i]; d.found {
				errorPx := d.from.X() + d.expected - (tc.X() + spaceAccum)
				if errorPx > 0 {
					spaceAccum += errorPx
				} else if errorPx < 0 {
					spaceAccum -= math.Min(d.maxNegativeShift, -errorPx)
				}
			}
			tc.SetX(tc.X() + spaceAccum)
		}
		for _, t := range tc.CenterAlignedTickables() {
			t.SetCenterXShift(centerX - tc.X())
		}
	}
	return j.contexts[len(j.contexts)-1].X() - j.contexts[0].X()
}

// paddings calculates the window for the padding after the last note.
// Usually this is a fixed range, but if the last note is long, it will get
// more space than the default maximum. If the voice of the last note is
// overfull, its softmax is not reliable and the padding is forced.
func (j *justifier) paddings(target float64) (pMax, pMin float64) {
	endMax, endMin := j.f.opts.EndPaddingMax, j.f.opts.EndPaddingMin
	pMax = endMax
	last := j.contexts[len(j.contexts)-1]
	if t, vi, ok := last.MaxTickable(); ok {
		v := j.f.voices[vi]
		if v.Overfull() {
			j.f.padding.Overfull = true
			pMax = 2 * endMax
		} else {
			lastTickablePadding := v.Softmax(last.MaxTicks().Value())*target -
				(t.Metrics().Width + j.f.opts.StavePadding)
			if 2*endMax < lastTickablePadding {
				pMax = lastTickablePadding
			}
		}
	}
	return pMax, pMax - (endMax - endMin)
}
