package voice

import (
	"math"

	"github.com/npillmayer/notensatz/core"
	"github.com/npillmayer/notensatz/core/fraction"
)

// Resolution is the number of ticks of a whole note.
const Resolution int64 = 16384

// DefaultSoftmaxFactor is the base of the softmax curve for new voices.
const DefaultSoftmaxFactor = 10.0

// Mode tells how strictly a voice has to match its time signature.
type Mode int8

const (
	// Strict voices must be filled up exactly and must not overflow.
	Strict Mode = iota + 1
	// Soft voices may be incomplete and may overflow.
	Soft
	// Full voices must not overflow, and count as complete only if filled up.
	Full
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Soft:
		return "soft"
	case Full:
		return "full"
	}
	return "mode?"
}

// TimeSignature determines the nominal duration of a voice.
// A zero Resolution means Resolution ticks per whole note.
type TimeSignature struct {
	NumBeats   int
	BeatValue  int
	Resolution int64
}

// TotalTicks returns NumBeats * (Resolution / BeatValue).
func (ts TimeSignature) TotalTicks() fraction.Fraction {
	res := ts.Resolution
	if res == 0 {
		res = Resolution
	}
	return fraction.Must(int64(ts.NumBeats)*res, int64(ts.BeatValue)).Simplify()
}

// Voice is an ordered sequence of tickables.
type Voice struct {
	ts                   TimeSignature
	mode                 Mode
	tickables            []Tickable
	totalTicks           fraction.Fraction
	ticksUsed            fraction.Fraction
	smallestTickCount    fraction.Fraction
	resolutionMultiplier int64
	softmaxFactor        float64
	expTicksUsed         float64
	stave                Stave
}

// New creates a strict voice. A zero time signature means 4/4.
func New(ts TimeSignature) *Voice {
	if ts.NumBeats <= 0 {
		ts.NumBeats = 4
	}
	if ts.BeatValue <= 0 {
		ts.BeatValue = 4
	}
	total := ts.TotalTicks()
	return &Voice{
		ts:                   ts,
		mode:                 Strict,
		totalTicks:           total,
		ticksUsed:            fraction.Zero,
		smallestTickCount:    total,
		resolutionMultiplier: 1,
		softmaxFactor:        DefaultSoftmaxFactor,
	}
}

// SetMode sets the voice mode.
func (v *Voice) SetMode(m Mode) *Voice {
	v.mode = m
	return v
}

func (v *Voice) Mode() Mode { return v.mode }

func (v *Voice) TimeSignature() TimeSignature { return v.ts }

// AddTickable appends a tickable. Strict and full voices refuse tickables
// which would make them exceed their total ticks.
func (v *Voice) AddTickable(t Tickable) error {
	if !t.ShouldIgnoreTicks() {
		ticks := t.Ticks()
		used := v.ticksUsed.Add(ticks)
		if (v.mode == Strict || v.mode == Full) && used.GreaterThan(v.totalTicks) {
			tracer().Errorf("voice overflow: %s > %s", used, v.totalTicks)
			return core.Error(core.EINVALID, "too many ticks: %s exceeds %s", used, v.totalTicks)
		}
		v.ticksUsed = used
		v.expTicksUsed = 0
		if ticks.LessThan(v.smallestTickCount) {
			v.smallestTickCount = ticks
		}
		v.resolutionMultiplier = v.ticksUsed.Den
		// expand the total to the denominator of the ticks used
		v.totalTicks = v.totalTicks.Add(fraction.Must(0, v.ticksUsed.Den))
	}
	if v.stave != nil {
		t.SetStave(v.stave)
	}
	v.tickables = append(v.tickables, t)
	return nil
}

// AddTickables appends tickables, stopping at the first error.
func (v *Voice) AddTickables(ts ...Tickable) error {
	for _, t := range ts {
		if err := v.AddTickable(t); err != nil {
			return err
		}
	}
	return nil
}

func (v *Voice) Tickables() []Tickable { return v.tickables }

func (v *Voice) TotalTicks() fraction.Fraction { return v.totalTicks }

func (v *Voice) TicksUsed() fraction.Fraction { return v.ticksUsed }

func (v *Voice) SmallestTickCount() fraction.Fraction { return v.smallestTickCount }

// ResolutionMultiplier is the denominator of the ticks used, i.e. the
// subdivision needed to express every tick position of the voice as an
// integer.
func (v *Voice) ResolutionMultiplier() int64 { return v.resolutionMultiplier }

// IsComplete is true for soft voices, and for the others if they are
// filled up.
func (v *Voice) IsComplete() bool {
	if v.mode == Strict || v.mode == Full {
		return v.ticksUsed.Equals(v.totalTicks)
	}
	return true
}

// Overfull is true if the voice uses more ticks than its time signature
// allows. Only soft voices may get into this state.
func (v *Voice) Overfull() bool {
	return v.ticksUsed.GreaterThan(v.totalTicks)
}

// SetStave attaches the voice and all of its tickables to a stave.
func (v *Voice) SetStave(s Stave) *Voice {
	v.stave = s
	for _, t := range v.tickables {
		t.SetStave(s)
	}
	return v
}

func (v *Voice) Stave() Stave { return v.stave }

// SetSoftmaxFactor sets the base of the softmax curve.
func (v *Voice) SetSoftmaxFactor(factor float64) *Voice {
	if factor != v.softmaxFactor {
		v.softmaxFactor = factor
		v.expTicksUsed = 0
	}
	return v
}

func (v *Voice) SoftmaxFactor() float64 { return v.softmaxFactor }

func (v *Voice) recalculateExpTicksUsed() float64 {
	total := v.ticksUsed.Value()
	sum := 0.0
	for _, t := range v.tickables {
		sum += math.Pow(v.softmaxFactor, t.Ticks().Value()/total)
	}
	return sum
}

// Softmax returns factor^(ticks/ticksUsed), normalized by the sum of these
// weights over all tickables of the voice. Long notes get more space than
// short ones, but the ratio is compressed compared to the ratio of their
// durations.
func (v *Voice) Softmax(ticks float64) float64 {
	total := v.ticksUsed.Value()
	if total == 0 {
		return 0
	}
	if v.expTicksUsed == 0 {
		v.expTicksUsed = v.recalculateExpTicksUsed()
	}
	return math.Pow(v.softmaxFactor, ticks/total) / v.expTicksUsed
}
