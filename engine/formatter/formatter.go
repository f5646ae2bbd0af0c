package formatter

import (
	"math"

	"github.com/npillmayer/notensatz/core"
	"github.com/npillmayer/notensatz/engine/modifier"
	"github.com/npillmayer/notensatz/engine/voice"
)

// Formatter aligns the tickables of voices and justifies them to a width.
//
// A formatter keeps the contexts of its last formatting run, so clients may
// inspect positions and call Tune afterwards. Modifier contexts created by
// JoinVoices accumulate until the formatter is discarded.
type Formatter struct {
	opts             Options
	voices           []*voice.Voice
	voiceTicks       [][]int64 // tick of every tickable, per voice
	contexts         *AlignmentContexts
	modifierContexts []*modifier.Context
	modifierOf       map[voice.Tickable]int // index into modifierContexts
	mcMembers        [][]voice.Tickable     // members per modifier context
	explicitJoin     bool                   // JoinVoices called since last Format
	minTotalWidth    float64
	minWidthPadding  float64
	hasMinTotalWidth bool
	justifyWidth     float64
	totalCost        float64
	totalShift       float64
	lossHistory      []float64
	contextGaps      ContextGaps
	durationStats    map[string]DurationStat
	padding          PaddingReport
}

// PaddingReport tells how the end-of-line padding of the last justification
// was determined.
type PaddingReport struct {
	PaddingMax float64
	PaddingMin float64
	Overfull   bool // last voice is overfull, padding has been forced
	Iterations int  // rounds of the padding loop
}

// FormatParams are optional parameters for Format.
type FormatParams struct {
	Stave voice.Stave // if set, attached to all voices before formatting
}

// NewFormatter creates a formatter. opts may be nil, in which case default
// options are used.
func NewFormatter(opts *Options) *Formatter {
	f := &Formatter{
		modifierOf:    make(map[voice.Tickable]int),
		durationStats: make(map[string]DurationStat),
	}
	if opts == nil {
		f.opts = DefaultOptions()
	} else {
		f.opts = opts.withDefaults()
	}
	return f
}

// Options returns the options the formatter is configured with.
func (f *Formatter) Options() Options { return f.opts }

// Format aligns and justifies voices to justifyWidth. A non-positive
// justifyWidth packs the contexts as tightly as possible.
//
// Unless voices have been joined by JoinVoices since the last call to
// Format, modifier contexts are rebuilt from the current modifiers of all
// tickables.
func (f *Formatter) Format(voices []*voice.Voice, justifyWidth float64, params *FormatParams) error {
	if _, err := ResolutionMultiplier(voices); err != nil {
		return err
	}
	for _, v := range voices {
		v.SetSoftmaxFactor(f.opts.SoftmaxFactor)
		if params != nil && params.Stave != nil {
			v.SetStave(params.Stave)
		}
	}
	if !f.explicitJoin || !f.joined(voices) {
		f.resetModifierContexts()
		if _, err := f.CreateModifierContexts(voices); err != nil {
			return err
		}
	}
	f.explicitJoin = false
	if _, err := f.CreateTickContexts(voices); err != nil {
		return err
	}
	_, err := f.PreFormat(justifyWidth)
	return err
}

// FormatToStave formats voices to fit between the note start and end
// positions of a stave, leaving room for stave padding and end padding.
func (f *Formatter) FormatToStave(voices []*voice.Voice, stave voice.Stave, params *FormatParams) error {
	if stave == nil {
		return contractError(ErrBadArgument, core.EINVALID, "no stave to format to")
	}
	justifyWidth := stave.NoteEndX() - stave.NoteStartX() - f.opts.StavePadding - f.opts.EndPaddingMax
	tracer().Debugf("formatting to stave, justify width = %.2f", justifyWidth)
	p := FormatParams{}
	if params != nil {
		p = *params
	}
	p.Stave = stave
	return f.Format(voices, justifyWidth, &p)
}

// PreFormat positions the tick contexts created by CreateTickContexts.
//
// The first pass packs the contexts tightly, yielding the minimum total
// width. If justifyWidth is positive, a second pass distributes the width
// according to note durations. PreFormat returns the cost of the resulting
// layout, as computed by Evaluate.
func (f *Formatter) PreFormat(justifyWidth float64) (float64, error) {
	ac := f.contexts
	if ac == nil {
		return 0, contractError(ErrNoTickContexts, core.EMISSING, "no tick contexts to pre-format")
	}
	contexts := ac.Contexts()
	// pass 1: pack
	x, shift, totalTicks := 0.0, 0.0, 0.0
	for _, tc := range contexts {
		tc.PreFormat()
		m := tc.Metrics()
		totalTicks += tc.MaxTicks().Value()
		x = x + shift + m.TotalLeftPx
		tc.SetX(x)
		shift = tc.Width() - m.TotalLeftPx
	}
	f.minTotalWidth = x + shift
	f.minWidthPadding = 0
	f.hasMinTotalWidth = true
	f.padding = PaddingReport{}
	tracer().Debugf("packed %d contexts, min total width = %.2f", len(contexts), f.minTotalWidth)
	if justifyWidth <= 0 || len(contexts) < 2 {
		f.justifyWidth = f.minTotalWidth
		return f.Evaluate(), nil
	}
	// pass 2: justify
	first, last := contexts[0], contexts[len(contexts)-1]
	adjusted := justifyWidth - last.Metrics().NotePx - last.Metrics().TotalRightPx - first.Metrics().TotalLeftPx
	j := justifier{f: f, contexts: contexts, totalTicks: totalTicks, adjusted: adjusted}
	j.prepareGlobalSoftmax()
	target := adjusted
	actual := j.shiftToIdealDistances(j.idealDistances(target))
	pMax, pMin := j.paddings(target)
	iterations := 0
	for iterations < f.opts.MaxIterations && (actual > adjusted-pMin || actual < adjusted-pMax) {
		target -= actual - (adjusted - pMin)
		pMax, pMin = j.paddings(target)
		actual = j.shiftToIdealDistances(j.idealDistances(target))
		iterations++
	}
	f.padding.PaddingMax, f.padding.PaddingMin = pMax, pMin
	f.padding.Iterations = iterations
	f.justifyWidth = justifyWidth
	tracer().Debugf("justified to %.2f in %d iterations: actual = %.2f, padding = [%.2f,%.2f]",
		justifyWidth, iterations, actual, pMin, pMax)
	return f.Evaluate(), nil
}

// MinTotalWidth returns the minimum width of the last pre-formatted set of
// tick contexts.
func (f *Formatter) MinTotalWidth() (float64, error) {
	if !f.hasMinTotalWidth {
		return 0, contractError(ErrNoMinTotalWidth, core.EMISSING,
			"need to create tick contexts and pre-format before asking for the minimum total width")
	}
	return f.minTotalWidth + f.minWidthPadding, nil
}

// PreCalculateMinTotalWidth estimates the width voices need, adding extra
// room if notes of different voices do not align, or if widths or durations
// of the notes differ a lot. The result is cached until tick contexts are
// created anew.
func (f *Formatter) PreCalculateMinTotalWidth(voices []*voice.Voice) (float64, error) {
	if f.hasMinTotalWidth {
		return f.minTotalWidth + f.minWidthPadding, nil
	}
	if _, err := f.CreateTickContexts(voices); err != nil {
		return 0, err
	}
	unaligned := 0
	var widths, durations []float64
	var wsum, dsum, minTotal float64
	for _, tc := range f.contexts.Contexts() {
		tc.PreFormat()
		if len(tc.Tickables()) < len(voices) {
			unaligned++
		}
		for _, t := range tc.Tickables() {
			w, d := t.Metrics().Width, t.Ticks().Value()
			widths = append(widths, w)
			durations = append(durations, d)
			wsum += w
			dsum += d
		}
		minTotal += tc.Width()
	}
	f.minTotalWidth = minTotal
	f.hasMinTotalWidth = true
	if len(widths) == 0 {
		f.minWidthPadding = 0
		return minTotal, nil
	}
	n := float64(len(widths))
	wpads := normalizedSpread(widths, wsum, n)
	dpads := normalizedSpread(durations, dsum, n)
	padmax := max(wpads, dpads) * float64(f.contexts.Len()) * f.opts.UnalignedNotePadding
	unalignedPad := f.opts.UnalignedNotePadding * float64(unaligned)
	f.minWidthPadding = max(unalignedPad, padmax)
	tracer().Debugf("min total width = %.2f + %.2f, %d unaligned contexts",
		minTotal, f.minWidthPadding, unaligned)
	return f.minTotalWidth + f.minWidthPadding, nil
}

// normalizedSpread is the standard deviation of values divided by their mean.
func normalizedSpread(values []float64, sum, n float64) float64 {
	avg := 1 / n
	if sum > 0 {
		avg = sum / n
	}
	variance := 0.0
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	return math.Sqrt(variance/n) / avg
}

// SimpleFormat places tickables from left to right, starting at x, each in a
// tick context of its own and separated by paddingBetween. It does not need
// voices and is meant for tests and for displaying single glyphs.
func SimpleFormat(tickables []voice.Tickable, x, paddingBetween float64) []*TickContext {
	contexts := make([]*TickContext, 0, len(tickables))
	for i, t := range tickables {
		mc := modifier.NewContext().AddModifiers(t.Modifiers())
		tc := NewTickContext(int64(i)).addTickable(t, 0, mc).PreFormat()
		m := tc.Metrics()
		tc.SetX(x + m.TotalLeftPx)
		x += tc.Width() + m.TotalRightPx + paddingBetween
		contexts = append(contexts, tc)
	}
	return contexts
}

// TickContexts returns the contexts of the last formatting run.
func (f *Formatter) TickContexts() *AlignmentContexts { return f.contexts }

// TickContext returns the context at tick, or nil.
func (f *Formatter) TickContext(tick int64) *TickContext {
	if f.contexts == nil {
		return nil
	}
	return f.contexts.Map[tick]
}

// JustifyWidth is the width of the last justification. For packed layouts it
// is the minimum total width.
func (f *Formatter) JustifyWidth() float64 { return f.justifyWidth }

// Padding reports on the end padding of the last justification.
func (f *Formatter) Padding() PaddingReport { return f.padding }

// TotalCost is the cost of the last evaluation.
func (f *Formatter) TotalCost() float64 { return f.totalCost }

// TotalShift is the accumulated shift of the last call to Tune.
func (f *Formatter) TotalShift() float64 { return f.totalShift }

// LossHistory returns the cost of every evaluation since the formatter was
// created or the history was reset.
func (f *Formatter) LossHistory() []float64 {
	h := make([]float64, len(f.lossHistory))
	copy(h, f.lossHistory)
	return h
}

func (f *Formatter) ResetLossHistory() { f.lossHistory = f.lossHistory[:0] }
