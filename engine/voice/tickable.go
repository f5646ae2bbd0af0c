package voice

import (
	"github.com/npillmayer/notensatz/core/fraction"
	"github.com/npillmayer/notensatz/engine/modifier"
)

// Metrics describe the horizontal footprint of a pre-formatted tickable.
type Metrics struct {
	Width                float64 // total width, including modifiers
	GlyphWidth           float64
	NotePx               float64 // width of the note head, without modifiers
	ModLeftPx            float64 // modifier space left of the note head
	ModRightPx           float64 // modifier space right of the note head
	LeftDisplacedHeadPx  float64
	RightDisplacedHeadPx float64
	GlyphPx              float64
}

// Space is the spacing of a tickable as measured by the formatter's
// evaluation.
type Space struct {
	Used      float64 // distance to the next tickable of the voice
	Mean      float64 // mean used space of tickables of the same duration
	Deviation float64 // Mean - Used, positive if tighter than the mean
}

// Freedom is the slack to neighbouring glyphs.
type Freedom struct {
	Left  float64
	Right float64
}

// FormatterMetrics is written by the formatter's evaluation and read by
// tuning.
type FormatterMetrics struct {
	Duration   string
	Freedom    Freedom
	Space      Space
	Iterations int
}

// Stave is a staff the tickables are set on. Staves are compared by
// identity, so implementations should be pointer types.
type Stave interface {
	NoteStartX() float64
	NoteEndX() float64
}

// Tickable is anything occupying musical time and participating in
// horizontal layout. Implementations should be pointer types.
type Tickable interface {
	Ticks() fraction.Fraction
	ShouldIgnoreTicks() bool
	Modifiers() []modifier.Modifier
	PreFormat(mods modifier.Extents)
	Metrics() Metrics
	SetTickContext(tick int64)
	TickContext() (int64, bool)
	Stave() Stave
	SetStave(Stave)
	IsCenterAligned() bool
	SetCenterXShift(shift float64)
	CenterXShift() float64
	FormatterMetrics() *FormatterMetrics
}

// tickableBase implements the bookkeeping part of Tickable.
type tickableBase struct {
	ticks          fraction.Fraction
	ignoreTicks    bool
	stave          Stave
	tickContext    int64
	hasTickContext bool
	centerAligned  bool
	centerXShift   float64
	fm             FormatterMetrics
}

func (tb *tickableBase) Ticks() fraction.Fraction { return tb.ticks }

func (tb *tickableBase) ShouldIgnoreTicks() bool { return tb.ignoreTicks }

func (tb *tickableBase) Modifiers() []modifier.Modifier { return nil }

func (tb *tickableBase) SetTickContext(tick int64) {
	tb.tickContext = tick
	tb.hasTickContext = true
}

func (tb *tickableBase) TickContext() (int64, bool) {
	return tb.tickContext, tb.hasTickContext
}

func (tb *tickableBase) Stave() Stave { return tb.stave }

func (tb *tickableBase) SetStave(s Stave) { tb.stave = s }

func (tb *tickableBase) IsCenterAligned() bool { return tb.centerAligned }

func (tb *tickableBase) SetCenterXShift(shift float64) { tb.centerXShift = shift }

func (tb *tickableBase) CenterXShift() float64 { return tb.centerXShift }

func (tb *tickableBase) FormatterMetrics() *FormatterMetrics { return &tb.fm }
