package formatter

import (
	"fmt"

	"github.com/npillmayer/notensatz/core/fraction"
	"github.com/npillmayer/notensatz/engine/modifier"
	"github.com/npillmayer/notensatz/engine/voice"
)

// Metrics are the aggregated metrics of all tickables within a tick context.
// Every value is the maximum over the members.
type Metrics struct {
	NotePx               float64 // widest note head incl. stem and flag
	GlyphPx              float64
	ModLeftPx            float64 // space for modifiers left of the note
	ModRightPx           float64 // space for modifiers right of the note
	LeftDisplacedHeadPx  float64
	RightDisplacedHeadPx float64
	TotalLeftPx          float64 // max of ModLeftPx + LeftDisplacedHeadPx
	TotalRightPx         float64 // max of ModRightPx + RightDisplacedHeadPx
}

// TickContext holds all tickables of all voices which start at the same tick.
// Tickables aligned in a tick context share a common x position.
//
// Tick contexts are identified by an integer tick on the common grid of a
// formatting run. Members keep the index of their voice, which is used to
// find the preceding note of a voice during justification.
type TickContext struct {
	tick          int64
	tickables     []voice.Tickable
	voices        []int               // voice index per member
	mods          []*modifier.Context // modifier context per member, may be nil
	byVoice       map[int]voice.Tickable
	centerAligned []voice.Tickable
	maxTicks      fraction.Fraction
	minTicks      fraction.Fraction
	hasMinTicks   bool
	maxTickable   int // index into tickables, -1 if none
	metrics       Metrics
	width         float64
	padding       float64
	xBase         float64
	xOffset       float64
	freedom       voice.Freedom
	preFormatted  bool
}

// NewTickContext creates an empty tick context for a tick.
func NewTickContext(tick int64) *TickContext {
	return &TickContext{
		tick:        tick,
		byVoice:     make(map[int]voice.Tickable),
		maxTicks:    fraction.Zero,
		maxTickable: -1,
		padding:     1,
	}
}

// AddTickable adds a tickable of a voice without a modifier context.
func (tc *TickContext) AddTickable(t voice.Tickable, voiceIndex int) *TickContext {
	return tc.addTickable(t, voiceIndex, nil)
}

func (tc *TickContext) addTickable(t voice.Tickable, voiceIndex int, mc *modifier.Context) *TickContext {
	if t == nil {
		return tc
	}
	if !t.ShouldIgnoreTicks() {
		ticks := t.Ticks()
		if ticks.GreaterThan(tc.maxTicks) {
			tc.maxTicks = ticks.Clone()
			tc.maxTickable = len(tc.tickables)
		}
		if !tc.hasMinTicks || ticks.LessThan(tc.minTicks) {
			tc.minTicks = ticks.Clone()
			tc.hasMinTicks = true
		}
	}
	t.SetTickContext(tc.tick)
	tc.tickables = append(tc.tickables, t)
	tc.voices = append(tc.voices, voiceIndex)
	tc.mods = append(tc.mods, mc)
	tc.byVoice[voiceIndex] = t
	if t.IsCenterAligned() {
		tc.centerAligned = append(tc.centerAligned, t)
	}
	tc.preFormatted = false
	return tc
}

// PreFormat lets every member lay out its modifiers, then aggregates the
// members' metrics. Calling it more than once has no effect unless new
// tickables have been added.
func (tc *TickContext) PreFormat() *TickContext {
	if tc.preFormatted {
		return tc
	}
	m := Metrics{}
	for i, t := range tc.tickables {
		ext := modifier.Extents{}
		if tc.mods[i] != nil {
			ext = tc.mods[i].Extents()
		}
		t.PreFormat(ext)
		tm := t.Metrics()
		m.NotePx = max(m.NotePx, tm.NotePx)
		m.GlyphPx = max(m.GlyphPx, tm.GlyphPx)
		m.ModLeftPx = max(m.ModLeftPx, tm.ModLeftPx)
		m.ModRightPx = max(m.ModRightPx, tm.ModRightPx)
		m.LeftDisplacedHeadPx = max(m.LeftDisplacedHeadPx, tm.LeftDisplacedHeadPx)
		m.RightDisplacedHeadPx = max(m.RightDisplacedHeadPx, tm.RightDisplacedHeadPx)
		m.TotalLeftPx = max(m.TotalLeftPx, tm.ModLeftPx+tm.LeftDisplacedHeadPx)
		m.TotalRightPx = max(m.TotalRightPx, tm.ModRightPx+tm.RightDisplacedHeadPx)
	}
	tc.metrics = m
	tc.width = m.NotePx + m.TotalLeftPx + m.TotalRightPx
	tc.preFormatted = true
	tracer().Debugf("tick context %d: width = %.2f", tc.tick, tc.width)
	return tc
}

// TickID is the tick of this context on the grid of its formatting run.
func (tc *TickContext) TickID() int64 { return tc.tick }

// Tickables returns the members in insertion order.
func (tc *TickContext) Tickables() []voice.Tickable { return tc.tickables }

// TickablesByVoice returns the members keyed by voice index. If a voice
// contributes more than one tickable, the last one wins.
func (tc *TickContext) TickablesByVoice() map[int]voice.Tickable { return tc.byVoice }

// TickableForVoice returns the member of voice vi, if any.
func (tc *TickContext) TickableForVoice(vi int) (voice.Tickable, bool) {
	t, ok := tc.byVoice[vi]
	return t, ok
}

// Voices returns the voice index of every member, parallel to Tickables.
func (tc *TickContext) Voices() []int { return tc.voices }

func (tc *TickContext) CenterAlignedTickables() []voice.Tickable { return tc.centerAligned }

func (tc *TickContext) MaxTicks() fraction.Fraction { return tc.maxTicks }

// MinTicks returns the shortest duration of all members. If no member
// counts ticks, false is returned.
func (tc *TickContext) MinTicks() (fraction.Fraction, bool) {
	return tc.minTicks, tc.hasMinTicks
}

// MaxTickable returns the member with the longest duration together with its
// voice index. Of members with equal duration, the first one added wins.
func (tc *TickContext) MaxTickable() (voice.Tickable, int, bool) {
	if tc.maxTickable < 0 {
		return nil, -1, false
	}
	return tc.tickables[tc.maxTickable], tc.voices[tc.maxTickable], true
}

func (tc *TickContext) Metrics() Metrics { return tc.metrics }

// Width is the width of the widest member including modifiers, plus padding
// on either side.
func (tc *TickContext) Width() float64 { return tc.width + 2*tc.padding }

func (tc *TickContext) Padding() float64 { return tc.padding }

func (tc *TickContext) SetPadding(p float64) *TickContext {
	tc.padding = p
	return tc
}

// X is the position of the context, XBase + XOffset.
func (tc *TickContext) X() float64 { return tc.xBase + tc.xOffset }

// SetX moves the context to x, resetting the offset.
func (tc *TickContext) SetX(x float64) *TickContext {
	tc.xBase = x
	tc.xOffset = 0
	return tc
}

func (tc *TickContext) XBase() float64 { return tc.xBase }

func (tc *TickContext) SetXBase(x float64) *TickContext {
	tc.xBase = x
	return tc
}

func (tc *TickContext) XOffset() float64 { return tc.xOffset }

func (tc *TickContext) SetXOffset(dx float64) *TickContext {
	tc.xOffset = dx
	return tc
}

// Freedom is the space to the neighbouring contexts, as of the last
// evaluation of a layout.
func (tc *TickContext) Freedom() voice.Freedom { return tc.freedom }

func (tc *TickContext) move(shift float64, prev, next *TickContext) {
	tc.SetX(tc.X() + shift)
	tc.freedom.Left += shift
	tc.freedom.Right -= shift
	if prev != nil {
		prev.freedom.Right += shift
	}
	if next != nil {
		next.freedom.Left -= shift
	}
}

func (tc *TickContext) String() string {
	return fmt.Sprintf("TickContext[%d|x=%.2f|%d tickables]", tc.tick, tc.X(), len(tc.tickables))
}
