package formatter

import (
	"testing"

	"github.com/npillmayer/notensatz/engine/modifier"
	"github.com/npillmayer/notensatz/engine/voice"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTickContextMaxTicks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.formatter")
	defer teardown()
	//
	q, h := voice.MustDuration("q"), voice.MustDuration("h")
	tc := NewTickContext(0)
	tc.AddTickable(voice.NewNote(q, 10), 0)
	half := voice.NewNote(h, 10)
	tc.AddTickable(half, 1)
	tc.AddTickable(voice.NewNote(h, 10), 2) // tie, first one wins
	tc.AddTickable(voice.NewBarNote(4), 3)
	assert.Equal(t, h, tc.MaxTicks())
	least, ok := tc.MinTicks()
	assert.True(t, ok)
	assert.Equal(t, q, least)
	mt, vi, ok := tc.MaxTickable()
	assert.True(t, ok)
	assert.Same(t, half, mt)
	assert.Equal(t, 1, vi)
	assert.Len(t, tc.Tickables(), 4)
	assert.Equal(t, []int{0, 1, 2, 3}, tc.Voices())
	tick, ok := half.TickContext()
	assert.True(t, ok)
	assert.Equal(t, int64(0), tick)
}

func TestTickContextAggregatesMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.formatter")
	defer teardown()
	//
	q := voice.MustDuration("q")
	sharp := voice.NewNote(q, 10).AddModifier(modifier.NewMark(modifier.Accidental, modifier.Left, 8))
	mc := modifier.NewContext().AddModifiers(sharp.Modifiers())
	chord := voice.NewNote(q, 12).SetDisplacedHeads(0, 5)
	tc := NewTickContext(4096)
	tc.addTickable(sharp, 0, mc)
	tc.AddTickable(chord, 1)
	tc.PreFormat()
	m := tc.Metrics()
	assert.Equal(t, 14.0, m.NotePx)
	assert.Equal(t, 11.0, m.ModLeftPx)
	assert.Equal(t, 11.0, m.TotalLeftPx)
	assert.Equal(t, 5.0, m.TotalRightPx)
	assert.Equal(t, 5.0, m.RightDisplacedHeadPx)
	assert.Equal(t, 32.0, tc.Width())
	tc.SetPadding(0)
	assert.Equal(t, 30.0, tc.Width())
}

func TestTickContextPreFormatIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.formatter")
	defer teardown()
	//
	q := voice.MustDuration("q")
	tc := NewTickContext(0).AddTickable(voice.NewNote(q, 10), 0)
	w := tc.PreFormat().Width()
	assert.Equal(t, w, tc.PreFormat().Width())
	tc.AddTickable(voice.NewNote(q, 20), 1)
	assert.Equal(t, 24.0, tc.PreFormat().Width())
}

func TestEmptyTickContextHasWidth(t *testing.T) {
	tc := NewTickContext(0).PreFormat()
	assert.Equal(t, 2.0, tc.Width())
	_, _, ok := tc.MaxTickable()
	assert.False(t, ok)
	_, ok = tc.MinTicks()
	assert.False(t, ok)
}

func TestTickContextXRoundTrip(t *testing.T) {
	tc := NewTickContext(0)
	for _, p := range [][2]float64{{0, 0}, {1.5, -0.25}, {104.25, 1e-7}, {-3.3, 7.7}, {1e6, 0.1}} {
		b, o := p[0], p[1]
		tc.SetXBase(b)
		for i := 0; i < 100; i++ {
			tc.SetXOffset(o)
		}
		assert.Equal(t, b+o, tc.X())
		assert.Equal(t, b, tc.XBase())
		assert.Equal(t, o, tc.XOffset())
	}
	tc.SetX(42)
	assert.Equal(t, 42.0, tc.X())
	assert.Equal(t, 0.0, tc.XOffset())
}
