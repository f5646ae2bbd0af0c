package voice

import (
	"testing"

	"github.com/npillmayer/notensatz/core"
	"github.com/npillmayer/notensatz/core/fraction"
	"github.com/npillmayer/notensatz/engine/modifier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type VoiceTestEnviron struct {
	suite.Suite
	quarter fraction.Fraction
	triplet fraction.Fraction
}

// listen for 'go test' command --> run test methods
func TestVoiceFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.voice")
	defer teardown()
	suite.Run(t, new(VoiceTestEnviron))
}

// run once, before test suite methods
func (env *VoiceTestEnviron) SetupSuite() {
	env.quarter = MustDuration("q")
	env.triplet = Tuplet(MustDuration("8"), 3, 2)
}

// --- Tests -----------------------------------------------------------------

func (env *VoiceTestEnviron) TestTotalTicks() {
	v := New(TimeSignature{NumBeats: 3, BeatValue: 4})
	env.Equal(fraction.Int(3*4096), v.TotalTicks())
	env.Equal(Strict, v.Mode())
	env.False(v.IsComplete())
}

func (env *VoiceTestEnviron) TestStrictOverflow() {
	v := New(TimeSignature{NumBeats: 2, BeatValue: 4})
	env.NoError(v.AddTickables(NewNote(env.quarter, 10), NewNote(env.quarter, 10)))
	env.True(v.IsComplete())
	err := v.AddTickable(NewNote(env.quarter, 10))
	env.Error(err)
	env.Equal(core.EINVALID, core.Code(err))
	env.Len(v.Tickables(), 2)
}

func (env *VoiceTestEnviron) TestSoftVoiceMayOverflow() {
	v := New(TimeSignature{NumBeats: 2, BeatValue: 4}).SetMode(Soft)
	for i := 0; i < 3; i++ {
		env.NoError(v.AddTickable(NewNote(env.quarter, 10)))
	}
	env.True(v.IsComplete())
	env.True(v.Overfull())
}

func (env *VoiceTestEnviron) TestTripletResolution() {
	v := New(TimeSignature{NumBeats: 1, BeatValue: 4})
	for i := 0; i < 3; i++ {
		env.NoError(v.AddTickable(NewNote(env.triplet, 10)))
	}
	env.Equal(int64(3), v.ResolutionMultiplier())
	env.True(v.IsComplete())
	env.True(v.TotalTicks().Equals(fraction.Int(4096)))
	env.Equal(env.triplet, v.SmallestTickCount())
}

func (env *VoiceTestEnviron) TestBarNotesTakeNoTime() {
	v := New(TimeSignature{NumBeats: 1, BeatValue: 4})
	env.NoError(v.AddTickables(NewBarNote(8), NewNote(env.quarter, 10)))
	env.True(v.IsComplete())
	env.Len(v.Tickables(), 2)
}

func (env *VoiceTestEnviron) TestSoftmax() {
	v := New(TimeSignature{})
	for i := 0; i < 4; i++ {
		env.NoError(v.AddTickable(NewNote(env.quarter, 10)))
	}
	env.InDelta(0.25, v.Softmax(4096), 1e-9)
	v2 := New(TimeSignature{})
	env.NoError(v2.AddTickables(NewNote(MustDuration("h"), 10),
		NewNote(env.quarter, 10), NewNote(env.quarter, 10)))
	half, quarter := v2.Softmax(8192), v2.Softmax(4096)
	env.Greater(half, quarter)
	env.Less(half/quarter, 2.0, "softmax should compress duration ratios")
	env.InDelta(1.0, half+2*quarter, 1e-9)
	v2.SetSoftmaxFactor(100)
	env.Greater(v2.Softmax(8192)/v2.Softmax(4096), half/quarter)
}

func (env *VoiceTestEnviron) TestSetStave() {
	staff := NewStaff(10, 300)
	n := NewNote(env.quarter, 10)
	v := New(TimeSignature{NumBeats: 2, BeatValue: 4})
	env.NoError(v.AddTickable(n))
	v.SetStave(staff)
	env.Equal(Stave(staff), n.Stave())
	m := NewNote(env.quarter, 10)
	env.NoError(v.AddTickable(m))
	env.Equal(Stave(staff), m.Stave())
}

// --- Plain tests -----------------------------------------------------------

func TestParseDuration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.voice")
	defer teardown()
	//
	for code, ticks := range map[string]int64{
		"w": 16384, "h": 8192, "q": 4096, "8": 2048, "16": 1024,
		"qd": 6144, "q..": 7168, "8r": 2048, "hd": 12288,
	} {
		d, err := ParseDuration(code)
		assert.NoError(t, err, code)
		assert.True(t, d.Equals(fraction.Int(ticks)), "duration %q is %s, expected %d", code, d, ticks)
	}
	_, err := ParseDuration("x")
	assert.Error(t, err)
}

func TestNoteMetrics(t *testing.T) {
	n := NewNote(MustDuration("q"), 10)
	n.PreFormat(modifier.Extents{})
	m := n.Metrics()
	assert.Equal(t, 12.0, m.Width)
	assert.Equal(t, 12.0, m.NotePx)
	//
	n = NewNote(MustDuration("q"), 10).SetDisplacedHeads(0, 10)
	n.PreFormat(modifier.Extents{LeftShift: 8, RightShift: 4, Width: 12})
	m = n.Metrics()
	assert.Equal(t, 32.0, m.Width)
	assert.Equal(t, 10.0, m.NotePx)
	assert.Equal(t, 8.0, m.ModLeftPx)
	assert.Equal(t, 10.0, m.RightDisplacedHeadPx)
}

func TestGhostAndBar(t *testing.T) {
	g := NewGhostNote(MustDuration("q"))
	g.PreFormat(modifier.Extents{})
	assert.Equal(t, Metrics{}, g.Metrics())
	assert.False(t, g.ShouldIgnoreTicks())
	b := NewBarNote(8)
	assert.True(t, b.ShouldIgnoreTicks())
	assert.Equal(t, 8.0, b.Metrics().Width)
	_, ok := b.TickContext()
	assert.False(t, ok)
	b.SetTickContext(42)
	tick, ok := b.TickContext()
	assert.True(t, ok)
	assert.Equal(t, int64(42), tick)
}
