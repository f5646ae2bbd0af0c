package formatter

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/notensatz/core"
	"github.com/npillmayer/notensatz/core/fraction"
	"github.com/npillmayer/notensatz/engine/modifier"
	"github.com/npillmayer/notensatz/engine/voice"
)

// AlignmentContexts are the tick contexts of a formatting run, ordered by
// tick.
type AlignmentContexts struct {
	List                 []int64 // ticks in ascending order
	Map                  map[int64]*TickContext
	ResolutionMultiplier int64
}

// Len is the number of contexts.
func (ac *AlignmentContexts) Len() int {
	if ac == nil {
		return 0
	}
	return len(ac.List)
}

// At returns the i-th context in tick order.
func (ac *AlignmentContexts) At(i int) *TickContext {
	if i < 0 || i >= ac.Len() {
		return nil
	}
	return ac.Map[ac.List[i]]
}

// Next returns the context following the one at tick, or nil.
func (ac *AlignmentContexts) Next(tick int64) *TickContext {
	for i, t := range ac.List {
		if t == tick {
			return ac.At(i + 1)
		}
	}
	return nil
}

// Contexts returns all contexts in tick order.
func (ac *AlignmentContexts) Contexts() []*TickContext {
	cs := make([]*TickContext, ac.Len())
	for i := range cs {
		cs[i] = ac.At(i)
	}
	return cs
}

func tickComparator(a, b interface{}) int {
	x, y := a.(int64), b.(int64)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// ResolutionMultiplier checks that voices may be aligned and returns the
// least common multiple of their resolution multipliers. Voices must have
// the same total duration, and voices in strict mode must be complete.
func ResolutionMultiplier(voices []*voice.Voice) (int64, error) {
	if len(voices) == 0 {
		return 0, contractError(ErrBadArgument, core.EINVALID, "no voices to format")
	}
	for _, v := range voices {
		if v == nil {
			return 0, contractError(ErrBadArgument, core.EINVALID, "voice is nil")
		}
	}
	total := voices[0].TotalTicks()
	R := int64(1)
	for i, v := range voices {
		if !v.TotalTicks().Equals(total) {
			return 0, contractError(ErrTickMismatch, core.EMISMATCH,
				"voice %d has %s ticks, voice 0 has %s; voices should have same total note duration",
				i, v.TotalTicks(), total)
		}
	}
	for i, v := range voices {
		if v.Mode() == voice.Strict && !v.IsComplete() {
			return 0, contractError(ErrIncompleteVoice, core.EINCOMPLETE,
				"voice %d does not have enough notes", i)
		}
		R = fraction.LCM(R, v.ResolutionMultiplier())
	}
	return R, nil
}

// walk visits every tickable of every voice together with its integer tick
// on a grid with R units per tick. A tick off the grid means R does not
// match the voices, which is an internal error.
func walk(voices []*voice.Voice, R int64, visit func(vi int, t voice.Tickable, tick int64)) error {
	for vi, v := range voices {
		cursor := fraction.Must(0, R)
		for _, t := range v.Tickables() {
			tick, exact := cursor.Scaled(R)
			if !exact {
				err := core.Error(core.EINTERNAL,
					"tick %s of voice %d is off the grid of resolution %d", cursor, vi, R)
				tracer().Errorf("%v", err)
				return err
			}
			visit(vi, t, tick)
			cursor = cursor.Add(t.Ticks())
		}
	}
	return nil
}

type staveTick struct {
	stave voice.Stave
	tick  int64
}

// CreateModifierContexts groups the tickables of voices by stave and tick.
// Tickables of a group share a modifier context. Tickables without a stave
// are grouped by tick only. Tickables which already belong to a modifier
// context of the formatter are taken out of it first.
func (f *Formatter) CreateModifierContexts(voices []*voice.Voice) ([]*modifier.Context, error) {
	if len(voices) == 0 {
		return nil, nil
	}
	R, err := ResolutionMultiplier(voices)
	if err != nil {
		return nil, err
	}
	f.releaseModifierContexts(voices)
	groups := make(map[staveTick]int)
	created := []*modifier.Context{}
	err = walk(voices, R, func(vi int, t voice.Tickable, tick int64) {
		key := staveTick{stave: t.Stave(), tick: tick}
		inx, ok := groups[key]
		if !ok {
			inx = len(f.modifierContexts)
			groups[key] = inx
			f.modifierContexts = append(f.modifierContexts, modifier.NewContext())
			f.mcMembers = append(f.mcMembers, nil)
			created = append(created, f.modifierContexts[inx])
		}
		f.modifierContexts[inx].AddModifiers(t.Modifiers())
		f.mcMembers[inx] = append(f.mcMembers[inx], t)
		f.modifierOf[t] = inx
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("created %d modifier contexts for %d voices", len(created), len(voices))
	return created, nil
}

// releaseModifierContexts removes the tickables of voices from their modifier
// contexts. Contexts left without members are dropped, contexts keeping
// other members are rebuilt from the remaining members' modifiers.
func (f *Formatter) releaseModifierContexts(voices []*voice.Voice) {
	released := make(map[voice.Tickable]bool)
	for _, v := range voices {
		for _, t := range v.Tickables() {
			if _, ok := f.modifierOf[t]; ok {
				released[t] = true
			}
		}
	}
	if len(released) == 0 {
		return
	}
	contexts := make([]*modifier.Context, 0, len(f.modifierContexts))
	members := make([][]voice.Tickable, 0, len(f.mcMembers))
	modifierOf := make(map[voice.Tickable]int, len(f.modifierOf))
	for i, ms := range f.mcMembers {
		keep := make([]voice.Tickable, 0, len(ms))
		for _, t := range ms {
			if !released[t] {
				keep = append(keep, t)
			}
		}
		if len(keep) == 0 {
			continue
		}
		mc := f.modifierContexts[i]
		if len(keep) < len(ms) {
			mc = modifier.NewContext()
			for _, t := range keep {
				mc.AddModifiers(t.Modifiers())
			}
		}
		for _, t := range keep {
			modifierOf[t] = len(contexts)
		}
		contexts = append(contexts, mc)
		members = append(members, keep)
	}
	f.modifierContexts, f.mcMembers, f.modifierOf = contexts, members, modifierOf
}

func (f *Formatter) resetModifierContexts() {
	f.modifierContexts = nil
	f.mcMembers = nil
	f.modifierOf = make(map[voice.Tickable]int)
}

// JoinVoices lets the notes of voices which start at the same tick on the
// same stave share their modifiers, e.g. accidentals. Joining voices again
// replaces their previous modifier contexts.
//
// Voices joined explicitly are formatted with these contexts by the next
// call to Format. Otherwise Format joins all of its voices anew.
func (f *Formatter) JoinVoices(voices []*voice.Voice) error {
	if _, err := f.CreateModifierContexts(voices); err != nil {
		return err
	}
	f.explicitJoin = true
	return nil
}

func (f *Formatter) joined(voices []*voice.Voice) bool {
	for _, v := range voices {
		for _, t := range v.Tickables() {
			if _, ok := f.modifierOf[t]; !ok {
				return false
			}
		}
	}
	return true
}

func (f *Formatter) modifierContextOf(t voice.Tickable) *modifier.Context {
	if inx, ok := f.modifierOf[t]; ok {
		return f.modifierContexts[inx]
	}
	return nil
}

// ModifierContexts returns the modifier contexts currently held by the
// formatter.
func (f *Formatter) ModifierContexts() []*modifier.Context { return f.modifierContexts }

// CreateTickContexts groups the tickables of all voices by tick. Previous
// tick contexts of the formatter are dropped.
func (f *Formatter) CreateTickContexts(voices []*voice.Voice) (*AlignmentContexts, error) {
	R, err := ResolutionMultiplier(voices)
	if err != nil {
		return nil, err
	}
	ticks := treemap.NewWith(tickComparator)
	voiceTicks := make([][]int64, len(voices))
	err = walk(voices, R, func(vi int, t voice.Tickable, tick int64) {
		var tc *TickContext
		if c, found := ticks.Get(tick); found {
			tc = c.(*TickContext)
		} else {
			tc = NewTickContext(tick).SetPadding(f.opts.TickContextPadding)
			ticks.Put(tick, tc)
		}
		tc.addTickable(t, vi, f.modifierContextOf(t))
		voiceTicks[vi] = append(voiceTicks[vi], tick)
	})
	if err != nil {
		return nil, err
	}
	ac := &AlignmentContexts{
		List:                 make([]int64, 0, ticks.Size()),
		Map:                  make(map[int64]*TickContext, ticks.Size()),
		ResolutionMultiplier: R,
	}
	it := ticks.Iterator()
	for it.Next() {
		tick := it.Key().(int64)
		ac.List = append(ac.List, tick)
		ac.Map[tick] = it.Value().(*TickContext)
	}
	f.contexts = ac
	f.voices = voices
	f.voiceTicks = voiceTicks
	f.hasMinTotalWidth = false
	f.minWidthPadding = 0
	tracer().Debugf("created %d tick contexts, resolution multiplier %d", ac.Len(), R)
	return ac, nil
}
