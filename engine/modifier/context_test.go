package modifier

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEmptyContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.modifier")
	defer teardown()
	//
	mc := NewContext()
	ext := mc.Extents()
	assert.Equal(t, Extents{}, ext)
	assert.Equal(t, 0, mc.Size())
}

func TestRegistryOrder(t *testing.T) {
	order := Order()
	assert.Equal(t, Parenthesis, order[0])
	assert.Equal(t, Vibrato, order[len(order)-1])
	seen := make(map[Category]bool)
	for _, c := range order {
		assert.False(t, seen[c], "category %s registered twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, int(categoryCount)-1)
}

func TestShiftsAccumulate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.modifier")
	defer teardown()
	//
	mc := NewContext()
	mc.AddMember(NewMark(Accidental, Left, 8))
	mc.AddMember(NewMark(Accidental, Left, 6))
	mc.AddMember(NewMark(Dot, Right, 3))
	mc.AddMember(NewMark(Annotation, Above, 20))
	mc.PreFormat()
	st := mc.State()
	// accidentals: (8+3)+(6+3), annotation: 20/2
	assert.InDelta(t, 30.0, st.LeftShift, 1e-9)
	// dot: 3+1, annotation: 20/2
	assert.InDelta(t, 14.0, st.RightShift, 1e-9)
	assert.InDelta(t, 1.0, st.TopTextLine, 1e-9)
	assert.InDelta(t, 44.0, mc.Width(), 1e-9)
}

func TestPreFormatIsIdempotent(t *testing.T) {
	mc := NewContext()
	mc.AddMember(NewMark(Stroke, Left, 4))
	mc.PreFormat()
	first := mc.State()
	mc.PreFormat()
	assert.Equal(t, first, mc.State())
	mc.AddMember(NewMark(Stroke, Left, 6))
	mc.PreFormat()
	assert.InDelta(t, 11.0, mc.State().LeftShift, 1e-9)
}

func TestUnknownCategoryIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.modifier")
	defer teardown()
	//
	mc := NewContext()
	mc.AddMember(NewMark(NoCategory, Left, 10))
	assert.Equal(t, 0, mc.Size())
	assert.Nil(t, mc.Members(Category(99)))
}
