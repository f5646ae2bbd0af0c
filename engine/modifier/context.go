package modifier

// State is threaded through the format functions of all categories. Every
// category starts where the previous one left off, so the result depends on
// the order of the registry.
type State struct {
	LeftShift   float64
	RightShift  float64
	TextLine    float64 // next free text line below the stave
	TopTextLine float64 // next free text line above the stave
}

// Extents is what a note needs to know about its modifiers.
type Extents struct {
	LeftShift  float64
	RightShift float64
	Width      float64
}

// Context collects the modifiers of notes starting at the same tick on the
// same stave.
type Context struct {
	members      [categoryCount][]Modifier
	state        State
	width        float64
	preFormatted bool
}

// NewContext creates an empty modifier context.
func NewContext() *Context {
	return &Context{}
}

// AddMember adds a modifier. Modifiers with an unknown category are ignored.
func (mc *Context) AddMember(m Modifier) *Context {
	c := m.Category()
	if c <= NoCategory || c >= categoryCount {
		tracer().Errorf("modifier %v has unknown category, ignored", m)
		return mc
	}
	mc.members[c] = append(mc.members[c], m)
	mc.preFormatted = false
	return mc
}

// AddModifiers adds all modifiers of a note.
func (mc *Context) AddModifiers(mods []Modifier) *Context {
	for _, m := range mods {
		mc.AddMember(m)
	}
	return mc
}

// Members returns the modifiers of category c.
func (mc *Context) Members(c Category) []Modifier {
	if c <= NoCategory || c >= categoryCount {
		return nil
	}
	return mc.members[c]
}

// Size returns the number of modifiers in the context.
func (mc *Context) Size() int {
	n := 0
	for _, m := range mc.members {
		n += len(m)
	}
	return n
}

// PreFormat runs the format function of every category, in registry order.
// Repeated calls are no-ops until a member is added.
func (mc *Context) PreFormat() {
	if mc.preFormatted {
		return
	}
	mc.state = State{}
	for _, entry := range registry {
		members := mc.members[entry.category]
		if len(members) == 0 {
			continue
		}
		entry.format(members, &mc.state)
		tracer().Debugf("modifier context: formatted %d %s, state = %+v",
			len(members), entry.category, mc.state)
	}
	mc.width = mc.state.LeftShift + mc.state.RightShift
	mc.preFormatted = true
}

// State returns the accumulated state after PreFormat.
func (mc *Context) State() State {
	return mc.state
}

// Width is LeftShift + RightShift.
func (mc *Context) Width() float64 {
	return mc.width
}

// Extents pre-formats the context if necessary and returns its extents.
func (mc *Context) Extents() Extents {
	mc.PreFormat()
	return Extents{
		LeftShift:  mc.state.LeftShift,
		RightShift: mc.state.RightShift,
		Width:      mc.width,
	}
}
