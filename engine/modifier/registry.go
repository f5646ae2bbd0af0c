package modifier

// FormatFunc places the modifiers of one category, updating state.
type FormatFunc func(members []Modifier, state *State)

type registryEntry struct {
	category Category
	format   FormatFunc
}

// registry lists the categories in the order they are formatted. Modifiers
// closest to the note head come first.
var registry = [...]registryEntry{
	{Parenthesis, formatSides(0)},
	{Dot, formatDots},
	{FretHandFinger, formatSides(fingerSpacing)},
	{Accidental, formatAccidentals},
	{Stroke, formatStrokes},
	{GraceNoteGroup, formatGraceNotes},
	{StringNumber, formatSides(fingerSpacing)},
	{Articulation, formatStacked},
	{Ornament, formatStacked},
	{Annotation, formatStacked},
	{ChordSymbol, formatStacked},
	{Bend, formatBends},
	{Vibrato, formatVibratos},
}

// Order returns the categories in formatting order.
func Order() []Category {
	cats := make([]Category, len(registry))
	for i, e := range registry {
		cats[i] = e.category
	}
	return cats
}

const (
	dotSpacing        = 1.0
	accidentalSpacing = 3.0
	fingerSpacing     = 2.0
	strokeSpacing     = 5.0
	graceNoteSpacing  = 4.0
	textLineHeight    = 1.0
)

func maxWidth(members []Modifier, pos ...Position) float64 {
	w := 0.0
	for _, m := range members {
		if len(pos) > 0 && !hasPosition(m, pos) {
			continue
		}
		if m.Width() > w {
			w = m.Width()
		}
	}
	return w
}

func hasPosition(m Modifier, pos []Position) bool {
	for _, p := range pos {
		if m.Position() == p {
			return true
		}
	}
	return false
}

// formatSides puts modifiers left or right of the note head, one column per
// side, widest member governs.
func formatSides(spacing float64) FormatFunc {
	return func(members []Modifier, state *State) {
		if w := maxWidth(members, Left); w > 0 {
			state.LeftShift += w + spacing
		}
		if w := maxWidth(members, Right); w > 0 {
			state.RightShift += w + spacing
		}
	}
}

// Dots of a chord are stacked vertically, so they occupy one column.
func formatDots(members []Modifier, state *State) {
	state.RightShift += maxWidth(members) + dotSpacing
}

// Accidentals are set in columns to the left of the note head, one column
// per accidental. Finding shared columns for non-colliding accidentals is
// up to the caller, which may hand in a single wider modifier.
func formatAccidentals(members []Modifier, state *State) {
	for _, m := range members {
		state.LeftShift += m.Width() + accidentalSpacing
	}
}

func formatStrokes(members []Modifier, state *State) {
	state.LeftShift += maxWidth(members) + strokeSpacing
}

func formatGraceNotes(members []Modifier, state *State) {
	for _, m := range members {
		state.LeftShift += m.Width() + graceNoteSpacing
	}
}

// formatStacked centers modifiers above or below the note and allocates
// text lines for them.
func formatStacked(members []Modifier, state *State) {
	w := maxWidth(members)
	state.LeftShift += w / 2
	state.RightShift += w / 2
	for _, m := range members {
		switch m.Position() {
		case Below:
			state.TextLine += textLineHeight
		default:
			state.TopTextLine += textLineHeight
		}
	}
}

func formatBends(members []Modifier, state *State) {
	for _, m := range members {
		state.RightShift += m.Width()
		state.TopTextLine += textLineHeight
	}
}

// A vibrato sits above a bend, if any, and does not widen the note.
func formatVibratos(members []Modifier, state *State) {
	state.TopTextLine += textLineHeight * float64(len(members))
}
