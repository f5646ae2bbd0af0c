package modifier

import "fmt"

// Category tags a kind of modifier.
type Category int8

const (
	NoCategory Category = iota
	Parenthesis
	Dot
	FretHandFinger
	Accidental
	Stroke
	GraceNoteGroup
	StringNumber
	Articulation
	Ornament
	Annotation
	ChordSymbol
	Bend
	Vibrato
	categoryCount
)

var categoryNames = [...]string{
	"none", "parenthesis", "dot", "fret-hand-finger", "accidental", "stroke",
	"grace-note-group", "string-number", "articulation", "ornament",
	"annotation", "chord-symbol", "bend", "vibrato",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Position is the side of a note head a modifier is attached to.
type Position int8

const (
	Left Position = iota
	Right
	Above
	Below
)

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	case Above:
		return "above"
	case Below:
		return "below"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Modifier is an auxiliary element attached to a note.
type Modifier interface {
	Category() Category
	Position() Position
	Width() float64
}

// Mark is a plain Modifier with a fixed width.
type Mark struct {
	Cat Category
	Pos Position
	W   float64
}

var _ Modifier = Mark{}

// NewMark creates a modifier of category c at position p, with width w.
func NewMark(c Category, p Position, w float64) Mark {
	return Mark{Cat: c, Pos: p, W: w}
}

func (m Mark) Category() Category { return m.Cat }
func (m Mark) Position() Position { return m.Pos }
func (m Mark) Width() float64     { return m.W }

func (m Mark) String() string {
	return fmt.Sprintf("%s[%s,%.1f]", m.Cat, m.Pos, m.W)
}
