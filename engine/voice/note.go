package voice

import (
	"fmt"

	"github.com/npillmayer/notensatz/core/fraction"
	"github.com/npillmayer/notensatz/engine/modifier"
)

// MinNoteHeadPadding is added to notes without any modifiers, so that bare
// note heads never touch.
const MinNoteHeadPadding = 2.0

// Note is a note or rest with a single glyph, optional displaced note heads
// (for chords with seconds) and modifiers.
type Note struct {
	tickableBase
	glyphWidth           float64
	leftDisplacedHeadPx  float64
	rightDisplacedHeadPx float64
	modifiers            []modifier.Modifier
	mods                 modifier.Extents
	width                float64
	preFormatted         bool
}

var _ Tickable = (*Note)(nil)

// NewNote creates a note of duration d with a note head of width glyphWidth.
func NewNote(d fraction.Fraction, glyphWidth float64) *Note {
	n := &Note{glyphWidth: glyphWidth}
	n.ticks = d
	return n
}

// AddModifier attaches a modifier. It has to be called before the note is
// joined with other voices.
func (n *Note) AddModifier(m modifier.Modifier) *Note {
	n.modifiers = append(n.modifiers, m)
	n.preFormatted = false
	return n
}

// SetDisplacedHeads sets the width of note heads displaced to the left or
// right of the stem.
func (n *Note) SetDisplacedHeads(left, right float64) *Note {
	n.leftDisplacedHeadPx = left
	n.rightDisplacedHeadPx = right
	n.preFormatted = false
	return n
}

// SetCenterAligned marks a note to be centered within the measure, as is
// done with whole-measure rests.
func (n *Note) SetCenterAligned(b bool) *Note {
	n.centerAligned = b
	return n
}

// Modifiers returns the attached modifiers.
func (n *Note) Modifiers() []modifier.Modifier { return n.modifiers }

// PreFormat calculates the width of the note from its glyph, its displaced
// heads and the extents of its modifier context.
func (n *Note) PreFormat(mods modifier.Extents) {
	if n.preFormatted && n.mods == mods {
		return
	}
	padding := 0.0
	if mods.Width == 0 {
		padding = MinNoteHeadPadding
	}
	n.mods = mods
	n.width = n.glyphWidth + n.leftDisplacedHeadPx + n.rightDisplacedHeadPx + padding + mods.Width
	n.preFormatted = true
}

// Metrics returns the metrics calculated by PreFormat.
func (n *Note) Metrics() Metrics {
	return Metrics{
		Width:      n.width,
		GlyphWidth: n.glyphWidth,
		NotePx: n.width - n.mods.LeftShift - n.mods.RightShift -
			n.leftDisplacedHeadPx - n.rightDisplacedHeadPx,
		ModLeftPx:            n.mods.LeftShift,
		ModRightPx:           n.mods.RightShift,
		LeftDisplacedHeadPx:  n.leftDisplacedHeadPx,
		RightDisplacedHeadPx: n.rightDisplacedHeadPx,
		GlyphPx:              n.glyphWidth,
	}
}

func (n *Note) String() string {
	return fmt.Sprintf("note(%s)", n.ticks)
}

// --- Bar lines -------------------------------------------------------------

// BarNote is a bar line within a voice. It takes space, but no time.
type BarNote struct {
	tickableBase
	width float64
}

var _ Tickable = (*BarNote)(nil)

// NewBarNote creates a bar line of the given width.
func NewBarNote(width float64) *BarNote {
	b := &BarNote{width: width}
	b.ticks = fraction.Zero
	b.ignoreTicks = true
	return b
}

// PreFormat is a no-op, bar lines have a fixed width.
func (b *BarNote) PreFormat(modifier.Extents) {}

func (b *BarNote) Metrics() Metrics {
	return Metrics{
		Width:      b.width,
		GlyphWidth: b.width,
		NotePx:     b.width,
		GlyphPx:    b.width,
	}
}

func (b *BarNote) String() string {
	return "bar"
}

// --- Ghost notes -----------------------------------------------------------

// GhostNote takes time, but is invisible and has no width. Ghost notes are
// used to fill up voices which have nothing to say for a while.
type GhostNote struct {
	tickableBase
}

var _ Tickable = (*GhostNote)(nil)

// NewGhostNote creates an invisible note of duration d.
func NewGhostNote(d fraction.Fraction) *GhostNote {
	g := &GhostNote{}
	g.ticks = d
	return g
}

func (g *GhostNote) PreFormat(modifier.Extents) {}

func (g *GhostNote) Metrics() Metrics { return Metrics{} }

func (g *GhostNote) String() string {
	return fmt.Sprintf("ghost(%s)", g.ticks)
}
