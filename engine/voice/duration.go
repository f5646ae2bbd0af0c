package voice

import (
	"strings"

	"github.com/npillmayer/notensatz/core"
	"github.com/npillmayer/notensatz/core/fraction"
)

var durationCodes = map[string]int64{
	"w": 1, "1": 1, "h": 2, "2": 2, "q": 4, "4": 4,
	"8": 8, "16": 16, "32": 32, "64": 64, "128": 128, "256": 256,
}

// ParseDuration converts a duration code to ticks. Codes are "w", "h", "q"
// or a note value like "8" or "16", optionally followed by dots ("qd", "8..",
// "hd"). A trailing "r" marks a rest and is ignored.
func ParseDuration(code string) (fraction.Fraction, error) {
	s := strings.TrimSpace(code)
	s = strings.TrimSuffix(s, "r")
	dots := 0
	for len(s) > 0 && (s[len(s)-1] == 'd' || s[len(s)-1] == '.') {
		s = s[:len(s)-1]
		dots++
	}
	value, ok := durationCodes[s]
	if !ok {
		return fraction.Zero, core.Error(core.EINVALID, "invalid duration code %q", code)
	}
	ticks := fraction.Must(Resolution, value)
	add := ticks
	for i := 0; i < dots; i++ {
		add = add.MulInt(1, 2)
		ticks = ticks.Add(add)
	}
	return ticks.Simplify(), nil
}

// MustDuration is like ParseDuration, but panics on invalid codes.
func MustDuration(code string) fraction.Fraction {
	d, err := ParseDuration(code)
	if err != nil {
		panic(err)
	}
	return d
}

// Tuplet scales ticks for a tuplet of numNotes notes in the time of
// notesOccupied notes, e.g. Tuplet(d, 3, 2) for triplets.
func Tuplet(ticks fraction.Fraction, numNotes, notesOccupied int) fraction.Fraction {
	if numNotes <= 0 {
		return ticks
	}
	return ticks.MulInt(int64(notesOccupied), int64(numNotes))
}
