/*
Package modifier groups the modifiers of simultaneous notes on one stave.

Accidentals, dots, articulations and the like are not tickables: they do not
occupy musical time, but they take horizontal space to the left or to the
right of a note head. Notes of different voices which start at the same tick
on the same stave share one modifier Context, so that, e.g., the accidentals of
both voices end up in common columns.

A Context formats its members category by category. The order of categories
is fixed and is given by a registry of (category, format function) pairs;
every format function reads and updates a shared State. Callers are only
interested in the resulting left and right shift.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package modifier

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'notensatz.modifier'.
func tracer() tracing.Trace {
	return tracing.Select("notensatz.modifier")
}
