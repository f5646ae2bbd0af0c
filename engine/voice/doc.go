/*
Package voice implements voices and the tickables they consist of.

A Voice is an independently timed sequence of Tickables representing one
musical line. Voices keep track of the ticks used, compared to the nominal
ticks of their time signature, and provide the softmax weighting which the
formatter uses to distribute horizontal space proportionally to durations.

Tickables know nothing about the contexts they are formatted in: the
formatter owns tick contexts and modifier contexts and refers to them by
integer tick ids. A tickable only remembers the id of its tick context.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package voice

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'notensatz.voice'.
func tracer() tracing.Trace {
	return tracing.Select("notensatz.voice")
}
