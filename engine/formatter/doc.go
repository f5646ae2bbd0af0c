/*
Package formatter aligns simultaneous notes of several voices and justifies
them to a target width.

Voices are first joined: notes starting at the same tick on the same stave
share a modifier context, which decides how much room accidentals, dots and
the like need. Then all tickables of all voices starting at the same tick are
collected into a TickContext, across staves. Tick contexts are positioned in
two passes. The first pass packs them as tightly as their widths allow. The
second pass distributes the target width, giving every context a distance to
its predecessor in the same voice which is proportional to the softmax of the
preceding note's duration. Padding at the end of the line depends on the last
note, which in turn depends on the target, so the second pass is repeated a
bounded number of times.

Evaluate computes a cost for a layout: notes of equal duration should get
similar space. Tune shifts tick contexts locally to decrease this cost.

All positions are in pixels. A Formatter is not safe for concurrent use, and
a set of voices must not be formatted by two formatters at the same time, as
formatting writes layout information into the tickables.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'notensatz.formatter'.
func tracer() tracing.Trace {
	return tracing.Select("notensatz.formatter")
}
