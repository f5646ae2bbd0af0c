// Package dimen implements lengths for engraving parameters.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/npillmayer/notensatz/core"
)

// Dimen is a length in scaled pixels. The formatter positions notes in CSS
// pixels (1/96 inch); dimensions allow paddings to be configured in
// physical units.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled pixel = PX / 65536
	PX   Dimen = 65536   // CSS pixel = 1/96 inch
	PT   Dimen = 87381   // PostScript point = 1/72 inch
	MM   Dimen = 247695  // millimeter
	CM   Dimen = 2476951 // centimeter
	IN   Dimen = 6291456 // inch
)

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Pixels returns a dimension in (unscaled) pixels.
func (d Dimen) Pixels() float64 {
	return float64(d) / float64(PX)
}

// FromPixels converts a pixel value to a dimension, rounding to the nearest
// scaled pixel.
func FromPixels(px float64) Dimen {
	return Dimen(math.Round(px * float64(PX)))
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(px|pt|mm|cm|in|sp)?$`)

// ParseDimen parses a string to return a dimension, e.g. "12px" or "2.5mm".
// A number without a unit is taken as pixels.
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return Zero, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	scale := PX
	switch d[2] {
	case "pt":
		scale = PT
	case "mm":
		scale = MM
	case "cm":
		scale = CM
	case "in":
		scale = IN
	case "sp":
		scale = SP
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return Zero, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	return Dimen(math.Round(n * float64(scale))), nil
}
