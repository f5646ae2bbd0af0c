/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"

	"github.com/npillmayer/notensatz/core/dimen"
	"github.com/npillmayer/notensatz/core/percent"
)

// EngravingParameter is a key for a register holding a default value for
// horizontal spacing.
type EngravingParameter int

const (
	none EngravingParameter = iota
	P_SOFTMAXFACTOR
	P_MAXITERATIONS
	P_STAVEPADDING
	P_ENDPADDINGMIN
	P_ENDPADDINGMAX
	P_UNALIGNEDNOTEPADDING
	P_TICKCONTEXTPADDING
	P_TUNINGALPHA
	P_MAXCOMPRESSION
	P_STOPPER
)

var parameterNames = [...]string{
	"none",
	"P_SOFTMAXFACTOR",
	"P_MAXITERATIONS",
	"P_STAVEPADDING",
	"P_ENDPADDINGMIN",
	"P_ENDPADDINGMAX",
	"P_UNALIGNEDNOTEPADDING",
	"P_TICKCONTEXTPADDING",
	"P_TUNINGALPHA",
	"P_MAXCOMPRESSION",
}

func (p EngravingParameter) String() string {
	if p < 0 || p >= P_STOPPER {
		return fmt.Sprintf("EngravingParameter(%d)", int(p))
	}
	return parameterNames[p]
}

type ParameterGroup struct {
	params map[EngravingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// EngravingRegisters hold the spacing parameters a formatter is configured
// with. Values may be overridden within groups, which are closed again by
// Endgroup, restoring the outer values.
type EngravingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewEngravingRegisters() *EngravingRegisters {
	regs := &EngravingRegisters{}
	initParameters(&regs.base)
	return regs
}

// Spacing paddings are in pixels and follow the metrics of common SMuFL
// music fonts.
func initParameters(p *[P_STOPPER]interface{}) {
	p[P_SOFTMAXFACTOR] = 10.0                // base of the softmax curve
	p[P_MAXITERATIONS] = 5                   // padding convergence loop cap
	p[P_STAVEPADDING] = 12.0                 // left padding of a stave
	p[P_ENDPADDINGMIN] = 5.0                 // minimal padding after last note
	p[P_ENDPADDINGMAX] = 10.0                // maximal padding after last note
	p[P_UNALIGNEDNOTEPADDING] = 10.0         // extra space for unaligned contexts
	p[P_TICKCONTEXTPADDING] = 1.0            // padding on either side of a context
	p[P_TUNINGALPHA] = 0.5                   // damping of tuning shifts
	p[P_MAXCOMPRESSION] = percent.FromInt(5) // max leftward shift per context
}

func (regs *EngravingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *EngravingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *EngravingRegisters) Push(key EngravingParameter, value interface{}) {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of engraving parameters")
	}
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[EngravingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *EngravingRegisters) Get(key EngravingParameter) interface{} {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of engraving parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// PushDimen parses a length like "3mm" and pushes it as a dimension.
func (regs *EngravingRegisters) PushDimen(key EngravingParameter, s string) error {
	d, err := dimen.ParseDimen(s)
	if err != nil {
		return err
	}
	regs.Push(key, d)
	return nil
}

// F returns a float parameter. Integer values are converted, dimensions
// are converted to pixels.
func (regs *EngravingRegisters) F(key EngravingParameter) float64 {
	switch v := regs.Get(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case dimen.Dimen:
		return v.Pixels()
	case percent.Percent:
		return float64(v)
	}
	panic(fmt.Sprintf("parameter %s is not numeric", key))
}

// N returns an integer parameter.
func (regs *EngravingRegisters) N(key EngravingParameter) int {
	switch v := regs.Get(key).(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	panic(fmt.Sprintf("parameter %s is not an integer", key))
}

// P returns a percentage parameter.
func (regs *EngravingRegisters) P(key EngravingParameter) percent.Percent {
	switch v := regs.Get(key).(type) {
	case percent.Percent:
		return v
	case int:
		return percent.FromInt(v)
	case float64:
		return percent.FromFloat(v)
	}
	panic(fmt.Sprintf("parameter %s is not a percentage", key))
}
