package parameters

import (
	"testing"

	"github.com/npillmayer/notensatz/core/percent"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	regs := NewEngravingRegisters()
	assert.Equal(t, 10.0, regs.F(P_SOFTMAXFACTOR))
	assert.Equal(t, 5, regs.N(P_MAXITERATIONS))
	assert.Equal(t, 10.0, regs.F(P_ENDPADDINGMAX))
	assert.Equal(t, percent.Percent(5), regs.P(P_MAXCOMPRESSION))
	assert.Equal(t, "P_TUNINGALPHA", P_TUNINGALPHA.String())
}

func TestGroups(t *testing.T) {
	regs := NewEngravingRegisters()
	regs.Begingroup()
	regs.Push(P_SOFTMAXFACTOR, 4.0)
	assert.Equal(t, 4.0, regs.F(P_SOFTMAXFACTOR))
	regs.Begingroup()
	regs.Push(P_MAXITERATIONS, 2)
	assert.Equal(t, 2, regs.N(P_MAXITERATIONS))
	assert.Equal(t, 4.0, regs.F(P_SOFTMAXFACTOR), "outer group should still be visible")
	regs.Endgroup()
	assert.Equal(t, 5, regs.N(P_MAXITERATIONS))
	regs.Endgroup()
	assert.Equal(t, 10.0, regs.F(P_SOFTMAXFACTOR))
	regs.Endgroup() // unbalanced Endgroup is ignored
	regs.Push(P_STAVEPADDING, 8)
	assert.Equal(t, 8.0, regs.F(P_STAVEPADDING))
}

func TestIllegalKey(t *testing.T) {
	regs := NewEngravingRegisters()
	assert.Panics(t, func() { regs.Get(P_STOPPER) })
	assert.Panics(t, func() { regs.Get(none) })
}

func TestDimensions(t *testing.T) {
	regs := NewEngravingRegisters()
	assert.NoError(t, regs.PushDimen(P_STAVEPADDING, "9pt"))
	assert.InDelta(t, 12.0, regs.F(P_STAVEPADDING), 1e-3)
	assert.NoError(t, regs.PushDimen(P_ENDPADDINGMAX, "16px"))
	assert.Equal(t, 16.0, regs.F(P_ENDPADDINGMAX))
	assert.Error(t, regs.PushDimen(P_ENDPADDINGMIN, "wide"))
	assert.Equal(t, 5.0, regs.F(P_ENDPADDINGMIN))
}
