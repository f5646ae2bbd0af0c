package fraction

import (
	"testing"

	"github.com/npillmayer/notensatz/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLCM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notensatz.core")
	defer teardown()
	//
	assert.Equal(t, int64(3), LCM(1, 3))
	assert.Equal(t, int64(12), LCM(4, 6))
	assert.Equal(t, int64(0), LCM(0, 6))
	assert.Equal(t, int64(12), LCMM(2, 3, 4))
	assert.Equal(t, int64(6), GCD(-12, 18))
}

func TestAddKeepsResolution(t *testing.T) {
	triplet := Must(4096, 3)
	sum := Zero
	for i := 0; i < 3; i++ {
		sum = sum.Add(triplet)
	}
	// three triplet eighths make a quarter, but the denominator survives
	assert.Equal(t, int64(3), sum.Den)
	assert.True(t, sum.Equals(Int(4096)))
	assert.Equal(t, "4096/1", sum.Simplify().String())
}

func TestCursorOnCommonGrid(t *testing.T) {
	cursor := Must(0, 3)
	cursor = cursor.Add(Int(4096))
	assert.Equal(t, Fraction{12288, 3}, cursor)
	n, ok := cursor.Scaled(3)
	assert.True(t, ok)
	assert.Equal(t, int64(12288), n)
}

func TestComparison(t *testing.T) {
	a, b := Must(1, 3), Must(2, 6)
	assert.True(t, a.Equals(b))
	assert.True(t, a.LessThanEquals(b))
	assert.True(t, a.GreaterThanEquals(b))
	assert.False(t, a.LessThan(b))
	assert.True(t, Must(1, 4).LessThan(a))
	assert.True(t, a.GreaterThan(Must(1, 4)))
	assert.Equal(t, 0, Fraction{}.Cmp(Zero))
}

func TestZeroDenominator(t *testing.T) {
	_, err := New(1, 0)
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	f, err := New(1, -2)
	assert.NoError(t, err)
	assert.Equal(t, Fraction{-1, 2}, f)
}

func TestMulAndValue(t *testing.T) {
	eighth := Int(2048)
	tri := eighth.MulInt(2, 3)
	assert.Equal(t, Fraction{4096, 3}, tri)
	assert.InDelta(t, 1365.333, tri.Value(), 0.001)
	assert.Equal(t, Fraction{1, 2}, Must(2, 4).Simplify())
}
