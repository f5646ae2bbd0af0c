package percent

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentClamping(t *testing.T) {
	assert.Equal(t, Percent(0), FromInt(-3))
	assert.Equal(t, Percent(100), FromInt(250))
	assert.Equal(t, Percent(0), FromFloat(math.NaN()))
	assert.Equal(t, Percent(6), FromFloat(5.5))
}

func TestPercentOf(t *testing.T) {
	p, err := FromString(" 5% ")
	assert.NoError(t, err)
	assert.Equal(t, "5%", p.String())
	assert.InDelta(t, 20.0, p.Of(400), 1e-9)
	assert.InDelta(t, 0.05, p.Fraction(), 1e-9)
	_, err = FromString("five")
	assert.Error(t, err)
}
