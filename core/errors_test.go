package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EMISMATCH, "voices of %d and %d ticks", 16, 8)
	assert.Equal(t, EMISMATCH, Code(err))
	assert.Equal(t, "voices of 16 and 8 ticks", UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
}

func TestWrapErrorKeepsChain(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapError(sentinel, EINVALID, "wrapped for %s", "test")
	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, EINVALID, Code(err))
	assert.Contains(t, err.Error(), "sentinel")
	assert.Equal(t, "[122] not found", ErrorWithCode(nil, EMISSING).Error())
}
