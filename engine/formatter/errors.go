package formatter

import (
	"errors"

	"github.com/npillmayer/notensatz/core"
)

// Errors returned for violations of the formatter's contract. They are
// wrapped into core errors carrying an error code; use errors.Is to test
// for them.
var (
	ErrBadArgument     = errors.New("bad argument")
	ErrTickMismatch    = errors.New("tick mismatch")
	ErrIncompleteVoice = errors.New("incomplete voice")
	ErrNoMinTotalWidth = errors.New("no min total width")
	ErrNoTickContexts  = errors.New("no tick contexts")
)

func contractError(err error, code int, format string, v ...interface{}) error {
	e := core.WrapError(err, code, format, v...)
	tracer().Errorf("%v", e)
	return e
}
