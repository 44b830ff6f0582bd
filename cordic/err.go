package cordic

import (
	"errors"

	"github.com/ezrec/cordic/translate"
)

var f = translate.From

var (
	ErrBusy     = errors.New(f("cordic busy"))
	ErrMode     = errors.New(f("cordic mode invalid"))
	ErrFunction = errors.New(f("cordic function invalid"))
	ErrPrescale = errors.New(f("cordic prescale invalid"))
)
