package axis

import (
	"errors"
)

var (
	ErrStep    = errors.New("invalid step")
	ErrBorders = errors.New("invalid border values")
)
