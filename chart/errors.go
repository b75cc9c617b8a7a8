package chart

import (
	"errors"
)

var (
	ErrSizeMismatch = errors.New("size mismatch")
	ErrNilSet       = errors.New("nil set")
	ErrEmpty        = errors.New("no data")
	ErrIndex        = errors.New("index out of range")
)
