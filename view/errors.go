package view

import (
	"errors"

	"github.com/midbel/chartview/axis"
	"github.com/midbel/chartview/chart"
)

var (
	ErrGrid       = errors.New("invalid grid")
	ErrNotReady   = errors.New("chart not ready")
	ErrAnimating  = errors.New("chart is animating")
	ErrMisaligned = errors.New("regions misaligned with data")
)

var (
	ErrSizeMismatch = chart.ErrSizeMismatch
	ErrNilSet       = chart.ErrNilSet
	ErrEmpty        = chart.ErrEmpty
	ErrIndex        = chart.ErrIndex
	ErrStep         = axis.ErrStep
	ErrBorders      = axis.ErrBorders
)
