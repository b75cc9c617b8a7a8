package chart

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeBar           Type = "bar"
	TypeHorizontalBar Type = "hbar"
	TypeLine          Type = "line"
	TypePoint         Type = "point"
)

func ParseType(str string) (Type, error) {
	switch t := Type(strings.ToLower(str)); t {
	case TypeBar, TypeHorizontalBar, TypeLine, TypePoint:
		return t, nil
	case "", "column":
		return TypeBar, nil
	case "horizontal", "row":
		return TypeHorizontalBar, nil
	case "scatter", "dot":
		return TypePoint, nil
	default:
		return "", fmt.Errorf("%s: unsupported chart type", str)
	}
}

// Orientation tells which axis carries the values: Y for vertical charts
// and X for horizontal ones.
type Orientation int8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

type GridType int8

const (
	GridNone GridType = iota
	GridFull
	GridVertical
	GridHorizontal
)

func ParseGridType(str string) (GridType, error) {
	switch strings.ToLower(str) {
	case "", "none":
		return GridNone, nil
	case "full":
		return GridFull, nil
	case "vertical":
		return GridVertical, nil
	case "horizontal":
		return GridHorizontal, nil
	default:
		return GridNone, fmt.Errorf("%s: unsupported grid type", str)
	}
}

func (g GridType) String() string {
	switch g {
	case GridFull:
		return "full"
	case GridVertical:
		return "vertical"
	case GridHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

func (g GridType) HasVertical() bool {
	return g == GridFull || g == GridVertical
}

func (g GridType) HasHorizontal() bool {
	return g == GridFull || g == GridHorizontal
}
