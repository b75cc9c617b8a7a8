package format

import (
	"strconv"
)

const DefaultNumberPattern = "#######.##"

type Formatter interface {
	Format(float64) (string, error)
}

type FormatterFunc func(float64) (string, error)

func (f FormatterFunc) Format(v float64) (string, error) {
	return f(v)
}

// Plain formats values with the shortest representation.
func Plain() Formatter {
	return FormatterFunc(func(v float64) (string, error) {
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	})
}

// Default is the formatter axis labels use when none is configured.
func Default() Formatter {
	f, _ := ParseNumberFormatter(DefaultNumberPattern)
	return f
}

// Must formats v and falls back to the plain representation.
func Must(f Formatter, v float64) string {
	if f == nil {
		f = Plain()
	}
	str, err := f.Format(v)
	if err != nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return str
}
