package axis

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/scale"
	"github.com/midbel/chartview/format"
)

const (
	DefaultMaxTicks = 6
	epsilon         = 1e-9
)

type LabelPosition int8

const (
	Outside LabelPosition = iota
	Inside
	None
)

func ParseLabelPosition(str string) (LabelPosition, error) {
	switch strings.ToLower(str) {
	case "", "outside":
		return Outside, nil
	case "inside":
		return Inside, nil
	case "none":
		return None, nil
	default:
		return None, fmt.Errorf("%s: unsupported label position", str)
	}
}

func (p LabelPosition) String() string {
	switch p {
	case Inside:
		return "inside"
	case None:
		return "none"
	default:
		return "outside"
	}
}

// Scale holds the configuration of an axis. Border values and step given by
// the user take precedence over the ones computed from the data.
type Scale struct {
	Position LabelPosition
	Format   format.Formatter
	MaxTicks int

	min      float64
	max      float64
	step     float64
	borders  bool
	userStep bool

	borderSpacing float64
	topSpacing    float64
	mandatory     bool
}

func (s *Scale) SetBorderValues(min, max, step float64) error {
	if step <= 0 {
		return fmt.Errorf("%w: %v", ErrStep, step)
	}
	if min >= max {
		return fmt.Errorf("%w: min (%v) must be lower than max (%v)", ErrBorders, min, max)
	}
	if !divides(max-min, step) {
		return fmt.Errorf("%w: step %v does not divide [%v, %v]", ErrBorders, step, min, max)
	}
	s.min, s.max, s.step = min, max, step
	s.borders = true
	s.userStep = true
	return nil
}

func (s *Scale) SetStep(step float64) error {
	if step <= 0 {
		return fmt.Errorf("%w: %v", ErrStep, step)
	}
	if s.borders && !divides(s.max-s.min, step) {
		return fmt.Errorf("%w: step %v does not divide [%v, %v]", ErrStep, step, s.min, s.max)
	}
	s.step = step
	s.userStep = true
	return nil
}

func (s *Scale) SetBorderSpacing(spacing float64) {
	s.borderSpacing = max(spacing, 0)
}

func (s *Scale) SetTopSpacing(spacing float64) {
	s.topSpacing = max(spacing, 0)
}

func (s *Scale) SetMandatoryBorderSpacing(mandatory bool) {
	s.mandatory = mandatory
}

func (s *Scale) HasMandatoryBorderSpacing() bool {
	return s.mandatory
}

func (s *Scale) BorderSpacing() float64 {
	return s.borderSpacing
}

func (s *Scale) TopSpacing() float64 {
	return s.topSpacing
}

func (s *Scale) Min() float64 {
	return s.min
}

func (s *Scale) Max() float64 {
	return s.max
}

func (s *Scale) Step() float64 {
	return s.step
}

// resolve computes the border values and the step from the data range when
// they are not given explicitly. The range always includes zero.
func (s *Scale) resolve(lo, hi float64) {
	if s.borders {
		return
	}
	lo = min(lo, 0)
	hi = max(hi, 0)
	if lo == hi {
		hi += 1
	}
	if s.userStep {
		s.min = math.Floor(lo/s.step) * s.step
		s.max = math.Ceil(hi/s.step) * s.step
		if s.min == s.max {
			s.max += s.step
		}
		return
	}
	var (
		ls = scale.Linear{Min: lo, Max: hi}
		to = scale.TickOptions{Max: s.ticks()}
	)
	ls.Nice(to)
	major, _ := ls.Ticks(to)
	s.min, s.max = ls.Min, ls.Max
	if len(major) >= 2 {
		s.step = major[1] - major[0]
	} else {
		s.step = s.max - s.min
	}
}

func (s *Scale) values() []float64 {
	if s.step <= 0 || s.max <= s.min {
		return nil
	}
	n := int(math.Round((s.max-s.min)/s.step)) + 1
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = s.min + float64(i)*s.step
	}
	return vs
}

func (s *Scale) ticks() int {
	if s.MaxTicks <= 1 {
		return DefaultMaxTicks
	}
	return s.MaxTicks
}

func (s *Scale) formatter() format.Formatter {
	if s.Format == nil {
		return format.Default()
	}
	return s.Format
}

func (s *Scale) clear() {
	if !s.borders {
		s.min, s.max = 0, 0
		if !s.userStep {
			s.step = 0
		}
	}
}

func divides(span, step float64) bool {
	r := span / step
	return math.Abs(r-math.Round(r)) < epsilon
}
