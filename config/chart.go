package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/midbel/chartview/axis"
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/csv"
	"github.com/midbel/chartview/format"
	"github.com/midbel/chartview/layout"
	"github.com/midbel/chartview/view"
	sax "github.com/midbel/codecs/xml"
)

var ErrDefinition = errors.New("invalid chart definition")

const (
	ThresholdValue = "value"
	ThresholdLabel = "label"
)

type Borders struct {
	Min  float64
	Max  float64
	Step float64
}

type Threshold struct {
	Kind  string
	Start float64
	End   float64
	Paint canvas.Paint
}

// Data references a CSV file holding the values of the chart.
type Data struct {
	File    string
	Columns string
	Labels  string
	Header  bool
}

// Chart is the definition of a chart as written in a chart file.
type Chart struct {
	Type        chart.Type
	Title       string
	Grid        chart.GridType
	GridRows    int
	GridColumns int
	Padding     layout.Rect

	Step          float64
	Borders       *Borders
	BorderSpacing float64
	TopSpacing    float64
	LabelsSpacing float64
	Format        string
	XLabels       axis.LabelPosition
	YLabels       axis.LabelPosition

	Thresholds []Threshold
	Sets       []*chart.Set
	Data       *Data

	base string
}

func Load(file string) (*Chart, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	c, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	c.base = filepath.Dir(file)
	return c, nil
}

func Decode(r io.Reader) (*Chart, error) {
	cr := chartReader{
		reader: sax.NewReader(r),
		chart: &Chart{
			Type:        chart.TypeBar,
			GridRows:    view.DefaultGridRows,
			GridColumns: view.DefaultGridColumns,
		},
	}
	return cr.Read()
}

// Options are what the chart file does not carry.
type Options struct {
	Base     *chart.Style
	Style    *Style
	Measurer canvas.Measurer
	Logger   *log.Logger
}

// Build creates the view of the chart with its data loaded.
func (c *Chart) Build(opts Options) (*view.View, error) {
	variant, err := view.NewVariant(c.Type)
	if err != nil {
		return nil, err
	}
	v := view.New(variant)
	v.SetLogger(opts.Logger)
	v.SetMeasurer(opts.Measurer)
	if err := c.Configure(v, opts); err != nil {
		return nil, err
	}
	return v, nil
}

// Configure applies the definition to v and replaces its data. A view that
// has been reset gets back to the state Build leaves it in.
func (c *Chart) Configure(v *view.View, opts Options) error {
	var err error
	style := chart.DefaultStyle()
	if opts.Base != nil {
		base := *opts.Base
		style = &base
	}
	if opts.Style != nil {
		style = opts.Style.Apply(style)
	}
	v.SetStyle(style)
	v.SetPadding(c.Padding.Left, c.Padding.Top, c.Padding.Right, c.Padding.Bottom)
	if c.Grid != chart.GridNone {
		if err := v.SetGrid(c.Grid, c.GridRows, c.GridColumns, style.GridPaint); err != nil {
			return err
		}
	}
	if c.Borders != nil {
		err = v.SetAxisBorderValues(c.Borders.Min, c.Borders.Max, c.Borders.Step)
	} else if c.Step > 0 {
		err = v.SetStep(c.Step)
	}
	if err != nil {
		return err
	}
	v.SetBorderSpacing(c.BorderSpacing)
	v.SetTopSpacing(c.TopSpacing)
	if c.LabelsSpacing > 0 {
		v.SetAxisLabelsSpacing(c.LabelsSpacing)
	}
	v.SetXLabels(c.XLabels)
	v.SetYLabels(c.YLabels)
	if c.Format != "" {
		f, err := format.ParseNumberFormatter(c.Format)
		if err != nil {
			return err
		}
		v.SetLabelsFormat(f)
	}

	sets, err := c.LoadSets()
	if err != nil {
		return err
	}
	if opts.Style != nil {
		opts.Style.Colorize(sets)
	}
	if err := v.SetData(sets); err != nil {
		return err
	}
	for _, t := range c.Thresholds {
		paint := t.Paint
		if paint.IsZero() {
			paint = style.ThresholdPaint
		}
		switch t.Kind {
		case ThresholdLabel:
			err = v.SetLabelThreshold(int(t.Start), int(t.End), paint)
		default:
			v.SetValueThreshold(t.Start, t.End, paint)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadSets gives the sets written in the definition followed by the ones
// read from its data file.
func (c *Chart) LoadSets() ([]*chart.Set, error) {
	sets := chart.CloneSets(c.Sets)
	if c.Data == nil {
		return sets, nil
	}
	file := c.Data.File
	if !filepath.IsAbs(file) && c.base != "" {
		file = filepath.Join(c.base, file)
	}
	tb, err := csv.Open(file, c.Data.Header)
	if err != nil {
		return nil, err
	}
	others, err := tb.Sets(c.Data.Labels, c.Data.Columns)
	if err != nil {
		return nil, err
	}
	return append(sets, others...), nil
}

type chartReader struct {
	reader *sax.Reader
	chart  *Chart
	set    *chart.Set
}

func (r *chartReader) Read() (*Chart, error) {
	r.reader.Element(sax.LocalName("chart"), r.onChart)
	r.reader.Element(sax.LocalName("padding"), r.onPadding)
	r.reader.Element(sax.LocalName("axis"), r.onAxis)
	r.reader.Element(sax.LocalName("threshold"), r.onThreshold)
	r.reader.Element(sax.LocalName("set"), r.onSet)
	r.reader.Element(sax.LocalName("entry"), r.onEntry)
	r.reader.Element(sax.LocalName("data"), r.onData)
	if err := r.reader.Start(); err != nil {
		return nil, err
	}
	if len(r.chart.Sets) == 0 && r.chart.Data == nil {
		return nil, fmt.Errorf("%w: no data", ErrDefinition)
	}
	return r.chart, nil
}

func (r *chartReader) onChart(_ *sax.Reader, el sax.E) error {
	var err error
	if r.chart.Type, err = chart.ParseType(el.GetAttributeValue("type")); err != nil {
		return err
	}
	if r.chart.Grid, err = chart.ParseGridType(el.GetAttributeValue("grid")); err != nil {
		return err
	}
	r.chart.Title = el.GetAttributeValue("title")
	r.chart.Format = el.GetAttributeValue("format")
	if r.chart.GridRows, err = parseInt(el, "rows", r.chart.GridRows); err != nil {
		return err
	}
	if r.chart.GridColumns, err = parseInt(el, "columns", r.chart.GridColumns); err != nil {
		return err
	}
	r.chart.Step, err = parseFloat(el, "step", 0)
	return err
}

func (r *chartReader) onPadding(_ *sax.Reader, el sax.E) error {
	pad := &r.chart.Padding

	var err error
	if pad.Left, err = parseFloat(el, "left", 0); err != nil {
		return err
	}
	if pad.Top, err = parseFloat(el, "top", 0); err != nil {
		return err
	}
	if pad.Right, err = parseFloat(el, "right", 0); err != nil {
		return err
	}
	pad.Bottom, err = parseFloat(el, "bottom", 0)
	return err
}

func (r *chartReader) onAxis(_ *sax.Reader, el sax.E) error {
	pos, err := axis.ParseLabelPosition(el.GetAttributeValue("labels"))
	if err != nil {
		return err
	}
	switch name := el.GetAttributeValue("name"); name {
	case "x":
		r.chart.XLabels = pos
	case "y":
		r.chart.YLabels = pos
	case "value":
		return r.onValueAxis(el)
	case "label":
		r.chart.BorderSpacing, err = parseFloat(el, "spacing", r.chart.BorderSpacing)
		return err
	default:
		return fmt.Errorf("%w: unknown axis %q", ErrDefinition, name)
	}
	return nil
}

func (r *chartReader) onValueAxis(el sax.E) error {
	var err error
	if r.chart.TopSpacing, err = parseFloat(el, "spacing", r.chart.TopSpacing); err != nil {
		return err
	}
	if r.chart.LabelsSpacing, err = parseFloat(el, "distance", r.chart.LabelsSpacing); err != nil {
		return err
	}
	if str := el.GetAttributeValue("format"); str != "" {
		r.chart.Format = str
	}
	if r.chart.Step, err = parseFloat(el, "step", r.chart.Step); err != nil {
		return err
	}
	if el.GetAttributeValue("min") == "" && el.GetAttributeValue("max") == "" {
		return nil
	}
	var b Borders
	if b.Min, err = parseFloat(el, "min", 0); err != nil {
		return err
	}
	if b.Max, err = parseFloat(el, "max", 0); err != nil {
		return err
	}
	b.Step = r.chart.Step
	r.chart.Borders = &b
	return nil
}

func (r *chartReader) onThreshold(_ *sax.Reader, el sax.E) error {
	t := Threshold{
		Kind: el.GetAttributeValue("kind"),
	}
	switch t.Kind {
	case "":
		t.Kind = ThresholdValue
	case ThresholdValue, ThresholdLabel:
	default:
		return fmt.Errorf("%w: unknown threshold %q", ErrDefinition, t.Kind)
	}
	var err error
	if t.Start, err = parseFloat(el, "from", 0); err != nil {
		return err
	}
	if t.End, err = parseFloat(el, "to", t.Start); err != nil {
		return err
	}
	if col := el.GetAttributeValue("color"); col != "" {
		t.Paint = canvas.Filled(canvas.ParseColor(col))
	}
	r.chart.Thresholds = append(r.chart.Thresholds, t)
	return nil
}

func (r *chartReader) onSet(_ *sax.Reader, el sax.E) error {
	r.set = chart.NewSet(el.GetAttributeValue("name"))
	if col := el.GetAttributeValue("color"); col != "" {
		r.set.Paint = canvas.Stroke(canvas.ParseColor(col), 1)
	}
	var err error
	if r.set.Paint.Width, err = parseFloat(el, "width", r.set.Paint.Width); err != nil {
		return err
	}
	if r.set.DotRadius, err = parseFloat(el, "radius", 0); err != nil {
		return err
	}
	if str := el.GetAttributeValue("dots"); str != "" {
		if r.set.Dots, err = strconv.ParseBool(str); err != nil {
			return err
		}
	}
	if str := el.GetAttributeValue("dash"); str != "" {
		for _, s := range strings.Split(str, ",") {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return err
			}
			r.set.Dash = append(r.set.Dash, f)
		}
	}
	r.chart.Sets = append(r.chart.Sets, r.set)
	return nil
}

func (r *chartReader) onEntry(rs *sax.Reader, el sax.E) error {
	if r.set == nil {
		return fmt.Errorf("%w: entry outside of set", ErrDefinition)
	}
	if el.SelfClosed {
		return fmt.Errorf("%w: entry without value", ErrDefinition)
	}
	var (
		set   = r.set
		label = el.GetAttributeValue("label")
	)
	if label == "" {
		label = strconv.Itoa(set.Size() + 1)
	}
	rs.OnText(func(_ *sax.Reader, str string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", set.Name, err)
		}
		e := chart.NewEntry(label, value)
		if col := el.GetAttributeValue("color"); col != "" {
			e.Paint = canvas.Filled(canvas.ParseColor(col))
		}
		set.AddEntry(e)
		return nil
	})
	return nil
}

func (r *chartReader) onData(_ *sax.Reader, el sax.E) error {
	d := Data{
		File:    el.GetAttributeValue("file"),
		Columns: el.GetAttributeValue("columns"),
		Labels:  el.GetAttributeValue("labels"),
		Header:  true,
	}
	if d.File == "" || d.Columns == "" {
		return fmt.Errorf("%w: data needs a file and columns", ErrDefinition)
	}
	if str := el.GetAttributeValue("header"); str != "" {
		var err error
		if d.Header, err = strconv.ParseBool(str); err != nil {
			return err
		}
	}
	r.chart.Data = &d
	return nil
}

func parseFloat(el sax.E, name string, def float64) (float64, error) {
	str := el.GetAttributeValue(name)
	if str == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s: %s", ErrDefinition, name, err)
	}
	return f, nil
}

func parseInt(el sax.E, name string, def int) (int, error) {
	str := el.GetAttributeValue(name)
	if str == "" {
		return def, nil
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s: %s", ErrDefinition, name, err)
	}
	return n, nil
}
