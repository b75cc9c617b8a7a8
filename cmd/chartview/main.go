package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/config"
	"github.com/midbel/chartview/csv"
	"github.com/midbel/chartview/layout"
	"github.com/midbel/chartview/tui"
	"github.com/midbel/chartview/view"
	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	summary = "chartview"
	help    = "draw charts described in XML files as images or in the terminal"
)

var verbose bool

func main() {
	var (
		set  = cli.NewFlagSet("chartview")
		root = prepare()
	)
	set.BoolVar(&verbose, "v", false, "print layout details on stderr")
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"render"}, &renderCmd)
	root.Register([]string{"view"}, &viewCmd)
	root.Register([]string{"info"}, &infoCmd)
	return root
}

var renderCmd = cli.Command{
	Name:    "render",
	Alias:   []string{"draw", "export"},
	Summary: "render a chart to a PNG or SVG image",
	Usage:   "render [-o file] [-f png|svg] [-w width] [-h height] [-s style] <chart.xml>",
	Handler: &RenderCommand{},
}

var viewCmd = cli.Command{
	Name:    "view",
	Alias:   []string{"show"},
	Summary: "show a chart in the terminal",
	Usage:   "view [-s style] <chart.xml>",
	Handler: &ViewCommand{},
}

var infoCmd = cli.Command{
	Name:    "info",
	Summary: "print the layout of a chart, the coordinates and the regions of its entries",
	Usage:   "info [-w width] [-h height] [-s style] <chart.xml>",
	Handler: &InfoCommand{},
}

type RenderCommand struct {
	OutFile string
	Format  string
	Width   int
	Height  int
	Style   string
}

func (c RenderCommand) Run(args []string) error {
	set := cli.NewFlagSet("render")
	set.StringVar(&c.OutFile, "o", "", "write image to output file")
	set.StringVar(&c.Format, "f", "", "image format: png or svg")
	set.IntVar(&c.Width, "w", 800, "image width")
	set.IntVar(&c.Height, "h", 600, "image height")
	set.StringVar(&c.Style, "s", "", "style file")
	if err := set.Parse(args); err != nil {
		return err
	}
	def, style, err := loadChart(set.Arg(0), c.Style)
	if err != nil {
		return err
	}
	if c.OutFile == "" {
		c.OutFile = strings.TrimSuffix(set.Arg(0), filepath.Ext(set.Arg(0)))
	}
	cv, err := c.canvas()
	if err != nil {
		return err
	}
	v, err := def.Build(config.Options{
		Style:    style,
		Measurer: cv,
		Logger:   logger(),
	})
	if err != nil {
		return err
	}
	cv.SetFontSize(v.Style().FontSize)
	v.Show()
	if !v.PreDraw(cv.Frame()) {
		return fmt.Errorf("%s: chart can not be laid out", set.Arg(0))
	}
	v.Draw(cv)

	w, err := os.Create(c.OutFile)
	if err != nil {
		return err
	}
	defer w.Close()
	return cv.Save(w)
}

func (c *RenderCommand) canvas() (*canvas.Chart, error) {
	if c.Format == "" {
		c.Format = strings.TrimPrefix(filepath.Ext(c.OutFile), ".")
	}
	switch strings.ToLower(c.Format) {
	case "svg":
		if filepath.Ext(c.OutFile) == "" {
			c.OutFile += ".svg"
		}
		return canvas.SVG(c.Width, c.Height)
	case "png", "":
		if filepath.Ext(c.OutFile) == "" {
			c.OutFile += ".png"
		}
		return canvas.PNG(c.Width, c.Height)
	default:
		return nil, fmt.Errorf("%s: unsupported image format", c.Format)
	}
}

type ViewCommand struct {
	Style string
}

func (c ViewCommand) Run(args []string) error {
	set := cli.NewFlagSet("view")
	set.StringVar(&c.Style, "s", "", "style file")
	if err := set.Parse(args); err != nil {
		return err
	}
	def, style, err := loadChart(set.Arg(0), c.Style)
	if err != nil {
		return err
	}
	opts := config.Options{
		Base:  tui.Style(),
		Style: style,
		// the terminal is taken by the chart
		Logger: log.New(io.Discard),
	}
	v, err := def.Build(opts)
	if err != nil {
		return err
	}
	title := def.Title
	if title == "" {
		title = filepath.Base(set.Arg(0))
	}
	reload := func(v *view.View) error {
		return def.Configure(v, opts)
	}
	return tui.Run(tui.New(v, title, reload))
}

type InfoCommand struct {
	Width  int
	Height int
	Style  string
}

func (c InfoCommand) Run(args []string) error {
	set := cli.NewFlagSet("info")
	set.IntVar(&c.Width, "w", 800, "chart width")
	set.IntVar(&c.Height, "h", 600, "chart height")
	set.StringVar(&c.Style, "s", "", "style file")
	if err := set.Parse(args); err != nil {
		return err
	}
	def, style, err := loadChart(set.Arg(0), c.Style)
	if err != nil {
		return err
	}
	v, err := def.Build(config.Options{
		Style:  style,
		Logger: logger(),
	})
	if err != nil {
		return err
	}
	v.Show()
	if !v.PreDraw(layout.NewRect(0, 0, float64(c.Width), float64(c.Height))) {
		return fmt.Errorf("%s: chart can not be laid out", set.Arg(0))
	}
	fmt.Fprintf(os.Stdout, "frame: %s", v.Frame())
	fmt.Fprintln(os.Stdout)
	fmt.Fprintf(os.Stdout, "inner: %s", v.InnerBounds())
	fmt.Fprintln(os.Stdout)
	fmt.Fprintf(os.Stdout, "zero: %.2f, step: %.2f", v.ZeroPosition(), v.Step())
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout)

	if err := csv.WritePoints(os.Stdout, v.Data()); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return writeRegions(os.Stdout, v)
}

func writeRegions(w io.Writer, v *view.View) error {
	var (
		ws   = csv.NewWriter(w)
		rt   = v.Regions()
		data = v.Data()
	)
	ws.Write([]string{"set", "index", "left", "top", "right", "bottom"})
	for s := 0; s < rt.Len(); s++ {
		for i, r := range rt.Bounds(s) {
			row := []string{
				data[s].Name,
				fmt.Sprint(i),
				fmt.Sprintf("%.2f", r.Left),
				fmt.Sprintf("%.2f", r.Top),
				fmt.Sprintf("%.2f", r.Right),
				fmt.Sprintf("%.2f", r.Bottom),
			}
			if err := ws.Write(row); err != nil {
				return err
			}
		}
	}
	return ws.Flush()
}

func loadChart(file, styleFile string) (*config.Chart, *config.Style, error) {
	if file == "" {
		return nil, nil, fmt.Errorf("no chart file given")
	}
	def, err := config.Load(file)
	if err != nil {
		return nil, nil, err
	}
	if styleFile == "" {
		return def, nil, nil
	}
	style, err := config.LoadStyle(styleFile)
	if err != nil {
		return nil, nil, err
	}
	return def, style, nil
}

func logger() *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "chartview",
		Level:  level,
	})
}
