package tui

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/midbel/chartview/anim"
	"github.com/midbel/chartview/canvas"
	"github.com/midbel/chartview/chart"
	"github.com/midbel/chartview/format"
	"github.com/midbel/chartview/layout"
	"github.com/midbel/chartview/view"
)

const frameRate = time.Second / 30

// Style returns the chart style fitting a terminal where one unit is one
// cell.
func Style() *chart.Style {
	s := chart.DefaultStyle()
	s.AxisThickness = 1
	s.LabelsDistance = 0
	return s
}

// Reload puts back the configuration and the data of a view after it has
// been reset.
type Reload func(*view.View) error

type tickMsg time.Time

type Model struct {
	view   *view.View
	term   *canvas.Term
	box    *view.Box
	reload Reload

	title  string
	status string
	keys   keyMap
	help   help.Model

	width  int
	height int
	last   time.Time
}

func New(v *view.View, title string, reload Reload) *Model {
	m := Model{
		view:   v,
		term:   canvas.NewTerm(0, 0),
		reload: reload,
		title:  title,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	v.SetMeasurer(m.term)
	m.box = view.NewBox(m.term)
	m.box.Height = 1
	m.box.Padding = 0
	v.SetTooltip(m.box)
	v.OnEntryClick(m.onEntry)
	v.OnClick(m.onClick)
	v.ShowWith(anim.NewLinear(anim.DefaultDuration))
	return &m
}

func Run(m *Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.tick()
	case tea.KeyPressMsg:
		return m.updateKeys(msg)
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.touch(view.Press(float64(mouse.X), float64(mouse.Y)))
		}
	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		m.touch(view.Release(float64(mouse.X), float64(mouse.Y)))
	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.last)
		m.last = now
		if m.view.Advance(dt) {
			return m, m.tick()
		}
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Update):
		if err := m.update(); err != nil {
			if errors.Is(err, view.ErrAnimating) {
				m.status = "busy"
			} else {
				m.status = err.Error()
			}
			return m, nil
		}
		m.status = "updated"
		return m, m.tick()
	case key.Matches(msg, m.keys.Replay):
		m.view.DismissAllTooltips()
		m.view.Show()
		m.status = ""
		return m, m.tick()
	case key.Matches(msg, m.keys.Reset):
		m.view.Reset()
		if m.reload != nil {
			if err := m.reload(m.view); err != nil {
				m.status = err.Error()
				return m, nil
			}
		}
		m.view.DismissAllTooltips()
		m.view.Show()
		m.status = "reset"
		return m, m.tick()
	case key.Matches(msg, m.keys.Dismiss):
		m.view.DismissAllTooltips()
		m.status = ""
	}
	return m, nil
}

func (m *Model) View() tea.View {
	m.term.Clear()
	if m.view.PreDraw(m.term.Frame()) {
		m.view.Draw(m.term)
	}
	var (
		title  = lipgloss.NewStyle().Bold(true).Render(m.title)
		footer = m.help.View(m.keys)
	)
	if m.status != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, m.status, "  ", footer)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.term.Render(), footer)

	v := tea.NewView(body)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// update shifts the values of every set by one entry and animates the
// entries to their new position. The values are restored when the view
// refuses the update.
func (m *Model) update() error {
	var (
		sets = m.view.Data()
		prev = make([][]float64, len(sets))
	)
	for i, s := range sets {
		prev[i] = s.Values()
		if err := m.view.UpdateValues(i, rotate(prev[i])); err != nil {
			return err
		}
	}
	if err := m.view.NotifyDataUpdate(); err != nil {
		for i := range sets {
			m.view.UpdateValues(i, prev[i])
		}
		return err
	}
	m.view.DismissAllTooltips()
	return nil
}

func rotate(values []float64) []float64 {
	if len(values) == 0 {
		return values
	}
	return append(slices.Clone(values[1:]), values[0])
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	// title and help take one line each
	m.term = canvas.NewTerm(width, max(height-2, 0))
	m.view.SetMeasurer(m.term)
	m.box.Measurer = m.term
	m.view.DismissAllTooltips()
	m.view.Show()
}

// touch converts screen coordinates to the ones of the chart canvas which
// starts below the title.
func (m *Model) touch(ev view.TouchEvent) {
	ev.Y--
	if !m.view.Touch(ev) {
		m.status = "busy"
	}
}

func (m *Model) onEntry(set, index int, area layout.Rect) {
	s := m.view.Data()[set]
	e, err := s.Entry(index)
	if err != nil {
		return
	}
	m.status = fmt.Sprintf("%s/%s: %s", s.Name, e.Label, format.Must(nil, e.Value()))
}

func (m *Model) onClick() {
	m.status = ""
}

func (m *Model) tick() tea.Cmd {
	m.last = time.Now()
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
