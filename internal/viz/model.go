package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/steps"
)

const (
	width           = 80
	height          = 24
	statsWidth      = 40
	historyCapacity = 600
)

// Options configure a visualization session.
type Options struct {
	Algorithm engine.Algorithm
	Values    []int
	Pacer     engine.Pacer
	Theme     render.Theme
	// Reshuffle produces the array for a restart. When nil a restart sorts
	// the original values again.
	Reshuffle func() ([]int, error)
}

type doneMsg struct {
	gen    int
	result *engine.Result
	err    error
}

// Model owns the board for the active run and the run's plumbing.
type Model struct {
	opts     Options
	keys     keyMap
	theme    render.Theme
	progress progress.Model

	gen    int
	ctx    context.Context
	cancel context.CancelFunc
	frames chan frameMsg
	input  []int

	board    *render.Board
	compares int
	swaps    int
	history  []float64
	result   *engine.Result
	err      error
	running  bool

	width, height int
	showHelp      bool
}

func NewModel(opts Options) Model {
	if opts.Pacer == nil {
		opts.Pacer = engine.DefaultPacer()
	}
	if opts.Theme.Name == "" {
		opts.Theme = render.ThemeCyberpunk
	}
	m := Model{
		opts:     opts,
		keys:     newKeyMap(),
		theme:    opts.Theme,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:    width,
		height:   height,
	}
	m.reset(opts.Values)
	return m
}

// reset prepares a new generation for values. The previous run, if any,
// must already be cancelled.
func (m *Model) reset(values []int) {
	m.gen++
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.frames = make(chan frameMsg)
	m.input = values
	m.board = render.NewBoard(values)
	m.compares, m.swaps = 0, 0
	m.history = make([]float64, 0, historyCapacity)
	m.result, m.err = nil, nil
	m.running = true
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runCmd(), m.waitCmd())
}

// runCmd sorts in the command goroutine and reports the outcome when done.
func (m Model) runCmd() tea.Cmd {
	gen, ctx, frames, input := m.gen, m.ctx, m.frames, m.input
	eng := engine.New(m.opts.Algorithm, m.opts.Pacer)
	eng.AddSink(channelSink{gen: gen, frames: frames})

	return func() tea.Msg {
		defer close(frames)
		result, err := eng.Run(ctx, input)
		return doneMsg{gen: gen, result: result, err: err}
	}
}

func (m Model) waitCmd() tea.Cmd {
	frames := m.frames
	return func() tea.Msg {
		msg, ok := <-frames
		if !ok {
			return nil
		}
		return msg
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			return m.restart()
		case key.Matches(msg, m.keys.Theme):
			m.theme = render.NextTheme(m.theme.Name)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case frameMsg:
		defer close(msg.ack)
		if msg.gen != m.gen {
			return m, nil
		}
		m.apply(msg.frame)
		return m, m.waitCmd()
	case doneMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.running = false
		m.result, m.err = msg.result, msg.err
	}
	return m, nil
}

func (m *Model) apply(f steps.Frame) {
	_ = m.board.Apply(m.ctx, f)

	switch f.Step.Kind {
	case steps.KindCompare:
		m.compares++
		m.history = append(m.history, float64(m.swaps))
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
	case steps.KindSwap:
		m.swaps++
	}
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	m.cancel()

	values := m.opts.Values
	if m.opts.Reshuffle != nil {
		next, err := m.opts.Reshuffle()
		if err != nil {
			m.err = err
			return m, nil
		}
		values = next
	}

	m.reset(values)
	return m, tea.Batch(m.runCmd(), m.waitCmd())
}

// Result is the outcome of the last finished run, nil while running.
func (m Model) Result() (*engine.Result, error) {
	return m.result, m.err
}

func (m Model) status() string {
	switch {
	case m.running:
		return statusRunning.Render("RUNNING")
	case engine.IsCancelled(m.err):
		return statusCancelled.Render("CANCELLED")
	case m.err != nil:
		return statusFailed.Render("FAILED: " + m.err.Error())
	default:
		return statusDone.Render("DONE")
	}
}

func (m Model) View() string {
	boardWidth := m.width - statsWidth - 8
	if boardWidth < 10 {
		boardWidth = 10
	}
	boardHeight := m.height - 6
	if boardHeight < 4 {
		boardHeight = 4
	}
	canvasView := canvasStyle.Render(m.board.Render(m.theme, boardWidth, boardHeight))

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.opts.Algorithm.Name()+" sort")) + "\n")
	s.WriteString(m.status() + "\n\n")

	s.WriteString(labelStyle.Render("Size") + valueStyle.Render(fmt.Sprintf("%d", m.board.Len())) + "\n")
	s.WriteString(labelStyle.Render("Compares") + valueStyle.Render(fmt.Sprintf("%d", m.compares)) + "\n")
	s.WriteString(labelStyle.Render("Swaps") + valueStyle.Render(fmt.Sprintf("%d", m.swaps)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d %s", m.board.Seq(), m.board.Last())) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")
	if m.result != nil {
		s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(m.result.Stats.Elapsed.Round(time.Millisecond).String()) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(statsWidth-12), asciigraph.Caption("swaps / compares"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	m.progress.Width = statsWidth - 6
	s.WriteString("\n" + m.progress.ViewAs(m.board.Progress()) + "\n")
	s.WriteString(valueStyle.Render(fmt.Sprintf("sorted %d/%d", m.board.Sorted().Len(), m.board.Len())) + "\n")

	if m.showHelp {
		s.WriteString("\n" + legend(m.theme))
	}
	s.WriteString(helpStyle.Render(helpLine(m.keys.bindings())))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
