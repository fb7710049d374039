package render

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/steps"
)

// eighth blocks, lowest first
var partials = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type Bar struct {
	Value int
	Role  steps.Role
}

// Arrow links the two indices of a pending swap.
type Arrow struct {
	From, To int
}

// Board is the drawing state for one run. It is not safe for concurrent
// use; whoever owns the screen applies frames and renders.
type Board struct {
	values    []int
	max       int
	sorted    *steps.SortedSet
	roles     steps.HighlightMap
	candidate int
	arrow     *Arrow
	last      steps.Step
	seq       int
}

func NewBoard(values []int) *Board {
	b := &Board{
		values:    slices.Clone(values),
		sorted:    steps.NewSortedSet(len(values)),
		roles:     steps.HighlightMap{},
		candidate: -1,
	}
	b.max = maxValue(b.values)
	return b
}

// Apply updates the board from a frame. Frames at or before the last
// applied sequence number are ignored, so redelivery is harmless.
func (b *Board) Apply(_ context.Context, f steps.Frame) error {
	if f.Seq != 0 && f.Seq <= b.seq {
		return nil
	}
	b.seq = f.Seq
	b.last = f.Step

	if len(f.Values) == len(b.values) {
		copy(b.values, f.Values)
	}
	if f.Sorted != nil {
		b.sorted = f.Sorted
	}

	b.arrow = nil
	switch f.Step.Kind {
	case steps.KindCandidate:
		b.candidate = f.Step.I
	case steps.KindSwap:
		b.candidate = -1
		b.arrow = &Arrow{From: f.Step.I, To: f.Step.J}
	case steps.KindSwapped, steps.KindSorted:
		b.candidate = -1
	}

	b.roles = steps.Highlights(f.Step, b.candidate, b.sorted)
	return nil
}

func (b *Board) Len() int { return len(b.values) }

func (b *Board) Values() []int { return slices.Clone(b.values) }

func (b *Board) Last() steps.Step { return b.last }

func (b *Board) Seq() int { return b.seq }

func (b *Board) Sorted() *steps.SortedSet { return b.sorted }

func (b *Board) Bars() []Bar {
	bars := make([]Bar, len(b.values))
	for i, v := range b.values {
		bars[i] = Bar{Value: v, Role: b.roles.Role(i)}
	}
	return bars
}

func (b *Board) Arrow() (Arrow, bool) {
	if b.arrow == nil {
		return Arrow{}, false
	}
	return *b.arrow, true
}

// Progress is the fraction of indices marked sorted.
func (b *Board) Progress() float64 {
	if len(b.values) == 0 {
		return 0
	}
	return float64(b.sorted.Len()) / float64(len(b.values))
}

// Height scales bar i to rows*8 eighth-cells relative to the largest value.
// An all-zero board is flat.
func (b *Board) Height(i, rows int) int {
	v := b.values[i]
	if b.max <= 0 || v <= 0 {
		return 0
	}
	return v * rows * 8 / b.max
}

// Render draws the board into width columns and height rows of bars, plus
// an arrow row above and a label row below.
func (b *Board) Render(theme Theme, width, height int) string {
	n := len(b.values)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}

	col := width / n
	if col < 1 {
		col = 1
	}
	barWidth := col
	if col >= 3 {
		barWidth = col - 1
	}

	styles := make(map[steps.Role]lipgloss.Style, 5)
	style := func(r steps.Role) lipgloss.Style {
		s, ok := styles[r]
		if !ok {
			s = lipgloss.NewStyle().Foreground(theme.Color(r))
			styles[r] = s
		}
		return s
	}

	lines := make([]string, 0, height+2)
	lines = append(lines, b.arrowRow(theme, n, col, barWidth))

	bars := b.Bars()
	heights := make([]int, n)
	for i := range bars {
		heights[i] = b.Height(i, height)
	}

	for row := height - 1; row >= 0; row-- {
		var line strings.Builder
		for i, bar := range bars {
			cell := ' '
			filled := heights[i] - row*8
			if filled >= 8 {
				cell = partials[7]
			} else if filled > 0 {
				cell = partials[filled-1]
			}
			seg := strings.Repeat(string(cell), barWidth)
			if cell != ' ' {
				seg = style(bar.Role).Render(seg)
			}
			line.WriteString(seg)
			line.WriteString(strings.Repeat(" ", col-barWidth))
		}
		lines = append(lines, line.String())
	}

	lines = append(lines, b.labelRow(theme, col, barWidth))
	return strings.Join(lines, "\n")
}

func (b *Board) arrowRow(theme Theme, n, col, barWidth int) string {
	a, ok := b.Arrow()
	if !ok {
		return strings.Repeat(" ", n*col)
	}
	from, to := a.From, a.To
	if from > to {
		from, to = to, from
	}

	row := []rune(strings.Repeat(" ", n*col))
	start := from*col + barWidth/2
	end := to*col + barWidth/2
	for x := start; x <= end && x < len(row); x++ {
		row[x] = '─'
	}
	row[start] = '╭'
	if end < len(row) {
		row[end] = '╮'
	}
	return lipgloss.NewStyle().Foreground(theme.Arrow).Render(string(row))
}

func (b *Board) labelRow(theme Theme, col, barWidth int) string {
	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	var line strings.Builder
	for _, v := range b.values {
		label := strconv.Itoa(v)
		if len(label) > barWidth {
			line.WriteString(strings.Repeat(" ", col))
			continue
		}
		pad := barWidth - len(label)
		left := pad / 2
		line.WriteString(strings.Repeat(" ", left))
		line.WriteString(muted.Render(label))
		line.WriteString(strings.Repeat(" ", pad-left+col-barWidth))
	}
	return line.String()
}

func maxValue(values []int) int {
	m := 0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
