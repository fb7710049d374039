package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/steps"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Terminal draws a board straight to a writer with ANSI escapes, for
// terminals where a full-screen program is unwanted. Frames arriving faster
// than the frame rate update the board but are not drawn.
type Terminal struct {
	out       io.Writer
	board     *Board
	theme     Theme
	title     string
	width     int
	height    int
	frameRate int
	lastFrame time.Time
}

func NewTerminal(out io.Writer, values []int, title string, theme Theme, frameRate int) *Terminal {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &Terminal{
		out:       out,
		board:     NewBoard(values),
		theme:     theme,
		title:     title,
		width:     100,
		height:    20,
		frameRate: frameRate,
	}
}

// Resize sets the drawing area in columns and bar rows.
func (t *Terminal) Resize(width, height int) {
	t.width, t.height = width, height
}

func (t *Terminal) Board() *Board { return t.board }

func (t *Terminal) Apply(ctx context.Context, f steps.Frame) error {
	if err := t.board.Apply(ctx, f); err != nil {
		return err
	}
	if f.Sorted.Complete() {
		return t.Flush()
	}
	if time.Since(t.lastFrame) < time.Second/time.Duration(t.frameRate) {
		return nil
	}
	return t.Flush()
}

// Flush draws the current board regardless of the frame rate.
func (t *Terminal) Flush() error {
	t.lastFrame = time.Now()

	title := lipgloss.NewStyle().Bold(true).Foreground(t.theme.Text)
	muted := lipgloss.NewStyle().Foreground(t.theme.Muted)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString("  " + title.Render(t.title))
	b.WriteString(muted.Render(fmt.Sprintf("  step %d  %s", t.board.Seq(), t.board.Last())) + "\n")
	b.WriteString("  " + muted.Render(strings.Repeat("-", t.width)) + "\n")

	for _, line := range strings.Split(t.board.Render(t.theme, t.width, t.height), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("  " + muted.Render(strings.Repeat("-", t.width)) + "\n")
	b.WriteString(fmt.Sprintf("  sorted %d/%d\n", t.board.Sorted().Len(), t.board.Len()))

	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Terminal) Start() { fmt.Fprint(t.out, hideCursor) }
func (t *Terminal) Stop()  { fmt.Fprint(t.out, showCursor) }
