package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sortviz/internal/render"
)

const (
	background = "#0a0a0a"
	labelSpace = 16.0
	arrowSpace = 24.0
)

// BoardToSVG draws the board as one rect per bar, colored by role, with the
// swap arrow when one is showing.
func BoardToSVG(board *render.Board, theme render.Theme, width, height int) string {
	n := board.Len()
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}

	col := float64(width) / float64(n)
	gap := col * 0.1
	plot := float64(height) - labelSpace - arrowSpace
	if plot < 1 {
		plot = 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	for i, bar := range board.Bars() {
		h := float64(board.Height(i, int(plot))) / 8
		x := float64(i)*col + gap/2
		y := arrowSpace + plot - h
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, col-gap, h, theme.Color(bar.Role)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="10" text-anchor="middle">%d</text>
`, float64(i)*col+col/2, float64(height)-4, theme.Muted, bar.Value))
	}

	if a, ok := board.Arrow(); ok {
		x1 := float64(a.From)*col + col/2
		x2 := float64(a.To)*col + col/2
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="M%.1f,%.1f Q%.1f,%.1f %.1f,%.1f"/>
`, theme.Arrow, x1, arrowSpace, (x1+x2)/2, 2.0, x2, arrowSpace))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SaveBoardSVG writes BoardToSVG output to path.
func SaveBoardSVG(path string, board *render.Board, theme render.Theme, width, height int) error {
	svg := BoardToSVG(board, theme, width, height)
	if svg == "" {
		return fmt.Errorf("nothing to export")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
