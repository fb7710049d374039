package viz

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/steps"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(statsWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	statusRunning   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusDone      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	statusCancelled = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	statusFailed    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
)

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, strings.ToUpper(h.Key)+":"+h.Desc)
	}
	return strings.Join(parts, "  ")
}

func legend(theme render.Theme) string {
	rows := []struct {
		role steps.Role
		desc string
	}{
		{steps.RoleNone, "unsorted"},
		{steps.RoleCandidate, "current minimum"},
		{steps.RoleCompared, "being compared"},
		{steps.RoleSwapped, "being exchanged"},
		{steps.RoleSorted, "final position"},
	}

	var b strings.Builder
	b.WriteString("LEGEND\n")
	for _, r := range rows {
		swatch := lipgloss.NewStyle().Foreground(theme.Color(r.role)).Render("██")
		b.WriteString(swatch + " " + labelStyle.Render(r.role.String()) + valueStyle.Render(r.desc) + "\n")
	}
	arrow := lipgloss.NewStyle().Foreground(theme.Arrow).Render("╭╮")
	b.WriteString(arrow + " " + labelStyle.Render("arrow") + valueStyle.Render("pending swap") + "\n")
	return b.String()
}
