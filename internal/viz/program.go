package viz

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/engine"
)

// Run shows the visualization until the user quits and returns the last
// finished run, if any.
func Run(opts Options) (*engine.Result, error) {
	if len(opts.Values) == 0 {
		return nil, engine.ErrInvalidInput
	}

	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	// the program owns the terminal; stray log lines would tear the view
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result()
}
