package render

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/steps"
)

// Logger writes one log entry per step. Array contents are attached only to
// steps that change them.
type Logger struct {
	log   logrus.FieldLogger
	level logrus.Level
}

func NewLogger(log logrus.FieldLogger, level logrus.Level) *Logger {
	return &Logger{log: log, level: level}
}

func (l *Logger) Apply(_ context.Context, f steps.Frame) error {
	fields := logrus.Fields{
		"seq":    f.Seq,
		"step":   f.Step.String(),
		"sorted": f.Sorted.Len(),
	}
	if f.Step.Kind == steps.KindSwapped {
		fields["values"] = fmt.Sprint(f.Values)
	}

	entry := l.log.WithFields(fields)
	switch l.level {
	case logrus.DebugLevel, logrus.TraceLevel:
		entry.Debug("step")
	default:
		entry.Info("step")
	}
	return nil
}
