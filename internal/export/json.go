package export

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/steps"
)

// Recorder keeps every frame it is given.
type Recorder struct {
	frames []steps.Frame
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Apply(_ context.Context, f steps.Frame) error {
	r.frames = append(r.frames, f)
	return nil
}

func (r *Recorder) Frames() []steps.Frame { return r.frames }

type TraceStep struct {
	Seq     int    `json:"seq"`
	Kind    string `json:"kind"`
	Indices []int  `json:"indices"`
	Values  []int  `json:"values,omitempty"`
	Sorted  []int  `json:"sorted,omitempty"`
}

type TraceData struct {
	ID        string      `json:"id"`
	Algorithm string      `json:"algorithm"`
	Cancelled bool        `json:"cancelled,omitempty"`
	Input     []int       `json:"input"`
	Output    []int       `json:"output"`
	Compares  int         `json:"compares"`
	Swaps     int         `json:"swaps"`
	Steps     []TraceStep `json:"steps"`
}

// NewTraceData pairs a run result with its recorded frames. Array state is
// kept only on steps that changed it, sorted indices only on steps that
// added one.
func NewTraceData(result *engine.Result, frames []steps.Frame) TraceData {
	data := TraceData{
		ID:        result.ID,
		Algorithm: result.Algorithm,
		Cancelled: result.Cancelled,
		Input:     result.Input,
		Output:    result.Values,
		Compares:  result.Stats.Compares,
		Swaps:     result.Stats.Swaps,
		Steps:     make([]TraceStep, len(frames)),
	}

	for i, f := range frames {
		ts := TraceStep{
			Seq:     f.Seq,
			Kind:    f.Step.Kind.String(),
			Indices: f.Step.Indices(),
		}
		switch f.Step.Kind {
		case steps.KindSwapped:
			ts.Values = f.Values
		case steps.KindSorted:
			ts.Sorted = f.Sorted.Order()
		}
		data.Steps[i] = ts
	}

	return data
}

func WriteJSON(w io.Writer, result *engine.Result, frames []steps.Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewTraceData(result, frames))
}

func ExportJSON(path string, result *engine.Result, frames []steps.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, result, frames)
}
