// Package forecast serves demand predictions from a pre-trained linear
// regression artifact. The artifact is produced by an offline training
// pipeline and loaded once at process start; it is never retrained or
// reloaded while serving, so a Model is safe for unsynchronized concurrent
// reads.
package forecast

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Model is the on-disk artifact: a multi-output regression over a single
// feature (the query date as seconds since epoch). Output i is
// intercepts[i] + coefficients[i][0] * timestamp.
type Model struct {
	Feature      string      `json:"feature"`
	Outputs      []string    `json:"outputs"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// Load reads and validates the artifact at path.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Outputs) == 0 {
		return fmt.Errorf("no outputs")
	}
	if len(m.Coefficients) != len(m.Outputs) || len(m.Intercepts) != len(m.Outputs) {
		return fmt.Errorf("got %d outputs, %d coefficient rows, %d intercepts",
			len(m.Outputs), len(m.Coefficients), len(m.Intercepts))
	}
	for i, row := range m.Coefficients {
		if len(row) != 1 {
			return fmt.Errorf("coefficient row %d has %d entries, want 1", i, len(row))
		}
	}
	return nil
}

// Predict evaluates every output for the given date. Pure function of the
// loaded artifact and the timestamp.
func (m *Model) Predict(t time.Time) []float64 {
	x := float64(t.Unix())
	out := make([]float64, len(m.Outputs))
	for i := range m.Outputs {
		out[i] = m.Intercepts[i] + m.Coefficients[i][0]*x
	}
	return out
}

// PredictNamed zips output names to predicted values.
func (m *Model) PredictNamed(t time.Time) map[string]float64 {
	values := m.Predict(t)
	named := make(map[string]float64, len(values))
	for i, name := range m.Outputs {
		named[name] = values[i]
	}
	return named
}
