package bench

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Report is the serialised form of a Result.
type Report struct {
	RunID             string       `yaml:"runId"`
	StartedAt         time.Time    `yaml:"startedAt"`
	Algorithm         string       `yaml:"algorithm"`
	SpaceSize         int          `yaml:"spaceSize"`
	Items             int          `yaml:"items"`
	Repetitions       int          `yaml:"repetitions"`
	Found             int          `yaml:"found"`
	Missed            int          `yaml:"missed"`
	SetupSeconds      float64      `yaml:"setupSeconds"`
	ElapsedSeconds    float64      `yaml:"elapsedSeconds"`
	SearchesPerSecond float64      `yaml:"searchesPerSecond"`
	Latency           LatencyStats `yaml:"latency"`
}

func (r *Result) Report() Report {
	return Report{
		RunID:             r.RunID.String(),
		StartedAt:         r.StartedAt.UTC(),
		Algorithm:         r.Algorithm,
		SpaceSize:         r.SpaceSize,
		Items:             r.Items,
		Repetitions:       r.Repetitions,
		Found:             r.Found,
		Missed:            r.Missed,
		SetupSeconds:      r.Setup.Seconds(),
		ElapsedSeconds:    r.Elapsed.Seconds(),
		SearchesPerSecond: r.SearchesPerSecond,
		Latency:           r.Latency,
	}
}

// WriteReport writes the results to path as a YAML sequence.
func WriteReport(path string, results ...*Result) error {
	reports := make([]Report, 0, len(results))
	for _, r := range results {
		reports = append(reports, r.Report())
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a file written by WriteReport.
func ReadReport(path string) ([]Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var reports []Report
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return reports, nil
}
