package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"order-analytics/pkg/calculator"
	"order-analytics/pkg/logger"

	"github.com/google/uuid"
)

// Envelope wraps a report with run metadata before it is written out.
type Envelope struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Start       string             `json:"start"`
	End         string             `json:"end"`
	Warnings    []string           `json:"warnings"`
	Report      *calculator.Report `json:"report"`
}

// NewEnvelope stamps rep with a fresh run ID. Open window bounds are written as "".
func NewEnvelope(rep *calculator.Report, now time.Time) Envelope {
	env := Envelope{
		RunID:       uuid.New().String(),
		GeneratedAt: now.UTC(),
		Start:       dateOrEmpty(rep.Start),
		End:         dateOrEmpty(rep.End),
		Warnings:    []string{},
		Report:      rep,
	}
	for _, w := range rep.Warnings {
		env.Warnings = append(env.Warnings, w.Error())
	}
	return env
}

func dateOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func ExportJSON(filename string, data interface{}) error {
	// Make sure the folder exists
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	logger.Info("report exported", "file", filename)
	return nil
}

func TimestampedFilename(baseDir, name string) string {
	t := time.Now().Format("20060102_150405")
	return filepath.Join(baseDir, fmt.Sprintf("%s_%s.json", name, t))
}
