package controller

import (
	"encoding/json"
	"fmt"
	"io"

	m "github.com/mouse-blink/cooplint/internal/model"
)

// JSONUI writes the raw report for machine consumption.
type JSONUI struct {
	w io.Writer
}

// NewJSONUI creates a new JSONUI.
func NewJSONUI(w io.Writer) *JSONUI {
	return &JSONUI{w: w}
}

// Render encodes the report as indented JSON.
func (j *JSONUI) Render(report m.Report) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}
