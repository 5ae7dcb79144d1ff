package output

import (
	"encoding/json"
	"fmt"

	"gofetch/ansi"
)

// Stdout renders the visible rows as plain "label: value" lines for piping.
// There is no logo, no truncation and no escape sequence in the result.
func Stdout(rows []DisplayRow) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if !row.Visible() {
			continue
		}
		value := ansi.Strip(row.Value)
		if row.Label == "" {
			lines = append(lines, value)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", row.Label, value))
	}
	return lines
}

// Summary is the fixed subset of fields emitted in JSON mode.
type Summary struct {
	Title    string `json:"title"`
	OS       string `json:"os"`
	Host     string `json:"host"`
	Kernel   string `json:"kernel"`
	Uptime   string `json:"uptime"`
	Packages string `json:"packages"`
	Shell    string `json:"shell"`
	CPU      string `json:"cpu"`
	GPU      string `json:"gpu"`
	Memory   string `json:"memory"`
}

// NewSummary copies the JSON subset out of fields.
func NewSummary(fields FieldSource) Summary {
	return Summary{
		Title:    fields.Get("title"),
		OS:       fields.Get("os"),
		Host:     fields.Get("host"),
		Kernel:   fields.Get("kernel"),
		Uptime:   fields.Get("uptime"),
		Packages: fields.Get("packages"),
		Shell:    fields.Get("shell"),
		CPU:      fields.Get("cpu"),
		GPU:      fields.Get("gpu"),
		Memory:   fields.Get("memory"),
	}
}

// JSON encodes the summary of fields as an indented, flat object.
func JSON(fields FieldSource) ([]byte, error) {
	data, err := json.MarshalIndent(NewSummary(fields), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return data, nil
}
