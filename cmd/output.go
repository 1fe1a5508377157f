package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

func validateOutput(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be table, json or yaml)", format)
	}
}

// table is a rendered view of a result. data is what json and yaml output
// encode.
type table struct {
	headers []string
	rows    [][]string
	data    any
	empty   string
}

func (t *table) append(row ...string) {
	t.rows = append(t.rows, row)
}

// render writes the result in the requested output format
func render(w io.Writer, format string, t *table) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(t.data)
	case "yaml":
		// Round-trip through JSON so yaml keys follow the API field names.
		doc, err := jsonDocument(t.data)
		if err != nil {
			return err
		}
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(doc)
	default:
		if len(t.rows) == 0 {
			_, err := fmt.Fprintln(w, t.empty)
			return err
		}

		tw := tablewriter.NewWriter(w)
		headers := make([]any, len(t.headers))
		for i, h := range t.headers {
			headers[i] = h
		}
		tw.Header(headers...)
		for _, row := range t.rows {
			if err := tw.Append(row); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
		}
		return tw.Render()
	}
}

func jsonDocument(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return doc, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// formatSize renders a byte count the way the managers' UIs do
func formatSize(bytes float64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%.0f B", bytes)
	}
	div, exp := float64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", bytes/div, "KMGTPE"[exp])
}
