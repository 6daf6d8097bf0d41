// Package report presents the contents of the result panels.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format is the output format of the results.
type Format int

const (
	// Text prints the panels through the pretty printer.
	Text Format = iota
	// JSON writes one JSON document.
	JSON
	// YAML writes one YAML document.
	YAML
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("<unrecognized format %d>", int(f))
	}
}

// ParseFormat parses "text", "json", or "yaml" (case-insensitive).
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return Text, true
	case "json":
		return JSON, true
	case "yaml", "yml":
		return YAML, true
	default:
		return Text, false
	}
}

// Encode writes v to w in a structured format. [Text] is not a structured
// format and is rejected.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)

	case YAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(out)
		return err

	default:
		return fmt.Errorf("format %s cannot encode structured results", format)
	}
}
