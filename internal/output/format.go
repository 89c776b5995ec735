// Package output renders batch reports for the soundex CLI.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/isseis/go-soundex/internal/batch"
	"github.com/isseis/go-soundex/internal/color"
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how a report is rendered.
type Format string

// Supported formats
const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatGroups Format = "groups"
)

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatGroups:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or groups)", ErrUnknownFormat, s)
	}
}

// Writer renders reports in one format.
type Writer struct {
	format  Format
	palette color.Palette
}

// NewWriter creates a Writer. The palette is ignored for JSON.
func NewWriter(format Format, palette color.Palette) *Writer {
	return &Writer{format: format, palette: palette}
}

// Write renders report to w.
func (wr *Writer) Write(w io.Writer, report *batch.Report) error {
	switch wr.format {
	case FormatText:
		return wr.writeText(w, report)
	case FormatJSON:
		return writeJSON(w, report)
	case FormatGroups:
		return wr.writeGroups(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, wr.format)
	}
}

func (wr *Writer) writeText(w io.Writer, report *batch.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, res := range report.Results {
		code := res.Code
		if code == "" {
			code = "-"
		} else {
			code = wr.palette.Code(code)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", res.Name, code); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (wr *Writer) writeGroups(w io.Writer, report *batch.Report) error {
	for _, g := range report.Groups() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", wr.palette.Code(g.Code), strings.Join(g.Names, ", ")); err != nil {
			return err
		}
	}
	return nil
}

type jsonReport struct {
	RunID      string         `json:"run_id"`
	StartedAt  string         `json:"started_at"`
	DurationMS float64        `json:"duration_ms"`
	Empty      int            `json:"empty"`
	Results    []batch.Result `json:"results"`
	Groups     []batch.Group  `json:"groups"`
}

func writeJSON(w io.Writer, report *batch.Report) error {
	doc := jsonReport{
		RunID:      report.RunID,
		StartedAt:  report.StartedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		DurationMS: float64(report.Duration.Microseconds()) / 1000,
		Empty:      report.Empty,
		Results:    report.Results,
		Groups:     report.Groups(),
	}
	if doc.Results == nil {
		doc.Results = []batch.Result{}
	}
	if doc.Groups == nil {
		doc.Groups = []batch.Group{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
