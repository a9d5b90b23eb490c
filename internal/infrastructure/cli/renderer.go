package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/timharek/wcarbon/internal/domain"
)

// Renderer prints one record per query outcome.
type Renderer struct {
	out      io.Writer
	errOut   io.Writer
	format   domain.Format
	encoding domain.Encoding
	records  int
}

// NewRenderer builds a renderer for the given output selection.
func NewRenderer(out, errOut io.Writer, format domain.Format, encoding domain.Encoding) *Renderer {
	return &Renderer{out: out, errOut: errOut, format: format, encoding: encoding}
}

// Render prints a successful outcome to out, or an error marker to errOut.
func (r *Renderer) Render(outcome domain.Outcome) error {
	if outcome.Failed() {
		_, err := fmt.Fprintf(r.errOut, "error: %v\n", outcome.Err)
		return err
	}

	var err error
	switch r.encoding {
	case domain.EncodingYAML:
		err = r.renderYAML(outcome.Value(r.format))
	default:
		err = r.renderJSON(outcome)
	}
	if err == nil {
		r.records++
	}
	return err
}

func (r *Renderer) renderJSON(outcome domain.Outcome) error {
	var buf bytes.Buffer
	if r.format == domain.FormatLong && len(outcome.Raw) > 0 {
		if err := json.Indent(&buf, outcome.Raw, "", "  "); err != nil {
			return fmt.Errorf("indent response: %w", err)
		}
	} else {
		raw, err := json.MarshalIndent(outcome.Value(r.format), "", "  ")
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		buf.Write(raw)
	}
	buf.WriteByte('\n')
	_, err := r.out.Write(buf.Bytes())
	return err
}

func (r *Renderer) renderYAML(value any) error {
	if r.records > 0 {
		if _, err := io.WriteString(r.out, "---\n"); err != nil {
			return err
		}
	}
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return enc.Close()
}
