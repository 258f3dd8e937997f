package output

import (
	"encoding/json"
	"io"

	"github.com/empathycom/circletron/internal/report"
)

// JSONRenderer emits structured results.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// RenderResolution encodes the resolution as JSON. Unlike the pretty
// renderer it always emits a document, so "not found" is visible in the
// found field instead of in the absence of output.
func (j *JSONRenderer) RenderResolution(res report.Resolution) error {
	return j.render(res)
}

// RenderPipelines encodes the pipelines listing as JSON.
func (j *JSONRenderer) RenderPipelines(rep PipelinesReport) error {
	return j.render(rep)
}

func (j *JSONRenderer) render(v any) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
