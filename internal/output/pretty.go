package output

import (
	"fmt"
	"io"

	"github.com/empathycom/circletron/internal/circleci"
	"github.com/empathycom/circletron/internal/report"
)

// Renderer is implemented by both output formats.
type Renderer interface {
	RenderResolution(res report.Resolution) error
	RenderPipelines(rep PipelinesReport) error
}

// PipelinesReport captures the pipelines listing schema.
type PipelinesReport struct {
	Slug      string                   `json:"slug"`
	Branch    string                   `json:"branch,omitempty"`
	Pipelines []report.PipelineSummary `json:"pipelines"`
}

// PrettyRenderer renders results in a human-friendly format.
type PrettyRenderer struct {
	out io.Writer
}

// NewPretty creates a PrettyRenderer writing to the provided writer.
func NewPretty(out io.Writer) *PrettyRenderer {
	return &PrettyRenderer{out: out}
}

// RenderResolution prints the resolved revision on its own line. When no
// green build exists it prints nothing, so callers can treat empty output
// as absence.
func (p *PrettyRenderer) RenderResolution(res report.Resolution) error {
	if !res.Found {
		return nil
	}
	_, err := fmt.Fprintln(p.out, res.Revision)
	return err
}

// RenderPipelines renders pipelines and their workflows in list mode.
func (p *PrettyRenderer) RenderPipelines(rep PipelinesReport) error {
	for _, pl := range rep.Pipelines {
		if _, err := fmt.Fprintf(p.out, "Pipeline #%d %s\n", pl.Number, decoratePipeline(pl)); err != nil {
			return err
		}
		for _, msg := range pl.Errors {
			if _, err := fmt.Fprintf(p.out, "  ! %s\n", msg); err != nil {
				return err
			}
		}
		for _, wf := range pl.Workflows {
			label := fmt.Sprintf("%s %s: %s", statusGlyph(wf.Status), wf.Name, wf.Status)
			if wf.Runs > 1 {
				label = fmt.Sprintf("%s (%d runs)", label, wf.Runs)
			}
			if _, err := fmt.Fprintf(p.out, "  %s\n", label); err != nil {
				return err
			}
		}
	}
	return nil
}

func decoratePipeline(pl report.PipelineSummary) string {
	rev := pl.Revision
	if rev == "" {
		rev = "no revision"
	} else if len(rev) > 12 {
		rev = rev[:12]
	}
	decorated := fmt.Sprintf("%s [%s]", rev, pl.State)
	if !pl.CreatedAt.IsZero() {
		decorated = fmt.Sprintf("%s %s", decorated, pl.CreatedAt.Format("2006-01-02 15:04"))
	}
	return decorated
}

func statusGlyph(status string) string {
	switch circleci.WorkflowStatus(status) {
	case circleci.WorkflowSuccess:
		return "✓"
	case circleci.WorkflowFailed, circleci.WorkflowError, circleci.WorkflowFailing, circleci.WorkflowCanceled:
		return "✗"
	case circleci.WorkflowRunning, circleci.WorkflowOnHold, circleci.WorkflowNotRun:
		return "-"
	default:
		return "?"
	}
}
