package green

import (
	"context"

	log "github.com/charmbracelet/log"

	"github.com/empathycom/circletron/internal/circleci"
	"github.com/empathycom/circletron/internal/report"
)

// PipelineLister fetches the ordered pipeline list for a branch.
// *circleci.Client satisfies it.
type PipelineLister interface {
	ListPipelines(ctx context.Context, slug, branch string) ([]circleci.Pipeline, error)
}

// Resolver finds the revision of a branch's most recent fully green build.
// Each Resolve call is independent; the resolver holds no state between
// calls.
type Resolver struct {
	Slug      string
	Pipelines PipelineLister
	Workflows WorkflowLister
	Logger    *log.Logger
}

// Resolve lists the branch's pipelines, scans them for the first green one
// and extracts its revision. A missing green build is not an error: the
// returned Resolution simply reports Found=false. Fetch and decode failures
// abort the scan, are logged here, and are returned so the caller can
// distinguish "nothing green" from "could not tell".
func (r *Resolver) Resolve(ctx context.Context, branch string) (report.Resolution, error) {
	res := report.Resolution{Slug: r.Slug, Branch: branch}

	pipelines, err := r.Pipelines.ListPipelines(ctx, r.Slug, branch)
	if err != nil {
		r.logger().Error("listing pipelines failed", "slug", r.Slug, "branch", branch, "err", err)
		return res, err
	}
	res.Candidates = len(pipelines)

	scanner := Scanner{Workflows: r.Workflows}
	winner, err := scanner.Scan(ctx, pipelines)
	if err != nil {
		r.logger().Error("pipeline evaluation failed", "slug", r.Slug, "branch", branch, "err", err)
		return res, err
	}
	if winner == nil {
		r.logger().Debug("no fully green build", "slug", r.Slug, "branch", branch, "candidates", len(pipelines))
		return res, nil
	}

	res.Found = true
	res.Revision = winner.VCS.Revision
	res.PipelineID = winner.ID
	res.PipelineNumber = winner.Number
	r.logger().Debug("found green build",
		"slug", r.Slug, "branch", branch, "pipeline", winner.ID, "revision", winner.VCS.Revision)
	return res, nil
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
