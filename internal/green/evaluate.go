package green

import (
	"context"

	"github.com/empathycom/circletron/internal/circleci"
)

// WorkflowLister fetches the workflow runs recorded for a pipeline.
// *circleci.Client satisfies it.
type WorkflowLister interface {
	ListWorkflows(ctx context.Context, pipelineID string) ([]circleci.Workflow, error)
}

// Evaluator judges whether a single pipeline is fully green.
type Evaluator struct {
	Workflows WorkflowLister
}

// IsGreen reports whether every deduplicated workflow of the pipeline
// finished success or on_hold. Only pipelines in the created state are
// eligible: anything still setting up or errored is not green and its
// workflows are never fetched. A pipeline that produced zero workflow runs
// is not green either. A fetch failure is returned as-is so the caller
// aborts the scan instead of treating the pipeline as anything.
func (e *Evaluator) IsGreen(ctx context.Context, pipeline circleci.Pipeline) (bool, error) {
	if pipeline.State != circleci.PipelineCreated {
		return false, nil
	}

	workflows, err := e.Workflows.ListWorkflows(ctx, pipeline.ID)
	if err != nil {
		return false, err
	}

	deduped := Dedupe(workflows)
	if len(deduped) == 0 {
		return false, nil
	}
	for _, wf := range deduped {
		if wf.Status != circleci.WorkflowSuccess && wf.Status != circleci.WorkflowOnHold {
			return false, nil
		}
	}
	return true, nil
}
