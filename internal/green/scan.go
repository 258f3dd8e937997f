package green

import (
	"context"

	"github.com/empathycom/circletron/internal/circleci"
)

// Scanner walks a branch's pipelines looking for the most recent fully
// green one.
type Scanner struct {
	Workflows WorkflowLister
}

// Scan evaluates pipelines one at a time in the order given (the API
// returns most recent first) and returns the first green one, or nil when
// none qualifies. The loop is deliberately sequential and short-circuits on
// the first match: evaluating later pipelines, or fetching workflows
// concurrently, would spend network calls whose results can never change
// the answer. An evaluation error aborts the scan.
func (s *Scanner) Scan(ctx context.Context, pipelines []circleci.Pipeline) (*circleci.Pipeline, error) {
	evaluator := Evaluator{Workflows: s.Workflows}
	for i := range pipelines {
		ok, err := evaluator.IsGreen(ctx, pipelines[i])
		if err != nil {
			return nil, err
		}
		if ok {
			return &pipelines[i], nil
		}
	}
	return nil, nil
}
