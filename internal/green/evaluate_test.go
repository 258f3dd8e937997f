package green

import (
	"context"
	"errors"
	"testing"

	"github.com/empathycom/circletron/internal/circleci"
)

type fakeWorkflowLister struct {
	byPipeline map[string][]circleci.Workflow
	err        error
	calls      []string
}

func (f *fakeWorkflowLister) ListWorkflows(ctx context.Context, pipelineID string) ([]circleci.Workflow, error) {
	f.calls = append(f.calls, pipelineID)
	if f.err != nil {
		return nil, f.err
	}
	return f.byPipeline[pipelineID], nil
}

func created(id string) circleci.Pipeline {
	return circleci.Pipeline{ID: id, State: circleci.PipelineCreated}
}

func TestIsGreenAllSuccess(t *testing.T) {
	lister := &fakeWorkflowLister{byPipeline: map[string][]circleci.Workflow{
		"p1": {
			wf("w1", "build", circleci.WorkflowSuccess),
			wf("w2", "test", circleci.WorkflowSuccess),
		},
	}}
	evaluator := Evaluator{Workflows: lister}

	ok, err := evaluator.IsGreen(context.Background(), created("p1"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ok {
		t.Fatalf("expected pipeline to be green")
	}
}

func TestIsGreenAcceptsOnHold(t *testing.T) {
	lister := &fakeWorkflowLister{byPipeline: map[string][]circleci.Workflow{
		"p1": {
			wf("w1", "build", circleci.WorkflowSuccess),
			wf("w2", "approve-deploy", circleci.WorkflowOnHold),
		},
	}}
	evaluator := Evaluator{Workflows: lister}

	ok, err := evaluator.IsGreen(context.Background(), created("p1"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ok {
		t.Fatalf("expected on_hold workflow to count as green")
	}
}

func TestIsGreenRejectsAnyFailure(t *testing.T) {
	lister := &fakeWorkflowLister{byPipeline: map[string][]circleci.Workflow{
		"p1": {
			wf("w1", "build", circleci.WorkflowSuccess),
			wf("w2", "test", circleci.WorkflowFailed),
		},
	}}
	evaluator := Evaluator{Workflows: lister}

	ok, err := evaluator.IsGreen(context.Background(), created("p1"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ok {
		t.Fatalf("expected mixed pipeline to not be green")
	}
}

func TestIsGreenRerunRecovery(t *testing.T) {
	lister := &fakeWorkflowLister{byPipeline: map[string][]circleci.Workflow{
		"p1": {
			wf("w1", "build", circleci.WorkflowFailed),
			wf("w2", "build", circleci.WorkflowSuccess),
			wf("w3", "test", circleci.WorkflowSuccess),
		},
	}}
	evaluator := Evaluator{Workflows: lister}

	ok, err := evaluator.IsGreen(context.Background(), created("p1"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ok {
		t.Fatalf("expected successful rerun to make the pipeline green")
	}
}

func TestIsGreenNoWorkflows(t *testing.T) {
	lister := &fakeWorkflowLister{byPipeline: map[string][]circleci.Workflow{
		"p1": {},
	}}
	evaluator := Evaluator{Workflows: lister}

	ok, err := evaluator.IsGreen(context.Background(), created("p1"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ok {
		t.Fatalf("expected pipeline without workflows to not be green")
	}
}

func TestIsGreenIgnoresNonCreated(t *testing.T) {
	states := []circleci.PipelineState{
		circleci.PipelineErrored,
		circleci.PipelineSetupPending,
		circleci.PipelineSetup,
		circleci.PipelinePending,
	}
	for _, state := range states {
		lister := &fakeWorkflowLister{}
		evaluator := Evaluator{Workflows: lister}

		ok, err := evaluator.IsGreen(context.Background(), circleci.Pipeline{ID: "p1", State: state})
		if err != nil {
			t.Fatalf("evaluate %s: %v", state, err)
		}
		if ok {
			t.Fatalf("expected %s pipeline to not be green", state)
		}
		if len(lister.calls) != 0 {
			t.Fatalf("expected no workflow fetch for %s pipeline, got %v", state, lister.calls)
		}
	}
}

func TestIsGreenPropagatesFetchError(t *testing.T) {
	wantErr := errors.New("boom")
	lister := &fakeWorkflowLister{err: wantErr}
	evaluator := Evaluator{Workflows: lister}

	ok, err := evaluator.IsGreen(context.Background(), created("p1"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if ok {
		t.Fatalf("expected not green on error")
	}
}
