package green

import (
	"testing"

	"github.com/empathycom/circletron/internal/circleci"
)

func TestRankOrdersStatuses(t *testing.T) {
	order := []circleci.WorkflowStatus{
		circleci.WorkflowSuccess,
		circleci.WorkflowOnHold,
		circleci.WorkflowRunning,
		circleci.WorkflowNotRun,
		circleci.WorkflowFailed,
		circleci.WorkflowUnauthorized,
	}
	for i := 1; i < len(order); i++ {
		if Rank(order[i-1]) <= Rank(order[i]) {
			t.Fatalf("expected %s to outrank %s", order[i-1], order[i])
		}
	}
}

func TestRankFailureClassesShareRank(t *testing.T) {
	want := Rank(circleci.WorkflowFailed)
	for _, status := range []circleci.WorkflowStatus{
		circleci.WorkflowError,
		circleci.WorkflowFailing,
		circleci.WorkflowCanceled,
	} {
		if got := Rank(status); got != want {
			t.Fatalf("expected %s to rank %d like failed, got %d", status, want, got)
		}
	}
}

func TestRankUnknownStatus(t *testing.T) {
	if got := Rank("mystery"); got != 0 {
		t.Fatalf("expected unknown status to rank 0, got %d", got)
	}
	if got := Rank(circleci.WorkflowUnauthorized); got != 0 {
		t.Fatalf("expected unauthorized to rank 0, got %d", got)
	}
}

func TestRankTableCoversKnownStatuses(t *testing.T) {
	known := []circleci.WorkflowStatus{
		circleci.WorkflowSuccess,
		circleci.WorkflowRunning,
		circleci.WorkflowNotRun,
		circleci.WorkflowFailed,
		circleci.WorkflowError,
		circleci.WorkflowFailing,
		circleci.WorkflowOnHold,
		circleci.WorkflowCanceled,
		circleci.WorkflowUnauthorized,
	}
	for _, status := range known {
		if _, ok := statusPriority[status]; !ok {
			t.Fatalf("status %s missing from priority table", status)
		}
	}
}
