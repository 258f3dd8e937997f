package green

import "github.com/empathycom/circletron/internal/circleci"

// statusPriority fixes the total order used when collapsing same-named
// workflow reruns. It decides which rerun represents a name during
// deduplication; pass/fail judgment never consults it.
var statusPriority = map[circleci.WorkflowStatus]int{
	circleci.WorkflowSuccess:      5,
	circleci.WorkflowOnHold:       4,
	circleci.WorkflowRunning:      3,
	circleci.WorkflowNotRun:       2,
	circleci.WorkflowFailed:       1,
	circleci.WorkflowError:        1,
	circleci.WorkflowFailing:      1,
	circleci.WorkflowCanceled:     1,
	circleci.WorkflowUnauthorized: 0,
}

// Rank returns the deduplication priority of a workflow status. Statuses
// missing from the table rank 0, the lowest precedence.
func Rank(status circleci.WorkflowStatus) int {
	return statusPriority[status]
}
