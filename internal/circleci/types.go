package circleci

import "time"

// PipelineState is the lifecycle state of a pipeline as reported by the API.
type PipelineState string

const (
	PipelineCreated      PipelineState = "created"
	PipelineErrored      PipelineState = "errored"
	PipelineSetupPending PipelineState = "setup-pending"
	PipelineSetup        PipelineState = "setup"
	PipelinePending      PipelineState = "pending"
)

// WorkflowStatus is the terminal or in-flight status of a workflow run.
type WorkflowStatus string

const (
	WorkflowSuccess      WorkflowStatus = "success"
	WorkflowRunning      WorkflowStatus = "running"
	WorkflowNotRun       WorkflowStatus = "not_run"
	WorkflowFailed       WorkflowStatus = "failed"
	WorkflowError        WorkflowStatus = "error"
	WorkflowFailing      WorkflowStatus = "failing"
	WorkflowOnHold       WorkflowStatus = "on_hold"
	WorkflowCanceled     WorkflowStatus = "canceled"
	WorkflowUnauthorized WorkflowStatus = "unauthorized"
)

// Pipeline is one triggered run of the CI configuration for a commit.
// Records are read-only snapshots of the API response; the revision is only
// meaningful once the pipeline reaches the created state with resolved VCS
// metadata.
type Pipeline struct {
	ID        string          `json:"id"`
	Number    int64           `json:"number"`
	State     PipelineState   `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	Errors    []PipelineError `json:"errors"`
	VCS       PipelineVCS     `json:"vcs"`
}

// PipelineError is a provider-reported problem with a pipeline, such as a
// broken config.
type PipelineError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// PipelineVCS carries the source-control metadata a pipeline was triggered
// from.
type PipelineVCS struct {
	ProviderName string `json:"provider_name"`
	Branch       string `json:"branch,omitempty"`
	Revision     string `json:"revision"`
}

// Workflow is a named sub-run within a pipeline. Names are not unique across
// a pipeline's workflow list: reruns of the same logical workflow share a
// name.
type Workflow struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Status     WorkflowStatus `json:"status"`
	PipelineID string         `json:"pipeline_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at,omitempty"`
}

// pipelineList is the envelope the pipeline endpoint wraps its items in.
// Only the first page is consumed; the token is decoded but never followed.
type pipelineList struct {
	Items         []Pipeline `json:"items"`
	NextPageToken string     `json:"next_page_token"`
}

// workflowList is the envelope the workflow endpoint wraps its items in.
type workflowList struct {
	Items         []Workflow `json:"items"`
	NextPageToken string     `json:"next_page_token"`
}
