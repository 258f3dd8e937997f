package report

import "time"

// Resolution captures the outcome of resolving a branch's last green build.
type Resolution struct {
	Slug           string `json:"slug"`
	Branch         string `json:"branch"`
	Found          bool   `json:"found"`
	Revision       string `json:"revision,omitempty"`
	PipelineID     string `json:"pipeline_id,omitempty"`
	PipelineNumber int64  `json:"pipeline_number,omitempty"`
	Candidates     int    `json:"candidates"`
}

// PipelineSummary is one row of the pipelines listing.
type PipelineSummary struct {
	ID        string            `json:"id"`
	Number    int64             `json:"number"`
	State     string            `json:"state"`
	Revision  string            `json:"revision,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Errors    []string          `json:"errors,omitempty"`
	Workflows []WorkflowSummary `json:"workflows,omitempty"`
}

// WorkflowSummary is the deduplicated view of one logical workflow, with the
// number of same-named runs it collapsed.
type WorkflowSummary struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Runs   int    `json:"runs"`
}
