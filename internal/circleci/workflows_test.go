package circleci

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorkflows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pipeline/p1/workflow", r.URL.Path)

		w.Write([]byte(`{
			"items": [
				{"id": "w1", "name": "build", "status": "failed", "pipeline_id": "p1"},
				{"id": "w2", "name": "build", "status": "success", "pipeline_id": "p1"}
			],
			"next_page_token": null
		}`))
	}))
	defer server.Close()

	client := NewClient("token", WithBaseURL(server.URL))
	workflows, err := client.ListWorkflows(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, workflows, 2)

	assert.Equal(t, "build", workflows[0].Name)
	assert.Equal(t, WorkflowFailed, workflows[0].Status)
	assert.Equal(t, WorkflowSuccess, workflows[1].Status)
	assert.Equal(t, "p1", workflows[1].PipelineID)
}

func TestListWorkflowsEscapesPipelineID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pipeline/p%2F1/workflow", r.URL.EscapedPath())
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient("token", WithBaseURL(server.URL))
	workflows, err := client.ListWorkflows(context.Background(), "p/1")
	require.NoError(t, err)
	assert.Empty(t, workflows)
}
