package circleci

import (
	"context"
	"fmt"
	"net/url"
)

// ListWorkflows returns every workflow run recorded for a pipeline,
// including reruns, in the order the API reports them.
func (c *Client) ListWorkflows(ctx context.Context, pipelineID string) ([]Workflow, error) {
	path := fmt.Sprintf("pipeline/%s/workflow", url.PathEscape(pipelineID))

	var list workflowList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}
