package circleci

import (
	"context"
	"fmt"
	"net/url"
)

// ListPipelines returns the project's pipelines in the order the API
// reports them, most recent first. An empty branch lists pipelines across
// all branches. Only the first page is requested: callers that need to look
// further back than one page are out of scope here.
func (c *Client) ListPipelines(ctx context.Context, slug, branch string) ([]Pipeline, error) {
	path := fmt.Sprintf("project/%s/pipeline", slug)
	if branch != "" {
		path = fmt.Sprintf("%s?branch=%s", path, url.QueryEscape(branch))
	}

	var list pipelineList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}
