package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empathycom/circletron/internal/circleci"
	"github.com/empathycom/circletron/internal/config"
	"github.com/empathycom/circletron/internal/green"
	"github.com/empathycom/circletron/internal/output"
	"github.com/empathycom/circletron/internal/report"
)

func newPipelinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipelines",
		Short: "List recent pipelines for a project",
		RunE:  runPipelines,
	}
	cmd.Flags().Bool("workflows", false, "fetch and show each pipeline's workflows")
	return cmd
}

func runPipelines(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	withWorkflows, err := cmd.Flags().GetBool("workflows")
	if err != nil {
		return fmt.Errorf("parse --workflows: %w", err)
	}

	pipelines, err := sess.client.ListPipelines(cmd.Context(), sess.slug, sess.branch)
	if err != nil {
		sess.logger.Error("listing pipelines failed", "slug", sess.slug, "branch", sess.branch, "err", err)
		return err
	}

	if len(pipelines) == 0 && sess.cfg.Format == config.FormatPretty {
		fmt.Fprintln(cmd.OutOrStdout(), "No pipelines found")
		return nil
	}

	rep := output.PipelinesReport{
		Slug:      sess.slug,
		Branch:    sess.branch,
		Pipelines: make([]report.PipelineSummary, 0, len(pipelines)),
	}
	for _, pl := range pipelines {
		summary := summarizePipeline(pl)
		if withWorkflows && pl.State == circleci.PipelineCreated {
			workflows, err := sess.client.ListWorkflows(cmd.Context(), pl.ID)
			if err != nil {
				sess.logger.Error("listing workflows failed", "pipeline", pl.ID, "err", err)
				return err
			}
			summary.Workflows = summarizeWorkflows(workflows)
		}
		rep.Pipelines = append(rep.Pipelines, summary)
	}

	renderer, err := newRenderer(cmd, sess.cfg)
	if err != nil {
		return err
	}
	return renderer.RenderPipelines(rep)
}

func summarizePipeline(pl circleci.Pipeline) report.PipelineSummary {
	summary := report.PipelineSummary{
		ID:        pl.ID,
		Number:    pl.Number,
		State:     string(pl.State),
		Revision:  pl.VCS.Revision,
		CreatedAt: pl.CreatedAt,
	}
	for _, e := range pl.Errors {
		summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", e.Type, e.Message))
	}
	return summary
}

// summarizeWorkflows collapses reruns onto one row per workflow name, the
// same view the green evaluation sees, and counts the runs behind each row.
func summarizeWorkflows(workflows []circleci.Workflow) []report.WorkflowSummary {
	runs := make(map[string]int, len(workflows))
	for _, wf := range workflows {
		runs[wf.Name]++
	}

	deduped := green.Dedupe(workflows)
	out := make([]report.WorkflowSummary, 0, len(deduped))
	for _, wf := range deduped {
		out = append(out, report.WorkflowSummary{
			Name:   wf.Name,
			Status: string(wf.Status),
			Runs:   runs[wf.Name],
		})
	}
	return out
}
