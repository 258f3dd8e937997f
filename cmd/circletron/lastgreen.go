package main

import (
	"fmt"

	"github.com/empathycom/circletron/internal/config"
	"github.com/empathycom/circletron/internal/green"
	"github.com/spf13/cobra"
)

func newLastGreenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last-green",
		Short: "Print the revision of the newest fully green build on a branch",
		RunE:  runLastGreen,
	}
}

func runLastGreen(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	if sess.branch == "" {
		return fmt.Errorf("no branch given; set --branch or %s", config.EnvBranch)
	}

	resolver := green.Resolver{
		Slug:      sess.slug,
		Pipelines: sess.client,
		Workflows: sess.client,
		Logger:    sess.logger,
	}
	res, err := resolver.Resolve(cmd.Context(), sess.branch)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd, sess.cfg)
	if err != nil {
		return err
	}
	if err := renderer.RenderResolution(res); err != nil {
		return err
	}

	// Scripts get one "no usable answer" signal; the log lines above
	// already distinguish a fetch failure from a branch with no green
	// build.
	if !res.Found {
		return fmt.Errorf("no green build found for %s on branch %q (%d pipelines checked)",
			sess.slug, sess.branch, res.Candidates)
	}
	return nil
}
