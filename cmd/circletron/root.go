package main

import (
	"github.com/spf13/cobra"
)

// version is stamped by the release build via -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "circletron",
		Short:         "Circletron finds the last green build on a CircleCI branch",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("slug", "", "project slug as vcs/org/repo (e.g. gh/acme/widgets)")
	persistent.String("branch", "", "branch to inspect")
	persistent.String("api-url", "", "API base URL for server installs")
	persistent.String("format", "pretty", "output format (pretty|json)")
	persistent.BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newLastGreenCmd())
	cmd.AddCommand(newPipelinesCmd())

	return cmd
}
