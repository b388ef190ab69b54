package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "server",
		Short:         "Studio site, intake funnel and quote engine",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newQuoteCmd(), newSubmissionsCmd(), newSeedCmd())
	return root
}
