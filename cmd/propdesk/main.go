package main

import (
	"os"

	"github.com/spf13/cobra"

	"propdesk/internal/interfaces/cli/migrate"
	"propdesk/internal/interfaces/cli/server"
	"propdesk/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "propdesk",
		Short: "PropDesk - property maintenance ticketing",
		Long:  `PropDesk runs the maintenance ticketing API, the triage worker, and the migration tooling for property managers.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
