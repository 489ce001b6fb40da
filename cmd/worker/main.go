package main

import (
	"os"

	"propdesk/internal/interfaces/cli/worker"
)

// Standalone worker binary for deployments that scale the triage consumers
// separately from the API server. Equivalent to `propdesk worker`.
func main() {
	if err := worker.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
