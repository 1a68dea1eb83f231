package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/expohub/expohub/internal/interfaces/cli/jobs"
	"github.com/expohub/expohub/internal/interfaces/cli/migrate"
	"github.com/expohub/expohub/internal/interfaces/cli/moderate"
	"github.com/expohub/expohub/internal/interfaces/cli/server"
	"github.com/expohub/expohub/internal/interfaces/cli/users"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "expohub",
		Short:        "ExpoHub - exhibition catalogue backend",
		Long:         `ExpoHub serves the exhibition and company catalogue API and ships the operator tools for migrations, moderation and background jobs.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		moderate.NewCommand(),
		users.NewCommand(),
		jobs.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
