package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expohub/expohub/internal/infrastructure/migration"
	"github.com/expohub/expohub/internal/interfaces/cli/bootstrap"
	"github.com/expohub/expohub/internal/shared/constants"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*bootstrap.Env, *migration.GooseStrategy, error) {
	e, err := bootstrap.Load(env)
	if err != nil {
		return nil, nil, err
	}
	return e, migration.NewGooseStrategy(e.Config.Database.Driver, e.Log), nil
}

func runUp(cmd *cobra.Command, _ []string) error {
	e, strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := strategy.Migrate(cmd.Context(), e.DB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, err := strategy.Version(cmd.Context(), e.DB)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database is at version %d\n", version)
	return nil
}

func runDown(cmd *cobra.Command, _ []string) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}

	e, strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := strategy.Down(cmd.Context(), e.DB, steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", steps)
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	e, strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	rows, err := strategy.Status(cmd.Context(), e.DB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %s\n", "VERSION", "STATE")
	for _, r := range rows {
		state := "pending"
		if r.Applied {
			state = "applied"
		}
		fmt.Fprintf(out, "%-10d %s\n", r.Version, state)
	}
	return nil
}
