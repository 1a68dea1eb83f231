// Package jobs lists and triggers the background jobs.
package jobs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expohub/expohub/internal/interfaces/cli/bootstrap"
	"github.com/expohub/expohub/internal/shared/constants"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Background job tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List registered jobs",
			Args:  cobra.NoArgs,
			RunE:  runList,
		},
		&cobra.Command{
			Use:     "run <name>",
			Short:   "Run one job now and wait for it",
			Example: `  expohub jobs run repair-counters`,
			Args:    cobra.ExactArgs(1),
			RunE:    runJob,
		},
	)

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	e, err := bootstrap.Load(env)
	if err != nil {
		return err
	}
	defer e.Close()

	c, err := e.Container(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Shutdown()

	for _, name := range c.Scheduler().JobNames() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	e, err := bootstrap.Load(env)
	if err != nil {
		return err
	}
	defer e.Close()

	c, err := e.Container(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Shutdown()

	n, err := c.Scheduler().RunNow(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("job %s failed: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s processed %d item(s)\n", args[0], n)
	return nil
}
