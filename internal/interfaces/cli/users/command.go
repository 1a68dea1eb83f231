// Package users holds operator commands for accounts.
package users

import (
	"fmt"

	"github.com/spf13/cobra"

	userusecases "github.com/expohub/expohub/internal/application/user/usecases"
	"github.com/expohub/expohub/internal/interfaces/cli/bootstrap"
	"github.com/expohub/expohub/internal/interfaces/cli/output"
	"github.com/expohub/expohub/internal/shared/constants"
)

var (
	env     string
	userIDs []uint
	actorID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.AddCommand(newVerifyEmailCommand())

	return cmd
}

func newVerifyEmailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "verify-email",
		Short:   "Mark accounts as email-verified",
		Example: `  expohub users verify-email --ids 10,11 --actor-id 1`,
		RunE:    runVerifyEmail,
	}

	cmd.Flags().UintSliceVar(&userIDs, "ids", nil, "Comma separated user IDs")
	cmd.Flags().UintVar(&actorID, "actor-id", 0, "ID of the administrator account to act as")
	_ = cmd.MarkFlagRequired("ids")
	_ = cmd.MarkFlagRequired("actor-id")

	return cmd
}

func runVerifyEmail(cmd *cobra.Command, _ []string) error {
	e, err := bootstrap.Load(env)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	c, err := e.Container(ctx)
	if err != nil {
		return err
	}
	defer c.Shutdown()

	actor, err := bootstrap.Principal(ctx, c, actorID)
	if err != nil {
		return err
	}

	result, err := c.BulkVerifyEmail().Execute(ctx, userusecases.BulkVerifyEmailCommand{
		Actor:   actor,
		UserIDs: userIDs,
	})
	if err != nil {
		return err
	}

	w := output.NewTable(cmd.OutOrStdout(), "USER", "RESULT", "CHANGED", "ERROR")
	for _, item := range result.Items {
		w.Row(item.UserID, output.Outcome(item.Success), item.Changed, item.Error)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d succeeded, %d failed\n", result.Succeeded, result.Failed)
	return nil
}
