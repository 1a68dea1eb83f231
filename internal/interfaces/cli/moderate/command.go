// Package moderate holds the operator command for bulk moderation.
package moderate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lifecycleusecases "github.com/expohub/expohub/internal/application/lifecycle/usecases"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/interfaces/cli/bootstrap"
	"github.com/expohub/expohub/internal/interfaces/cli/output"
	"github.com/expohub/expohub/internal/shared/constants"
)

var (
	env         string
	kind        string
	ids         []uint
	decision    string
	notes       string
	reason      string
	moderatorID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moderate",
		Short: "Moderation tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.AddCommand(newBulkCommand())

	return cmd
}

func newBulkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Apply one moderation decision to many entities",
		Example: `  expohub moderate bulk --kind exhibition --ids 4,7,9 --decision approve --moderator-id 1
  expohub moderate bulk --kind company --ids 12 --decision reject --reason "duplicate listing" --moderator-id 1`,
		RunE: runBulk,
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Entity kind (exhibition, company)")
	cmd.Flags().UintSliceVar(&ids, "ids", nil, "Comma separated entity IDs")
	cmd.Flags().StringVar(&decision, "decision", "", "Decision (approve, reject, request_changes)")
	cmd.Flags().StringVar(&notes, "notes", "", "Moderator notes")
	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason")
	cmd.Flags().UintVar(&moderatorID, "moderator-id", 0, "ID of the moderator account to act as")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("ids")
	_ = cmd.MarkFlagRequired("decision")
	_ = cmd.MarkFlagRequired("moderator-id")

	return cmd
}

func parseArgs() (lvo.Kind, lvo.Decision, error) {
	k, err := lvo.NewKind(strings.TrimSpace(kind))
	if err != nil {
		return "", "", err
	}
	d, err := lvo.NewDecision(strings.TrimSpace(decision))
	if err != nil {
		return "", "", err
	}
	return k, d, nil
}

func runBulk(cmd *cobra.Command, _ []string) error {
	k, d, err := parseArgs()
	if err != nil {
		return err
	}

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

	moderator, err := bootstrap.Principal(ctx, c, moderatorID)
	if err != nil {
		return err
	}

	result, err := c.BulkModerate().Execute(ctx, lifecycleusecases.BulkModerateCommand{
		Kind:      k,
		IDs:       ids,
		Decision:  d,
		Moderator: moderator,
		Notes:     notes,
		Reason:    reason,
	})
	if err != nil {
		return err
	}

	w := output.NewTable(cmd.OutOrStdout(), "ID", "RESULT", "STATUS", "DETAIL")
	for _, item := range result.Items {
		detail := item.Error
		if detail == "" {
			detail = item.Warning
		}
		w.Row(item.ID, output.Outcome(item.Success), item.Status, detail)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d succeeded, %d failed\n", result.Succeeded, result.Failed)
	return nil
}
