package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// FollowInfo is the output of a follow check.
type FollowInfo struct {
	Target    string `json:"target"    yaml:"target"`
	ID        string `json:"id"        yaml:"id"`
	Following bool   `json:"following" yaml:"following"`
}

// NewFollowsCommand creates the follows command group.
func NewFollowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "follows",
		Aliases: []string{"follow"},
		Short:   "Check follows",
		Long:    "Check whether the logged-in user follows a group, user, manga or list",
	}

	cmd.AddCommand(newFollowCheckCommand("group", func(c mangadex.Client) *mangadex.IsFollowingBuilder {
		return c.User().IsFollowingGroup()
	}))
	cmd.AddCommand(newFollowCheckCommand("user", func(c mangadex.Client) *mangadex.IsFollowingBuilder {
		return c.User().IsFollowingUser()
	}))
	cmd.AddCommand(newFollowCheckCommand("manga", func(c mangadex.Client) *mangadex.IsFollowingBuilder {
		return c.User().IsFollowingManga()
	}))
	cmd.AddCommand(newFollowCheckCommand("list", func(c mangadex.Client) *mangadex.IsFollowingBuilder {
		return c.User().IsFollowingList()
	}))

	return cmd
}

func newFollowCheckCommand(target string, builder func(mangadex.Client) *mangadex.IsFollowingBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   target + " ID",
		Short: fmt.Sprintf("Check whether you follow a %s", target),
		Long:  fmt.Sprintf("Report whether the logged-in user follows the given %s", target),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0])
			if err != nil {
				return err
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			req, err := builder(client).ID(id).Build()
			if err != nil {
				return err
			}

			following, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to check follow: %w", err)
			}

			info := FollowInfo{Target: target, ID: id.String(), Following: following}

			return render(cmd.OutOrStdout(), outputFormat(), info, func(table *tablewriter.Table) {
				table.Header("Target", "ID", "Following")
				_ = table.Append(info.Target, info.ID, yesNo(info.Following))
			})
		},
	}
}
