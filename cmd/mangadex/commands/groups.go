package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewGroupsCommand creates the scanlation group command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage scanlation groups",
		Long:    "View and follow MangaDex scanlation groups",
	}

	cmd.AddCommand(newGroupsGetCommand())
	cmd.AddCommand(newGroupsFollowCommand())

	return cmd
}

func newGroupsGetCommand() *cobra.Command {
	var withLeader bool

	cmd := &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Get group details",
		Long:  "Display detailed information about a scanlation group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			builder := client.ScanlationGroup().Get().GroupID(id)
			if withLeader {
				builder.Include(mangadex.IncludeLeader)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			group, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get group: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), group, func(table *tablewriter.Table) {
				attrs := group.Data.Attributes

				languages := make([]string, 0, len(attrs.FocusedLanguages))
				for _, lang := range attrs.FocusedLanguages {
					languages = append(languages, string(lang))
				}

				table.Header("Property", "Value")
				_ = table.Append("ID", group.Data.ID.String())
				_ = table.Append("Name", attrs.Name)
				_ = table.Append("Website", valueOrNA(attrs.Website))
				_ = table.Append("Discord", valueOrNA(attrs.Discord))
				_ = table.Append("Languages", strings.Join(languages, ", "))
				_ = table.Append("Official", yesNo(attrs.Official))
				_ = table.Append("Verified", yesNo(attrs.Verified))
				_ = table.Append("Inactive", yesNo(attrs.Inactive))
				_ = table.Append("Created", attrs.CreatedAt.Format(constants.TableTimeLayout))

				for _, rel := range group.Data.Relationships {
					_ = table.Append(string(rel.Type), rel.ID.String())
				}
			})
		},
	}

	cmd.Flags().BoolVar(&withLeader, "with-leader", false, "expand the leader relationship")

	return cmd
}

func newGroupsFollowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "follow GROUP_ID",
		Short: "Follow a group",
		Long:  "Follow a scanlation group with the logged-in account",
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

			req, err := client.ScanlationGroup().Follow().GroupID(id).Build()
			if err != nil {
				return err
			}

			if _, err := req.Send(context.Background()); err != nil {
				return fmt.Errorf("failed to follow group: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Following group %s\n", id)

			return nil
		},
	}
}
