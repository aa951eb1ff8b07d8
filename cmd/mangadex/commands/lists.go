package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListsCommand creates the custom list command group.
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "Manage custom lists",
		Long:    "Create MangaDex custom lists",
	}

	cmd.AddCommand(newListsCreateCommand())

	return cmd
}

func newListsCreateCommand() *cobra.Command {
	var (
		visibility string
		manga      []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a custom list",
		Long:  "Create a custom list, optionally seeded with manga",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			builder := client.CustomList().Create().Name(args[0])

			if visibility != "" {
				v, err := parseVisibility(visibility)
				if err != nil {
					return err
				}

				builder.Visibility(v)
			}

			ids, err := parseUUIDArgs(manga)
			if err != nil {
				return err
			}

			for _, id := range ids {
				builder.AddManga(id)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			list, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to create list: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), list, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Visibility", "Manga")
				_ = table.Append(
					list.Data.ID.String(),
					list.Data.Attributes.Name,
					string(list.Data.Attributes.Visibility),
					fmt.Sprint(len(ids)),
				)
			})
		},
	}

	cmd.Flags().StringVar(&visibility, "visibility", "", "list visibility (public, private)")
	cmd.Flags().StringSliceVar(&manga, "manga", nil, "manga ID to add (repeatable)")

	return cmd
}

func parseVisibility(name string) (mangadex.CustomListVisibility, error) {
	switch v := mangadex.CustomListVisibility(name); v {
	case mangadex.CustomListPublic, mangadex.CustomListPrivate:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidVisibility, name)
	}
}
