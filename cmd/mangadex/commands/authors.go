package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAuthorsCommand creates the authors command group.
func NewAuthorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "authors",
		Aliases: []string{"author"},
		Short:   "View authors",
		Long:    "View MangaDex authors and artists",
	}

	cmd.AddCommand(newAuthorsGetCommand())

	return cmd
}

func newAuthorsGetCommand() *cobra.Command {
	var withManga bool

	cmd := &cobra.Command{
		Use:   "get AUTHOR_ID",
		Short: "Get author details",
		Long:  "Display detailed information about an author",
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

			builder := client.Author().Get().AuthorID(id)
			if withManga {
				builder.Include(mangadex.IncludeManga)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			author, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get author: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), author, func(table *tablewriter.Table) {
				attrs := author.Data.Attributes

				table.Header("Property", "Value")
				_ = table.Append("ID", author.Data.ID.String())
				_ = table.Append("Name", attrs.Name)
				_ = table.Append("Biography", attrs.Biography.Get(mangadex.LanguageEnglish))
				_ = table.Append("Website", valueOrNA(attrs.Website))
				_ = table.Append("Twitter", valueOrNA(attrs.Twitter))
				_ = table.Append("Pixiv", valueOrNA(attrs.Pixiv))
				_ = table.Append("Created", attrs.CreatedAt.Format(constants.TableTimeLayout))

				for _, rel := range author.Data.Relationships {
					_ = table.Append(string(rel.Type), rel.ID.String())
				}
			})
		},
	}

	cmd.Flags().BoolVar(&withManga, "with-manga", false, "expand manga relationships")

	return cmd
}
