package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewMangaCommand creates the manga command group.
func NewMangaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manga",
		Short: "Manage your manga library",
		Long:  "View and change reading statuses and browse manga tags",
	}

	cmd.AddCommand(newMangaStatusesCommand())
	cmd.AddCommand(newMangaStatusCommand())
	cmd.AddCommand(newMangaSetStatusCommand())
	cmd.AddCommand(newMangaTagsCommand())

	return cmd
}

func newMangaStatusesCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "statuses",
		Short: "List reading statuses",
		Long:  "List the reading status of every manga in your library",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			builder := client.Manga().ReadingStatuses()

			if status != "" {
				readingStatus, err := parseReadingStatus(status)
				if err != nil {
					return err
				}

				builder.Status(readingStatus)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			statuses, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list reading statuses: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), statuses, func(table *tablewriter.Table) {
				table.Header("Manga ID", "Status")

				ids := make([]string, 0, len(statuses.Statuses))
				byID := make(map[string]mangadex.ReadingStatus, len(statuses.Statuses))

				for id, readingStatus := range statuses.Statuses {
					ids = append(ids, id.String())
					byID[id.String()] = readingStatus
				}

				sort.Strings(ids)

				for _, id := range ids {
					_ = table.Append(id, string(byID[id]))
				}
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only show manga with this status")

	return cmd
}

func newMangaStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status MANGA_ID",
		Short: "Get a reading status",
		Long:  "Display your reading status for a manga",
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

			req, err := client.Manga().ReadingStatus().MangaID(id).Build()
			if err != nil {
				return err
			}

			status, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get reading status: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), status, func(table *tablewriter.Table) {
				name := None
				if status.Status != nil {
					name = string(*status.Status)
				}

				table.Header("Manga ID", "Status")
				_ = table.Append(id.String(), name)
			})
		},
	}
}

func newMangaSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status MANGA_ID STATUS",
		Short: "Set a reading status",
		Long:  "Set your reading status for a manga; 'none' removes it from your library",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0])
			if err != nil {
				return err
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			builder := client.Manga().UpdateReadingStatus().MangaID(id)

			if args[1] == None {
				builder.ClearStatus()
			} else {
				status, err := parseReadingStatus(args[1])
				if err != nil {
					return err
				}

				builder.Status(status)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			if _, err := req.Send(context.Background()); err != nil {
				return fmt.Errorf("failed to update reading status: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reading status of %s set to %s\n", id, args[1])

			return nil
		},
	}
}

func newMangaTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List manga tags",
		Long:  "List every tag that can be attached to a manga",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			req, err := client.Manga().ListTags().Build()
			if err != nil {
				return err
			}

			tags, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), tags, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Group")

				for _, tag := range tags.Data {
					_ = table.Append(tag.ID.String(), tag.Attributes.Name.Get(mangadex.LanguageEnglish), string(tag.Attributes.Group))
				}
			})
		},
	}
}
