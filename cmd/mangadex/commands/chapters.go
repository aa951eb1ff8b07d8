package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewChaptersCommand creates the chapters command group.
func NewChaptersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "chapters",
		Aliases: []string{"chapter", "ch"},
		Short:   "Manage chapters",
		Long:    "List, view and delete MangaDex chapters",
	}

	cmd.AddCommand(newChaptersListCommand())
	cmd.AddCommand(newChaptersGetCommand())
	cmd.AddCommand(newChaptersDeleteCommand())

	return cmd
}

type chapterListFilters struct {
	limit     int
	offset    int
	manga     string
	group     string
	title     string
	languages []string
	order     string
}

func (f *chapterListFilters) apply(builder *mangadex.ListChapterBuilder) error {
	builder.Limit(f.limit).Offset(f.offset)

	if f.title != "" {
		builder.Title(f.title)
	}

	if f.manga != "" {
		id, err := parseUUIDArg(f.manga)
		if err != nil {
			return err
		}

		builder.Manga(id)
	}

	if f.group != "" {
		id, err := parseUUIDArg(f.group)
		if err != nil {
			return err
		}

		builder.AddGroup(id)
	}

	for _, lang := range f.languages {
		builder.AddTranslatedLanguage(mangadex.Language(lang))
	}

	switch f.order {
	case "":
	case string(mangadex.OrderAscending), string(mangadex.OrderDescending):
		builder.Order(mangadex.ChapterSortOrder{PublishAt: mangadex.OrderDirection(f.order)})
	default:
		return fmt.Errorf("invalid order %q, expected asc or desc", f.order)
	}

	return nil
}

func newChaptersListCommand() *cobra.Command {
	filters := &chapterListFilters{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chapters",
		Long:  "List chapters matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			builder := client.Chapter().List()
			if err := filters.apply(builder); err != nil {
				return err
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			chapters, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list chapters: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), chapters, func(table *tablewriter.Table) {
				table.Header("ID", "Volume", "Chapter", "Title", "Language", "Pages", "Published")

				for _, chapter := range chapters.Data {
					_ = table.Append(chapterRow(chapter)...)
				}
			})
		},
	}

	cmd.Flags().IntVar(&filters.limit, "limit", constants.DefaultListLimit, "number of chapters to return")
	cmd.Flags().IntVar(&filters.offset, "offset", 0, "number of chapters to skip")
	cmd.Flags().StringVar(&filters.manga, "manga", "", "filter by manga ID")
	cmd.Flags().StringVar(&filters.group, "group", "", "filter by scanlation group ID")
	cmd.Flags().StringVar(&filters.title, "title", "", "filter by title")
	cmd.Flags().StringSliceVar(&filters.languages, "lang", nil, "filter by translated language (repeatable)")
	cmd.Flags().StringVar(&filters.order, "order", "", "order by publish date (asc, desc)")

	return cmd
}

func newChaptersGetCommand() *cobra.Command {
	var withGroups bool

	cmd := &cobra.Command{
		Use:   "get CHAPTER_ID",
		Short: "Get chapter details",
		Long:  "Display detailed information about a specific chapter",
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

			builder := client.Chapter().Get().ChapterID(id)
			if withGroups {
				builder.Include(mangadex.IncludeScanlationGroup)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			chapter, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get chapter: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), chapter, func(table *tablewriter.Table) {
				attrs := chapter.Data.Attributes

				table.Header("Property", "Value")
				_ = table.Append("ID", chapter.Data.ID.String())
				_ = table.Append("Title", attrs.Title)
				_ = table.Append("Volume", valueOrNA(attrs.Volume))
				_ = table.Append("Chapter", valueOrNA(attrs.Chapter))
				_ = table.Append("Language", string(attrs.TranslatedLanguage))
				_ = table.Append("Pages", strconv.Itoa(attrs.Pages))
				_ = table.Append("External URL", valueOrNA(attrs.ExternalURL))
				_ = table.Append("Published", attrs.PublishAt.Format(constants.TableTimeLayout))

				for _, rel := range chapter.Data.Relationships {
					_ = table.Append(string(rel.Type), rel.ID.String())
				}
			})
		},
	}

	cmd.Flags().BoolVar(&withGroups, "with-groups", false, "expand scanlation group relationships")

	return cmd
}

func newChaptersDeleteCommand() *cobra.Command {
	var version int

	cmd := &cobra.Command{
		Use:   "delete CHAPTER_ID",
		Short: "Delete a chapter",
		Long:  "Delete a chapter you uploaded",
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

			builder := client.Chapter().Delete().ChapterID(id)
			if cmd.Flags().Changed("version") {
				builder.Version(version)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			if _, err := req.Send(context.Background()); err != nil {
				return fmt.Errorf("failed to delete chapter: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted chapter %s\n", id)

			return nil
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "current chapter version")

	return cmd
}

func chapterRow(chapter mangadex.Object[mangadex.ChapterAttributes]) []any {
	attrs := chapter.Attributes

	return []any{
		chapter.ID.String(),
		valueOrNA(attrs.Volume),
		valueOrNA(attrs.Chapter),
		attrs.Title,
		string(attrs.TranslatedLanguage),
		strconv.Itoa(attrs.Pages),
		attrs.PublishAt.Format(constants.TableTimeLayout),
	}
}
