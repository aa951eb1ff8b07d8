package commands

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ChapterStatsRow is one line of the chapter statistics output.
type ChapterStatsRow struct {
	ChapterID string `json:"chapter_id"           yaml:"chapter_id"`
	ThreadURL string `json:"thread_url,omitempty" yaml:"thread_url,omitempty"`
	Replies   int    `json:"replies"              yaml:"replies"`
}

// NewStatsCommand creates the stats command group.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "Show statistics",
		Long:    "Show forum statistics for MangaDex resources",
	}

	cmd.AddCommand(newStatsChaptersCommand())

	return cmd
}

func newStatsChaptersCommand() *cobra.Command {
	var (
		concurrency int
		batch       bool
	)

	cmd := &cobra.Command{
		Use:   "chapters CHAPTER_ID...",
		Short: "Show chapter statistics",
		Long:  "Fetch comment statistics for one or more chapters, concurrently or in a single batch request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseUUIDArgs(args)
			if err != nil {
				return err
			}

			config := loadConfig()
			// Concurrent lookups share one client, so dispatches queue instead of conflicting.
			config.Mode = mangadex.ModeShared.String()

			client, err := newClient(config)
			if err != nil {
				return err
			}

			ctx := context.Background()

			var stats map[uuid.UUID]mangadex.ChapterStatistics
			if batch {
				stats, err = findChapterStatistics(ctx, client, ids)
			} else {
				stats, err = fetchChapterStatistics(ctx, client, ids, concurrency)
			}

			if err != nil {
				return err
			}

			rows := chapterStatsRows(ids, stats)

			return render(cmd.OutOrStdout(), outputFormat(), rows, func(table *tablewriter.Table) {
				table.Header("Chapter ID", "Replies", "Thread")

				for _, row := range rows {
					thread := row.ThreadURL
					if thread == "" {
						thread = constants.NotAvailable
					}

					_ = table.Append(row.ChapterID, strconv.Itoa(row.Replies), thread)
				}
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultStatsConcurrency, "maximum parallel requests")
	cmd.Flags().BoolVar(&batch, "batch", false, "fetch all chapters in a single request")

	return cmd
}

// fetchChapterStatistics looks up every chapter with its own request, at most
// limit at a time. The first failure cancels the remaining lookups.
func fetchChapterStatistics(
	ctx context.Context,
	client mangadex.Client,
	ids []uuid.UUID,
	limit int,
) (map[uuid.UUID]mangadex.ChapterStatistics, error) {
	var (
		mu    sync.Mutex
		stats = make(map[uuid.UUID]mangadex.ChapterStatistics, len(ids))
	)

	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, id := range ids {
		group.Go(func() error {
			req, err := client.Statistics().Chapter().ChapterID(id).Build()
			if err != nil {
				return err
			}

			resp, err := req.Send(ctx)
			if err != nil {
				return fmt.Errorf("failed to get statistics for chapter %s: %w", id, err)
			}

			mu.Lock()
			defer mu.Unlock()

			for chapterID, chapterStats := range resp.Statistics {
				stats[chapterID] = chapterStats
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// findChapterStatistics looks up every chapter in one request.
func findChapterStatistics(ctx context.Context, client mangadex.Client, ids []uuid.UUID) (map[uuid.UUID]mangadex.ChapterStatistics, error) {
	builder := client.Statistics().FindChapters()
	for _, id := range ids {
		builder.AddChapter(id)
	}

	req, err := builder.Build()
	if err != nil {
		return nil, err
	}

	resp, err := req.Send(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter statistics: %w", err)
	}

	return resp.Statistics, nil
}

func chapterStatsRows(ids []uuid.UUID, stats map[uuid.UUID]mangadex.ChapterStatistics) []ChapterStatsRow {
	rows := make([]ChapterStatsRow, 0, len(ids))

	for _, id := range ids {
		row := ChapterStatsRow{ChapterID: id.String()}

		if chapterStats, ok := stats[id]; ok && chapterStats.Comments != nil {
			row.ThreadURL = chapterStats.Comments.ThreadURL()
			row.Replies = chapterStats.Comments.RepliesCount
		}

		rows = append(rows, row)
	}

	return rows
}
