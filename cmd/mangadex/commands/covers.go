package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCoversCommand creates the cover art command group.
func NewCoversCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "covers",
		Aliases: []string{"cover"},
		Short:   "Manage cover art",
		Long:    "Upload cover art for MangaDex manga",
	}

	cmd.AddCommand(newCoversUploadCommand())

	return cmd
}

func newCoversUploadCommand() *cobra.Command {
	var (
		file        string
		volume      string
		description string
		locale      string
	)

	cmd := &cobra.Command{
		Use:   "upload MANGA_ID",
		Short: "Upload a cover",
		Long:  "Upload an image file as cover art for a manga",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg(args[0])
			if err != nil {
				return err
			}

			if file == "" {
				return constants.ErrFileRequired
			}

			data, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return fmt.Errorf("failed to read cover file: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			builder := client.Cover().Upload().
				MangaID(id).
				File(filepath.Base(file), data).
				ContentType(http.DetectContentType(data))

			if volume != "" {
				builder.Volume(volume)
			}

			if description != "" {
				builder.Description(description)
			}

			if locale != "" {
				builder.Locale(mangadex.Language(locale))
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			cover, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to upload cover: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), cover, func(table *tablewriter.Table) {
				attrs := cover.Data.Attributes

				table.Header("ID", "File", "Volume", "Created")
				_ = table.Append(
					cover.Data.ID.String(),
					attrs.FileName,
					valueOrNA(attrs.Volume),
					attrs.CreatedAt.Format(constants.TableTimeLayout),
				)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "image file to upload")
	cmd.Flags().StringVar(&volume, "volume", "", "volume the cover belongs to")
	cmd.Flags().StringVar(&description, "description", "", "cover description")
	cmd.Flags().StringVar(&locale, "locale", "", "cover language")

	return cmd
}
