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

// NewLegacyCommand creates the legacy id command group.
func NewLegacyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Resolve legacy ids",
		Long:  "Translate numeric ids from the old MangaDex site into current UUIDs",
	}

	cmd.AddCommand(newLegacyMapCommand())

	return cmd
}

func newLegacyMapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "map TYPE ID...",
		Short: "Map legacy ids",
		Long:  "Map legacy numeric ids of a group, manga, chapter or tag to their UUIDs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mappingType, err := parseLegacyType(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			builder := client.Legacy().IDMapping().MappingType(mappingType)

			for _, arg := range args[1:] {
				id, err := strconv.ParseUint(arg, 10, 64)
				if err != nil || id == 0 {
					return fmt.Errorf("%w: %q", constants.ErrInvalidLegacyID, arg)
				}

				builder.AddID(id)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			mappings, err := req.Send(context.Background())
			if err != nil {
				return fmt.Errorf("failed to map legacy ids: %w", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), mappings, func(table *tablewriter.Table) {
				table.Header("Type", "Legacy ID", "New ID")

				for _, mapping := range mappings.Data {
					attrs := mapping.Attributes
					_ = table.Append(string(attrs.Type), strconv.FormatUint(attrs.LegacyID, 10), attrs.NewID.String())
				}
			})
		},
	}
}

func parseLegacyType(name string) (mangadex.LegacyMappingType, error) {
	switch t := mangadex.LegacyMappingType(name); t {
	case mangadex.LegacyMappingGroup, mangadex.LegacyMappingManga, mangadex.LegacyMappingChapter, mangadex.LegacyMappingTag:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidLegacyType, name)
	}
}
