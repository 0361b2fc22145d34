package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbcam/internal/cli/styles"
	"github.com/bnema/dumbcam/internal/domain/entity"
)

const (
	defaultGalleryLimit = 20
	galleryTableWidth   = 100
)

var galleryLimit int

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Inspect the media index",
	Long:  `Query the images the bridge saved. Pending entries are never listed.`,
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved images, newest first",
	Long: `List visible gallery entries, newest first.

Examples:
  dumbcam gallery list
  dumbcam gallery list --limit 5`,
	RunE: runGalleryList,
}

func init() {
	rootCmd.AddCommand(galleryCmd)
	galleryCmd.AddCommand(galleryListCmd)
	galleryListCmd.Flags().IntVarP(&galleryLimit, "limit", "n", defaultGalleryLimit, "maximum number of entries")
}

func runGalleryList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	entries, err := app.Media.ListVisible(ctx, galleryLimit)
	if err != nil {
		return fmt.Errorf("list gallery: %w", err)
	}
	total, err := app.Media.CountVisible(ctx)
	if err != nil {
		return fmt.Errorf("count gallery: %w", err)
	}

	iconStyle := lipgloss.NewStyle().Foreground(app.Theme.Accent)
	header := fmt.Sprintf("%s %s %s",
		iconStyle.Render(styles.IconImage),
		app.Theme.Title.Render("Gallery"),
		app.Theme.MutedBadge(fmt.Sprintf("%d of %d", len(entries), total)),
	)
	fmt.Println(header)

	if len(entries) == 0 {
		fmt.Println(app.Theme.Subtle.Render("  No images saved yet."))
		return nil
	}

	t := styles.NewStyledTable(app.Theme, styles.GalleryTableColumns(), galleryRows(entries), galleryTableWidth, len(entries)+1)
	t.Blur()
	fmt.Println(t.View())
	return nil
}

func galleryRows(entries []*entity.GalleryEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, styles.GalleryRow{
			ID:        int(e.ID),
			Name:      e.DisplayName,
			SizeBytes: e.SizeBytes,
			Added:     e.DateAdded,
			Path:      e.DataPath,
			Pending:   e.IsPending,
		}.ToRow())
	}
	return rows
}
