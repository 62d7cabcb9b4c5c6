package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mmcdole/shelf/internal/browse"
	"github.com/mmcdole/shelf/internal/config"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/feed"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var criteria browse.Criteria

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books matching a query and genre",
		Long: `Filters the catalog the same way the Browse screen does: the query is a
case-insensitive substring of the title or author, and the genre must match
exactly unless it is "all".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return printList(cmd.OutOrStdout(), browse.Filter(a.catalog.Books(), criteria))
		},
	}

	cmd.Flags().StringVarP(&criteria.Query, "query", "q", "", "search title or author")
	cmd.Flags().StringVarP(&criteria.Genre, "genre", "g", browse.AllGenres, "genre to show, or \"all\"")
	return cmd
}

func newGenresCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "Print the genre options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, g := range browse.Genres(a.catalog.Books()) {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			path, err := config.SaveConfig(cfg, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to write to (default ~/.config/shelf)")

	cmd.AddCommand(initCmd)
	return cmd
}

func newCacheCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the catalog cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached catalog",
		Long: `Empties the catalog cache database. Other files in cache.dir are left
alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cfg.Cache.Dir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Cache disabled, nothing to clear")
				return nil
			}

			cache, err := store.NewCatalogStore(cfg.Cache.Dir)
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			defer cache.Close()

			cache.InvalidateAll()
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
			return nil
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shelf %s\n", Version)
		},
	}
}

// printList writes books as a table followed by the count label
func printList(w io.Writer, books []domain.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, browse.NoResultsMessage)
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Title", "Author", "Genre", "Rating", "Pages")
	for _, b := range books {
		pages := ""
		if b.Pages > 0 {
			pages = strconv.Itoa(b.Pages)
		}
		t.Row(b.Title, b.Author, b.Genre, b.FormattedRating(), pages)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), browse.CountLabel(len(books)))
	return err
}

// printHome writes the home feed for non-interactive output
func printHome(w io.Writer, c *domain.Catalog) error {
	stats := c.Stats()

	fmt.Fprintln(w, "BookTracker")
	fmt.Fprintf(w, "Welcome back! You've read %d pages this week\n\n", stats.PagesThisWeek)

	fmt.Fprintln(w, "Continue Reading")
	for _, b := range feed.ContinueReading(c) {
		if p := b.Progress; p != nil {
			fmt.Fprintf(w, "  %s by %s: %d%%, page %d of %d\n", b.Title, b.Author, p.Percent(), p.CurrentPage, p.TotalPages)
		} else {
			fmt.Fprintf(w, "  %s by %s\n", b.Title, b.Author)
		}
	}

	fmt.Fprintln(w, "\nRecommended for You")
	for _, b := range feed.Recommended(c) {
		fmt.Fprintf(w, "  %s by %s\n", b.Title, b.Author)
	}

	_, err := fmt.Fprintf(w, "\nBooks Read %d · Day Streak %d · Avg Rating %.1f\n",
		stats.TotalBooks, stats.CurrentStreak, stats.AvgRating)
	return err
}
