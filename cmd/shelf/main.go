package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/config"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/log"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/mmcdole/shelf/internal/tui"
	"github.com/mmcdole/shelf/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// options are the persistent flags shared by every command
type options struct {
	configFile  string
	catalogPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "shelf",
		Short: "Track your reading from the terminal",
		Long: `shelf is a terminal book tracker.

Run without arguments to open the interactive UI. When stdout is not a
terminal the home feed is printed as plain text instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default ~/.config/shelf/config.yaml)")
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog file, .json or .yaml (overrides catalog.path)")

	root.AddCommand(
		newListCmd(opts),
		newGenresCmd(opts),
		newConfigCmd(opts),
		newCacheCmd(opts),
		newVersionCmd(),
	)
	return root
}

// app is the wiring shared by commands that need the catalog
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	cache   *store.CatalogStore
	catalog *domain.Catalog
}

// setup loads config, logging and the catalog
func setup(opts *options) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	styles.ApplyAccent(cfg.UI.Accent)

	cache, err := store.NewCatalogStore(cfg.Cache.Dir)
	if err != nil {
		logger.Warn("catalog cache unavailable, continuing without disk cache", "error", err, "dir", cfg.Cache.Dir)
		cache, _ = store.NewCatalogStore("")
	}

	loader := catalog.NewLoader(cache, logger)
	cat, err := loader.Load(cfg.Catalog.Path)
	if err != nil {
		cache.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	logger.Info("catalog loaded", "path", cfg.Catalog.Path, "books", cat.Len())
	return &app{cfg: cfg, logger: logger, cache: cache, catalog: cat}, nil
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	return cfg, nil
}

func (a *app) Close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close cache", "error", err)
	}
}

func runRoot(cmd *cobra.Command, opts *options) error {
	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return printHome(out, a.catalog)
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(tui.NewModel(a.catalog, a.logger), programOpts...)

	a.logger.Info("starting shelf", "version", Version)
	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
