package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/ruoka/internal/config"
	"github.com/five82/ruoka/internal/filter"
	"github.com/five82/ruoka/internal/juvenes"
	"github.com/five82/ruoka/internal/logging"
	"github.com/five82/ruoka/internal/menu"
	"github.com/five82/ruoka/internal/terminal"
	"github.com/five82/ruoka/internal/ui"
)

// Options configure a ruoka run.
type Options struct {
	Args       []string // command-line tokens after the program name
	ConfigPath string   // empty uses $RUOKA_CONFIG or ~/.config/ruoka/config.toml
	Browse     bool     // open the interactive browser instead of printing

	// Overrides for tests; zero values use the real thing.
	Stdout  io.Writer
	Stderr  io.Writer
	Width   int
	Now     func() time.Time
	Fetcher juvenes.MenuFetcher
}

// Run prints today's menus for every configured restaurant.
func Run(ctx context.Context, opts Options) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.Init(logging.Config{Level: cfg.LogLevel, Out: opts.Stderr})

	args, err := filter.Parse(opts.Args)
	if err != nil {
		return err
	}
	if args.Language != "" {
		cfg.Language = args.Language
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		client, err := juvenes.NewClient(cfg.ServiceURL, cfg.RequestTimeout)
		if err != nil {
			return fmt.Errorf("init menu client: %w", err)
		}
		fetcher = client
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	run := runner{
		cfg:     cfg,
		fetcher: fetcher,
		day:     now(),
		logger:  logger,
	}

	if opts.Browse {
		sources, err := run.collect(ctx)
		if err != nil {
			return err
		}
		return ui.Run(ui.Options{
			Sources:     sources,
			MealOptions: cfg.MealOptions,
			Query:       args.Query,
			ThemeName:   cfg.Theme,
		})
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	width := opts.Width
	if width <= 0 {
		width = terminal.Width(os.Stdout, os.Stdin)
	}
	styles := ui.GetTheme(cfg.Theme).Styles(lipgloss.NewRenderer(stdout))
	return run.print(ctx, ui.NewRenderer(stdout, width, styles), args.Query)
}

type runner struct {
	cfg     config.Config
	fetcher juvenes.MenuFetcher
	day     time.Time
	logger  zerolog.Logger
}

// print fetches, filters and renders restaurants one at a time, in order.
func (r runner) print(ctx context.Context, out ui.Renderer, q filter.Query) error {
	for _, restaurant := range r.cfg.Restaurants {
		src, err := r.fetch(ctx, restaurant)
		if err != nil {
			if r.cfg.ContinueOnError {
				continue
			}
			return err
		}
		board := menu.Build(src.Restaurant, r.cfg.MealOptions, src.Menu, q)
		r.logger.Debug().
			Str("restaurant", restaurant.Name).
			Int("entries", len(board.Entries)).
			Msg("menu filtered")
		if err := out.Board(board); err != nil {
			return fmt.Errorf("write menu: %w", err)
		}
	}
	return nil
}

// collect fetches every restaurant up front for the browser.
func (r runner) collect(ctx context.Context) ([]menu.Source, error) {
	sources := make([]menu.Source, 0, len(r.cfg.Restaurants))
	for _, restaurant := range r.cfg.Restaurants {
		src, err := r.fetch(ctx, restaurant)
		if err != nil {
			if r.cfg.ContinueOnError {
				continue
			}
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func (r runner) fetch(ctx context.Context, restaurant menu.Restaurant) (menu.Source, error) {
	query := juvenes.QueryFor(restaurant.KitchenID, restaurant.MenuTypeID, r.day, r.cfg.Language)
	r.logger.Debug().
		Str("restaurant", restaurant.Name).
		Int("week", query.Week).
		Int("weekday", query.Weekday).
		Str("lang", query.Language).
		Msg("fetching menu")

	m, err := r.fetcher.FetchMenu(ctx, query)
	if err != nil {
		r.logger.Warn().Err(err).Str("restaurant", restaurant.Name).Msg("menu fetch failed")
		return menu.Source{}, fmt.Errorf("fetch %s: %w", restaurant.Name, err)
	}
	if m == nil {
		r.logger.Info().Str("restaurant", restaurant.Name).Msg("no menu for today")
	}
	return menu.Source{Restaurant: restaurant, Menu: m}, nil
}
