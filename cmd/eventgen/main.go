// Command eventgen generates event descriptions and volunteer-expectation
// documents from event form data, using a hosted model with deterministic
// fallback templates.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/CIhekweazu03/DescriptionGenerator/internal/api"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/config"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/event"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/generator"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/history"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/llm"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/observability"
)

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "eventgen",
		Usage: "Generate event descriptions and volunteer expectations from form data.",
		Commands: []*cli.Command{
			generateCommand(),
			serveCommand(),
			historyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate text for one event described by a JSON file (or stdin).",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Path to the event JSON file. Reads stdin when omitted."},
			&cli.BoolFlag{Name: "expectations", Usage: "Also generate the volunteer expectations document."},
			&cli.BoolFlag{Name: "no-history", Usage: "Skip recording results to the history database."},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			slog.SetDefault(observability.NewLogger(cfg.Env))

			ev, err := readEvent(c.String("input"))
			if err != nil {
				return err
			}

			gen, cleanup, err := buildGenerator(cfg, !c.Bool("no-history"))
			if err != nil {
				return err
			}
			defer cleanup()

			description := gen.Description(ev)
			fmt.Println(description)

			if c.Bool("expectations") {
				fmt.Println()
				fmt.Println(gen.VolunteerExpectations(ev, description))
			}
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP generation API.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "Listen port. Overrides PORT."},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			if c.IsSet("port") {
				cfg.Port = c.Int("port")
			}
			slog.SetDefault(observability.NewLogger(cfg.Env))

			client := llm.NewClient(cfg.APIKey, cfg.Model, cfg.MaxTokens)
			if client.Enabled() {
				slog.Info("model client enabled", "max_tokens", cfg.MaxTokens)
			} else {
				slog.Warn("ANTHROPIC_API_KEY not set — all requests will use fallback templates")
			}

			metrics := observability.NewGenerationMetrics(prometheus.DefaultRegisterer)

			recorders := []generator.Recorder{metrics}
			var store *history.Store
			if cfg.DBPath != "" {
				var err error
				store, err = openHistory(cfg.DBPath)
				if err != nil {
					return err
				}
				defer store.Close()
				recorders = append(recorders, store)
			}

			server := &api.Server{
				Gen:     generator.New(client, recorders...),
				History: store,
				Port:    cfg.Port,
				Env:     cfg.Env,
			}
			return server.Run()
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recently generated artifacts.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 20, Usage: "Maximum number of artifacts to list."},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			slog.SetDefault(observability.NewLogger(cfg.Env))

			if cfg.DBPath == "" {
				return fmt.Errorf("EVENTGEN_DB is not set")
			}
			store, err := openHistory(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			artifacts, err := store.List(c.Int("limit"))
			if err != nil {
				return err
			}

			for _, a := range artifacts {
				fmt.Printf("%s  %-12s %-8s %-30s %s\n",
					a.ID[:8], a.Kind, a.Outcome, a.EventName, humanize.Time(a.CreatedAt))
			}
			if len(artifacts) == 0 {
				fmt.Println("no artifacts recorded yet")
			}
			return nil
		},
	}
}

func buildGenerator(cfg config.Config, recordHistory bool) (*generator.Generator, func(), error) {
	client := llm.NewClient(cfg.APIKey, cfg.Model, cfg.MaxTokens)
	if !client.Enabled() {
		slog.Warn("ANTHROPIC_API_KEY not set — output will use fallback templates")
	}

	cleanup := func() {}
	var recorders []generator.Recorder
	if recordHistory && cfg.DBPath != "" {
		store, err := openHistory(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { store.Close() }
		recorders = append(recorders, store)
	}

	return generator.New(client, recorders...), cleanup, nil
}

func openHistory(path string) (*history.Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history dir %q: %w", dir, err)
		}
	}
	store, err := history.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history db %q: %w", path, err)
	}
	return store, nil
}

func readEvent(path string) (event.Event, error) {
	var ev event.Event

	var raw []byte
	var err error
	if path == "" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return ev, fmt.Errorf("read event data: %w", err)
	}

	if err := json.Unmarshal(raw, &ev); err != nil {
		return ev, fmt.Errorf("parse event data: %w", err)
	}
	return ev, nil
}
