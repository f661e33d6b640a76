package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/scottidler/obsidian-bookmark/internal"
	pkgconfig "github.com/scottidler/obsidian-bookmark/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("port") {
		cfg.App.HTTP.Port = int(cmd.Int("port"))
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "obsidian-bookmark",
		Usage:  "Turn bookmarked URLs into tagged Markdown notes in an Obsidian vault",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.config/obsidian-bookmark/obsidian-bookmark.yml",
				Value:       "~/.config/obsidian-bookmark/obsidian-bookmark.yml",
				Sources:     cli.EnvVars("OBSIDIAN_BOOKMARK_CONFIG"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP port, overrides the config file",
				Sources: cli.EnvVars("OBSIDIAN_BOOKMARK_PORT"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
