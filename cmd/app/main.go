package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/oward/scribe/internal"
	"github.com/oward/scribe/internal/catalog"
	"github.com/oward/scribe/internal/storage"
	pkgconfig "github.com/oward/scribe/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// newPost scaffolds a post file with a front-matter header.
func newPost(_ context.Context, cmd *cli.Command) error {
	slug := cmd.Args().First()
	if slug == "" {
		return fmt.Errorf("usage: scribe new <slug>")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Posts.Dir, 0o755); err != nil {
		return fmt.Errorf("create posts dir: %w", err)
	}
	store, err := storage.NewFS(cfg.Posts.Dir)
	if err != nil {
		return err
	}

	if _, _, err := store.Read(slug); err == nil {
		return fmt.Errorf("post %q already exists", slug)
	}

	title := cmd.String("title")
	if title == "" {
		title = slug
	}
	if err := store.Write(slug, catalog.NewPostSource(title, time.Now())); err != nil {
		return err
	}

	fmt.Printf("created %s/%s%s\n", cfg.Posts.Dir, slug, storage.Ext)
	return nil
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:   "scribe",
		Usage:  "Minimal personal blog: markdown posts, per-post comments, RSS",
		Action: serve,
		Flags:  []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:      "new",
				Usage:     "Scaffold a new post file with a front-matter header",
				ArgsUsage: "<slug>",
				Action:    newPost,
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:  "title",
						Usage: "Post title (defaults to the slug)",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
