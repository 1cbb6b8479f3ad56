package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/anirudh/explainly/internal/app"
	"github.com/anirudh/explainly/internal/audio"
	"github.com/anirudh/explainly/internal/coach"
	"github.com/anirudh/explainly/internal/config"
	"github.com/anirudh/explainly/internal/content"
	"github.com/anirudh/explainly/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startLesson and phase are optional hints from the play command.
func runApp(cmd *cobra.Command, startLesson, phase string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	packs := content.All()
	if p, _ := cmd.Flags().GetString("pack"); p != "" {
		custom, err := content.LoadPack(p)
		if err != nil {
			return fmt.Errorf("load pack %s: %w", p, err)
		}
		packs = append(packs, custom)
	}

	opts := app.Options{
		Repo:         repo,
		Sink:         store.NewEventSink(repo),
		Cue:          audio.New(cfg.Audio),
		Packs:        packs,
		StartLesson:  startLesson,
		InitialPhase: phase,
	}

	svc, err := buildCoachService(cmd.Context(), cfg, repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach not configured:", err)
		fmt.Fprintln(os.Stderr, "Mastery recaps will be unavailable.")
	} else {
		opts.Coach = svc
	}

	return app.Run(opts)
}

// buildCoachService assembles the recap provider from config and
// environment. Returns an error when no provider is usable; the app
// runs fine without one.
func buildCoachService(ctx context.Context, cfg config.Config, repo store.EventRepo) (*coach.Service, error) {
	if !cfg.Coach.Enabled {
		return nil, fmt.Errorf("disabled in config")
	}

	var ccfg coach.Config
	if cfg.Coach.Provider != "" {
		ccfg = coach.ConfigFromEnv()
		ccfg.Provider = cfg.Coach.Provider
		applyModelOverride(&ccfg, cfg.Coach.Model)
	} else {
		discovered, ok := coach.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no API key found in environment")
		}
		ccfg = discovered
		applyModelOverride(&ccfg, cfg.Coach.Model)
	}

	if err := ccfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := coach.NewProvider(ctx, ccfg, repo)
	if err != nil {
		return nil, err
	}
	return coach.NewService(provider, coach.DefaultGenConfig()), nil
}

func applyModelOverride(cfg *coach.Config, model string) {
	if model == "" {
		return
	}
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	case "openrouter":
		cfg.OpenRouter.Model = model
	}
}
