package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/anirudh/explainly/internal/coach"
	"github.com/anirudh/explainly/internal/config"
	"github.com/anirudh/explainly/internal/store"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Inspect the AI coach configuration and usage",
}

var coachStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which recap provider would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDefault()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !cfg.Coach.Enabled {
			fmt.Println("Coach: disabled in config")
			return nil
		}

		if cfg.Coach.Provider != "" {
			ccfg := coach.ConfigFromEnv()
			ccfg.Provider = cfg.Coach.Provider
			if err := ccfg.Validate(); err != nil {
				fmt.Printf("Coach: provider %q configured but unusable: %v\n", cfg.Coach.Provider, err)
				return nil
			}
			fmt.Printf("Coach: provider %q (from config)\n", cfg.Coach.Provider)
			return nil
		}

		discovered, ok := coach.DiscoverConfig()
		if !ok {
			fmt.Println("Coach: no API key found in environment")
			fmt.Println("Set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY.")
			return nil
		}
		fmt.Printf("Coach: provider %q (auto-discovered)\n", discovered.Provider)
		return nil
	},
}

var coachUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show aggregated coach token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		usage, err := repo.CoachUsage(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No coach usage recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %6s  %6s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "OK", "Input", "Output", "Avg Ms")
		fmt.Println(strings.Repeat("─", 62))
		var totalCalls, totalIn, totalOut int
		for _, u := range usage {
			fmt.Printf("%-12s  %6d  %6d  %10d  %10d  %8d\n",
				u.Purpose, u.Calls, u.Succeeded, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			totalCalls += u.Calls
			totalIn += u.InputTokens
			totalOut += u.OutputTokens
		}
		fmt.Println(strings.Repeat("─", 62))
		fmt.Printf("%-12s  %6d  %6s  %10d  %10d\n", "TOTAL", totalCalls, "", totalIn, totalOut)
		return nil
	},
}

func init() {
	coachCmd.AddCommand(coachStatusCmd)
	coachCmd.AddCommand(coachUsageCmd)
}
