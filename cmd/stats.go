package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/anirudh/explainly/internal/config"
	"github.com/anirudh/explainly/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-lesson learning statistics",
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

		stats, err := repo.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No lessons played yet.")
			return nil
		}

		fmt.Printf("%-14s  %8s  %9s  %8s  %8s  %9s\n",
			"Lesson", "Started", "Completed", "Mastered", "Answers", "Accuracy")
		fmt.Println(strings.Repeat("─", 68))
		for _, s := range stats {
			accuracy := "-"
			if s.Answers > 0 {
				accuracy = fmt.Sprintf("%.0f%%", float64(s.Correct)/float64(s.Answers)*100)
			}
			fmt.Printf("%-14s  %8d  %9d  %8d  %8d  %9s\n",
				s.LessonID, s.Sessions, s.Completed, s.Mastered, s.Answers, accuracy)
		}
		return nil
	},
}
