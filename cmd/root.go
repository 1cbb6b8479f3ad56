package cmd

import (
	"github.com/anirudh/explainly/internal/config"
	"github.com/anirudh/explainly/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "explainly",
	Short: "Interactive explainers for curious engineers",
	Long:  "Explainly — terminal lessons that teach systems intuition through simulations you can poke at.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXPLAINLY_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then EXPLAINLY_DB / the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
