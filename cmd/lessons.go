package cmd

import (
	"fmt"

	"github.com/anirudh/explainly/internal/content"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the built-in lessons",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-14s  %-34s  %s\n", "ID", "TITLE", "CONCEPT")
		for _, p := range content.All() {
			fmt.Printf("%-14s  %-34s  %s\n", p.ID, p.Title, p.Concept)
		}
	},
}
