package cmd

import (
	"context"
	"fmt"

	"github.com/anirudh/explainly/internal/content"
	"github.com/anirudh/explainly/internal/lesson"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [lesson]",
	Short: "Start a lesson, skipping the picker",
	Long: `Start a lesson directly. With no argument the picker opens as usual.

Built-in lessons: ` + fmt.Sprint(content.IDs()),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var lessonID string
		if len(args) > 0 {
			lessonID = args[0]
			if packPath, _ := cmd.Flags().GetString("pack"); packPath == "" {
				if _, err := content.ByID(lessonID); err != nil {
					return fmt.Errorf("unknown lesson %q (try: explainly lessons)", lessonID)
				}
			}
		}

		phase, _ := cmd.Flags().GetString("phase")
		if phase != "" && !lesson.Phase(phase).Valid() {
			return fmt.Errorf("unknown phase %q", phase)
		}

		return runApp(cmd, lessonID, phase)
	},
}

func init() {
	playCmd.Flags().String("phase", "", "Phase to open the lesson at (hook, predict, play, ...)")
	playCmd.Flags().String("pack", "", "Path to a custom lesson pack JSON file")
	playCmd.SetContext(context.Background())
}
