package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var illustratePause time.Duration

var illustrateCmd = &cobra.Command{
	Use:   "illustrate",
	Short: "Generate images for stored projects that have none",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyStoreFlag()
		ctx := cmd.Context()

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.AI.Configured() {
			return fmt.Errorf("OpenAI API key not configured")
		}
		a.AI.SetBatchPause(illustratePause)

		result, err := a.Sync.IllustrateMissing(ctx)
		if err != nil {
			return err
		}

		for _, p := range result.Updated {
			printProject(p)
		}
		color.Green("Generated images for %d of %d projects\n", len(result.Updated), result.Attempted)
		return nil
	},
}

func init() {
	illustrateCmd.Flags().DurationVar(&illustratePause, "pause", time.Second, "pause between image requests")
}
