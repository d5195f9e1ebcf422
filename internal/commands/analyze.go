package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/folio-dev/portfolio-api/internal/services"
)

var (
	analyzeDescription string
	analyzeReadme      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <project-name>",
	Short: "Categorize a project and suggest an image prompt",
	Long: `Ask OpenAI for a category, image prompt and description of a project.
Without an API key the keyword heuristics are used instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ai := services.NewAIService(globalConfig.OpenAIAPIKey, globalConfig.OpenAIBaseURL)
		if !ai.Configured() {
			color.Yellow("OpenAI API key not configured, using keyword heuristics\n")
		}

		name := strings.Join(args, " ")
		analysis := ai.AnalyzeProject(cmd.Context(), name, analyzeDescription, analyzeReadme)

		fmt.Print("Category:     ")
		categoryColor(analysis.Category).Println(analysis.Category)
		fmt.Printf("Image prompt: %s\n", analysis.ImagePrompt)
		fmt.Printf("Description:  %s\n", analysis.EnhancedDescription)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDescription, "description", "d", "", "project description")
	analyzeCmd.Flags().StringVar(&analyzeReadme, "readme", "", "README text")
}
