package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/folio-dev/portfolio-api/internal/models"
)

var storeDriverFlag string

var syncCmd = &cobra.Command{
	Use:   "sync <github-username>",
	Short: "Import a GitHub user's repositories as projects",
	Long: `Fetch the user's repositories, classify them and store one project per repository.
With the default memory store the result is only printed; use --store to persist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyStoreFlag()
		ctx := cmd.Context()

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		// Listed here rather than in Sync so an API failure is told apart from an empty account.
		repos, err := a.GitHub.FetchUserRepositories(ctx, args[0])
		if err != nil {
			return fmt.Errorf("GitHub API error: %w", err)
		}
		if len(repos) == 0 {
			color.Yellow("%s has no public, non-fork repositories\n", args[0])
			return nil
		}

		result, err := a.Sync.SyncRepositories(ctx, args[0], repos)
		if err != nil {
			return err
		}

		for _, p := range result.Projects {
			printProject(p)
		}
		fmt.Println()
		color.Green("Successfully synced %d projects\n", result.Synced)
		if result.Failed > 0 {
			color.Red("%d repositories failed\n", result.Failed)
		}
		return nil
	},
}

func applyStoreFlag() {
	if storeDriverFlag != "" {
		globalConfig.StoreDriver = storeDriverFlag
	}
}

func printProject(p models.Project) {
	category := models.StringOrEmpty(p.Category)
	fmt.Printf("  %-4d %-40s ", p.ID, p.Name)
	categoryColor(category).Printf("%-8s", category)
	if p.ImageURL != nil {
		fmt.Print("  image")
	}
	fmt.Println()
}

func categoryColor(category string) *color.Color {
	switch category {
	case models.CategoryAI:
		return color.New(color.FgMagenta)
	case models.CategoryMobile:
		return color.New(color.FgCyan)
	case models.CategoryGames:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
