package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/services"
)

var profileCmd = &cobra.Command{
	Use:   "profile <github-username>",
	Short: "Show a GitHub user's public profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		github := services.NewGitHubService(globalConfig.GitHubAPIURL, globalConfig.GitHubToken, globalConfig.HTTPTimeout)

		profile, err := github.FetchProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		color.New(color.Bold).Println(profile.Login)
		if name := models.StringOrEmpty(profile.Name); name != "" {
			fmt.Printf("  %s\n", name)
		}
		if bio := models.StringOrEmpty(profile.Bio); bio != "" {
			fmt.Printf("  %s\n", bio)
		}
		fmt.Printf("  repos: %d  followers: %d  following: %d\n", profile.PublicRepos, profile.Followers, profile.Following)
		fmt.Printf("  %s\n", profile.HTMLURL)
		return nil
	},
}
