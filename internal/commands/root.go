package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/folio-dev/portfolio-api/internal/app"
	"github.com/folio-dev/portfolio-api/internal/config"
	"github.com/folio-dev/portfolio-api/internal/logging"
)

var (
	globalConfig *config.Config
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Portfolio API maintenance tool",
	Long: `portfolioctl runs portfolio maintenance tasks outside the HTTP server:
GitHub syncs, project analysis, image generation and owner accounts.
It uses the same configuration (environment, .env, config.yaml) as the server.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.New(globalConfig)
			return
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// openApp wires the application against the configured store.
func openApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, globalConfig)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show application logs")
	rootCmd.PersistentFlags().StringVar(&storeDriverFlag, "store", "", "override STORE_DRIVER (memory, sqlite, mysql, postgres)")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(illustrateCmd)
	rootCmd.AddCommand(userCmd)
}
