package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/folio-dev/portfolio-api/internal/constants"
	"github.com/folio-dev/portfolio-api/internal/services"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage owner accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create an owner account (password read from stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyStoreFlag()

		fmt.Fprint(os.Stderr, "Password: ")
		password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && password == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(password, "\r\n")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.Accounts.Register(services.RegisterInput{Username: args[0], Password: password})
		if errors.Is(err, services.ErrPasswordTooShort) {
			return fmt.Errorf("password must be at least %d characters", constants.MinPasswordLength)
		}
		if err != nil {
			return err
		}

		color.Green("Created user %s (id %d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
}
