package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukk-cs/attribo-backend/internal/models"
	"github.com/lukk-cs/attribo-backend/internal/services"
)

var (
	newUsername string
	newPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage creator accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a creator account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, closePool, err := openGateway(cmd.Context())
		if err != nil {
			return err
		}
		defer closePool()

		u, err := services.NewAccountService(gw, logger).Register(cmd.Context(), newUsername, newPassword)
		if errors.Is(err, models.ErrConflict) {
			return fmt.Errorf("username %q is already taken", newUsername)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", u.Username, u.ID)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&newUsername, "username", "", "login name")
	userCreateCmd.Flags().StringVar(&newPassword, "password", "", "initial password")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}
