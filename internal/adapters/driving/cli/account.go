package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the customer account login",
	Long: `Sign in to the shop's customer account in the browser.

Login needs account.shop_id and account.client_id in the settings.`,
	RunE: runAccountStatus,
}

var accountLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in through the browser",
	Args:  cobra.NoArgs,
	RunE:  runAccountLogin,
}

var accountLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored login",
	Args:  cobra.NoArgs,
	RunE:  runAccountLogout,
}

var accountStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you are signed in",
	Args:  cobra.NoArgs,
	RunE:  runAccountStatus,
}

func init() {
	accountCmd.AddCommand(accountLoginCmd)
	accountCmd.AddCommand(accountLogoutCmd)
	accountCmd.AddCommand(accountStatusCmd)
	rootCmd.AddCommand(accountCmd)
}

func runAccountLogin(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}
	if err := accountService.Login(cmd.Context()); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	cmd.Println("Signed in.")
	return nil
}

func runAccountLogout(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}
	if err := accountService.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	cmd.Println("Signed out.")
	return nil
}

func runAccountStatus(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}
	if accountService.IsLoggedIn(cmd.Context()) {
		cmd.Println("Signed in.")
		return nil
	}
	cmd.Println("Not signed in. Run: coffeehunt account login")
	return nil
}
