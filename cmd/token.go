package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// tokenCmd groups the mobile shortcode helpers
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mobile shortcode token helpers",
}

// tokenShowCmd represents the token show command
var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the URL displaying this application's mobile shortcode",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(client.MobileTokenURL())
		return nil
	},
}

// tokenExchangeCmd represents the token exchange command
var tokenExchangeCmd = &cobra.Command{
	Use:   "exchange <shortcode>",
	Short: "Exchange a mobile shortcode for a permanent auth token",
	Long: `Exchange a short-lived mobile shortcode for a permanent auth token.

The returned token goes into fireeagle.auth_token in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenExchange,
}

func init() {
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenExchangeCmd)
	rootCmd.AddCommand(tokenCmd)
}

func runTokenExchange(cmd *cobra.Command, args []string) error {
	token, err := client.ExchangeMobileToken(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("✓ Auth token: %s\n", token)
	fmt.Println("Add it to your config as fireeagle.auth_token to use it by default.")
	return nil
}
