package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Print the URL a user visits to authorize this application",
	Long: `Print the Fire Eagle authorization URL for this application.

Send a user to this URL to grant your application access to their
location. No request is made; the URL is built locally.`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	fmt.Println(client.AuthorizeURL())
	return nil
}
