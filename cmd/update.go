package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update field=value [field=value ...]",
	Short: "Update the configured user's location",
	Long: `Push a location update for the user whose auth token is configured.

Fields follow the remote update schema, e.g.:

  fireeagle update city=Oakland state=CA
  fireeagle update lat=37.8044 lon=-122.2712`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid field %q: expected field=value", arg)
		}
		params[key] = value
	}

	logger.Info().Int("fields", len(params)).Msg("Updating location")

	if _, err := client.UpdateLocation(context.Background(), params); err != nil {
		return err
	}

	fmt.Println("✓ Location updated")
	return nil
}
