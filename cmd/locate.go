package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/fireeagle-go/filter"
	"github.com/s0up4200/fireeagle-go/fireeagle"
)

var filterExpr string

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate [token...]",
	Short: "Query the current location for one or more auth tokens",
	Long: `Query Fire Eagle for the current location of one or more users.

Each argument is a user auth token. With no arguments the token from the
config file is used. Results can be narrowed with --filter, an expression
over the location fields (City, State, PostalCode, Country, Lat, Lng,
UpdateTime), e.g.:

  fireeagle locate --filter 'City == "Oakland" && Country == "US"'`,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression over location fields")
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var locFilter *filter.Filter
	if filterExpr != "" {
		var err error
		locFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return err
		}
	}

	tokens := args
	if len(tokens) == 0 {
		// Empty token falls back to the configured auth_token
		tokens = []string{""}
	}

	logger.Info().Int("tokens", len(tokens)).Msg("Querying locations")

	locations := make([]fireeagle.Location, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, token := range tokens {
		i, token := i, token
		g.Go(func() error {
			doc, err := client.QueryLocation(gctx, token)
			if err != nil {
				return err
			}
			locations[i] = fireeagle.LocationFromDocument(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	matched := 0
	for i, loc := range locations {
		if locFilter != nil {
			ok, err := locFilter.Match(loc)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		matched++
		printLocation(tokens[i], loc)
	}

	if matched == 0 {
		fmt.Println("No locations matched.")
	}
	return nil
}

func printLocation(token string, loc fireeagle.Location) {
	label := token
	if label == "" {
		label = "(configured token)"
	}
	fmt.Printf("• %s\n", label)
	if loc.City != "" || loc.State != "" || loc.Country != "" {
		fmt.Printf("  Place: %s", loc.City)
		if loc.State != "" {
			fmt.Printf(", %s", loc.State)
		}
		if loc.PostalCode != "" {
			fmt.Printf(" %s", loc.PostalCode)
		}
		if loc.Country != "" {
			fmt.Printf(" (%s)", loc.Country)
		}
		fmt.Println()
	}
	if loc.Lat != 0 || loc.Lng != 0 {
		fmt.Printf("  Coordinates: %.6f, %.6f\n", loc.Lat, loc.Lng)
	}
	if loc.UpdateTime != "" {
		fmt.Printf("  Updated: %s\n", loc.UpdateTime)
	}
}
