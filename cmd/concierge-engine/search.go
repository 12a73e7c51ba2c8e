package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/concierge-engine/internal/catalog"
	"github.com/pdiddy/concierge-engine/internal/extract"
	"github.com/pdiddy/concierge-engine/internal/match"
	"github.com/pdiddy/concierge-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Rank catalog restaurants against a free-text request",
	Long: `Search parses a free-text request into structured filters (cuisine,
dietary tag, price tier, amenity), applies them to the catalog, and prints
a ranked, deduplicated match list. A dietary profile supplied via --restrict
and --allergy enables the compatibility ranking bonus; the dietary filter
itself is always pass/fail.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("catalog", "", "catalog snapshot file (default from config, then catalog.yaml)")
	searchCmd.Flags().StringSlice("restrict", nil, "dietary restriction tags for the user profile (repeatable)")
	searchCmd.Flags().StringSlice("allergy", nil, "allergy tags for the user profile (repeatable)")
	searchCmd.Flags().Int("max-results", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a free-text request, e.g. \"cheap vegetarian italian\"")
	}
	query := strings.Join(args, " ")

	cfg := engineConfig()
	path := flagOrDefault(cmd, "catalog", cfg.Catalog.Path)

	cf, err := catalog.Load(path)
	if err != nil {
		return err
	}

	filters := extract.Extract(query)
	profile := profileFromFlags(cmd)

	matches := match.Match(cf.Restaurants, filters, profile)

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = cfg.Match.MaxResults
	}
	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return match.FormatJSON(matches, os.Stdout)
	}
	match.FormatTable(matches, os.Stdout)
	return nil
}

// profileFromFlags builds the optional dietary profile; nil when neither
// flag is set.
func profileFromFlags(cmd *cobra.Command) *types.DietaryProfile {
	restrictions, _ := cmd.Flags().GetStringSlice("restrict")
	allergies, _ := cmd.Flags().GetStringSlice("allergy")

	if len(restrictions) == 0 && len(allergies) == 0 {
		return nil
	}
	return &types.DietaryProfile{
		Restrictions: restrictions,
		Allergies:    allergies,
	}
}
