package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/concierge-engine/internal/extract"
	"github.com/pdiddy/concierge-engine/pkg/types"
)

var filtersCmd = &cobra.Command{
	Use:   "filters [query...]",
	Short: "Show the structured filters extracted from a request",
	Long: `Filters runs only the query-understanding stage and prints the result:
intent label, cuisine, dietary tag, price tier, amenity, and the normalized
free-text remainder. Useful for debugging why a search matched or excluded
a restaurant.`,
	RunE: runFilters,
}

func init() {
	filtersCmd.Flags().Bool("json", false, "output filters as JSON")

	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a free-text request to parse")
	}

	filters := extract.Extract(strings.Join(args, " "))

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(filters)
	}

	printFilters(filters)
	return nil
}

func printFilters(f types.SearchFilters) {
	fmt.Printf("intent:     %s\n", f.Intent)
	fmt.Printf("cuisine:    %s\n", valueOrDash(f.Cuisine))
	fmt.Printf("dietary:    %s\n", valueOrDash(f.Dietary))
	if f.PriceLevel > 0 {
		fmt.Printf("price:      %d\n", f.PriceLevel)
	} else {
		fmt.Printf("price:      -\n")
	}
	fmt.Printf("amenity:    %s\n", valueOrDash(f.Amenity))
	fmt.Printf("remainder:  %s\n", f.Remainder)
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
