// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/concierge-engine/internal/catalog"
	"github.com/pdiddy/concierge-engine/internal/dietary"
	"github.com/pdiddy/concierge-engine/internal/match"
)

var dietaryCmd = &cobra.Command{
	Use:   "dietary [restaurant-id-or-name]",
	Short: "Score one restaurant against a dietary profile",
	Long: `Dietary looks a restaurant up in the catalog by ID or name and runs the
compatibility analyzer against the given restrictions and allergies. The
output is a 0-100 score, a compatible verdict, and the warning and
recommendation messages.`,
	RunE: runDietary,
}

func init() {
	dietaryCmd.Flags().String("catalog", "", "catalog snapshot file (default from config, then catalog.yaml)")
	dietaryCmd.Flags().StringSlice("restrict", nil, "dietary restriction tags (repeatable)")
	dietaryCmd.Flags().StringSlice("allergy", nil, "allergy tags (repeatable)")
	dietaryCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(dietaryCmd)
}

func runDietary(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one restaurant ID or name")
	}

	cfg := engineConfig()
	path := flagOrDefault(cmd, "catalog", cfg.Catalog.Path)

	cf, err := catalog.Load(path)
	if err != nil {
		return err
	}

	r, ok := cf.FindRestaurant(args[0])
	if !ok {
		return fmt.Errorf("restaurant %q not found in catalog %s", args[0], path)
	}

	restrictions, _ := cmd.Flags().GetStringSlice("restrict")
	allergies, _ := cmd.Flags().GetStringSlice("allergy")

	result := dietary.Analyze(r, restrictions, allergies)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	match.FormatCompatibility(r.Name, result, os.Stdout)
	return nil
}
