//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const demoCatalog = "catalogs/generated/demo.yaml"

// Demo generates a sample catalog and runs the query pipeline against it.
func Demo() error {
	if err := os.MkdirAll(filepath.Dir(demoCatalog), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(demoCatalog), err)
	}
	steps := [][]string{
		{"generate", "--count", "25", "--seed", "7", "--out", demoCatalog},
		{"filters", "book a table somewhere cheap with gluten-free options"},
		{"search", "cheap", "vegetarian", "italian", "--catalog", demoCatalog},
	}
	for _, args := range steps {
		fmt.Printf("$ concierge-engine %s\n", strings.Join(args, " "))
		if err := runCLI(args...); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// runCLI invokes a concierge-engine subcommand through go run.
func runCLI(args ...string) error {
	full := append([]string{"run", cmdPkg}, args...)
	cmd := exec.Command("go", full...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("concierge-engine %s: %w", args[0], err)
	}
	return nil
}
