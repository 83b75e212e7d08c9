package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/adminext/cmd/adminext"
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	rootCmd := adminext.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		details := errors.GetErrorDetails(err)
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", k, details[k])
		}
		os.Exit(1)
	}
}
