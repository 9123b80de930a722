package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arcdemo",
	Short: "Approximate cubic Bézier curves by circular arcs",
	Long: `arcdemo fits sequences of circular arcs to a set of sample cubic Bézier
curves, keeping the deviation between curve and arcs within a caller-chosen
tolerance. It can print the resulting segments or render curve and arcs to a
PNG image for visual inspection.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
