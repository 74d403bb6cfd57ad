package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Closed-form rectangular beam design and analysis",
	Long: `Design and analyze rectangular beams with the textbook closed-form
equations, assuming the tension steel yields.

Subcommands:
  design   - Calculate required reinforcement for a given moment
  analyze  - Calculate moment capacity for a given reinforcement area
  doubly   - Split a moment between concrete and compression steel

These are quick hand-check companions to 'aci318 analyze', which does
not assume yielding and handles any number of layers.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
