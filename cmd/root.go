package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ttp",
	Short: "Trivial Trip Planner – a command-line client for the trip planner",
	Long: `ttp talks to the trip-planning backend: list, inspect, create, reorder
and share trips made of destinations and nested sub-trips.
Settings live in ~/.ttp/config.json, the session in ~/.ttp/auth/.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every backend request")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(tripsCmd)
	rootCmd.AddCommand(tripCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(statusCmd)
}
