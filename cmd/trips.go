package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-trip-planner/internal/triptree"
)

var tripsTree bool

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List your trips",
	Args:  cobra.NoArgs,
	RunE:  runTrips,
}

func init() {
	tripsCmd.Flags().BoolVar(&tripsTree, "tree", false, "Print every trip as a full tree")
}

func runTrips(cmd *cobra.Command, args []string) error {
	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	trips, err := a.client.GetTrips(ctx, sess)
	if err != nil {
		fail(exitFailure, err)
	}
	if len(trips) == 0 {
		fmt.Println("No trips.")
		return nil
	}

	for i, trip := range trips {
		if tripsTree {
			if i > 0 {
				fmt.Println()
			}
			printTree(os.Stdout, trip)
			continue
		}
		fmt.Printf("%6d  %-30s  %s\n", trip.ID, trip.Name, formatSummary(triptree.Summarize(trip)))
	}
	return nil
}
