package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-trip-planner/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the backend, session and whether the backend answers",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a := loadApp()

	fmt.Printf("Backend:  %s\n", a.cfg.BaseURL)
	fmt.Printf("Timezone: %s\n", a.codec.Location)

	s, err := storage.LoadSession(a.base)
	if err != nil {
		fail(exitFailure, err)
	}
	if s == nil {
		fmt.Println("No session stored.")
		return nil
	}
	fmt.Printf("User:     %d\n", s.UserID)

	ctx, cancel := a.context()
	defer cancel()
	trips, err := a.client.GetTrips(ctx, a.session())
	if err != nil {
		fmt.Printf("Status:   unreachable (%v)\n", err)
		return nil
	}
	fmt.Printf("Status:   ok, %d trips\n", len(trips))
	return nil
}
