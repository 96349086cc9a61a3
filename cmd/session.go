package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/Tiliavir/trivial-trip-planner/internal/config"
	"github.com/Tiliavir/trivial-trip-planner/internal/storage"
	"github.com/Tiliavir/trivial-trip-planner/internal/tripapi"
)

var (
	sessionUserID int
	sessionToken  string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the signed-in user and token",
}

var sessionSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the user id and auth token used for backend requests",
	Args:  cobra.NoArgs,
	RunE:  runSessionSet,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored session",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE:  runSessionClear,
}

func init() {
	sessionSetCmd.Flags().IntVar(&sessionUserID, "user", 0, "User id (required)")
	sessionSetCmd.Flags().StringVar(&sessionToken, "token", "", "Auth token issued by the backend (required)")
	_ = sessionSetCmd.MarkFlagRequired("user")
	_ = sessionSetCmd.MarkFlagRequired("token")

	sessionCmd.AddCommand(sessionSetCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
}

func runSessionSet(cmd *cobra.Command, args []string) error {
	base, err := config.Dir()
	if err != nil {
		fail(exitFailure, err)
	}
	s := tripapi.Session{
		UserID: sessionUserID,
		Token:  &oauth2.Token{AccessToken: sessionToken},
	}
	if err := storage.SaveSession(base, s); err != nil {
		fail(exitFailure, err)
	}
	fmt.Printf("Session stored for user %d.\n", sessionUserID)
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	base, err := config.Dir()
	if err != nil {
		fail(exitFailure, err)
	}
	s, err := storage.LoadSession(base)
	if err != nil {
		fail(exitFailure, err)
	}
	if s == nil {
		fmt.Println("No session stored.")
		return nil
	}
	fmt.Printf("User:  %d\n", s.UserID)
	fmt.Printf("Token: %s\n", maskToken(s.Token))
	return nil
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	base, err := config.Dir()
	if err != nil {
		fail(exitFailure, err)
	}
	if err := storage.ClearSession(base); err != nil {
		fail(exitFailure, err)
	}
	fmt.Println("Session cleared.")
	return nil
}

// maskToken shows only the last four characters of a token.
func maskToken(tok *oauth2.Token) string {
	if tok == nil || tok.AccessToken == "" {
		return "(none)"
	}
	s := tok.AccessToken
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
