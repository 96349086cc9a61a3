package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Find users to share trips with",
}

var usersSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search users by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersSearch,
}

func init() {
	usersCmd.AddCommand(usersSearchCmd)
}

func runUsersSearch(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		fail(exitUsage, fmt.Errorf("search name must not be empty"))
	}

	a := loadApp()
	sess := a.session()
	ctx, cancel := a.context()
	defer cancel()

	users, err := a.client.SearchUsers(ctx, sess, name)
	if err != nil {
		fail(exitFailure, err)
	}
	if len(users) == 0 {
		fmt.Printf("No users matching %q.\n", name)
		return nil
	}
	for _, u := range users {
		fmt.Printf("%6d  %s %s  <%s>\n", u.ID, u.FirstName, u.LastName, u.Email)
	}
	return nil
}
