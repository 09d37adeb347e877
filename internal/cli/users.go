package cli

import (
	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts (admin)",
}

var (
	usersPage   int
	usersLimit  int
	usersSearch string
)

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		page, err := rt.session.ListUsers(cmd.Context(), usersPage, usersLimit, usersSearch)
		if err != nil {
			return err
		}

		for _, u := range page.Users {
			printf("%s\t%s\t%s\t%s", u.ID, u.Role, u.Email, u.Name)
		}
		printf("page %d of %d (%d users)", usersPage, page.TotalPages, page.TotalUsers)
		return nil
	},
}

var usersChangeRoleCmd = &cobra.Command{
	Use:   "change-role <user-id> <student|tutor|admin>",
	Short: "Change a user's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := studysdk.ParseRole(args[1])
		if err != nil {
			return err
		}

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		if err := rt.session.ChangeUserRole(cmd.Context(), args[0], role); err != nil {
			return err
		}
		printf("User %s is now a %s.", args[0], role)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleAdmin); err != nil {
			return err
		}

		if err := rt.session.DeleteUser(cmd.Context(), args[0]); err != nil {
			return err
		}
		printf("User %s deleted.", args[0])
		return nil
	},
}

func init() {
	usersListCmd.Flags().IntVar(&usersPage, "page", 1, "page number")
	usersListCmd.Flags().IntVar(&usersLimit, "limit", 10, "results per page")
	usersListCmd.Flags().StringVar(&usersSearch, "search", "", "filter by name or email")

	usersCmd.AddCommand(usersListCmd, usersChangeRoleCmd, usersDeleteCmd)
}
