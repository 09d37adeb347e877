package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.session.Logout(); err != nil {
			return err
		}
		printf("You have successfully logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		id, err := rt.currentIdentity()
		if err != nil {
			return err
		}

		user, err := rt.session.GetUser(cmd.Context(), id.Subject)
		if err != nil {
			return err
		}

		printf("%s <%s> role=%s", user.Name, user.Email, user.Role)
		return nil
	},
}

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerRole     string
	registerPicture  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		req := studysdk.RegisterRequest{
			Name:     registerName,
			Email:    registerEmail,
			Password: registerPassword,
			Role:     studysdk.Role(registerRole),
		}

		if registerPicture != "" {
			f, err := os.Open(registerPicture)
			if err != nil {
				return fmt.Errorf("failed to open profile picture: %w", err)
			}
			defer f.Close()
			req.ProfilePicture = &studysdk.FileUpload{Filename: filepath.Base(registerPicture), Content: f}
		}

		if err := rt.client.Register(cmd.Context(), req); err != nil {
			return err
		}

		// Mirror the web flow: a successful registration logs straight in.
		identity, err := rt.session.Login(cmd.Context(), studysdk.LoginRequest{
			Email:    registerEmail,
			Password: registerPassword,
		})
		if err != nil {
			return fmt.Errorf("account created but login failed: %w", err)
		}

		printf("Welcome to StudyHub, %s! Logged in as %s.", registerName, identity.Role)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded logins for this account",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		id, err := rt.currentIdentity()
		if err != nil {
			return err
		}

		entries, err := rt.session.LoginHistory(cmd.Context(), id.Subject)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			printf("%s\t%s\t%s\t%s", entry.ID, entry.LoginAt, entry.IP, entry.UserAgent)
		}
		printf("%d entries", len(entries))
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a login-history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.session.DeleteLoginHistory(cmd.Context(), args[0]); err != nil {
			return err
		}
		printf("Deleted.")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password")
	registerCmd.Flags().StringVar(&registerRole, "role", "student", "account role (student or tutor)")
	registerCmd.Flags().StringVar(&registerPicture, "picture", "", "path to a profile picture")

	historyCmd.AddCommand(historyDeleteCmd)
}
