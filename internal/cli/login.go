package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var (
	loginEmail        string
	loginPassword     string
	loginProviderFile string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email/password or a social provider result",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		var identity *studysdk.Identity

		if loginProviderFile != "" {
			result, err := readProviderResult(loginProviderFile)
			if err != nil {
				return err
			}
			identity, err = rt.session.LoginWithProvider(cmd.Context(), result)
			if err != nil {
				return err
			}
		} else {
			identity, err = rt.session.Login(cmd.Context(), studysdk.LoginRequest{
				Email:    loginEmail,
				Password: loginPassword,
			})
			if err != nil {
				return err
			}
		}

		printf("Logged in as %s (%s)", identity.Email, identity.Role)
		return nil
	},
}

// readProviderResult loads the identity provider's popup result from a JSON
// file. The popup flow itself happens in a browser, outside this client.
func readProviderResult(path string) (studysdk.ProviderResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return studysdk.ProviderResult{}, fmt.Errorf("failed to read provider result: %w", err)
	}

	var result studysdk.ProviderResult
	if err := json.Unmarshal(data, &result); err != nil {
		return studysdk.ProviderResult{}, fmt.Errorf("failed to parse provider result: %w", err)
	}
	return result, nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.Flags().StringVar(&loginProviderFile, "provider-result", "", "path to a social provider result JSON file")
}
