package commands

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Mollie credentials",
		Long: `Store an API key or access token in the configuration file.

The credential is taken from --api-key or --access-token when given, and
prompted for otherwise. It is verified by listing the enabled payment
methods unless --skip-verify is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString("api_key")
			accessToken := viper.GetString("access_token")

			if apiKey == "" && accessToken == "" {
				_, _ = os.Stdout.WriteString("API key or access token: ")

				secret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read credential: %w", err)
				}

				_, _ = os.Stdout.WriteString("\n")

				credential := strings.TrimSpace(string(secret))
				if strings.HasPrefix(credential, "access_") {
					accessToken = credential
				} else {
					apiKey = credential
				}
			}

			config := loadConfig()
			config.APIKey = ""
			config.AccessToken = ""

			if accessToken != "" {
				err := setConfigValue(config, "access_token", accessToken)
				if err != nil {
					return err
				}
			} else {
				err := setConfigValue(config, "api_key", apiKey)
				if err != nil {
					return err
				}
			}

			if !skipVerify {
				viper.Set("api_key", config.APIKey)
				viper.Set("access_token", config.AccessToken)

				client, err := CreateClient(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to create client: %w", err)
				}

				methods, err := client.Methods().ListEnabled(cmd.Context(), nil)
				if err != nil {
					return fmt.Errorf("failed to verify credential: %w", err)
				}

				_, _ = fmt.Fprintf(os.Stdout, "Verified: %d payment methods enabled\n", methods.Count)
			}

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			if config.AccessToken != "" {
				_, _ = os.Stdout.WriteString("Logged in with access token " + maskSecret(config.AccessToken) + "\n")
			} else {
				_, _ = os.Stdout.WriteString("Logged in with API key " + maskSecret(config.APIKey) + "\n")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "store the credential without calling the API")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Remove the API key and access token from the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = ""
			config.AccessToken = ""

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = os.Stdout.WriteString("Logged out\n")

			return nil
		},
	}
}
