package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mollie-client/internal/auth"
	"github.com/fivetwenty-io/mollie-client/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey      string `json:"api_key,omitempty"      yaml:"api_key,omitempty"`
	AccessToken string `json:"access_token,omitempty" yaml:"access_token,omitempty"`
	BaseURL     string `json:"base_url,omitempty"     yaml:"base_url,omitempty"`
	Testmode    bool   `json:"testmode"               yaml:"testmode"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
}

// configSetters maps the keys accepted by "config set" onto Config fields.
var configSetters = map[string]func(*Config, string) error{
	"api_key": func(c *Config, v string) error {
		_, err := auth.NewAPIKeyManager(v)
		if err != nil {
			return fmt.Errorf("%w: %w", constants.ErrInvalidAPIKey, err)
		}

		c.APIKey = v

		return nil
	},
	"access_token": func(c *Config, v string) error {
		_, err := auth.NewAccessTokenManager(v)
		if err != nil {
			return fmt.Errorf("%w: %w", constants.ErrInvalidAPIKey, err)
		}

		c.AccessToken = v

		return nil
	},
	"base_url": func(c *Config, v string) error {
		c.BaseURL = v

		return nil
	},
	"testmode": func(c *Config, v string) error {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing testmode: %w", err)
		}

		c.Testmode = enabled

		return nil
	},
	"output": func(c *Config, v string) error {
		switch v {
		case OutputFormatJSON, OutputFormatYAML, OutputFormatTable:
			c.Output = v

			return nil
		default:
			return constants.ErrInvalidOutputFormat
		}
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Mollie CLI configuration including credentials and settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := maskConfig(loadConfig())

			return renderOutput(config, func() error {
				return displayConfigTable(config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = os.Stdout.WriteString("Cleared all configuration\n")

			return nil
		},
	}
}

func configKeys() []string {
	keys := make([]string, 0, len(configSetters))
	for key := range configSetters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func setConfigValue(config *Config, key, value string) error {
	setter, ok := configSetters[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return setter(config, value)
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case "api_key":
		config.APIKey = ""
	case "access_token":
		config.AccessToken = ""
	case "base_url":
		config.BaseURL = ""
	case "testmode":
		config.Testmode = false
	case "output":
		config.Output = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func loadConfig() *Config {
	return &Config{
		APIKey:      viper.GetString("api_key"),
		AccessToken: viper.GetString("access_token"),
		BaseURL:     viper.GetString("base_url"),
		Testmode:    viper.GetBool("testmode"),
		Output:      viper.GetString("output"),
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".mollie", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func maskConfig(config *Config) *Config {
	masked := *config
	masked.APIKey = maskSecret(config.APIKey)
	masked.AccessToken = maskSecret(config.AccessToken)

	return &masked
}

// maskSecret keeps the mode prefix and the last four characters.
func maskSecret(secret string) string {
	const visible = 4

	if secret == "" {
		return ""
	}

	prefix := ""
	if idx := strings.Index(secret, "_"); idx >= 0 {
		prefix = secret[:idx+1]
	}

	if len(secret)-len(prefix) <= visible {
		return prefix + constants.MaskedSecret
	}

	return prefix + constants.MaskedSecret + secret[len(secret)-visible:]
}

func displayConfigTable(config *Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("API Key", formatValue(config.APIKey))
	_ = table.Append("Access Token", formatValue(config.AccessToken))
	_ = table.Append("Base URL", formatValue(config.BaseURL))
	_ = table.Append("Testmode", strconv.FormatBool(config.Testmode))
	_ = table.Append("Output", formatValue(config.Output))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
