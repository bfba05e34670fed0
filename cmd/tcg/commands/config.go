package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cardindex-io/tcgpricing/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const maskedValue = "***"

// ErrUnknownConfigKey is returned for config keys the CLI does not manage.
var ErrUnknownConfigKey = errors.New("unknown config key")

// Config represents the CLI configuration persisted in ~/.tcg/config.yml.
type Config struct {
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage CLI configuration including the API key and default output format",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			if display.APIKey != "" {
				display.APIKey = maskedValue
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(display)
			case OutputFormatYAML:
				return renderYAML(display)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("api_key", valueOrDefault(display.APIKey, "(not set)"))
				_ = table.Append("base_url", valueOrDefault(display.BaseURL, constants.DefaultBaseURL))
				_ = table.Append("output", valueOrDefault(display.Output, "table"))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [API_KEY]",
		Short: "Store the API key",
		Long:  "Store the API key in the config file. Without an argument the key is read from a hidden prompt.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) > 0 {
				apiKey = args[0]
			} else {
				fmt.Fprint(os.Stdout, "API key: ")

				keyBytes, err := term.ReadPassword(syscall.Stdin)

				fmt.Fprintln(os.Stdout)

				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(keyBytes))
			}

			if apiKey == "" {
				return fmt.Errorf("%w: API key is empty", ErrValueRequired)
			}

			config := loadConfig()
			config.APIKey = apiKey

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "API key saved")

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (base_url, output)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch args[0] {
			case "base_url":
				config.BaseURL = args[1]
			case "output":
				config.Output = args[1]
			case "api_key":
				config.APIKey = args[1]
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value (api_key, base_url, output)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch args[0] {
			case "api_key":
				config.APIKey = ""
			case "base_url":
				config.BaseURL = ""
			case "output":
				config.Output = ""
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}

// loadConfig reads the persisted CLI configuration via viper. Missing files
// yield an empty config. Output is only taken from the config file so the
// flag default is not persisted back on save.
func loadConfig() *Config {
	config := &Config{
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("base_url"),
	}

	if viper.InConfig("output") {
		config.Output = viper.GetString("output")
	}

	return config
}

// saveConfig writes the configuration to the active config file, creating
// ~/.tcg/config.yml when none is in use.
func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".tcg")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
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

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
