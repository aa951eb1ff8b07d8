package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/internal/logging"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/fivetwenty-io/mangadex-client/pkg/mdclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	API          string `json:"api,omitempty"           yaml:"api,omitempty"`
	Dev          bool   `json:"dev"                     yaml:"dev"`
	Mode         string `json:"mode,omitempty"          yaml:"mode,omitempty"`
	SessionToken string `json:"session_token,omitempty" yaml:"session_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	Captcha      string `json:"captcha,omitempty"       yaml:"captcha,omitempty"`
	Output       string `json:"output"                  yaml:"output"`
	Verbose      bool   `json:"verbose"                 yaml:"verbose"`
	LogFormat    string `json:"log_format,omitempty"    yaml:"log_format,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the MangaDex CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with tokens masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().masked()

			return render(cmd.OutOrStdout(), outputFormat(), config, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("API", config.baseURL())
				_ = table.Append("Mode", config.modeName())
				_ = table.Append("Session Token", config.SessionToken)
				_ = table.Append("Refresh Token", config.RefreshToken)
				_ = table.Append("Captcha", config.Captcha)
				_ = table.Append("Output", config.Output)
				_ = table.Append("Verbose", yesNo(config.Verbose))
				_ = table.Append("Log Format", config.LogFormat)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: api, dev, mode, output, verbose, log_format, captcha",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := config.set(args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file, including stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared all configuration")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		API:          viper.GetString("api"),
		Dev:          viper.GetBool("dev"),
		Mode:         viper.GetString("mode"),
		SessionToken: viper.GetString("session_token"),
		RefreshToken: viper.GetString("refresh_token"),
		Captcha:      viper.GetString("captcha"),
		Output:       viper.GetString("output"),
		Verbose:      viper.GetBool("verbose"),
		LogFormat:    viper.GetString("log_format"),
	}
}

func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "api":
		c.API = value
	case "dev":
		dev, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for dev: %w", err)
		}

		c.Dev = dev
	case "mode":
		if _, ok := mangadex.ParseMode(value); !ok {
			return fmt.Errorf("%w: %q", constants.ErrInvalidMode, value)
		}

		c.Mode = value
	case "output":
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			c.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, value)
		}
	case "verbose":
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for verbose: %w", err)
		}

		c.Verbose = verbose
	case "log_format":
		switch value {
		case constants.LogFormatConsole, constants.LogFormatJSON:
			c.LogFormat = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedLogType, value)
		}
	case "captcha":
		c.Captcha = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return nil
}

func (c *Config) masked() *Config {
	out := *c
	out.SessionToken = maskSecret(c.SessionToken)
	out.RefreshToken = maskSecret(c.RefreshToken)
	out.Captcha = maskSecret(c.Captcha)

	return &out
}

func (c *Config) baseURL() string {
	switch {
	case c.API != "":
		return c.API
	case c.Dev:
		return constants.DevBaseURL
	default:
		return constants.ProductionBaseURL
	}
}

func (c *Config) modeName() string {
	if c.Mode == "" {
		return mangadex.ModeExclusive.String()
	}

	return c.Mode
}

// clientConfig turns the CLI configuration into a library configuration.
func (c *Config) clientConfig() (*mangadex.Config, error) {
	mode, ok := mangadex.ParseMode(c.Mode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidMode, c.Mode)
	}

	config := &mangadex.Config{
		BaseURL:     c.API,
		Dev:         c.Dev,
		HTTPTimeout: constants.DefaultHTTPTimeout,
		Mode:        mode,
		Captcha:     c.Captcha,
		Debug:       c.Verbose,
	}

	if c.SessionToken != "" {
		config.AuthTokens = &mangadex.AuthTokens{Session: c.SessionToken, Refresh: c.RefreshToken}
	}

	if c.Verbose {
		logger, err := logging.Setup("debug", c.LogFormat, os.Stderr)
		if err != nil {
			return nil, err
		}

		config.Logger = logging.NewAdapter(logger)
	}

	return config, nil
}

// newClient builds a client from config.
func newClient(config *Config) (mangadex.Client, error) {
	clientConfig, err := config.clientConfig()
	if err != nil {
		return nil, err
	}

	return mdclient.New(clientConfig)
}

// createClient builds a client from the loaded CLI configuration.
func createClient() (mangadex.Client, error) {
	return newClient(loadConfig())
}

// createAuthenticatedClient is createClient for commands that need a session.
func createAuthenticatedClient() (mangadex.Client, error) {
	config := loadConfig()
	if config.SessionToken == "" {
		return nil, constants.ErrNotLoggedIn
	}

	return newClient(config)
}
