package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/mangadex-client/cmd/mangadex/commands"
	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mangadex",
	Short: "MangaDex API CLI",
	Long: `A command-line interface for the MangaDex API.

It covers sessions, chapters, follows, reading statuses and statistics, and
keeps the session tokens in its config file between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.mangadex/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API base URL (default is the production API)")
	rootCmd.PersistentFlags().Bool("dev", false, "use the development sandbox API")
	rootCmd.PersistentFlags().String("mode", "", "client state mode (exclusive, shared)")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests and responses")
	rootCmd.PersistentFlags().String("log-format", constants.LogFormatConsole, "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("dev", rootCmd.PersistentFlags().Lookup("dev"))
	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewRefreshCommand())
	rootCmd.AddCommand(commands.NewWhoamiCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewChaptersCommand())
	rootCmd.AddCommand(commands.NewFollowsCommand())
	rootCmd.AddCommand(commands.NewMangaCommand())
	rootCmd.AddCommand(commands.NewGroupsCommand())
	rootCmd.AddCommand(commands.NewAuthorsCommand())
	rootCmd.AddCommand(commands.NewListsCommand())
	rootCmd.AddCommand(commands.NewCoversCommand())
	rootCmd.AddCommand(commands.NewLegacyCommand())
	rootCmd.AddCommand(commands.NewCaptchaCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, constants.ConfigDirName)
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		// Search config in ~/.mangadex/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
