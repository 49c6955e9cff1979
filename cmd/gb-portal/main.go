package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/h44z/groupbackend-portal/internal"
	"github.com/h44z/groupbackend-portal/internal/config"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:     "gb-portal",
	Short:   "Configure LDAP user group backends",
	Version: internal.Version,
	Long: `gb-portal serves the configuration form for LDAP and Active Directory user group backends.
Defaults for the group and user attributes are derived from the selected directory resource and
the user backend that is linked to it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"path to the configuration file, defaults to $"+config.ConfigFileEnv+" or config.yml")
}

// loadConfig reads the configuration and sets up logging for all sub commands.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
	} else {
		cfg, err = config.GetConfig()
	}
	if err != nil {
		return nil, err
	}

	internal.SetupLogging(cfg.Advanced.LogLevel, cfg.Advanced.LogPretty, cfg.Advanced.LogJson)
	cfg.LogStartupValues()

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
