// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/proposal-search/internal/config"
	"fjacquet/proposal-search/internal/container"
	"fjacquet/proposal-search/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	ProposalsFile  string
	CategoriesFile string
	Format         string
	Output         string
	LogLevel       string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig holds the configuration loaded before each command runs
	AppConfig *config.Config

	// AppContainer holds the loaded data and services
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "proposal-search",
		Short: "A CLI tool to search budget proposals by category, proposer, result or keyword.",
		Long: `proposal-search loads a table of budget proposals and a category taxonomy,
then filters proposals by category, proposer, result and department, or
searches them by keyword. Run "proposal-search menu" for the interactive menu.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			AppConfig = cfg

			c, err := container.NewContainer(cfg)
			if err != nil {
				return fmt.Errorf("failed to load data: %w", err)
			}
			AppContainer = c
			Log = c.GetLogger()
			return nil
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.ProposalsFile, "proposals", "p", "", "Proposal table file (CSV)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.CategoriesFile, "categories", "c", "", "Category taxonomy file (JSON or YAML)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Format, "format", "", "Output format: text or json")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Also write matching proposals to this CSV file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

// loadConfig reads the configuration and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	ApplyFlags(cfg, SharedFlags)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyFlags overrides configuration values with the flags that were set.
func ApplyFlags(cfg *config.Config, flags CommonFlags) {
	if flags.ProposalsFile != "" {
		cfg.Data.ProposalsFile = flags.ProposalsFile
	}
	if flags.CategoriesFile != "" {
		cfg.Data.CategoriesFile = flags.CategoriesFile
	}
	if flags.Format != "" {
		cfg.Output.Format = flags.Format
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
}

// OutputFormat returns the effective output format.
func OutputFormat() string {
	if AppConfig == nil {
		return SharedFlags.Format
	}
	return AppConfig.Output.Format
}
