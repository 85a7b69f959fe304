// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/txlabel/internal/common"
	"fjacquet/txlabel/internal/config"
	"fjacquet/txlabel/internal/container"
	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/validation"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	ConfigFile string
	RulesFile  string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer is set up before any subcommand runs
	AppContainer *container.Container

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "txlabel",
		Short: "A CLI tool to label bank transactions with business types and retailers.",
		Long: `txlabel labels bank transactions exported as CSV with a business type and a retailer.
Labels come from an ordered rule database of key phrases. Transactions no rule
matches can be grouped by description similarity and labeled interactively,
which adds new rules for the next run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to txlabel!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input transaction CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file name or path")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.RulesFile, "rules", "r", "", "Rule database file (.json, .yaml or .yml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.txlabel, .txlabel and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
}

func initialize() error {
	if _, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Error loading .env file")
	}

	cfg, err := config.InitializeConfigFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	applyOverrides(cfg, SharedFlags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

func applyOverrides(cfg *config.Config, flags CommonFlags) {
	if flags.RulesFile != "" {
		cfg.Rules.File = flags.RulesFile
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
}

// GetContainer returns the initialized container or an error when the root
// command has not run its setup.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer, nil
}

// RequireInput returns the --input flag value, or an error when it is empty.
func RequireInput() (string, error) {
	if SharedFlags.Input == "" {
		return "", fmt.Errorf("an input file is required (--input)")
	}
	return SharedFlags.Input, nil
}

// RequireInputFile returns the --input flag value after checking that it names a file.
func RequireInputFile() (string, error) {
	input, err := RequireInput()
	if err != nil {
		return "", err
	}
	if err := validation.InputFile(input); err != nil {
		return "", err
	}
	return input, nil
}

// RequireInputDir returns the --input flag value after checking that it names a directory.
func RequireInputDir() (string, error) {
	input, err := RequireInput()
	if err != nil {
		return "", err
	}
	if err := validation.InputDirectory(input); err != nil {
		return "", err
	}
	return input, nil
}

// OutputFile resolves the --output flag against the configured output directory.
func OutputFile(cfg *config.Config) string {
	return common.OutputPath(cfg.Output.Directory, SharedFlags.Output)
}
