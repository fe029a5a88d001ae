// Package cli is the terminal consumer of the workspace store. It only
// exercises the store's read/write contract: all filtering and formatting
// happens here, none of it in the store.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fourcreative/studiodesk/internal/config"
	"github.com/fourcreative/studiodesk/internal/logger"
	"github.com/fourcreative/studiodesk/internal/seed"
	"github.com/fourcreative/studiodesk/internal/store"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
	seedFile   string
)

var rootCmd = &cobra.Command{
	Use:   "studiodesk",
	Short: "StudioDesk - creative agency workspace",
	Long: `StudioDesk is a creative-agency workspace: clients, projects and tasks,
a digital asset archive, invoicing and expenses, content scheduling and a
playbook wiki.

State lives in memory for the duration of a command and boots from the
built-in sample dataset, or from a YAML seed file via --seed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}
		if !cmd.Flags().Changed("seed") {
			seedFile = cfg.SeedFile
		}

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("StudioDesk started", logger.F("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

// openStore builds the session store from the configured seed
func openStore() (*store.Store, error) {
	if seedFile != "" {
		snap, err := seed.FromFile(seedFile)
		if err != nil {
			return nil, err
		}
		logger.Info("seed loaded from file", logger.F("path", seedFile))
		return store.NewFromSnapshot(snap), nil
	}
	return store.NewFromSnapshot(seed.Default()), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML seed dataset (defaults to the built-in sample)")

	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(overviewCmd)
}
