// Package root contains the root command for the application
package root

import (
	"fmt"

	"gigbook/gig-import/internal/common"
	"gigbook/gig-import/internal/config"
	"gigbook/gig-import/internal/fileutils"
	"gigbook/gig-import/internal/importer"
	"gigbook/gig-import/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
	User   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags are the flags available to all subcommands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "gig-import",
		Short: "Import gig income from CSV files into your records, safely and reversibly.",
		Long: `gig-import reconciles a CSV of gig income events against your existing
records: it normalizes columns, matches payer names, flags likely duplicates,
optionally combines split rows, and commits everything as one undoable batch.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to gig-import!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			importer.SetLogger(Log)
			store.SetLogger(Log)
			common.SetLogger(Log)
			fileutils.SetLogger(Log)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output report file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.User, "user", "u", "local", "User the records belong to")
}

// OpenStore opens the configured record store.
func OpenStore() (store.Store, error) {
	s, err := store.NewFileStore(Cfg.Data.Directory)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", Cfg.Data.Directory, err)
	}
	return s, nil
}
