// Package cmd contains the command line interface of the ledger.
package cmd

import (
	"io"
	"os"

	"github.com/envelope-zero/ledger/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagEnvFile string
	flagDBPath  string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:               "ledger",
	Short:             "Envelope budgeting ledger",
	Long:              "Serve the envelope budgeting API or calculate months of a budget from the command line.",
	PersistentPreRunE: setup,
	RunE:              runServe,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Environment file to load instead of .env")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database file, overrides DB_PATH")
}

// setup loads the configuration and configures logging for all commands.
func setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if flagEnvFile != "" {
		files = append(files, flagEnvFile)
	}

	c, err := config.Load(files...)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		c.DBPath = flagDBPath
	}
	cfg = c

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	setupLogging(cmd.ErrOrStderr(), cfg.LogFormat)
	return nil
}

// setupLogging configures the global logger.
//
// The log format can be explicitly set. If it is not set, it defaults to
// human readable for development and JSON for release.
func setupLogging(w io.Writer, format string) {
	output := w
	if (format == "" && gin.IsDebugging()) || format == "human" {
		output = zerolog.ConsoleWriter{Out: w}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
