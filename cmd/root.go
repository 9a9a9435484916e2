/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/docextractor/config"
	"github.com/tieubaoca/docextractor/logger"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docextractor",
	Short: "Extract structured course data from syllabus PDFs",
	Long: `docextractor turns university syllabus PDFs into structured records:
the course header, its labeled sections and a unit-by-unit topic breakdown.
Records are served over HTTP or written directly from the command line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}

// loadConfig reads the config file named by --config. A missing default file
// falls back to defaults and environment variables.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if _, err := os.Stat(path); err != nil && !rootCmd.PersistentFlags().Changed("config") {
		path = ""
	}
	return config.LoadConfig(path)
}

func newLogger(mode string) *logger.Logger {
	log, err := logger.New(mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create logger:", err)
		os.Exit(1)
	}
	return log
}
