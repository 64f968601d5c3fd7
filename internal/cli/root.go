// Package cli wires the vocabsearch commands together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vocabsearch/internal/config"
)

// Version is set at build time
var Version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:          "vocabsearch",
	Short:        "Serve a vocabulary and search it incrementally",
	SilenceUsage: true,
	Long: `vocabsearch serves a word/definition vocabulary over HTTP together with a
small search page, and browses it from the terminal with a live regular
expression filter.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/vocabsearch/config.toml)")
	rootCmd.AddCommand(serveCmd, browseCmd, versionCmd)
}

// loadConfig reads the config file selected by --config
func loadConfig() (*config.Config, error) {
	svc := config.NewConfigService()
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// Execute is called by main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
