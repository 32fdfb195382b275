package main

import (
	"fmt"
	"os"

	"heritage_gold/internal/config"
	"heritage_gold/internal/logging"

	"github.com/spf13/cobra"
)

var (
	cfg     config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "heritage-gold",
	Short: "Jewellery catalogue, pricing and lead service",
	Long: `heritage-gold serves the jewellery catalogue, live gold-rate estimates,
the guided selection flow and order-intent capture.

Examples:
  heritage-gold serve
  heritage-gold seed --create-tables`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := logging.Initialize(cfg.Logging); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
