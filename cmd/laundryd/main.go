package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "laundryd",
		Short: "Laundromat finder backend",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath == "" {
				configPath = os.Getenv("CONFIG_PATH")
			}
			if configPath == "" {
				configPath = "./config/config.yaml" // Default path for local development
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config/config.yaml)")

	root.AddCommand(serveCmd(), seedCmd())
	return root
}

func newLogger() *log.Logger {
	return log.New(os.Stdout, "laundryd ", log.LstdFlags)
}
