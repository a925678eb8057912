package main

import (
	"fmt"
	"os"

	_ "pixgate/docs"

	"github.com/spf13/cobra"
)

var Version = "dev"

// @title           pixgate API
// @version         1.0
// @description     PIX checkout gateway: one contract over several PIX providers, status streaming and vehicle lookup.

// @host      localhost:8080
// @BasePath  /api

func main() {
	rootCmd := &cobra.Command{
		Use:     "pixgate",
		Short:   "pixgate - PIX checkout gateway",
		Version: Version,
		// serving is the default action
		RunE: runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
