package main

import (
	"encoding/json"
	"os"

	"pixgate/internal/adapter/http/dto/response"
	"pixgate/internal/adapter/http/routes"
	"pixgate/internal/config"
	"pixgate/internal/infrastructure/observability"
	"pixgate/internal/infrastructure/payments"
	"pixgate/internal/usecase"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	var provider string
	cmd := &cobra.Command{
		Use:   "status [transaction-id]",
		Short: "Check a PIX charge once and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger, err := observability.NewLogger(cfg.IsDevelopment(), "error")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			opts := payments.Options{Timeout: cfg.ProviderTimeout, QRChartURL: cfg.QRChartURL, Logger: logger}
			uc := usecase.NewPaymentUseCase(routes.BuildProviders(cfg, opts, logger), cfg.DefaultProvider, nil, logger)

			result, err := uc.GetPaymentStatus(cmd.Context(), provider, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(response.FromStatusResult(result))
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "Provider name (defaults to DEFAULT_PROVIDER)")
	return cmd
}
