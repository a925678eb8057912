package payments

import (
	"context"
	"net/http"
	"net/url"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"
)

// Gateway C uses HTTP Basic with the secret key as username and an empty
// password, and takes the amount as "valueInCents".

var gatewayCRules = ExtractionRules{
	ID:            []string{"id", "chargeId", "txid"},
	PixCode:       []string{"pix_code", "pixCopyPaste", "brcode", "pix.copy_paste"},
	PixQrCode:     []string{"qr_code_url", "qrCodeImage", "pix.qr_code_base64"},
	Status:        []string{"status"},
	Amount:        []string{"valueInCents", "value_in_cents"},
	ApprovedAt:    []string{"paid_at", "paidAt"},
	RejectedAt:    []string{"cancelled_at", "expired_at"},
	CustomerName:  []string{"payer.name"},
	CustomerEmail: []string{"payer.email"},
	CustomerCPF:   []string{"payer.document"},
}

var gatewayCStatuses = map[string]entities.PaymentStatus{
	"pending":   entities.PaymentStatusPending,
	"active":    entities.PaymentStatusPending,
	"created":   entities.PaymentStatusPending,
	"completed": entities.PaymentStatusPaid,
	"paid":      entities.PaymentStatusPaid,
	"approved":  entities.PaymentStatusPaid,
	"canceled":  entities.PaymentStatusCancelled,
	"cancelled": entities.PaymentStatusCancelled,
	"expired":   entities.PaymentStatusExpired,
}

type gatewayCChargeRequest struct {
	ValueInCents      int64         `json:"valueInCents"`
	Description       string        `json:"description"`
	ExternalReference string        `json:"externalReference"`
	Payer             gatewayCPayer `json:"payer"`
}

type gatewayCPayer struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type GatewayC struct {
	pixProvider
}

var _ interfaces.IPaymentProvider = (*GatewayC)(nil)

func NewGatewayC(cfg config.ProviderConfig, opts Options) (*GatewayC, error) {
	if cfg.SecretKey == "" {
		return nil, entities.NewConfigurationError(config.ProviderGatewayC, "GATEWAY_C_SECRET_KEY")
	}
	if cfg.BaseURL == "" {
		return nil, entities.NewConfigurationError(config.ProviderGatewayC, "GATEWAY_C_BASE_URL")
	}
	auth := basicAuth(cfg.SecretKey, "")
	return &GatewayC{
		pixProvider: newPixProvider(config.ProviderGatewayC, "gwc", cfg.BaseURL, auth, gatewayCRules, gatewayCStatuses, opts),
	}, nil
}

func (g *GatewayC) CreatePixTransaction(ctx context.Context, req entities.PaymentRequest) (entities.PixResult, error) {
	req, externalID, err := g.prepare(req)
	if err != nil {
		return entities.PixResult{}, err
	}
	payload := gatewayCChargeRequest{
		ValueInCents:      req.AmountInCents(),
		Description:       req.ItemTitle("Pedido " + externalID),
		ExternalReference: externalID,
		Payer: gatewayCPayer{
			Name:     req.Name,
			Document: req.CPF,
			Email:    req.Email,
			Phone:    req.Phone,
		},
	}
	return g.create(ctx, "/v1/pix/charges", req, externalID, payload)
}

func (g *GatewayC) CheckTransactionStatus(ctx context.Context, transactionID string) (entities.StatusResult, error) {
	return g.status(ctx, http.MethodGet, "/v1/pix/charges/"+url.PathEscape(transactionID), transactionID)
}
