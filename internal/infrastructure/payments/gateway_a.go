package payments

import (
	"context"
	"net/http"
	"net/url"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"
)

// Gateway A authenticates with the raw secret key as the Authorization
// header value (no scheme) and expects amounts as integer cents in a JSON
// number.

var gatewayARules = ExtractionRules{
	ID:            []string{"id", "transactionId"},
	PixCode:       []string{"pixCode", "pix.code", "pixCopyPaste"},
	PixQrCode:     []string{"pixQrCode", "pix.qrCodeImage", "qrCodeUrl"},
	Status:        []string{"status"},
	Amount:        []string{"amount"},
	ApprovedAt:    []string{"approvedAt"},
	RejectedAt:    []string{"rejectedAt"},
	CustomerName:  []string{"customer.name"},
	CustomerEmail: []string{"customer.email"},
	CustomerCPF:   []string{"customer.cpf"},
}

var gatewayAStatuses = map[string]entities.PaymentStatus{
	"pending":         entities.PaymentStatusPending,
	"waiting_payment": entities.PaymentStatusPending,
	"processing":      entities.PaymentStatusPending,
	"approved":        entities.PaymentStatusPaid,
	"paid":            entities.PaymentStatusPaid,
	"completed":       entities.PaymentStatusPaid,
	"cancelled":       entities.PaymentStatusCancelled,
	"canceled":        entities.PaymentStatusCancelled,
	"rejected":        entities.PaymentStatusCancelled,
	"refused":         entities.PaymentStatusCancelled,
	"expired":         entities.PaymentStatusExpired,
}

type gatewayAPurchaseRequest struct {
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	CPF           string         `json:"cpf"`
	Phone         string         `json:"phone"`
	PaymentMethod string         `json:"paymentMethod"`
	Amount        int64          `json:"amount"`
	Traceable     bool           `json:"traceable"`
	ExternalID    string         `json:"externalId"`
	Items         []gatewayAItem `json:"items"`
}

type gatewayAItem struct {
	UnitPrice int64  `json:"unitPrice"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

type GatewayA struct {
	pixProvider
}

var _ interfaces.IPaymentProvider = (*GatewayA)(nil)

func NewGatewayA(cfg config.ProviderConfig, opts Options) (*GatewayA, error) {
	if cfg.SecretKey == "" {
		return nil, entities.NewConfigurationError(config.ProviderGatewayA, "GATEWAY_A_SECRET_KEY")
	}
	if cfg.BaseURL == "" {
		return nil, entities.NewConfigurationError(config.ProviderGatewayA, "GATEWAY_A_BASE_URL")
	}
	secret := cfg.SecretKey
	auth := func(r *http.Request) { r.Header.Set("Authorization", secret) }
	return &GatewayA{
		pixProvider: newPixProvider(config.ProviderGatewayA, "gwa", cfg.BaseURL, auth, gatewayARules, gatewayAStatuses, opts),
	}, nil
}

func (g *GatewayA) CreatePixTransaction(ctx context.Context, req entities.PaymentRequest) (entities.PixResult, error) {
	req, externalID, err := g.prepare(req)
	if err != nil {
		return entities.PixResult{}, err
	}
	cents := req.AmountInCents()
	payload := gatewayAPurchaseRequest{
		Name:          req.Name,
		Email:         req.Email,
		CPF:           req.CPF,
		Phone:         req.Phone,
		PaymentMethod: "PIX",
		Amount:        cents,
		Traceable:     true,
		ExternalID:    externalID,
		Items: []gatewayAItem{{
			UnitPrice: cents,
			Title:     req.ItemTitle("Pedido " + externalID),
			Quantity:  1,
		}},
	}
	return g.create(ctx, "/transaction.purchase", req, externalID, payload)
}

func (g *GatewayA) CheckTransactionStatus(ctx context.Context, transactionID string) (entities.StatusResult, error) {
	return g.status(ctx, http.MethodGet, "/transaction.getPayment?id="+url.QueryEscape(transactionID), transactionID)
}
