package payments

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"
)

// Gateway B uses HTTP Basic with the secret key as username and "x" as
// password. Amounts travel as a JSON string holding integer cents, and the
// answer is sometimes wrapped in a {"status":..,"data":{..}} envelope.

const gatewayBPasswordPlaceholder = "x"

var gatewayBRules = ExtractionRules{
	ID:            []string{"id", "transactionId"},
	PixCode:       []string{"pix.qrcode", "pix.qr_code", "pixCode", "pix_code"},
	PixQrCode:     []string{"pix.qrcodeUrl", "pix.qr_code_url", "pixQrCode", "qr_code_image"},
	Status:        []string{"status"},
	Amount:        []string{"amount", "paidAmount"},
	ApprovedAt:    []string{"paidAt", "approvedAt"},
	RejectedAt:    []string{"refusedAt", "canceledAt"},
	CustomerName:  []string{"customer.name"},
	CustomerEmail: []string{"customer.email"},
	CustomerCPF:   []string{"customer.document.number"},
}

var gatewayBStatuses = map[string]entities.PaymentStatus{
	"waiting_payment": entities.PaymentStatusPending,
	"pending":         entities.PaymentStatusPending,
	"processing":      entities.PaymentStatusPending,
	"authorized":      entities.PaymentStatusPending,
	"paid":            entities.PaymentStatusPaid,
	"approved":        entities.PaymentStatusPaid,
	"refused":         entities.PaymentStatusCancelled,
	"canceled":        entities.PaymentStatusCancelled,
	"cancelled":       entities.PaymentStatusCancelled,
	"expired":         entities.PaymentStatusExpired,
}

type gatewayBTransactionRequest struct {
	Amount        string           `json:"amount"`
	PaymentMethod string           `json:"paymentMethod"`
	ExternalRef   string           `json:"externalRef"`
	Customer      gatewayBCustomer `json:"customer"`
	Items         []gatewayBItem   `json:"items"`
}

type gatewayBCustomer struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Document gatewayBDocument `json:"document"`
}

type gatewayBDocument struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type gatewayBItem struct {
	Title     string `json:"title"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

type GatewayB struct {
	pixProvider
}

var _ interfaces.IPaymentProvider = (*GatewayB)(nil)

func NewGatewayB(cfg config.ProviderConfig, opts Options) (*GatewayB, error) {
	if cfg.SecretKey == "" {
		return nil, entities.NewConfigurationError(config.ProviderGatewayB, "GATEWAY_B_SECRET_KEY")
	}
	if cfg.BaseURL == "" {
		return nil, entities.NewConfigurationError(config.ProviderGatewayB, "GATEWAY_B_BASE_URL")
	}
	auth := basicAuth(cfg.SecretKey, gatewayBPasswordPlaceholder)
	return &GatewayB{
		pixProvider: newPixProvider(config.ProviderGatewayB, "gwb", cfg.BaseURL, auth, gatewayBRules, gatewayBStatuses, opts),
	}, nil
}

func (g *GatewayB) CreatePixTransaction(ctx context.Context, req entities.PaymentRequest) (entities.PixResult, error) {
	req, externalID, err := g.prepare(req)
	if err != nil {
		return entities.PixResult{}, err
	}
	cents := strconv.FormatInt(req.AmountInCents(), 10)
	payload := gatewayBTransactionRequest{
		Amount:        cents,
		PaymentMethod: "pix",
		ExternalRef:   externalID,
		Customer: gatewayBCustomer{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Document: gatewayBDocument{Type: "cpf", Number: req.CPF},
		},
		Items: []gatewayBItem{{
			Title:     req.ItemTitle("Pedido " + externalID),
			UnitPrice: cents,
			Quantity:  1,
		}},
	}
	return g.create(ctx, "/transactions", req, externalID, payload)
}

func (g *GatewayB) CheckTransactionStatus(ctx context.Context, transactionID string) (entities.StatusResult, error) {
	return g.status(ctx, http.MethodGet, "/transactions/"+url.PathEscape(transactionID), transactionID)
}
