package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

var mercadoPagoRules = ExtractionRules{
	ID:            []string{"id"},
	PixCode:       []string{"point_of_interaction.transaction_data.qr_code"},
	PixQrCode:     []string{"point_of_interaction.transaction_data.qr_code_base64"},
	Status:        []string{"status"},
	Amount:        []string{"transaction_amount"},
	ApprovedAt:    []string{"date_approved"},
	CustomerName:  []string{"payer.first_name"},
	CustomerEmail: []string{"payer.email"},
	CustomerCPF:   []string{"payer.identification.number"},
}

var mercadoPagoStatuses = map[string]entities.PaymentStatus{
	"pending":    entities.PaymentStatusPending,
	"in_process": entities.PaymentStatusPending,
	"authorized": entities.PaymentStatusPending,
	"approved":   entities.PaymentStatusPaid,
	"rejected":   entities.PaymentStatusCancelled,
	"cancelled":  entities.PaymentStatusCancelled,
}

// MercadoPagoGateway opens PIX charges through the official Mercado Pago SDK.
// In mock mode it never touches the network and answers with synthetic
// charges that are approved on the first status check.
type MercadoPagoGateway struct {
	client     payment.Client
	mockMode   bool
	qrChartURL string
	opts       Options
	logger     *zap.Logger
}

var _ interfaces.IPaymentProvider = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, opts Options) (*MercadoPagoGateway, error) {
	logger := opts.logger().With(zap.String("provider", config.ProviderMercadoPago))
	if mockMode {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, qrChartURL: opts.QRChartURL, opts: opts, logger: logger}, nil
	}

	if accessToken == "" {
		logger.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, entities.NewConfigurationError(config.ProviderMercadoPago, "MERCADOPAGO_ACCESS_TOKEN")
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized", zap.String("access_token", entities.MaskSecret(accessToken)))

	return newMercadoPagoGatewayWithClient(payment.NewClient(cfg), opts), nil
}

func newMercadoPagoGatewayWithClient(client payment.Client, opts Options) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		client:     client,
		qrChartURL: opts.QRChartURL,
		opts:       opts,
		logger:     opts.logger().With(zap.String("provider", config.ProviderMercadoPago)),
	}
}

func (g *MercadoPagoGateway) Name() string {
	return config.ProviderMercadoPago
}

func (g *MercadoPagoGateway) CreatePixTransaction(ctx context.Context, req entities.PaymentRequest) (entities.PixResult, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return entities.PixResult{}, err
	}
	externalID := newTransactionID("mp")
	g.logger.Info("[payment][gateway] create start",
		zap.String("cpf", entities.MaskCPF(req.CPF)),
		zap.Int64("amount_cents", req.AmountInCents()),
		zap.String("external_id", externalID),
		zap.Bool("mock", g.mockMode))

	if g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		pixCode := "00020126580014br.gov.bcb.pix0136" + id + "5204000053039865802BR6304MOCK"
		return entities.PixResult{
			ID:         id,
			PixCode:    pixCode,
			PixQrCode:  qrCodeURL(g.qrChartURL, pixCode),
			Status:     entities.PaymentStatusPending,
			Provider:   g.Name(),
			ExternalID: externalID,
		}, nil
	}
	if g.client == nil {
		return entities.PixResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	firstName, lastName := splitName(req.Name)
	body := map[string]any{
		"transaction_amount": req.Amount.Round(2).InexactFloat64(),
		"payment_method_id":  "pix",
		"description":        req.ItemTitle("Pedido " + externalID),
		"external_reference": externalID,
		"payer": map[string]any{
			"email":      req.Email,
			"first_name": firstName,
			"last_name":  lastName,
			"identification": map[string]any{
				"type":   "CPF",
				"number": req.CPF,
			},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return entities.PixResult{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(b, &mpReq); err != nil {
		g.logger.Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return entities.PixResult{}, err
	}

	start := time.Now()
	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		g.observe("create", start, err)
		g.logger.Error("[payment][gateway] sdk create failed", zap.String("external_id", externalID), zap.Error(err))
		return entities.PixResult{}, g.gatewayError("create", err)
	}
	g.observe("create", start, nil)

	doc, err := responseDocument(resp)
	if err != nil {
		return entities.PixResult{}, g.gatewayError("create", err)
	}
	res := normalizePix(doc, mercadoPagoRules, mercadoPagoStatuses, "", externalID)
	res.Provider = g.Name()
	if res.PixQrCode == "" {
		res.PixQrCode = qrCodeURL(g.qrChartURL, res.PixCode)
	}
	if res.PixCode == "" {
		return entities.PixResult{}, &entities.GatewayError{Provider: g.Name(), Operation: "create", Body: "response without pix code"}
	}
	g.logger.Info("[payment][gateway] create success",
		zap.String("cpf", entities.MaskCPF(req.CPF)),
		zap.String("transaction_id", res.ID),
		zap.String("status", string(res.Status)))
	return res, nil
}

func (g *MercadoPagoGateway) CheckTransactionStatus(ctx context.Context, transactionID string) (entities.StatusResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.StatusResult{}, entities.NewValidationError("id", "transaction id is required")
	}
	if g.mockMode {
		now := time.Now().UTC()
		return entities.StatusResult{
			ID:         transactionID,
			Status:     entities.PaymentStatusPaid,
			RawStatus:  "approved",
			ApprovedAt: &now,
			Provider:   g.Name(),
		}, nil
	}
	if g.client == nil {
		return entities.StatusResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(transactionID)
	if err != nil {
		return entities.StatusResult{}, entities.NewValidationError("id", "transaction id must be numeric")
	}

	start := time.Now()
	resp, err := g.client.Get(ctx, id)
	g.observe("status", start, err)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk get failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return entities.StatusResult{}, g.gatewayError("status", err)
	}

	doc, err := responseDocument(resp)
	if err != nil {
		return entities.StatusResult{}, g.gatewayError("status", err)
	}
	res := normalizeStatus(doc, mercadoPagoRules, mercadoPagoStatuses, transactionID)
	res.Amount = doc.cents(mercadoPagoRules.Amount, true)
	res.Provider = g.Name()
	return res, nil
}

func (g *MercadoPagoGateway) observe(operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		if isTimeout(err) {
			outcome = "timeout"
		}
	}
	g.opts.Metrics.ObserveProviderCall(g.Name(), operation, outcome, time.Since(start))
}

func (g *MercadoPagoGateway) gatewayError(operation string, err error) *entities.GatewayError {
	return &entities.GatewayError{
		Provider:  g.Name(),
		Operation: operation,
		Body:      err.Error(),
		Timeout:   isTimeout(err),
		Err:       err,
	}
}

func responseDocument(resp *payment.Response) (document, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		return document{}, err
	}
	raw := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return document{}, err
	}
	return newDocument(raw), nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
