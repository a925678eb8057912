package payments

import (
	"context"
	"net/http"

	"pixgate/internal/domain/entities"

	"go.uber.org/zap"
)

// pixProvider holds what Gateway A, B and C have in common: one REST client,
// a set of extraction rules and a status table. The per-provider files only
// describe their wire format.
type pixProvider struct {
	name        string
	idPrefix    string
	rest        *restClient
	rules       ExtractionRules
	statusTable map[string]entities.PaymentStatus
	qrChartURL  string
	logger      *zap.Logger
}

func newPixProvider(name, idPrefix, baseURL string, auth func(*http.Request), rules ExtractionRules, table map[string]entities.PaymentStatus, opts Options) pixProvider {
	logger := opts.logger().With(zap.String("provider", name))
	return pixProvider{
		name:     name,
		idPrefix: idPrefix,
		rest: &restClient{
			provider:  name,
			baseURL:   baseURL,
			client:    opts.httpClient(),
			authorize: auth,
			metrics:   opts.Metrics,
			logger:    logger,
		},
		rules:       rules,
		statusTable: table,
		qrChartURL:  opts.QRChartURL,
		logger:      logger,
	}
}

func (p pixProvider) Name() string {
	return p.name
}

// prepare normalizes and validates the request and mints the fallback id.
func (p pixProvider) prepare(req entities.PaymentRequest) (entities.PaymentRequest, string, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return req, "", err
	}
	return req, newTransactionID(p.idPrefix), nil
}

func (p pixProvider) create(ctx context.Context, path string, req entities.PaymentRequest, externalID string, payload any) (entities.PixResult, error) {
	p.logger.Info("[payment][gateway] create start",
		zap.String("cpf", entities.MaskCPF(req.CPF)),
		zap.Int64("amount_cents", req.AmountInCents()),
		zap.String("external_id", externalID))

	raw, err := p.rest.do(ctx, "create", http.MethodPost, path, payload)
	if err != nil {
		p.logger.Error("[payment][gateway] create failed", zap.String("external_id", externalID), zap.Error(err))
		return entities.PixResult{}, err
	}

	res := normalizePix(newDocument(raw), p.rules, p.statusTable, p.qrChartURL, externalID)
	res.Provider = p.name
	if res.PixCode == "" {
		p.logger.Error("[payment][gateway] response without pix code", zap.String("external_id", externalID))
		return entities.PixResult{}, &entities.GatewayError{
			Provider:  p.name,
			Operation: "create",
			Body:      "response without pix code",
		}
	}

	p.logger.Info("[payment][gateway] create success",
		zap.String("cpf", entities.MaskCPF(req.CPF)),
		zap.String("transaction_id", res.ID),
		zap.String("status", string(res.Status)))
	return res, nil
}

func (p pixProvider) status(ctx context.Context, method, path, transactionID string) (entities.StatusResult, error) {
	if transactionID == "" {
		return entities.StatusResult{}, entities.NewValidationError("id", "transaction id is required")
	}
	raw, err := p.rest.do(ctx, "status", method, path, nil)
	if err != nil {
		p.logger.Error("[payment][gateway] status failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return entities.StatusResult{}, err
	}

	res := normalizeStatus(newDocument(raw), p.rules, p.statusTable, transactionID)
	res.Provider = p.name
	p.logger.Debug("[payment][gateway] status checked",
		zap.String("transaction_id", transactionID),
		zap.String("status", string(res.Status)),
		zap.String("raw_status", res.RawStatus))
	return res, nil
}

func normalizePix(doc document, rules ExtractionRules, table map[string]entities.PaymentStatus, chartURL, externalID string) entities.PixResult {
	res := entities.PixResult{
		ID:         doc.scalar(rules.ID),
		PixCode:    doc.text(rules.PixCode),
		PixQrCode:  qrImageRef(doc.text(rules.PixQrCode)),
		Status:     entities.NormalizeStatus(doc.text(rules.Status), table),
		ExternalID: externalID,
	}
	if res.ID == "" {
		res.ID = externalID
	}
	if res.PixQrCode == "" {
		res.PixQrCode = qrCodeURL(chartURL, res.PixCode)
	}
	return res
}

func normalizeStatus(doc document, rules ExtractionRules, table map[string]entities.PaymentStatus, transactionID string) entities.StatusResult {
	raw := doc.text(rules.Status)
	res := entities.StatusResult{
		ID:         doc.scalar(rules.ID),
		Status:     entities.NormalizeStatus(raw, table),
		RawStatus:  raw,
		Amount:     doc.cents(rules.Amount, false),
		ApprovedAt: doc.timestamp(rules.ApprovedAt),
		RejectedAt: doc.timestamp(rules.RejectedAt),
	}
	if res.ID == "" {
		res.ID = transactionID
	}
	customer := entities.Customer{
		Name:  doc.text(rules.CustomerName),
		Email: doc.text(rules.CustomerEmail),
		CPF:   entities.MaskCPF(doc.scalar(rules.CustomerCPF)),
	}
	if customer != (entities.Customer{}) {
		res.Customer = &customer
	}
	return res
}
