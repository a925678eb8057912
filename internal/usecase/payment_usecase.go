package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=../adapter/http/handlers/mocks/usecase_mock.go -package=mocks pixgate/internal/usecase IPaymentStreamer,IPaymentUseCase,IVehicleUseCase

// IPaymentUseCase is the single entry point for opening PIX charges and
// checking their status.
//
// Provider selection is static: callers either name a provider or get the
// configured default. A failing provider is never swapped for another one.

type IPaymentUseCase interface {
	CreatePixPayment(ctx context.Context, provider string, req entities.PaymentRequest) (entities.PixResult, error)
	GetPaymentStatus(ctx context.Context, provider, transactionID string) (entities.StatusResult, error)
	Providers() []string
	DefaultProvider() string
}

type PaymentUseCase struct {
	providers       map[string]interfaces.IPaymentProvider
	defaultProvider string
	publisher       interfaces.IPaymentEventPublisher
	logger          *zap.Logger
	now             func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(providers []interfaces.IPaymentProvider, defaultProvider string, publisher interfaces.IPaymentEventPublisher, logger *zap.Logger) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := make(map[string]interfaces.IPaymentProvider, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}
		registry[p.Name()] = p
	}
	return &PaymentUseCase{
		providers:       registry,
		defaultProvider: strings.ToLower(strings.TrimSpace(defaultProvider)),
		publisher:       publisher,
		logger:          logger.Named("payment"),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) CreatePixPayment(ctx context.Context, provider string, req entities.PaymentRequest) (entities.PixResult, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		u.logger.Info("[payment][usecase] invalid request", zap.Error(err))
		return entities.PixResult{}, err
	}

	p, err := u.resolve(provider)
	if err != nil {
		return entities.PixResult{}, err
	}

	log := u.logger.With(zap.String("provider", p.Name()), zap.String("cpf", entities.MaskCPF(req.CPF)))
	log.Info("[payment][usecase] create pix start", zap.Int64("amount_cents", req.AmountInCents()))

	result, err := p.CreatePixTransaction(ctx, req)
	if err != nil {
		log.Warn("[payment][usecase] create pix failed", zap.Error(err))
		return entities.PixResult{}, err
	}
	if result.Provider == "" {
		result.Provider = p.Name()
	}
	log.Info("[payment][usecase] create pix success", zap.String("transaction_id", result.ID), zap.String("status", string(result.Status)))

	u.publish(ctx, entities.PaymentEvent{
		Type:          entities.PaymentEventCreated,
		Provider:      result.Provider,
		TransactionID: result.ID,
		Status:        result.Status,
		AmountCents:   req.AmountInCents(),
	})
	return result, nil
}

func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, provider, transactionID string) (entities.StatusResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.StatusResult{}, entities.NewValidationError("id", "transaction id is required")
	}

	p, err := u.resolve(provider)
	if err != nil {
		return entities.StatusResult{}, err
	}

	result, err := p.CheckTransactionStatus(ctx, transactionID)
	if err != nil {
		u.logger.Warn("[payment][usecase] status check failed",
			zap.String("provider", p.Name()), zap.String("transaction_id", transactionID), zap.Error(err))
		return entities.StatusResult{}, err
	}
	if result.ID == "" {
		result.ID = transactionID
	}
	if result.Provider == "" {
		result.Provider = p.Name()
	}
	return result, nil
}

func (u *PaymentUseCase) Providers() []string {
	names := make([]string, 0, len(u.providers))
	for name := range u.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (u *PaymentUseCase) DefaultProvider() string {
	return u.defaultProvider
}

// resolve returns the provider bound to name, or the default one when name is
// empty. Unknown names and providers dropped at startup for missing
// credentials both surface as configuration errors.
func (u *PaymentUseCase) resolve(name string) (interfaces.IPaymentProvider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = u.defaultProvider
	}
	if name == "" {
		return nil, entities.NewConfigurationError("payment gateway", "DEFAULT_PROVIDER")
	}
	p, ok := u.providers[name]
	if !ok {
		u.logger.Error("[payment][usecase] provider not configured", zap.String("provider", name))
		return nil, entities.NewConfigurationError(name, credentialKey(name))
	}
	return p, nil
}

func credentialKey(provider string) string {
	if provider == config.ProviderMercadoPago {
		return "MERCADOPAGO_ACCESS_TOKEN"
	}
	return strings.ToUpper(provider) + "_SECRET_KEY"
}

func (u *PaymentUseCase) publish(ctx context.Context, event entities.PaymentEvent) {
	if u.publisher == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = u.now()
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn("[payment][usecase] event publish failed",
			zap.String("type", event.Type), zap.String("transaction_id", event.TransactionID), zap.Error(err))
	}
}
