package interfaces

import (
	"context"
	"pixgate/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IPaymentProvider abstracts one external PIX provider (Gateway A/B/C, Mercado Pago).
//
// Implementations translate the normalized request into the provider wire
// format and the provider answer back into the normalized contract. They are
// stateless per call and never retry.
type IPaymentProvider interface {
	Name() string
	CreatePixTransaction(ctx context.Context, req entities.PaymentRequest) (entities.PixResult, error)
	CheckTransactionStatus(ctx context.Context, transactionID string) (entities.StatusResult, error)
}

// IPaymentEventPublisher ships payment lifecycle events to a broker.
type IPaymentEventPublisher interface {
	Publish(ctx context.Context, event entities.PaymentEvent) error
}
