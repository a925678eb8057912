package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const subjectPrefix = "pixgate."

// natsConn is the slice of *nats.Conn the publisher needs.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NatsPublisher emits payment lifecycle events on core NATS subjects such as
// "pixgate.payment.created".
type NatsPublisher struct {
	conn   natsConn
	logger *zap.Logger
}

var _ interfaces.IPaymentEventPublisher = (*NatsPublisher)(nil)

func NewNatsPublisher(url string, logger *zap.Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(
		url,
		nats.Name("pixgate"),
		nats.ReconnectWait(3*time.Second),
		nats.MaxReconnects(-1),
		nats.PingInterval(10*time.Second),
		nats.MaxPingsOutstanding(5),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	logger.Info("[events] connected to nats", zap.String("url", nc.ConnectedUrlRedacted()))
	return &NatsPublisher{conn: nc, logger: logger}, nil
}

func (p *NatsPublisher) Publish(_ context.Context, event entities.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	subject := subjectPrefix + strings.ToLower(event.Type)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("[events] published", zap.String("subject", subject), zap.String("transaction_id", event.TransactionID))
	return nil
}

func (p *NatsPublisher) Close() error {
	return p.conn.Drain()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

var _ interfaces.IPaymentEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, entities.PaymentEvent) error {
	return nil
}
