package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pixgate/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingConn struct {
	subject string
	data    []byte
	err     error
}

func (c *recordingConn) Publish(subject string, data []byte) error {
	c.subject, c.data = subject, data
	return c.err
}

func (c *recordingConn) Drain() error { return nil }

func TestNatsPublisher_Publish(t *testing.T) {
	conn := &recordingConn{}
	p := &NatsPublisher{conn: conn, logger: zap.NewNop()}

	ev := entities.PaymentEvent{
		Type:          entities.PaymentEventPaid,
		Provider:      "gateway_b",
		TransactionID: "tx-1",
		Status:        entities.PaymentStatusPaid,
		OccurredAt:    time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), ev))
	assert.Equal(t, "pixgate.payment.paid", conn.subject)

	var got entities.PaymentEvent
	require.NoError(t, json.Unmarshal(conn.data, &got))
	assert.Equal(t, ev, got)
}

func TestNatsPublisher_PublishError(t *testing.T) {
	p := &NatsPublisher{conn: &recordingConn{err: errors.New("nats: connection closed")}, logger: zap.NewNop()}
	err := p.Publish(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pixgate.payment.created")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), entities.PaymentEvent{}))
}
