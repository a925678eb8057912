package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultStreamPollInterval = time.Second
	DefaultStreamGraceDelay   = 2 * time.Second
	DefaultStreamMaxLifetime  = 10 * time.Minute
)

type StreamEventType string

const (
	StreamEventStatus   StreamEventType = "status"
	StreamEventApproved StreamEventType = "approved"
	StreamEventError    StreamEventType = "error"
)

// StreamEvent is one frame pushed to a status subscriber.
type StreamEvent struct {
	Type          StreamEventType        `json:"type"`
	TransactionID string                 `json:"transactionId"`
	Provider      string                 `json:"provider,omitempty"`
	Status        entities.PaymentStatus `json:"status,omitempty"`
	Amount        *int64                 `json:"amount,omitempty"`
	PaidAt        *time.Time             `json:"paidAt,omitempty"`
	RedirectURL   string                 `json:"redirectUrl,omitempty"`
	Message       string                 `json:"message,omitempty"`
}

// StreamOutcome tells how a stream ended.
type StreamOutcome string

const (
	StreamApproved     StreamOutcome = "approved"
	StreamTimedOut     StreamOutcome = "timeout"
	StreamCancelled    StreamOutcome = "cancelled"
	StreamDisconnected StreamOutcome = "disconnected"
)

type streamGauge interface {
	StreamOpened()
	StreamClosed()
}

// IPaymentStreamer pushes status updates of one charge until it settles.
type IPaymentStreamer interface {
	Stream(ctx context.Context, provider, transactionID string, emit func(StreamEvent) error) (StreamOutcome, error)
}

// PaymentStreamer polls one charge until it is paid, the subscriber goes
// away or the lifetime ceiling is hit.
//
// Checks are scheduled with a fixed delay after the previous one finished,
// so a slow provider never produces overlapping checks on the same stream.
type PaymentStreamer struct {
	payments  IPaymentUseCase
	publisher interfaces.IPaymentEventPublisher
	gauge     streamGauge
	cfg       config.StreamConfig
	logger    *zap.Logger
}

var _ IPaymentStreamer = (*PaymentStreamer)(nil)

func NewPaymentStreamer(payments IPaymentUseCase, cfg config.StreamConfig, publisher interfaces.IPaymentEventPublisher, gauge streamGauge, logger *zap.Logger) *PaymentStreamer {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultStreamPollInterval
	}
	if cfg.GraceDelay < 0 {
		cfg.GraceDelay = DefaultStreamGraceDelay
	}
	if cfg.MaxLifetime <= 0 {
		cfg.MaxLifetime = DefaultStreamMaxLifetime
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentStreamer{
		payments:  payments,
		publisher: publisher,
		gauge:     gauge,
		cfg:       cfg,
		logger:    logger.Named("stream"),
	}
}

// Stream blocks until the stream reaches a terminal state. emit is called
// sequentially from the calling goroutine; an emit error is treated as a
// gone subscriber.
func (s *PaymentStreamer) Stream(ctx context.Context, provider, transactionID string, emit func(StreamEvent) error) (StreamOutcome, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return "", entities.NewValidationError("id", "transaction id is required")
	}

	if s.gauge != nil {
		s.gauge.StreamOpened()
		defer s.gauge.StreamClosed()
	}

	streamCtx, cancel := context.WithTimeout(ctx, s.cfg.MaxLifetime)
	defer cancel()

	log := s.logger.With(zap.String("provider", provider), zap.String("transaction_id", transactionID))
	log.Debug("[payment][stream] open")

	for {
		outcome, done, err := s.check(streamCtx, provider, transactionID, emit)
		if done {
			log.Debug("[payment][stream] closed", zap.String("outcome", string(outcome)))
			return outcome, err
		}

		timer := time.NewTimer(s.cfg.PollInterval)
		select {
		case <-streamCtx.Done():
			timer.Stop()
			outcome := closeReason(streamCtx)
			log.Debug("[payment][stream] closed", zap.String("outcome", string(outcome)))
			return outcome, nil
		case <-timer.C:
		}
	}
}

// check runs one status check and reports whether the stream is over.
func (s *PaymentStreamer) check(ctx context.Context, provider, transactionID string, emit func(StreamEvent) error) (StreamOutcome, bool, error) {
	if ctx.Err() != nil {
		return closeReason(ctx), true, nil
	}

	result, err := s.payments.GetPaymentStatus(ctx, provider, transactionID)
	if err != nil {
		if ctx.Err() != nil {
			return closeReason(ctx), true, nil
		}
		s.logger.Warn("[payment][stream] status check failed",
			zap.String("provider", provider), zap.String("transaction_id", transactionID), zap.Error(err))

		event := StreamEvent{Type: StreamEventError, TransactionID: transactionID, Provider: provider, Message: err.Error()}
		if emitErr := emit(event); emitErr != nil {
			return StreamDisconnected, true, nil
		}
		var cfgErr *entities.ConfigurationError
		var valErr *entities.ValidationError
		if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
			return "", true, err
		}
		return "", false, nil
	}

	event := StreamEvent{
		Type:          StreamEventStatus,
		TransactionID: transactionID,
		Provider:      result.Provider,
		Status:        result.Status,
		Amount:        result.Amount,
		PaidAt:        result.ApprovedAt,
	}
	if !result.Status.IsApproved() {
		if err := emit(event); err != nil {
			return StreamDisconnected, true, nil
		}
		return "", false, nil
	}

	event.Type = StreamEventApproved
	event.RedirectURL = s.cfg.RedirectURL
	if err := emit(event); err != nil {
		return StreamDisconnected, true, nil
	}
	s.publishPaid(ctx, result)

	// give the subscriber time to read the final frame before closing
	if s.cfg.GraceDelay > 0 {
		timer := time.NewTimer(s.cfg.GraceDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
	return StreamApproved, true, nil
}

func (s *PaymentStreamer) publishPaid(ctx context.Context, result entities.StatusResult) {
	if s.publisher == nil {
		return
	}
	event := entities.PaymentEvent{
		Type:          entities.PaymentEventPaid,
		Provider:      result.Provider,
		TransactionID: result.ID,
		Status:        result.Status,
		OccurredAt:    time.Now().UTC(),
	}
	if result.Amount != nil {
		event.AmountCents = *result.Amount
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("[payment][stream] paid event publish failed", zap.String("transaction_id", result.ID), zap.Error(err))
	}
}

// closeReason tells the lifetime ceiling apart from a subscriber disconnect.
func closeReason(streamCtx context.Context) StreamOutcome {
	if errors.Is(streamCtx.Err(), context.DeadlineExceeded) {
		return StreamTimedOut
	}
	return StreamCancelled
}
