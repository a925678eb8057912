package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	mock_interfaces "pixgate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type gaugeRecorder struct {
	opened, closed int
}

func (g *gaugeRecorder) StreamOpened() { g.opened++ }
func (g *gaugeRecorder) StreamClosed() { g.closed++ }

func fastStreamConfig() config.StreamConfig {
	return config.StreamConfig{
		PollInterval: 5 * time.Millisecond,
		GraceDelay:   30 * time.Millisecond,
		MaxLifetime:  2 * time.Second,
		RedirectURL:  "/obrigado",
	}
}

func newStreamer(t *testing.T, ctrl *gomock.Controller, cfg config.StreamConfig) (*PaymentStreamer, *mock_interfaces.MockIPaymentProvider, *gaugeRecorder) {
	t.Helper()
	gw := newProvider(ctrl, "gateway_b")
	payments := NewPaymentUseCase(providerList(gw), "gateway_b", nil, nil)
	gauge := &gaugeRecorder{}
	return NewPaymentStreamer(payments, cfg, nil, gauge, nil), gw, gauge
}

func status(s entities.PaymentStatus) entities.StatusResult {
	return entities.StatusResult{ID: "tx-1", Status: s, Provider: "gateway_b"}
}

func TestPaymentStreamer_ApprovedEmitsOneTerminalEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := fastStreamConfig()
	streamer, gw, gauge := newStreamer(t, ctrl, cfg)
	publisher := mock_interfaces.NewMockIPaymentEventPublisher(ctrl)
	streamer.publisher = publisher

	amount := int64(6490)
	paid := status(entities.PaymentStatusPaid)
	paid.Amount = &amount

	gomock.InOrder(
		gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").Return(status(entities.PaymentStatusPending), nil),
		gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").Return(status(entities.PaymentStatusPending), nil),
		gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").Return(paid, nil),
	)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev entities.PaymentEvent) error {
			if ev.Type != entities.PaymentEventPaid || ev.AmountCents != 6490 {
				t.Fatalf("unexpected paid event: %+v", ev)
			}
			return nil
		})

	var events []StreamEvent
	start := time.Now()
	outcome, err := streamer.Stream(context.Background(), "", "tx-1", func(ev StreamEvent) error {
		events = append(events, ev)
		return nil
	})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != StreamApproved {
		t.Fatalf("expected approved outcome, got %s", outcome)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(events), events)
	}
	if events[0].Type != StreamEventStatus || events[1].Type != StreamEventStatus {
		t.Fatalf("expected status events first, got %+v", events[:2])
	}
	last := events[2]
	if last.Type != StreamEventApproved || last.RedirectURL != "/obrigado" || last.Amount == nil || *last.Amount != 6490 {
		t.Fatalf("unexpected approved event: %+v", last)
	}
	if elapsed < cfg.GraceDelay {
		t.Fatalf("expected the stream to wait the grace delay, closed after %s", elapsed)
	}
	// Well under MaxLifetime, so a stream that keeps running after approval fails here.
	if limit := cfg.GraceDelay + 3*cfg.PollInterval + 250*time.Millisecond; elapsed > limit {
		t.Fatalf("expected the stream to close right after the grace delay, closed after %s (limit %s)", elapsed, limit)
	}
	if gauge.opened != 1 || gauge.closed != 1 {
		t.Fatalf("unexpected gauge: %+v", gauge)
	}
}

func TestPaymentStreamer_DisconnectStopsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streamer, gw, _ := newStreamer(t, ctrl, fastStreamConfig())
	gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").Return(status(entities.PaymentStatusPending), nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outcome, err := streamer.Stream(ctx, "", "tx-1", func(ev StreamEvent) error {
		cancel()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != StreamCancelled {
		t.Fatalf("expected cancelled outcome, got %s", outcome)
	}

	// any late call would fail the Times(1) expectation
	time.Sleep(20 * time.Millisecond)
}

func TestPaymentStreamer_EmitFailureClosesStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streamer, gw, _ := newStreamer(t, ctrl, fastStreamConfig())
	gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").Return(status(entities.PaymentStatusPending), nil).Times(1)

	outcome, err := streamer.Stream(context.Background(), "", "tx-1", func(ev StreamEvent) error {
		return errors.New("broken pipe")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != StreamDisconnected {
		t.Fatalf("expected disconnected outcome, got %s", outcome)
	}
}

func TestPaymentStreamer_LifetimeCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := fastStreamConfig()
	cfg.MaxLifetime = 40 * time.Millisecond
	streamer, gw, _ := newStreamer(t, ctrl, cfg)
	gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").Return(status(entities.PaymentStatusPending), nil).MinTimes(1)

	outcome, err := streamer.Stream(context.Background(), "", "tx-1", func(ev StreamEvent) error {
		if ev.Type != StreamEventStatus {
			t.Fatalf("unexpected event %+v", ev)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != StreamTimedOut {
		t.Fatalf("expected timeout outcome, got %s", outcome)
	}
}

func TestPaymentStreamer_CheckErrorKeepsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := fastStreamConfig()
	cfg.GraceDelay = 0
	streamer, gw, _ := newStreamer(t, ctrl, cfg)
	gomock.InOrder(
		gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").
			Return(entities.StatusResult{}, &entities.GatewayError{Provider: "gateway_b", Operation: "status", StatusCode: 502}),
		gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-1").Return(status(entities.PaymentStatusPaid), nil),
	)

	var types []StreamEventType
	outcome, err := streamer.Stream(context.Background(), "", "tx-1", func(ev StreamEvent) error {
		types = append(types, ev.Type)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != StreamApproved {
		t.Fatalf("expected approved outcome, got %s", outcome)
	}
	if len(types) != 2 || types[0] != StreamEventError || types[1] != StreamEventApproved {
		t.Fatalf("unexpected events: %v", types)
	}
}

func TestPaymentStreamer_UnknownProviderEndsStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streamer, _, _ := newStreamer(t, ctrl, fastStreamConfig())

	var events []StreamEvent
	_, err := streamer.Stream(context.Background(), "gateway_z", "tx-1", func(ev StreamEvent) error {
		events = append(events, ev)
		return nil
	})
	var cfgErr *entities.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if len(events) != 1 || events[0].Type != StreamEventError {
		t.Fatalf("expected a single error event, got %+v", events)
	}
}

func TestPaymentStreamer_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	streamer, _, gauge := newStreamer(t, ctrl, fastStreamConfig())
	_, err := streamer.Stream(context.Background(), "", " ", func(StreamEvent) error { return nil })
	var valErr *entities.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gauge.opened != 0 {
		t.Fatalf("gauge must not move for rejected streams")
	}
}
