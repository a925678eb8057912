package usecase

import (
	"context"
	"errors"
	"testing"

	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"
	mock_interfaces "pixgate/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		Name:   " Maria Silva ",
		Email:  "maria@x.com",
		CPF:    "111.222.333-44",
		Phone:  "(11) 98765-4321",
		Amount: decimal.NewFromFloat(64.9),
	}
}

func providerList(ps ...interfaces.IPaymentProvider) []interfaces.IPaymentProvider {
	return ps
}

func newProvider(ctrl *gomock.Controller, name string) *mock_interfaces.MockIPaymentProvider {
	p := mock_interfaces.NewMockIPaymentProvider(ctrl)
	p.EXPECT().Name().Return(name).AnyTimes()
	return p
}

func TestPaymentUseCase_CreatePixPayment_DefaultProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gwA := newProvider(ctrl, "gateway_a")
	gwB := newProvider(ctrl, "gateway_b")
	publisher := mock_interfaces.NewMockIPaymentEventPublisher(ctrl)
	uc := NewPaymentUseCase(providerList(gwA, gwB), "gateway_b", publisher, nil)

	gwB.EXPECT().CreatePixTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PaymentRequest) (entities.PixResult, error) {
			if req.CPF != "11122233344" {
				t.Fatalf("expected normalized cpf, got %q", req.CPF)
			}
			if req.Name != "Maria Silva" {
				t.Fatalf("expected trimmed name, got %q", req.Name)
			}
			return entities.PixResult{ID: "gwb_1", PixCode: "000201", Status: entities.PaymentStatusPending}, nil
		})
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev entities.PaymentEvent) error {
			if ev.Type != entities.PaymentEventCreated || ev.TransactionID != "gwb_1" || ev.AmountCents != 6490 {
				t.Fatalf("unexpected event: %+v", ev)
			}
			if ev.OccurredAt.IsZero() {
				t.Fatalf("expected occurred_at to be set")
			}
			return nil
		})

	got, err := uc.CreatePixPayment(context.Background(), "", validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "gwb_1" || got.Provider != "gateway_b" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestPaymentUseCase_CreatePixPayment_NamedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gwA := newProvider(ctrl, "gateway_a")
	gwB := newProvider(ctrl, "gateway_b")
	uc := NewPaymentUseCase(providerList(gwA, gwB), "gateway_b", nil, nil)

	gwA.EXPECT().CreatePixTransaction(gomock.Any(), gomock.Any()).
		Return(entities.PixResult{ID: "gwa_1", PixCode: "000201", Status: entities.PaymentStatusPending, Provider: "gateway_a"}, nil)

	got, err := uc.CreatePixPayment(context.Background(), "GATEWAY_A", validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "gwa_1" {
		t.Fatalf("expected gateway_a result, got %+v", got)
	}
}

func TestPaymentUseCase_CreatePixPayment_Errors(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(providerList(newProvider(ctrl, "gateway_b")), "gateway_b", nil, nil)

		_, err := uc.CreatePixPayment(context.Background(), "gateway_c", validRequest())
		var cfgErr *entities.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
		if cfgErr.Key != "GATEWAY_C_SECRET_KEY" {
			t.Fatalf("unexpected key %q", cfgErr.Key)
		}
	})

	t.Run("default provider not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, "gateway_a", nil, nil)
		_, err := uc.CreatePixPayment(context.Background(), "", validRequest())
		var cfgErr *entities.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
	})

	t.Run("invalid request never reaches the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPaymentUseCase(providerList(newProvider(ctrl, "gateway_b")), "gateway_b", nil, nil)

		req := validRequest()
		req.CPF = "123"
		_, err := uc.CreatePixPayment(context.Background(), "", req)
		var valErr *entities.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("gateway error is returned and nothing is published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := newProvider(ctrl, "gateway_b")
		publisher := mock_interfaces.NewMockIPaymentEventPublisher(ctrl)
		uc := NewPaymentUseCase(providerList(gw), "gateway_b", publisher, nil)

		upstream := &entities.GatewayError{Provider: "gateway_b", Operation: "create", StatusCode: 422, Body: `{"message":"invalid document"}`}
		gw.EXPECT().CreatePixTransaction(gomock.Any(), gomock.Any()).Return(entities.PixResult{}, upstream)

		_, err := uc.CreatePixPayment(context.Background(), "", validRequest())
		if !errors.Is(err, upstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})

	t.Run("publish failure does not fail the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := newProvider(ctrl, "gateway_b")
		publisher := mock_interfaces.NewMockIPaymentEventPublisher(ctrl)
		uc := NewPaymentUseCase(providerList(gw), "gateway_b", publisher, nil)

		gw.EXPECT().CreatePixTransaction(gomock.Any(), gomock.Any()).
			Return(entities.PixResult{ID: "gwb_2", PixCode: "000201", Status: entities.PaymentStatusPending}, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

		if _, err := uc.CreatePixPayment(context.Background(), "", validRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_GetPaymentStatus(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, "gateway_b", nil, nil)
		_, err := uc.GetPaymentStatus(context.Background(), "", "  ")
		var valErr *entities.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("fills id and provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := newProvider(ctrl, "gateway_c")
		uc := NewPaymentUseCase(providerList(gw), "gateway_b", nil, nil)

		gw.EXPECT().CheckTransactionStatus(gomock.Any(), "tx-9").
			Return(entities.StatusResult{Status: entities.PaymentStatusPaid}, nil)

		got, err := uc.GetPaymentStatus(context.Background(), "gateway_c", "tx-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "tx-9" || got.Provider != "gateway_c" || got.Status != entities.PaymentStatusPaid {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("mercadopago key", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, "gateway_b", nil, nil)
		_, err := uc.GetPaymentStatus(context.Background(), "mercadopago", "1")
		var cfgErr *entities.ConfigurationError
		if !errors.As(err, &cfgErr) || cfgErr.Key != "MERCADOPAGO_ACCESS_TOKEN" {
			t.Fatalf("expected MERCADOPAGO_ACCESS_TOKEN configuration error, got %v", err)
		}
	})
}

func TestPaymentUseCase_Providers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := NewPaymentUseCase(providerList(newProvider(ctrl, "gateway_c"), newProvider(ctrl, "gateway_a")), " Gateway_A ", nil, nil)

	names := uc.Providers()
	if len(names) != 2 || names[0] != "gateway_a" || names[1] != "gateway_c" {
		t.Fatalf("unexpected providers: %v", names)
	}
	if uc.DefaultProvider() != "gateway_a" {
		t.Fatalf("unexpected default provider %q", uc.DefaultProvider())
	}
}
