package response

import (
	"testing"
	"time"

	"pixgate/internal/domain/entities"
)

func TestFromPixResult(t *testing.T) {
	res := FromPixResult(entities.PixResult{ID: "gwb_1", PixCode: "000201", PixQrCode: "https://qr", Status: entities.PaymentStatusPending, Provider: "gateway_b"})
	if res.ID != "gwb_1" || res.PixCode != "000201" || res.PixQrCode != "https://qr" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.Status != "pending" || res.Provider != "gateway_b" {
		t.Fatalf("unexpected status/provider: %+v", res)
	}
}

func TestFromStatusResult(t *testing.T) {
	now := time.Now().UTC()
	amount := int64(6490)
	res := FromStatusResult(entities.StatusResult{
		ID:         "tx-1",
		Status:     entities.PaymentStatusPaid,
		RawStatus:  "approved",
		Amount:     &amount,
		Customer:   &entities.Customer{Name: "Maria", CPF: "111***44"},
		ApprovedAt: &now,
	})
	if !res.Approved || res.Status != "paid" || res.RawStatus != "approved" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.Amount == nil || *res.Amount != 6490 {
		t.Fatalf("unexpected amount: %+v", res.Amount)
	}
	if res.Customer == nil || res.Customer.Name != "Maria" {
		t.Fatalf("unexpected customer: %+v", res.Customer)
	}
	if res.ApprovedAt == nil || !res.ApprovedAt.Equal(now) {
		t.Fatalf("unexpected approved_at: %+v", res.ApprovedAt)
	}
}

func TestFromVehicleInfo(t *testing.T) {
	res := FromVehicleInfo(entities.VehicleInfo{Plate: "ABC1234", Validated: true, Placeholder: true, Source: "vehicle_api"})
	if res.Plate != "ABC1234" || !res.Validated || !res.Placeholder {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
