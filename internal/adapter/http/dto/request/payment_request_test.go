package request

import (
	"encoding/json"
	"testing"
)

func TestPaymentCreateRequest_ToEntity(t *testing.T) {
	t.Run("flat payload with numeric amount", func(t *testing.T) {
		var r PaymentCreateRequest
		raw := `{"name":"Maria Silva","email":"maria@x.com","cpf":"11122233344","phone":"11987654321","amount":64.9}`
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := r.ToEntity()
		if got.Name != "Maria Silva" || got.CPF != "11122233344" || got.Phone != "11987654321" {
			t.Fatalf("unexpected mapping: %+v", got)
		}
		if got.AmountInCents() != 6490 {
			t.Fatalf("expected 6490 cents, got %d", got.AmountInCents())
		}
	})

	t.Run("nested customer and string amount", func(t *testing.T) {
		var r PaymentCreateRequest
		raw := `{"amount":"129.90","customer":{"name":"Joao","email":"j@x.com","document":"123.456.789-09","phone":"11900000000"},"items":[{"title":"Seguro","quantity":1,"unit_price":"129.90"}]}`
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := r.ToEntity()
		if got.Name != "Joao" || got.Email != "j@x.com" || got.CPF != "123.456.789-09" || got.Phone != "11900000000" {
			t.Fatalf("unexpected mapping: %+v", got)
		}
		if got.AmountInCents() != 12990 {
			t.Fatalf("expected 12990 cents, got %d", got.AmountInCents())
		}
		if len(got.Items) != 1 || got.Items[0].Title != "Seguro" {
			t.Fatalf("unexpected items: %+v", got.Items)
		}
	})

	t.Run("flat fields win over nested", func(t *testing.T) {
		r := PaymentCreateRequest{CPF: "11122233344", Name: "Maria", Customer: &CustomerRequest{CPF: "99999999999", Name: "Outro"}}
		got := r.ToEntity()
		if got.CPF != "11122233344" || got.Name != "Maria" {
			t.Fatalf("unexpected mapping: %+v", got)
		}
	})
}
