package request

import (
	"strings"

	"pixgate/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentItemRequest struct {
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

// PaymentCreateRequest is the checkout payload. Customer fields are accepted
// flat (name, cpf, ...) or nested under "customer"; flat fields win.
//
// Amount takes a JSON number or a decimal string ("64.90").
type PaymentCreateRequest struct {
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	CPF         string               `json:"cpf"`
	Phone       string               `json:"phone"`
	Amount      decimal.Decimal      `json:"amount" swaggertype:"number"`
	Description string               `json:"description"`
	Items       []PaymentItemRequest `json:"items"`
	Customer    *CustomerRequest     `json:"customer,omitempty"`
}

func (r PaymentCreateRequest) ResolveCPF() string {
	if v := strings.TrimSpace(r.CPF); v != "" {
		return v
	}
	if r.Customer == nil {
		return ""
	}
	if v := strings.TrimSpace(r.Customer.CPF); v != "" {
		return v
	}
	return strings.TrimSpace(r.Customer.Document)
}

// ToEntity maps the payload into the domain request. Normalization and
// validation happen in the use case.
func (r PaymentCreateRequest) ToEntity() entities.PaymentRequest {
	out := entities.PaymentRequest{
		Name:        r.Name,
		Email:       r.Email,
		CPF:         r.ResolveCPF(),
		Phone:       r.Phone,
		Amount:      r.Amount,
		Description: r.Description,
	}
	if c := r.Customer; c != nil {
		out.Name = firstNonEmpty(out.Name, c.Name)
		out.Email = firstNonEmpty(out.Email, c.Email)
		out.Phone = firstNonEmpty(out.Phone, c.Phone)
	}
	for _, it := range r.Items {
		out.Items = append(out.Items, entities.PaymentItem{Title: it.Title, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
