package entities

import (
	"math"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the provider-agnostic status of a PIX charge.
//
// The set is open: providers keep adding states, so anything we cannot map
// becomes PaymentStatusUnknown while the raw value travels along in StatusResult.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusExpired   PaymentStatus = "expired"
	PaymentStatusUnknown   PaymentStatus = "unknown"
)

// IsApproved reports whether the charge reached the paid/approved terminal state.
func (s PaymentStatus) IsApproved() bool {
	return s == PaymentStatusPaid
}

// IsTerminal reports whether the charge can no longer change.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusCancelled, PaymentStatusExpired:
		return true
	}
	return false
}

// NormalizeStatus maps a provider status string through table.
// Keys in table must be lower case. Absent or empty raw values are pending;
// non-empty values missing from table are unknown.
func NormalizeStatus(raw string, table map[string]PaymentStatus) PaymentStatus {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return PaymentStatusPending
	}
	if st, ok := table[key]; ok {
		return st
	}
	return PaymentStatusUnknown
}

type PaymentItem struct {
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PaymentRequest is the customer data needed to open a PIX charge on any provider.

type PaymentRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	CPF         string          `json:"cpf"`
	Phone       string          `json:"phone"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Items       []PaymentItem   `json:"items,omitempty"`
}

// Normalize trims free-text fields and reduces CPF and phone to digits.
func (r PaymentRequest) Normalize() PaymentRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.CPF = OnlyDigits(r.CPF)
	r.Phone = OnlyDigits(r.Phone)
	r.Description = strings.TrimSpace(r.Description)
	return r
}

// Validate expects a normalized request.
func (r PaymentRequest) Validate() error {
	if r.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if r.CPF == "" {
		return NewValidationError("cpf", "cpf is required")
	}
	if len(r.CPF) != 11 {
		return NewValidationError("cpf", "cpf must have 11 digits")
	}
	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			return NewValidationError("email", "email is invalid")
		}
	}
	if r.Amount.IsZero() {
		return NewValidationError("amount", "amount is required")
	}
	if !r.Amount.IsPositive() {
		return NewValidationError("amount", "amount must be positive")
	}
	cents := r.Amount.Mul(decimal.NewFromInt(100))
	if !cents.Equal(cents.Round(0)) {
		return NewValidationError("amount", "amount must have at most 2 decimal places")
	}
	if cents.GreaterThan(maxAmountCents) {
		return NewValidationError("amount", "amount is too large")
	}
	return nil
}

var maxAmountCents = decimal.NewFromInt(math.MaxInt64)

// AmountInCents returns round(amount*100).
func (r PaymentRequest) AmountInCents() int64 {
	return r.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ItemTitle is the description sent upstream when the provider wants one.
func (r PaymentRequest) ItemTitle(fallback string) string {
	if r.Description != "" {
		return r.Description
	}
	titles := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		if t := strings.TrimSpace(it.Title); t != "" {
			titles = append(titles, t)
		}
	}
	if len(titles) > 0 {
		return strings.Join(titles, ", ")
	}
	return fallback
}

// PixResult is the normalized outcome of opening a PIX charge.
//
// PixCode is the copy-paste BR Code exactly as the provider returned it; it is
// validated by the bank downstream, so it is never trimmed or re-encoded.

type PixResult struct {
	ID         string        `json:"id"`
	PixCode    string        `json:"pixCode"`
	PixQrCode  string        `json:"pixQrCode"`
	Status     PaymentStatus `json:"status"`
	Provider   string        `json:"provider,omitempty"`
	ExternalID string        `json:"externalId,omitempty"`
}

type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	CPF   string `json:"cpf,omitempty"`
}

// StatusResult is a point-in-time view of a charge as reported by its provider.

type StatusResult struct {
	ID         string        `json:"id"`
	Status     PaymentStatus `json:"status"`
	RawStatus  string        `json:"rawStatus,omitempty"`
	Amount     *int64        `json:"amount,omitempty"`
	Customer   *Customer     `json:"customer,omitempty"`
	ApprovedAt *time.Time    `json:"approvedAt,omitempty"`
	RejectedAt *time.Time    `json:"rejectedAt,omitempty"`
	Provider   string        `json:"provider,omitempty"`
}

const (
	PaymentEventCreated = "payment.created"
	PaymentEventPaid    = "payment.paid"
)

// PaymentEvent is published on lifecycle changes observed by this service.
// It never carries customer documents.

type PaymentEvent struct {
	Type          string        `json:"type"`
	Provider      string        `json:"provider"`
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	AmountCents   int64         `json:"amount_cents,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
