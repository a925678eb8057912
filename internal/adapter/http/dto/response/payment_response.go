package response

import (
	"time"

	"pixgate/internal/domain/entities"
)

type PixPaymentResponse struct {
	ID         string `json:"id"`
	PixCode    string `json:"pixCode"`
	PixQrCode  string `json:"pixQrCode"`
	Status     string `json:"status"`
	Provider   string `json:"provider,omitempty"`
	ExternalID string `json:"externalId,omitempty"`
}

func FromPixResult(r entities.PixResult) PixPaymentResponse {
	return PixPaymentResponse{
		ID:         r.ID,
		PixCode:    r.PixCode,
		PixQrCode:  r.PixQrCode,
		Status:     string(r.Status),
		Provider:   r.Provider,
		ExternalID: r.ExternalID,
	}
}

type CustomerResponse struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	CPF   string `json:"cpf,omitempty"`
}

// PaymentStatusResponse exposes amount in cents and the raw provider status
// next to the normalized one.
type PaymentStatusResponse struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	RawStatus  string            `json:"rawStatus,omitempty"`
	Approved   bool              `json:"approved"`
	Amount     *int64            `json:"amount,omitempty"`
	Customer   *CustomerResponse `json:"customer,omitempty"`
	ApprovedAt *time.Time        `json:"approvedAt,omitempty"`
	RejectedAt *time.Time        `json:"rejectedAt,omitempty"`
	Provider   string            `json:"provider,omitempty"`
}

func FromStatusResult(r entities.StatusResult) PaymentStatusResponse {
	res := PaymentStatusResponse{
		ID:         r.ID,
		Status:     string(r.Status),
		RawStatus:  r.RawStatus,
		Approved:   r.Status.IsApproved(),
		Amount:     r.Amount,
		ApprovedAt: r.ApprovedAt,
		RejectedAt: r.RejectedAt,
		Provider:   r.Provider,
	}
	if r.Customer != nil {
		res.Customer = &CustomerResponse{Name: r.Customer.Name, Email: r.Customer.Email, CPF: r.Customer.CPF}
	}
	return res
}

type VehicleInfoResponse struct {
	Plate       string `json:"plate"`
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        string `json:"year,omitempty"`
	Color       string `json:"color,omitempty"`
	Validated   bool   `json:"validated"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

func FromVehicleInfo(v entities.VehicleInfo) VehicleInfoResponse {
	return VehicleInfoResponse{
		Plate:       v.Plate,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year,
		Color:       v.Color,
		Validated:   v.Validated,
		Placeholder: v.Placeholder,
	}
}
