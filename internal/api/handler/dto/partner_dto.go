package dto

import (
	"strings"

	"loan-tracker/internal/domain/partner"
	"loan-tracker/internal/pkg/apperrors"
)

type CreatePartnerRequest struct {
	Name           string   `json:"name"`
	ContactName    *string  `json:"contact_name,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

func (r *CreatePartnerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.NewValidationError("name", "name cannot be empty")
	}
	if r.CommissionRate != nil && (*r.CommissionRate < 0 || *r.CommissionRate > 100) {
		return apperrors.NewValidationError("commission_rate", "commission_rate must be between 0 and 100")
	}
	return nil
}

func (r *CreatePartnerRequest) ToDomain() *partner.Partner {
	rate := partner.DefaultCommissionRate
	if r.CommissionRate != nil {
		rate = *r.CommissionRate
	}

	return &partner.Partner{
		Name:           r.Name,
		ContactName:    r.ContactName,
		Email:          r.Email,
		Phone:          r.Phone,
		CommissionRate: rate,
		Notes:          r.Notes,
	}
}

type PartnerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ContactName    *string `json:"contact_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	CommissionRate float64 `json:"commission_rate"`
	Notes          *string `json:"notes,omitempty"`
}

func NewPartnerResponse(p *partner.Partner) PartnerResponse {
	if p == nil {
		return PartnerResponse{}
	}

	return PartnerResponse{
		ID:             p.ID.Hex(),
		Name:           p.Name,
		ContactName:    p.ContactName,
		Email:          p.Email,
		Phone:          p.Phone,
		CommissionRate: p.CommissionRate,
		Notes:          p.Notes,
	}
}
