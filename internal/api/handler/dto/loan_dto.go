package dto

import (
	"fmt"
	"strings"
	"time"

	"loan-tracker/internal/domain/loan"
	"loan-tracker/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

type CreateLoanRequest struct {
	CustomerID       string   `json:"customer_id"`
	PartnerID        *string  `json:"partner_id,omitempty"`
	Amount           float64  `json:"amount"`
	Status           string   `json:"status,omitempty"`
	ApplicationDate  *string  `json:"application_date,omitempty"`
	FundedDate       *string  `json:"funded_date,omitempty"`
	CommissionAmount *float64 `json:"commission_amount,omitempty"`
}

func (r *CreateLoanRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return apperrors.NewValidationError("customer_id", "customer_id cannot be empty")
	}
	if r.Amount <= 0 {
		return apperrors.NewValidationError("amount", "amount must be greater than zero")
	}
	if r.Status != "" && !loan.Status(r.Status).Valid() {
		return apperrors.NewValidationError("status",
			fmt.Sprintf("status must be one of %v", loan.Statuses()))
	}
	if r.ApplicationDate != nil {
		if _, err := time.Parse(dateLayout, *r.ApplicationDate); err != nil {
			return apperrors.NewValidationError("application_date", "invalid application_date format (use YYYY-MM-DD)")
		}
	}
	if r.FundedDate != nil {
		if _, err := time.Parse(dateLayout, *r.FundedDate); err != nil {
			return apperrors.NewValidationError("funded_date", "invalid funded_date format (use YYYY-MM-DD)")
		}
	}
	if r.CommissionAmount != nil && *r.CommissionAmount < 0 {
		return apperrors.NewValidationError("commission_amount", "commission_amount cannot be negative")
	}
	return nil
}

// ToDomain assumes Validate has passed; date parse errors cannot occur here.
func (r *CreateLoanRequest) ToDomain() *loan.Loan {
	status := loan.DefaultStatus
	if r.Status != "" {
		status = loan.Status(r.Status)
	}

	l := &loan.Loan{
		CustomerID:       r.CustomerID,
		PartnerID:        r.PartnerID,
		Amount:           r.Amount,
		Status:           status,
		CommissionAmount: r.CommissionAmount,
	}

	if r.ApplicationDate != nil {
		d, _ := time.Parse(dateLayout, *r.ApplicationDate)
		l.ApplicationDate = &d
	}
	if r.FundedDate != nil {
		d, _ := time.Parse(dateLayout, *r.FundedDate)
		l.FundedDate = &d
	}

	return l
}

type LoanResponse struct {
	ID               string   `json:"id"`
	CustomerID       string   `json:"customer_id"`
	PartnerID        *string  `json:"partner_id,omitempty"`
	Amount           float64  `json:"amount"`
	Status           string   `json:"status"`
	ApplicationDate  *string  `json:"application_date,omitempty"`
	FundedDate       *string  `json:"funded_date,omitempty"`
	CommissionAmount *float64 `json:"commission_amount,omitempty"`
}

func NewLoanResponse(l *loan.Loan) LoanResponse {
	if l == nil {
		return LoanResponse{}
	}

	formatDate := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(dateLayout)
		return &s
	}

	return LoanResponse{
		ID:               l.ID.Hex(),
		CustomerID:       l.CustomerID,
		PartnerID:        l.PartnerID,
		Amount:           l.Amount,
		Status:           string(l.Status),
		ApplicationDate:  formatDate(l.ApplicationDate),
		FundedDate:       formatDate(l.FundedDate),
		CommissionAmount: l.CommissionAmount,
	}
}
