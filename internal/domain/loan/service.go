package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"loan-tracker/internal/domain/customer"
	"loan-tracker/internal/domain/partner"
	"loan-tracker/internal/event"
	"loan-tracker/internal/infrastructure/monitoring"
	"loan-tracker/internal/pkg/apperrors"
)

type LoanService interface {
	// AdmitLoan validates the candidate's references, derives commission
	// and funded date when the candidate arrives funded, persists it and
	// returns the assigned identifier.
	AdmitLoan(ctx context.Context, candidate *Loan) (string, error)

	// ListLoans returns loans in store-defined order, optionally filtered
	// by status equality.
	ListLoans(ctx context.Context, status Status) ([]*Loan, error)
}

var _ LoanService = (*loanService)(nil)

type loanService struct {
	repo      Repository
	customers customer.Repository
	partners  partner.Repository
	publisher event.Publisher
	logger    *slog.Logger
}

func NewLoanService(repo Repository, customers customer.Repository, partners partner.Repository, publisher event.Publisher, logger *slog.Logger) LoanService {
	if repo == nil {
		panic("loan repository cannot be nil")
	}
	if customers == nil || partners == nil {
		panic("customer and partner repositories cannot be nil")
	}

	return &loanService{
		repo:      repo,
		customers: customers,
		partners:  partners,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "loanService")),
	}
}

func (s *loanService) AdmitLoan(ctx context.Context, candidate *Loan) (string, error) {
	s.logger.InfoContext(ctx, "Admitting new loan", slog.String("status", string(candidate.Status)))

	if candidate.CustomerID != "" {
		if err := s.resolveCustomer(ctx, candidate.CustomerID); err != nil {
			return "", err
		}
	}

	if candidate.PartnerID != nil {
		if err := s.resolvePartner(ctx, *candidate.PartnerID); err != nil {
			return "", err
		}
	}

	if candidate.Status == StatusFunded {
		s.deriveFunding(ctx, candidate)
	}

	id, err := s.repo.Insert(ctx, candidate)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save loan", slog.Any("error", err))
		return "", fmt.Errorf("failed to save loan: %w", err)
	}

	monitoring.RecordLoanAdmitted(string(candidate.Status))
	s.logger.InfoContext(ctx, "Loan admitted successfully", slog.String("loanID", id.Hex()))

	if candidate.Status == StatusFunded {
		s.publishFunded(ctx, id.Hex(), candidate)
	}

	return id.Hex(), nil
}

func (s *loanService) resolveCustomer(ctx context.Context, id string) error {
	_, err := s.customers.FindByID(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrMalformedID):
		s.logger.WarnContext(ctx, "Loan references malformed customer id", slog.String("customer_id", id))
		return apperrors.NewReferenceError("customer_id", "invalid customer_id format")
	case errors.Is(err, apperrors.ErrNotFound):
		s.logger.WarnContext(ctx, "Loan references unknown customer", slog.String("customer_id", id))
		return apperrors.NewReferenceError("customer_id", "invalid customer_id")
	default:
		s.logger.ErrorContext(ctx, "Failed to resolve customer reference", slog.Any("error", err))
		return fmt.Errorf("failed to verify customer reference: %w", err)
	}
}

func (s *loanService) resolvePartner(ctx context.Context, id string) error {
	_, err := s.partners.FindByID(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrMalformedID):
		s.logger.WarnContext(ctx, "Loan references malformed partner id", slog.String("partner_id", id))
		return apperrors.NewReferenceError("partner_id", "invalid partner_id format")
	case errors.Is(err, apperrors.ErrNotFound):
		s.logger.WarnContext(ctx, "Loan references unknown partner", slog.String("partner_id", id))
		return apperrors.NewReferenceError("partner_id", "invalid partner_id")
	default:
		s.logger.ErrorContext(ctx, "Failed to resolve partner reference", slog.Any("error", err))
		return fmt.Errorf("failed to verify partner reference: %w", err)
	}
}

// deriveFunding populates commission and funded date for a loan admitted
// in the funded state. A missing partner, or a partner document without a
// commission rate, means rate 0 rather than an error.
func (s *loanService) deriveFunding(ctx context.Context, candidate *Loan) {
	rate := 0.0
	if candidate.PartnerID != nil {
		p, err := s.partners.FindByID(ctx, *candidate.PartnerID)
		if err == nil {
			rate = p.CommissionRate
		} else {
			s.logger.WarnContext(ctx, "Could not load partner for commission rate, using 0", slog.Any("error", err))
		}
	}

	commission := Commission(candidate.Amount, rate)
	candidate.CommissionAmount = &commission
	monitoring.RecordCommission(commission)

	if candidate.FundedDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		candidate.FundedDate = &today
	}
}

// publishFunded is best effort: a publish failure is logged and never
// fails an already persisted admission.
func (s *loanService) publishFunded(ctx context.Context, loanID string, l *Loan) {
	if s.publisher == nil {
		return
	}

	evt := event.LoanFundedEvent{
		LoanID:     loanID,
		CustomerID: l.CustomerID,
		PartnerID:  l.PartnerID,
		Amount:     l.Amount,
		Timestamp:  time.Now(),
	}
	if l.CommissionAmount != nil {
		evt.CommissionAmount = *l.CommissionAmount
	}
	if l.FundedDate != nil {
		evt.FundedDate = *l.FundedDate
	}

	if err := s.publisher.PublishLoanFunded(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Loan admitted, but FAILED to publish funded event", slog.Any("error", err))
	} else {
		s.logger.InfoContext(ctx, "Successfully published loan funded event", slog.String("loanID", loanID))
	}
}

func (s *loanService) ListLoans(ctx context.Context, status Status) ([]*Loan, error) {
	s.logger.InfoContext(ctx, "Listing loans", slog.String("status", string(status)))

	loans, err := s.repo.FindAll(ctx, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing loans", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved loans", slog.Int("count", len(loans)))
	return loans, nil
}
