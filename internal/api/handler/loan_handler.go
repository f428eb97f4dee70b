package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"loan-tracker/internal/api/handler/dto"
	"loan-tracker/internal/domain/loan"
	"loan-tracker/internal/pkg/apperrors"
)

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	if s == nil {
		panic("loan service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

// CreateLoan handles POST /api/loans
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create loan request")

	var req dto.CreateLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Create loan validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	id, err := h.service.AdmitLoan(r.Context(), req.ToDomain())
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, apperrors.ErrReference) {
			level = slog.LevelWarn
		}
		h.logger.Log(r.Context(), level, "Service failed to admit loan", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Loan created successfully", slog.String("loanID", id))
	respondJSON(w, http.StatusCreated, dto.CreateRecordResponse{ID: id})
}

// ListLoans handles GET /api/loans with an optional status query filter.
// An unknown status value is not an error; it simply matches no stored
// loans.
func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	status := loan.Status(r.URL.Query().Get("status"))
	h.logger.DebugContext(r.Context(), "Received list loans request", slog.String("status", string(status)))

	loans, err := h.service.ListLoans(r.Context(), status)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list loans", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.LoanResponse, len(loans))
	for i, l := range loans {
		resp[i] = dto.NewLoanResponse(l)
	}

	h.logger.InfoContext(r.Context(), "Loans listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}
