package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"loan-tracker/internal/api/handler/dto"
	"loan-tracker/internal/domain/partner"
	"loan-tracker/internal/pkg/apperrors"
)

type PartnerHandler struct {
	service partner.PartnerService
	logger  *slog.Logger
}

func NewPartnerHandler(s partner.PartnerService, l *slog.Logger) *PartnerHandler {
	if s == nil {
		panic("partner service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &PartnerHandler{
		service: s,
		logger:  l.With("component", "PartnerHandler"),
	}
}

// CreatePartner handles POST /api/partners
func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create partner request")

	var req dto.CreatePartnerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Create partner validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	id, err := h.service.CreatePartner(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to create partner", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Partner created successfully", slog.String("partnerID", id))
	respondJSON(w, http.StatusCreated, dto.CreateRecordResponse{ID: id})
}

// ListPartners handles GET /api/partners
func (h *PartnerHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list partners request")

	partners, err := h.service.ListPartners(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list partners", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.PartnerResponse, len(partners))
	for i, p := range partners {
		resp[i] = dto.NewPartnerResponse(p)
	}

	h.logger.InfoContext(r.Context(), "Partners listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}
