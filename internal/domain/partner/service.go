package partner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

type PartnerService interface {
	CreatePartner(ctx context.Context, p *Partner) (string, error)
	ListPartners(ctx context.Context) ([]*Partner, error)
}

var _ PartnerService = (*partnerService)(nil)

type partnerService struct {
	repo   Repository
	logger *slog.Logger
}

func NewPartnerService(repo Repository, logger *slog.Logger) PartnerService {
	if repo == nil {
		panic("partner repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewPartnerService, using default stderr handler")
	}

	return &partnerService{
		repo:   repo,
		logger: logger.With(slog.String("component", "partnerService")),
	}
}

func (s *partnerService) CreatePartner(ctx context.Context, p *Partner) (string, error) {
	s.logger.InfoContext(ctx, "Attempting to create new partner")

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new partner", slog.Any("error", err))
		return "", fmt.Errorf("failed to save new partner: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully created new partner", slog.String("partnerID", id.Hex()))
	return id.Hex(), nil
}

func (s *partnerService) ListPartners(ctx context.Context) ([]*Partner, error) {
	s.logger.InfoContext(ctx, "Attempting to list all partners")

	partners, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing partners", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved partners", slog.Int("count", len(partners)))
	return partners, nil
}
