package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loan-tracker/internal/domain/loan"
	"loan-tracker/internal/infrastructure/monitoring"
)

// PortfolioSummaryJob counts stored loans per status, logs the summary
// and refreshes the portfolio gauges. Read-only; it never modifies
// loan records.
type PortfolioSummaryJob struct {
	loanRepo loan.Repository
	logger   *slog.Logger
}

func NewPortfolioSummaryJob(loanRepo loan.Repository, logger *slog.Logger) *PortfolioSummaryJob {
	if loanRepo == nil || logger == nil {
		panic("PortfolioSummaryJob dependencies cannot be nil")
	}
	return &PortfolioSummaryJob{
		loanRepo: loanRepo,
		logger:   logger.With("job", "PortfolioSummary"),
	}
}

func (j *PortfolioSummaryJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting portfolio summary job.")

	counts, err := j.loanRepo.CountByStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count loans by status, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count loans: %w", err)
	}

	var total int64
	attrs := make([]any, 0, len(counts)+2)
	for _, status := range loan.Statuses() {
		count := counts[status]
		total += count
		monitoring.SetPortfolioCount(string(status), count)
		attrs = append(attrs, slog.Int64(string(status), count))
	}
	attrs = append(attrs,
		slog.Int64("total", total),
		slog.Duration("duration", time.Since(startTime)),
	)

	j.logger.With(attrs...).InfoContext(ctx, "Portfolio summary job finished successfully.")
	return nil
}
