package loan

import (
	"context"

	"loan-tracker/internal/pkg/docid"
)

type Repository interface {
	Insert(ctx context.Context, l *Loan) (docid.ID, error)

	// FindAll returns loans in store-defined order. An empty status
	// returns every loan; otherwise only loans whose stored status
	// equals the given value.
	FindAll(ctx context.Context, status Status) ([]*Loan, error)

	FindByID(ctx context.Context, id string) (*Loan, error)

	// CountByStatus reports how many loans are stored per status.
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
