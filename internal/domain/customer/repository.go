package customer

import (
	"context"

	"loan-tracker/internal/pkg/docid"
)

type Repository interface {
	Insert(ctx context.Context, cust *Customer) (docid.ID, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	// FindByID resolves the canonical string form of an identifier.
	// Malformed input yields apperrors.ErrMalformedID, an unknown
	// identifier apperrors.ErrNotFound; neither is fatal to callers.
	FindByID(ctx context.Context, id string) (*Customer, error)
}
