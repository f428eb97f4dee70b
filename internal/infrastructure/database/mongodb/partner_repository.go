package mongodb

import (
	"context"
	"log/slog"

	"loan-tracker/internal/domain/partner"
	"loan-tracker/internal/pkg/docid"
)

const partnerCollection = "partner"

type PartnerRepository struct {
	store *Store[partner.Partner]
}

func NewPartnerRepository(client *Client, logger *slog.Logger) *PartnerRepository {
	return &PartnerRepository{
		store: NewStore[partner.Partner](client, partnerCollection, logger),
	}
}

func NewPartnerRepositoryWithCollection(collection Collection, logger *slog.Logger) *PartnerRepository {
	return &PartnerRepository{
		store: NewStoreWithCollection[partner.Partner](collection, partnerCollection, logger),
	}
}

func (r *PartnerRepository) Insert(ctx context.Context, p *partner.Partner) (docid.ID, error) {
	return r.store.Insert(ctx, *p)
}

func (r *PartnerRepository) FindAll(ctx context.Context) ([]*partner.Partner, error) {
	docs, err := r.store.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	partners := make([]*partner.Partner, len(docs))
	for i := range docs {
		partners[i] = &docs[i]
	}
	return partners, nil
}

func (r *PartnerRepository) FindByID(ctx context.Context, id string) (*partner.Partner, error) {
	return r.store.FindByID(ctx, id)
}

var _ partner.Repository = (*PartnerRepository)(nil)
