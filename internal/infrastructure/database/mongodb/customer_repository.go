package mongodb

import (
	"context"
	"log/slog"

	"loan-tracker/internal/domain/customer"
	"loan-tracker/internal/pkg/docid"
)

const customerCollection = "customer"

type CustomerRepository struct {
	store *Store[customer.Customer]
}

func NewCustomerRepository(client *Client, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{
		store: NewStore[customer.Customer](client, customerCollection, logger),
	}
}

func NewCustomerRepositoryWithCollection(collection Collection, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{
		store: NewStoreWithCollection[customer.Customer](collection, customerCollection, logger),
	}
}

func (r *CustomerRepository) Insert(ctx context.Context, cust *customer.Customer) (docid.ID, error) {
	return r.store.Insert(ctx, *cust)
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	docs, err := r.store.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	customers := make([]*customer.Customer, len(docs))
	for i := range docs {
		customers[i] = &docs[i]
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	return r.store.FindByID(ctx, id)
}

var _ customer.Repository = (*CustomerRepository)(nil)
