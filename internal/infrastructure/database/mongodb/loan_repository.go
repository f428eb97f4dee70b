package mongodb

import (
	"context"
	"log/slog"

	"loan-tracker/internal/domain/loan"
	"loan-tracker/internal/pkg/docid"

	"go.mongodb.org/mongo-driver/bson"
)

const loanCollection = "loan"

type LoanRepository struct {
	store *Store[loan.Loan]
}

func NewLoanRepository(client *Client, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{
		store: NewStore[loan.Loan](client, loanCollection, logger),
	}
}

func NewLoanRepositoryWithCollection(collection Collection, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{
		store: NewStoreWithCollection[loan.Loan](collection, loanCollection, logger),
	}
}

func (r *LoanRepository) Insert(ctx context.Context, l *loan.Loan) (docid.ID, error) {
	return r.store.Insert(ctx, *l)
}

func (r *LoanRepository) FindAll(ctx context.Context, status loan.Status) ([]*loan.Loan, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	docs, err := r.store.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	loans := make([]*loan.Loan, len(docs))
	for i := range docs {
		loans[i] = &docs[i]
	}
	return loans, nil
}

func (r *LoanRepository) FindByID(ctx context.Context, id string) (*loan.Loan, error) {
	return r.store.FindByID(ctx, id)
}

func (r *LoanRepository) CountByStatus(ctx context.Context) (map[loan.Status]int64, error) {
	counts := make(map[loan.Status]int64, len(loan.Statuses()))
	for _, status := range loan.Statuses() {
		count, err := r.store.Count(ctx, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, nil
}

var _ loan.Repository = (*LoanRepository)(nil)
