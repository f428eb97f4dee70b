package customer

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loan-tracker/internal/pkg/docid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, cust *Customer) (docid.ID, error) {
	args := m.Called(ctx, cust)
	return args.Get(0).(docid.ID), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*Customer, error) {
	args := m.Called(ctx)
	var customers []*Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]*Customer)
	}
	return customers, args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*Customer, error) {
	args := m.Called(ctx, id)
	var cust *Customer
	if args.Get(0) != nil {
		cust = args.Get(0).(*Customer)
	}
	return cust, args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateCustomer(t *testing.T) {
	repo := new(MockRepository)
	svc := NewCustomerService(repo, testLogger())

	oid := primitive.NewObjectID()
	repo.On("Insert", mock.Anything, mock.Anything).Return(docid.FromObjectID(oid), nil)

	id, err := svc.CreateCustomer(context.Background(), &Customer{FirstName: "Jordan", LastName: "Reyes"})

	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), id)
	repo.AssertExpectations(t)
}

func TestCreateCustomer_RepoError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewCustomerService(repo, testLogger())

	repo.On("Insert", mock.Anything, mock.Anything).Return(docid.ID{}, assert.AnError)

	id, err := svc.CreateCustomer(context.Background(), &Customer{FirstName: "Jordan", LastName: "Reyes"})

	assert.Error(t, err)
	assert.Empty(t, id)
}

func TestListCustomers(t *testing.T) {
	repo := new(MockRepository)
	svc := NewCustomerService(repo, testLogger())

	stored := []*Customer{
		{FirstName: "Jordan", LastName: "Reyes"},
		{FirstName: "Sam", LastName: "Okafor"},
	}
	repo.On("FindAll", mock.Anything).Return(stored, nil)

	customers, err := svc.ListCustomers(context.Background())

	require.NoError(t, err)
	assert.Len(t, customers, 2)
	repo.AssertExpectations(t)
}

func TestNewCustomerService_NilRepoPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewCustomerService(nil, testLogger())
	})
}
