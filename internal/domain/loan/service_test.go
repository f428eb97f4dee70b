package loan

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loan-tracker/internal/domain/customer"
	"loan-tracker/internal/domain/partner"
	"loan-tracker/internal/event"
	"loan-tracker/internal/pkg/apperrors"
	"loan-tracker/internal/pkg/docid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, l *Loan) (docid.ID, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(docid.ID), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, status Status) ([]*Loan, error) {
	args := m.Called(ctx, status)
	var loans []*Loan
	if args.Get(0) != nil {
		loans = args.Get(0).([]*Loan)
	}
	return loans, args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*Loan, error) {
	args := m.Called(ctx, id)
	var l *Loan
	if args.Get(0) != nil {
		l = args.Get(0).(*Loan)
	}
	return l, args.Error(1)
}

func (m *MockRepository) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	args := m.Called(ctx)
	var counts map[Status]int64
	if args.Get(0) != nil {
		counts = args.Get(0).(map[Status]int64)
	}
	return counts, args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Insert(ctx context.Context, cust *customer.Customer) (docid.ID, error) {
	args := m.Called(ctx, cust)
	return args.Get(0).(docid.ID), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	var customers []*customer.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]*customer.Customer)
	}
	return customers, args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	var cust *customer.Customer
	if args.Get(0) != nil {
		cust = args.Get(0).(*customer.Customer)
	}
	return cust, args.Error(1)
}

type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) Insert(ctx context.Context, p *partner.Partner) (docid.ID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(docid.ID), args.Error(1)
}

func (m *MockPartnerRepository) FindAll(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	var partners []*partner.Partner
	if args.Get(0) != nil {
		partners = args.Get(0).([]*partner.Partner)
	}
	return partners, args.Error(1)
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id string) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	var p *partner.Partner
	if args.Get(0) != nil {
		p = args.Get(0).(*partner.Partner)
	}
	return p, args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishLoanFunded(ctx context.Context, evt event.LoanFundedEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func notFoundErr() error {
	return apperrors.ErrNotFound
}

func newAdmissionFixture() (*MockRepository, *MockCustomerRepository, *MockPartnerRepository, LoanService) {
	repo := new(MockRepository)
	customers := new(MockCustomerRepository)
	partners := new(MockPartnerRepository)
	svc := NewLoanService(repo, customers, partners, nil, testLogger())
	return repo, customers, partners, svc
}

func TestAdmitLoan_FundedWithPartnerDerivesCommission(t *testing.T) {
	repo, customers, partners, svc := newAdmissionFixture()

	custID := primitive.NewObjectID().Hex()
	partnerID := primitive.NewObjectID().Hex()

	customers.On("FindByID", mock.Anything, custID).Return(&customer.Customer{}, nil)
	partners.On("FindByID", mock.Anything, partnerID).
		Return(&partner.Partner{Name: "Acme", CommissionRate: 5}, nil)

	assignedID := docid.FromObjectID(primitive.NewObjectID())
	repo.On("Insert", mock.Anything, mock.Anything).Return(assignedID, nil)

	candidate := &Loan{
		CustomerID: custID,
		PartnerID:  strPtr(partnerID),
		Amount:     1000,
		Status:     StatusFunded,
	}

	id, err := svc.AdmitLoan(context.Background(), candidate)

	require.NoError(t, err)
	assert.Equal(t, assignedID.Hex(), id)
	require.NotNil(t, candidate.CommissionAmount)
	assert.Equal(t, 50.0, *candidate.CommissionAmount)
	require.NotNil(t, candidate.FundedDate)
	repo.AssertExpectations(t)
}

func TestAdmitLoan_FundedWithoutPartnerGetsZeroCommission(t *testing.T) {
	repo, customers, _, svc := newAdmissionFixture()

	custID := primitive.NewObjectID().Hex()
	customers.On("FindByID", mock.Anything, custID).Return(&customer.Customer{}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).
		Return(docid.FromObjectID(primitive.NewObjectID()), nil)

	candidate := &Loan{CustomerID: custID, Amount: 1000, Status: StatusFunded}

	_, err := svc.AdmitLoan(context.Background(), candidate)

	require.NoError(t, err)
	require.NotNil(t, candidate.CommissionAmount)
	assert.Equal(t, 0.0, *candidate.CommissionAmount)
}

func TestAdmitLoan_NonFundedPassesThroughUntouched(t *testing.T) {
	repo, customers, _, svc := newAdmissionFixture()

	custID := primitive.NewObjectID().Hex()
	customers.On("FindByID", mock.Anything, custID).Return(&customer.Customer{}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).
		Return(docid.FromObjectID(primitive.NewObjectID()), nil)

	candidate := &Loan{CustomerID: custID, Amount: 1000, Status: StatusApplied}

	_, err := svc.AdmitLoan(context.Background(), candidate)

	require.NoError(t, err)
	assert.Nil(t, candidate.CommissionAmount)
	assert.Nil(t, candidate.FundedDate)
}

func TestAdmitLoan_ExplicitFundedDateIsPreserved(t *testing.T) {
	repo, customers, _, svc := newAdmissionFixture()

	custID := primitive.NewObjectID().Hex()
	customers.On("FindByID", mock.Anything, custID).Return(&customer.Customer{}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).
		Return(docid.FromObjectID(primitive.NewObjectID()), nil)

	funded := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	candidate := &Loan{
		CustomerID: custID,
		Amount:     1000,
		Status:     StatusFunded,
		FundedDate: &funded,
	}

	_, err := svc.AdmitLoan(context.Background(), candidate)

	require.NoError(t, err)
	require.NotNil(t, candidate.FundedDate)
	assert.True(t, funded.Equal(*candidate.FundedDate))
}

func TestAdmitLoan_UnknownCustomerIsReferenceError(t *testing.T) {
	repo, customers, _, svc := newAdmissionFixture()

	custID := primitive.NewObjectID().Hex()
	customers.On("FindByID", mock.Anything, custID).Return(nil, notFoundErr())

	_, err := svc.AdmitLoan(context.Background(), &Loan{CustomerID: custID, Amount: 100, Status: StatusApplied})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReference)
	assert.Contains(t, err.Error(), "invalid customer_id")
	assert.NotContains(t, err.Error(), "format")
	repo.AssertNotCalled(t, "Insert")
}

func TestAdmitLoan_MalformedCustomerIDIsFormatError(t *testing.T) {
	repo, customers, _, svc := newAdmissionFixture()

	customers.On("FindByID", mock.Anything, "zzz").Return(nil, apperrors.ErrMalformedID)

	_, err := svc.AdmitLoan(context.Background(), &Loan{CustomerID: "zzz", Amount: 100, Status: StatusApplied})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReference)
	assert.Contains(t, err.Error(), "invalid customer_id format")
	repo.AssertNotCalled(t, "Insert")
}

func TestAdmitLoan_UnknownPartnerIsReferenceError(t *testing.T) {
	repo, customers, partners, svc := newAdmissionFixture()

	custID := primitive.NewObjectID().Hex()
	partnerID := primitive.NewObjectID().Hex()
	customers.On("FindByID", mock.Anything, custID).Return(&customer.Customer{}, nil)
	partners.On("FindByID", mock.Anything, partnerID).Return(nil, notFoundErr())

	_, err := svc.AdmitLoan(context.Background(), &Loan{
		CustomerID: custID,
		PartnerID:  strPtr(partnerID),
		Amount:     100,
		Status:     StatusApplied,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReference)
	assert.Contains(t, err.Error(), "invalid partner_id")
	repo.AssertNotCalled(t, "Insert")
}

func TestAdmitLoan_FundedPublishesEvent(t *testing.T) {
	repo := new(MockRepository)
	customers := new(MockCustomerRepository)
	partners := new(MockPartnerRepository)
	publisher := new(MockPublisher)
	svc := NewLoanService(repo, customers, partners, publisher, testLogger())

	custID := primitive.NewObjectID().Hex()
	customers.On("FindByID", mock.Anything, custID).Return(&customer.Customer{}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).
		Return(docid.FromObjectID(primitive.NewObjectID()), nil)
	publisher.On("PublishLoanFunded", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.AdmitLoan(context.Background(), &Loan{CustomerID: custID, Amount: 1000, Status: StatusFunded})

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestAdmitLoan_PublishFailureDoesNotFailAdmission(t *testing.T) {
	repo := new(MockRepository)
	customers := new(MockCustomerRepository)
	partners := new(MockPartnerRepository)
	publisher := new(MockPublisher)
	svc := NewLoanService(repo, customers, partners, publisher, testLogger())

	custID := primitive.NewObjectID().Hex()
	customers.On("FindByID", mock.Anything, custID).Return(&customer.Customer{}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).
		Return(docid.FromObjectID(primitive.NewObjectID()), nil)
	publisher.On("PublishLoanFunded", mock.Anything, mock.Anything).Return(assert.AnError)

	id, err := svc.AdmitLoan(context.Background(), &Loan{CustomerID: custID, Amount: 1000, Status: StatusFunded})

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestListLoans(t *testing.T) {
	repo, _, _, svc := newAdmissionFixture()

	stored := []*Loan{
		{CustomerID: "c1", Amount: 500, Status: StatusFunded},
	}
	repo.On("FindAll", mock.Anything, StatusFunded).Return(stored, nil)

	loans, err := svc.ListLoans(context.Background(), StatusFunded)

	require.NoError(t, err)
	assert.Len(t, loans, 1)
	repo.AssertExpectations(t)
}

func TestListLoans_RepoError(t *testing.T) {
	repo, _, _, svc := newAdmissionFixture()

	repo.On("FindAll", mock.Anything, Status("")).Return(nil, assert.AnError)

	loans, err := svc.ListLoans(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, loans)
}
