package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loan-tracker/internal/api/handler/dto"
	"loan-tracker/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, cust *customer.Customer) (string, error) {
	args := m.Called(ctx, cust)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	var customers []*customer.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]*customer.Customer)
	}
	return customers, args.Error(1)
}

func TestCreateCustomer(t *testing.T) {
	svc := new(MockCustomerService)
	h := NewCustomerHandler(svc, testLogger())

	svc.On("CreateCustomer", mock.Anything, mock.Anything).Return("5f8d0d55b54764421b7156c1", nil)

	rec := postJSON(t, h.CreateCustomer, "/api/customers", dto.CreateCustomerRequest{
		FirstName: "Jordan",
		LastName:  "Reyes",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CreateRecordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "5f8d0d55b54764421b7156c1", resp.ID)
	svc.AssertExpectations(t)
}

func TestCreateCustomer_MissingFirstName(t *testing.T) {
	svc := new(MockCustomerService)
	h := NewCustomerHandler(svc, testLogger())

	rec := postJSON(t, h.CreateCustomer, "/api/customers", dto.CreateCustomerRequest{
		LastName: "Reyes",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "first_name", resp.Error.Field)
	svc.AssertNotCalled(t, "CreateCustomer")
}

func TestListCustomers(t *testing.T) {
	svc := new(MockCustomerService)
	h := NewCustomerHandler(svc, testLogger())

	svc.On("ListCustomers", mock.Anything).Return([]*customer.Customer{
		{ID: primitive.NewObjectID(), FirstName: "Jordan", LastName: "Reyes"},
		{ID: primitive.NewObjectID(), FirstName: "Sam", LastName: "Okafor"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()
	h.ListCustomers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.CustomerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.NotEmpty(t, resp[0].ID)
	assert.Equal(t, "Jordan", resp[0].FirstName)
}

func TestListCustomers_ServiceError(t *testing.T) {
	svc := new(MockCustomerService)
	h := NewCustomerHandler(svc, testLogger())

	svc.On("ListCustomers", mock.Anything).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()
	h.ListCustomers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
