package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/customer-viewer/internal/controller"
	"github.com/unclebandit/customer-viewer/internal/model"
	"github.com/unclebandit/customer-viewer/internal/service"
)

// --- Mock Repository ---

type MockCustomerRepo struct {
	customers []model.Customer
	err       error
}

func (m *MockCustomerRepo) List(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Customer
	for _, c := range m.customers {
		if filter.Name != "" && !strings.Contains(strings.ToLower(c.CustomerName), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(c.Location), strings.ToLower(filter.Location)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *MockCustomerRepo) InsertBatch(ctx context.Context, customers []model.Customer) error {
	return nil
}

var createdAt = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func newController(repo *MockCustomerRepo) *controller.CustomerController {
	return &controller.CustomerController{
		CustomerService: &service.CustomerService{CustomerRepo: repo, Mode: service.FilterLocationPrecedence},
	}
}

func aliceAndBob() *MockCustomerRepo {
	return &MockCustomerRepo{customers: []model.Customer{
		{Sno: 1, CustomerName: "Alice", Age: 31, Phone: "+91 0123456789", Location: "Paris", CreatedAt: createdAt},
		{Sno: 2, CustomerName: "Bob", Age: 44, Phone: "+91 9876543210", Location: "Lyon", CreatedAt: createdAt},
	}}
}

// --- Tests ---

func TestListCustomers_ReturnsJSONArray(t *testing.T) {
	ctrl := newController(aliceAndBob())

	req := httptest.NewRequest("GET", "/api/customers", nil)
	w := httptest.NewRecorder()
	ctrl.ListCustomers(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var raw []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Len(t, raw, 2)
	for _, field := range []string{"sno", "customer_name", "age", "phone", "location", "created_at"} {
		assert.Contains(t, raw[0], field)
	}
	assert.Equal(t, "2024-03-05T14:07:09Z", raw[0]["created_at"])
}

func TestListCustomers_LocationWinsOverName(t *testing.T) {
	ctrl := newController(aliceAndBob())

	req := httptest.NewRequest("GET", "/api/customers?filterName=Alice&filterLocation=Lyon", nil)
	w := httptest.NewRecorder()
	ctrl.ListCustomers(w, req)

	var got []model.Customer
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Lyon", got[0].Location)
	assert.Equal(t, "Bob", got[0].CustomerName)
}

func TestListCustomers_NoMatchIsEmptyArray(t *testing.T) {
	ctrl := newController(aliceAndBob())

	req := httptest.NewRequest("GET", "/api/customers?filterName=zed", nil)
	w := httptest.NewRecorder()
	ctrl.ListCustomers(w, req)

	assert.Equal(t, "[]\n", w.Body.String())
}

func TestListCustomers_StoreFailureAbortsHandler(t *testing.T) {
	ctrl := newController(&MockCustomerRepo{err: errors.New("connection refused")})

	req := httptest.NewRequest("GET", "/api/customers", nil)
	w := httptest.NewRecorder()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		ctrl.ListCustomers(w, req)
	})
	assert.Zero(t, w.Body.Len())
}

func TestListCustomers_StoreFailureLeavesClientWithoutResponse(t *testing.T) {
	ctrl := newController(&MockCustomerRepo{err: errors.New("connection refused")})
	srv := httptest.NewServer(http.HandlerFunc(ctrl.ListCustomers))
	defer srv.Close()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(srv.URL + "/api/customers")
	if err == nil {
		resp.Body.Close()
	}
	assert.Error(t, err, "the connection should be dropped without a response")
}
