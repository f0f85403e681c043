package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leaseify/internal/models"
	"leaseify/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedToken string

func (t fixedToken) Token() string { return string(t) }

// recorded captures the last request the fake backend saw.
type recorded struct {
	method string
	path   string
	query  string
	body   map[string]any
}

func newBackend(t *testing.T, status int, response any) (*transport.Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&rec.body)
		}
		w.WriteHeader(status)
		if response != nil {
			json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(srv.Close)
	return transport.New(srv.URL, fixedToken("tok"), 5*time.Second), rec
}

func TestPropertyService_CreateMapsToPost(t *testing.T) {
	api, rec := newBackend(t, http.StatusCreated, models.Property{ID: "p1", Street: "12 Elm St"})
	svc := NewPropertyService(api)

	created, err := svc.Create(context.Background(), &models.CreatePropertyRequest{
		Street: "12 Elm St", City: "Springfield", State: "IL", RentAmount: 1200,
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/landlord/properties", rec.path)
	assert.Equal(t, "12 Elm St", rec.body["street"])
	assert.Equal(t, "p1", created.ID)
}

func TestPropertyService_DeleteMapsToDelete(t *testing.T) {
	api, rec := newBackend(t, http.StatusOK, nil)
	svc := NewPropertyService(api)

	require.NoError(t, svc.Delete(context.Background(), "p9"))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/landlord/properties/p9", rec.path)
}

func TestLeaseService_MyLeasePropagates404(t *testing.T) {
	api, _ := newBackend(t, http.StatusNotFound, map[string]string{"message": "No active lease"})
	svc := NewLeaseService(api)

	lease, err := svc.MyLease(context.Background())
	assert.Nil(t, lease)
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusNotFound))
}

func TestLeaseService_MyLeaseEmptyBodyMeansNoLease(t *testing.T) {
	api, rec := newBackend(t, http.StatusOK, nil)
	svc := NewLeaseService(api)

	lease, err := svc.MyLease(context.Background())
	require.NoError(t, err)
	assert.Nil(t, lease)
	assert.Equal(t, "/tenant/lease", rec.path)
}

func TestTenantService_ListSendsPageParams(t *testing.T) {
	api, rec := newBackend(t, http.StatusOK, models.Page[models.Tenant]{
		Data: []models.Tenant{{ID: "t1", Name: "Ada"}},
		Meta: models.Meta{Page: 2, TotalPages: 4},
	})
	svc := NewTenantService(api)

	page, err := svc.List(context.Background(), 2, 25)
	require.NoError(t, err)
	assert.Equal(t, "/landlord/tenants", rec.path)
	assert.Equal(t, "limit=25&page=2", rec.query)
	assert.Equal(t, 2, page.Meta.Page)
	require.Len(t, page.Data, 1)
}

func TestLogService_ListSendsTypeFilter(t *testing.T) {
	api, rec := newBackend(t, http.StatusOK, models.Page[models.Log]{})
	svc := NewLogService(api)

	_, err := svc.List(context.Background(), 1, 10, models.LogCommunication)
	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=1&type=Communication", rec.query)
}

func TestMaintenanceService_UpdateStatusBody(t *testing.T) {
	api, rec := newBackend(t, http.StatusOK, models.MaintenanceRequest{ID: "m1", Status: models.MaintenanceCompleted})
	svc := NewMaintenanceService(api)

	updated, err := svc.UpdateStatus(context.Background(), "m1", models.MaintenanceCompleted)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/landlord/maintenance/m1", rec.path)
	assert.Equal(t, models.MaintenanceCompleted, rec.body["status"])
	assert.Equal(t, models.MaintenanceCompleted, updated.Status)
}

func TestPaymentService_CreateIntent(t *testing.T) {
	api, rec := newBackend(t, http.StatusOK, models.PaymentIntent{
		IntentID: "pi_1", ClientSecret: "secret", CheckoutURL: "https://pay.example/session/pi_1",
	})
	svc := NewPaymentService(api)

	intent, err := svc.CreateIntent(context.Background(), &models.CreateIntentRequest{LeaseID: "l1", Amount: 1500})
	require.NoError(t, err)
	assert.Equal(t, "/tenant/payments/intent", rec.path)
	assert.Equal(t, "secret", intent.ClientSecret)
	assert.Equal(t, float64(1500), rec.body["amount"])
}
