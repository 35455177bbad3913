package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/client/session"
	"github.com/jcsoftlabs/Yeng-client/internal/logging"
)

// fakeAPI implements api.Client for view-model tests.
type fakeAPI struct {
	parcels     []models.Parcel
	parcelsErr  error
	profile     *models.Customer
	profileErr  error
	parcel      *models.Parcel
	invoice     *models.Invoice
	invoices    []models.Invoice
	pdf         []byte
	registered  *models.RegisterRequest
	registerErr error
	updated     *models.Customer
	forgotEmail string
	resetToken  string
	resetPass   string
	resetErr    error
	token       string
}

func (f *fakeAPI) SetToken(_ context.Context, token string) error { f.token = token; return nil }
func (f *fakeAPI) ClearToken(context.Context) error               { f.token = ""; return nil }
func (f *fakeAPI) Token() string                                  { return f.token }

func (f *fakeAPI) Login(_ context.Context, email, _ string) (*models.LoginResponse, error) {
	return &models.LoginResponse{
		AccessToken: "tok-auto",
		User:        &models.Customer{ID: "c1", Email: email},
	}, nil
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.Customer, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = &req
	return &models.Customer{ID: "c1", Email: req.Email, CustomAddress: req.CustomAddress}, nil
}

func (f *fakeAPI) ForgotPassword(_ context.Context, email string) error {
	f.forgotEmail = email
	return nil
}

func (f *fakeAPI) ResetPassword(_ context.Context, token, password string) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resetToken, f.resetPass = token, password
	return nil
}

func (f *fakeAPI) GetProfile(context.Context) (*models.Customer, error) {
	return f.profile, f.profileErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, req models.UpdateProfileRequest) (*models.Customer, error) {
	f.updated = &models.Customer{ID: "c1", FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Phone: req.Phone}
	return f.updated, nil
}

func (f *fakeAPI) GetParcels(context.Context) ([]models.Parcel, error) {
	return f.parcels, f.parcelsErr
}

func (f *fakeAPI) GetParcel(context.Context, string) (*models.Parcel, error) {
	return f.parcel, nil
}

func (f *fakeAPI) TrackParcel(context.Context, string) (*models.Parcel, error) {
	return f.parcel, nil
}

func (f *fakeAPI) GetInvoices(context.Context) ([]models.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeAPI) GetInvoice(context.Context, string) (*models.Invoice, error) {
	return f.invoice, nil
}

func (f *fakeAPI) DownloadInvoicePDF(context.Context, string) ([]byte, error) {
	return f.pdf, nil
}

func testSession(t *testing.T, client *fakeAPI) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE client_state (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := session.NewStore(client, db, log)
	require.NoError(t, store.Hydrate(context.Background()))
	return store
}

func TestComputeStats_TruthTable(t *testing.T) {
	parcels := []models.Parcel{
		{Status: models.StatusInTransitHaiti, PaymentStatus: models.PaymentPending},
		{Status: models.StatusPickedUp, PaymentStatus: models.PaymentPaid},
	}

	stats := ComputeStats(parcels)

	assert.Equal(t, 2, stats.TotalParcels)
	assert.Equal(t, 0, stats.InTransit, "only the literal IN_TRANSIT counts")
	assert.Equal(t, 0, stats.Delivered, "only the literal DELIVERED counts")
	assert.Equal(t, 1, stats.PendingPayment)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, DashboardStats{}, ComputeStats(nil))
}

func TestFilterParcels_SearchTerm(t *testing.T) {
	parcels := []models.Parcel{
		{TrackingNumber: "YENG-001", Description: "Shoes"},
		{TrackingNumber: "YENG-002", Description: "Contains yeng-001 replacement parts"},
		{TrackingNumber: "YENG-003", Description: "Books"},
	}

	got := FilterParcels(parcels, "YENG-001", FilterAll)
	require.Len(t, got, 2, "matches tracking number or description, case-insensitive")
	assert.Equal(t, "YENG-001", got[0].TrackingNumber)
	assert.Equal(t, "YENG-002", got[1].TrackingNumber)
}

func TestFilterParcels_StatusExactMatch(t *testing.T) {
	parcels := []models.Parcel{
		{TrackingNumber: "YENG-001", Status: models.StatusPickedUp},
		{TrackingNumber: "YENG-002", Status: models.StatusPending},
		{TrackingNumber: "YENG-003", Status: models.StatusPickedUp},
	}

	got := FilterParcels(parcels, "", models.StatusPickedUp)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, models.StatusPickedUp, p.Status)
	}
}

func TestFilterParcels_AllAndEmptyTermReturnsEverything(t *testing.T) {
	parcels := []models.Parcel{{TrackingNumber: "A"}, {TrackingNumber: "B"}}
	assert.Len(t, FilterParcels(parcels, "", FilterAll), 2)
}

func TestDashboard_JoinsParcelsAndProfile(t *testing.T) {
	profile := &models.Customer{ID: "c1", FirstName: "Marie", FullUSAAddress: "MADU123\n7829 NW 72nd Ave\nMiami, FL 33166\nUSA"}
	client := &fakeAPI{
		parcels: []models.Parcel{
			{TrackingNumber: "YENG-001", PaymentStatus: models.PaymentPending},
			{TrackingNumber: "YENG-002"},
			{TrackingNumber: "YENG-003"},
			{TrackingNumber: "YENG-004"},
			{TrackingNumber: "YENG-005"},
			{TrackingNumber: "YENG-006"},
		},
		profile: profile,
	}
	sess := testSession(t, client)
	svc := NewParcelService(client, sess)

	data, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, data.Stats.TotalParcels)
	assert.Equal(t, 1, data.Stats.PendingPayment)
	assert.Len(t, data.Recent, 5, "recent strip is capped")
	assert.Equal(t, "YENG-001", data.Recent[0].TrackingNumber)

	// Fresh profile is pushed back into the session store.
	assert.Equal(t, profile, sess.Snapshot().Customer)
}

func TestDashboard_FetchFailureSurfaces(t *testing.T) {
	client := &fakeAPI{parcelsErr: errors.New("HTTP 500")}
	sess := testSession(t, client)
	svc := NewParcelService(client, sess)

	_, err := svc.Dashboard(context.Background())
	require.EqualError(t, err, "HTTP 500")
}
