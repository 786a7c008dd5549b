package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/go-dealer-admin/agencies"
	"github.com/agencydesk/go-dealer-admin/agencies/agenciesfakes"
	"github.com/agencydesk/go-dealer-admin/appconfig"
	"github.com/agencydesk/go-dealer-admin/appconfig/appconfigfakes"
	"github.com/agencydesk/go-dealer-admin/appointments"
	"github.com/agencydesk/go-dealer-admin/backend"
	"github.com/agencydesk/go-dealer-admin/cars"
	"github.com/agencydesk/go-dealer-admin/conversations"
	"github.com/agencydesk/go-dealer-admin/customers"
	"github.com/agencydesk/go-dealer-admin/files"
	"github.com/agencydesk/go-dealer-admin/internal/config"
	"github.com/agencydesk/go-dealer-admin/localstore"
	"github.com/agencydesk/go-dealer-admin/metrics"
	"github.com/agencydesk/go-dealer-admin/promotions"
	"github.com/agencydesk/go-dealer-admin/server"
	"github.com/agencydesk/go-dealer-admin/session"
	"github.com/agencydesk/go-dealer-admin/uploads"
	"github.com/agencydesk/go-dealer-admin/uploads/uploadsfakes"
)

// fakeWorkspaceBackend satisfies server.Backend with canned responses and
// counts the list fetches the cached views issue.
type fakeWorkspaceBackend struct {
	lock          sync.Mutex
	carListCalls  int
	fileListCalls int
	deletedFiles  []string
}

var _ server.Backend = (*fakeWorkspaceBackend)(nil)

func (f *fakeWorkspaceBackend) CarListCalls() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.carListCalls
}

func (f *fakeWorkspaceBackend) FileListCalls() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.fileListCalls
}

func (f *fakeWorkspaceBackend) DeletedFiles() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	out := make([]string, len(f.deletedFiles))
	copy(out, f.deletedFiles)
	return out
}

func (f *fakeWorkspaceBackend) ListCars(ctx context.Context, agencyID string) ([]cars.Car, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.carListCalls++
	return nil, nil
}

func (f *fakeWorkspaceBackend) CreateCar(ctx context.Context, input cars.CarInput) (cars.Car, error) {
	return cars.Car{}, nil
}

func (f *fakeWorkspaceBackend) UpdateCar(ctx context.Context, id string, input cars.CarInput) (cars.Car, error) {
	return cars.Car{}, nil
}

func (f *fakeWorkspaceBackend) DeleteCar(ctx context.Context, id string) error { return nil }

func (f *fakeWorkspaceBackend) SetCarAvailability(ctx context.Context, id string, available bool) (cars.Car, error) {
	return cars.Car{}, nil
}

func (f *fakeWorkspaceBackend) ListCustomers(ctx context.Context, agencyID string) ([]customers.Customer, error) {
	return nil, nil
}

func (f *fakeWorkspaceBackend) CreateCustomer(ctx context.Context, input customers.CustomerInput) (customers.Customer, error) {
	return customers.Customer{}, nil
}

func (f *fakeWorkspaceBackend) UpdateCustomer(ctx context.Context, id string, input customers.CustomerInput) (customers.Customer, error) {
	return customers.Customer{}, nil
}

func (f *fakeWorkspaceBackend) DeleteCustomer(ctx context.Context, id string) error { return nil }

func (f *fakeWorkspaceBackend) ListAppointments(ctx context.Context, agencyID string) ([]appointments.Appointment, error) {
	return nil, nil
}

func (f *fakeWorkspaceBackend) CreateAppointment(ctx context.Context, input appointments.AppointmentInput) (appointments.Appointment, error) {
	return appointments.Appointment{}, nil
}

func (f *fakeWorkspaceBackend) SetAppointmentStatus(ctx context.Context, id string, status appointments.Status) (appointments.Appointment, error) {
	return appointments.Appointment{}, nil
}

func (f *fakeWorkspaceBackend) ListPromotions(ctx context.Context, agencyID string) ([]promotions.Promotion, error) {
	return nil, nil
}

func (f *fakeWorkspaceBackend) CreatePromotion(ctx context.Context, input promotions.PromotionInput) (promotions.Promotion, error) {
	return promotions.Promotion{}, nil
}

func (f *fakeWorkspaceBackend) UpdatePromotion(ctx context.Context, id string, input promotions.PromotionInput) (promotions.Promotion, error) {
	return promotions.Promotion{}, nil
}

func (f *fakeWorkspaceBackend) DeletePromotion(ctx context.Context, id string) error { return nil }

func (f *fakeWorkspaceBackend) ListConversations(ctx context.Context, agencyID string) ([]conversations.Conversation, error) {
	return nil, nil
}

func (f *fakeWorkspaceBackend) ListMessages(ctx context.Context, conversationID string) ([]conversations.Message, error) {
	return nil, nil
}

func (f *fakeWorkspaceBackend) DeleteConversation(ctx context.Context, id string) error { return nil }

func (f *fakeWorkspaceBackend) ListFiles(ctx context.Context, agencyID string) ([]files.MediaFile, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.fileListCalls++
	return nil, nil
}

func (f *fakeWorkspaceBackend) DeleteFile(ctx context.Context, id string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.deletedFiles = append(f.deletedFiles, id)
	return nil
}

func (f *fakeWorkspaceBackend) DashboardMetrics(ctx context.Context, agencyID string) (metrics.Metrics, error) {
	return metrics.Metrics{}, nil
}

func (f *fakeWorkspaceBackend) TestChat(ctx context.Context, agencyID, message, conversationID string) (backend.TestChatReply, error) {
	return backend.TestChatReply{}, nil
}

// fakeAuthAPI accepts any credentials.
type fakeAuthAPI struct{}

var _ session.API = fakeAuthAPI{}

func (fakeAuthAPI) Login(ctx context.Context, email, password string) (session.Session, error) {
	return session.Session{Token: "token-1", User: session.User{ID: "u1", Email: email, Name: "Admin"}}, nil
}

func (fakeAuthAPI) RequestPasswordReset(ctx context.Context, email string) error { return nil }

func (fakeAuthAPI) ResetPassword(ctx context.Context, token, newPassword string) error { return nil }

func (fakeAuthAPI) UpdateProfile(ctx context.Context, name, email string) (session.User, error) {
	return session.User{Name: name, Email: email}, nil
}

func (fakeAuthAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return nil
}

// newTestServer builds a fully wired server against in-memory fakes, logs
// in through the login route and returns the browser session cookie.
func newTestServer(t *testing.T) (*server.Server, *fakeWorkspaceBackend, *http.Cookie) {
	t.Helper()
	t.Setenv("ENV", "TEST")

	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	logger := zerolog.Nop()
	sessions := session.NewStore(fakeAuthAPI{}, store, logger)
	registry := agencies.NewRegistry(
		agenciesfakes.NewFakeAPI(agencies.Agency{ID: "agency-1", Name: "Norte", IsActive: true}),
		store, sessions, logger)
	theme := server.NewTheme()
	appCfg := appconfig.NewCache(appconfigfakes.NewFakeAPI(), theme, sessions, registry, logger)
	batch := uploads.NewBatch(uploadsfakes.NewFakeAPI(), registry, logger)
	be := &fakeWorkspaceBackend{}

	srv, err := server.New(config.New(), server.Deps{
		Sessions:  sessions,
		Registry:  registry,
		AppConfig: appCfg,
		Theme:     theme,
		Batch:     batch,
		Backend:   be,
		Prefs:     store,
		Log:       logger,
	})
	require.NoError(t, err)

	form := url.Values{"email": {"admin@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, server.RouteLogin, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, server.RouteDashboard, rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return srv, be, cookies[0]
}

func TestFileDeleteHandler(t *testing.T) {
	t.Run("RefreshesAttachmentsAndVehicleLists", func(t *testing.T) {
		srv, be, cookie := newTestServer(t)
		filesBefore := be.FileListCalls()
		carsBefore := be.CarListCalls()

		req := httptest.NewRequest(http.MethodPost, "/files/file-1/delete", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, server.RouteFiles+"?notice=File+deleted", rec.Header().Get("Location"))
		require.Equal(t, []string{"file-1"}, be.DeletedFiles())

		// A deleted attachment may have been a car's cover image, so both
		// the attachment list and the vehicle list must be re-fetched.
		require.Equal(t, filesBefore+1, be.FileListCalls())
		require.Equal(t, carsBefore+1, be.CarListCalls())
	})

	t.Run("RequiresSession", func(t *testing.T) {
		srv, be, _ := newTestServer(t)
		deletesBefore := len(be.DeletedFiles())

		req := httptest.NewRequest(http.MethodPost, "/files/file-1/delete", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.True(t, strings.HasPrefix(rec.Header().Get("Location"), server.RouteLogin))
		require.Len(t, be.DeletedFiles(), deletesBefore)
	})
}

func TestWhatsAppGuideHandler(t *testing.T) {
	srv, _, cookie := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, server.RouteWhatsAppGuide, nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "WhatsApp Cloud API")
}
