package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencydesk/go-dealer-admin/agencies"
	"github.com/agencydesk/go-dealer-admin/appconfig"
	"github.com/agencydesk/go-dealer-admin/appointments"
	"github.com/agencydesk/go-dealer-admin/backend"
	"github.com/agencydesk/go-dealer-admin/cars"
	"github.com/agencydesk/go-dealer-admin/conversations"
	"github.com/agencydesk/go-dealer-admin/customers"
	"github.com/agencydesk/go-dealer-admin/files"
	"github.com/agencydesk/go-dealer-admin/internal/config"
	"github.com/agencydesk/go-dealer-admin/listview"
	"github.com/agencydesk/go-dealer-admin/metrics"
	"github.com/agencydesk/go-dealer-admin/promotions"
	"github.com/agencydesk/go-dealer-admin/session"
	"github.com/agencydesk/go-dealer-admin/uploads"
)

const webSessionTTL = 12 * time.Hour

// Backend is the slice of the REST client the handlers call directly.
// Entity list reads go through the cached views instead.
type Backend interface {
	cars.API
	customers.API
	appointments.API
	promotions.API
	conversations.API
	files.API
	metrics.API
	TestChat(ctx context.Context, agencyID, message, conversationID string) (backend.TestChatReply, error)
}

// PreferenceStore persists the light/dark preference across restarts.
// Implemented by the localstore package.
type PreferenceStore interface {
	ThemePreference() (string, bool)
	SaveThemePreference(theme string) error
}

// Deps carries the wired application state the server renders.
type Deps struct {
	Sessions  *session.Store
	Registry  *agencies.Registry
	AppConfig *appconfig.Cache
	Theme     *Theme
	Batch     *uploads.Batch
	Backend   Backend
	Prefs     PreferenceStore
	Log       zerolog.Logger
}

// viewSet holds the per-entity cached lists. Every view follows the active
// agency; a mutation handler reloads the views it touched.
type viewSet struct {
	Cars          *listview.View[cars.Car]
	Customers     *listview.View[customers.Customer]
	Appointments  *listview.View[appointments.Appointment]
	Promotions    *listview.View[promotions.Promotion]
	Conversations *listview.View[conversations.Conversation]
	Files         *listview.View[files.MediaFile]
}

type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	config config.Config
	log    zerolog.Logger

	sessions    *session.Store
	registry    *agencies.Registry
	appConfig   *appconfig.Cache
	theme       *Theme
	batch       *uploads.Batch
	backend     Backend
	prefs       PreferenceStore
	views       viewSet
	webSessions *webSessions
}

func New(cfg config.Config, deps Deps) (*Server, error) {
	if deps.Backend == nil {
		return nil, fmt.Errorf("[Server New] backend client is required")
	}

	s := &Server{
		env:         cfg.GetEnv(),
		mux:         http.NewServeMux(),
		config:      cfg,
		log:         deps.Log.With().Str("component", "server").Logger(),
		sessions:    deps.Sessions,
		registry:    deps.Registry,
		appConfig:   deps.AppConfig,
		theme:       deps.Theme,
		batch:       deps.Batch,
		backend:     deps.Backend,
		prefs:       deps.Prefs,
		webSessions: newWebSessions(webSessionTTL),
	}

	s.views = viewSet{
		Cars:          listview.New("cars", deps.Registry, deps.Backend.ListCars, deps.Log),
		Customers:     listview.New("customers", deps.Registry, deps.Backend.ListCustomers, deps.Log),
		Appointments:  listview.New("appointments", deps.Registry, deps.Backend.ListAppointments, deps.Log),
		Promotions:    listview.New("promotions", deps.Registry, deps.Backend.ListPromotions, deps.Log),
		Conversations: listview.New("conversations", deps.Registry, deps.Backend.ListConversations, deps.Log),
		Files:         listview.New("files", deps.Registry, deps.Backend.ListFiles, deps.Log),
	}
	s.wireSubscriptions()

	// A restored session skips the login flow, so pull the workspace state now.
	if deps.Sessions.Authenticated() {
		ctx := context.Background()
		if err := deps.Registry.Refresh(ctx); err != nil {
			s.log.Err(err).Msg("initial agency refresh failed")
		}
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

// wireSubscriptions connects the agency registry to everything that follows
// the active selection, and the upload batch to the views it invalidates.
func (s *Server) wireSubscriptions() {
	s.registry.Subscribe(s.appConfig.OnActiveAgencyChanged)
	s.registry.Subscribe(s.views.Cars.OnActiveAgencyChanged)
	s.registry.Subscribe(s.views.Customers.OnActiveAgencyChanged)
	s.registry.Subscribe(s.views.Appointments.OnActiveAgencyChanged)
	s.registry.Subscribe(s.views.Promotions.OnActiveAgencyChanged)
	s.registry.Subscribe(s.views.Conversations.OnActiveAgencyChanged)
	s.registry.Subscribe(s.views.Files.OnActiveAgencyChanged)

	s.batch.OnUploaded(func(category files.Category) {
		ctx := context.Background()
		s.views.Files.Reload(ctx)
		if category == files.CategoryCar {
			// Car uploads change vehicle image lists too.
			s.views.Cars.Reload(ctx)
		}
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
