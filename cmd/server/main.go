package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/agencydesk/go-dealer-admin/agencies"
	"github.com/agencydesk/go-dealer-admin/appconfig"
	"github.com/agencydesk/go-dealer-admin/backend"
	"github.com/agencydesk/go-dealer-admin/internal/config"
	"github.com/agencydesk/go-dealer-admin/localstore"
	"github.com/agencydesk/go-dealer-admin/server"
	"github.com/agencydesk/go-dealer-admin/session"
	"github.com/agencydesk/go-dealer-admin/uploads"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load() // .env is optional; real env vars win

	c := config.New()
	displayAppname(c.GetAppName())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if c.GetEnv() == "DEV" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	store, err := localstore.Open(c.GetDataFolder())
	if err != nil {
		return fmt.Errorf("localstore.Open: %w", err)
	}

	// The session store needs the backend client and the client needs the
	// session's token; break the cycle with a late-bound token func.
	var sessions *session.Store
	client := backend.New(c.GetBackendURL(), backend.TokenFunc(func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}), logger, backend.WithTimeout(c.GetRequestTimeout()))
	sessions = session.NewStore(client, store, logger)

	registry := agencies.NewRegistry(client, store, sessions, logger)
	theme := server.NewTheme()
	appConfig := appconfig.NewCache(client, theme, sessions, registry, logger)
	batch := uploads.NewBatch(client, registry, logger)

	srv, err := server.New(c, server.Deps{
		Sessions:  sessions,
		Registry:  registry,
		AppConfig: appConfig,
		Theme:     theme,
		Batch:     batch,
		Backend:   client,
		Prefs:     store,
		Log:       logger,
	})
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
