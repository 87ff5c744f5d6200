package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/tribeworks/loanflow/internal/api/schema"
	"github.com/tribeworks/loanflow/internal/api/session"
	"github.com/tribeworks/loanflow/internal/api/session/storage/inmem"
	"github.com/tribeworks/loanflow/internal/config"
	"github.com/tribeworks/loanflow/internal/process"
	"github.com/tribeworks/loanflow/internal/storage"
	"github.com/tribeworks/loanflow/internal/task"
)

// Service represents the loan API service
type Service struct {
	server *http.Server

	Config *config.Config

	Storage storage.Driver

	Engine *process.Engine

	sessionStorage session.Storage
	sessionSweep   *task.RepeatingTask

	writer *schema.Writer
}

// Initialize builds the HTTP handler of the loan API and prepares the session storage.
// It is called by Startup and directly by tests that serve the handler themselves.
func (service *Service) Initialize() (http.Handler, error) {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the loan API experienced an unexpected error")
		},
	}

	// Create the session storage and schedule the expired-session sweep
	sessionStorage, err := inmem.New()
	if err != nil {
		return nil, err
	}
	service.sessionStorage = sessionStorage
	service.sessionSweep = task.NewRepeating(func() {
		n, err := sessionStorage.TerminateExpired(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("could not terminate expired sessions")
		} else if n > 0 {
			log.Debug().Int("amount", n).Msg("terminated expired sessions")
		}
	}, time.Minute)
	service.sessionSweep.Start()

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{service.Config.APIAllowedOrigin},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the authentication endpoint
	router.Post("/api/auth/login", service.EndpointLogin)

	// Register the loan process endpoints
	router.Post("/api/loans/start", withMiddlewares(service.EndpointStartLoanProcess, service.MiddlewareVerifyToken))
	router.Get("/api/loans", withMiddlewares(service.EndpointGetLoanApplications, service.MiddlewareVerifyToken))

	// Register the liveness probe
	router.Get("/actuator/health", service.EndpointHealth)

	return router, nil
}

// Startup starts up the loan API.
// Unexpected server errors are reported through the given channel.
func (service *Service) Startup(errs chan<- error) error {
	handler, err := service.Initialize()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    service.Config.APIListenAddress,
		Handler: handler,
	}
	service.server = server
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()
	return nil
}

// Shutdown shuts down the loan API
func (service *Service) Shutdown() {
	if service.sessionSweep != nil {
		service.sessionSweep.Stop(false)
		service.sessionSweep = nil
	}
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

func withMiddlewares(end http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	final := end
	for i := len(middlewares); i > 0; i-- {
		final = middlewares[i-1](final)
	}
	return final
}
