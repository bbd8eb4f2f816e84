package http

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/postgres"
	"hotel/internal/jobs"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"hotel/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 10 * time.Second

type HTTP struct {
	Config    *config.Config
	Router    router.Router
	Scheduler *jobs.Scheduler
	Publisher kafka.Publisher
	DB        *postgres.Connection

	state  atomic.Int32
	mux    *chi.Mux
	server *http.Server
	once   sync.Once
}

func New(cfg *config.Config, r router.Router, scheduler *jobs.Scheduler, publisher kafka.Publisher, db *postgres.Connection) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		Scheduler: scheduler,
		Publisher: publisher,
		DB:        db,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	if err := h.Scheduler.Start(); err != nil {
		log.Error().Err(err).Msg("Failed to start scheduler")
	}

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP serves a single request without listening, for serverless deployments.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.Router.SetupRoutes(h.mux)

	h.mux.Get("/health", h.health)
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(context.Background())

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.shutdown(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(ctx context.Context) {
	h.Scheduler.Stop(ctx)

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server")
		}
	}

	if err := h.Publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close event publisher")
	}

	if h.DB != nil {
		if err := h.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connections")
		}
	}
}
