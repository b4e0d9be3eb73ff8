package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"portfolio-api/src/api/controllers"
	handlers "portfolio-api/src/api/handlers"
	"portfolio-api/src/clients/sheets"
	"portfolio-api/src/clients/xlsx"
	"portfolio-api/src/config"
	"portfolio-api/src/repositories"
	"portfolio-api/src/stores"
	"portfolio-api/src/utils"
	aws_handler "portfolio-api/src/utils/aws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router     *chi.Mux
	Handler    *handlers.Handler
	Controller controllers.IController
	Logger     *logrus.Logger
	cfg        *config.Config
}

func NewServer(cfg *config.Config) (*Server, error) {
	logLevel := logrus.InfoLevel
	if cfg.Service.DevelopmentMode {
		logLevel = logrus.DebugLevel
	}
	logger := utils.NewLogger(logLevel)

	store, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	controller := controllers.NewController(store)
	server := &Server{
		Router:     chi.NewRouter(),
		Handler:    handlers.NewHandler(controller, cfg.Service.DevelopmentMode),
		Controller: controller,
		Logger:     logger,
		cfg:        cfg,
	}
	server.InitRoutes()
	return server, nil
}

// buildStore selects the row-store backend. The sheets token may come from
// AWS Secrets Manager instead of the settings file.
func buildStore(cfg *config.Config) (stores.RowStore, error) {
	switch cfg.Store.Backend {
	case config.XLSXBackend:
		client := xlsx.NewClient(cfg.Store.XLSX.Path)
		if err := client.EnsureTables(repositories.TableHeaders()); err != nil {
			return nil, err
		}
		return client, nil
	case config.SheetsBackend:
		token := cfg.Store.Sheets.Token
		if cfg.AWS.TokenSecretID != "" {
			awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
			if err != nil {
				return nil, err
			}
			token, err = awsHandler.SecretManager.GetSecretValue(cfg.AWS.TokenSecretID)
			if err != nil {
				return nil, err
			}
		}
		return sheets.NewClient(cfg, token), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(RequestLogger(s.Logger))
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "x-api-key"},
	}))

	s.Router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		message := fmt.Sprintf("%s %s not found", r.Method, r.URL.Path)
		utils.WriteError(w, utils.NewHTTPError(http.StatusNotFound, utils.KindNotFound, message), false)
	})

	s.Router.Get("/health", handlers.Healthcheck)

	s.Router.Route("/v1", func(r chi.Router) {
		r.Use(APIKeyMiddleware(s.cfg.Service.APIKey))

		// One quota for the whole deployment, not per caller.
		limit := s.cfg.Service.RateLimit
		if limit.Requests > 0 {
			r.Use(httprate.Limit(
				limit.Requests,
				time.Duration(limit.WindowSeconds)*time.Second,
				httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
					return "deployment", nil
				}),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					utils.WriteError(w, utils.NewHTTPError(http.StatusTooManyRequests, utils.KindRateLimited, "request quota exceeded"), false)
				}),
			))
		}

		r.Route("/holdings", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllHoldings)
			r.Post("/", s.Handler.CreateHolding)
			r.Put("/{id}", s.Handler.UpdateHolding)
			r.Delete("/{id}", s.Handler.DeleteHolding)
		})

		r.Get("/ideal-allocation", s.Handler.GetIdealAllocations)

		r.Route("/monthly-growth", func(r chi.Router) {
			r.Get("/", s.Handler.GetMonthlyGrowth)
			r.Post("/", s.Handler.CreateMonthlyGrowth)
		})

		r.Post("/snapshot", s.Handler.RunSnapshot)
		r.Get("/snapshots", s.Handler.GetSnapshots)
		r.Get("/summary", s.Handler.GetSummary)
	})
}

// RunScheduledSnapshot is the cron entrypoint; it reuses the same controller
// path as POST /v1/snapshot.
func (s *Server) RunScheduledSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, s.Logger)

	batch, err := s.Controller.RunSnapshot(ctx)
	if err != nil {
		s.Logger.WithError(err).Error("scheduled snapshot failed")
		return
	}
	s.Logger.WithField("sectors", len(batch)).Info("scheduled snapshot persisted")
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
