package router

import (
	"context"
	"errors"
	"net/http"

	_ "spy-cat-agency/docs" // registra el spec de swagger
	mem "spy-cat-agency/internal/adapters/storage/memory"
	"spy-cat-agency/internal/domain/agency"
	"spy-cat-agency/internal/middleware"
	"spy-cat-agency/internal/platform/logger"
	"spy-cat-agency/internal/platform/metrics"
	"spy-cat-agency/internal/ports/breeds"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene nil, in-memory.
	Store agency.Store

	// Catálogo de razas. nil = toda raza se rechaza (fail-closed).
	Breeds breeds.Catalog

	Logger  logger.Logger    // nil = Nop
	Metrics *metrics.Metrics // nil = sin /metrics

	CORSOrigins []string
}

var errNoCatalog = errors.New("breed catalog not configured")

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	catalog := opts.Breeds
	if catalog == nil {
		catalog = breeds.CatalogFunc(func(context.Context, string) (bool, error) {
			return false, errNoCatalog
		})
	}
	if opts.Metrics != nil {
		catalog = opts.Metrics.InstrumentCatalog(catalog)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics(opts.Metrics))
	// Adentro de AccessLog y Metrics: el 500 de un panic se loguea y se cuenta.
	r.Use(middleware.Recover(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to the SpyCat API!"}`))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas de dominio
	svc := agency.NewService(store, catalog, log)
	agency.RegisterRoutes(r, svc)

	return r
}
