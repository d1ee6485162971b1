package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "animal-registry/docs"
	mem "animal-registry/internal/adapters/storage/memory"
	pg "animal-registry/internal/adapters/storage/postgres"
	"animal-registry/internal/adapters/storage/redisstore"
	"animal-registry/internal/domain/animals"
	"animal-registry/internal/domain/drafts"
	"animal-registry/internal/domain/events"
	"animal-registry/internal/middleware"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, los borradores viven en Redis.
	Redis    *redis.Client
	DraftTTL time.Duration

	Publisher events.Publisher // nil => no publica
	Logger    logger.Logger    // nil => Nop

	// Catálogo vacío => events.DefaultCatalog().
	Catalog events.Catalog
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		animalRepo animals.Repository
		eventRepo  events.Repository
		draftStore drafts.Store
	)

	if opts.DB != nil {
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
	} else {
		animalRepo = mem.NewAnimalRepo()
		eventRepo = mem.NewEventRepo()
	}

	ttl := opts.DraftTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if opts.Redis != nil {
		draftStore = redisstore.NewDraftStore(opts.Redis, ttl)
	} else {
		draftStore = mem.NewDraftStore(ttl)
	}

	catalog := opts.Catalog
	if len(catalog.Types) == 0 || len(catalog.Categories) == 0 {
		catalog = events.DefaultCatalog().WithOverrides(catalog.Types, catalog.Categories)
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	eventsSvc := events.NewService(eventRepo, catalog, opts.Publisher, log)
	draftsSvc := drafts.NewService(draftStore, eventsSvc, log)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	events.RegisterRoutes(r, eventsSvc, animalsSvc)
	drafts.RegisterRoutes(r, draftsSvc, animalsSvc)

	return r
}
