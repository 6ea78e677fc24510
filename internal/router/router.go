package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "salvamed/internal/adapters/storage/memory"
	pg "salvamed/internal/adapters/storage/postgres"
	"salvamed/internal/domain/catalog"
	"salvamed/internal/domain/dosage"
	"salvamed/internal/domain/magnesium"
	"salvamed/internal/domain/potassium"
	"salvamed/internal/domain/sodium"
	"salvamed/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "salvamed/docs" // registro del spec swagger
)

type Options struct {
	// Opcional: si viene, el catálogo sale de Postgres. Si no, in-memory.
	DB *sql.DB

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				opts.Logger.Warn().Err(err).Msg("postgres unavailable, falling back to in-memory catalog")
			}
		}
	}

	var catalogRepo catalog.Repository
	if db != nil {
		catalogRepo = pg.NewCatalogRepo(db)
	} else {
		ref, err := catalog.Default()
		if err != nil {
			// Catálogo compilado inconsistente: bug de seed, frenar fuerte.
			opts.Logger.Fatal().Err(err).Msg("invalid built-in catalog")
		}
		catalogRepo = mem.NewCatalogRepo(ref)
	}

	// Services por módulo
	catalogSvc := catalog.NewService(catalogRepo)
	dosageSvc := dosage.NewService()
	sodiumSvc := sodium.NewService()
	potassiumSvc := potassium.NewService()
	magnesiumSvc := magnesium.NewService()

	// Rutas por módulo
	catalog.RegisterRoutes(r, catalogSvc)
	dosage.RegisterRoutes(r, dosageSvc, catalogSvc)
	sodium.RegisterRoutes(r, sodiumSvc)
	potassium.RegisterRoutes(r, potassiumSvc)
	magnesium.RegisterRoutes(r, magnesiumSvc)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	))

	return r
}
