package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "reptile-husbandry/internal/adapters/storage/memory"
	pg "reptile-husbandry/internal/adapters/storage/postgres"
	"reptile-husbandry/internal/domain/animals"
	"reptile-husbandry/internal/domain/carelogs"
	"reptile-husbandry/internal/domain/uploads"
	"reptile-husbandry/internal/middleware"
	"reptile-husbandry/internal/ports/auth"
	"reptile-husbandry/internal/ports/objstore"

	_ "reptile-husbandry/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.TokenVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: bucket externo; si es nil usa el store en memoria.
	ObjectStore objstore.ObjectStore
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		animalRepo  animals.Repository
		careLogRepo carelogs.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		animalRepo = pg.NewAnimalsRepo(db)
		careLogRepo = pg.NewCareLogsRepo(db)
	} else {
		animalRepo = mem.NewAnimalsRepo()
		careLogRepo = mem.NewCareLogsRepo()
	}

	store := opts.ObjectStore
	if store == nil {
		store = mem.NewObjectStore()
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	careLogsSvc := carelogs.NewService(careLogRepo, animalsSvc)
	uploadsSvc := uploads.NewService(store)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	carelogs.RegisterRoutes(r, careLogsSvc)
	uploads.RegisterRoutes(r, uploadsSvc)

	return r
}
