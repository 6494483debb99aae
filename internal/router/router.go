package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "petclinic-api/internal/adapters/storage/memory"
	pg "petclinic-api/internal/adapters/storage/postgres"
	"petclinic-api/internal/domain/owners"
	"petclinic-api/internal/domain/pettypes"
	"petclinic-api/internal/domain/specialties"
	"petclinic-api/internal/domain/vets"
	"petclinic-api/internal/domain/vetspecialties"
	"petclinic-api/internal/domain/visits"
	"petclinic-api/internal/middleware"
	"petclinic-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	lg := opts.Log
	if lg == nil {
		lg = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(lg))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		ownersRepo         owners.Repository
		petTypesRepo       pettypes.Repository
		specialtiesRepo    specialties.Repository
		vetsRepo           vets.Repository
		vetSpecialtiesRepo vetspecialties.Repository
		visitsRepo         visits.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				lg.Warn("postgres unavailable, using in-memory repos", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		ownersRepo = pg.NewOwnersRepo(db)
		petTypesRepo = pg.NewPetTypesRepo(db)
		specialtiesRepo = pg.NewSpecialtiesRepo(db)
		vetsRepo = pg.NewVetsRepo(db)
		vetSpecialtiesRepo = pg.NewVetSpecialtiesRepo(db)
		visitsRepo = pg.NewVisitsRepo(db)
	} else {
		ownersRepo = mem.NewOwnersRepo()
		petTypesRepo = mem.NewPetTypesRepo()
		specialtiesRepo = mem.NewSpecialtiesRepo()
		vetsRepo = mem.NewVetsRepo()
		vetSpecialtiesRepo = mem.NewVetSpecialtiesRepo()
		visitsRepo = mem.NewVisitsRepo()
	}

	// Rutas por módulo
	owners.RegisterRoutes(r, owners.NewService(ownersRepo))
	pettypes.RegisterRoutes(r, pettypes.NewService(petTypesRepo))
	specialties.RegisterRoutes(r, specialties.NewService(specialtiesRepo))
	vets.RegisterRoutes(r, vets.NewService(vetsRepo))
	vetspecialties.RegisterRoutes(r, vetspecialties.NewService(vetSpecialtiesRepo))
	visits.RegisterRoutes(r, visits.NewService(visitsRepo))

	return r
}
