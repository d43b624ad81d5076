package router

import (
	"database/sql"
	"net/http"

	_ "pet-intake/docs" // registra el documento swagger para /docs

	"pet-intake/internal/adapters/petservice"
	mem "pet-intake/internal/adapters/storage/memory"
	pg "pet-intake/internal/adapters/storage/postgres"
	"pet-intake/internal/domain/intake"
	"pet-intake/internal/domain/submissions"
	"pet-intake/internal/middleware"
	"pet-intake/internal/platform/logger"
	"pet-intake/internal/ports/auth"
	"pet-intake/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, el ledger usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si es nil se usa el creador in-memory (modo dev).
	PetCreator intake.PetCreator

	// Opcional: nil => sin gating por plan.
	Capabilities capabilities.Resolver

	Logger logger.Logger

	CORSAllowedOrigins []string
	DocsEnabled        bool
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
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.CORSAllowedOrigins))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.DocsEnabled {
		r.Get("/docs/*", httpSwagger.WrapHandler)
	}

	var subRepo submissions.Repository
	if opts.DB != nil {
		subRepo = pg.NewSubmissionsRepo(opts.DB)
	} else {
		subRepo = mem.NewSubmissionsRepo()
	}

	creator := opts.PetCreator
	if creator == nil {
		log.Warn("PET_SERVICE_URL not set, using in-memory pet creator", nil)
		creator = petservice.NewMemory()
	}

	// Services por módulo
	subsSvc := submissions.NewService(subRepo)
	intakeSvc := intake.NewService(intake.Deps{
		Creator:      creator,
		Submissions:  subsSvc,
		Capabilities: opts.Capabilities,
		Logger:       log,
	})

	// Rutas por módulo
	intake.RegisterRoutes(r, intakeSvc)
	submissions.RegisterRoutes(r, subsSvc)

	return r
}
