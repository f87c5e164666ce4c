package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/db"
	"hrdesk/internal/transport/http/api"
	attendancehandler "hrdesk/internal/transport/http/handlers/attendance"
	employeeshandler "hrdesk/internal/transport/http/handlers/employees"
	leavehandler "hrdesk/internal/transport/http/handlers/leave"
	payrollhandler "hrdesk/internal/transport/http/handlers/payroll"
	reportshandler "hrdesk/internal/transport/http/handlers/reports"
	"hrdesk/internal/transport/http/middleware"
)

type App struct {
	Config    config.Config
	Router    http.Handler
	pool      *pgxpool.Pool
	startedAt time.Time
}

// New assembles the application. With DATABASE_URL set the stores run on
// Postgres; without it everything runs on the in-memory tables, which is the
// mode the test suite and local demos use.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg, startedAt: time.Now()}

	var (
		employeeStore   employee.Store
		attendanceStore attendance.Store
		leaveStore      leave.Store
		payrollStore    payroll.Store
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.pool = pool

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
				pool.Close()
				return nil, err
			}
		}

		employeeStore = employee.NewPGStore(pool)
		attendanceStore = attendance.NewPGStore(pool)
		leaveStore = leave.NewPGStore(pool)
		payrollStore = payroll.NewPGStore(pool)
	} else {
		slog.Warn("DATABASE_URL not set, using in-memory stores")
		employeeStore = employee.NewMemoryStore()
		attendanceStore = attendance.NewMemoryStore()
		leaveStore = leave.NewMemoryStore()
		payrollStore = payroll.NewMemoryStore()
	}

	employeeService := employee.NewService(employeeStore)
	attendanceService := attendance.NewService(attendanceStore)
	leaveService := leave.NewService(leaveStore, cfg.ReviewerName)
	payrollService := payroll.NewService(payrollStore)
	reportsService := reports.NewService(employeeStore, attendanceStore, leaveStore, payrollStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", app.handleHealth)

		employeeshandler.NewHandler(employeeService).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceService).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	app.Router = router
	return app, nil
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      int(time.Since(a.startedAt).Seconds()),
		"environment": a.Config.Environment,
	})
}

// Run loads configuration, assembles the app and serves it until the process
// exits.
func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	slog.Info("server listening", "addr", cfg.Addr, "environment", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// spaHandler serves the built frontend, falling back to index.html for client
// side routes.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
