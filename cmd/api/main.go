package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/config"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/fixtures"
	appHTTP "github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/cache"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/jwt"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/repository/postgresql"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/repository/sqlite"
	absenceService "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/absence"
	serviceAuth "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/auth"
	dashboardService "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/dashboard"
	employeeService "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/employee"
	punchService "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/punch"
	timesheetService "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/timesheet"
	"golang.org/x/crypto/bcrypt"
	gormLogger "gorm.io/gorm/logger"
)

const version = "v1.0.0"

type repositories struct {
	employees employee.EmployeeRepository
	punches   punch.PunchRepository
	absences  absence.AbsenceRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "zeiterfassung"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Error("Error connecting to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	loc := cfg.Location()
	shiftCache, err := cache.New[[]timesheet.DayShift](cfg.Cache.Size)
	if err != nil {
		logger.Error("Error creating view cache", "error", err)
		os.Exit(1)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	timesheetSvc := timesheetService.NewTimesheetService(repos.punches, repos.employees, shiftCache, cfg.Accounting, loc)
	punchSvc := punchService.NewPunchService(repos.punches, repos.employees, timesheetSvc, loc)
	absenceSvc := absenceService.NewAbsenceService(repos.absences, repos.employees, cfg.Accounting)
	employeeSvc := employeeService.NewEmployeeService(repos.employees)
	authSvc := serviceAuth.NewAuthService(repos.employees, JWTService)
	dashboardSvc := dashboardService.NewDashboardService(repos.employees, repos.absences, timesheetSvc, cfg.Accounting, loc)

	if cfg.App.SeedDemoData {
		seeder := &fixtures.Seeder{
			Employees:  repos.employees,
			Punches:    repos.punches,
			Absences:   repos.absences,
			Location:   loc,
			BcryptCost: bcrypt.DefaultCost,
		}
		if _, err := seeder.Seed(ctx, time.Now()); err != nil {
			logger.Error("Error seeding demo data", "error", err)
			os.Exit(1)
		}
	}

	router := appHTTP.NewRouter(logger, cfg.App.AllowedOrigins, JWTService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc, dashboardSvc),
		Punch:     appHTTP.NewPunchHandler(punchSvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc),
		Absence:   appHTTP.NewAbsenceHandler(absenceSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}
	}()

	logger.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver, "timezone", loc.String())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return repositories{}, err
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return repositories{}, fmt.Errorf("failed to migrate: %w", err)
		}
		return repositories{
			employees: postgresql.NewEmployeeRepository(db),
			punches:   postgresql.NewPunchRepository(db),
			absences:  postgresql.NewAbsenceRepository(db),
			close:     db.Close,
		}, nil
	default:
		level := gormLogger.Warn
		if cfg.App.Env == "development" {
			level = gormLogger.Info
		}
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath, level)
		if err != nil {
			return repositories{}, err
		}
		if err := sqlite.Migrate(db); err != nil {
			return repositories{}, fmt.Errorf("failed to migrate: %w", err)
		}
		return repositories{
			employees: sqlite.NewEmployeeRepository(db),
			punches:   sqlite.NewPunchRepository(db),
			absences:  sqlite.NewAbsenceRepository(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			},
		}, nil
	}
}
