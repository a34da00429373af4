package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/middleware"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Punch     PunchHandler
	Timesheet TimesheetHandler
	Absence   AbsenceHandler
	Dashboard DashboardHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.Employee.Me)
				r.Get("/overview", h.Employee.MyOverview)
			})

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", h.Punch.List)
				r.Post("/", h.Punch.Clock)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/backfill", h.Punch.Backfill)
					r.Put("/{id}", h.Punch.Correct)
					r.Delete("/{id}", h.Punch.Delete)
				})
			})

			r.Route("/timesheet", func(r chi.Router) {
				r.Get("/balances", h.Timesheet.Balances)
				r.Get("/export", h.Timesheet.Export)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Post("/", h.Absence.Create)
				r.Get("/", h.Absence.List)
				r.Get("/vacation-stats", h.Absence.VacationStats)
				r.Get("/sick-days", h.Absence.SickDays)
				r.Get("/{id}", h.Absence.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", h.Absence.ListPending)
					r.Post("/{id}/decision", h.Absence.Decide)
					r.Delete("/{id}", h.Absence.Delete)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Get("/{id}/overview", h.Employee.Overview)
				})

				r.Get("/dashboard", h.Dashboard.Company)
			})
		})
	})
	return r
}
