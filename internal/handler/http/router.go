package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/laupm3/workforce-backend-go/internal/handler/http/middleware"
	"github.com/laupm3/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	shiftHandler ShiftHandler,
	templateHandler TemplateHandler,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	absenceHandler AbsenceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/modalities", shiftHandler.ListModalities)

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Get("/{id}", shiftHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", shiftHandler.Create)
					r.Put("/{id}", shiftHandler.Update)
				})
			})

			r.Route("/schedule-templates", func(r chi.Router) {
				r.Get("/", templateHandler.List)
				r.Get("/{id}", templateHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", templateHandler.Create)
					r.Put("/{id}", templateHandler.Update)
					r.Delete("/{id}", templateHandler.Delete)
				})
			})

			r.Route("/schedule-instances", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", scheduleHandler.Generate)
					r.Post("/bulk", scheduleHandler.BulkCreate)
					r.Put("/bulk", scheduleHandler.BulkUpdate)
					r.Delete("/bulk", scheduleHandler.BulkDelete)
				})
			})

			r.Route("/attendance/{employeeId}", func(r chi.Router) {
				r.Post("/action", attendanceHandler.Clock)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/sessions", attendanceHandler.Sessions)
			})

			r.Route("/absence-notes", func(r chi.Router) {
				r.Post("/", absenceHandler.Create)
				r.Get("/{id}", absenceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}", absenceHandler.Resolve)
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
