package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/config"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
	"github.com/pharmatrack/fieldforce-backend-go/internal/handler/http/middleware"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	targetHandler TargetHandler,
	visitHandler VisitHandler,
	productHandler ProductHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fieldforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/my", leaveHandler.GetMyRequests)
				r.Get("/my/balances", leaveHandler.GetMyBalances)
				r.Get("/my/summary", leaveHandler.MonthSummary)

				// Approver roles only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/pending", leaveHandler.ListPending)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/targets", func(r chi.Router) {
				r.Get("/my", targetHandler.GetMyMonth)
				r.Post("/my/sales", targetHandler.RecordSales)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionTargetSet))
					r.Post("/", targetHandler.SetTarget)
					r.Get("/executive/{id}", targetHandler.ListExecutiveYear)
				})
			})

			r.Route("/visits", func(r chi.Router) {
				r.Post("/", visitHandler.Plan)
				r.Get("/my", visitHandler.GetMyMonth)
				r.Get("/my/compliance", visitHandler.GetMyCompliance)
				r.Post("/{id}/complete", visitHandler.Complete)
				r.Post("/{id}/miss", visitHandler.Miss)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.List)
				r.Get("/{id}", productHandler.Get)
				r.Get("/{id}/promotions", productHandler.ListPromotions)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", productHandler.Create)
					r.Patch("/{id}/active", productHandler.SetActive)
					r.Post("/{id}/promotions", productHandler.CreatePromotion)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/my", dashboardHandler.GetMyOverview)
				r.Get("/executive/{id}", dashboardHandler.GetExecutiveOverview)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/my", employeeHandler.GetMyProfile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
				})
			})
		})
	})
	return r
}
