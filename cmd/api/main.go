package main

import (
	"fmt"
	"net/http"

	"github.com/pharmatrack/fieldforce-backend-go/internal/config"
	appHTTP "github.com/pharmatrack/fieldforce-backend-go/internal/handler/http"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/jwt"
	"github.com/pharmatrack/fieldforce-backend-go/internal/repository/postgresql"
	authService "github.com/pharmatrack/fieldforce-backend-go/internal/service/auth"
	dashboardService "github.com/pharmatrack/fieldforce-backend-go/internal/service/dashboard"
	employeeService "github.com/pharmatrack/fieldforce-backend-go/internal/service/employee"
	leaveService "github.com/pharmatrack/fieldforce-backend-go/internal/service/leave"
	productService "github.com/pharmatrack/fieldforce-backend-go/internal/service/product"
	targetService "github.com/pharmatrack/fieldforce-backend-go/internal/service/target"
	visitService "github.com/pharmatrack/fieldforce-backend-go/internal/service/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	targetRepo := postgresql.NewTargetRepository(db)
	visitRepo := postgresql.NewVisitRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	promotionRepo := postgresql.NewPromotionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, employeeRepo, leaveBalanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo)
	targetSvc := targetService.NewTargetService(targetRepo)
	visitSvc := visitService.NewVisitService(visitRepo)
	productSvc := productService.NewProductService(productRepo, promotionRepo)
	dashboardSvc := dashboardService.NewDashboardService(targetRepo, leaveRequestRepo, visitRepo, leaveSvc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	targetHandler := appHTTP.NewTargetHandler(targetSvc)
	visitHandler := appHTTP.NewVisitHandler(visitSvc)
	productHandler := appHTTP.NewProductHandler(productSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		leaveHandler,
		targetHandler,
		visitHandler,
		productHandler,
		dashboardHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
