package main

import (
	"fmt"
	"net/http"

	"github.com/indra-asistencia/asistencia-backend-go/internal/config"
	appHTTP "github.com/indra-asistencia/asistencia-backend-go/internal/handler/http"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/jwt"
	"github.com/indra-asistencia/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/indra-asistencia/asistencia-backend-go/internal/service/attendance"
	authService "github.com/indra-asistencia/asistencia-backend-go/internal/service/auth"
	justificationService "github.com/indra-asistencia/asistencia-backend-go/internal/service/justification"
	userAdminService "github.com/indra-asistencia/asistencia-backend-go/internal/service/useradmin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txRunner := postgresql.NewTxRunner(db)
	userRepo := postgresql.NewUserRepository(db)
	sessionRepo := postgresql.NewAttendanceRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(txRunner, userRepo, jwtService, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txRunner, sessionRepo, justificationRepo, userRepo)
	justificationSvc := justificationService.NewJustificationService(justificationRepo, userRepo)
	userAdminSvc := userAdminService.NewUserAdminService(userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	justificationHandler := appHTTP.NewJustificationHandler(justificationSvc)
	userHandler := appHTTP.NewUserHandler(userAdminSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.AllowedOrigins,
		authHandler,
		attendanceHandler,
		justificationHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
