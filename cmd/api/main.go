package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spbu-ops/setoran-backend-go/internal/config"
	appHTTP "github.com/spbu-ops/setoran-backend-go/internal/handler/http"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/cron"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/database"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/jwt"
	"github.com/spbu-ops/setoran-backend-go/internal/repository/postgresql"
	attendanceService "github.com/spbu-ops/setoran-backend-go/internal/service/attendance"
	authService "github.com/spbu-ops/setoran-backend-go/internal/service/auth"
	depositService "github.com/spbu-ops/setoran-backend-go/internal/service/deposit"
	reportService "github.com/spbu-ops/setoran-backend-go/internal/service/report"
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

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	depositRepo := postgresql.NewDepositRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, loc)
	depositSvc := depositService.NewDepositService(depositRepo)
	reportSvc := reportService.NewReportService(depositRepo, attendanceRepo)

	refreshLifetime, err := time.ParseDuration(cfg.JWT.RefreshExpiration)
	if err != nil {
		log.Fatal("Invalid JWT_REFRESH_EXPIRATION_TIME: ", err)
	}
	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(jwtService, refreshLifetime).Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	depositHandler := appHTTP.NewDepositHandler(depositSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		depositHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
