package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/laupm3/workforce-backend-go/internal/config"
	appHTTP "github.com/laupm3/workforce-backend-go/internal/handler/http"
	"github.com/laupm3/workforce-backend-go/internal/pkg/cron"
	"github.com/laupm3/workforce-backend-go/internal/pkg/database"
	"github.com/laupm3/workforce-backend-go/internal/pkg/events"
	"github.com/laupm3/workforce-backend-go/internal/pkg/jwt"
	"github.com/laupm3/workforce-backend-go/internal/pkg/lock"
	"github.com/laupm3/workforce-backend-go/internal/repository/postgresql"
	absenceService "github.com/laupm3/workforce-backend-go/internal/service/absence"
	attendanceService "github.com/laupm3/workforce-backend-go/internal/service/attendance"
	scheduleService "github.com/laupm3/workforce-backend-go/internal/service/schedule"
	shiftService "github.com/laupm3/workforce-backend-go/internal/service/shift"
	templateService "github.com/laupm3/workforce-backend-go/internal/service/template"
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

	locker, err := lock.NewRedisLock(cfg.RedisAddr())
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer locker.Close()

	shiftRepo := postgresql.NewShiftRepository(db)
	modalityRepo := postgresql.NewModalityRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	instanceRepo := postgresql.NewInstanceRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	noteRepo := postgresql.NewNoteRepository(db)
	contractRepo := postgresql.NewContractRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := events.NewHub()

	shiftSvc := shiftService.NewShiftService(db, shiftRepo, modalityRepo)
	templateSvc := templateService.NewTemplateService(db, templateRepo, shiftRepo, modalityRepo, hub)
	scheduleSvc := scheduleService.NewScheduleService(
		db,
		instanceRepo,
		templateRepo,
		shiftRepo,
		contractRepo,
		sessionRepo,
		noteRepo,
		hub,
	)
	attendanceSvc := attendanceService.NewAttendanceService(db, sessionRepo, instanceRepo, locker, hub)
	absenceSvc := absenceService.NewAbsenceService(db, noteRepo, instanceRepo, sessionRepo, hub)

	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	templateHandler := appHTTP.NewTemplateHandler(templateSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)

	scheduler := cron.NewScheduler()
	cron.NewAbsenceJobs(instanceRepo, hub).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		shiftHandler,
		templateHandler,
		scheduleHandler,
		attendanceHandler,
		absenceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
