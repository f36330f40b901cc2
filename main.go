package main

import (
	"log"

	"github.com/AlpeshT/event-booking-backend/config"
	"github.com/AlpeshT/event-booking-backend/internal/handler"
	"github.com/AlpeshT/event-booking-backend/internal/middleware"
	"github.com/AlpeshT/event-booking-backend/internal/repository"
	"github.com/AlpeshT/event-booking-backend/internal/service"
	"github.com/AlpeshT/event-booking-backend/pkg/database"
	"github.com/AlpeshT/event-booking-backend/pkg/keylock"
	"github.com/AlpeshT/event-booking-backend/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, lifecycle events disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	txManager := repository.NewTxManager(db)

	// One gate for all admission decisions; disjoint keys run in parallel.
	gate := keylock.New()

	// Services
	eventSvc := service.NewEventService(eventRepo, txManager, publisher)
	attendanceSvc := service.NewAttendanceService(attendeeRepo, attendanceRepo, eventRepo, userRepo, txManager, gate, publisher)
	resourceSvc := service.NewResourceService(resourceRepo, allocationRepo, eventRepo, txManager, gate, publisher)
	reportingSvc := service.NewReportingService(db)
	orgSvc := service.NewOrganizationService(orgRepo)
	userSvc := service.NewUserService(userRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "event-booking-backend"})
	})

	handler.NewEventHandler(eventSvc).RegisterRoutes(e.Group("/api/v1/events"))
	handler.NewResourceHandler(resourceSvc).RegisterRoutes(e)
	handler.NewAttendanceHandler(attendanceSvc).RegisterRoutes(e.Group("/api/v1/attendance"))
	handler.NewReportingHandler(reportingSvc).RegisterRoutes(e.Group("/api/v1/reporting"))
	handler.NewOrganizationHandler(orgSvc).RegisterRoutes(e.Group("/api/v1/organizations"))
	handler.NewUserHandler(userSvc).RegisterRoutes(e.Group("/api/v1/users"))

	log.Printf("Event Booking Backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
