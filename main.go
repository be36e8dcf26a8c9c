package main

import (
	"context"
	"fmt"
	"nexora-hcm/config"
	apiv1 "nexora-hcm/controllers/v1"
	"nexora-hcm/db"
	_ "nexora-hcm/docs"
	"nexora-hcm/fiberlog"
	"nexora-hcm/initializers"
	"nexora-hcm/lib/ws"
	"nexora-hcm/middleware"
	"nexora-hcm/models"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

const dashboardPrefix = "/api/v1/dashboard"

// @title Nexora HCM API
// @version 1.0
// @BasePath /
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	app.Mount("/api/v1", apiV1)

	//подбор
	recruitment := fiber.New()
	apiV1.Mount("/recruitment", recruitment)
	recruitment.Use(middleware.AuthorizationRequired())
	recruitment.Use(middleware.RoleRequired(models.UserRoleAdmin))
	apiv1.InitCandidateApiRouters(recruitment, services.Candidate)
	apiv1.InitJobApiRouters(recruitment, services.Job)
	apiv1.InitApplicationApiRouters(recruitment, services.Application, services.Feedback)
	apiv1.InitFeedbackApiRouters(recruitment, services.Feedback)
	apiv1.InitNotificationApiRouters(recruitment, services.Notification)
	apiv1.InitAnalyticsApiRouters(recruitment, services.Analytics)
	apiv1.InitResumeApiRouters(recruitment)

	//кадры
	hr := fiber.New()
	apiV1.Mount("/hr", hr)
	hr.Use(middleware.AuthorizationRequired())
	hr.Use(middleware.RoleRequired(models.UserRoleAdmin))
	apiv1.InitUserApiRouters(hr, services.Users)
	apiv1.InitEmployeeApiRouters(hr, services.Employee, services.Payroll)
	apiv1.InitPayrollApiRouters(hr, services.Payroll)

	//дашборды
	dashboard := fiber.New()
	apiV1.Mount("/dashboard", dashboard)
	dashboard.Use(middleware.AuthorizationRequired())
	apiv1.InitDashboardApiRouters(dashboard, dashboardPrefix, apiv1.DashboardHandlers{
		Analytics:    services.Analytics,
		Notification: services.Notification,
		Employee:     services.Employee,
		Payroll:      services.Payroll,
	})

	//события
	wsApp := fiber.New()
	apiV1.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	wsApp.Use(middleware.RoleRequired(models.UserRoleAdmin))
	ws.InitWs(wsApp, services.Hub)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		if err := db.Close(services.DB); err != nil {
			log.WithError(err).Error("Ошибка закрытия подключения к БД")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
