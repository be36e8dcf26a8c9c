package initializers

import (
	"context"
	"nexora-hcm/config"
	"nexora-hcm/fiberlog"
	"nexora-hcm/lib/analytics"
	"nexora-hcm/lib/application"
	"nexora-hcm/lib/candidate"
	"nexora-hcm/lib/employee"
	"nexora-hcm/lib/feedback"
	"nexora-hcm/lib/job"
	"nexora-hcm/lib/notification"
	notificationcleanupworker "nexora-hcm/lib/notification/cleanup-worker"
	"nexora-hcm/lib/payroll"
	"nexora-hcm/lib/users"
	connectionhub "nexora-hcm/lib/ws/hub/connection-hub"
	"time"

	"gorm.io/gorm"
)

var LoggerConfig *fiberlog.Config

type Services struct {
	DB           *gorm.DB
	Hub          connectionhub.Provider
	Candidate    candidate.Provider
	Job          job.Provider
	Application  application.Provider
	Feedback     feedback.Provider
	Notification notification.Provider
	Analytics    analytics.Provider
	Users        users.Provider
	Employee     employee.Provider
	Payroll      payroll.Provider
}

func InitAllServices(ctx context.Context) *Services {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.Log.Level, config.Conf.Log.RequestLevel)
	conn := InitDBConnection()
	fileStorage := InitS3(ctx)
	mailer := InitSmtp()
	hub := connectionhub.NewInstance()

	notificationHandler := notification.NewHandler(conn, hub, config.Conf.Notification.ListLimit)
	services := &Services{
		DB:           conn,
		Hub:          hub,
		Candidate:    candidate.NewHandler(conn, fileStorage),
		Job:          job.NewHandler(conn),
		Application:  application.NewHandler(conn, notificationHandler, mailer),
		Feedback:     feedback.NewHandler(conn),
		Notification: notificationHandler,
		Analytics:    analytics.NewHandler(conn),
		Users:        users.NewHandler(conn),
		Employee:     employee.NewHandler(conn),
		Payroll:      payroll.NewHandler(conn),
	}
	initWorkers(ctx, services)
	return services
}

func initWorkers(ctx context.Context, services *Services) {
	// Задача очистки устаревших событий
	notificationcleanupworker.StartWorker(ctx,
		services.Notification,
		time.Duration(config.Conf.Notification.RetentionDays)*24*time.Hour,
		time.Duration(config.Conf.Notification.CleanupIntervalMinutes)*time.Minute,
	)
}
