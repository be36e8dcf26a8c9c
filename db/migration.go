package db

import (
	dbmodels "nexora-hcm/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(conn *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := conn.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := conn.AutoMigrate(&dbmodels.Candidate{}, &dbmodels.Job{}, &dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры воронки найма")
	}
	if err := conn.AutoMigrate(&dbmodels.Feedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Feedback")
	}
	if err := conn.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := conn.AutoMigrate(&dbmodels.Employee{}, &dbmodels.PayrollRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
