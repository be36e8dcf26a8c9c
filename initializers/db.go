package initializers

import (
	"nexora-hcm/config"
	"nexora-hcm/db"

	"gorm.io/gorm"
)

func InitDBConnection() *gorm.DB {
	conn, err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	return conn
}
