package notificationstore

import (
	dbmodels "nexora-hcm/models/db"
	"time"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (*dbmodels.Notification, error)
	List(limit int) ([]dbmodels.Notification, error)
	DeleteOlderThan(before time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (*dbmodels.Notification, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(limit int) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	err := i.db.
		Model(&dbmodels.Notification{}).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteOlderThan(before time.Time) (int64, error) {
	tx := i.db.
		Where("created_at < ?", before).
		Delete(&dbmodels.Notification{})
	return tx.RowsAffected, tx.Error
}
