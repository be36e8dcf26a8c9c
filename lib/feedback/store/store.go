package feedbackstore

import (
	dbmodels "nexora-hcm/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Feedback) (*dbmodels.Feedback, error)
	ListByApplication(applicationID uint) ([]dbmodels.Feedback, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Feedback) (*dbmodels.Feedback, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByApplication(applicationID uint) ([]dbmodels.Feedback, error) {
	list := []dbmodels.Feedback{}
	err := i.db.
		Model(&dbmodels.Feedback{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		Order("id desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
