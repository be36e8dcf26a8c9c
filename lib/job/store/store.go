package jobstore

import (
	apperrors "nexora-hcm/lib/utils/app-errors"
	dbmodels "nexora-hcm/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Job) (*dbmodels.Job, error)
	Update(id uint, updMap map[string]interface{}) error
	GetByID(id uint) (*dbmodels.Job, error)
	List(openOnly bool) ([]dbmodels.Job, error)
	Delete(id uint) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (*dbmodels.Job, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewNotFound("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(id uint) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(openOnly bool) ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	tx := i.db.Model(&dbmodels.Job{})
	if openOnly {
		tx = tx.Where("is_open = ?", true)
	}
	err := tx.
		Order("created_at desc").
		Order("id desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id uint) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Job{})
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewNotFound("запись не найдена")
	}
	return nil
}
