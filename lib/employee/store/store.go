package employeestore

import (
	apperrors "nexora-hcm/lib/utils/app-errors"
	dbmodels "nexora-hcm/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Employee) (*dbmodels.Employee, error)
	Update(id uint, updMap map[string]interface{}) error
	GetByID(id uint) (*dbmodels.Employee, error)
	GetByUserID(userID uint) (*dbmodels.Employee, error)
	List() ([]dbmodels.Employee, error)
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

func (i impl) Create(rec dbmodels.Employee) (*dbmodels.Employee, error) {
	err := i.db.
		Omit(clause.Associations).
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
		Model(&dbmodels.Employee{}).
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

func (i impl) GetByID(id uint) (*dbmodels.Employee, error) {
	return i.getBy("id = ?", id)
}

func (i impl) GetByUserID(userID uint) (*dbmodels.Employee, error) {
	return i.getBy("user_id = ?", userID)
}

func (i impl) getBy(query string, value interface{}) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where(query, value).
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

func (i impl) List() ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Order("last_name").
		Order("first_name").
		Order("id").
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
		Delete(&dbmodels.Employee{})
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewNotFound("запись не найдена")
	}
	return nil
}
