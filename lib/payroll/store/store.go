package payrollstore

import (
	apperrors "nexora-hcm/lib/utils/app-errors"
	dbmodels "nexora-hcm/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.PayrollRecord) (*dbmodels.PayrollRecord, error)
	GetByID(id uint) (*dbmodels.PayrollRecord, error)
	ListByEmployee(employeeID uint) ([]dbmodels.PayrollRecord, error)
	SetPaid(id uint, paidAt time.Time) error
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

func (i impl) Create(rec dbmodels.PayrollRecord) (*dbmodels.PayrollRecord, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByID(id uint) (*dbmodels.PayrollRecord, error) {
	rec := dbmodels.PayrollRecord{}
	err := i.db.
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

// ListByEmployee период в формате 2006-01, поэтому строковая сортировка совпадает с хронологической
func (i impl) ListByEmployee(employeeID uint) ([]dbmodels.PayrollRecord, error) {
	list := []dbmodels.PayrollRecord{}
	err := i.db.
		Model(&dbmodels.PayrollRecord{}).
		Where("employee_id = ?", employeeID).
		Order("period desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetPaid(id uint, paidAt time.Time) error {
	tx := i.db.
		Model(&dbmodels.PayrollRecord{}).
		Where("id = ?", id).
		Update("paid_at", paidAt)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewNotFound("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id uint) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.PayrollRecord{})
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewNotFound("запись не найдена")
	}
	return nil
}
