package applicationstore

import (
	apperrors "nexora-hcm/lib/utils/app-errors"
	dbmodels "nexora-hcm/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Application) (*dbmodels.Application, error)
	Update(id uint, updMap map[string]interface{}) error
	GetByID(id uint) (*dbmodels.Application, error)
	List(filter dbmodels.ApplicationFilter) ([]dbmodels.Application, error)
	Delete(id uint) error
	CountByCandidate(candidateID uint) (int64, error)
	CountByJob(jobID uint) (int64, error)
	CountByStage() ([]dbmodels.StageCount, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (*dbmodels.Application, error) {
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
		Model(&dbmodels.Application{}).
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

func (i impl) GetByID(id uint) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
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

func (i impl) List(filter dbmodels.ApplicationFilter) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	tx := i.db.Model(&dbmodels.Application{})
	if filter.JobID != 0 {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.CandidateID != 0 {
		tx = tx.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.Stage != "" {
		tx = tx.Where("stage = ?", filter.Stage)
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
		Delete(&dbmodels.Application{})
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewNotFound("запись не найдена")
	}
	return nil
}

func (i impl) CountByCandidate(candidateID uint) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("candidate_id = ?", candidateID).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) CountByJob(jobID uint) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) CountByStage() ([]dbmodels.StageCount, error) {
	list := []dbmodels.StageCount{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Select("stage, count(*) as count").
		Group("stage").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Count(&rowCount).
		Error
	return rowCount, err
}
