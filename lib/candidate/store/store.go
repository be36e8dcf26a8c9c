package candidatestore

import (
	apperrors "nexora-hcm/lib/utils/app-errors"
	dbmodels "nexora-hcm/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (*dbmodels.Candidate, error)
	Update(id uint, updMap map[string]interface{}) error
	GetByID(id uint) (*dbmodels.Candidate, error)
	List(search string) ([]dbmodels.Candidate, error)
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

func (i impl) Create(rec dbmodels.Candidate) (*dbmodels.Candidate, error) {
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
		Model(&dbmodels.Candidate{}).
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

func (i impl) GetByID(id uint) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
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

// likeEscaper символы шаблона LIKE в поиске ищутся буквально
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (i impl) List(search string) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	tx := i.db.Model(&dbmodels.Candidate{})
	if search = strings.TrimSpace(search); search != "" {
		searchValue := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		tx = tx.Where(`(LOWER(name) like ? ESCAPE '\' or LOWER(email) like ? ESCAPE '\')`, searchValue, searchValue)
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
		Delete(&dbmodels.Candidate{})
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewNotFound("запись не найдена")
	}
	return nil
}
