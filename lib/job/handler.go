package job

import (
	applicationstore "nexora-hcm/lib/application/store"
	jobstore "nexora-hcm/lib/job/store"
	apperrors "nexora-hcm/lib/utils/app-errors"
	jobapimodels "nexora-hcm/models/api/job"
	dbmodels "nexora-hcm/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data jobapimodels.JobData) (jobapimodels.JobView, error)
	List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error)
	Get(id uint) (jobapimodels.JobView, error)
	Update(id uint, data jobapimodels.JobUpdate) (jobapimodels.JobView, error)
	Delete(id uint) error
}

func NewHandler(conn *gorm.DB) Provider {
	return impl{
		store:            jobstore.NewInstance(conn),
		applicationStore: applicationstore.NewInstance(conn),
	}
}

type impl struct {
	store            jobstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) getLogger(id uint) *log.Entry {
	return log.WithField("job_id", id)
}

func (i impl) Create(data jobapimodels.JobData) (jobapimodels.JobView, error) {
	rec := dbmodels.Job{
		Title:       strings.TrimSpace(data.Title),
		Department:  strings.TrimSpace(data.Department),
		Location:    strings.TrimSpace(data.Location),
		Description: data.Description,
		IsOpen:      true,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		log.WithField("title", rec.Title).WithError(err).Error("ошибка создания вакансии")
		return jobapimodels.JobView{}, apperrors.NewInternal("ошибка создания вакансии")
	}
	return created.ToModel(), nil
}

func (i impl) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error) {
	list, err := i.store.List(filter.OpenOnly)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, apperrors.NewInternal("ошибка получения списка вакансий")
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Get(id uint) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(id).WithError(err).Error("ошибка получения вакансии")
		return jobapimodels.JobView{}, apperrors.NewInternal("ошибка получения вакансии")
	}
	if rec == nil {
		return jobapimodels.JobView{}, apperrors.NewNotFound("вакансия не найдена")
	}
	return rec.ToModel(), nil
}

func (i impl) Update(id uint, data jobapimodels.JobUpdate) (jobapimodels.JobView, error) {
	updMap := map[string]interface{}{}
	if data.Title.Set {
		updMap["title"] = strings.TrimSpace(data.Title.Value)
	}
	if data.Department.Set {
		updMap["department"] = strings.TrimSpace(data.Department.Value)
	}
	if data.Location.Set {
		updMap["location"] = strings.TrimSpace(data.Location.Value)
	}
	if data.Description.Set {
		updMap["description"] = data.Description.Value
	}
	if data.IsOpen.Set {
		updMap["is_open"] = data.IsOpen.Value
	}
	if len(updMap) == 0 {
		return i.Get(id)
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return jobapimodels.JobView{}, apperrors.NewNotFound("вакансия не найдена")
		}
		i.getLogger(id).WithError(err).Error("ошибка обновления вакансии")
		return jobapimodels.JobView{}, apperrors.NewInternal("ошибка обновления вакансии")
	}
	return i.Get(id)
}

func (i impl) Delete(id uint) error {
	logger := i.getLogger(id)
	count, err := i.applicationStore.CountByJob(id)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки откликов на вакансию")
		return apperrors.NewInternal("ошибка удаления вакансии")
	}
	if count > 0 {
		return apperrors.NewConflict("на вакансию есть отклики, удаление невозможно")
	}
	err = i.store.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("вакансия не найдена")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewConflict("на вакансию есть отклики, удаление невозможно")
		}
		logger.WithError(err).Error("ошибка удаления вакансии")
		return apperrors.NewInternal("ошибка удаления вакансии")
	}
	return nil
}
