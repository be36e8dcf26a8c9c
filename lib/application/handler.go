package application

import (
	"fmt"
	applicationstore "nexora-hcm/lib/application/store"
	candidatestore "nexora-hcm/lib/candidate/store"
	jobstore "nexora-hcm/lib/job/store"
	"nexora-hcm/lib/notification"
	"nexora-hcm/lib/smtp"
	stagepolicy "nexora-hcm/lib/stage-policy"
	apperrors "nexora-hcm/lib/utils/app-errors"
	initchecker "nexora-hcm/lib/utils/init-checker"
	"nexora-hcm/models"
	applicationapimodels "nexora-hcm/models/api/application"
	dbmodels "nexora-hcm/models/db"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data applicationapimodels.ApplicationData) (applicationapimodels.ApplicationView, error)
	List(filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, error)
	Get(id uint) (applicationapimodels.ApplicationView, error)
	Update(id uint, data applicationapimodels.ApplicationUpdate) (applicationapimodels.ApplicationView, error)
	Delete(id uint) error
	ChangeStage(id uint, stage string) (applicationapimodels.StageChangeView, error)
}

// NewHandler mailer может быть nil, тогда кандидату письма не отправляются
func NewHandler(conn *gorm.DB, notifier notification.Emitter, mailer smtp.Provider) Provider {
	initchecker.CheckInit(
		"conn", conn,
		"notifier", notifier,
	)
	return impl{
		db:             conn,
		store:          applicationstore.NewInstance(conn),
		jobStore:       jobstore.NewInstance(conn),
		candidateStore: candidatestore.NewInstance(conn),
		notifier:       notifier,
		mailer:         mailer,
	}
}

type impl struct {
	db             *gorm.DB
	store          applicationstore.Provider
	jobStore       jobstore.Provider
	candidateStore candidatestore.Provider
	notifier       notification.Emitter
	mailer         smtp.Provider
	// sendSync письмо отправляется в той же горутине, используется в тестах
	sendSync bool
}

func (i impl) getLogger(id uint) *log.Entry {
	return log.WithField("application_id", id)
}

func (i impl) Create(data applicationapimodels.ApplicationData) (applicationapimodels.ApplicationView, error) {
	logger := log.
		WithField("job_id", data.JobID).
		WithField("candidate_id", data.CandidateID)
	jobRec, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return applicationapimodels.ApplicationView{}, apperrors.NewInternal("ошибка создания отклика")
	}
	if jobRec == nil {
		return applicationapimodels.ApplicationView{}, apperrors.NewValidation("вакансия не найдена")
	}
	candidateRec, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения кандидата")
		return applicationapimodels.ApplicationView{}, apperrors.NewInternal("ошибка создания отклика")
	}
	if candidateRec == nil {
		return applicationapimodels.ApplicationView{}, apperrors.NewValidation("кандидат не найден")
	}
	stage, ok := stagepolicy.Filter(data.Stage)
	if !ok {
		stage = models.StageApplied
	}
	rec := dbmodels.Application{
		JobID:       data.JobID,
		CandidateID: data.CandidateID,
		Stage:       stage,
		Notes:       normalizeNotes(data.Notes),
	}
	created, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания отклика")
		return applicationapimodels.ApplicationView{}, apperrors.NewInternal("ошибка создания отклика")
	}
	return created.ToModel(), nil
}

func (i impl) List(filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, error) {
	dbFilter := dbmodels.ApplicationFilter{
		JobID:       filter.JobID,
		CandidateID: filter.CandidateID,
	}
	if filter.Stage != "" {
		stage, err := stagepolicy.Validate(filter.Stage)
		if err != nil {
			return nil, err
		}
		dbFilter.Stage = stage
	}
	list, err := i.store.List(dbFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка откликов")
		return nil, apperrors.NewInternal("ошибка получения списка откликов")
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Get(id uint) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(id).WithError(err).Error("ошибка получения отклика")
		return applicationapimodels.ApplicationView{}, apperrors.NewInternal("ошибка получения отклика")
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, apperrors.NewNotFound("отклик не найден")
	}
	return rec.ToModel(), nil
}

// Update смена этапа здесь не создает событие, для этого есть ChangeStage
func (i impl) Update(id uint, data applicationapimodels.ApplicationUpdate) (applicationapimodels.ApplicationView, error) {
	updMap := map[string]interface{}{}
	if data.Notes.Set {
		updMap["notes"] = normalizeNotes(data.Notes.Value)
	}
	if data.Stage.Set {
		if stage, ok := stagepolicy.Filter(data.Stage.Value); ok {
			updMap["stage"] = stage
		} else {
			i.getLogger(id).WithField("stage", data.Stage.Value).Debug("недопустимый этап проигнорирован")
		}
	}
	if len(updMap) == 0 {
		return i.Get(id)
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return applicationapimodels.ApplicationView{}, apperrors.NewNotFound("отклик не найден")
		}
		i.getLogger(id).WithError(err).Error("ошибка обновления отклика")
		return applicationapimodels.ApplicationView{}, apperrors.NewInternal("ошибка обновления отклика")
	}
	return i.Get(id)
}

func (i impl) Delete(id uint) error {
	err := i.store.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("отклик не найден")
		}
		i.getLogger(id).WithError(err).Error("ошибка удаления отклика")
		return apperrors.NewInternal("ошибка удаления отклика")
	}
	return nil
}

// ChangeStage смена этапа и запись события выполняются в одной транзакции:
// либо сохраняются оба изменения, либо ни одного
func (i impl) ChangeStage(id uint, value string) (applicationapimodels.StageChangeView, error) {
	logger := i.getLogger(id).WithField("stage", value)
	stage, err := stagepolicy.Validate(value)
	if err != nil {
		return applicationapimodels.StageChangeView{}, err
	}
	var rec *dbmodels.Application
	var notificationRec *dbmodels.Notification
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)
		if err := store.Update(id, map[string]interface{}{"stage": stage}); err != nil {
			return err
		}
		var err error
		rec, err = store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperrors.NewNotFound("отклик не найден")
		}
		notificationRec, err = i.notifier.Emit(tx, models.NotificationStageChanged, map[string]interface{}{
			"applicationId": id,
			"stage":         string(stage),
		})
		return err
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return applicationapimodels.StageChangeView{}, apperrors.NewNotFound("отклик не найден")
		}
		logger.WithError(err).Error("ошибка смены этапа отклика")
		return applicationapimodels.StageChangeView{}, apperrors.NewInternal("ошибка смены этапа отклика")
	}
	logger.Info("этап отклика изменен")

	i.notifier.Publish(*notificationRec)
	if i.sendSync {
		i.notifyCandidate(*rec)
	} else {
		go i.notifyCandidate(*rec)
	}
	return applicationapimodels.StageChangeView{
		Application:  rec.ToModel(),
		Notification: notificationRec.ToModel(),
	}, nil
}

// notifyCandidate ошибка отправки письма не отменяет смену этапа
func (i impl) notifyCandidate(rec dbmodels.Application) {
	if i.mailer == nil || !i.mailer.IsConfigured() {
		return
	}
	logger := i.getLogger(rec.ID).WithField("candidate_id", rec.CandidateID)
	candidateRec, err := i.candidateStore.GetByID(rec.CandidateID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения кандидата для отправки письма")
		return
	}
	if candidateRec == nil || candidateRec.Email == nil || *candidateRec.Email == "" {
		return
	}
	jobTitle := ""
	jobRec, err := i.jobStore.GetByID(rec.JobID)
	if err != nil {
		logger.WithError(err).Warn("ошибка получения вакансии для письма")
	} else if jobRec != nil {
		jobTitle = jobRec.Title
	}
	subject, message := stageChangedLetter(candidateRec.Name, jobTitle, rec.Stage)
	if err = i.mailer.SendEMail(*candidateRec.Email, subject, message); err != nil {
		logger.WithError(err).Warn("письмо кандидату о смене этапа не отправлено")
	}
}

func stageChangedLetter(candidateName, jobTitle string, stage models.ApplicationStage) (subject, message string) {
	subject = "Статус вашего отклика изменен"
	message = fmt.Sprintf("Здравствуйте, %s!\r\n\r\n", candidateName)
	if jobTitle != "" {
		message += fmt.Sprintf("Ваш отклик на вакансию «%s» переведен на этап «%s».\r\n", jobTitle, stage.ToHuman())
	} else {
		message += fmt.Sprintf("Ваш отклик переведен на этап «%s».\r\n", stage.ToHuman())
	}
	return subject, message
}

func normalizeNotes(value string) *string {
	notes := strings.TrimSpace(value)
	if notes == "" {
		return nil
	}
	return &notes
}
