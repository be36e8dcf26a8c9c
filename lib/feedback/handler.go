package feedback

import (
	applicationstore "nexora-hcm/lib/application/store"
	feedbackstore "nexora-hcm/lib/feedback/store"
	"nexora-hcm/lib/sentiment"
	apperrors "nexora-hcm/lib/utils/app-errors"
	"nexora-hcm/models"
	feedbackapimodels "nexora-hcm/models/api/feedback"
	dbmodels "nexora-hcm/models/db"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data feedbackapimodels.FeedbackData) (feedbackapimodels.FeedbackView, error)
	ListByApplication(applicationID uint) ([]feedbackapimodels.FeedbackView, error)
}

func NewHandler(conn *gorm.DB) Provider {
	return impl{
		store:            feedbackstore.NewInstance(conn),
		applicationStore: applicationstore.NewInstance(conn),
	}
}

type impl struct {
	store            feedbackstore.Provider
	applicationStore applicationstore.Provider
}

// Create тональность считается один раз при записи и дальше не пересчитывается
func (i impl) Create(data feedbackapimodels.FeedbackData) (feedbackapimodels.FeedbackView, error) {
	if err := data.Validate(); err != nil {
		return feedbackapimodels.FeedbackView{}, apperrors.NewValidation(err.Error())
	}
	applicationID := uint(data.ApplicationID)
	logger := log.WithField("application_id", applicationID)
	if err := i.checkApplication(applicationID); err != nil {
		return feedbackapimodels.FeedbackView{}, err
	}
	by := strings.TrimSpace(data.By)
	if by == "" {
		by = models.DefaultFeedbackAuthor
	}
	result := sentiment.Score(data.Text)
	rec := dbmodels.Feedback{
		ApplicationID:  applicationID,
		By:             by,
		Text:           strings.TrimSpace(data.Text),
		SentimentScore: result.Score,
		SentimentLabel: result.Label,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения отзыва")
		return feedbackapimodels.FeedbackView{}, apperrors.NewInternal("ошибка сохранения отзыва")
	}
	return created.ToModel(), nil
}

func (i impl) ListByApplication(applicationID uint) ([]feedbackapimodels.FeedbackView, error) {
	if err := i.checkApplication(applicationID); err != nil {
		return nil, err
	}
	list, err := i.store.ListByApplication(applicationID)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("ошибка получения списка отзывов")
		return nil, apperrors.NewInternal("ошибка получения списка отзывов")
	}
	result := make([]feedbackapimodels.FeedbackView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) checkApplication(applicationID uint) error {
	rec, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		log.WithField("application_id", applicationID).WithError(err).Error("ошибка получения отклика")
		return apperrors.NewInternal("ошибка получения отклика")
	}
	if rec == nil {
		return apperrors.NewNotFound("отклик не найден")
	}
	return nil
}
