package applicationapimodels

import (
	apimodels "nexora-hcm/models/api"
	notificationapimodels "nexora-hcm/models/api/notification"
	"time"

	"github.com/pkg/errors"
)

type ApplicationData struct {
	JobID       uint   `json:"job_id"`       // вакансия
	CandidateID uint   `json:"candidate_id"` // кандидат
	Stage       string `json:"stage"`        // этап, по умолчанию applied
	Notes       string `json:"notes"`        // заметки
}

func (a ApplicationData) Validate() error {
	if a.JobID == 0 {
		return errors.New("не указана вакансия")
	}
	if a.CandidateID == 0 {
		return errors.New("не указан кандидат")
	}
	return nil
}

// ApplicationUpdate недопустимый этап молча игнорируется, остальные поля применяются
type ApplicationUpdate struct {
	Notes apimodels.Optional[string] `json:"notes" swaggertype:"string"`
	Stage apimodels.Optional[string] `json:"stage" swaggertype:"string"`
}

type StageChangeRequest struct {
	Stage string `json:"stage"` // новый этап
}

type ApplicationFilter struct {
	JobID       uint   `query:"job_id"`
	CandidateID uint   `query:"candidate_id"`
	Stage       string `query:"stage"`
}

type ApplicationView struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	CandidateID uint      `json:"candidate_id"`
	Stage       string    `json:"stage"`
	StageName   string    `json:"stage_name"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StageChangeView struct {
	Application  ApplicationView                        `json:"application"`
	Notification notificationapimodels.NotificationView `json:"notification"`
}
