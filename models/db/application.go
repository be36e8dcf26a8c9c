package dbmodels

import (
	"nexora-hcm/models"
	applicationapimodels "nexora-hcm/models/api/application"
)

type Application struct {
	BaseModel
	JobID       uint                    `gorm:"index;not null"`
	Job         *Job                    `gorm:"foreignKey:JobID;constraint:OnDelete:RESTRICT"`
	CandidateID uint                    `gorm:"index;not null"`
	Candidate   *Candidate              `gorm:"foreignKey:CandidateID;constraint:OnDelete:RESTRICT"`
	Stage       models.ApplicationStage `gorm:"type:varchar(20);index;not null;check:chk_applications_stage,stage IN ('applied','screening','interview','offer','hired','rejected')"`
	Notes       *string
}

func (r Application) ToModel() applicationapimodels.ApplicationView {
	return applicationapimodels.ApplicationView{
		ID:          r.ID,
		JobID:       r.JobID,
		CandidateID: r.CandidateID,
		Stage:       string(r.Stage),
		StageName:   r.Stage.ToHuman(),
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type ApplicationFilter struct {
	JobID       uint
	CandidateID uint
	Stage       models.ApplicationStage
}

// StageCount результат группировки откликов по этапу
type StageCount struct {
	Stage models.ApplicationStage
	Count int64
}
