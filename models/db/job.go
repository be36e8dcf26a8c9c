package dbmodels

import (
	jobapimodels "nexora-hcm/models/api/job"
)

type Job struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null"`
	Department  string `gorm:"type:varchar(255)"`
	Location    string `gorm:"type:varchar(255)"`
	Description string
	IsOpen      bool `gorm:"index"`
}

func (r Job) ToModel() jobapimodels.JobView {
	return jobapimodels.JobView{
		ID:          r.ID,
		Title:       r.Title,
		Department:  r.Department,
		Location:    r.Location,
		Description: r.Description,
		IsOpen:      r.IsOpen,
		CreatedAt:   r.CreatedAt,
	}
}
