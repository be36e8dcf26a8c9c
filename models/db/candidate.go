package dbmodels

import (
	candidateapimodels "nexora-hcm/models/api/candidate"
)

type Candidate struct {
	BaseModel
	Name       string     `gorm:"type:varchar(255);not null"`
	Email      *string    `gorm:"type:varchar(255);index"` // хранится в нижнем регистре
	Phone      *string    `gorm:"type:varchar(50)"`
	Skills     StringList `gorm:"type:jsonb"`
	ResumeFile *string    `gorm:"type:varchar(512)"` // ключ файла резюме в S3
}

func (r Candidate) ToModel() candidateapimodels.CandidateView {
	skills := []string(r.Skills)
	if skills == nil {
		skills = []string{}
	}
	return candidateapimodels.CandidateView{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Skills:    skills,
		HasResume: r.ResumeFile != nil && *r.ResumeFile != "",
		CreatedAt: r.CreatedAt,
	}
}
