package dbmodels

import (
	"nexora-hcm/models"
	feedbackapimodels "nexora-hcm/models/api/feedback"
)

// Feedback после создания не изменяется, тональность считается один раз при записи
type Feedback struct {
	BaseModel
	ApplicationID  uint         `gorm:"index;not null"`
	Application    *Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	By             string       `gorm:"type:varchar(255)"`
	Text           string       `gorm:"not null"`
	SentimentScore int
	SentimentLabel models.SentimentLabel `gorm:"type:varchar(20)"`
}

func (r Feedback) ToModel() feedbackapimodels.FeedbackView {
	return feedbackapimodels.FeedbackView{
		ID:             r.ID,
		ApplicationID:  r.ApplicationID,
		By:             r.By,
		Text:           r.Text,
		SentimentScore: r.SentimentScore,
		SentimentLabel: string(r.SentimentLabel),
		CreatedAt:      r.CreatedAt,
	}
}
