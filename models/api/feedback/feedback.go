package feedbackapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type FeedbackData struct {
	ApplicationID int64  `json:"application_id"` // отклик, положительное целое
	By            string `json:"by"`             // автор, по умолчанию Interviewer
	Text          string `json:"text"`           // текст отзыва
}

func (f FeedbackData) Validate() error {
	if f.ApplicationID <= 0 {
		return errors.New("не указан отклик")
	}
	if strings.TrimSpace(f.Text) == "" {
		return errors.New("не указан текст отзыва")
	}
	return nil
}

type FeedbackView struct {
	ID             uint      `json:"id"`
	ApplicationID  uint      `json:"application_id"`
	By             string    `json:"by"`
	Text           string    `json:"text"`
	SentimentScore int       `json:"sentiment_score"`
	SentimentLabel string    `json:"sentiment_label"`
	CreatedAt      time.Time `json:"created_at"`
}
