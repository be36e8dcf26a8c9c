package feedback

import (
	"testing"

	apperrors "nexora-hcm/lib/utils/app-errors"
	testdb "nexora-hcm/lib/utils/test-db"
	feedbackapimodels "nexora-hcm/models/api/feedback"
	dbmodels "nexora-hcm/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createApplication(t *testing.T, conn *gorm.DB) uint {
	job := dbmodels.Job{Title: "QA", IsOpen: true}
	require.Nil(t, conn.Create(&job).Error)
	candidate := dbmodels.Candidate{Name: "Anna"}
	require.Nil(t, conn.Create(&candidate).Error)
	app := dbmodels.Application{JobID: job.ID, CandidateID: candidate.ID, Stage: "interview"}
	require.Nil(t, conn.Create(&app).Error)
	return app.ID
}

func TestFeedbackHandler(t *testing.T) {
	t.Run(`create scores sentiment and defaults author`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewHandler(conn)
		appID := createApplication(t, conn)

		rec, err := h.Create(feedbackapimodels.FeedbackData{
			ApplicationID: int64(appID),
			Text:          "Great communication, strong Go skills, some concern about SQL",
		})
		require.Nil(t, err)
		require.Equal(t, "Interviewer", rec.By)
		require.Equal(t, 1, rec.SentimentScore)
		require.Equal(t, "positive", rec.SentimentLabel)

		rec, err = h.Create(feedbackapimodels.FeedbackData{ApplicationID: int64(appID), By: "Olga", Text: "ok"})
		require.Nil(t, err)
		require.Equal(t, "Olga", rec.By)
		require.Equal(t, 0, rec.SentimentScore)
		require.Equal(t, "neutral", rec.SentimentLabel)

		list, err := h.ListByApplication(appID)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Olga", list[0].By)
	})

	t.Run(`validation`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		_, err := h.Create(feedbackapimodels.FeedbackData{ApplicationID: 0, Text: "good"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(feedbackapimodels.FeedbackData{ApplicationID: -3, Text: "good"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(feedbackapimodels.FeedbackData{ApplicationID: 1, Text: "   "})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run(`unknown application`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		_, err := h.Create(feedbackapimodels.FeedbackData{ApplicationID: 42, Text: "good"})
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		_, err = h.ListByApplication(42)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}
