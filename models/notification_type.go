package models

type NotificationType string

const (
	NotificationStageChanged NotificationType = "application.stageChanged"
)

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// DefaultFeedbackAuthor подставляется, если автор отзыва не указан
const DefaultFeedbackAuthor = "Interviewer"
