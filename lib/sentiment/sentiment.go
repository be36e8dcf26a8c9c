// Package sentiment оценка тональности отзыва по словарю.
// Это простая эвристика: каждое слово из списка, встреченное в тексте
// как подстрока, дает +1 или -1 один раз, независимо от числа вхождений.
package sentiment

import (
	"nexora-hcm/models"
	"strings"
)

var positiveWords = []string{"great", "good", "excellent", "strong", "impressive", "fit", "positive", "outstanding"}

var negativeWords = []string{"poor", "bad", "weak", "concern", "negative", "lack", "insufficient"}

type Result struct {
	Score int                   `json:"score"`
	Label models.SentimentLabel `json:"label"`
}

func Score(text string) Result {
	lower := strings.ToLower(text)
	score := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			score++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			score--
		}
	}
	return Result{Score: score, Label: labelOf(score)}
}

func labelOf(score int) models.SentimentLabel {
	switch {
	case score > 0:
		return models.SentimentPositive
	case score < 0:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
