// Package stagepolicy проверяет этапы воронки найма.
//
// Переходы нестрогие: между любыми из шести этапов можно перейти в любом
// направлении, в том числе из hired в rejected. Ограничение только одно -
// значение должно входить в список допустимых этапов.
package stagepolicy

import (
	apperrors "nexora-hcm/lib/utils/app-errors"
	"nexora-hcm/models"
	"strings"
)

var allStages = []models.ApplicationStage{
	models.StageApplied,
	models.StageScreening,
	models.StageInterview,
	models.StageOffer,
	models.StageHired,
	models.StageRejected,
}

// порядок важен: по нему выбирается узкое место воронки при равенстве
var preTerminalStages = []models.ApplicationStage{
	models.StageApplied,
	models.StageScreening,
	models.StageInterview,
	models.StageOffer,
}

func AllStages() []models.ApplicationStage {
	return append([]models.ApplicationStage(nil), allStages...)
}

func PreTerminalStages() []models.ApplicationStage {
	return append([]models.ApplicationStage(nil), preTerminalStages...)
}

func normalize(value string) models.ApplicationStage {
	return models.ApplicationStage(strings.ToLower(strings.TrimSpace(value)))
}

func isAllowed(stage models.ApplicationStage) bool {
	for _, allowed := range allStages {
		if allowed == stage {
			return true
		}
	}
	return false
}

// Validate строгая проверка для смены этапа
func Validate(value string) (models.ApplicationStage, error) {
	stage := normalize(value)
	if !isAllowed(stage) {
		return "", apperrors.NewValidation("недопустимый этап: " + value)
	}
	return stage, nil
}

// Filter нестрогая проверка для общего обновления отклика: недопустимое значение просто пропускается
func Filter(value string) (models.ApplicationStage, bool) {
	stage := normalize(value)
	if !isAllowed(stage) {
		return "", false
	}
	return stage, true
}
