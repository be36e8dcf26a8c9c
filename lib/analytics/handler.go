package analytics

import (
	"math"
	applicationstore "nexora-hcm/lib/application/store"
	stagepolicy "nexora-hcm/lib/stage-policy"
	apperrors "nexora-hcm/lib/utils/app-errors"
	"nexora-hcm/models"
	analyticsapimodels "nexora-hcm/models/api/analytics"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Snapshot() (analyticsapimodels.Snapshot, error)
}

func NewHandler(conn *gorm.DB) Provider {
	return impl{
		applicationStore: applicationstore.NewInstance(conn),
	}
}

type impl struct {
	applicationStore applicationstore.Provider
}

// Snapshot два запроса: группировка по этапу и общее количество
func (i impl) Snapshot() (analyticsapimodels.Snapshot, error) {
	grouped, err := i.applicationStore.CountByStage()
	if err != nil {
		log.WithError(err).Error("ошибка подсчета откликов по этапам")
		return analyticsapimodels.Snapshot{}, apperrors.NewInternal("ошибка расчета аналитики")
	}
	total, err := i.applicationStore.Count()
	if err != nil {
		log.WithError(err).Error("ошибка подсчета откликов")
		return analyticsapimodels.Snapshot{}, apperrors.NewInternal("ошибка расчета аналитики")
	}
	counts := make(map[models.ApplicationStage]int64, len(grouped))
	for _, row := range grouped {
		counts[row.Stage] += row.Count
	}
	return ComputeSnapshot(total, counts), nil
}

// ComputeSnapshot этапы вне шести допустимых не учитываются в stages, но входят в total
func ComputeSnapshot(total int64, counts map[models.ApplicationStage]int64) analyticsapimodels.Snapshot {
	stages := make(map[string]int64, 6)
	for _, stage := range stagepolicy.AllStages() {
		stages[string(stage)] = counts[stage]
	}
	result := analyticsapimodels.Snapshot{
		Total:      total,
		Stages:     stages,
		Interviews: counts[models.StageInterview],
		Offers:     counts[models.StageOffer],
		Hires:      counts[models.StageHired],
	}
	if result.Offers > 0 {
		ratio := float64(result.Hires) / float64(result.Offers) * 100
		result.OfferToHireRatio = math.Round(ratio*10) / 10
	}
	result.Bottleneck = bottleneck(counts)
	return result
}

// bottleneck при равенстве выигрывает этап, который раньше в воронке
func bottleneck(counts map[models.ApplicationStage]int64) string {
	candidates := stagepolicy.PreTerminalStages()
	best := candidates[0]
	for _, stage := range candidates[1:] {
		if counts[stage] > counts[best] {
			best = stage
		}
	}
	return string(best)
}
