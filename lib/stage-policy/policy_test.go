package stagepolicy

import (
	"testing"

	apperrors "nexora-hcm/lib/utils/app-errors"
	"nexora-hcm/models"

	"github.com/stretchr/testify/require"
)

func TestPolicy(t *testing.T) {
	t.Run(`Validate accepts all six stages case-insensitively`, func(t *testing.T) {
		for _, stage := range AllStages() {
			got, err := Validate(string(stage))
			require.Nil(t, err)
			require.Equal(t, stage, got)
		}
		got, err := Validate("  InterView ")
		require.Nil(t, err)
		require.Equal(t, models.StageInterview, got)
		got, err = Validate("OFFER")
		require.Nil(t, err)
		require.Equal(t, models.StageOffer, got)
	})

	t.Run(`Validate rejects unknown stages`, func(t *testing.T) {
		for _, value := range []string{"", "archived", "hire", "offered", "applied!"} {
			_, err := Validate(value)
			require.NotNil(t, err, value)
			require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		}
	})

	t.Run(`Filter is lenient`, func(t *testing.T) {
		stage, ok := Filter("Hired")
		require.True(t, ok)
		require.Equal(t, models.StageHired, stage)
		_, ok = Filter("unknown")
		require.False(t, ok)
	})

	t.Run(`stage lists`, func(t *testing.T) {
		require.Len(t, AllStages(), 6)
		require.Equal(t, []models.ApplicationStage{
			models.StageApplied, models.StageScreening, models.StageInterview, models.StageOffer,
		}, PreTerminalStages())
		list := AllStages()
		list[0] = "changed"
		require.Equal(t, models.StageApplied, AllStages()[0])
		require.True(t, models.StageHired.IsTerminal())
		require.True(t, models.StageRejected.IsTerminal())
		require.False(t, models.StageOffer.IsTerminal())
	})
}
