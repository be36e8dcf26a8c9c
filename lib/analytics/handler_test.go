package analytics

import (
	"testing"

	testdb "nexora-hcm/lib/utils/test-db"
	"nexora-hcm/models"
	dbmodels "nexora-hcm/models/db"

	"github.com/stretchr/testify/require"
)

func TestComputeSnapshot(t *testing.T) {
	t.Run(`empty`, func(t *testing.T) {
		result := ComputeSnapshot(0, nil)
		require.Equal(t, int64(0), result.Total)
		require.Len(t, result.Stages, 6)
		for _, count := range result.Stages {
			require.Equal(t, int64(0), count)
		}
		require.Equal(t, 0.0, result.OfferToHireRatio)
		require.Equal(t, "applied", result.Bottleneck)
	})

	t.Run(`ratio`, func(t *testing.T) {
		result := ComputeSnapshot(7, map[models.ApplicationStage]int64{
			models.StageOffer: 4,
			models.StageHired: 3,
		})
		require.Equal(t, 75.0, result.OfferToHireRatio)
		require.Equal(t, int64(4), result.Offers)
		require.Equal(t, int64(3), result.Hires)
		require.Equal(t, "offer", result.Bottleneck)

		result = ComputeSnapshot(4, map[models.ApplicationStage]int64{
			models.StageOffer: 3,
			models.StageHired: 1,
		})
		require.Equal(t, 33.3, result.OfferToHireRatio)

		result = ComputeSnapshot(2, map[models.ApplicationStage]int64{
			models.StageHired: 2,
		})
		require.Equal(t, 0.0, result.OfferToHireRatio)
	})

	t.Run(`bottleneck tie goes to earlier stage`, func(t *testing.T) {
		result := ComputeSnapshot(12, map[models.ApplicationStage]int64{
			models.StageApplied:   5,
			models.StageScreening: 5,
			models.StageInterview: 2,
		})
		require.Equal(t, "applied", result.Bottleneck)

		result = ComputeSnapshot(20, map[models.ApplicationStage]int64{
			models.StageApplied:   1,
			models.StageInterview: 4,
			models.StageOffer:     4,
			models.StageRejected:  11,
		})
		require.Equal(t, "interview", result.Bottleneck)
	})
}

func TestSnapshot(t *testing.T) {
	conn := testdb.New(t)
	job := dbmodels.Job{Title: "Go developer", IsOpen: true}
	require.Nil(t, conn.Create(&job).Error)
	candidate := dbmodels.Candidate{Name: "Ivan"}
	require.Nil(t, conn.Create(&candidate).Error)
	for _, stage := range []models.ApplicationStage{"applied", "applied", "interview", "offer", "offer", "hired"} {
		require.Nil(t, conn.Create(&dbmodels.Application{JobID: job.ID, CandidateID: candidate.ID, Stage: stage}).Error)
	}

	result, err := NewHandler(conn).Snapshot()
	require.Nil(t, err)
	require.Equal(t, int64(6), result.Total)
	require.Equal(t, int64(2), result.Stages["applied"])
	require.Equal(t, int64(0), result.Stages["screening"])
	require.Equal(t, int64(1), result.Interviews)
	require.Equal(t, int64(2), result.Offers)
	require.Equal(t, int64(1), result.Hires)
	require.Equal(t, 50.0, result.OfferToHireRatio)
	require.Equal(t, "applied", result.Bottleneck)
}
