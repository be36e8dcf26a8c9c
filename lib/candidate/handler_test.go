package candidate

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	filestorage "nexora-hcm/lib/file-storage"
	apperrors "nexora-hcm/lib/utils/app-errors"
	testdb "nexora-hcm/lib/utils/test-db"
	candidateapimodels "nexora-hcm/models/api/candidate"
	dbmodels "nexora-hcm/models/db"

	"github.com/stretchr/testify/require"
)

type memStorage struct {
	files map[string][]byte
}

func (m *memStorage) PutFile(_ context.Context, key string, body []byte, _ string) error {
	m.files[key] = body
	return nil
}

func (m *memStorage) GetFile(_ context.Context, key string) ([]byte, error) {
	body, ok := m.files[key]
	if !ok {
		return nil, filestorage.ErrFileNotFound
	}
	return body, nil
}

func (m *memStorage) DeleteFile(_ context.Context, key string) error {
	delete(m.files, key)
	return nil
}

func (m *memStorage) MakeBucket(_ context.Context) error {
	return nil
}

func parseUpdate(t *testing.T, body string) candidateapimodels.CandidateUpdate {
	var upd candidateapimodels.CandidateUpdate
	require.Nil(t, json.Unmarshal([]byte(body), &upd))
	require.Nil(t, upd.Validate())
	return upd
}

func TestCandidateHandler(t *testing.T) {
	t.Run(`create normalizes input`, func(t *testing.T) {
		h := NewHandler(testdb.New(t), nil)
		rec, err := h.Create(candidateapimodels.CandidateData{
			Name:   "  Ivan Petrov ",
			Email:  " Ivan.Petrov@Mail.RU ",
			Phone:  "+7 900 000-00-00",
			Skills: []interface{}{"Go", " go ", "SQL", 5, "", nil, true},
		})
		require.Nil(t, err)
		require.NotZero(t, rec.ID)
		require.Equal(t, "Ivan Petrov", rec.Name)
		require.Equal(t, "ivan.petrov@mail.ru", *rec.Email)
		require.Equal(t, "+7 900 000-00-00", *rec.Phone)
		require.Equal(t, []string{"Go", "SQL", "5", "true"}, rec.Skills)
		require.False(t, rec.CreatedAt.IsZero())

		got, err := h.Get(rec.ID)
		require.Nil(t, err)
		require.Equal(t, rec.Skills, got.Skills)
	})

	t.Run(`create without optional fields`, func(t *testing.T) {
		h := NewHandler(testdb.New(t), nil)
		rec, err := h.Create(candidateapimodels.CandidateData{Name: "Anna"})
		require.Nil(t, err)
		require.Nil(t, rec.Email)
		require.Nil(t, rec.Phone)
		require.Equal(t, []string{}, rec.Skills)
		require.NotNil(t, candidateapimodels.CandidateData{Name: "   "}.Validate())
	})

	t.Run(`list newest first with case-insensitive filter`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewHandler(conn, nil)
		base := time.Now().Add(-time.Hour)
		for idx, data := range []dbmodels.Candidate{
			{Name: "Maria Ivanova", Email: strPtr("maria@corp.io")},
			{Name: "Oleg Sidorov", Email: strPtr("oleg@IVAN-hr.ru")},
			{Name: "Petr Smirnov"},
		} {
			data.CreatedAt = base.Add(time.Duration(idx) * time.Minute)
			require.Nil(t, conn.Create(&data).Error)
		}

		list, err := h.List(candidateapimodels.CandidateFilter{})
		require.Nil(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "Petr Smirnov", list[0].Name)
		require.Equal(t, "Maria Ivanova", list[2].Name)

		list, err = h.List(candidateapimodels.CandidateFilter{Query: "IVAN"})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Oleg Sidorov", list[0].Name)
		require.Equal(t, "Maria Ivanova", list[1].Name)

		list, err = h.List(candidateapimodels.CandidateFilter{Query: "nobody"})
		require.Nil(t, err)
		require.Len(t, list, 0)

		for _, query := range []string{"_", "%", "a_i", `\`} {
			list, err = h.List(candidateapimodels.CandidateFilter{Query: query})
			require.Nil(t, err)
			require.Len(t, list, 0, query)
		}

		special := dbmodels.Candidate{Name: "Anna 100%_done"}
		require.Nil(t, conn.Create(&special).Error)
		list, err = h.List(candidateapimodels.CandidateFilter{Query: "0%_D"})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, special.ID, list[0].ID)
	})

	t.Run(`update distinguishes null from omitted email`, func(t *testing.T) {
		h := NewHandler(testdb.New(t), nil)
		first, err := h.Create(candidateapimodels.CandidateData{Name: "First", Email: "first@corp.io", Phone: "111"})
		require.Nil(t, err)
		second, err := h.Create(candidateapimodels.CandidateData{Name: "Second", Email: "second@corp.io", Phone: "222"})
		require.Nil(t, err)

		updated, err := h.Update(first.ID, parseUpdate(t, `{"email": null}`))
		require.Nil(t, err)
		require.Nil(t, updated.Email)
		require.Equal(t, "First", updated.Name)
		require.Equal(t, "111", *updated.Phone)

		updated, err = h.Update(second.ID, parseUpdate(t, `{"name": " Second Renamed "}`))
		require.Nil(t, err)
		require.Equal(t, "Second Renamed", updated.Name)
		require.NotNil(t, updated.Email)
		require.Equal(t, "second@corp.io", *updated.Email)

		updated, err = h.Update(second.ID, parseUpdate(t, `{"email": "NEW@Corp.io", "skills": ["Go", "Go", 3]}`))
		require.Nil(t, err)
		require.Equal(t, "new@corp.io", *updated.Email)
		require.Equal(t, []string{"Go", "3"}, updated.Skills)
	})

	t.Run(`update validation`, func(t *testing.T) {
		var upd candidateapimodels.CandidateUpdate
		require.Nil(t, json.Unmarshal([]byte(`{"name": null}`), &upd))
		require.NotNil(t, upd.Validate())
		require.Nil(t, json.Unmarshal([]byte(`{"name": "  "}`), &upd))
		require.NotNil(t, upd.Validate())
	})

	t.Run(`not found`, func(t *testing.T) {
		h := NewHandler(testdb.New(t), nil)
		_, err := h.Get(404)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		_, err = h.Update(404, parseUpdate(t, `{"name": "X"}`))
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		err = h.Delete(404)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run(`delete`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewHandler(conn, nil)
		rec, err := h.Create(candidateapimodels.CandidateData{Name: "To delete"})
		require.Nil(t, err)
		require.Nil(t, h.Delete(rec.ID))
		_, err = h.Get(rec.ID)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run(`delete with applications is rejected`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewHandler(conn, nil)
		rec, err := h.Create(candidateapimodels.CandidateData{Name: "Busy"})
		require.Nil(t, err)
		job := dbmodels.Job{Title: "Go developer", IsOpen: true}
		require.Nil(t, conn.Create(&job).Error)
		require.Nil(t, conn.Create(&dbmodels.Application{JobID: job.ID, CandidateID: rec.ID, Stage: "applied"}).Error)

		err = h.Delete(rec.ID)
		require.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
		_, err = h.Get(rec.ID)
		require.Nil(t, err)
	})

	t.Run(`resume upload and download`, func(t *testing.T) {
		storage := &memStorage{files: map[string][]byte{}}
		h := NewHandler(testdb.New(t), storage)
		rec, err := h.Create(candidateapimodels.CandidateData{Name: "With resume"})
		require.Nil(t, err)

		_, _, err = h.GetResume(context.TODO(), rec.ID)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

		require.Nil(t, h.UploadResume(context.TODO(), rec.ID, "../../cv.pdf", []byte("pdf-body")))
		require.Contains(t, storage.files, "candidates/1/cv.pdf")

		name, body, err := h.GetResume(context.TODO(), rec.ID)
		require.Nil(t, err)
		require.Equal(t, "cv.pdf", name)
		require.Equal(t, []byte("pdf-body"), body)

		got, err := h.Get(rec.ID)
		require.Nil(t, err)
		require.True(t, got.HasResume)

		err = h.UploadResume(context.TODO(), 99, "cv.pdf", []byte("x"))
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		err = h.UploadResume(context.TODO(), rec.ID, "cv.pdf", nil)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func strPtr(value string) *string {
	return &value
}
