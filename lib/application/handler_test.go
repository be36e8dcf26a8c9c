package application

import (
	"encoding/json"
	"sync"
	"testing"

	"nexora-hcm/lib/notification"
	stagepolicy "nexora-hcm/lib/stage-policy"
	apperrors "nexora-hcm/lib/utils/app-errors"
	testdb "nexora-hcm/lib/utils/test-db"
	"nexora-hcm/models"
	applicationapimodels "nexora-hcm/models/api/application"
	dbmodels "nexora-hcm/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentMail struct {
	to      string
	subject string
	message string
}

type fakeMailer struct {
	sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendEMail(to, subject, message string) error {
	m.Lock()
	defer m.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, message: message})
	return m.err
}

func (m *fakeMailer) IsConfigured() bool {
	return true
}

type failingEmitter struct {
	notification.Emitter
}

func (f failingEmitter) Emit(_ *gorm.DB, _ models.NotificationType, _ map[string]interface{}) (*dbmodels.Notification, error) {
	return nil, errors.New("notifications table is unavailable")
}

type fixture struct {
	conn      *gorm.DB
	handler   Provider
	mailer    *fakeMailer
	job       dbmodels.Job
	candidate dbmodels.Candidate
}

func newFixture(t *testing.T) fixture {
	conn := testdb.New(t)
	mailer := &fakeMailer{}
	h := NewHandler(conn, notification.NewHandler(conn, nil, 0), mailer).(impl)
	h.sendSync = true
	email := "ivan@mail.ru"
	f := fixture{
		conn:      conn,
		handler:   h,
		mailer:    mailer,
		job:       dbmodels.Job{Title: "Go developer", IsOpen: true},
		candidate: dbmodels.Candidate{Name: "Ivan", Email: &email},
	}
	require.Nil(t, conn.Create(&f.job).Error)
	require.Nil(t, conn.Create(&f.candidate).Error)
	return f
}

func (f fixture) create(t *testing.T, stage string) applicationapimodels.ApplicationView {
	rec, err := f.handler.Create(applicationapimodels.ApplicationData{
		JobID:       f.job.ID,
		CandidateID: f.candidate.ID,
		Stage:       stage,
	})
	require.Nil(t, err)
	return rec
}

func countNotifications(t *testing.T, conn *gorm.DB) int64 {
	var count int64
	require.Nil(t, conn.Model(&dbmodels.Notification{}).Count(&count).Error)
	return count
}

func TestApplicationCreate(t *testing.T) {
	t.Run(`default stage`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "")
		require.Equal(t, "applied", rec.Stage)
		require.Nil(t, rec.Notes)

		rec = f.create(t, "unknown")
		require.Equal(t, "applied", rec.Stage)

		rec = f.create(t, " Interview ")
		require.Equal(t, "interview", rec.Stage)
	})

	t.Run(`missing job or candidate`, func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.Create(applicationapimodels.ApplicationData{JobID: 999, CandidateID: f.candidate.ID})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = f.handler.Create(applicationapimodels.ApplicationData{JobID: f.job.ID, CandidateID: 999})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestApplicationList(t *testing.T) {
	f := newFixture(t)
	first := f.create(t, "applied")
	second := f.create(t, "offer")

	list, err := f.handler.List(applicationapimodels.ApplicationFilter{})
	require.Nil(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)

	list, err = f.handler.List(applicationapimodels.ApplicationFilter{Stage: "offer"})
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, second.ID, list[0].ID)

	list, err = f.handler.List(applicationapimodels.ApplicationFilter{JobID: f.job.ID + 1})
	require.Nil(t, err)
	require.Len(t, list, 0)

	_, err = f.handler.List(applicationapimodels.ApplicationFilter{Stage: "archived"})
	require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestApplicationUpdate(t *testing.T) {
	t.Run(`invalid stage is ignored without notification`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "")
		var upd applicationapimodels.ApplicationUpdate
		require.Nil(t, json.Unmarshal([]byte(`{"stage": "archived", "notes": "звонок в пятницу"}`), &upd))

		updated, err := f.handler.Update(rec.ID, upd)
		require.Nil(t, err)
		require.Equal(t, "applied", updated.Stage)
		require.Equal(t, "звонок в пятницу", *updated.Notes)
		require.Equal(t, int64(0), countNotifications(t, f.conn))
	})

	t.Run(`valid stage without notification`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "")
		var upd applicationapimodels.ApplicationUpdate
		require.Nil(t, json.Unmarshal([]byte(`{"stage": "screening"}`), &upd))

		updated, err := f.handler.Update(rec.ID, upd)
		require.Nil(t, err)
		require.Equal(t, "screening", updated.Stage)
		require.Equal(t, int64(0), countNotifications(t, f.conn))
	})

	t.Run(`not found`, func(t *testing.T) {
		f := newFixture(t)
		var upd applicationapimodels.ApplicationUpdate
		require.Nil(t, json.Unmarshal([]byte(`{"notes": "x"}`), &upd))
		_, err := f.handler.Update(404, upd)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(f.handler.Delete(404)))
	})
}

func TestApplicationChangeStage(t *testing.T) {
	t.Run(`emits exactly one notification`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "")

		result, err := f.handler.ChangeStage(rec.ID, "interview")
		require.Nil(t, err)
		require.Equal(t, "interview", result.Application.Stage)
		require.Equal(t, "application.stageChanged", result.Notification.Type)
		require.Equal(t, "interview", result.Notification.Payload["stage"])

		got, err := f.handler.Get(rec.ID)
		require.Nil(t, err)
		require.Equal(t, "interview", got.Stage)

		list := []dbmodels.Notification{}
		require.Nil(t, f.conn.Find(&list).Error)
		require.Len(t, list, 1)
		require.Equal(t, models.NotificationStageChanged, list[0].Type)
		require.Equal(t, float64(rec.ID), list[0].Payload["applicationId"])
		require.Equal(t, "interview", list[0].Payload["stage"])

		require.Len(t, f.mailer.sent, 1)
		require.Equal(t, "ivan@mail.ru", f.mailer.sent[0].to)
		require.Contains(t, f.mailer.sent[0].message, "Собеседование")
		require.Contains(t, f.mailer.sent[0].message, "Go developer")
	})

	t.Run(`hired to rejected is allowed`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "hired")
		result, err := f.handler.ChangeStage(rec.ID, "rejected")
		require.Nil(t, err)
		require.Equal(t, "rejected", result.Application.Stage)
		require.Equal(t, int64(1), countNotifications(t, f.conn))
	})

	t.Run(`every stage emits one notification per transition`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "")
		stages := stagepolicy.AllStages()
		// обратный проход: в каждый этап попадаем и сверху, и снизу воронки
		for i := len(stages) - 1; i >= 0; i-- {
			stages = append(stages, stages[i])
		}
		for n, stage := range stages {
			result, err := f.handler.ChangeStage(rec.ID, string(stage))
			require.Nil(t, err)
			require.Equal(t, string(stage), result.Application.Stage)
			require.Equal(t, string(stage), result.Notification.Payload["stage"])
			require.Equal(t, int64(n+1), countNotifications(t, f.conn))
			require.Len(t, f.mailer.sent, n+1)
		}

		list := []dbmodels.Notification{}
		require.Nil(t, f.conn.Order("id").Find(&list).Error)
		require.Len(t, list, len(stages))
		for n, stage := range stages {
			require.Equal(t, models.NotificationStageChanged, list[n].Type)
			require.Equal(t, string(stage), list[n].Payload["stage"])
		}
	})

	t.Run(`invalid stage`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "")
		_, err := f.handler.ChangeStage(rec.ID, "archived")
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		got, err := f.handler.Get(rec.ID)
		require.Nil(t, err)
		require.Equal(t, "applied", got.Stage)
		require.Equal(t, int64(0), countNotifications(t, f.conn))
		require.Len(t, f.mailer.sent, 0)
	})

	t.Run(`unknown application`, func(t *testing.T) {
		f := newFixture(t)
		_, err := f.handler.ChangeStage(404, "offer")
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		require.Equal(t, int64(0), countNotifications(t, f.conn))
	})

	t.Run(`failed notification rolls back stage`, func(t *testing.T) {
		f := newFixture(t)
		rec := f.create(t, "")
		h := NewHandler(f.conn, failingEmitter{}, nil)

		_, err := h.ChangeStage(rec.ID, "offer")
		require.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
		got, err := f.handler.Get(rec.ID)
		require.Nil(t, err)
		require.Equal(t, "applied", got.Stage)
	})

	t.Run(`mail failure does not fail transition`, func(t *testing.T) {
		f := newFixture(t)
		f.mailer.err = errors.New("smtp is down")
		rec := f.create(t, "")
		result, err := f.handler.ChangeStage(rec.ID, "offer")
		require.Nil(t, err)
		require.Equal(t, "offer", result.Application.Stage)
		require.Equal(t, int64(1), countNotifications(t, f.conn))
	})
}
