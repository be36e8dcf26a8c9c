package notification

import (
	"testing"
	"time"

	testdb "nexora-hcm/lib/utils/test-db"
	"nexora-hcm/models"
	dbmodels "nexora-hcm/models/db"
	wsmodels "nexora-hcm/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type hubSpy struct {
	messages []wsmodels.ServerMessage
}

func (h *hubSpy) AddClient(string, *websocket.Conn)    {}
func (h *hubSpy) DeleteClient(string, *websocket.Conn) {}
func (h *hubSpy) IsConnected(string) bool              { return false }
func (h *hubSpy) Count() int                           { return 0 }
func (h *hubSpy) Broadcast(msg wsmodels.ServerMessage) {
	h.messages = append(h.messages, msg)
}

func TestNotificationHandler(t *testing.T) {
	t.Run(`list is capped and newest first`, func(t *testing.T) {
		conn := testdb.New(t)
		base := time.Now().Add(-time.Hour)
		for idx := 0; idx < 205; idx++ {
			rec := dbmodels.Notification{
				Type:      models.NotificationStageChanged,
				Payload:   dbmodels.JSONMap{"applicationId": idx},
				CreatedAt: base.Add(time.Duration(idx) * time.Second),
			}
			require.Nil(t, conn.Create(&rec).Error)
		}
		h := NewHandler(conn, nil, 0)
		list, err := h.List()
		require.Nil(t, err)
		require.Len(t, list, DefaultListLimit)
		require.Equal(t, float64(204), list[0].Payload["applicationId"])
		require.Equal(t, float64(5), list[len(list)-1].Payload["applicationId"])

		list, err = NewHandler(conn, nil, 10).List()
		require.Nil(t, err)
		require.Len(t, list, 10)
	})

	t.Run(`empty list`, func(t *testing.T) {
		list, err := NewHandler(testdb.New(t), nil, 0).List()
		require.Nil(t, err)
		require.NotNil(t, list)
		require.Len(t, list, 0)
	})

	t.Run(`emit fails together with transaction`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewHandler(conn, nil, 0)
		err := conn.Transaction(func(tx *gorm.DB) error {
			_, err := h.Emit(tx, models.NotificationStageChanged, map[string]interface{}{"stage": "offer"})
			require.Nil(t, err)
			return gorm.ErrInvalidTransaction
		})
		require.NotNil(t, err)
		list, err := h.List()
		require.Nil(t, err)
		require.Len(t, list, 0)
	})

	t.Run(`publish to hub`, func(t *testing.T) {
		conn := testdb.New(t)
		hub := &hubSpy{}
		h := NewHandler(conn, hub, 0)
		rec, err := h.Emit(conn, models.NotificationStageChanged, map[string]interface{}{"applicationId": 7, "stage": "offer"})
		require.Nil(t, err)
		h.Publish(*rec)
		require.Len(t, hub.messages, 1)
		require.Equal(t, "application.stageChanged", hub.messages[0].Code)
		require.Equal(t, "Отклик 7 переведен на этап «Оффер»", hub.messages[0].Msg)

		NewHandler(conn, nil, 0).Publish(*rec)
	})
}
