package notification

import (
	"fmt"
	connectionhub "nexora-hcm/lib/ws/hub/connection-hub"
	notificationstore "nexora-hcm/lib/notification/store"
	apperrors "nexora-hcm/lib/utils/app-errors"
	"nexora-hcm/models"
	notificationapimodels "nexora-hcm/models/api/notification"
	dbmodels "nexora-hcm/models/db"
	wsmodels "nexora-hcm/models/ws"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DefaultListLimit = 200

// Emitter запись события выполняется в транзакции вызывающей операции:
// ошибка записи события - ошибка всей операции
type Emitter interface {
	Emit(tx *gorm.DB, notificationType models.NotificationType, payload map[string]interface{}) (*dbmodels.Notification, error)
	Publish(rec dbmodels.Notification)
}

type Provider interface {
	Emitter
	List() ([]notificationapimodels.NotificationView, error)
	DeleteOlderThan(before time.Time) (int64, error)
}

// NewHandler hub может быть nil, тогда события только сохраняются
func NewHandler(conn *gorm.DB, hub connectionhub.Provider, listLimit int) Provider {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return impl{
		store:     notificationstore.NewInstance(conn),
		hub:       hub,
		listLimit: listLimit,
	}
}

type impl struct {
	store     notificationstore.Provider
	hub       connectionhub.Provider
	listLimit int
}

func (i impl) Emit(tx *gorm.DB, notificationType models.NotificationType, payload map[string]interface{}) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{
		Type:    notificationType,
		Payload: payload,
	}
	created, err := notificationstore.NewInstance(tx).Create(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка записи события %s", notificationType)
	}
	return created, nil
}

func (i impl) Publish(rec dbmodels.Notification) {
	if i.hub == nil {
		return
	}
	i.hub.Broadcast(wsmodels.ServerMessage{
		Time:    rec.CreatedAt.Format("02.01.2006 15:04:05"),
		Code:    string(rec.Type),
		Msg:     describe(rec),
		Payload: rec.Payload,
	})
}

func (i impl) List() ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.List(i.listLimit)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка событий")
		return nil, apperrors.NewInternal("ошибка получения списка событий")
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) DeleteOlderThan(before time.Time) (int64, error) {
	return i.store.DeleteOlderThan(before)
}

func describe(rec dbmodels.Notification) string {
	switch rec.Type {
	case models.NotificationStageChanged:
		stage, _ := rec.Payload["stage"].(string)
		if stage == "" {
			if typed, ok := rec.Payload["stage"].(models.ApplicationStage); ok {
				stage = string(typed)
			}
		}
		return fmt.Sprintf("Отклик %v переведен на этап «%s»", rec.Payload["applicationId"], models.ApplicationStage(stage).ToHuman())
	default:
		return string(rec.Type)
	}
}
