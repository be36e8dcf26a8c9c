package dbmodels

import (
	"nexora-hcm/models"
	notificationapimodels "nexora-hcm/models/api/notification"
	"time"
)

type Notification struct {
	ID        uint                    `gorm:"primaryKey"`
	Type      models.NotificationType `gorm:"type:varchar(100);index"`
	Payload   JSONMap                 `gorm:"type:jsonb"`
	CreatedAt time.Time               `gorm:"index"`
}

func (r Notification) ToModel() notificationapimodels.NotificationView {
	payload := map[string]interface{}(r.Payload)
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return notificationapimodels.NotificationView{
		ID:        r.ID,
		Type:      string(r.Type),
		Payload:   payload,
		CreatedAt: r.CreatedAt,
	}
}
