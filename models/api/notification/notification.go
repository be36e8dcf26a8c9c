package notificationapimodels

import "time"

type NotificationView struct {
	ID        uint                   `json:"id"`
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}
