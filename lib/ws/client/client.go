package wsclient

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	// PongWait должен быть больше периода ping в connection-hub
	PongWait       = 60 * time.Second
	maxMessageSize = 4096
)

// WsClient лента только на отправку: входящие сообщения читаются, чтобы обработать pong и закрытие
type WsClient struct {
	conn   *websocket.Conn
	userID string
	logger *log.Entry
}

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
		logger: log.WithField("user_id", userID),
	}
}

var closeCodes = []int{
	websocket.CloseNormalClosure,
	websocket.CloseGoingAway,
	websocket.CloseNoStatusReceived,
	websocket.CloseAbnormalClosure,
}

// Dispatch блокируется до закрытия соединения или истечения PongWait без ответа клиента
func (c *WsClient) Dispatch() {
	if c.conn == nil {
		return
	}
	c.conn.SetReadLimit(maxMessageSize)
	c.extendDeadline()
	c.conn.SetPongHandler(func(string) error {
		c.extendDeadline()
		return nil
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				c.logger.WithError(err).Warn("соединение ws прервано")
			}
			return
		}
		c.logger.WithField("size", len(data)).Debug("входящее сообщение проигнорировано")
	}
}

func (c *WsClient) extendDeadline() {
	if err := c.conn.SetReadDeadline(time.Now().Add(PongWait)); err != nil {
		c.logger.WithError(err).Debug("ошибка установки таймаута чтения")
	}
}
