package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	sendQueueSize = 16
	pingPeriod    = 30 * time.Second
	writeWait     = 10 * time.Second
)

type clientSession struct {
	conn   *websocket.Conn
	sendCh chan any
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.TODO())
	sess := clientSession{
		cancel: cancelFn,
		ctx:    ctx,
		conn:   conn,
		sendCh: make(chan any, sendQueueSize),
		done:   make(chan struct{}),
	}
	go sess.startSend()
	return sess
}

// stop возвращается только после завершения горутины отправки:
// после выхода из обработчика websocket соединение возвращается в пул и писать в него нельзя
func (s clientSession) stop() {
	s.cancel()
	<-s.done
}

func (s clientSession) enqueue(msg any) bool {
	select {
	case <-s.ctx.Done():
		return true
	case s.sendCh <- msg:
		return true
	default:
		return false
	}
}

func (s clientSession) startSend() {
	defer close(s.done)
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			s.close()
			return
		case <-ticker.C:
			if s.ctx.Err() != nil {
				continue
			}
			if err := s.ping(); err != nil {
				log.WithError(err).Debug("ошибка отправки ping")
			}
		case msg := <-s.sendCh:
			if s.ctx.Err() != nil {
				continue
			}
			if err := s.send(msg); err != nil {
				log.WithError(err).Error("ошибка отправки сообщения")
			}
		}
	}
}

func (s clientSession) send(msg any) error {
	if s.conn == nil || s.conn.Conn == nil {
		return nil
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(msg)
}

func (s clientSession) ping() error {
	if s.conn == nil || s.conn.Conn == nil {
		return nil
	}
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (s clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	if err != nil {
		log.WithError(err).Debug("ошибка закрытия соединения")
	}
}
