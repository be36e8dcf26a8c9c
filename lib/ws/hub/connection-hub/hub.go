package connectionhub

import (
	wsmodels "nexora-hcm/models/ws"
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string, conn *websocket.Conn)
	Broadcast(msg wsmodels.ServerMessage)
	IsConnected(userID string) bool
	Count() int
}

func NewInstance() Provider {
	return &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	sync.RWMutex
	clients map[string]clientSession //map[userID]
}

// DeleteClient сессия удаляется, только если она принадлежит этому соединению:
// при переподключении старое соединение не должно закрыть новое
func (i *impl) DeleteClient(userID string, conn *websocket.Conn) {
	i.Lock()
	sess, ok := i.clients[userID]
	ok = ok && sess.conn == conn
	if ok {
		delete(i.clients, userID)
	}
	i.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.Unlock()
	if ok {
		oldSess.stop()
	}
}

// Broadcast не блокируется: если очередь сессии заполнена, сообщение для нее пропускается
func (i *impl) Broadcast(msg wsmodels.ServerMessage) {
	i.RLock()
	defer i.RUnlock()
	for userID, sess := range i.clients {
		if !sess.enqueue(msg) {
			log.WithField("user_id", userID).Warn("очередь сообщений переполнена, событие пропущено")
		}
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.RLock()
	defer i.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) Count() int {
	i.RLock()
	defer i.RUnlock()
	return len(i.clients)
}
