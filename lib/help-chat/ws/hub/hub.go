package connectionhub

import (
	wsmodels "attachment-hub-backend/models/ws"
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// Provider keeps one live help chat connection per portal session.
type Provider interface {
	AddClient(sessionID string, conn *websocket.Conn)
	DeleteClient(sessionID string, conn *websocket.Conn)
	SendMessage(msg wsmodels.ServerMessage)
	IsConnected(sessionID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession // map[sessionID]
}

// DeleteClient drops the session only while conn is still its current connection.
func (i *impl) DeleteClient(sessionID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[sessionID]
	if !ok || sess.conn != conn {
		return
	}
	delete(i.clients, sessionID)
	sess.stop()
}

// AddClient replaces any older connection of the same session.
func (i *impl) AddClient(sessionID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if oldSess, ok := i.clients[sessionID]; ok {
		oldSess.stop()
	}
	i.clients[sessionID] = newSession(conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	sess, ok := i.clients[msg.ToSessionID]
	i.mu.Unlock()
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		log.WithField("session_id", msg.ToSessionID).Warn("ws send buffer full, message dropped")
	}
}

func (i *impl) IsConnected(sessionID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[sessionID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
