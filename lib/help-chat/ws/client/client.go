package wsclient

import (
	helpchathandler "attachment-hub-backend/lib/help-chat"
	connectionhub "attachment-hub-backend/lib/help-chat/ws/hub"
	portalapimodels "attachment-hub-backend/models/api/portal"
	wsmodels "attachment-hub-backend/models/ws"
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(sessionID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:      c,
		sessionID: sessionID,
	}
}

type WsClient struct {
	conn      *websocket.Conn
	sessionID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

func (c *WsClient) Dispatch() {
	logger := log.WithField("session_id", c.sessionID)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("ws message read failed")
			}
			break
		}
		connectionhub.Instance.SendMessage(c.handle(data))
	}
}

func (c *WsClient) handle(data []byte) wsmodels.ServerMessage {
	msg := wsmodels.ServerMessage{
		ToSessionID: c.sessionID,
		Time:        time.Now().Format(time.RFC3339),
	}
	request := wsmodels.ClientMessage{}
	if err := json.Unmarshal(data, &request); err != nil {
		msg.Code = wsmodels.ErrorCode
		msg.Msg = "message must be JSON like {\"message\": \"...\"}"
		return msg
	}
	resp, hMsg, err := helpchathandler.Instance.Ask(context.Background(), c.sessionID, portalapimodels.ChatRequest{Message: request.Message})
	if err != nil {
		log.WithField("session_id", c.sessionID).WithError(err).Error("help chat failed")
		msg.Code = wsmodels.ErrorCode
		msg.Msg = "chat is not available right now"
		return msg
	}
	if hMsg != "" {
		msg.Code = wsmodels.ErrorCode
		msg.Msg = hMsg
		return msg
	}
	msg.Code = wsmodels.ChatReplyCode
	msg.Msg = resp.Reply
	msg.History = resp.History
	return msg
}
