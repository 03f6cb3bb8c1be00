package wsmodels

import (
	portalapimodels "attachment-hub-backend/models/api/portal"
)

const (
	ChatReplyCode = "chat_reply"
	ErrorCode     = "error"
)

type ClientMessage struct {
	Message string `json:"message"`
}

type ServerMessage struct {
	ToSessionID string                        `json:"-"`
	Time        string                        `json:"time"` // event time
	Code        string                        `json:"code"` // chat_reply / error
	Msg         string                        `json:"msg"`
	History     []portalapimodels.ChatMessage `json:"history,omitempty"`
}
