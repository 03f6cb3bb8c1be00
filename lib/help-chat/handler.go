package helpchathandler

import (
	"attachment-hub-backend/lib/cache"
	yagptclient "attachment-hub-backend/lib/help-chat/yagpt-client"
	portalapimodels "attachment-hub-backend/models/api/portal"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Ask(ctx context.Context, sessionID string, data portalapimodels.ChatRequest) (response portalapimodels.ChatResponse, hMsg string, err error)
	History(ctx context.Context, sessionID string) (list []portalapimodels.ChatMessage, err error)
	Clear(ctx context.Context, sessionID string) error
}

var Instance Provider

const (
	userRole      = "You"
	assistantRole = "Assistant"
	// historyLimit caps the stored transcript; older lines are dropped first.
	historyLimit = 50
	gptPrompt    = "You are the help assistant of an attachment testimony portal where students share internship experiences. " +
		"Answer briefly and only about using the portal."
)

func NewHandler(ttl time.Duration, iamToken, catalogID string) {
	var gpt yagptclient.Provider
	if iamToken != "" && catalogID != "" {
		gpt = yagptclient.NewClient(iamToken, catalogID)
	}
	Instance = impl{
		cache: cache.Instance,
		gpt:   gpt,
		ttl:   ttl,
	}
}

type impl struct {
	cache cache.Provider
	gpt   yagptclient.Provider
	ttl   time.Duration
}

func (i impl) Ask(ctx context.Context, sessionID string, data portalapimodels.ChatRequest) (portalapimodels.ChatResponse, string, error) {
	if err := data.Validate(); err != nil {
		return portalapimodels.ChatResponse{}, err.Error(), nil
	}
	history, err := i.History(ctx, sessionID)
	if err != nil {
		return portalapimodels.ChatResponse{}, "", err
	}
	reply := i.reply(ctx, sessionID, data.Message)
	history = append(history,
		portalapimodels.ChatMessage{Role: userRole, Text: data.Message},
		portalapimodels.ChatMessage{Role: assistantRole, Text: reply},
	)
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	body, err := json.Marshal(history)
	if err != nil {
		return portalapimodels.ChatResponse{}, "", errors.Wrap(err, "chat history encode failed")
	}
	if err = i.cache.Set(ctx, historyKey(sessionID), body, i.ttl); err != nil {
		return portalapimodels.ChatResponse{}, "", errors.Wrap(err, "chat history save failed")
	}
	return portalapimodels.ChatResponse{Reply: reply, History: history}, "", nil
}

func (i impl) reply(ctx context.Context, sessionID, message string) string {
	if reply, ok := KeywordReply(message); ok {
		return reply
	}
	if i.gpt == nil {
		return defaultReply
	}
	answer, err := i.gpt.Answer(ctx, gptPrompt, message)
	answer = strings.TrimSpace(answer)
	if err != nil || answer == "" {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Warn("help chat fallback to default reply")
		return defaultReply
	}
	return answer
}

func (i impl) History(ctx context.Context, sessionID string) ([]portalapimodels.ChatMessage, error) {
	list := []portalapimodels.ChatMessage{}
	body, found, err := i.cache.Get(ctx, historyKey(sessionID))
	if err != nil {
		return nil, errors.Wrap(err, "chat history load failed")
	}
	if !found {
		return list, nil
	}
	if err = json.Unmarshal(body, &list); err != nil {
		log.WithField("session_id", sessionID).WithError(err).Warn("broken chat history dropped")
		return []portalapimodels.ChatMessage{}, nil
	}
	return list, nil
}

func (i impl) Clear(ctx context.Context, sessionID string) error {
	return i.cache.Delete(ctx, historyKey(sessionID))
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("help_chat:%s", sessionID)
}
