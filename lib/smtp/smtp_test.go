package smtp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmtp(t *testing.T) {
	t.Run(`compose message`, func(t *testing.T) {
		body, err := composeMessage("no-reply@hub.local", "jane@example.com", "Verify your company account", "hello")
		require.Nil(t, err)
		text := string(body)
		require.Contains(t, text, "From: no-reply@hub.local")
		require.Contains(t, text, "To: jane@example.com")
		require.Contains(t, text, "Subject: Verify your company account")
		require.Contains(t, text, "hello")
	})

	t.Run(`not configured is silent`, func(t *testing.T) {
		client := impl{}
		require.Nil(t, client.SendEMail("jane@example.com", "subj", "msg"))
	})
}
