package helpchathandler

import "strings"

const (
	helpReply      = "How can I assist you today?"
	testimonyReply = "To add a testimony, go to the Testimonies page and fill out the form."
	defaultReply   = "I'm here to help! Please ask about testimonies or the app."
)

// KeywordReply answers the messages the portal knows about. ok is false for anything else.
func KeywordReply(message string) (reply string, ok bool) {
	message = strings.ToLower(message)
	switch {
	case strings.Contains(message, "help"):
		return helpReply, true
	case strings.Contains(message, "testimony"):
		return testimonyReply, true
	}
	return "", false
}
