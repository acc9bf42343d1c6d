// Package notify delivers rendered departure boards to Slack.
package notify

import (
	"fmt"

	"github.com/slack-go/slack"
)

// DeliveryError reports a message Slack refused, carrying the upstream
// error code string (e.g. "invalid_auth", "channel_not_found").
type DeliveryError struct {
	Code string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("slack delivery failed: %s", e.Code)
}

// Slack posts messages into a single channel.
type Slack struct {
	client  *slack.Client
	channel string
}

// NewSlack builds a notifier for the given bot token and channel ID.
func NewSlack(token, channel string) *Slack {
	return &Slack{
		client:  slack.New(token),
		channel: channel,
	}
}

// Notify posts the text to the configured channel. Failures surface as a
// DeliveryError; the caller decides whether that is fatal (it is not for a
// board that was already printed).
func (s *Slack) Notify(text string) error {
	_, _, err := s.client.PostMessage(s.channel, slack.MsgOptionText(text, false))
	if err != nil {
		return &DeliveryError{Code: err.Error()}
	}
	return nil
}
