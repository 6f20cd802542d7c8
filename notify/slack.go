package notify

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack mirrors mutation feedback into Slack channels, used when hrmsctl
// runs headless (scheduled exports, bulk payroll generation).
type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func ConnectSlack() *Slack {
	token := os.Getenv("SLACK_BOT_TOKEN")
	infoCh := os.Getenv("SLACK_INFO_CHANNEL")
	errorCh := os.Getenv("SLACK_ERROR_CHANNEL")

	return NewSlack(token, SlackOption{InfoChannelID: infoCh, ErrorChannelID: errorCh})
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

// Success and Error satisfy Notifier; delivery failures are dropped, a
// missed toast must never fail the mutation that triggered it.
func (s *Slack) Success(message string) {
	_ = s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) {
	_ = s.postMessage(s.options.ErrorChannelID, message)
}
