package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/clubmate/backend/pkg/logger/types"
)

// Client sends transactional mail. Delivery failures are logged and
// swallowed; mail is best-effort.
type Client struct {
	logger *types.Logger
	dialer *gomail.Dialer

	from   string
	domain string
}

func NewClient(logger *types.Logger, dialer *gomail.Dialer, from, domain string) *Client {
	return &Client{
		logger: logger,
		dialer: dialer,
		from:   from,
		domain: domain,
	}
}

// SendInvitationEmail mails a club join link.
func (c *Client) SendInvitationEmail(to, clubName, joinLink string) {
	msg := gomail.NewMessage()

	msg.SetHeader("Message-ID", c.generateMessageID())
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("You have been invited to join %s", clubName))
	msg.SetBody("text/plain", fmt.Sprintf("You have been invited to join %s. Use this link to accept: %s", clubName, joinLink))
	msg.AddAlternative("text/html", fmt.Sprintf(`<p>You have been invited to join <b>%s</b>.</p><p><a href="%s">Accept invitation</a></p>`, clubName, joinLink))

	if err := c.dialer.DialAndSend(msg); err != nil {
		c.logger.Errorf("failed to send invitation email: %v", err)
		return
	}
	c.logger.Info("invitation email successfully sent")
}

func (c *Client) generateMessageID() string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), c.domain)
}
