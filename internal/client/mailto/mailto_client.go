package mailto

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/TWRT/direction-dashboard/internal/client"
)

type MailtoClient struct{}

func NewMailtoClient() *MailtoClient {
	return &MailtoClient{}
}

// ComposeLink builds an RFC 6068 mailto URI with subject and body pre-filled.
func (c *MailtoClient) ComposeLink(msg client.MailMessage) (string, error) {
	to := strings.TrimSpace(msg.To)
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return "", fmt.Errorf("invalid recipient %q: %w", to, err)
	}

	query := make([]string, 0, 2)
	if msg.Subject != "" {
		query = append(query, "subject="+escape(msg.Subject))
	}
	if msg.Body != "" {
		query = append(query, "body="+escape(msg.Body))
	}

	link := "mailto:" + addr.Address
	if len(query) > 0 {
		link += "?" + strings.Join(query, "&")
	}
	return link, nil
}

// escape percent-encodes like encodeURIComponent: spaces become %20, not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
