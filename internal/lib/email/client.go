// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders
// HTML bodies from templates embedded in the binary.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/deppfellow/blog-posts/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Sender is the part of the Resend API the client uses.
// resend.Client.Emails satisfies it.
type Sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	// sender is the provider client used to send emails via API.
	sender Sender

	// from is the sender identity, e.g. "Blog <no-reply@example.com>".
	from string

	logger *zerolog.Logger
}

// NewClient creates an email Client.
//
// It initializes a Resend client with the API key from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return NewClientWithSender(resend.NewClient(cfg.Integration.ResendAPIKey).Emails, cfg.Integration.FromAddress(), logger)
}

// NewClientWithSender builds a Client around any Sender.
func NewClientWithSender(sender Sender, from string, logger *zerolog.Logger) *Client {
	return &Client{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// Render executes the named template with data.
func Render(templateName Template, data map[string]string) (string, error) {
	tmplPath := fmt.Sprintf("templates/%s.html", templateName)

	tmpl, err := template.ParseFS(templateFS, tmplPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	return body.String(), nil
}

// SendEmail sends an email with HTML rendered from a template.
//
// Inputs:
//   - to: recipient email address
//   - subject: email subject line
//   - templateName: which template to use (e.g. "post_added")
//   - data: key/value pairs available inside the template
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.sender.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("to", to).
		Str("template", string(templateName)).
		Msg("email sent")

	return nil
}

// SendPostAddedEmail tells to that a post was published.
func (c *Client) SendPostAddedEmail(to string, id int64, slug, title string) error {
	data := map[string]string{
		"PostID":    strconv.FormatInt(id, 10),
		"PostSlug":  slug,
		"PostTitle": title,
	}

	return c.SendEmail(
		to,
		"New post: "+title,
		TemplatePostAdded,
		data,
	)
}
