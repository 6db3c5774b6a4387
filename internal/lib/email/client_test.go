package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.sent = append(f.sent, params)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestRender_PreviewData(t *testing.T) {
	for name, data := range PreviewData {
		html, err := Render(name, data)
		require.NoError(t, err, name)
		assert.Contains(t, html, data["PostTitle"])
		assert.Contains(t, html, data["PostSlug"])
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	html, err := Render(TemplatePostAdded, map[string]string{
		"PostID":    "1",
		"PostSlug":  "x",
		"PostTitle": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestSendPostAddedEmail(t *testing.T) {
	sender := &fakeSender{}
	logger := zerolog.Nop()
	client := NewClientWithSender(sender, "Blog <blog@example.com>", &logger)

	require.NoError(t, client.SendPostAddedEmail("editor@example.com", 7, "hello-world", "Hello"))

	require.Len(t, sender.sent, 1)
	req := sender.sent[0]
	assert.Equal(t, "Blog <blog@example.com>", req.From)
	assert.Equal(t, []string{"editor@example.com"}, req.To)
	assert.Equal(t, "New post: Hello", req.Subject)
	assert.Contains(t, req.Html, "hello-world")
}

func TestSendEmail_ProviderFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("unauthorized")}
	logger := zerolog.Nop()
	client := NewClientWithSender(sender, "Blog <blog@example.com>", &logger)

	err := client.SendPostAddedEmail("editor@example.com", 7, "s", "T")
	assert.ErrorContains(t, err, "failed to send email: unauthorized")
}
