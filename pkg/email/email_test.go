package email

import (
	"errors"
	"net/smtp"
	"testing"
	"time"

	"go-jobboard-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(t *testing.T, cfg *config.Config) (*EmailService, *[]sent) {
	t.Helper()
	var out []sent
	s := NewEmailService(cfg)
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		out = append(out, sent{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
	return s, &out
}

func configured() *config.Config {
	return &config.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   "mailer@example.com",
		SMTPPassword:   "pw",
		SMTPFromEmail:  "noreply@example.com",
		ContactEmailTo: "support@example.com",
	}
}

func TestSendContactEmail(t *testing.T) {
	s, out := newTestService(t, configured())

	err := s.SendContactEmail(ContactEmailData{
		SenderName:  "Ada",
		SenderEmail: "ada@example.com",
		Subject:     "Hello",
		Message:     "<b>hi</b>",
	})
	require.NoError(t, err)
	require.Len(t, *out, 1)

	m := (*out)[0]
	assert.Equal(t, "smtp.example.com:587", m.addr)
	assert.Equal(t, "noreply@example.com", m.from)
	assert.Equal(t, []string{"support@example.com"}, m.to)
	assert.Contains(t, m.msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, m.msg, "Subject: Contact Form: Hello\r\n")
	// Message body is escaped.
	assert.Contains(t, m.msg, "&lt;b&gt;hi&lt;/b&gt;")
}

func TestSendResetCode(t *testing.T) {
	s, out := newTestService(t, configured())

	require.NoError(t, s.SendResetCode("user@example.com", "123456", 30*time.Minute))
	require.Len(t, *out, 1)
	assert.Equal(t, []string{"user@example.com"}, (*out)[0].to)
	assert.Contains(t, (*out)[0].msg, "123456")
	assert.Contains(t, (*out)[0].msg, "30 minutes")
	assert.NotContains(t, (*out)[0].msg, "Reply-To")
}

func TestNotConfigured(t *testing.T) {
	s, out := newTestService(t, &config.Config{})
	assert.False(t, s.IsConfigured())

	err := s.SendResetCode("user@example.com", "123456", time.Minute)
	assert.True(t, errors.Is(err, ErrNotConfigured))

	cfg := configured()
	cfg.ContactEmailTo = ""
	s, out = newTestService(t, cfg)
	assert.ErrorIs(t, s.SendContactEmail(ContactEmailData{SenderEmail: "a@b.c"}), ErrNotConfigured)
	assert.Empty(t, *out)
}
