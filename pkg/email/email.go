package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"go-jobboard-backend/config"
)

var ErrNotConfigured = errors.New("email: SMTP is not configured")

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

type resetEmailData struct {
	Code    string
	Minutes int
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		send:      smtp.SendMail,
	}
}

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New Contact Form Submission</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>New Contact Form Submission</h2>
    <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <div style="background: #f9f9f9; padding: 15px; border-left: 4px solid #0066cc;">{{.Message}}</div>
    <p style="color: #888; font-size: 12px;">Reply directly to {{.SenderEmail}}.</p>
</body>
</html>`))

var resetTmpl = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Password Reset Code</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>Password Reset</h2>
    <p>Use this code to reset your password:</p>
    <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
    <p>The code expires in {{.Minutes}} minutes. If you did not ask for a reset you can ignore this email.</p>
</body>
</html>`))

// SendContactEmail sends a contact form email to the configured recipient
func (s *EmailService) SendContactEmail(data ContactEmailData) error {
	if s.toEmail == "" {
		return fmt.Errorf("%w: CONTACT_EMAIL_TO missing", ErrNotConfigured)
	}
	subject := "Contact Form"
	if data.Subject != "" {
		subject = fmt.Sprintf("Contact Form: %s", data.Subject)
	}
	return s.sendHTML(s.toEmail, data.SenderEmail, subject, contactTmpl, data)
}

// SendResetCode mails a password reset code to the account owner.
func (s *EmailService) SendResetCode(to, code string, ttl time.Duration) error {
	return s.sendHTML(to, "", "Your password reset code", resetTmpl, resetEmailData{
		Code:    code,
		Minutes: int(ttl.Minutes()),
	})
}

func (s *EmailService) sendHTML(to, replyTo, subject string, tmpl *template.Template, data any) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.fromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.Write(body.Bytes())

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
