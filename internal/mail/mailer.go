package mail

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/config"
)

// Mailer sends transactional auth emails.
type Mailer interface {
	SendVerificationEmail(to, token string, ttlMinutes int) error
	SendPasswordResetEmail(to, token string, ttlMinutes int) error
}

// SMTPMailer delivers mail through a gomail SMTP dialer.
type SMTPMailer struct {
	cfg     config.MailConfig
	baseURL string
	logger  *zap.Logger
}

// NewSMTPMailer creates the mailer.
func NewSMTPMailer(cfg config.MailConfig, baseURL string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, baseURL: baseURL, logger: logger}
}

// SendVerificationEmail mails the signup confirmation link.
func (m *SMTPMailer) SendVerificationEmail(to, token string, ttlMinutes int) error {
	link := fmt.Sprintf("%s/auth/verify-email?token=%s", m.baseURL, token)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <h2>Confirm your email</h2>
    <p>Click the link below to verify your email address:</p>
    <p><a href="%s">%s</a></p>
    <p>The link expires in %d minutes.</p>
  </div>
</body>
</html>`, link, link, ttlMinutes)

	return m.send(to, "Verify your email", body)
}

// SendPasswordResetEmail mails the password reset link.
func (m *SMTPMailer) SendPasswordResetEmail(to, token string, ttlMinutes int) error {
	link := fmt.Sprintf("%s/auth/forgot-password?token=%s", m.baseURL, token)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <h2>Reset your password</h2>
    <p>We received a request to reset your password. Follow the link below:</p>
    <p><a href="%s">%s</a></p>
    <p>The link expires in %d minutes. If you did not request this, ignore this email.</p>
  </div>
</body>
</html>`, link, link, ttlMinutes)

	return m.send(to, "Reset your password", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	if m.cfg.SMTPHost == "" || m.cfg.From == "" {
		m.logger.Warn("mail config missing, skip send", zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
