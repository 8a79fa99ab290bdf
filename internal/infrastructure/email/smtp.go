package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendToolApproved(ctx context.Context, toEmail, toolName, toolSlug string) error {
	toolURL := fmt.Sprintf("%s/tools/%s", s.config.BaseURL, toolSlug)

	subject := fmt.Sprintf("Your submission %q is now live", toolName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your submission is live!</h2>
			<p>Good news: <strong>%s</strong> passed review and is now listed in the directory.</p>
			<p><a href="%s">View your listing</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, toolName, toolURL, toolURL)

	plainBody := fmt.Sprintf(`
Your submission is live!

Good news: %s passed review and is now listed in the directory.

View your listing:
%s
	`, toolName, toolURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendToolRejected(ctx context.Context, toEmail, toolName string) error {
	subject := fmt.Sprintf("Your submission %q was not approved", toolName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Submission update</h2>
			<p>After review, <strong>%s</strong> was not approved for listing.</p>
			<p>You are welcome to revise the submission and try again.</p>
		</body>
		</html>
	`, toolName)

	plainBody := fmt.Sprintf(`
Submission update

After review, %s was not approved for listing.

You are welcome to revise the submission and try again.
	`, toolName)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
