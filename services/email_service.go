package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"gopkg.in/gomail.v2"

	"pulse-afisha-api/config"
	"pulse-afisha-api/repositories"
)

// How long a password reset code stays valid.
const ResetCodeTTL = 15 * time.Minute

// EmailService sends outbound mail for the password reset flow. Sending is
// best-effort: callers log failures and keep going.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
	codes  repositories.ResetCodeStore
}

func NewEmailService(cfg *config.Config, codes repositories.ResetCodeStore) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
		codes:  codes,
	}
}

// Generate a random 6-digit reset code
func generateResetCode() string {
	const digits = "0123456789"
	code := make([]byte, 6)

	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}

	return string(code)
}

// SendPasswordReset generates a reset code, stores it and mails it out.
func (es *EmailService) SendPasswordReset(email, name string) error {
	code := generateResetCode()

	if err := es.codes.Store(email, code, ResetCodeTTL); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if name == "" {
		name = "there"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Pulse Afisha - Password Reset")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password Reset</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #6f42c1; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .code { background: #e9ecef; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0; }
        .code-number { font-size: 32px; font-weight: bold; color: #6f42c1; letter-spacing: 8px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Pulse Afisha</h1>
            <p>Password Reset</p>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>We received a request to reset the password for your Pulse Afisha account.</p>

            <div class="code">
                <p><strong>Your reset code is:</strong></p>
                <div class="code-number">%s</div>
                <p><small>This code will expire in 15 minutes.</small></p>
            </div>

            <p>Enter this code on the password reset page to choose a new password.</p>

            <p>If you didn't request a reset, you can safely ignore this email.</p>

            <p><strong>The Pulse Afisha Team</strong></p>
        </div>
        <div class="footer">
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, name, code)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// ConsumeResetCode checks a submitted code and invalidates it on success.
func (es *EmailService) ConsumeResetCode(email, code string) (bool, error) {
	return es.codes.Consume(email, code)
}
