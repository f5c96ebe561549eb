package mailer

import (
	"fmt"
	"html"

	"legal-letter-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLetter(toEmail, title, content string) error
}

// dialer is the subset of gomail.Dialer the service needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	dialer     dialer
	senderName string
	senderAddr string
	logger     logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName, senderAddr string, log logger.ILogger) IEmailService {
	return newEmailService(gomail.NewDialer(host, port, username, password), senderName, senderAddr, log)
}

func newEmailService(d dialer, senderName, senderAddr string, log logger.ILogger) *emailService {
	return &emailService{
		dialer:     d,
		senderName: senderName,
		senderAddr: senderAddr,
		logger:     log,
	}
}

func (s *emailService) SendLetter(toEmail, title, content string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderAddr, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Legal Letter: %s", title))
	m.SetBody("text/html", renderLetter(content))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send letter", map[string]interface{}{
			"to":    toEmail,
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("MAILER", "Letter sent", map[string]interface{}{"to": toEmail})
	return nil
}

func renderLetter(content string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px;">
			<div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
				<pre style="white-space: pre-wrap; font-family: Arial, sans-serif; line-height: 1.6; margin: 0;">%s</pre>
			</div>
			<div style="border-top: 1px solid #ddd; padding-top: 20px; color: #666; font-size: 12px;">
				<p>This letter was professionally generated by Talk To My Lawyer.</p>
				<p>For questions about this letter, please contact the sender directly.</p>
			</div>
		</div>
	`, html.EscapeString(content))
}
