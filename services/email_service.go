package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"motohub-api/config"
	"motohub-api/models"
)

// EmailService sends price-alert notifications over SMTP
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendPriceAlert notifies the user that the motorcycle's price dropped
// to or below their target
func (es *EmailService) SendPriceAlert(user *models.User, m *models.Motorcycle, alert *models.PriceAlert) error {
	subject := fmt.Sprintf("Price alert: %s %s is now $%.2f", m.Manufacturer, m.Model, m.PriceUSD)

	body := fmt.Sprintf(`
		<h2>Good news, %s!</h2>
		<p>The <strong>%d %s %s</strong> you are watching dropped to
		<strong>$%.2f</strong>, at or below your target of $%.2f.</p>
		<p>Availability: %s</p>
		<p>— The %s team</p>
	`, user.Name, m.Year, m.Manufacturer, m.Model, m.PriceUSD, alert.TargetPrice, m.Availability, es.config.FromName)

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send price alert email: %w", err)
	}

	log.Printf("Price alert email sent to %s for motorcycle %s", user.Email, m.ID)
	return nil
}
