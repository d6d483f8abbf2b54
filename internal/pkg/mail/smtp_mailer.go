package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/internal/pkg/env"
)

// SendMail sends an HTML email via SMTP
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// NotifyNewInquiry mails the back office about a freshly captured lead.
// No-op when INQUIRY_NOTIFY_EMAIL is unset.
func NotifyNewInquiry(inquiry *models.Inquiry) {
	to := env.GetEnv("INQUIRY_NOTIFY_EMAIL", "")
	if to == "" {
		return
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	body := fmt.Sprintf(
		"<p>Customer: %s (%s)</p><p>Email: %s<br>Phone: %s</p><p>%s</p>",
		inquiry.Name, inquiry.CustomerType, inquiry.Email, inquiry.Phone, inquiry.Message,
	)
	if err := SendMail(to, subject, body); err != nil {
		log.Printf("Failed to send inquiry notification: %v", err)
	}
}
