package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendBookingConfirmation(toEmail, shipmentNumber string, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Order Confirmation - Swift Courier")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Your shipment number is <strong>%s</strong>.</p>
		<p>Order total: <strong>$%.2f</strong></p>
		<p>You can follow your package on the tracking page using the shipment number above.</p>
	`, shipmentNumber, total))

	return s.dialer.DialAndSend(m)
}
