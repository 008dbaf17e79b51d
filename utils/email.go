package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendPasswordResetEmail mails a one-time code for the reset flow.
func SendPasswordResetEmail(to, name, otp string) error {
	subject := "Your password reset code"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Use the code below to reset your password. It expires in 10 minutes.</p>
		<p><strong>%s</strong></p>
		<p>If you did not request a reset, you can ignore this email.</p>
		<p>Best regards,</p>
		<p>The HandyHeroes Team</p>
	`, name, otp)
	return SendEmail(to, subject, body)
}
