package utility

import (
	"net/smtp"
	"os"
)

func SendMail(msg string, receiver string, subject string) error {
	from := os.Getenv("MAILING_ADDRESS")
	password := os.Getenv("MAILING_SERVICE_PSWD")

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.hostinger.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	message := []byte(
		"From: Naukri Vacancy\r\n" +
			"To: " + receiver + "\r\n" +
			"Subject: " + subject + "\r\n\r\n" +
			msg,
	)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{receiver}, message)
}
