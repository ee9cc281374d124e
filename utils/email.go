package utils

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// MailEnabled reports whether SMTP settings are present. When they are not,
// callers skip sending instead of failing.
func MailEnabled() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("EMAIL_USER") != ""
}

func SendEmail(to, subject, body string) error {
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
