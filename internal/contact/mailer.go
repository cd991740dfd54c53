package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

type sendMailFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// Mailer delivers submissions over SMTP using plain auth.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	to       string
	sendMail sendMailFunc
}

// NewMailer creates a Mailer. When to is empty messages are sent to user.
func NewMailer(host string, port int, user string, password string, to string) *Mailer {
	if to == "" {
		to = user
	}

	return &Mailer{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		to:       to,
		sendMail: smtp.SendMail,
	}
}

func (m *Mailer) Submit(ctx context.Context, submission Submission) error {
	msg := m.Message(submission)
	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	auth := smtp.PlainAuth("", m.user, m.password, m.host)

	// smtp.SendMail has no context support, so it runs detached and the caller stops waiting
	// when ctx ends.
	result := make(chan error, 1)
	go func() {
		result <- m.sendMail(addr, auth, m.user, []string{m.to}, msg)
	}()

	select {
	case err := <-result:
		if err != nil {
			return errors.Join(err, ErrSend)
		}
	case <-ctx.Done():
		return errors.Join(ctx.Err(), ErrSend)
	}

	slog.Info("Contact message sent", slog.String("to", m.to), slog.String("from", submission.Email))

	return nil
}

// Message builds the raw RFC 5322 message for a submission.
func (m *Mailer) Message(submission Submission) []byte {
	subject := "Portfolio Contact: " + submission.Name
	if submission.Subject != "" {
		subject = fmt.Sprintf("Portfolio Contact: %s (%s)", submission.Subject, submission.Name)
	}

	var body strings.Builder
	body.WriteString("To: " + m.to + "\r\n")
	body.WriteString("Subject: " + headerValue(subject) + "\r\n")
	body.WriteString("From: " + m.user + "\r\n")
	body.WriteString("Reply-To: " + headerValue(submission.Email) + "\r\n")
	body.WriteString("\r\n")
	body.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	body.WriteString("Name: " + submission.Name + "\r\n")
	body.WriteString("Email: " + submission.Email + "\r\n")
	if submission.Subject != "" {
		body.WriteString("Subject: " + submission.Subject + "\r\n")
	}
	body.WriteString("Message:\r\n" + submission.Message + "\r\n")

	return []byte(body.String())
}

// headerValue strips line breaks so user input cannot inject headers.
func headerValue(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(value)
}
