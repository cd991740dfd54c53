package contact

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMailerMessage(t *testing.T) {
	mailer := NewMailer("smtp.example.com", 587, "me@example.com", "secret", "")
	msg := string(mailer.Message(Submission{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "Hire\r\nBcc: evil@example.com",
		Message: "Hello there",
	}))

	require.Contains(t, msg, "To: me@example.com\r\n")
	require.Contains(t, msg, "Reply-To: sam@example.com\r\n")
	require.Contains(t, msg, "Subject: Portfolio Contact: Hire  Bcc: evil@example.com (Sam)\r\n")
	require.NotContains(t, strings.SplitN(msg, "\r\n\r\n", 2)[0], "\r\nBcc:")
	require.Contains(t, msg, "Message:\r\nHello there\r\n")
}

func TestMailerSubmit(t *testing.T) {
	mailer := NewMailer("smtp.example.com", 2525, "me@example.com", "secret", "inbox@example.com")

	var gotAddr string
	var gotTo []string
	mailer.sendMail = func(addr string, _ smtp.Auth, _ string, to []string, _ []byte) error {
		gotAddr = addr
		gotTo = to

		return nil
	}

	require.NoError(t, mailer.Submit(t.Context(), Submission{Name: "Sam", Email: "sam@example.com", Message: "Hi"}))
	require.Equal(t, "smtp.example.com:2525", gotAddr)
	require.Equal(t, []string{"inbox@example.com"}, gotTo)

	mailer.sendMail = func(_ string, _ smtp.Auth, _ string, _ []string, _ []byte) error {
		return errors.New("535 auth failed")
	}
	require.ErrorIs(t, mailer.Submit(t.Context(), Submission{}), ErrSend)

	release := make(chan struct{})
	defer close(release)
	mailer.sendMail = func(_ string, _ smtp.Auth, _ string, _ []string, _ []byte) error {
		<-release

		return nil
	}

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, mailer.Submit(ctx, Submission{}), context.DeadlineExceeded)
}
