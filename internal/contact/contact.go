// Package contact validates contact form submissions and hands them to a Submitter.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrInvalid   = errors.New("invalid submission")
	ErrNoHandler = errors.New("contact form is not connected to a handler")
	ErrSend      = errors.New("failed to send message")

	errNameRequired    = fmt.Errorf("%w: name is required", ErrInvalid)
	errEmailRequired   = fmt.Errorf("%w: email is required", ErrInvalid)
	errEmailInvalid    = fmt.Errorf("%w: email address is invalid", ErrInvalid)
	errMessageRequired = fmt.Errorf("%w: message is required", ErrInvalid)
)

// Submission is a single filled in contact form. Subject is optional.
type Submission struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate returns every problem with the submission joined together, or nil.
func (s Submission) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errNameRequired)
	}

	if err := ValidateEmail(s.Email); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, errMessageRequired)
	}

	return errors.Join(errs...)
}

func ValidateName(value string) error {
	if strings.TrimSpace(value) == "" {
		return errNameRequired
	}

	return nil
}

func ValidateEmail(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errEmailRequired
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return errEmailInvalid
	}

	return nil
}

func ValidateMessage(value string) error {
	if strings.TrimSpace(value) == "" {
		return errMessageRequired
	}

	return nil
}

// Submitter delivers a validated submission.
type Submitter interface {
	Submit(ctx context.Context, submission Submission) error
}

// Unwired is the Submitter used when no destination is configured. It always returns
// ErrNoHandler.
type Unwired struct{}

func (Unwired) Submit(_ context.Context, _ Submission) error {
	return ErrNoHandler
}

// Send validates the submission and passes the normalized result to submitter.
func Send(ctx context.Context, submitter Submitter, submission Submission) error {
	submission = submission.Normalize()
	if err := submission.Validate(); err != nil {
		return err
	}

	return submitter.Submit(ctx, submission)
}
