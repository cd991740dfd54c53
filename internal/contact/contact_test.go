package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := contact.Submission{Name: "Sam", Email: "sam@example.com", Message: "Hello"}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name       string
		submission contact.Submission
	}{
		{"no name", contact.Submission{Email: "sam@example.com", Message: "Hi"}},
		{"blank name", contact.Submission{Name: "  ", Email: "sam@example.com", Message: "Hi"}},
		{"no email", contact.Submission{Name: "Sam", Message: "Hi"}},
		{"bad email", contact.Submission{Name: "Sam", Email: "sam-at-example", Message: "Hi"}},
		{"display name email", contact.Submission{Name: "Sam", Email: "Sam <sam@example.com>", Message: "Hi"}},
		{"no message", contact.Submission{Name: "Sam", Email: "sam@example.com"}},
	}

	for _, testCase := range cases {
		err := testCase.submission.Validate()
		require.ErrorIs(t, err, contact.ErrInvalid, testCase.name)
	}

	require.ErrorIs(t, contact.Submission{}.Validate(), contact.ErrInvalid)
}

type recordingSubmitter struct {
	got []contact.Submission
	err error
}

func (r *recordingSubmitter) Submit(_ context.Context, submission contact.Submission) error {
	r.got = append(r.got, submission)

	return r.err
}

func TestSend(t *testing.T) {
	submitter := &recordingSubmitter{}

	require.ErrorIs(t, contact.Send(t.Context(), submitter, contact.Submission{Name: "Sam"}), contact.ErrInvalid)
	require.Empty(t, submitter.got)

	require.NoError(t, contact.Send(t.Context(), submitter, contact.Submission{
		Name:    " Sam ",
		Email:   "sam@example.com ",
		Message: "Hello\n",
	}))
	require.Equal(t, []contact.Submission{{Name: "Sam", Email: "sam@example.com", Message: "Hello"}}, submitter.got)

	submitter.err = errors.New("boom")
	require.Error(t, contact.Send(t.Context(), submitter, submitter.got[0]))
}

func TestUnwired(t *testing.T) {
	err := contact.Send(t.Context(), contact.Unwired{}, contact.Submission{Name: "Sam", Email: "sam@example.com", Message: "Hi"})
	require.ErrorIs(t, err, contact.ErrNoHandler)
}
