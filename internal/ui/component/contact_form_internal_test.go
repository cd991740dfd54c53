package component

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

// clickField renders the form through the zone manager and releases the left button on the
// first cell of the field's zone.
func clickField(t *testing.T, form *ContactFormModel, index int) (*ContactFormModel, tea.Cmd) {
	t.Helper()

	zone.Scan(form.View())

	var info *zone.ZoneInfo
	require.Eventually(t, func() bool {
		info = zone.Get(form.fieldZone(index))

		return info != nil && !info.IsZero()
	}, time.Second, 5*time.Millisecond)

	return form.Update(tea.MouseMsg{
		X:      info.StartX,
		Y:      info.StartY,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
}

func TestContactFormClickMovesFocus(t *testing.T) {
	form := NewContactFormModel()
	form, _ = form.Update(model.ViewState{Width: 80, KeyZone: model.KZcontactForm})
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Sam")})

	form, _ = clickField(t, form, fieldEmail)
	require.True(t, form.Focused())
	require.Equal(t, fieldEmail, form.focusIndex)
	require.True(t, form.inputs[fieldEmail].Focused())
	require.False(t, form.inputs[fieldName].Focused())

	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, "x", form.Submission().Email)
	require.Equal(t, "Sam", form.Submission().Name)

	form, _ = clickField(t, form, fieldMessage)
	require.True(t, form.message.Focused())
	require.False(t, form.inputs[fieldEmail].Focused())

	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	require.Equal(t, "hi", form.Submission().Message)
}

func TestContactFormClickWhileBlurred(t *testing.T) {
	form := NewContactFormModel()
	form, _ = form.Update(model.ViewState{Width: 80})

	form, cmd := clickField(t, form, fieldSubject)
	require.NotNil(t, cmd)
	require.Equal(t, model.KZcontactForm, cmd())

	form, _ = form.Update(model.ViewState{Width: 80, KeyZone: model.KZcontactForm})
	require.True(t, form.inputs[fieldSubject].Focused())
}
