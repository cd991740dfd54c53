package component

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldSubmit
	fieldCount

	messageHeight = 5
)

func NewContactFormModel() *ContactFormModel {
	return &ContactFormModel{
		inputs: []*ValidatingTextInputModel{
			NewValidatingTextInputModel("Name", "", "Your Name", ValidatorFunc(contact.ValidateName)),
			NewValidatingTextInputModel("Email", "", "Your Email", ValidatorFunc(contact.ValidateEmail)),
			NewValidatingTextInputModel("Subject", "", "Subject"),
		},
		message: NewTextAreaModel("Your Message", messageHeight),
		id:      zone.NewPrefix(),
	}
}

// ContactFormModel is the name / email / subject / message form. Keys only reach it while the
// form key zone is active.
type ContactFormModel struct {
	inputs         []*ValidatingTextInputModel
	message        textarea.Model
	messageErr     error
	messageTouched bool
	focusIndex     int
	focused        bool
	sending        bool
	width          int
	id             string
}

func (m *ContactFormModel) Init() tea.Cmd {
	return nil
}

func (m *ContactFormModel) Update(msg tea.Msg) (*ContactFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.setWidth(msg.Width)
		if msg.KeyZone == model.KZcontactForm && !m.focused {
			return m, m.focus(m.focusIndex)
		}
		if msg.KeyZone != model.KZcontactForm && m.focused {
			m.blur()
		}
	case command.ContactResultMsg:
		m.sending = false
		if msg.Err == nil {
			m.reset()
			if m.focused {
				return m, m.focus(fieldName)
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for index := range fieldCount {
			if zone.Get(m.fieldZone(index)).InBounds(msg) {
				if !m.focused {
					m.focusIndex = index

					return m, command.SetKeyZone(model.KZcontactForm)
				}

				if index == fieldSubmit {
					return m, m.submit()
				}

				return m, m.focus(index)
			}
		}
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}

		return m.onKey(msg)
	}

	return m, nil
}

func (m *ContactFormModel) onKey(msg tea.KeyMsg) (*ContactFormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.Back):
		return m, command.SetKeyZone(model.KZpage)
	case key.Matches(msg, input.Default.Submit):
		return m, m.submit()
	case key.Matches(msg, input.Default.NextField):
		return m, m.cycle(input.Forward)
	case key.Matches(msg, input.Default.PrevField):
		return m, m.cycle(input.Backward)
	case key.Matches(msg, input.Default.Accept):
		switch m.focusIndex {
		case fieldSubmit:
			return m, m.submit()
		case fieldMessage:
			// newline, handled by the textarea below
		default:
			return m, m.cycle(input.Forward)
		}
	}

	var cmd tea.Cmd
	switch m.focusIndex {
	case fieldMessage:
		before := m.message.Value()
		m.message, cmd = m.message.Update(msg)
		if m.message.Value() != before {
			m.messageTouched = true
			m.messageErr = contact.ValidateMessage(m.message.Value())
		}
	case fieldSubmit:
	default:
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	}

	return m, cmd
}

// Submission returns the current field values.
func (m *ContactFormModel) Submission() contact.Submission {
	return contact.Submission{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Subject: m.inputs[fieldSubject].Value(),
		Message: m.message.Value(),
	}
}

func (m *ContactFormModel) Focused() bool {
	return m.focused
}

func (m *ContactFormModel) Sending() bool {
	return m.sending
}

func (m *ContactFormModel) submit() tea.Cmd {
	if m.sending {
		return nil
	}

	var errs []error
	for _, field := range m.inputs {
		field.Touch()
		if err := field.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	m.messageTouched = true
	m.messageErr = contact.ValidateMessage(m.message.Value())
	if m.messageErr != nil {
		errs = append(errs, m.messageErr)
	}

	if len(errs) > 0 {
		return command.SetStatusMessage(errs[0].Error(), true)
	}

	m.sending = true

	return command.SubmitContact(m.Submission())
}

func (m *ContactFormModel) cycle(dir input.Direction) tea.Cmd {
	next := m.focusIndex + 1
	if dir == input.Backward {
		next = m.focusIndex - 1
	}

	if next >= fieldCount {
		next = 0
	} else if next < 0 {
		next = fieldCount - 1
	}

	return m.focus(next)
}

func (m *ContactFormModel) focus(index int) tea.Cmd {
	m.blur()
	m.focused = true
	m.focusIndex = index

	switch index {
	case fieldMessage:
		return m.message.Focus()
	case fieldSubmit:
		return nil
	default:
		return m.inputs[index].Focus()
	}
}

func (m *ContactFormModel) blur() {
	m.focused = false
	for _, field := range m.inputs {
		field.Blur()
	}
	m.message.Blur()
}

func (m *ContactFormModel) reset() {
	for _, field := range m.inputs {
		field.Reset()
	}
	m.message.Reset()
	m.messageErr = nil
	m.messageTouched = false
	m.focusIndex = fieldName
}

func (m *ContactFormModel) setWidth(width int) {
	m.width = width
	fieldWidth := max(10, width-lipgloss.Width(styles.FormLabel.Render(""))-2)
	for _, field := range m.inputs {
		field.SetWidth(fieldWidth)
	}
	m.message.SetWidth(fieldWidth)
}

// SetWidth sizes the form to fit within width cells.
func (m *ContactFormModel) SetWidth(width int) {
	m.setWidth(width)
}

func (m *ContactFormModel) fieldZone(index int) string {
	return m.id + string(rune('a'+index))
}

func (m *ContactFormModel) View() string {
	rows := make([]string, 0, fieldCount)
	for index, field := range m.inputs {
		rows = append(rows, m.markField(index, field.View()))
	}

	errRow := " "
	if m.messageTouched && m.messageErr != nil {
		errRow = styles.FormError.Render(m.messageErr.Error())
	}
	messageRow := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.FormLabel.Render("Message"),
		lipgloss.JoinVertical(lipgloss.Left, m.message.View(), errRow))
	rows = append(rows, m.markField(fieldMessage, messageRow))

	button := styles.BlurredSubmitButton
	if m.focused && m.focusIndex == fieldSubmit {
		button = styles.FocusedSubmitButton
	}
	if m.sending {
		button = styles.BlurredStyle.Render("[ Sending... ]")
	}
	rows = append(rows, zone.Mark(m.fieldZone(fieldSubmit), button))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// markField marks a whole field block so clicking anywhere on it focuses the field.
func (m *ContactFormModel) markField(index int, block string) string {
	return zone.Mark(m.fieldZone(index), block)
}
