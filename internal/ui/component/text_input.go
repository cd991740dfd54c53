package component

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

// InputValidator checks a single field value.
type InputValidator interface {
	Validate(value string) error
}

// ValidatorFunc adapts a plain function to InputValidator.
type ValidatorFunc func(value string) error

func (f ValidatorFunc) Validate(value string) error {
	return f(value)
}

func NewValidatingTextInputModel(label string, value string, placeholder string, validators ...InputValidator) *ValidatingTextInputModel {
	input := NewTextInputModel(value, placeholder)

	var validate textinput.ValidateFunc
	if len(validators) > 0 {
		validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &ValidatingTextInputModel{Input: input, Label: label, validate: validate}
}

// ValidatingTextInputModel is a labelled text input whose error is only shown once the field
// has been touched or a submit was attempted.
type ValidatingTextInputModel struct {
	Label    string
	Input    textinput.Model
	validate textinput.ValidateFunc
	err      error
	touched  bool
}

func (m *ValidatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	before := m.Input.Value()

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	if m.Input.Value() != before {
		m.touched = true
		m.Validate()
	}

	return m, cmd
}

// Validate runs the validators against the current value, records and returns the result.
func (m *ValidatingTextInputModel) Validate() error {
	if m.validate == nil {
		m.err = nil

		return nil
	}

	m.err = m.validate(m.Input.Value())

	return m.err
}

// Touch makes any validation error visible.
func (m *ValidatingTextInputModel) Touch() {
	m.touched = true
}

func (m *ValidatingTextInputModel) Err() error {
	return m.err
}

func (m *ValidatingTextInputModel) Value() string {
	return m.Input.Value()
}

func (m *ValidatingTextInputModel) Reset() {
	m.Input.Reset()
	m.err = nil
	m.touched = false
}

func (m *ValidatingTextInputModel) SetWidth(width int) {
	m.Input.Width = max(1, width)
}

// View always renders two rows, the input and the error line, so the form height is stable.
func (m *ValidatingTextInputModel) View() string {
	errRow := " "
	if m.touched && m.err != nil {
		errRow = styles.FormError.Render(m.err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.FormLabel.Render(m.Label),
		lipgloss.JoinVertical(lipgloss.Left, m.Input.View(), errRow))
}

func (m *ValidatingTextInputModel) Focused() bool {
	return m.Input.Focused()
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}
