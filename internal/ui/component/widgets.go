package component

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

func NewTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.SetValue(value)
	input.CharLimit = 127
	input.Placeholder = placeholder
	input.Prompt = ""
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func NewTextAreaModel(placeholder string, height int) textarea.Model {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.CharLimit = 2000
	area.SetHeight(height)

	return area
}
