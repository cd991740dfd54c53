package model

// Page is a complete standalone screen occupying everything except the status bar.
type Page int

const (
	PageMain Page = iota
	PageHelp
)

// KeyZone defines which area of the ui is accepting keyboard input.
type KeyZone int

const (
	// KZpage scrolls and navigates the page.
	KZpage KeyZone = iota
	// KZcontactForm sends keys to the focused contact form field.
	KZcontactForm
)

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page    Page
	KeyZone KeyZone
	// Narrow is set when the terminal is narrower than the menu breakpoint and the navigation
	// collapses into the toggleable menu.
	Narrow bool

	// --------- h
	// | Nav   | e
	// |-------- i
	// | Body  | g
	// |-------- h
	// | Foot  | t
	// W i d t h
	Body   int
	Height int
	Width  int
}
