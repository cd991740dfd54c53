package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#64ffda")

	Black       = lipgloss.Color("#0a192f")
	Navy        = lipgloss.Color("#112240")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayLight   = lipgloss.Color("#8892b0")
	White       = lipgloss.Color("#ccd6f6")
	Whiter      = lipgloss.Color("#e6f1ff")
	Red         = lipgloss.Color("#B8383B")
	ColourGreen = lipgloss.Color("#4d7455")

	HeaderContainerStyle  = lipgloss.NewStyle()
	ContentContainerStyle = lipgloss.NewStyle()
	FooterContainerStyle  = lipgloss.NewStyle()

	FocusedStyle = lipgloss.NewStyle().Foreground(Accent)
	BlurredStyle = lipgloss.NewStyle().Foreground(GrayLight)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true).Render("[ Send Message ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Send Message"))

	// Navigation.
	NavBar         = lipgloss.NewStyle().Padding(0, 1)
	NavBarScrolled = NavBar.Background(Navy)
	NavLogo        = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	NavLink        = lipgloss.NewStyle().Foreground(White).PaddingLeft(1).PaddingRight(1)
	NavLinkActive  = NavLink.Foreground(Accent).Underline(true).Bold(true)
	NavHamburger   = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingLeft(1)
	NavDropdown    = lipgloss.NewStyle().PaddingLeft(2)

	// Sections.
	SectionTitle    = lipgloss.NewStyle().Foreground(Whiter).Bold(true).Align(lipgloss.Center)
	SectionDivider  = lipgloss.NewStyle().Foreground(Accent)
	SectionSubtitle = lipgloss.NewStyle().Foreground(GrayLight).Italic(true).Align(lipgloss.Center)
	SectionBody     = lipgloss.NewStyle().Foreground(White)
	SectionPadding  = lipgloss.NewStyle().Padding(1, 2)

	HeroGreeting    = lipgloss.NewStyle().Foreground(Accent)
	HeroName        = lipgloss.NewStyle().Foreground(Whiter).Bold(true)
	HeroTitle       = lipgloss.NewStyle().Foreground(GrayLight).Bold(true)
	ButtonPrimary   = lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true).Padding(0, 2)
	ButtonSecondary = lipgloss.NewStyle().Foreground(Accent).Border(lipgloss.NormalBorder()).BorderForeground(Accent).Padding(0, 1)

	DetailLabel = lipgloss.NewStyle().Foreground(Accent).Bold(true).Width(8)
	DetailValue = lipgloss.NewStyle().Foreground(White)

	StatCard   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 2).Align(lipgloss.Center)
	StatNumber = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	StatLabel  = lipgloss.NewStyle().Foreground(GrayLight)

	ProjectCard  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 1)
	ProjectTitle = lipgloss.NewStyle().Foreground(Whiter).Bold(true)
	ProjectLink  = lipgloss.NewStyle().Foreground(GrayLight).Underline(true)
	Tag          = lipgloss.NewStyle().Foreground(Accent).Background(Navy).Padding(0, 1).MarginRight(1)

	SkillName    = lipgloss.NewStyle().Foreground(White).Bold(true)
	SkillPercent = lipgloss.NewStyle().Foreground(Accent).Align(lipgloss.Right)

	InfoLabel = lipgloss.NewStyle().Foreground(Whiter).Bold(true)
	InfoValue = lipgloss.NewStyle().Foreground(GrayLight)

	FormLabel = lipgloss.NewStyle().Foreground(GrayLight).Width(10)
	FormError = lipgloss.NewStyle().Foreground(Red)

	Footer    = lipgloss.NewStyle().Foreground(GrayLight).Align(lipgloss.Center).Padding(1, 0)
	BackToTop = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	StatusSection = lipgloss.NewStyle().Foreground(Accent).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusScroll  = lipgloss.NewStyle().Foreground(GrayLight).PaddingLeft(1).PaddingRight(1)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(ColourGreen).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(ColourGreen).Bold(true).Align(lipgloss.Center).PaddingLeft(1)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconEmail    = "✉"
	IconLinkedIn = "in"
	IconGitHub   = "gh"
	IconTwitter  = "tw"
	IconLink     = "↗"
	IconUp       = "⇞"
	IconMenu     = "☰"
	IconClose    = "✕"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// Divider is the short accent rule drawn under each section title.
func Divider(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, SectionDivider.Render(strings.Repeat("━", 8)))
}

// Icon maps a contact or social kind to a short glyph.
func Icon(kind string) string {
	switch kind {
	case "email":
		return IconEmail
	case "linkedin":
		return IconLinkedIn
	case "github":
		return IconGitHub
	case "twitter":
		return IconTwitter
	default:
		return IconLink
	}
}
