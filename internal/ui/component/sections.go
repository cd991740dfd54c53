package component

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
)

const (
	projectCardWidth = 38
	maxProjectCols   = 3
	skillNameWidth   = 16
)

// sectionHeader is the centered title, divider and optional subtitle every section but the hero
// starts with.
func sectionHeader(title string, subtitle string, width int) string {
	rows := []string{
		styles.SectionTitle.Width(width).Render(title),
		styles.Divider(width),
	}

	if subtitle != "" {
		rows = append(rows, "", styles.SectionSubtitle.Width(width).Render(wordwrap.String(subtitle, width-4)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderHero draws the banner filling at least minHeight rows, like a full viewport height hero.
func renderHero(profile content.Profile, width int, minHeight int, workZone string, contactZone string) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		zone.Mark(workZone, styles.ButtonPrimary.Render("View My Work")),
		"  ",
		zone.Mark(contactZone, styles.ButtonSecondary.Render("Contact Me")))

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.HeroGreeting.Render(profile.Greeting),
		styles.HeroName.Render(profile.Name),
		styles.HeroTitle.Render(profile.Title),
		"",
		styles.SectionBody.Render(wordwrap.String(profile.Tagline, max(10, width-8))),
		"",
		buttons)

	height := max(minHeight, lipgloss.Height(body)+2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func renderAbout(data content.Content, width int) string {
	inner := max(10, width-styles.SectionPadding.GetHorizontalPadding())

	text := []string{styles.ProjectTitle.Render(data.About.Heading), ""}
	for _, paragraph := range data.About.Paragraphs {
		text = append(text, emphasis(wordwrap.String(strings.TrimSpace(paragraph), inner)), "")
	}

	if data.Profile.Name != "" {
		text = append(text, detail("Name:", data.Profile.Name))
	}
	if data.Profile.Email != "" {
		text = append(text, detail("Email:", data.Profile.Email))
	}
	if data.Profile.Location != "" {
		text = append(text, detail("From:", data.Profile.Location))
	}

	cards := make([]string, 0, len(data.Stats))
	for _, stat := range data.Stats {
		cards = append(cards, styles.StatCard.Render(lipgloss.JoinVertical(lipgloss.Center,
			styles.StatNumber.Render(humanize.Comma(int64(stat.Value))+"+"),
			styles.StatLabel.Render(stat.Label))))
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(stats) > inner {
		stats = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeader("About Me", "", width),
		styles.SectionPadding.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinVertical(lipgloss.Left, text...),
			"",
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, stats))))
}

func detail(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, styles.DetailLabel.Render(label), styles.DetailValue.Render(value))
}

// emphasis renders **bold** spans, the only markdown used in the about text.
func emphasis(text string) string {
	parts := strings.Split(text, "**")
	if len(parts) < 3 {
		return styles.SectionBody.Render(text)
	}

	var out strings.Builder
	for index, part := range parts {
		if index%2 == 1 {
			out.WriteString(styles.HeroName.Render(part))
		} else {
			out.WriteString(styles.SectionBody.Render(part))
		}
	}

	return out.String()
}

func renderProjects(data content.Content, width int) string {
	cols := max(1, min(maxProjectCols, width/(projectCardWidth+2)))
	cardWidth := projectCardWidth
	if cols == 1 {
		cardWidth = max(20, width-4)
	}

	cards := make([]string, 0, len(data.Projects))
	for _, project := range data.Projects {
		cards = append(cards, projectCard(project, cardWidth))
	}

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(len(cards), start+cols)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeader("My Projects", data.ProjectsSubtitle, width),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func projectCard(project content.Project, width int) string {
	inner := width - styles.ProjectCard.GetHorizontalFrameSize()

	tags := make([]string, 0, len(project.Tags))
	for _, tag := range project.Tags {
		tags = append(tags, styles.Tag.Render(tag))
	}

	rows := []string{
		styles.ProjectTitle.Render(project.Title) + " " + styles.ProjectLink.Render(styles.IconLink),
		"",
		styles.SectionBody.Render(wordwrap.String(project.Description, inner)),
		"",
		wordwrap.String(strings.Join(tags, ""), inner),
	}

	if project.Link != "" && project.Link != "#" {
		rows = append(rows, styles.ProjectLink.Render(truncate(project.Link, inner)))
	}

	if project.Image != "" {
		rows = append(rows, styles.StatLabel.Render(truncate("img "+project.Image, inner)))
	}

	return styles.ProjectCard.Width(inner + styles.ProjectCard.GetHorizontalPadding()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderSkills(data content.Content, width int, bar progress.Model) string {
	inner := max(20, width-styles.SectionPadding.GetHorizontalPadding())
	bar.Width = max(10, inner-skillNameWidth-6)

	rows := make([]string, 0, len(data.Skills))
	for _, skill := range data.Skills {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.SkillName.Width(skillNameWidth).Render(skill.Name),
			bar.ViewAs(skill.Percent()),
			styles.SkillPercent.Width(6).Render(strconv.Itoa(skill.Level)+"%")))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeader("My Skills", data.SkillsSubtitle, width),
		styles.SectionPadding.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func renderContact(data content.Content, width int, form string) string {
	info := make([]string, 0, len(data.Contacts))
	for _, item := range data.Contacts {
		info = append(info, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.NavHamburger.Width(4).Render(styles.Icon(item.Kind)),
			lipgloss.JoinVertical(lipgloss.Left,
				styles.InfoLabel.Render(item.Label),
				styles.InfoValue.Render(item.Value))), "")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeader("Get In Touch", data.ContactSubtitle, width),
		styles.SectionPadding.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinVertical(lipgloss.Left, info...),
			form)))
}

func renderFooter(data content.Content, width int, topZone string, now time.Time) string {
	socials := make([]string, 0, len(data.Socials))
	for _, social := range data.Socials {
		socials = append(socials, styles.NavLink.Render(styles.Icon(social.Kind)))
	}

	return styles.Footer.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, socials...),
		fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), data.Profile.Name),
		zone.Mark(topZone, styles.BackToTop.Render(styles.IconUp+" Back to top"))))
}

func truncate(value string, width int) string {
	if width <= 1 || lipgloss.Width(value) <= width {
		return value
	}

	runes := []rune(value)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}

	return string(runes) + "…"
}
