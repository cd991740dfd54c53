// Package export renders portfolio content into other document formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/nao1215/markdown"
)

var errExport = errors.New("failed to export content")

// MarkdownWriter writes the page as a single markdown document, one heading per section in
// page order.
type MarkdownWriter struct {
	output io.Writer
	now    func() time.Time
}

func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output, now: time.Now}
}

func (w *MarkdownWriter) Write(data content.Content) error {
	md := markdown.NewMarkdown(w.output)

	for _, section := range portfolio.Sections {
		switch section {
		case portfolio.SectionHome:
			w.writeHome(md, data)
		case portfolio.SectionAbout:
			w.writeAbout(md, data)
		case portfolio.SectionProjects:
			w.writeProjects(md, data)
		case portfolio.SectionSkills:
			w.writeSkills(md, data)
		case portfolio.SectionContact:
			w.writeContact(md, data)
		}
	}

	w.writeFooter(md, data)

	if err := md.Build(); err != nil {
		return errors.Join(err, errExport)
	}

	return nil
}

func (w *MarkdownWriter) writeHome(md *markdown.Markdown, data content.Content) {
	md.H1(data.Profile.Name)
	md.PlainText("")
	if data.Profile.Title != "" {
		md.PlainTextf("**%s**", data.Profile.Title)
		md.PlainText("")
	}
	if data.Profile.Tagline != "" {
		md.PlainText(data.Profile.Tagline)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeAbout(md *markdown.Markdown, data content.Content) {
	md.H2(portfolio.SectionAbout.Title())
	md.PlainText("")
	if data.About.Heading != "" {
		md.H3(data.About.Heading)
		md.PlainText("")
	}

	for _, paragraph := range data.About.Paragraphs {
		md.PlainText(strings.TrimSpace(paragraph))
		md.PlainText("")
	}

	var details []string
	if data.Profile.Email != "" {
		details = append(details, "Email: "+data.Profile.Email)
	}
	if data.Profile.Location != "" {
		details = append(details, "From: "+data.Profile.Location)
	}
	if len(details) > 0 {
		md.BulletList(details...)
		md.PlainText("")
	}

	if len(data.Stats) > 0 {
		rows := make([][]string, 0, len(data.Stats))
		for _, stat := range data.Stats {
			rows = append(rows, []string{stat.Label, humanize.Comma(int64(stat.Value)) + "+"})
		}

		md.Table(markdown.TableSet{Header: []string{"", "Count"}, Rows: rows})
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeProjects(md *markdown.Markdown, data content.Content) {
	md.H2(portfolio.SectionProjects.Title())
	md.PlainText("")
	if data.ProjectsSubtitle != "" {
		md.PlainText(data.ProjectsSubtitle)
		md.PlainText("")
	}

	for _, project := range data.Projects {
		md.H3(project.Title)
		md.PlainText("")
		md.PlainText(project.Description)
		md.PlainText("")

		var items []string
		if len(project.Tags) > 0 {
			tags := make([]string, len(project.Tags))
			for index, tag := range project.Tags {
				tags[index] = "`" + tag + "`"
			}
			items = append(items, "Tags: "+strings.Join(tags, " "))
		}
		if project.Link != "" && project.Link != "#" {
			items = append(items, fmt.Sprintf("Link: [%s](%s)", project.Link, project.Link))
		}
		if project.Image != "" {
			items = append(items, fmt.Sprintf("Image: [preview](%s)", project.Image))
		}
		if len(items) > 0 {
			md.BulletList(items...)
			md.PlainText("")
		}
	}
}

func (w *MarkdownWriter) writeSkills(md *markdown.Markdown, data content.Content) {
	md.H2(portfolio.SectionSkills.Title())
	md.PlainText("")
	if data.SkillsSubtitle != "" {
		md.PlainText(data.SkillsSubtitle)
		md.PlainText("")
	}

	rows := make([][]string, 0, len(data.Skills))
	for _, skill := range data.Skills {
		rows = append(rows, []string{skill.Name, strconv.Itoa(skill.Level) + "%", bar(skill.Level)})
	}

	md.Table(markdown.TableSet{Header: []string{"Skill", "Level", ""}, Rows: rows})
	md.PlainText("")
}

func (w *MarkdownWriter) writeContact(md *markdown.Markdown, data content.Content) {
	md.H2(portfolio.SectionContact.Title())
	md.PlainText("")
	if data.ContactSubtitle != "" {
		md.PlainText(data.ContactSubtitle)
		md.PlainText("")
	}

	items := make([]string, 0, len(data.Contacts))
	for _, info := range data.Contacts {
		if info.URL != "" {
			items = append(items, fmt.Sprintf("%s: [%s](%s)", info.Label, info.Value, info.URL))
		} else {
			items = append(items, fmt.Sprintf("%s: %s", info.Label, info.Value))
		}
	}

	if len(items) > 0 {
		md.BulletList(items...)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, data content.Content) {
	md.HorizontalRule()
	md.PlainText("")

	var links []string
	for _, social := range data.Socials {
		if social.URL == "" || social.URL == "#" {
			continue
		}
		links = append(links, fmt.Sprintf("[%s](%s)", social.Label, social.URL))
	}
	if len(links) > 0 {
		md.PlainText(strings.Join(links, " · "))
		md.PlainText("")
	}

	md.PlainTextf("© %d %s. All rights reserved.", w.now().Year(), data.Profile.Name)
}

// bar draws a ten cell text progress bar.
func bar(level int) string {
	filled := max(0, min(10, level/10))

	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
