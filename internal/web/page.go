package web

import (
	"bytes"
	"html/template"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type navLink struct {
	ID     string
	Title  string
	Active bool
}

type statView struct {
	Value string
	Label string
}

type pageData struct {
	Version      string
	Nav          []navLink
	Content      content.Content
	About        []template.HTML
	Stats        []statView
	Threshold    int
	MarkerOffset int
}

// newPageData prepares the template model. The nav starts on the tracker's initial section.
func newPageData(data content.Content, version string) (pageData, error) {
	initial := portfolio.NewTracker(portfolio.StaticLayout{}).Active()

	page := pageData{
		Version:      version,
		Content:      data,
		Threshold:    portfolio.ScrollThreshold,
		MarkerOffset: portfolio.MarkerOffset,
	}

	for _, section := range portfolio.Sections {
		page.Nav = append(page.Nav, navLink{ID: section.ID(), Title: section.Title(), Active: section == initial})
	}

	for _, stat := range data.Stats {
		page.Stats = append(page.Stats, statView{Value: humanize.Comma(int64(stat.Value)) + "+", Label: stat.Label})
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Typographer))
	for _, paragraph := range data.About.Paragraphs {
		var buf bytes.Buffer
		if err := md.Convert([]byte(paragraph), &buf); err != nil {
			return pageData{}, err
		}

		// Paragraph text comes from the site owner's content file, goldmark escapes raw html.
		page.About = append(page.About, template.HTML(buf.String())) //nolint:gosec
	}

	return page, nil
}
