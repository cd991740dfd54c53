package component

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/command"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type rowSpan struct {
	top    int
	height int
}

// SectionGeometry is the measured position of each rendered section. It satisfies
// portfolio.Layout, converting rows into pixels.
type SectionGeometry struct {
	rowHeight int
	spans     map[portfolio.Section]rowSpan
}

func NewSectionGeometry(rowHeight int) *SectionGeometry {
	return &SectionGeometry{rowHeight: max(1, rowHeight), spans: map[portfolio.Section]rowSpan{}}
}

func (g *SectionGeometry) Bounds(section portfolio.Section) (portfolio.Bounds, bool) {
	span, found := g.spans[section]
	if !found {
		return portfolio.Bounds{}, false
	}

	return portfolio.Bounds{Top: span.top * g.rowHeight, Height: span.height * g.rowHeight}, true
}

// TopRow returns the first row of section in the rendered page.
func (g *SectionGeometry) TopRow(section portfolio.Section) (int, bool) {
	span, found := g.spans[section]

	return span.top, found
}

// RowHeight is the number of pixels one row stands for.
func (g *SectionGeometry) RowHeight() int {
	return g.rowHeight
}

func (g *SectionGeometry) reset() {
	g.spans = map[portfolio.Section]rowSpan{}
}

func (g *SectionGeometry) set(section portfolio.Section, top int, height int) {
	g.spans[section] = rowSpan{top: top, height: height}
}

// NewPageModel creates the scrolling page. Every offset change is emitted on feed in pixels.
func NewPageModel(data content.Content, feed *portfolio.Feed, geometry *SectionGeometry) *PageModel {
	return &PageModel{
		data:      data,
		feed:      feed,
		geometry:  geometry,
		viewPort:  viewport.New(10, 10),
		form:      NewContactFormModel(),
		skillBar:  progress.New(progress.WithSolidFill(string(styles.Accent)), progress.WithoutPercentage()),
		zoneID:    zone.NewPrefix(),
		now:       time.Now,
		lastEmit:  -1,
		needsDraw: true,
	}
}

// PageModel renders all sections stacked inside a viewport. It is the layout collaborator,
// measuring where each section lands, and the scroll source, emitting offsets after every move.
type PageModel struct {
	data      content.Content
	feed      *portfolio.Feed
	geometry  *SectionGeometry
	viewPort  viewport.Model
	form      *ContactFormModel
	skillBar  progress.Model
	viewState model.ViewState
	zoneID    string
	now       func() time.Time
	lastEmit  int
	needsDraw bool
}

func (m *PageModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *PageModel) Update(msg tea.Msg) (*PageModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case model.ViewState:
		resized := msg.Width != m.viewState.Width || msg.Body != m.viewState.Body
		m.viewState = msg
		m.viewPort.Width = msg.Width
		m.viewPort.Height = max(1, msg.Body)
		m.needsDraw = true

		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		cmds = append(cmds, cmd)

		if resized {
			m.draw()
			m.emit(true)
		}
	case command.JumpMsg:
		m.JumpTo(msg.Section)
	case command.ContactResultMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		cmds = append(cmds, cmd)
		m.needsDraw = true
	case tea.MouseMsg:
		cmds = append(cmds, m.onMouse(msg))
	case tea.KeyMsg:
		if m.viewState.Page != model.PageMain {
			break
		}

		if m.viewState.KeyZone == model.KZcontactForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			cmds = append(cmds, cmd)
			m.needsDraw = true

			break
		}

		m.onKey(msg)
	}

	if m.needsDraw {
		m.draw()
	}

	m.emit(false)

	return m, tea.Batch(cmds...)
}

func (m *PageModel) onKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, input.Default.Up):
		m.viewPort.SetYOffset(m.viewPort.YOffset - 1)
	case key.Matches(msg, input.Default.Down):
		m.viewPort.SetYOffset(m.viewPort.YOffset + 1)
	case key.Matches(msg, input.Default.PageUp):
		m.viewPort.SetYOffset(m.viewPort.YOffset - m.viewPort.Height)
	case key.Matches(msg, input.Default.PageDown):
		m.viewPort.SetYOffset(m.viewPort.YOffset + m.viewPort.Height)
	case key.Matches(msg, input.Default.Top):
		m.viewPort.GotoTop()
	case key.Matches(msg, input.Default.Bottom):
		m.viewPort.GotoBottom()
	}
}

func (m *PageModel) onMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		switch {
		case zone.Get(m.zoneID + "work").InBounds(msg):
			return command.JumpTo(portfolio.SectionProjects)
		case zone.Get(m.zoneID + "contact").InBounds(msg):
			return command.JumpTo(portfolio.SectionContact)
		case zone.Get(m.zoneID + "top").InBounds(msg):
			return command.JumpTo(portfolio.SectionHome)
		}

		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		m.needsDraw = true

		return cmd
	}

	var cmd tea.Cmd
	m.viewPort, cmd = m.viewPort.Update(msg)

	return cmd
}

// JumpTo scrolls so the top of section is at the top of the viewport, the equivalent of
// following an in-page anchor.
func (m *PageModel) JumpTo(section portfolio.Section) {
	if m.needsDraw {
		m.draw()
	}

	top, found := m.geometry.TopRow(section)
	if !found {
		return
	}

	m.viewPort.SetYOffset(top)
}

// emit publishes the current offset, in pixels, when it moved or force is set.
func (m *PageModel) emit(force bool) {
	if !force && m.viewPort.YOffset == m.lastEmit {
		return
	}

	m.lastEmit = m.viewPort.YOffset
	m.feed.Emit(m.viewPort.YOffset * m.geometry.RowHeight())
}

// draw renders every section, records the geometry and loads the result into the viewport.
func (m *PageModel) draw() {
	m.needsDraw = false
	if m.viewState.Width == 0 {
		return
	}

	width := m.viewState.Width
	m.form.SetWidth(width - styles.SectionPadding.GetHorizontalPadding())

	blocks := make([]string, 0, len(portfolio.Sections)+2)
	m.geometry.reset()
	row := 0

	for _, section := range portfolio.Sections {
		var block string
		switch section {
		case portfolio.SectionHome:
			block = renderHero(m.data.Profile, width, m.viewPort.Height, m.zoneID+"work", m.zoneID+"contact")
		case portfolio.SectionAbout:
			block = renderAbout(m.data, width)
		case portfolio.SectionProjects:
			block = renderProjects(m.data, width)
		case portfolio.SectionSkills:
			block = renderSkills(m.data, width, m.skillBar)
		case portfolio.SectionContact:
			block = renderContact(m.data, width, m.form.View())
		}

		// Each section is followed by a blank spacer row which belongs to it.
		block += "\n"
		height := lipgloss.Height(block)
		m.geometry.set(section, row, height)
		blocks = append(blocks, block)
		row += height
	}

	footer := renderFooter(m.data, width, m.zoneID+"top", m.now())
	blocks = append(blocks, footer)

	// Pad the end so the last section can still be scrolled to the top of the viewport.
	lastTop, _ := m.geometry.TopRow(portfolio.SectionContact)
	if pad := m.viewPort.Height - (row + lipgloss.Height(footer) - lastTop); pad > 0 {
		blocks = append(blocks, strings.Repeat("\n", pad-1))
	}

	m.viewPort.SetContent(strings.Join(blocks, "\n"))
}

func (m *PageModel) View() string {
	return m.viewPort.View()
}

// ScrollPercent is the 0..1 position of the viewport.
func (m *PageModel) ScrollPercent() float64 {
	return m.viewPort.ScrollPercent()
}

// YOffset is the first visible row.
func (m *PageModel) YOffset() int {
	return m.viewPort.YOffset
}

func (m *PageModel) Geometry() *SectionGeometry {
	return m.geometry
}

func (m *PageModel) Form() *ContactFormModel {
	return m.form
}
