package component_test

import (
	"testing"

	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/leighmacdonald/folio/internal/ui/component"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	"github.com/stretchr/testify/require"
)

func TestNavbarWide(t *testing.T) {
	controller := portfolio.NewController(portfolio.StaticLayout{})
	navbar := component.NewNavbarModel(controller)
	navbar, _ = navbar.Update(model.ViewState{Width: 120, Height: 40})

	view := navbar.View()
	require.Contains(t, view, "PORTFOLIO")
	for _, section := range portfolio.Sections {
		require.Contains(t, view, section.Title())
	}
	require.NotContains(t, view, styles.IconMenu)
	require.Equal(t, 1, navbar.Height())
}

func TestNavbarNarrowMenu(t *testing.T) {
	controller := portfolio.NewController(portfolio.StaticLayout{})
	navbar := component.NewNavbarModel(controller)
	navbar, _ = navbar.Update(model.ViewState{Width: 40, Height: 40, Narrow: true})

	closed := navbar.View()
	require.Contains(t, closed, styles.IconMenu)
	require.NotContains(t, closed, portfolio.SectionProjects.Title())
	require.Equal(t, 1, navbar.Height())

	controller.ToggleMenu()

	open := navbar.View()
	require.Contains(t, open, styles.IconClose)
	for _, section := range portfolio.Sections {
		require.Contains(t, open, section.Title())
	}
	require.Equal(t, 1+len(portfolio.Sections), navbar.Height())

	controller.ToggleMenu()
	require.Equal(t, 1, navbar.Height())
}

func TestNavbarHeight(t *testing.T) {
	require.Equal(t, 1, component.NavbarHeight(false, false))
	require.Equal(t, 1, component.NavbarHeight(false, true))
	require.Equal(t, 1, component.NavbarHeight(true, false))
	require.Equal(t, 6, component.NavbarHeight(true, true))
}
