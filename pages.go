package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"nspanel-pages/page"
)

// panelPage is a page the panel can show. The page manager only looks at
// UUID and Hidden; the rest is for the UI.
type panelPage interface {
	page.Page
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Title() string
	Help() string
	Def() PageDef
}

// pageTypes maps the layout "type" field to a constructor.
var pageTypes = map[string]func(PageDef) panelPage{
	"text":        func(d PageDef) panelPage { return newTextPage(d) },
	"entities":    func(d PageDef) panelPage { return newEntitiesPage(d) },
	"system":      func(d PageDef) panelPage { return newSystemPage(d) },
	"screensaver": func(d PageDef) panelPage { return newScreensaverPage(d) },
}

// pageBuilder checks def and returns a function that builds the page, ready
// to hand to the page manager.
func pageBuilder(def PageDef) (func() panelPage, error) {
	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("page %q: %w", def.UUID, err)
	}
	ctor := pageTypes[def.Type]
	return func() panelPage { return ctor(def) }, nil
}

// basePage carries the identity every page type shares.
type basePage struct {
	def PageDef
}

func (b *basePage) UUID() string  { return b.def.UUID }
func (b *basePage) Hidden() bool  { return b.def.Hidden }
func (b *basePage) Def() PageDef  { return b.def }
func (b *basePage) Init() tea.Cmd { return nil }

func (b *basePage) Title() string {
	if b.def.Title != "" {
		return b.def.Title
	}
	return b.def.UUID
}

// SetHidden shows or hides the page in next/previous navigation.
func (b *basePage) SetHidden(hidden bool) { b.def.Hidden = hidden }
