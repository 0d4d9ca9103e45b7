package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// textPage shows fixed lines of text.
type textPage struct {
	basePage
}

func newTextPage(def PageDef) *textPage {
	return &textPage{basePage{def: def}}
}

func (p *textPage) Update(tea.Msg) tea.Cmd { return nil }

func (p *textPage) View() string {
	return strings.Join(p.def.Lines, "\n")
}

func (p *textPage) Help() string { return pageNavigationHelp }
