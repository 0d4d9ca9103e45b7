package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entitiesPage lists entities with their state. Enter toggles on/off
// entities.
type entitiesPage struct {
	basePage
	cursor int
}

func newEntitiesPage(def PageDef) *entitiesPage {
	// The def is shared with the layout; toggling must not leak back into it.
	entities := make([]EntityDef, len(def.Entities))
	copy(entities, def.Entities)
	def.Entities = entities
	return &entitiesPage{basePage: basePage{def: def}}
}

func (p *entitiesPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.def.Entities)-1 {
				p.cursor++
			}
		case "enter":
			if p.cursor < len(p.def.Entities) {
				e := &p.def.Entities[p.cursor]
				switch e.State {
				case "on":
					e.State = "off"
				case "off":
					e.State = "on"
				}
			}
		}
	}
	return nil
}

func (p *entitiesPage) View() string {
	if len(p.def.Entities) == 0 {
		return "No entities configured."
	}
	var b strings.Builder
	for i, e := range p.def.Entities {
		cursor := " "
		if p.cursor == i {
			cursor = lipgloss.NewStyle().Foreground(panelAccent).Render(">")
		}
		state := e.State
		if state == "on" {
			state = lipgloss.NewStyle().Foreground(panelHighlight).Render(state)
		}
		fmt.Fprintf(&b, "%s %s %-24s %s\n", cursor, e.Icon, e.Name, state)
	}
	return b.String()
}

func (p *entitiesPage) Help() string {
	return entityNavigationHelp + " • " + pageNavigationHelp
}
