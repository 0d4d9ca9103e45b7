package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const clockInterval = time.Second

// screensaverPage shows a clock. It is usually hidden so next/previous skip
// it, and reached through a bookmark.
type screensaverPage struct {
	basePage
	now time.Time
	gen int // ticks from an older Init are ignored
}

type clockTickMsg struct {
	uuid string
	gen  int
	at   time.Time
}

func newScreensaverPage(def PageDef) *screensaverPage {
	return &screensaverPage{basePage: basePage{def: def}, now: time.Now()}
}

func (p *screensaverPage) tick() tea.Cmd {
	uuid, gen := p.def.UUID, p.gen
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg{uuid: uuid, gen: gen, at: t}
	})
}

func (p *screensaverPage) Init() tea.Cmd {
	p.gen++
	p.now = time.Now()
	return p.tick()
}

func (p *screensaverPage) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(clockTickMsg); ok && msg.uuid == p.def.UUID && msg.gen == p.gen {
		p.now = msg.at
		return p.tick()
	}
	return nil
}

func (p *screensaverPage) View() string {
	clock := lipgloss.NewStyle().Bold(true).Foreground(panelHighlight).Render(p.now.Format("15:04:05"))
	return clock + "\n\n" + p.now.Format("Monday, 2 January")
}

func (p *screensaverPage) Help() string { return "Press any key to wake" }
