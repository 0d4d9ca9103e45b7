package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sanity-io/litter"

	"nspanel-pages/page"
)

const maxHistory = 32

func newLogger(s LogSettings) *slog.Logger {
	if !s.Enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := &slog.HandlerOptions{Level: s.SlogLevel()}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	f, err := os.OpenFile(filepath.Join(s.Dir, "nspanel-pages.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(f, opts))
}

// NextPageMsg moves to the next visible page
type NextPageMsg struct{}

// PreviousPageMsg moves to the previous visible page
type PreviousPageMsg struct{}

// GoToPageMsg jumps to the page with the given uuid
type GoToPageMsg struct {
	UUID string
}

// BookmarkMsg jumps to a bookmarked page
type BookmarkMsg struct {
	ID uint8
}

// BackMsg returns to the page shown before the last jump
type BackMsg struct{}

// Main application model
type model struct {
	pages   *page.Manager[panelPage]
	history []string // uuids of previously shown pages, newest last
	keys    KeyMap
	prompt  textinput.Model
	asking  bool
	width   int
	height  int
	title   string
	status  string
	plugins func([]string) tea.Cmd
	log     *slog.Logger
}

func newModel(title string, pages *page.Manager[panelPage], log *slog.Logger) *model {
	prompt := textinput.New()
	prompt.Placeholder = "page uuid"
	prompt.Prompt = "go to: "
	prompt.Width = 24
	return &model{
		pages:  pages,
		keys:   DefaultKeyMap(),
		prompt: prompt,
		title:  title,
		log:    log,
	}
}

func (m *model) Init() tea.Cmd {
	m.log.Info("starting panel", "pages", m.pages.Len())
	var cmds []tea.Cmd
	if p, ok := m.pages.Cycle(page.StayOrForward); ok {
		cmds = append(cmds, p.Init())
	}
	if m.plugins != nil {
		cmds = append(cmds, m.plugins(m.uuids()))
	}
	return tea.Batch(cmds...)
}

func (m *model) uuids() []string {
	out := make([]string, 0, m.pages.Len())
	for _, p := range m.pages.All() {
		out = append(out, p.UUID())
	}
	return out
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.asking {
			return m, m.updatePrompt(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		// Any key wakes the screensaver
		if cur, ok := m.pages.Current(); ok {
			if _, sleeping := cur.(*screensaverPage); sleeping {
				return m, m.wake()
			}
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.navigate(m.pages.Next)
		case key.Matches(msg, m.keys.Previous):
			return m, m.navigate(m.pages.Previous)
		case key.Matches(msg, m.keys.Bookmark):
			id, _ := strconv.Atoi(msg.String())
			return m, m.jumpToBookmark(uint8(id))
		case key.Matches(msg, m.keys.GoTo):
			m.asking = true
			m.prompt.Reset()
			return m, m.prompt.Focus()
		case key.Matches(msg, m.keys.Hide):
			m.toggleHidden()
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			return m, m.deleteCurrent()
		case key.Matches(msg, m.keys.Back):
			return m, m.back()
		}

	case NextPageMsg:
		return m, m.navigate(m.pages.Next)
	case PreviousPageMsg:
		return m, m.navigate(m.pages.Previous)
	case GoToPageMsg:
		return m, m.jumpToUUID(msg.UUID)
	case BookmarkMsg:
		return m, m.jumpToBookmark(msg.ID)
	case BackMsg:
		return m, m.back()
	case pluginPagesMsg:
		return m, m.addPluginPages(msg)
	}

	// Everything else goes to the page on screen
	if cur, ok := m.pages.Current(); ok {
		return m, cur.Update(msg)
	}
	return m, nil
}

// navigate runs a manager move and, if the page changed, records the old page
// in the history and initializes the new one.
func (m *model) navigate(move func() (panelPage, bool)) tea.Cmd {
	prev, hadPrev := m.pages.Current()
	next, ok := move()
	if !ok {
		return nil
	}
	if hadPrev && prev.UUID() == next.UUID() {
		return nil
	}
	if hadPrev {
		m.history = append(m.history, prev.UUID())
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}
	m.status = ""
	m.log.Debug("page shown", "uuid", next.UUID(), "index", m.pages.CurrentIndex())
	return next.Init()
}

func (m *model) jumpToUUID(uuid string) tea.Cmd {
	if _, ok := m.pages.FindUUID(uuid, page.Peek); !ok {
		m.log.Warn("page not found", "uuid", uuid)
		m.status = fmt.Sprintf("No page %q", uuid)
		return nil
	}
	return m.navigate(func() (panelPage, bool) { return m.pages.FindUUID(uuid, page.Select) })
}

func (m *model) jumpToBookmark(id uint8) tea.Cmd {
	if !m.pages.HasBookmark(id) {
		m.status = fmt.Sprintf("No page bookmarked as %d", id)
		return nil
	}
	return m.navigate(func() (panelPage, bool) { return m.pages.FindBookmarked(id, page.Select) })
}

// back pops the history until it finds a page that still exists.
func (m *model) back() tea.Cmd {
	for len(m.history) > 0 {
		uuid := m.history[len(m.history)-1]
		m.history = m.history[:len(m.history)-1]
		if _, ok := m.pages.FindUUID(uuid, page.Peek); !ok {
			continue
		}
		n := len(m.history)
		cmd := m.navigate(func() (panelPage, bool) { return m.pages.FindUUID(uuid, page.Select) })
		// Going back is not a new step in the history.
		m.history = m.history[:n]
		return cmd
	}
	return nil
}

// wake leaves the screensaver for the previous page, or the next visible one
// when there is no history.
func (m *model) wake() tea.Cmd {
	cmd := m.back()
	if cur, ok := m.pages.Current(); ok {
		if _, still := cur.(*screensaverPage); still {
			return m.navigate(m.pages.Next)
		}
	}
	return cmd
}

func (m *model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.asking = false
		m.prompt.Blur()
		return m.jumpToUUID(strings.TrimSpace(m.prompt.Value()))
	case tea.KeyEsc:
		m.asking = false
		m.prompt.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

type hideable interface {
	SetHidden(bool)
}

func (m *model) toggleHidden() {
	cur, ok := m.pages.Current()
	if !ok {
		return
	}
	if h, ok := cur.(hideable); ok {
		h.SetHidden(!cur.Hidden())
		m.log.Debug("page visibility changed", "uuid", cur.UUID(), "hidden", cur.Hidden())
	}
}

func (m *model) deleteCurrent() tea.Cmd {
	cur, ok := m.pages.Current()
	if !ok {
		return nil
	}
	m.pages.Delete(m.pages.CurrentIndex())
	m.status = fmt.Sprintf("Removed %s", cur.Title())
	m.log.Info("page removed", "uuid", cur.UUID())
	m.log.Debug("pages after removal", "state", litter.Sdump(m.pages.Snapshot()))
	if next, ok := m.pages.Current(); ok {
		return next.Init()
	}
	return nil
}

// addPluginPages inserts plugin pages at the position they asked for, or at
// the end.
func (m *model) addPluginPages(msg pluginPagesMsg) tea.Cmd {
	if msg.err != nil {
		m.status = "Plugins failed: " + msg.err.Error()
		return nil
	}
	added := 0
	for _, def := range msg.defs {
		if _, exists := m.pages.FindIndex(def.UUID); exists {
			m.log.Info("plugin page already present, skipping", "uuid", def.UUID)
			continue
		}
		if m.pages.Len() >= page.MaxPages {
			m.log.Warn("page limit reached, dropping plugin page", "uuid", def.UUID)
			continue
		}
		build, err := pageBuilder(def)
		if err != nil {
			m.log.Warn("invalid plugin page", "error", err)
			continue
		}
		if def.Position != nil {
			pos := min(max(*def.Position, 0), m.pages.Len())
			m.pages.Insert(pos, build)
		} else {
			m.pages.Create(build)
		}
		if def.Bookmark != nil && !m.pages.BookmarkUUID(*def.Bookmark, def.UUID, false) {
			m.log.Warn("plugin bookmark already taken", "id", *def.Bookmark, "uuid", def.UUID)
		}
		added++
	}
	if added > 0 {
		m.status = fmt.Sprintf("Added %d plugin page(s)", added)
	}
	// An empty panel gets its first page from the plugins.
	if m.pages.Len() == added && added > 0 {
		if p, ok := m.pages.Cycle(page.StayOrForward); ok {
			return p.Init()
		}
	}
	return nil
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(panelBorder).
		Background(panelBg).
		Padding(1).
		Width(m.width - 4).
		Height(m.height - 4)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(panelHighlight).
		Background(panelBg).
		Padding(0, 2)

	helpStyle := lipgloss.NewStyle().
		Foreground(panelText).
		Italic(true)

	content := "No pages configured."
	heading := m.title
	help := "q/ctrl+c: quit"
	if cur, ok := m.pages.Current(); ok {
		content = cur.View()
		heading = m.title + " · " + cur.Title()
		help = cur.Help() + " • esc: back • q/ctrl+c: quit"
	}
	if m.asking {
		help = m.prompt.View()
	} else if m.status != "" {
		help = m.status
	}

	availableHeight := m.height - 10
	contentLines := strings.Split(content, "\n")
	if availableHeight > 0 && len(contentLines) > availableHeight {
		content = strings.Join(contentLines[:availableHeight], "\n")
	}

	pageContent := fmt.Sprintf("%s\n%s\n\n%s\n\n%s",
		titleStyle.Render(heading), m.indicator(), content, helpStyle.Render(help))

	return borderStyle.Render(pageContent)
}

// indicator renders one dot per page; the current page is highlighted and
// hidden pages are dimmed.
func (m *model) indicator() string {
	cur := m.pages.CurrentIndex()
	dots := make([]string, 0, m.pages.Len())
	for i, p := range m.pages.All() {
		style := lipgloss.NewStyle().Foreground(panelText)
		dot := "○"
		switch {
		case i == cur:
			style = style.Foreground(panelHighlight)
			dot = "●"
		case p.Hidden():
			style = style.Foreground(panelMuted)
		}
		dots = append(dots, style.Render(dot))
	}
	return strings.Join(dots, " ")
}
