package main

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nspanel-pages/page"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func textDef(uuid string, hidden bool) PageDef {
	return PageDef{UUID: uuid, Type: "text", Title: uuid, Hidden: hidden, Lines: []string{"page " + uuid}}
}

func newTestModel(t *testing.T, defs ...PageDef) *model {
	t.Helper()
	m := page.NewManager[panelPage]()
	for _, def := range defs {
		build, err := pageBuilder(def)
		require.NoError(t, err)
		m.Create(build)
	}
	return newModel("Test Panel", m, discardLogger())
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func current(t *testing.T, m *model) string {
	t.Helper()
	p, ok := m.pages.Current()
	require.True(t, ok)
	return p.UUID()
}

func TestModelNextAndPreviousSkipHidden(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", true), textDef("c", false))
	m.Init()

	press(m, "right")
	assert.Equal(t, "c", current(t, m))
	press(m, "l")
	assert.Equal(t, "a", current(t, m))
	press(m, "left")
	assert.Equal(t, "c", current(t, m))
}

func TestModelInitStartsOnVisiblePage(t *testing.T) {
	m := newTestModel(t, textDef("hidden", true), textDef("shown", false))
	m.Init()
	assert.Equal(t, "shown", current(t, m))
}

func TestModelBookmarkKeys(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", false), textDef("c", false))
	require.True(t, m.pages.BookmarkUUID(3, "c", false))

	press(m, "3")
	assert.Equal(t, "c", current(t, m))

	press(m, "7")
	assert.Equal(t, "c", current(t, m))
	assert.Contains(t, m.status, "No page bookmarked as 7")
}

func TestModelBackReturnsThroughHistory(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", false), textDef("c", false))

	press(m, "right", "right")
	assert.Equal(t, "c", current(t, m))
	press(m, "esc")
	assert.Equal(t, "b", current(t, m))
	press(m, "esc")
	assert.Equal(t, "a", current(t, m))
	press(m, "esc")
	assert.Equal(t, "a", current(t, m), "empty history leaves the page alone")
}

func TestModelBackSkipsRemovedPages(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", false), textDef("c", false))

	press(m, "right", "right")
	m.pages.DeleteUUID("b")
	press(m, "esc")
	assert.Equal(t, "a", current(t, m))
}

func TestModelGoToPrompt(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("kitchen", false))

	press(m, "/")
	require.True(t, m.asking)
	press(m, "k", "i", "t", "c", "h", "e", "n", "enter")
	assert.False(t, m.asking)
	assert.Equal(t, "kitchen", current(t, m))

	press(m, "/", "x", "enter")
	assert.Equal(t, "kitchen", current(t, m))
	assert.Contains(t, m.status, `No page "x"`)

	press(m, "/", "a", "esc")
	assert.False(t, m.asking)
	assert.Equal(t, "kitchen", current(t, m))
}

func TestModelNavigationMessages(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", false), textDef("c", true))
	require.True(t, m.pages.BookmarkUUID(5, "c", false))

	m.Update(NextPageMsg{})
	assert.Equal(t, "b", current(t, m))
	m.Update(PreviousPageMsg{})
	assert.Equal(t, "a", current(t, m))
	m.Update(GoToPageMsg{UUID: "b"})
	assert.Equal(t, "b", current(t, m))
	m.Update(BookmarkMsg{ID: 5})
	assert.Equal(t, "c", current(t, m), "bookmarks reach hidden pages")
	m.Update(BackMsg{})
	assert.Equal(t, "b", current(t, m))
}

func TestModelDeleteCurrentPage(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", false), textDef("c", false))
	require.True(t, m.pages.BookmarkUUID(1, "b", false))
	press(m, "right")

	press(m, "x")
	assert.Equal(t, 2, m.pages.Len())
	assert.Equal(t, "c", current(t, m))
	assert.False(t, m.pages.HasBookmark(1))
	assert.Contains(t, m.status, "Removed b")

	press(m, "x", "x")
	assert.True(t, m.pages.Empty())
	assert.Nil(t, press(m, "x"))
	assert.Contains(t, m.View(), "Loading...")
}

func TestModelToggleHidden(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", false))

	press(m, "H")
	p, _ := m.pages.Current()
	assert.True(t, p.Hidden())
	press(m, "right")
	assert.Equal(t, "b", current(t, m))
	press(m, "right")
	assert.Equal(t, "b", current(t, m), "the hidden page is skipped")
}

func TestModelScreensaverWakesOnAnyKey(t *testing.T) {
	saver := PageDef{UUID: "clock", Type: "screensaver", Hidden: true}
	m := newTestModel(t, textDef("a", false), textDef("b", false), saver)
	require.True(t, m.pages.BookmarkUUID(0, "clock", false))

	press(m, "right", "0")
	assert.Equal(t, "clock", current(t, m))
	press(m, "z")
	assert.Equal(t, "b", current(t, m))

	// Without history the next visible page is shown.
	m.history = nil
	press(m, "0")
	m.history = nil
	press(m, "z")
	assert.Equal(t, "a", current(t, m))
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, textDef("a", false))
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelForwardsOtherMessagesToCurrentPage(t *testing.T) {
	m := newTestModel(t, PageDef{UUID: "clock", Type: "screensaver"})
	saver, ok := m.pages.Current()
	require.True(t, ok)
	s := saver.(*screensaverPage)
	s.Init()

	at := time.Date(2026, 10, 19, 7, 30, 0, 0, time.UTC)
	_, cmd := m.Update(clockTickMsg{uuid: "clock", gen: s.gen, at: at})
	assert.NotNil(t, cmd, "the clock keeps ticking")
	assert.Equal(t, at, s.now)

	// Ticks from an earlier Init are dropped.
	_, cmd = m.Update(clockTickMsg{uuid: "clock", gen: s.gen - 1, at: at.Add(time.Hour)})
	assert.Nil(t, cmd)
	assert.Equal(t, at, s.now)
}

func TestModelAddsPluginPages(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", false))
	press(m, "right")
	require.True(t, m.pages.BookmarkUUID(1, "b", false))

	zero, two := 0, 2
	nine := uint8(9)
	m.Update(pluginPagesMsg{defs: []PageDef{
		{UUID: "first", Type: "text", Position: &zero},
		{UUID: "tail", Type: "text", Bookmark: &nine},
		{UUID: "a", Type: "text"},
		{UUID: "broken", Type: "nope"},
		{UUID: "mid", Type: "text", Position: &two},
	}})

	assert.Equal(t, []string{"first", "a", "mid", "b", "tail"}, m.uuids())
	assert.Equal(t, "b", current(t, m), "cursor follows its page")
	p, ok := m.pages.FindBookmarked(1, page.Peek)
	require.True(t, ok)
	assert.Equal(t, "b", p.UUID())
	p, ok = m.pages.FindBookmarked(9, page.Peek)
	require.True(t, ok)
	assert.Equal(t, "tail", p.UUID())
	assert.Contains(t, m.status, "Added 3 plugin page(s)")
}

func TestModelPluginFailure(t *testing.T) {
	m := newTestModel(t, textDef("a", false))
	m.Update(pluginPagesMsg{err: errors.New("boom")})
	assert.Contains(t, m.status, "boom")
	assert.Equal(t, 1, m.pages.Len())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, textDef("a", false), textDef("b", true))
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()
	assert.Contains(t, view, "Test Panel")
	assert.Contains(t, view, "page a")
	assert.Contains(t, view, "●")
}
