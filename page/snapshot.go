package page

import (
	"maps"
	"slices"
)

// Snapshot is a copy of the manager state for logs and diagnostics.
type Snapshot struct {
	Current   int
	Pages     []Entry
	Bookmarks map[uint8]int
}

// Entry describes one page in a Snapshot.
type Entry struct {
	UUID      string
	Hidden    bool
	Bookmarks []uint8
}

// Snapshot copies the current state.
func (m *Manager[P]) Snapshot() Snapshot {
	s := Snapshot{
		Current:   m.current,
		Pages:     make([]Entry, len(m.pages)),
		Bookmarks: maps.Clone(m.bookmarks),
	}
	for i, p := range m.pages {
		s.Pages[i] = Entry{UUID: p.UUID(), Hidden: p.Hidden()}
	}
	for _, id := range slices.Sorted(maps.Keys(m.bookmarks)) {
		idx := m.bookmarks[id]
		s.Pages[idx].Bookmarks = append(s.Pages[idx].Bookmarks, id)
	}
	return s
}
