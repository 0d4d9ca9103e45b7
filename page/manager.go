// Package page keeps the ordered set of pages shown on the panel, the cursor
// pointing at the page on screen and the bookmark shortcuts into that set.
//
// A Manager is not safe for concurrent use. Pages handed out by its lookups
// belong to the manager; callers must not hold on to them across Insert or
// Delete.
package page

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"math"
)

// MaxPages is the most pages a Manager will hold.
const MaxPages = math.MaxUint8

const defaultCapacity = 20

// Page is what the manager needs to know about a page.
type Page interface {
	UUID() string
	Hidden() bool
}

// Focus tells a lookup whether a hit also becomes the current page.
type Focus bool

const (
	Peek   Focus = false
	Select Focus = true
)

// Manager owns the pages of the panel.
type Manager[P Page] struct {
	pages     []P
	current   int
	bookmarks map[uint8]int
	log       *slog.Logger
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	capacity int
	log      *slog.Logger
}

// WithCapacity reserves room for n pages up front.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = min(n, MaxPages)
		}
	}
}

// WithLogger sets the logger used for structural changes. Debug level only.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// NewManager returns an empty manager.
func NewManager[P Page](opts ...Option) *Manager[P] {
	o := options{
		capacity: defaultCapacity,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[P]{
		pages:     make([]P, 0, o.capacity),
		bookmarks: make(map[uint8]int),
		log:       o.log,
	}
}

func (m *Manager[P]) Len() int          { return len(m.pages) }
func (m *Manager[P]) Empty() bool       { return len(m.pages) == 0 }
func (m *Manager[P]) CurrentIndex() int { return m.current }

// All yields the pages in navigation order.
func (m *Manager[P]) All() iter.Seq2[int, P] {
	return func(yield func(int, P) bool) {
		for i, p := range m.pages {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Current returns the page under the cursor.
func (m *Manager[P]) Current() (P, bool) {
	if len(m.pages) == 0 {
		var zero P
		return zero, false
	}
	return m.pages[m.current], true
}

// Get is a lenient Find: indices past the end resolve to the last page and
// negative ones to the first. It only fails on an empty manager and never
// moves the cursor.
func (m *Manager[P]) Get(index int) (P, bool) {
	if len(m.pages) == 0 {
		var zero P
		return zero, false
	}
	index = max(0, min(index, len(m.pages)-1))
	return m.pages[index], true
}

// Find returns the page at index.
func (m *Manager[P]) Find(index int, focus Focus) (P, bool) {
	if index < 0 || index >= len(m.pages) {
		var zero P
		return zero, false
	}
	if focus {
		m.current = index
	}
	return m.pages[index], true
}

// FindUUID returns the page with the given uuid.
func (m *Manager[P]) FindUUID(uuid string, focus Focus) (P, bool) {
	i, ok := m.FindIndex(uuid)
	if !ok {
		var zero P
		return zero, false
	}
	return m.Find(i, focus)
}

// FindIndex returns the position of the page with the given uuid. The current
// page is checked before the scan.
func (m *Manager[P]) FindIndex(uuid string) (int, bool) {
	if len(m.pages) == 0 {
		return 0, false
	}
	if m.pages[m.current].UUID() == uuid {
		return m.current, true
	}
	for i, p := range m.pages {
		if p.UUID() == uuid {
			return i, true
		}
	}
	return 0, false
}

// Insert builds a page and places it at index, shifting later pages up.
// The cursor and bookmarks keep pointing at the same pages.
//
// Insert panics if index is outside [0, Len()] or the manager is full.
func (m *Manager[P]) Insert(index int, build func() P) P {
	if index < 0 || index > len(m.pages) {
		panic(fmt.Sprintf("page: insert index %d out of range [0, %d]", index, len(m.pages)))
	}
	m.mustHaveRoom()

	p := build()
	if len(m.pages) == 0 {
		m.pages = append(m.pages, p)
		m.log.Debug("page inserted", "uuid", p.UUID(), "index", 0)
		return p
	}

	var zero P
	m.pages = append(m.pages, zero)
	copy(m.pages[index+1:], m.pages[index:])
	m.pages[index] = p

	if index <= m.current {
		m.current++
	}
	for id, idx := range m.bookmarks {
		if idx >= index {
			m.bookmarks[id] = idx + 1
		}
	}
	m.log.Debug("page inserted", "uuid", p.UUID(), "index", index, "current", m.current)
	return p
}

// Create builds a page and appends it.
//
// Create panics if the manager is full.
func (m *Manager[P]) Create(build func() P) P {
	m.mustHaveRoom()
	p := build()
	m.pages = append(m.pages, p)
	m.log.Debug("page created", "uuid", p.UUID(), "index", len(m.pages)-1)
	return p
}

func (m *Manager[P]) mustHaveRoom() {
	if len(m.pages) >= MaxPages {
		panic(fmt.Sprintf("page: manager is full (%d pages)", MaxPages))
	}
}

// Delete removes the page at index. Out of range indices are ignored.
//
// When the current page is removed the cursor settles on the nearest visible
// page walking backward from where the removed page was. Bookmarks on the
// removed page are dropped.
func (m *Manager[P]) Delete(index int) {
	if index < 0 || index >= len(m.pages) {
		return
	}
	uuid := m.pages[index].UUID()

	var zero P
	copy(m.pages[index:], m.pages[index+1:])
	m.pages[len(m.pages)-1] = zero
	m.pages = m.pages[:len(m.pages)-1]

	if len(m.pages) == 0 {
		m.current = 0
		clear(m.bookmarks)
		m.log.Debug("page deleted", "uuid", uuid, "index", index, "empty", true)
		return
	}

	switch {
	case index < m.current:
		m.current--
	case index == m.current:
		// The old position wraps to the front when the last page went away.
		m.current %= len(m.pages)
		m.Cycle(StayOrBackward)
	}

	for id, idx := range m.bookmarks {
		switch {
		case idx == index:
			delete(m.bookmarks, id)
			m.log.Debug("bookmark dropped", "id", id, "uuid", uuid)
		case idx > index:
			m.bookmarks[id] = idx - 1
		}
	}
	m.log.Debug("page deleted", "uuid", uuid, "index", index, "current", m.current)
}

// DeleteUUID removes the first page with the given uuid, if any.
func (m *Manager[P]) DeleteUUID(uuid string) {
	for i, p := range m.pages {
		if p.UUID() == uuid {
			m.Delete(i)
			return
		}
	}
}
