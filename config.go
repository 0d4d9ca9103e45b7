package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"nspanel-pages/page"
)

// Layout describes the pages loaded at startup.
type Layout struct {
	Title string    `yaml:"title,omitempty"`
	Pages []PageDef `yaml:"pages"`
}

// PageDef describes one page. Plugins send the same shape as JSON.
type PageDef struct {
	UUID     string      `yaml:"uuid" json:"uuid"`
	Type     string      `yaml:"type" json:"type"`
	Title    string      `yaml:"title,omitempty" json:"title,omitempty"`
	Hidden   bool        `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Bookmark *uint8      `yaml:"bookmark,omitempty" json:"bookmark,omitempty"`
	Position *int        `yaml:"position,omitempty" json:"position,omitempty"`
	Lines    []string    `yaml:"lines,omitempty" json:"lines,omitempty"`
	Entities []EntityDef `yaml:"entities,omitempty" json:"entities,omitempty"`
}

// EntityDef is one row of an entities page.
type EntityDef struct {
	Name  string `yaml:"name" json:"name"`
	State string `yaml:"state,omitempty" json:"state,omitempty"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return &l, nil
}

// Validate reports every problem in the layout at once.
func (l *Layout) Validate() error {
	var errs []error
	if len(l.Pages) > page.MaxPages {
		errs = append(errs, fmt.Errorf("%d pages, at most %d allowed", len(l.Pages), page.MaxPages))
	}
	uuids := make(map[string]int, len(l.Pages))
	bookmarks := make(map[uint8]string)
	for i, def := range l.Pages {
		if err := def.validate(); err != nil {
			errs = append(errs, fmt.Errorf("page %d: %w", i, err))
			continue
		}
		if prev, dup := uuids[def.UUID]; dup {
			errs = append(errs, fmt.Errorf("page %d: uuid %q already used by page %d", i, def.UUID, prev))
		}
		uuids[def.UUID] = i
		if def.Bookmark != nil {
			if other, dup := bookmarks[*def.Bookmark]; dup {
				errs = append(errs, fmt.Errorf("page %d: bookmark %d already set on %q", i, *def.Bookmark, other))
			}
			bookmarks[*def.Bookmark] = def.UUID
		}
	}
	return errors.Join(errs...)
}

func (d PageDef) validate() error {
	if d.UUID == "" {
		return errors.New("missing uuid")
	}
	if _, ok := pageTypes[d.Type]; !ok {
		return fmt.Errorf("unknown page type %q", d.Type)
	}
	return nil
}

// Apply creates the layout pages in order and sets their bookmarks.
func (l *Layout) Apply(m *page.Manager[panelPage], log *slog.Logger) error {
	for _, def := range l.Pages {
		build, err := pageBuilder(def)
		if err != nil {
			return err
		}
		m.Create(build)
		if def.Bookmark != nil && !m.BookmarkUUID(*def.Bookmark, def.UUID, false) {
			log.Warn("bookmark not set", "id", *def.Bookmark, "uuid", def.UUID)
		}
	}
	log.Info("layout applied", "pages", m.Len())
	return nil
}

// layoutOf rebuilds a Layout from what the manager currently holds.
func layoutOf(title string, m *page.Manager[panelPage]) *Layout {
	snap := m.Snapshot()
	l := &Layout{Title: title, Pages: make([]PageDef, 0, m.Len())}
	for i, p := range m.All() {
		def := p.Def()
		def.Position = nil
		def.Bookmark = nil
		if ids := snap.Pages[i].Bookmarks; len(ids) > 0 {
			id := ids[0]
			def.Bookmark = &id
		}
		l.Pages = append(l.Pages, def)
	}
	return l
}

// WriteYAML writes the layout to a YAML file
func (l *Layout) WriteYAML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(l)
}
