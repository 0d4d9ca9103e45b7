package main

import (
	"encoding/json"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mudler/go-pluggable"
	"github.com/sanity-io/litter"
)

// pagesEvent asks plugins for extra pages.
const pagesEvent pluggable.EventType = "panel.pages"

// EventPayload is sent to plugins with the pages event.
type EventPayload struct {
	Pages []string `json:"pages"` // uuids already on the panel
}

// pluginPagesMsg carries the pages plugins asked for.
type pluginPagesMsg struct {
	defs []PageDef
	err  error
}

// pluginSource publishes an event and returns the raw responses.
type pluginSource interface {
	Publish(event pluggable.EventType, payload EventPayload) ([]string, error)
}

type pluggableSource struct {
	manager *pluggable.Manager
	log     *slog.Logger
}

func newPluggableSource(s PluginSettings, log *slog.Logger) *pluggableSource {
	event := pluggable.EventType(s.Event)
	m := pluggable.NewManager([]pluggable.EventType{event})
	m.Autoload(s.Prefix, s.Paths...).Register()
	log.Debug("plugins loaded", "count", len(m.Plugins), "event", event)
	return &pluggableSource{manager: m, log: log}
}

func (s *pluggableSource) Publish(event pluggable.EventType, payload EventPayload) ([]string, error) {
	var out []string
	s.manager.Response(event, func(p *pluggable.Plugin, resp *pluggable.EventResponse) {
		if resp.Errored() {
			s.log.Warn("plugin failed", "plugin", p.Name, "error", resp.Error)
			return
		}
		out = append(out, resp.Data)
	})
	if _, err := s.manager.Publish(event, payload); err != nil {
		return out, err
	}
	return out, nil
}

// runPagePlugins asks plugins for pages. Responses that do not decode are
// logged and skipped.
func runPagePlugins(src pluginSource, event pluggable.EventType, existing []string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		log.Info("running page plugins", "event", event)
		responses, err := src.Publish(event, EventPayload{Pages: existing})
		if err != nil {
			log.Error("publishing plugin event", "error", err)
			return pluginPagesMsg{err: err}
		}
		var defs []PageDef
		for _, data := range responses {
			var batch []PageDef
			if err := json.Unmarshal([]byte(data), &batch); err != nil {
				log.Warn("bad plugin response", "error", err)
				continue
			}
			defs = append(defs, batch...)
		}
		log.Debug("plugins returned pages", "pages", litter.Sdump(defs))
		return pluginPagesMsg{defs: defs}
	}
}
