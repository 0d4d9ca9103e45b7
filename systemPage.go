package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaypipes/ghw"
)

// systemPage shows the block devices and memory of the host running the
// panel.
type systemPage struct {
	basePage
	info  *systemInfo
	err   error
	probe func() (*systemInfo, error)
}

type systemInfo struct {
	Disks       []string
	MemoryBytes int64
}

// systemInfoMsg carries the probe result back to the page that asked.
type systemInfoMsg struct {
	uuid string
	info *systemInfo
	err  error
}

func newSystemPage(def PageDef) *systemPage {
	return &systemPage{basePage: basePage{def: def}, probe: probeSystem}
}

func probeSystem() (*systemInfo, error) {
	blk, err := ghw.Block()
	if err != nil {
		return nil, fmt.Errorf("block devices: %w", err)
	}
	mem, err := ghw.Memory()
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}
	info := &systemInfo{MemoryBytes: mem.TotalUsableBytes}
	for _, d := range blk.Disks {
		info.Disks = append(info.Disks, fmt.Sprintf("/dev/%s - %s %s", d.Name, humanBytes(d.SizeBytes), d.DriveType))
	}
	return info, nil
}

func (p *systemPage) Init() tea.Cmd {
	uuid, probe := p.def.UUID, p.probe
	return func() tea.Msg {
		info, err := probe()
		return systemInfoMsg{uuid: uuid, info: info, err: err}
	}
}

func (p *systemPage) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(systemInfoMsg); ok && msg.uuid == p.def.UUID {
		p.info, p.err = msg.info, msg.err
	}
	return nil
}

func (p *systemPage) View() string {
	switch {
	case p.err != nil:
		return "System information unavailable: " + p.err.Error()
	case p.info == nil:
		return "Probing hardware..."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Memory: %s\n\nDisks:\n", humanBytes(uint64(max(p.info.MemoryBytes, 0))))
	if len(p.info.Disks) == 0 {
		b.WriteString("  none found\n")
	}
	for _, d := range p.info.Disks {
		fmt.Fprintf(&b, "  %s\n", d)
	}
	return b.String()
}

func (p *systemPage) Help() string { return pageNavigationHelp }

func humanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
