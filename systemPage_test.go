package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemPageShowsProbeResult(t *testing.T) {
	p := newSystemPage(PageDef{UUID: "sys", Type: "system"})
	p.probe = func() (*systemInfo, error) {
		return &systemInfo{Disks: []string{"/dev/sda - 500.0GiB SSD"}, MemoryBytes: 8 << 30}, nil
	}
	assert.Contains(t, p.View(), "Probing")

	cmd := p.Init()
	require.NotNil(t, cmd)
	p.Update(cmd())

	view := p.View()
	assert.Contains(t, view, "Memory: 8.0GiB")
	assert.Contains(t, view, "/dev/sda")
}

func TestSystemPageIgnoresOtherPagesProbe(t *testing.T) {
	p := newSystemPage(PageDef{UUID: "sys", Type: "system"})
	p.Update(systemInfoMsg{uuid: "other", info: &systemInfo{}})
	assert.Nil(t, p.info)
}

func TestSystemPageProbeError(t *testing.T) {
	p := newSystemPage(PageDef{UUID: "sys", Type: "system"})
	p.probe = func() (*systemInfo, error) { return nil, errors.New("no sysfs") }
	p.Update(p.Init()())
	assert.Contains(t, p.View(), "unavailable: no sysfs")
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512B", humanBytes(512))
	assert.Equal(t, "1.0KiB", humanBytes(1024))
	assert.Equal(t, "1.5MiB", humanBytes(1536*1024))
	assert.Equal(t, "2.0TiB", humanBytes(2<<40))
}
