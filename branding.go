package main

import (
	"os"
	"path/filepath"
	"strings"
)

// brandingDir may be overridden in tests.
var brandingDir = filepath.Join("/etc", "nspanel", "branding")

// DefaultTitle returns the panel title, allowing an override from the
// branding directory.
func DefaultTitle() string {
	branding, err := os.ReadFile(filepath.Join(brandingDir, "title"))
	if err == nil {
		if title := strings.TrimSpace(string(branding)); title != "" {
			return title
		}
	}
	return "NSPanel"
}
