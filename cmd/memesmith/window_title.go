package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/memesmith/internal/ui"
)

func windowTitle(file string) string {
	parts := []string{ui.ProgramTitle}

	if file = strings.TrimSpace(file); file != "" {
		parts = append(parts, filepath.Base(file))
	}

	var extras []string
	if v := strings.TrimSpace(version); v != "" {
		extras = append(extras, fmt.Sprintf("v%s", v))
	}
	if c := strings.TrimSpace(commit); c != "" {
		extras = append(extras, fmt.Sprintf("commit %s", c))
	}
	if d := strings.TrimSpace(date); d != "" {
		extras = append(extras, d)
	}

	title := strings.Join(parts, " - ")
	if len(extras) > 0 {
		title += " (" + strings.Join(extras, ", ") + ")"
	}
	return title
}
