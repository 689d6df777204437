package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/photo-organizer/internal/tui"
)

func main() {
	settingsPath := flag.String("config", defaultSettingsPath(), "Path to the settings file remembered between runs")
	flag.Parse()

	if err := tui.Run(*settingsPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "photo-organizer", "settings.json")
}
