package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appDataDir returns the default per-OS directory ccoind stores its data
// and logs in, mirroring the convention used by the rest of the btcsuite
// ecosystem (AppData on Windows, ~/Library/Application Support on macOS,
// ~/appName on Plan 9, ~/.appName everywhere else).
func appDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}

	appName = "." + strings.TrimPrefix(appName, ".")

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appName[1:])
		}
	case "darwin":
		if homeDir := homeDir(); homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", appName[1:])
		}
	case "plan9":
		if homeDir := homeDir(); homeDir != "" {
			return filepath.Join(homeDir, appName[1:])
		}
	default:
		if homeDir := homeDir(); homeDir != "" {
			return filepath.Join(homeDir, appName)
		}
	}

	return "."
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return ""
}
