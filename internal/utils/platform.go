package utils

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mattn/go-isatty"
)

// IsTTY returns true if w is a terminal, including Cygwin/MSYS ptys.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// UserConfigDir returns the OS-specific configuration directory for app:
//   - Windows: %APPDATA%\<app>
//   - macOS: ~/Library/Application Support/<app>
//   - Linux/BSD: $XDG_CONFIG_HOME/<app> or ~/.config/<app>
//
// It returns "" when no home directory can be determined.
func UserConfigDir(app string) string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, app)
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", app)
		}
		return ""
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, app)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", app)
	}
	return ""
}
