package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestIsTTY(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("bytes.Buffer should not be a TTY")
	}

	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error("regular file should not be a TTY")
	}
}

func TestUserConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG lookup only applies on Linux/BSD")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got := UserConfigDir("tasklist")
	want := filepath.Join(dir, "tasklist")
	if got != want {
		t.Errorf("UserConfigDir: got %q, want %q", got, want)
	}
}
