package xdginit

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

func init() {
	// macOS resolves ConfigHome to ~/Library/Application Support; CLI
	// tooling conventionally lives in ~/.config. Honor an explicit
	// XDG_CONFIG_HOME when one is set.
	if runtime.GOOS == "darwin" && os.Getenv("XDG_CONFIG_HOME") == "" {
		xdg.ConfigHome = filepath.Join(xdg.Home, ".config")
	}
}
