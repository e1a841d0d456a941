// Fixed server configuration. There are no flags, no environment variables
// and no config file: the server always binds port 8080 and serves the
// directory containing its own executable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Port is fixed; a second instance fails fast on bind instead of
	// hunting for a free port.
	Port = 8080

	// Title is shown in the startup banner.
	Title = "Interactive Solar System - Hand Gesture Control"
)

// Config holds the immutable server settings, established once at startup.
type Config struct {
	Host  string
	Port  int
	Root  string
	Title string
}

// Default resolves the directory containing the running executable and
// returns the fixed configuration. All file lookups are made relative to
// Root, regardless of the caller's working directory.
func Default() (Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return Config{}, fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	root := filepath.Dir(exe)
	if _, err := os.Stat(root); err != nil {
		return Config{}, fmt.Errorf("root directory inaccessible: %w", err)
	}

	return Config{
		Host:  "", // all interfaces
		Port:  Port,
		Root:  root,
		Title: Title,
	}, nil
}

// Addr returns the address the listener binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL returns the address printed in the banner and opened in the browser.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}
