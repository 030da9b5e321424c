// Package config loads the demo binary's TOML configuration and watches it
// for edits so a running demo can pick up changes live. The library packages
// are configured programmatically and know nothing about this file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sjoeboo/canopy/confirm"
)

// FileName is the TOML config file for user preferences.
const FileName = "config.toml"

// Config represents user-facing configuration in TOML format.
type Config struct {
	// Theme selects the adaptive palette: "auto" (detect the terminal
	// background), "dark", or "light"
	Theme string `toml:"theme"`

	// Dialog configures the confirmation dialog shown by `canopy-demo confirm`
	Dialog DialogSettings `toml:"dialog"`

	// Popup configures the message popup shown by `canopy-demo popup`
	Popup PopupSettings `toml:"popup"`

	// Logs defines structured log output
	Logs LogSettings `toml:"logs"`
}

// DialogSettings defines the confirmation dialog's content and behavior.
type DialogSettings struct {
	Title   string `toml:"title"`
	Message string `toml:"message"`

	// YesLabel and NoLabel are button labels; a parenthesized letter marks
	// the mnemonic shortcut, e.g. "(Y)es"
	YesLabel string `toml:"yes_label"`
	NoLabel  string `toml:"no_label"`

	// DefaultButton is highlighted when the dialog opens: "yes" or "no"
	DefaultButton string `toml:"default_button"`

	// PercentX and PercentY size the popup as a percentage of the screen
	PercentX int `toml:"percent_x"`
	PercentY int `toml:"percent_y"`

	// Modal makes an open dialog swallow keys outside its input set
	Modal bool `toml:"modal"`
}

// PopupSettings defines the message popup's content.
type PopupSettings struct {
	Title string `toml:"title"`
	Text  string `toml:"text"`
}

// LogSettings defines structured log output configuration.
type LogSettings struct {
	// Dir is the directory for log files; empty disables logging
	Dir string `toml:"dir"`

	// Level is "debug", "info", "warn", or "error"
	Level string `toml:"level"`

	// Format is "json" (default) or "text"
	Format string `toml:"format"`
}

// ExpandedDir returns Dir with a leading ~ resolved to the home directory.
func (l LogSettings) ExpandedDir() string {
	if l.Dir == "~" || strings.HasPrefix(l.Dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(l.Dir[1:], "/"))
		}
	}
	return l.Dir
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills unset fields so callers never see zero values.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.Dialog.Title == "" {
		c.Dialog.Title = "Please Select"
	}
	if c.Dialog.Message == "" {
		c.Dialog.Message = "Are you sure you want to delete all files? This action cannot be undone."
	}
	if c.Dialog.YesLabel == "" {
		c.Dialog.YesLabel = "(Y)es"
	}
	if c.Dialog.NoLabel == "" {
		c.Dialog.NoLabel = "(N)o"
	}
	if c.Dialog.DefaultButton == "" {
		c.Dialog.DefaultButton = "yes"
	}
	if c.Dialog.PercentX <= 0 {
		c.Dialog.PercentX = confirm.DefaultPercentX
	}
	if c.Dialog.PercentY <= 0 {
		c.Dialog.PercentY = confirm.DefaultPercentY
	}
	if c.Popup.Title == "" {
		c.Popup.Title = "Loading"
	}
	if c.Popup.Text == "" {
		c.Popup.Text = "Example popup showing a loading message\nThe operation was successful"
	}
}

// DefaultIndex maps the configured default button name onto a button row
// index. Anything other than "no" selects the yes button.
func (c *Config) DefaultIndex() int {
	if strings.EqualFold(c.Dialog.DefaultButton, "no") {
		return 1
	}
	return 0
}

// Dir returns the demo's state directory, creating it if needed. The
// CANOPY_DEMO_DIR environment variable overrides the default ~/.canopy-demo.
func Dir() (string, error) {
	dir := os.Getenv("CANOPY_DEMO_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".canopy-demo")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create demo directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// a file that exists but does not parse is an error so the caller can keep
// whatever configuration it already has.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// CreateExample creates a commented example config file if none exists.
func CreateExample(path string) error {
	// Don't overwrite existing config
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	exampleConfig := `# canopy demo configuration
# This file is loaded on startup and re-read whenever it changes on disk,
# so edits apply to a running demo. Press 's' in the demo to write the
# active settings back here.

# Palette: "auto" detects the terminal background, or force "dark"/"light"
theme = "auto"

# Confirmation dialog (canopy-demo confirm)
[dialog]
title = "Please Select"
message = "Are you sure you want to delete all files? This action cannot be undone."
# A parenthesized letter marks the mnemonic shortcut; plain labels get their
# first letter annotated automatically ("No" becomes "(N)o")
yes_label = "(Y)es"
no_label = "(N)o"
# Button highlighted when the dialog opens: "yes" or "no"
default_button = "yes"
# Popup size as a percentage of the full screen
percent_x = 60
percent_y = 20
# Swallow keys outside the dialog's input set while it is open
modal = false

# Message popup (canopy-demo popup)
[popup]
title = "Loading"
text = """
Example popup showing a loading message
The operation was successful"""

# Structured logs (JSON via slog, rotated). Leave dir empty to disable;
# the demo never logs to the terminal it is drawing on.
[logs]
# dir = "~/.canopy-demo/logs"
level = "info"
format = "json"
`

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(exampleConfig), 0600)
}
