package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/sjoeboo/canopy/internal/config"
	"github.com/sjoeboo/canopy/internal/logging"
)

const Version = "0.1.0"

// init sets up color profile for consistent terminal colors across environments
func init() {
	initColorProfile()
}

// initColorProfile configures lipgloss color profile based on terminal capabilities.
// Prefers TrueColor for best visuals, falls back to ANSI256 for compatibility.
func initColorProfile() {
	// Allow user override via environment variable
	// CANOPY_COLOR: truecolor, 256, 16, none
	if colorEnv := os.Getenv("CANOPY_COLOR"); colorEnv != "" {
		switch strings.ToLower(colorEnv) {
		case "truecolor", "true", "24bit":
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		case "256", "ansi256":
			lipgloss.SetColorProfile(termenv.ANSI256)
			return
		case "16", "ansi", "basic":
			lipgloss.SetColorProfile(termenv.ANSI)
			return
		case "none", "off", "ascii":
			lipgloss.SetColorProfile(termenv.Ascii)
			return
		}
	}

	// Explicit TrueColor support
	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}

	// Terminals that handle TrueColor without advertising it
	termName := os.Getenv("TERM")
	for _, t := range []string{
		"xterm-256color",
		"screen-256color",
		"tmux-256color",
		"alacritty",
		"kitty",
		"wezterm",
		"ghostty",
	} {
		if strings.Contains(termName, t) {
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		}
	}

	// Fallback: ANSI256 works in SSH sessions and older emulators
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			fmt.Printf("canopy demo v%s\n", Version)
			return
		case "help", "--help", "-h":
			printHelp()
			return
		case "confirm":
			runConfirm(args[1:])
			return
		case "popup":
			runPopup(args[1:])
			return
		}
		if !strings.HasPrefix(args[0], "-") {
			fmt.Printf("Unknown command: %s\n\n", args[0])
			printHelp()
			os.Exit(1)
		}
	}

	// No subcommand: the confirmation dialog is the main act
	runConfirm(args)
}

// runConfirm starts the confirmation dialog demo.
func runConfirm(args []string) {
	fs := flag.NewFlagSet("confirm", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file path (default: ~/.canopy-demo/config.toml)")
	title := fs.String("title", "", "Override the dialog title")
	message := fs.String("message", "", "Override the dialog message")

	fs.Usage = func() {
		fmt.Println("Usage: canopy-demo confirm [options]")
		fmt.Println()
		fmt.Println("Show the confirmation dialog demo.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  canopy-demo confirm")
		fmt.Println("  canopy-demo confirm -title \"Quit\" -message \"Really quit?\"")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() > 0 {
		fmt.Printf("Error: unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	runDemo(modeConfirm, *configPath, overrides{title: *title, message: *message})
}

// runPopup starts the message popup demo.
func runPopup(args []string) {
	fs := flag.NewFlagSet("popup", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file path (default: ~/.canopy-demo/config.toml)")
	title := fs.String("title", "", "Override the popup title")
	text := fs.String("text", "", "Override the popup text")

	fs.Usage = func() {
		fmt.Println("Usage: canopy-demo popup [options]")
		fmt.Println()
		fmt.Println("Show the message popup demo.")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  canopy-demo popup")
		fmt.Println("  canopy-demo popup -title \"Saved\" -text \"All changes written to disk.\"")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() > 0 {
		fmt.Printf("Error: unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	runDemo(modePopup, *configPath, overrides{title: *title, text: *text})
}

// runDemo loads configuration, wires up logging and hot reload, and runs the
// TUI until the user quits.
func runDemo(mode demoMode, configPath string, ov overrides) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("Error: canopy-demo must run in a terminal")
		os.Exit(1)
	}

	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		// First run: leave a commented example behind for the user to edit
		if err := config.CreateExample(configPath); err != nil {
			fmt.Printf("Error: failed to write example config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	// Logs go to a file, never to the terminal the TUI draws on
	logging.Init(logging.Config{
		LogDir: cfg.Logs.ExpandedDir(),
		Level:  cfg.Logs.Level,
		Format: cfg.Logs.Format,
	})
	defer logging.Shutdown()

	applyTheme(cfg.Theme)

	logger := logging.ForComponent(logging.CompDemo)
	logger.Info("starting demo", "version", Version, "config", configPath)

	watcher, err := config.NewWatcher(configPath)
	if err != nil {
		// The demo still works, edits just need a restart
		logger.Warn("config hot reload disabled", "error", err)
	}

	p := tea.NewProgram(newApp(mode, cfg, configPath, ov, watcher), tea.WithAltScreen())

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		// Closing the watcher ends its reload channel, which in turn
		// releases the bridge goroutine below.
		defer func() {
			if watcher != nil {
				_ = watcher.Close()
			}
		}()
		_, err := p.Run()
		return err
	})

	if watcher != nil {
		watcher.Start()
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-watcher.Reloads():
					if !ok {
						return nil
					}
					cfg, err := config.Load(configPath)
					if err != nil {
						// Keep the settings we already have
						logger.Warn("config reload skipped", "error", err)
						continue
					}
					logger.Info("config reloaded", "path", configPath)
					p.Send(configReloadedMsg{cfg: cfg})
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// applyTheme pins the adaptive palette to one background, or probes the
// terminal when the theme is auto.
func applyTheme(theme string) {
	switch strings.ToLower(theme) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
}

func printHelp() {
	fmt.Printf("canopy demo v%s\n", Version)
	fmt.Println("Interactive showcase for the canopy dialog widgets")
	fmt.Println()
	fmt.Println("Usage: canopy-demo [command] [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  confirm          Show the confirmation dialog demo (default)")
	fmt.Println("  popup            Show the message popup demo")
	fmt.Println("  version          Show version")
	fmt.Println("  help             Show this help")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config <path>   Config file (default: ~/.canopy-demo/config.toml)")
	fmt.Println("  -title <text>    Override the dialog or popup title")
	fmt.Println("  -message <text>  Override the dialog message (confirm)")
	fmt.Println("  -text <text>     Override the popup text (popup)")
	fmt.Println()
	fmt.Println("Keyboard shortcuts (in the demo):")
	fmt.Println("  p          Open the dialog or popup")
	fmt.Println("  ←/→, Tab   Move between buttons")
	fmt.Println("  y/n        Jump to a button by its letter")
	fmt.Println("  Enter      Confirm the selection")
	fmt.Println("  Esc        Dismiss without deciding")
	fmt.Println("  s          Save active settings to the config file")
	fmt.Println("  q          Quit")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  CANOPY_DEMO_DIR   Demo state directory (default: ~/.canopy-demo)")
	fmt.Println("  CANOPY_COLOR      Color mode: truecolor, 256, 16, none")
	fmt.Println()
	fmt.Println("The config file is re-read while the demo runs, so edits apply live.")
}
