// Package main is the entry point for the pinned application.
// It loads configuration, initializes storage, and starts the popover.
package main

import (
	"flag"
	"fmt"
	"os"

	"pinned/internal/config"
	"pinned/internal/storage"
	"pinned/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `pinned - A tiny always-at-hand task list for your terminal

USAGE:
    pinned [OPTIONS]
    pinned <command> [ARGS]

COMMANDS:
    report           Submit a bug report or feedback
    report -m MSG    Submit with the message given inline

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    pinned is a keyboard-driven popover holding a single short task list:
    jot things down, check them off, reorder them, close it. Tasks survive
    restarts unless you turn retention off in the settings.

KEYBINDINGS:
    Tasks:
        j/k, ↓/↑     Navigate
        a            Add task
        d/Space      Toggle done
        e            Edit title
        x            Delete task
        m            Move task (then j/k to pick a slot, Enter to drop)
        c            Clear completed
        C            Clear all (asks first)
        g/G          Go to top/bottom

    Global:
        s            Settings
        ?            Help overlay
        q            Close

DATA STORAGE:
    All data is stored in ~/.pinned/ as plain JSON files:
        tasks.json     - Your tasks
        settings.json  - Appearance and behavior preferences

CONFIGURATION:
    Optional config file: ~/.config/pinned/config.yaml
    Covers the data directory, key bindings, and the feedback endpoint.

EXAMPLES:
    # Open the popover
    pinned

    # Send feedback
    pinned report -m "the move marker is hard to see"

    # Show version
    pinned --version
`

func main() {
	if len(os.Args) > 1 && os.Args[1] == "report" {
		runReport(os.Args[2:])
		return
	}

	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("pinned version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	if err := ui.Run(store, &cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
