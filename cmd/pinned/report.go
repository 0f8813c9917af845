// Package main is the entry point for the pinned application.
// This file contains the report subcommand handler.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"pinned/internal/bugreport"
	"pinned/internal/config"
)

// reportHelpText is the help message for the report subcommand.
const reportHelpText = `pinned report - Send a bug report or feedback

USAGE:
    pinned report [OPTIONS]

OPTIONS:
    -m MESSAGE     Report message (read from stdin when omitted)
    --endpoint URL Override the feedback endpoint
    -h, --help     Show this help message

DESCRIPTION:
    Sends a short free-text report to the feedback service along with the
    app version and platform. Nothing else leaves your machine; your tasks
    and settings stay local.

EXAMPLES:
    # Inline message
    pinned report -m "the accent color resets after restart"

    # Compose in the terminal (end with an empty line)
    pinned report
`

func runReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	message := fs.String("m", "", "report message")
	endpoint := fs.String("endpoint", "", "override the feedback endpoint")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, reportHelpText)
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	desc := strings.TrimSpace(*message)
	if desc == "" {
		desc = readReportFromStdin()
	}
	if desc == "" {
		fmt.Fprintln(os.Stderr, "Error: empty report")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	url := cfg.ReportEndpoint
	if *endpoint != "" {
		url = *endpoint
	}

	client := bugreport.NewClient(url)
	if err := client.Submit(context.Background(), bugreport.NewReport(desc, version, commit)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Thanks! Report sent.")
}

// readReportFromStdin collects lines until a blank line or EOF.
func readReportFromStdin() string {
	fmt.Println("Describe the problem (finish with an empty line):")
	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
