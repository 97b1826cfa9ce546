// docchat TUI - A terminal client for chatting with your documents.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/auth"
	"github.com/docchat/docchat-tui/internal/config"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		serverURL   = flag.String("server", "", "override the server URL")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("docchat %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "docchat is an interactive terminal application; run it in a TTY")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}

	credPath, err := auth.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	creds := auth.NewStore(credPath)
	if err := creds.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load stored credential: %v\n", err)
	}

	client := api.NewClient(cfg.Server.URL, creds).
		WithTimeout(time.Duration(cfg.Server.TimeoutSecs) * time.Second)

	// The alt screen owns stdout; keep log output out of the way.
	logFile, err := tea.LogToFile(logPath(), "docchat")
	if err == nil {
		defer logFile.Close()
	} else {
		log.SetOutput(os.Stderr)
	}

	app := newApp(cfg, client, creds)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func logPath() string {
	dir, err := config.Dir()
	if err != nil {
		return "docchat.log"
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "docchat.log"
	}
	return dir + "/docchat.log"
}
