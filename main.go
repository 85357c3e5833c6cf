package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"dramagotchi/internal/cli"
	"dramagotchi/internal/pet"
	"dramagotchi/internal/ui"
)

// isTerminal is replaced in tests
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useTextMode reports whether the line-based interface should be used instead of the TUI
func useTextMode(forceCLI bool, stdin, stdout uintptr) bool {
	return forceCLI || !isTerminal(stdin) || !isTerminal(stdout)
}

func main() {
	textMode := flag.Bool("cli", false, "Start in text mode instead of the terminal UI")
	name := flag.String("name", "", "Name of the pet (skips the name prompt)")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "dramagotchi")
		if err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := pet.DefaultConfig()

	if useTextMode(*textMode, os.Stdin.Fd(), os.Stdout.Fd()) {
		runText(*name, &cfg)
		return
	}

	p := tea.NewProgram(ui.NewModel(*name, &cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("Terminal UI failed: %v", err)
		fmt.Printf("%v. Switching to text mode...\n", err)
		runText(*name, &cfg)
	}
}

func runText(name string, cfg *pet.Config) {
	session := &cli.Session{
		In:     os.Stdin,
		Out:    os.Stdout,
		Config: cfg,
		Name:   name,
	}
	if err := session.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
