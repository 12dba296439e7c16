package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"phoneflip/internal/api"
	"phoneflip/internal/config"
	"phoneflip/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// A TUI owns stdout, so diagnostics go to a file when debugging is on.
	if os.Getenv("PHONEFLIP_DEBUG") != "" {
		f, err := tea.LogToFile("phoneflip-debug.log", "phoneflip")
		if err != nil {
			log.Fatalf("open debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(os.Stderr)
	}

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout)

	p := tea.NewProgram(tui.New(client, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
