package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmehta/arxtab/internal/arxiv"
	"github.com/jmehta/arxtab/internal/config"
	"github.com/jmehta/arxtab/internal/seen"
	"github.com/jmehta/arxtab/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	query := flag.String("query", "", "initial search query (overrides config)")
	page := flag.Int("page", 1, "initial page number")
	seenFile := flag.String("seen-file", "", "path to the seen-id file (overrides config)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	if os.Getenv("ARXTAB_DEBUG") != "" {
		f, err := tea.LogToFile("arxtab-debug.log", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to open debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seenFile != "" {
		cfg.Seen.Path = *seenFile
	}

	// An unreadable seen file degrades to an empty set; only writing it
	// back at exit is allowed to fail hard.
	ids, err := seen.Load(cfg.Seen.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seen list unreadable, starting empty:", err)
	}

	params := arxiv.Params{Page: *page, Query: cfg.Service.DefaultQuery}
	if *query != "" {
		params.Query = *query
	}

	client := arxiv.NewClient(cfg.Service.BaseURL, &http.Client{Timeout: cfg.Service.HTTPTimeout})

	model := tui.New(tui.Config{
		Client: client,
		Seen:   ids,
		Params: params,
	})

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	// Bubble Tea restores the terminal on every exit path, including
	// panics and propagated errors.
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "program error:", err)
		os.Exit(1)
	}

	if m, ok := final.(*tui.Model); ok && m.Err() != nil {
		fmt.Fprintln(os.Stderr, m.Err())
		os.Exit(1)
	}

	if err := ids.Save(cfg.Seen.Path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
