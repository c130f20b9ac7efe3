package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmehta/arxtab/internal/arxiv"
)

type resultsMsg struct {
	items []arxiv.Result
	err   error
}

type previewMsg struct {
	id   string
	text string
	err  error
}

type openResultMsg struct {
	url string
	err error
}

func searchJob(client *arxiv.Client, params arxiv.Params) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, 30*time.Second)
		defer cancel()
		items, err := client.Search(ctx, params)
		if err != nil {
			return resultsMsg{err: err}, err
		}
		return resultsMsg{items: items}, nil
	}
}

func previewJob(id, pdfURL string) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, 2*time.Minute)
		defer cancel()
		text, err := arxiv.FetchText(ctx, pdfURL)
		if err != nil {
			return previewMsg{id: id, err: err}, err
		}
		return previewMsg{id: id, text: text}, nil
	}
}

func openJob(open func(string) error, url string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		if err := open(url); err != nil {
			return openResultMsg{url: url, err: err}, err
		}
		return openResultMsg{url: url}, nil
	}
}
