package tui

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type jobKind string

const (
	jobKindFetch   jobKind = "fetch"
	jobKindPreview jobKind = "preview"
	jobKindOpen    jobKind = "open"
)

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus wraps asynchronous commands so every fetch, preview, and URL open
// gets an id and a logged duration. Only one fetch is ever in flight: the
// state machine blocks input until the result message comes back.
type jobBus struct {
	counter int64
}

func newJobBus() *jobBus {
	return &jobBus{}
}

func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	id := fmt.Sprintf("%s-%d", kind, atomic.AddInt64(&b.counter, 1))
	started := time.Now()
	return func() tea.Msg {
		payload, err := runner(context.Background())
		status := "succeeded"
		if err != nil {
			status = "failed"
		}
		log.Printf("[jobs] %s %s (duration=%s, err=%v)", id, status, time.Since(started), err)
		return payload
	}
}
