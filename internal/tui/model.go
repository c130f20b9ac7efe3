// Package tui implements the interaction state machine: a Bubble Tea model
// over the current result page, the selection cursor, the numeric amount
// accumulator, and the search, help, and preview modes.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jmehta/arxtab/internal/arxiv"
	"github.com/jmehta/arxtab/internal/browser"
	"github.com/jmehta/arxtab/internal/seen"
)

type stage int

const (
	stageLoading stage = iota
	stageBrowse
	stageSearch
	stageHelp
	stagePreview
)

// Config wires runtime collaborators into the model.
type Config struct {
	Client *arxiv.Client
	Seen   *seen.Set
	Params arxiv.Params

	// OpenURL hands a URL to the external browser. Defaults to the system
	// opener; tests inject a capture function.
	OpenURL func(string) error
}

// Model is the top-level Bubble Tea model. All state is mutated by the
// single foreground Update loop; no locking is needed.
type Model struct {
	config Config

	stage   stage
	loading jobKind

	params arxiv.Params
	items  []arxiv.Result
	cursor cursor
	amount amountBuffer
	seen   *seen.Set

	searchInput textinput.Model
	spinner     spinner.Model
	preview     viewport.Model
	previewOf   string

	jobs *jobBus

	width        int
	height       int
	infoMessage  string
	errorMessage string
	fatalErr     error
}

// New returns a Model ready to be mounted into a tea.Program. The initial
// fetch for the configured params runs before the first page is usable.
func New(config Config) *Model {
	if config.OpenURL == nil {
		config.OpenURL = browser.Open
	}
	if config.Seen == nil {
		config.Seen = seen.NewSet()
	}
	if config.Params == (arxiv.Params{}) {
		config.Params = arxiv.NewParams()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "free-text query, empty to browse all"
	searchInput.CharLimit = 120
	searchInput.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)

	return &Model{
		config:      config,
		stage:       stageLoading,
		loading:     jobKindFetch,
		params:      config.Params,
		seen:        config.Seen,
		searchInput: searchInput,
		spinner:     spin,
		preview:     vp,
		jobs:        newJobBus(),
		width:       80,
		height:      24,
	}
}

// Err reports the fatal error that ended the session, if any. A failed fetch
// terminates the loop; main reports it and exits non-zero.
func (m *Model) Err() error {
	return m.fatalErr
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.stage == stageLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = clampMin(msg.Width-4, 40)
		m.preview.Height = clampMin(msg.Height-6, 5)
		return m, nil
	case resultsMsg:
		if msg.err != nil {
			m.fatalErr = msg.err
			return m, tea.Quit
		}
		m.items = msg.items
		m.cursor.Resize(len(m.items))
		m.stage = stageBrowse
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("page %d · query %q · %d results", m.params.Page, m.params.Query, len(m.items))
		return m, nil
	case previewMsg:
		if msg.err != nil {
			m.stage = stageBrowse
			m.errorMessage = fmt.Sprintf("preview failed: %v", msg.err)
			return m, nil
		}
		m.previewOf = msg.id
		m.preview.SetContent(wordwrap.String(msg.text, m.preview.Width))
		m.preview.GotoTop()
		m.stage = stagePreview
		m.errorMessage = ""
		return m, nil
	case openResultMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
		} else {
			m.infoMessage = fmt.Sprintf("opened %s", msg.url)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageLoading:
		// Input is suspended until the in-flight request returns.
		return m, nil
	case stageBrowse:
		return m.handleBrowseKey(key)
	case stageSearch:
		return m.handleSearchKey(key)
	case stageHelp:
		// Any key dismisses the overlay and is discarded.
		m.stage = stageBrowse
		return m, nil
	case stagePreview:
		return m.handlePreviewKey(key)
	default:
		return m, nil
	}
}

func (m *Model) handleBrowseKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := key.String()
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		m.amount.Push(rune(s[0]))
		return m, nil
	}

	switch s {
	case "j", "down":
		m.cursor.StepForward(m.amount.Take())
	case "k", "up":
		m.cursor.StepBackward(m.amount.Take())
	case "g":
		m.cursor.First()
	case "G":
		m.cursor.Last()
	case "n":
		m.params.NextPageBy(m.amount.Take())
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
	case "p":
		m.params.PrevPageBy(m.amount.Take())
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
	case "b":
		m.params.SetQuery("")
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
	case "/":
		m.stage = stageSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink
	case "o":
		if link, ok := m.selectedPDFLink(); ok {
			return m, m.jobs.Start(jobKindOpen, openJob(m.config.OpenURL, link.Href))
		}
	case "t":
		if item, ok := m.selectedResult(); ok {
			if link, ok := item.AlternateLink(); ok {
				url := arxiv.HTMLVersionURL(link.Href)
				return m, m.jobs.Start(jobKindOpen, openJob(m.config.OpenURL, url))
			}
		}
	case "v":
		if link, ok := m.selectedPDFLink(); ok {
			item, _ := m.selectedResult()
			m.stage = stageLoading
			m.loading = jobKindPreview
			m.infoMessage = fmt.Sprintf("fetching PDF for %s", item.ID)
			return m, tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindPreview, previewJob(item.ID, link.Href)))
		}
	case "s":
		if item, ok := m.selectedResult(); ok {
			m.seen.Mark(item.ID)
		}
	case "d":
		if item, ok := m.selectedResult(); ok {
			m.seen.Unmark(item.ID)
		}
	case "h":
		m.stage = stageHelp
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.stage = stageBrowse
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEnter:
		// The buffer becomes the query verbatim; the page stays put.
		m.params.SetQuery(m.searchInput.Value())
		m.searchInput.Blur()
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	return m, cmd
}

func (m *Model) handlePreviewKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q":
		m.stage = stageBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(key)
	return m, cmd
}

func (m *Model) fetchCmd() tea.Cmd {
	m.stage = stageLoading
	m.loading = jobKindFetch
	return m.jobs.Start(jobKindFetch, searchJob(m.config.Client, m.params))
}

func (m *Model) selectedResult() (arxiv.Result, bool) {
	if len(m.items) == 0 {
		return arxiv.Result{}, false
	}
	idx := m.cursor.Index()
	if idx >= len(m.items) {
		idx = 0
	}
	return m.items[idx], true
}

func (m *Model) selectedPDFLink() (arxiv.Link, bool) {
	item, ok := m.selectedResult()
	if !ok {
		return arxiv.Link{}, false
	}
	return item.PDFLink()
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
