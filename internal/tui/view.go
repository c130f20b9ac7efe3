package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Lines each result row occupies on screen: title, meta, two summary lines,
// and a separator.
const rowBlockHeight = 5

func (m *Model) View() string {
	switch m.stage {
	case stageBrowse, stageLoading:
		return m.viewBrowse()
	case stageSearch:
		return m.viewSearch()
	case stageHelp:
		return m.viewHelp()
	case stagePreview:
		return m.viewPreview()
	default:
		return ""
	}
}

func (m *Model) viewBrowse() string {
	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(helperStyle.Render("No results on this page."))
		b.WriteString("\n")
	} else {
		start, end := m.visibleWindow()
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(i))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.footerLine())
	return b.String()
}

func (m *Model) statusLine() string {
	query := m.params.Query
	if query == "" {
		query = "(all)"
	}
	parts := []string{
		"arxtab",
		fmt.Sprintf("query %s", query),
		fmt.Sprintf("page %d", m.params.Page),
		fmt.Sprintf("%d rows", len(m.items)),
		fmt.Sprintf("%d seen", m.seen.Len()),
	}
	if pending := m.amount.Pending(); pending != "" {
		parts = append(parts, fmt.Sprintf("amount %s", pending))
	}
	return statusBarStyle.Render(strings.Join(parts, "  ·  "))
}

func (m *Model) footerLine() string {
	var parts []string
	if m.stage == stageLoading {
		verb := "fetching results"
		if m.loading == jobKindPreview {
			verb = "fetching PDF"
		}
		parts = append(parts, fmt.Sprintf("%s %s…", m.spinner.View(), verb))
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	parts = append(parts, helperStyle.Render("j/k move · n/p page · / search · h help · q quit"))
	return strings.Join(parts, "\n")
}

// visibleWindow scrolls the row window so the cursor stays on screen.
func (m *Model) visibleWindow() (int, int) {
	visible := clampMin((m.height-4)/rowBlockHeight, 1)
	start := 0
	if idx := m.cursor.Index(); idx >= visible {
		start = idx - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}
	return start, end
}

func (m *Model) renderRow(i int) string {
	item := m.items[i]

	marker := unseenMarkStyle.Render("·")
	if m.seen.Contains(item.ID) {
		marker = seenMarkStyle.Render("✓")
	}

	selected := m.cursor.Active() && i == m.cursor.Index()
	prefix := "  "
	style := titleStyle
	if selected {
		prefix = "▸ "
		style = selectedTitleStyle
	}

	width := clampMin(m.width-6, 30)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, marker, style.Render(truncate(item.Title, width))))

	meta := item.AuthorLine()
	if item.Updated != "" {
		if meta != "" {
			meta += " · "
		}
		meta += item.Updated
	}
	b.WriteString("    " + helperStyle.Render(truncate(meta, width)) + "\n")

	summary := strings.Split(wordwrap.String(item.Summary, width), "\n")
	for line := 0; line < 2; line++ {
		text := ""
		if line < len(summary) {
			text = summary[line]
		}
		b.WriteString("    " + summaryStyle.Render(text) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("Press Enter to fetch, Esc to cancel."))
	return b.String()
}

func (m *Model) viewHelp() string {
	lines := []string{
		sectionHeaderStyle.Render("Keys"),
		"/          search; Enter confirms, Esc cancels",
		"<N> j / ↓  move down N rows (default 1)",
		"<N> k / ↑  move up N rows",
		"g / G      jump to first / last row",
		"<N> n      advance N pages and fetch",
		"<N> p      retreat N pages and fetch",
		"b          clear the query and browse everything",
		"o          open the PDF link in the browser",
		"t          open the HTML (ar5iv) version",
		"v          preview the PDF text in the terminal",
		"s / d      mark / unmark the row as seen",
		"q          save the seen list and quit",
		"",
		helperStyle.Render("Press any key to close."),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewPreview() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render(fmt.Sprintf("PDF text · %s", m.previewOf)))
	b.WriteString("\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("j/k or arrows scroll · Esc returns"))
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
