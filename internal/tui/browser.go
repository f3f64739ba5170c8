// Package tui implements the interactive directory browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/dirmonitor/internal/dirscan"
	"github.com/joe/dirmonitor/internal/tui/shared"
)

const (
	nameColumnWidth     = 40
	sizeColumnWidth     = 10
	modifiedColumnWidth = 19

	// chromeHeight is the number of lines used around the table (title, footer, help)
	chromeHeight       = 6
	minTableHeight     = 3
	defaultTableHeight = 15
)

// scanResultMsg carries one snapshot of the directory
type scanResultMsg struct {
	entries   []dirscan.Entry
	total     int64
	recent    dirscan.Entry
	hasRecent bool
	err       error
}

// Browser is a bubbletea model showing the entries of one directory in a table
// with the total size and most recent entry underneath
type Browser struct {
	scanner *dirscan.Scanner
	title   string

	table   table.Model
	spinner spinner.Model
	loading bool

	entries   []dirscan.Entry
	total     int64
	recent    dirscan.Entry
	hasRecent bool
	err       error

	width  int
	height int
}

// NewBrowser creates a browser over scanner. title is shown in the header,
// usually the path as the user typed it.
func NewBrowser(scanner *dirscan.Scanner, title string) *Browser {
	columns := []table.Column{
		{Title: "Name", Width: nameColumnWidth},
		{Title: "Size", Width: sizeColumnWidth},
		{Title: "Modified", Width: modifiedColumnWidth},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(shared.AccentColor()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(shared.HighlightColor()).
		Bold(true)
	tbl.SetStyles(styles)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(shared.PrimaryColor())

	return &Browser{
		scanner: scanner,
		title:   title,
		table:   tbl,
		spinner: spin,
		loading: true,
	}
}

// Init implements tea.Model
func (b *Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.scanCmd())
}

// Update implements tea.Model
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case shared.KeyCtrlC, shared.KeyQuit:
			return b, tea.Quit
		case "r":
			if b.loading {
				return b, nil
			}

			b.loading = true

			return b, tea.Batch(b.spinner.Tick, b.scanCmd())
		}

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.table.SetWidth(msg.Width)
		b.table.SetHeight(max(msg.Height-chromeHeight, minTableHeight))

		return b, nil

	case scanResultMsg:
		b.applyScan(msg)
		return b, nil

	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}

		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)

		return b, cmd
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)

	return b, cmd
}

// View implements tea.Model
func (b *Browser) View() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("dirmonitor"))
	builder.WriteString(" ")
	builder.WriteString(shared.RenderDim(shared.TruncatePath(b.title, max(b.width-len("dirmonitor "), 0))))
	builder.WriteString("\n\n")

	switch {
	case b.err != nil:
		builder.WriteString(shared.RenderEnrichedError(b.err, b.scanner.Path(), b.width))
	case b.loading && b.entries == nil:
		builder.WriteString(b.spinner.View() + " Scanning...\n")
	case len(b.entries) == 0:
		builder.WriteString(shared.RenderWarning("Directory is empty"))
		builder.WriteString("\n")
	default:
		builder.WriteString(b.table.View())
		builder.WriteString("\n")
		builder.WriteString(b.footer())
		builder.WriteString("\n")
	}

	builder.WriteString(shared.RenderDim("↑/↓ move • r refresh • q quit"))

	return builder.String()
}

// Selected returns the entry under the cursor, if any
func (b *Browser) Selected() (dirscan.Entry, bool) {
	cursor := b.table.Cursor()
	if cursor < 0 || cursor >= len(b.entries) {
		return dirscan.Entry{}, false
	}

	return b.entries[cursor], true
}

func (b *Browser) footer() string {
	parts := []string{
		fmt.Sprintf("%s %d", shared.RenderLabel("Entries:"), len(b.entries)),
		fmt.Sprintf("%s %s", shared.RenderLabel("Total:"), shared.FormatBytes(b.total)),
	}

	if b.hasRecent {
		parts = append(parts, fmt.Sprintf("%s %s (%s)",
			shared.RenderLabel("Newest:"), shared.EntryName(b.recent), shared.FormatTime(b.recent.ModTime)))
	}

	if b.loading {
		parts = append(parts, b.spinner.View())
	}

	return strings.Join(parts, "  ")
}

func (b *Browser) applyScan(msg scanResultMsg) {
	b.loading = false
	b.err = msg.err

	if msg.err != nil {
		return
	}

	b.entries = msg.entries
	b.total = msg.total
	b.recent = msg.recent
	b.hasRecent = msg.hasRecent

	rows := make([]table.Row, 0, len(msg.entries))
	for _, entry := range msg.entries {
		size := "-"
		if !entry.IsDir {
			size = shared.FormatBytes(entry.Size)
		}

		rows = append(rows, table.Row{shared.EntryName(entry), size, shared.FormatTime(entry.ModTime)})
	}

	b.table.SetRows(rows)

	if b.table.Cursor() >= len(rows) {
		b.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (b *Browser) scanCmd() tea.Cmd {
	scanner := b.scanner

	return func() tea.Msg {
		return scanDirectory(scanner)
	}
}

// scanDirectory lists the directory once. The rows and totals come from the
// same pass.
func scanDirectory(scanner *dirscan.Scanner) scanResultMsg {
	var (
		entries []dirscan.Entry
		sum     dirscan.SizeAccumulator
		recent  dirscan.RecentTracker
	)

	collect := dirscan.ActionFunc(func(entry dirscan.Entry) error {
		entries = append(entries, entry)
		return nil
	})

	err := scanner.ForEachMatching(nil, dirscan.Chain(collect, dirscan.Where(dirscan.Files(), &sum), &recent))
	if err != nil {
		return scanResultMsg{err: err}
	}

	latest, found := recent.Result()

	return scanResultMsg{
		entries:   entries,
		total:     sum.Total,
		recent:    latest,
		hasRecent: found,
	}
}
