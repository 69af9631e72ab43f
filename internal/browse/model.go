// Package browse provides the Bubble Tea trip browser.
package browse

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/bsatish290/pdsnd-github/internal/dataset"
)

const (
	maxColumnWidth = 28
	chromeHeight   = 4
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea trip browser.
type Model struct {
	ds      *dataset.Dataset
	summary string
	table   table.Model

	width  int
	height int
}

// NewModel builds a browser over the trips of ds. summary describes the
// active filters and is shown above the table.
func NewModel(ds *dataset.Dataset, summary string) *Model {
	columns, rows := buildTableData(ds)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return &Model{ds: ds, summary: summary, table: t}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(1, msg.Height-chromeHeight))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("%s trips", m.ds.City))
	header := headerStyle.Render(m.summary)
	return lipgloss.JoinVertical(lipgloss.Left, title, header, m.table.View(), m.renderFooter())
}

// Cursor returns the position of the highlighted trip.
func (m *Model) Cursor() int {
	return m.table.Cursor()
}

func (m *Model) renderFooter() string {
	total := m.ds.Len()
	if total == 0 {
		return footerStyle.Render("No trips match the selected filters.  q quit")
	}
	pos := m.table.Cursor() + 1
	return footerStyle.Render(fmt.Sprintf("Trip %s of %s  ↑/↓ move  g/G top/bottom  q quit",
		humanize.Comma(int64(pos)), humanize.Comma(int64(total))))
}

func buildTableData(ds *dataset.Dataset) ([]table.Column, []table.Row) {
	titles := append([]string{"#"}, ds.Columns()...)
	widths := make([]int, len(titles))
	for i, title := range titles {
		widths[i] = runewidth.StringWidth(title)
	}

	rows := make([]table.Row, 0, ds.Len())
	for _, trip := range ds.Trips {
		row := make(table.Row, 0, len(titles))
		row = append(row, strconv.Itoa(trip.Index))
		row = append(row, trip.Values...)
		row = append(row, trip.DerivedValues()...)
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = min(w, maxColumnWidth)
			}
			if runewidth.StringWidth(cell) > maxColumnWidth {
				row[i] = runewidth.Truncate(cell, maxColumnWidth, "…")
			}
		}
		rows = append(rows, row)
	}

	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}
	return columns, rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(false)
	return styles
}
