package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/cooplint/internal/model"
)

type tickMsg time.Time

// findingItem adapts one finding to the bubbles list.
type findingItem struct {
	finding m.Finding
}

func (f findingItem) FilterValue() string {
	return f.finding.Span.File + " " + f.finding.RuleID
}

func severityStyle(sev m.Severity) lipgloss.Style {
	switch sev {
	case m.SeverityError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case m.SeverityWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
}

// findingDelegate renders one finding per row.
type findingDelegate struct {
	offset int
}

func (d findingDelegate) Height() int  { return 1 }
func (d findingDelegate) Spacing() int { return 0 }
func (d findingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d findingDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	fi, ok := item.(findingItem)
	if !ok {
		return
	}

	f := fi.finding
	isSelected := index == lm.Index()

	badge := severityStyle(f.Severity).Width(9).Render(string(f.Severity))
	location := fmt.Sprintf("%s:%d", f.Span.File, f.Span.StartLine)

	width := lm.Width() - 9 - lipgloss.Width(location) - 4
	if width < 10 {
		width = 10
	}

	var messageStyle lipgloss.Style

	var message string

	if isSelected {
		messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		message = animateScroll(f.Message, width, d.offset)
	} else {
		messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		message = truncateToWidth(f.Message, width)
	}

	locationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	_, _ = fmt.Fprintf(w, "%s %s  %s",
		badge,
		locationStyle.Render(location),
		messageStyle.Render(message),
	)
}

// animateScroll marquee-scrolls text that does not fit, after a short
// pause on the head of the string.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// findingsModel is the Bubble Tea model for browsing a report.
type findingsModel struct {
	width        int
	height       int
	findingList  list.Model
	delegate     findingDelegate
	report       m.Report
	animOffset   int
	lastSelected int
}

func newFindingsModel(report m.Report) findingsModel {
	delegate := findingDelegate{}
	findingList := list.New(findingItems(report), delegate, 80, 20)
	findingList.SetShowPagination(false)
	findingList.SetShowFilter(true)
	findingList.SetShowHelp(false)
	findingList.SetShowTitle(false)
	findingList.SetShowStatusBar(false)
	findingList.FilterInput.Placeholder = "Filter by file or rule…"

	return findingsModel{
		findingList:  findingList,
		delegate:     delegate,
		report:       report,
		lastSelected: -1,
	}
}

func findingItems(report m.Report) []list.Item {
	items := make([]list.Item, 0, len(report.Findings))
	for _, f := range report.Findings {
		items = append(items, findingItem{finding: f})
	}

	return items
}

func (fm findingsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (fm findingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.width = msg.Width
		fm.height = msg.Height
		fm.findingList.SetWidth(fm.width)

	case tickMsg:
		if fm.findingList.FilterState() != list.Filtering {
			fm.animOffset++
			fm.delegate.offset = fm.animOffset
			fm.findingList.SetDelegate(fm.delegate)

			return fm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return fm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return fm, tea.Quit
		default:
			var newList list.Model

			newList, cmd = fm.findingList.Update(msg)
			fm.findingList = newList

			if fm.findingList.Index() != fm.lastSelected {
				fm.lastSelected = fm.findingList.Index()
				fm.animOffset = 0
				fm.delegate.offset = 0
				fm.findingList.SetDelegate(fm.delegate)
			}

			return fm, cmd
		}
	}

	return fm, cmd
}

func (fm findingsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("cooplint findings")

	counts := fm.report.CountBySeverity()
	summary := summaryStyle.Render(fmt.Sprintf(
		"Errors: %s   Warnings: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", counts[m.SeverityError])),
		accentStyle.Render(fmt.Sprintf("%d", counts[m.SeverityWarning])),
		accentStyle.Render(fmt.Sprintf("%d", fm.report.Files)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(fm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		fm.renderTable(),
		footer,
	)
}

func (fm findingsModel) renderTable() string {
	listHeight := fm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := fm.width - 6

	fm.findingList.SetHeight(listHeight)
	fm.findingList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-9s %s  %s", "Severity", "Location", "Message"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			fm.findingList.View(),
		),
	)
}
