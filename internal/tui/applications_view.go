package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/appbrowser/internal/format"
)

// User-facing strings of the applications view.
const (
	TitleText     = "Applications"
	ErrorText     = "Error loading applications. Please try again later."
	ExhaustedText = "There are no more applications to load. Please check back later."
	LoadMoreText  = "Load more"
)

// labelWidth aligns the card values in one column.
const labelWidth = 18

// View renders the model (Bubble Tea interface).
func (m ApplicationsModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{HeaderStyle.Render(TitleText), ""}

	if m.list.ItemCount() > 0 {
		sections = append(sections, m.list.View())
	}

	sections = append(sections, m.statusLines()...)
	sections = append(sections, "", m.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusLines renders the loading, error, exhaustion and load-more regions.
// "Load more" stays visible while a fetch is pending.
func (m ApplicationsModel) statusLines() []string {
	var lines []string
	if m.Loading() {
		lines = append(lines, RenderLoading(m.loading))
	}
	if m.snapshot.HasError {
		lines = append(lines, CriticalStyle.Render(ErrorText))
	}
	if m.snapshot.HasMore {
		lines = append(lines, ButtonStyle.Render(LoadMoreText))
	} else {
		lines = append(lines, MutedStyle.Render(ExhaustedText))
	}
	return lines
}

func (m ApplicationsModel) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, helpEntry(b))
	}
	return MutedStyle.Render(strings.Join(parts, " • "))
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

// renderCard draws one record as a bordered box of labelled cells.
func renderCard(d format.Display, selected bool) string {
	email := ValueStyle.Render(d.Email)
	if d.EmailLink != "" {
		email = LinkStyle.Render(hyperlink(d.EmailLink, d.Email))
	}

	rows := []string{
		cell("Company", ValueStyle.Render(d.Company)),
		cell("Name", ValueStyle.Render(d.Name)),
		cell("Email", email),
		cell("Loan Amount", ValueStyle.Render(d.LoanAmount)),
		cell("Application Date", ValueStyle.Render(d.DateCreated)),
		cell("Expiry date", ValueStyle.Render(d.ExpiryDate)),
	}

	style := BoxStyle
	if selected {
		style = SelectedBoxStyle
	}
	return style.Render(strings.Join(rows, "\n"))
}

func cell(label, value string) string {
	return LabelStyle.Width(labelWidth).Render(label) + value
}

// hyperlink wraps text in an OSC 8 terminal hyperlink to target.
func hyperlink(target, text string) string {
	return "\x1b]8;;" + target + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
