package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/markup"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/messages"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

// linesPerItem is a title, a meta line and a blank separator.
const linesPerItem = 3

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.showingPost {
		body = m.viewport.View()
	} else {
		body = m.listView()
	}

	parts := []string{body, m.footer()}
	if header := m.header(); header != "" {
		parts = append([]string{header}, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) header() string {
	var parts []string
	if m.title != "" {
		parts = append(parts, m.styles.Title.Render(m.title))
	}
	if m.banner != "" && !m.showingPost {
		parts = append(parts, m.styles.Banner.Render(m.banner))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) footer() string {
	bindings := m.keys.listHelp()
	if m.showingPost {
		bindings = m.keys.postHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		hints = append(hints, m.styles.HelpKey.Render(help.Key)+" "+m.styles.HelpLabel.Render(m.text.Text(help.Desc)))
	}
	return strings.Join(hints, m.styles.HelpLabel.Render(" · "))
}

// chromeHeight is the number of lines the header and footer take.
func (m *Model) chromeHeight() int {
	header := m.header()
	h := 1
	if header != "" {
		h += lipgloss.Height(header)
	}
	return h
}

func (m *Model) visibleItems() int {
	return max((m.height-m.chromeHeight())/linesPerItem, 1)
}

func (m *Model) listView() string {
	if len(m.items) == 0 {
		if m.banner != "" {
			return ""
		}
		return m.styles.Hint.Render(m.text.Text(messages.EmptyList))
	}

	width := max(m.width-4, 10)
	var b strings.Builder
	end := min(m.offset+m.visibleItems(), len(m.items))
	for i := m.offset; i < end; i++ {
		item := m.items[i]

		title := truncate(item.Title, width)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(title))
		} else {
			b.WriteString(m.styles.Item.Render(title))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Meta.Render(truncate(item.Meta, width)))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// renderContent renders the post content for the viewport.
func (m *Model) renderContent() string {
	width := max(m.viewport.Width, 10)

	switch m.content.Kind {
	case nav.ContentLoading:
		return m.styles.Hint.Render(m.content.Body)
	case nav.ContentError:
		return m.styles.Error.Render(m.content.Body)
	}

	blocks, err := markup.Parse(m.content.Body)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(m.content.Body)
	}

	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		parts = append(parts, m.renderBlock(block, width))
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) renderBlock(block markup.Block, width int) string {
	switch block.Kind {
	case markup.Heading:
		return m.styles.Heading.Width(width).Render(block.Text)
	case markup.Quote:
		return m.styles.Quote.Width(width - 2).Render(block.Text)
	case markup.Preformatted:
		return m.styles.Code.Render(strings.ReplaceAll(block.Text, "\t", "    "))
	case markup.ListItem:
		indent := 2 * max(block.Level-1, 0)
		return lipgloss.NewStyle().PaddingLeft(indent).Width(width).Render(markup.Bullet + block.Text)
	default:
		return lipgloss.NewStyle().Width(width).Render(block.Text)
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
