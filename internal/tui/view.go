package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"specialchars/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")) // Sky Blue

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")) // Pinkish

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

const helpText = `Special Characters

Pick a character and press enter to copy it to the clipboard.
Every copy moves the character to the top of Recently Used,
which keeps the last 10 distinct characters.

Keys
  ↑/k, ↓/j     move the cursor
  g, G         jump to top or bottom
  enter/space  copy the character under the cursor
  f            add or remove it from Favorites
  c/delete     clear Recently Used
  ?/esc        close this help
  q            quit

Recently Used and Favorites are saved between runs.`

func (m AppModel) View() string {
	if m.ShowHelp {
		return m.renderHelpDialog()
	}
	if m.Loading() {
		return "\n  Loading preferences... please wait.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Special Characters"))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())

	b.WriteString("\n\n")
	switch {
	case m.Status == "":
		b.WriteString(" ")
	case m.StatusIsErr:
		b.WriteString(errorStyle.Render(m.Status))
	default:
		b.WriteString(statusStyle.Render(m.Status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderRows draws the sections, windowed around the cursor when the
// terminal is too short to show every row.
func (m AppModel) renderRows() string {
	rows := m.rows()

	// title (2) + status (3) + help (1)
	visible := len(rows)
	if m.WindowSize.Height > 0 {
		visible = m.WindowSize.Height - 6
		if visible < 3 {
			visible = 3
		}
	}

	startIdx, endIdx := 0, len(rows)
	if len(rows) > visible {
		if m.SelectedIdx >= visible/2 {
			startIdx = m.SelectedIdx - visible/2
		}
		if startIdx+visible > len(rows) {
			startIdx = len(rows) - visible
		}
		endIdx = startIdx + visible
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		r := rows[i]
		if i == startIdx || rows[i-1].Section != r.Section {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, sectionStyle.Render(m.sectionTitle(r.Section)))
		}
		lines = append(lines, m.renderRow(r, i == m.SelectedIdx))
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) sectionTitle(section string) string {
	if section == model.SectionRecent {
		return fmt.Sprintf("%s (%d/%d)", section, m.Recent.Len(), model.MaxRecent)
	}
	return section
}

func (m AppModel) renderRow(r row, selected bool) string {
	heart := dimStyle.Render(model.IconNotFavorite)
	if m.Favorites.Contains(r.Char) {
		heart = favoriteStyle.Render(model.IconFavorite)
	}

	if selected {
		return fmt.Sprintf("%s %s  %s",
			selectedItemStyle.Render(model.IconCursor),
			selectedItemStyle.Render(" "+r.Char.String()+" "),
			heart)
	}
	return fmt.Sprintf("  %s  %s", itemStyle.Render(" "+r.Char.String()+" "), heart)
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return helpText
	}

	helpWidth := w * 80 / 100
	if helpWidth < 40 {
		helpWidth = 40
	}
	if helpWidth > w-4 {
		helpWidth = w - 4
	}

	dialog := lipgloss.NewStyle().
		Width(helpWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(helpText)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}
