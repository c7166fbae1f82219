package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-tree/internal/tree"
	uistate "github.com/atomicstack/tmux-popup-tree/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "↑/↓ move  enter toggle  a add  r rename  d delete  m move  / filter  q quit"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.header()
	if m.mode == ModeRename && m.renameForm != nil {
		return m.viewFormWithHeader(m.renameForm.Title(), m.renameForm.InputView(), m.renameForm.Help(), header)
	}

	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if len(m.outline.Rows) == 0 {
		msg := "(empty tree)"
		if m.outline.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.outline.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		rows, start := m.outline.Visible(m.maxVisibleItems())
		for i, row := range rows {
			lines = append(lines, m.buildRowLine(row, start+i == m.outline.Cursor, m.width))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottomLines := []styledLine{m.statusLine(), m.promptLine()}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) header() string {
	count := tree.Len(m.forest)
	noun := "nodes"
	if count == 1 {
		noun = "node"
	}
	return fmt.Sprintf("%s · %d %s", defaultTitle, count, noun)
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.mode == ModeConfirmDelete && m.deleteTarget != nil:
		return styledLine{text: fmt.Sprintf("Delete %s and everything below it? (y/n)", m.deleteTarget.Label), style: styles.Confirm}
	case m.grabbed != nil:
		return styledLine{text: fmt.Sprintf("Moving %s: enter drops it above the cursor, esc cancels", m.grabbed.Label), style: styles.Grabbed}
	}
	return styledLine{}
}

func (m *Model) promptLine() styledLine {
	if m.mode != ModeFilter {
		return styledLine{}
	}
	return styledLine{text: m.filterInput.View(), raw: true}
}

// buildRowLine renders one outline row. width is the target column width;
// when > 0 the selected row is padded so its background spans the line.
func (m *Model) buildRowLine(row uistate.Row, selected bool, width int) styledLine {
	indicatorStyle := styles.ItemIndicator
	labelStyle := styles.Item
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		labelStyle = styles.SelectedItem
	}
	label := row.Label
	if m.grabbed != nil && m.grabbed.ID == row.ID {
		labelStyle = styles.Grabbed
		label += " (moving)"
	}
	avatarStyle := styles.Leaf
	switch {
	case row.IsLoading:
		avatarStyle = styles.Loading
	case row.HasChildren:
		avatarStyle = styles.Branch
	}

	text := render(indicatorStyle, "▌") + " " +
		strings.Repeat("  ", row.Depth) +
		render(styles.Guide, rowMarker(row)) + " " +
		render(avatarStyle, rowAvatar(row)) + " " +
		render(labelStyle, label)
	if selected && width > 0 {
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += render(labelStyle, strings.Repeat(" ", pad))
		}
	}
	return styledLine{text: text, raw: true}
}

func rowMarker(row uistate.Row) string {
	switch {
	case row.IsLoading:
		return "◌"
	case row.IsOpen:
		return "▾"
	case row.HasChildren || !row.IsLoaded:
		return "▸"
	default:
		return "·"
	}
}

// rowAvatar is the upper-cased first letter of the label.
func rowAvatar(row uistate.Row) string {
	if row.IsLoading {
		return "…"
	}
	for _, r := range row.Label {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header + status + prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
