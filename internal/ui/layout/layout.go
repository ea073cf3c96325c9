package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dr-rompecabezas/langportal/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	SidebarWidth = 22

	CompactWidthThreshold = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// SidebarItem is one entry of the section sidebar.
type SidebarItem struct {
	Label  string
	Active bool
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentWidth returns the width left for a screen beside the sidebar.
func ContentWidth(totalWidth int) int {
	return max(totalWidth-SidebarWidth-1, 0)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// RenderHeader renders the header bar: brand, breadcrumb trail and a
// right-aligned status such as the backend host.
func RenderHeader(crumbs []string, status string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Lang Portal")

	sep := lipgloss.NewStyle().Foreground(theme.TextDim).Render(" › ")
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == len(crumbs)-1 {
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}
		parts[i] = style.Render(c)
	}
	center := strings.Join(parts, sep)

	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(status)

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0) // account for border padding

	leftGap := max(SidebarWidth-leftLen, 2)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return theme.Header.Width(width).Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return theme.Footer.Width(width).Render(content)
}

// RenderSidebar renders the section list with the active entry marked.
func RenderSidebar(items []SidebarItem, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, item := range items {
		if item.Active {
			b.WriteString(theme.Selected.Render(" ▸ " + item.Label))
		} else {
			b.WriteString(theme.Unselected.Render("   " + item.Label))
		}
		b.WriteString("\n")
	}

	return theme.Sidebar.
		Width(SidebarWidth).
		Height(height).
		Render(b.String())
}

// RenderFrame composes the full frame: header, sidebar beside content,
// footer.
func RenderFrame(header, sidebar, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := max(height-headerHeight-footerHeight, 0)

	styledContent := lipgloss.NewStyle().
		Width(ContentWidth(width)).
		Height(contentHeight).
		PaddingLeft(1).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, styledContent)
	return header + "\n" + body + "\n" + footer
}
