package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoRefactoringApplied is the fixed fallback shown when nothing was
// done to the selected compilation unit.
const NoRefactoringApplied = "No refactoring applied"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	entryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

// Summary filters and de-duplicates the applied-refactoring
// descriptions for one compilation unit. When a selected element name
// is given, descriptions only surface if the unit's name matches it;
// an unselected (empty) filter matches every unit. Order of first
// occurrence is preserved.
func Summary(applied []string, unitName, selected string) []string {
	if selected != "" && !strings.Contains(selected+" ", unitName) {
		return nil
	}
	seen := make(map[string]bool, len(applied))
	out := make([]string, 0, len(applied))
	for _, d := range applied {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Render produces the display text: each entry on its own line with no
// trailing empty entries, or the fixed fallback when nothing applied.
func Render(entries []string) string {
	if len(entries) == 0 {
		return emptyStyle.Render(NoRefactoringApplied)
	}
	styled := make([]string, 0, len(entries))
	for _, e := range entries {
		styled = append(styled, entryStyle.Render(e))
	}
	return strings.Join(styled, "\n")
}

// RenderUnit prefixes the rendered entries with the unit's name.
func RenderUnit(unitName string, entries []string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(unitName))
	b.WriteString("\n")
	b.WriteString(Render(entries))
	return b.String()
}
