package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/crewboard/internal/domain"
)

// TreeItem is one node of a tree display. Level 0 items are roots.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Status domain.TaskStatus
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree with box-drawing connectors.
// Completed items are dimmed with a ✔, in-progress items get a ▶, and detail
// badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		prefix := ""
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		switch item.Status {
		case domain.TaskCompleted:
			title = StyleGreen.Render("✔ ") + Dim(title)
		case domain.TaskInProgress:
			title = StyleYellowBold.Render("▶ " + title)
		}
		contents[i] = prefix + title
		widest = max(widest, lipgloss.Width(contents[i]))
	}

	var b strings.Builder
	for i, item := range items {
		if item.Detail == "" {
			b.WriteString(contents[i] + "\n")
			continue
		}
		b.WriteString(PadRight(contents[i], widest) + "  " + StyleBlue.Render("[ "+item.Detail+" ]") + "\n")
	}
	return b.String()
}
