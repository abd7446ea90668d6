package formatter

import (
	"strings"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	ID     string // shown dimmed before the title when set
	Level  int
	IsLast bool
	Done   bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders a list of TreeItems as an indented tree using
// box-drawing characters for connectors. Done items get a green ✔ prefix,
// open leaf items an empty ○, and detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if item.ID != "" {
			title = StyleDim.Render(TruncID(item.ID)+" ") + title
		}

		marker := ""
		switch {
		case item.Done:
			marker = StyleGreen.Render("✔ ")
			title = Dim(title)
		case item.Level > 0:
			marker = StyleDim.Render("○ ")
		default:
			title = Bold(title)
		}

		content := prefix + marker + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := maxContentWidth - lipgloss.Width(li.content)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}

// ScopeTree flattens rooms and their scope items into tree rows. Each room
// carries its d/t completion as a badge.
func ScopeTree(rooms []domain.Room) []TreeItem {
	var items []TreeItem
	for _, r := range rooms {
		items = append(items, TreeItem{
			Title:  r.Name,
			ID:     r.ID,
			Detail: r.CompletionLabel(),
		})
		for i, s := range r.Scope {
			items = append(items, TreeItem{
				Title:  s.Text,
				ID:     s.ID,
				Level:  1,
				IsLast: i == len(r.Scope)-1,
				Done:   s.Done,
			})
		}
	}
	return items
}
