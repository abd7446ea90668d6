package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// FormatProjectList renders every project in stored order inside a bordered
// box. The active project is marked with ▸.
func FormatProjectList(w domain.Workspace) string {
	if len(w.Projects) == 0 {
		return RenderBox("Projects", EmptyState("No projects yet. Run `reimagine project new` to get started."))
	}

	headers := []string{"", "ID", "NAME", "ADDRESS", "STATUS", "SCOPE", "TOTAL"}
	rows := make([][]string, 0, len(w.Projects))
	for _, p := range w.Projects {
		marker := " "
		name := p.Name
		if p.ID == w.ActiveID {
			marker = StyleYellowBold.Render("▸")
			name = Bold(name)
		}
		addr := p.Address
		if strings.TrimSpace(addr) == "" {
			addr = Dim("No address")
		}
		done, total := p.ScopeProgress()
		rows = append(rows, []string{
			marker,
			TruncID(p.ID),
			name,
			Truncate(addr, 32),
			PhasePill(p.Status),
			fmt.Sprintf("%d/%d", done, total),
			Currency(p.Budget.Summary().Total),
		})
	}

	table := Table{Headers: headers, Rows: rows, Right: []int{5, 6}}.Render()
	return RenderBox("Projects", strings.TrimRight(table, "\n"))
}

// FormatProjectOverview renders the header card of a single project with a
// one-line digest of every planner tab.
func FormatProjectOverview(p domain.Project) string {
	var b strings.Builder

	b.WriteString(Bold(p.Name) + "  " + Dim(TruncID(p.ID)) + "\n")
	if p.Address != "" {
		b.WriteString(StyleFg.Render(p.Address) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", PhasePill(p.Status), Dim("phase "+PhaseStep(p.Status))))
	if strings.TrimSpace(p.Notes) != "" {
		b.WriteString("\n" + StyleDim.Render(p.Notes) + "\n")
	}
	b.WriteString("\n")

	done, total := p.ScopeProgress()
	sum := p.Budget.Summary()
	label := func(s string) string { return StyleDim.Render(fmt.Sprintf("%-10s", s)) }

	b.WriteString(label("Rooms") + fmt.Sprintf("%d\n", len(p.Rooms)))
	b.WriteString(label("Scope") + RenderScopeProgress(done, total, 16) + "\n")
	b.WriteString(label("Budget") + Currency(sum.Total) + Dim(fmt.Sprintf("  (%d items)", len(p.Budget.Items))) + "\n")
	b.WriteString(label("Timeline") + fmt.Sprintf("%d tasks\n", len(p.Timeline)))
	b.WriteString(label("Materials") + fmt.Sprintf("%d\n", len(p.Materials)))
	b.WriteString(label("Vendors") + fmt.Sprintf("%d\n", len(p.Vendors)))
	b.WriteString(label("Mood") + fmt.Sprintf("%d images\n", len(p.Mood)))
	b.WriteString(label("ROI") + formatROIInline(p.ROI))

	return RenderBox("Project", b.String())
}

// FormatPhases lists the phase vocabulary with the current phase highlighted.
func FormatPhases(current domain.Phase) string {
	var b strings.Builder
	for i, ph := range domain.Phases {
		line := fmt.Sprintf("%d. %s", i+1, ph)
		if ph == current {
			b.WriteString(StyleYellowBold.Render("▸ "+line) + "\n")
			continue
		}
		b.WriteString("  " + PhaseStyle(ph).Render(line) + "\n")
	}
	return b.String()
}
