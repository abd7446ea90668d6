package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// FormatBudget renders the line items of a project followed by the
// subtotal, tax, contingency and total.
func FormatBudget(p domain.Project) string {
	var b strings.Builder

	if len(p.Budget.Items) == 0 {
		b.WriteString(EmptyState("No items yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(p.Budget.Items))
		for _, it := range p.Budget.Items {
			rows = append(rows, []string{
				Dim(TruncID(it.ID)),
				p.RoomName(it.RoomID, domain.UnassignedRoomLabel),
				Fallback(it.Category),
				it.Desc,
				Number(it.Qty),
				Currency(it.UnitCost),
				Currency(it.LineTotal()),
			})
		}
		b.WriteString(Table{
			Headers: []string{"ID", "ROOM", "CATEGORY", "DESCRIPTION", "QTY", "UNIT COST", "TOTAL"},
			Rows:    rows,
			Right:   []int{4, 5, 6},
		}.Render())
	}

	b.WriteString("\n")
	b.WriteString(FormatBudgetSummary(p.Budget))
	return b.String()
}

// FormatBudgetSummary renders the derived totals as a two-column block.
func FormatBudgetSummary(budget domain.Budget) string {
	s := budget.Summary()
	rows := [][]string{
		{"Subtotal", Currency(s.Subtotal)},
		{fmt.Sprintf("Tax (%s%%)", Number(budget.TaxRate)), Currency(s.Tax)},
		{fmt.Sprintf("Contingency (%s%%)", Number(budget.ContingencyPct)), Currency(s.Contingency)},
	}
	return Table{
		Headers: []string{"SUMMARY", "AMOUNT"},
		Rows:    rows,
		Right:   []int{1},
		Footer:  []string{"Total", Currency(s.Total)},
	}.Render()
}

// FormatBudgetByRoom renders line-total subtotals grouped by room.
func FormatBudgetByRoom(p domain.Project) string {
	groups := p.BudgetByRoom()
	if len(groups) == 0 {
		return EmptyState("No items yet.") + "\n"
	}
	rows := make([][]string, 0, len(groups))
	var sum float64
	for _, g := range groups {
		rows = append(rows, []string{g.RoomName, fmt.Sprintf("%d", g.Items), Currency(g.Subtotal)})
		sum += g.Subtotal
	}
	return Table{
		Headers: []string{"ROOM", "ITEMS", "SUBTOTAL"},
		Rows:    rows,
		Right:   []int{1, 2},
		Footer:  []string{"All rooms", fmt.Sprintf("%d", len(p.Budget.Items)), Currency(sum)},
	}.Render()
}
