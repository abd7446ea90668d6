package domain

import "fmt"

// BudgetSummary holds the derived budget totals of a project.
type BudgetSummary struct {
	Subtotal    float64
	Tax         float64
	Contingency float64
	Total       float64
}

// LineTotal is Qty × UnitCost.
func (it BudgetLineItem) LineTotal() float64 {
	return it.Qty * it.UnitCost
}

// Subtotal sums the line totals of all items.
func (b Budget) Subtotal() float64 {
	var s float64
	for _, it := range b.Items {
		s += it.LineTotal()
	}
	return s
}

// Summary derives tax, contingency and total from the subtotal. Both rates
// are percentages.
func (b Budget) Summary() BudgetSummary {
	sub := b.Subtotal()
	tax := sub * (Finite(b.TaxRate) / 100)
	cont := sub * (Finite(b.ContingencyPct) / 100)
	return BudgetSummary{
		Subtotal:    sub,
		Tax:         tax,
		Contingency: cont,
		Total:       sub + tax + cont,
	}
}

// RoomSubtotal is one row of the per-room budget breakdown.
type RoomSubtotal struct {
	RoomID   string
	RoomName string
	Subtotal float64
	Items    int
}

// BudgetByRoom groups line totals by room, in room order. Items with an empty
// or dangling roomId are collected in a trailing Unassigned row. Rooms with
// no items are omitted.
func (p *Project) BudgetByRoom() []RoomSubtotal {
	byRoom := make(map[string]*RoomSubtotal, len(p.Rooms))
	var unassigned RoomSubtotal
	unassigned.RoomName = UnassignedRoomLabel
	for _, it := range p.Budget.Items {
		r, ok := p.FindRoom(it.RoomID)
		if !ok {
			unassigned.Subtotal += it.LineTotal()
			unassigned.Items++
			continue
		}
		row, seen := byRoom[r.ID]
		if !seen {
			row = &RoomSubtotal{RoomID: r.ID, RoomName: r.Name}
			byRoom[r.ID] = row
		}
		row.Subtotal += it.LineTotal()
		row.Items++
	}

	var rows []RoomSubtotal
	for _, r := range p.Rooms {
		if row, ok := byRoom[r.ID]; ok {
			rows = append(rows, *row)
		}
	}
	if unassigned.Items > 0 {
		rows = append(rows, unassigned)
	}
	return rows
}

// Completion returns the number of done scope items and the total.
func (r Room) Completion() (done, total int) {
	for _, s := range r.Scope {
		if s.Done {
			done++
		}
	}
	return done, len(r.Scope)
}

// CompletionLabel renders Completion as "done/total"; an empty room is "0/0".
func (r Room) CompletionLabel() string {
	done, total := r.Completion()
	return fmt.Sprintf("%d/%d", done, total)
}

// ScopeProgress sums Completion over all rooms.
func (p *Project) ScopeProgress() (done, total int) {
	for _, r := range p.Rooms {
		d, t := r.Completion()
		done += d
		total += t
	}
	return done, total
}

// Net is the estimated value increase minus the project cost.
func (r ROI) Net() float64 {
	return Finite(r.EstValueIncrease) - Finite(r.ProjectCost)
}

// Percent is Net as a percentage of the project cost, or 0 when the cost is 0.
func (r ROI) Percent() float64 {
	cost := Finite(r.ProjectCost)
	if cost == 0 {
		return 0
	}
	return r.Net() / cost * 100
}
