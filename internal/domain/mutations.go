package domain

import "strings"

// Per-tab mutations. Each one edits exactly one nested list of the receiver
// and reports whether anything changed. Adds with an empty primary field and
// edits or removes of unknown ids are silent no-ops.

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ProjectPatch holds optional edits to the top-level project fields.
type ProjectPatch struct {
	Name    *string
	Address *string
	Notes   *string
	Status  *Phase
}

// Apply merges the patch into p.
func (pp ProjectPatch) Apply(p *Project) bool {
	before := [4]string{p.Name, p.Address, p.Notes, string(p.Status)}
	p.Name = StrFromPtrWithDefault(p.Name, pp.Name)
	p.Address = StrFromPtrWithDefault(p.Address, pp.Address)
	p.Notes = StrFromPtrWithDefault(p.Notes, pp.Notes)
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	return before != [4]string{p.Name, p.Address, p.Notes, string(p.Status)}
}

// --- rooms ---

func (p *Project) AddRoom(id, name string) bool {
	if blank(name) {
		return false
	}
	p.Rooms = append(p.Rooms, Room{ID: id, Name: name, Scope: []ScopeItem{}})
	return true
}

func (p *Project) RenameRoom(id, name string) bool {
	r, ok := p.FindRoom(id)
	if !ok || blank(name) || r.Name == name {
		return false
	}
	r.Name = name
	return true
}

// RemoveRoom deletes the room. Entries that reference it are kept; with
// RoomDeleteClear their roomId is reset to "", otherwise it is left dangling.
func (p *Project) RemoveRoom(id string, policy RoomDeletePolicy) bool {
	if _, ok := p.FindRoom(id); !ok {
		return false
	}
	p.Rooms = filterByID(p.Rooms, id, func(r Room) string { return r.ID })
	if policy == RoomDeleteClear {
		p.clearRoomRefs(id)
	}
	return true
}

func (p *Project) clearRoomRefs(roomID string) {
	for i := range p.Budget.Items {
		if p.Budget.Items[i].RoomID == roomID {
			p.Budget.Items[i].RoomID = ""
		}
	}
	for i := range p.Timeline {
		if p.Timeline[i].RoomID == roomID {
			p.Timeline[i].RoomID = ""
		}
	}
	for i := range p.Materials {
		if p.Materials[i].RoomID == roomID {
			p.Materials[i].RoomID = ""
		}
	}
	for i := range p.Mood {
		if p.Mood[i].RoomID == roomID {
			p.Mood[i].RoomID = ""
		}
	}
}

// --- scope items ---

// AddScopeItem appends a not-done item to the room. Text is trimmed.
func (p *Project) AddScopeItem(roomID, id, text string) bool {
	r, ok := p.FindRoom(roomID)
	if !ok || blank(text) {
		return false
	}
	r.Scope = append(r.Scope, ScopeItem{ID: id, Text: strings.TrimSpace(text)})
	return true
}

func (p *Project) ToggleScopeItem(roomID, itemID string) bool {
	r, ok := p.FindRoom(roomID)
	if !ok {
		return false
	}
	for i := range r.Scope {
		if r.Scope[i].ID == itemID {
			r.Scope[i].Done = !r.Scope[i].Done
			return true
		}
	}
	return false
}

func (p *Project) EditScopeItem(roomID, itemID, text string) bool {
	r, ok := p.FindRoom(roomID)
	if !ok || blank(text) {
		return false
	}
	text = strings.TrimSpace(text)
	for i := range r.Scope {
		if r.Scope[i].ID == itemID && r.Scope[i].Text != text {
			r.Scope[i].Text = text
			return true
		}
	}
	return false
}

func (p *Project) RemoveScopeItem(roomID, itemID string) bool {
	r, ok := p.FindRoom(roomID)
	if !ok {
		return false
	}
	n := len(r.Scope)
	r.Scope = filterByID(r.Scope, itemID, func(s ScopeItem) string { return s.ID })
	return len(r.Scope) != n
}

// --- budget ---

// AddBudgetItem appends item when its description is non-empty. Qty and
// UnitCost are clamped to be non-negative.
func (p *Project) AddBudgetItem(item BudgetLineItem) bool {
	if blank(item.Desc) {
		return false
	}
	item.Qty = NonNegative(item.Qty)
	item.UnitCost = NonNegative(item.UnitCost)
	p.Budget.Items = append(p.Budget.Items, item)
	return true
}

// BudgetItemPatch holds optional edits to a budget line item.
type BudgetItemPatch struct {
	RoomID   *string
	Category *string
	Desc     *string
	Qty      *float64
	UnitCost *float64
}

func (p *Project) EditBudgetItem(id string, patch BudgetItemPatch) bool {
	for i := range p.Budget.Items {
		it := &p.Budget.Items[i]
		if it.ID != id {
			continue
		}
		before := *it
		it.RoomID = StrFromPtrWithDefault(it.RoomID, patch.RoomID)
		it.Category = StrFromPtrWithDefault(it.Category, patch.Category)
		if patch.Desc != nil && !blank(*patch.Desc) {
			it.Desc = *patch.Desc
		}
		it.Qty = NonNegative(Float64FromPtrWithDefault(it.Qty, patch.Qty))
		it.UnitCost = NonNegative(Float64FromPtrWithDefault(it.UnitCost, patch.UnitCost))
		return *it != before
	}
	return false
}

func (p *Project) RemoveBudgetItem(id string) bool {
	n := len(p.Budget.Items)
	p.Budget.Items = filterByID(p.Budget.Items, id, func(it BudgetLineItem) string { return it.ID })
	return len(p.Budget.Items) != n
}

func (p *Project) SetTaxRate(pct float64) bool {
	pct = Finite(pct)
	if p.Budget.TaxRate == pct {
		return false
	}
	p.Budget.TaxRate = pct
	return true
}

func (p *Project) SetContingencyPct(pct float64) bool {
	pct = Finite(pct)
	if p.Budget.ContingencyPct == pct {
		return false
	}
	p.Budget.ContingencyPct = pct
	return true
}

// --- timeline ---

func (p *Project) AddTask(task TimelineTask) bool {
	if blank(task.Name) {
		return false
	}
	p.Timeline = append(p.Timeline, task)
	return true
}

// TaskPatch holds optional edits to a timeline task.
type TaskPatch struct {
	Name   *string
	Start  *string
	End    *string
	RoomID *string
}

func (p *Project) EditTask(id string, patch TaskPatch) bool {
	for i := range p.Timeline {
		t := &p.Timeline[i]
		if t.ID != id {
			continue
		}
		before := *t
		if patch.Name != nil && !blank(*patch.Name) {
			t.Name = *patch.Name
		}
		t.Start = StrFromPtrWithDefault(t.Start, patch.Start)
		t.End = StrFromPtrWithDefault(t.End, patch.End)
		t.RoomID = StrFromPtrWithDefault(t.RoomID, patch.RoomID)
		return *t != before
	}
	return false
}

func (p *Project) RemoveTask(id string) bool {
	n := len(p.Timeline)
	p.Timeline = filterByID(p.Timeline, id, func(t TimelineTask) string { return t.ID })
	return len(p.Timeline) != n
}

// --- materials ---

func (p *Project) AddMaterial(m MaterialEntry) bool {
	if blank(m.Name) {
		return false
	}
	m.UnitCost = NonNegative(m.UnitCost)
	p.Materials = append(p.Materials, m)
	return true
}

// MaterialPatch holds optional edits to a material entry.
type MaterialPatch struct {
	Name     *string
	Supplier *string
	Link     *string
	RoomID   *string
	Unit     *string
	UnitCost *float64
	Notes    *string
}

func (p *Project) EditMaterial(id string, patch MaterialPatch) bool {
	for i := range p.Materials {
		m := &p.Materials[i]
		if m.ID != id {
			continue
		}
		before := *m
		if patch.Name != nil && !blank(*patch.Name) {
			m.Name = *patch.Name
		}
		m.Supplier = StrFromPtrWithDefault(m.Supplier, patch.Supplier)
		m.Link = StrFromPtrWithDefault(m.Link, patch.Link)
		m.RoomID = StrFromPtrWithDefault(m.RoomID, patch.RoomID)
		m.Unit = StrFromPtrWithDefault(m.Unit, patch.Unit)
		m.UnitCost = NonNegative(Float64FromPtrWithDefault(m.UnitCost, patch.UnitCost))
		m.Notes = StrFromPtrWithDefault(m.Notes, patch.Notes)
		return *m != before
	}
	return false
}

func (p *Project) RemoveMaterial(id string) bool {
	n := len(p.Materials)
	p.Materials = filterByID(p.Materials, id, func(m MaterialEntry) string { return m.ID })
	return len(p.Materials) != n
}

// --- vendors ---

func (p *Project) AddVendor(v VendorEntry) bool {
	if blank(v.Name) {
		return false
	}
	p.Vendors = append(p.Vendors, v)
	return true
}

// VendorPatch holds optional edits to a vendor entry.
type VendorPatch struct {
	Name  *string
	Role  *string
	Phone *string
	Email *string
	Notes *string
}

func (p *Project) EditVendor(id string, patch VendorPatch) bool {
	for i := range p.Vendors {
		v := &p.Vendors[i]
		if v.ID != id {
			continue
		}
		before := *v
		if patch.Name != nil && !blank(*patch.Name) {
			v.Name = *patch.Name
		}
		v.Role = StrFromPtrWithDefault(v.Role, patch.Role)
		v.Phone = StrFromPtrWithDefault(v.Phone, patch.Phone)
		v.Email = StrFromPtrWithDefault(v.Email, patch.Email)
		v.Notes = StrFromPtrWithDefault(v.Notes, patch.Notes)
		return *v != before
	}
	return false
}

func (p *Project) RemoveVendor(id string) bool {
	n := len(p.Vendors)
	p.Vendors = filterByID(p.Vendors, id, func(v VendorEntry) string { return v.ID })
	return len(p.Vendors) != n
}

// --- mood board ---

func (p *Project) AddMoodImage(m MoodImage) bool {
	if blank(m.URL) {
		return false
	}
	p.Mood = append(p.Mood, m)
	return true
}

func (p *Project) RemoveMoodImage(id string) bool {
	n := len(p.Mood)
	p.Mood = filterByID(p.Mood, id, func(m MoodImage) string { return m.ID })
	return len(p.Mood) != n
}

// --- roi ---

// SetROI replaces both estimate figures at once.
func (p *Project) SetROI(r ROI) bool {
	r.EstValueIncrease = Finite(r.EstValueIncrease)
	r.ProjectCost = Finite(r.ProjectCost)
	if p.ROI == r {
		return false
	}
	p.ROI = r
	return true
}

// filterByID returns the entries whose id differs from id, in order.
func filterByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
