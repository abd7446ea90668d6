package domain

import "fmt"

// Project is the top-level unit of planning. Field tags follow the persisted
// JSON layout so snapshots and export files share one encoding.
type Project struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Notes     string          `json:"notes"`
	Status    Phase           `json:"status"`
	Rooms     []Room          `json:"rooms"`
	Budget    Budget          `json:"budget"`
	Timeline  []TimelineTask  `json:"timeline"`
	Materials []MaterialEntry `json:"materials"`
	Vendors   []VendorEntry   `json:"vendors"`
	Mood      []MoodImage     `json:"mood"`
	ROI       ROI             `json:"roi"`
}

type Room struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Scope []ScopeItem `json:"scope"`
}

type ScopeItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Budget struct {
	Items          []BudgetLineItem `json:"items"`
	TaxRate        float64          `json:"taxRate"`
	ContingencyPct float64          `json:"contingencyPct"`
}

// BudgetLineItem contributes Qty × UnitCost to the budget subtotal.
// RoomID is a weak reference; "" means unassigned.
type BudgetLineItem struct {
	ID       string  `json:"id"`
	RoomID   string  `json:"roomId"`
	Category string  `json:"category"`
	Desc     string  `json:"desc"`
	Qty      float64 `json:"qty"`
	UnitCost float64 `json:"unitCost"`
}

// TimelineTask dates are free-form strings; Start and End are not ordered.
// RoomID "" means the task applies to all rooms.
type TimelineTask struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Start  string `json:"start"`
	End    string `json:"end"`
	RoomID string `json:"roomId"`
}

type MaterialEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Supplier string  `json:"supplier"`
	Link     string  `json:"link"`
	RoomID   string  `json:"roomId"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unitCost"`
	Notes    string  `json:"notes"`
}

type VendorEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type MoodImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	RoomID  string `json:"roomId"`
}

type ROI struct {
	EstValueIncrease float64 `json:"estValueIncrease"`
	ProjectCost      float64 `json:"projectCost"`
}

// DefaultContingencyPct is the contingency percentage of a new project.
const DefaultContingencyPct = 10

// NewProject returns an empty project in the first phase.
func NewProject(id, name string) Project {
	p := Project{
		ID:     id,
		Name:   name,
		Status: FirstPhase,
		Budget: Budget{ContingencyPct: DefaultContingencyPct},
	}
	p.Normalize()
	return p
}

// DefaultProjectName returns the name given to the project created when
// count projects already exist.
func DefaultProjectName(count int) string {
	return fmt.Sprintf("Project %d", count+1)
}

// DisplayID returns the first 8 characters of the project ID.
func (p *Project) DisplayID() string {
	return ShortID(p.ID)
}

// ShortID truncates an entity ID to 8 characters for display.
func ShortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// Normalize replaces nil lists with empty ones and fills a missing status.
// Records loaded from older or hand-edited files may omit either.
func (p *Project) Normalize() {
	if p.Status == "" {
		p.Status = FirstPhase
	}
	if p.Rooms == nil {
		p.Rooms = []Room{}
	}
	for i := range p.Rooms {
		if p.Rooms[i].Scope == nil {
			p.Rooms[i].Scope = []ScopeItem{}
		}
	}
	if p.Budget.Items == nil {
		p.Budget.Items = []BudgetLineItem{}
	}
	if p.Timeline == nil {
		p.Timeline = []TimelineTask{}
	}
	if p.Materials == nil {
		p.Materials = []MaterialEntry{}
	}
	if p.Vendors == nil {
		p.Vendors = []VendorEntry{}
	}
	if p.Mood == nil {
		p.Mood = []MoodImage{}
	}
}

// Clone returns a deep copy: every nested list is copied so mutations on the
// clone never reach the original.
func (p Project) Clone() Project {
	c := p
	c.Rooms = make([]Room, len(p.Rooms))
	for i, r := range p.Rooms {
		r.Scope = append([]ScopeItem{}, r.Scope...)
		c.Rooms[i] = r
	}
	c.Budget.Items = append([]BudgetLineItem{}, p.Budget.Items...)
	c.Timeline = append([]TimelineTask{}, p.Timeline...)
	c.Materials = append([]MaterialEntry{}, p.Materials...)
	c.Vendors = append([]VendorEntry{}, p.Vendors...)
	c.Mood = append([]MoodImage{}, p.Mood...)
	return c
}

// FindRoom returns the room with the given id.
func (p *Project) FindRoom(id string) (*Room, bool) {
	if id == "" {
		return nil, false
	}
	for i := range p.Rooms {
		if p.Rooms[i].ID == id {
			return &p.Rooms[i], true
		}
	}
	return nil, false
}

// RoomName resolves a weak room reference for display. Empty or dangling
// references resolve to fallback.
func (p *Project) RoomName(roomID, fallback string) string {
	if r, ok := p.FindRoom(roomID); ok {
		return r.Name
	}
	return fallback
}
