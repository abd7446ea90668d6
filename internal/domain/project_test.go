package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject_Defaults(t *testing.T) {
	p := NewProject("p1", "Project 1")

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Project 1", p.Name)
	assert.Equal(t, PhaseScopeVision, p.Status)
	assert.Equal(t, 10.0, p.Budget.ContingencyPct)
	assert.Equal(t, 0.0, p.Budget.TaxRate)
	assert.Equal(t, ROI{}, p.ROI)
	assert.NotNil(t, p.Rooms)
	assert.Empty(t, p.Rooms)
	assert.NotNil(t, p.Budget.Items)
	assert.Empty(t, p.Timeline)
	assert.Empty(t, p.Materials)
	assert.Empty(t, p.Vendors)
	assert.Empty(t, p.Mood)
}

func TestDefaultProjectName(t *testing.T) {
	assert.Equal(t, "Project 1", DefaultProjectName(0))
	assert.Equal(t, "Project 4", DefaultProjectName(3))
}

func TestDisplayID_Truncates(t *testing.T) {
	p := &Project{ID: "550e8400-e29b-41d4-a716-446655440000"}
	assert.Equal(t, "550e8400", p.DisplayID())
}

func TestDisplayID_ShortID(t *testing.T) {
	p := &Project{ID: "abc"}
	assert.Equal(t, "abc", p.DisplayID())
}

func TestNormalize_FillsNilListsAndStatus(t *testing.T) {
	p := Project{ID: "p1", Rooms: []Room{{ID: "r1", Name: "Kitchen"}}}
	p.Normalize()

	assert.Equal(t, FirstPhase, p.Status)
	require.Len(t, p.Rooms, 1)
	assert.NotNil(t, p.Rooms[0].Scope)
	assert.NotNil(t, p.Budget.Items)
	assert.NotNil(t, p.Timeline)
	assert.NotNil(t, p.Materials)
	assert.NotNil(t, p.Vendors)
	assert.NotNil(t, p.Mood)
}

func TestClone_IsDeep(t *testing.T) {
	p := NewProject("p1", "Reno")
	p.AddRoom("r1", "Kitchen")
	p.AddScopeItem("r1", "s1", "Install cabinets")
	p.AddBudgetItem(BudgetLineItem{ID: "b1", Desc: "Tile", Qty: 1, UnitCost: 10})

	c := p.Clone()
	c.ToggleScopeItem("r1", "s1")
	c.Budget.Items[0].Qty = 99
	c.AddVendor(VendorEntry{ID: "v1", Name: "Acme"})

	assert.False(t, p.Rooms[0].Scope[0].Done, "original scope item must not change")
	assert.Equal(t, 1.0, p.Budget.Items[0].Qty)
	assert.Empty(t, p.Vendors)
}

func TestRoomName_ResolvesOrFallsBack(t *testing.T) {
	p := NewProject("p1", "Reno")
	p.AddRoom("r1", "Kitchen")

	assert.Equal(t, "Kitchen", p.RoomName("r1", UnassignedRoomLabel))
	assert.Equal(t, UnassignedRoomLabel, p.RoomName("", UnassignedRoomLabel))
	assert.Equal(t, AllRoomsLabel, p.RoomName("gone", AllRoomsLabel))
}
