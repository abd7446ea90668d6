package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetSummary_Scenario(t *testing.T) {
	var w Workspace
	w, p := w.CreateProject("p1")
	w, _ = w.UpdateActive(func(p *Project) bool {
		p.AddBudgetItem(BudgetLineItem{ID: "b1", Desc: "Tile", Qty: 2, UnitCost: 100})
		p.AddBudgetItem(BudgetLineItem{ID: "b2", Desc: "Grout", Qty: 1, UnitCost: 50})
		p.SetTaxRate(8)
		p.SetContingencyPct(10)
		return true
	})
	p, ok := w.Find(p.ID)
	require.True(t, ok)

	s := p.Budget.Summary()
	assert.InDelta(t, 250, s.Subtotal, 1e-9)
	assert.InDelta(t, 20, s.Tax, 1e-9)
	assert.InDelta(t, 25, s.Contingency, 1e-9)
	assert.InDelta(t, 295, s.Total, 1e-9)
}

func TestBudgetSummary_Empty(t *testing.T) {
	s := Budget{ContingencyPct: 10}.Summary()
	assert.Equal(t, BudgetSummary{}, s)
}

func TestBudgetTotal_InvariantUnderPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		n := rng.Intn(12)
		items := make([]BudgetLineItem, n)
		for i := range items {
			items[i] = BudgetLineItem{
				Qty:      float64(rng.Intn(20)),
				UnitCost: float64(rng.Intn(100000)) / 100,
			}
		}
		b := Budget{Items: items, TaxRate: 6.25, ContingencyPct: 10}
		shuffled := append([]BudgetLineItem{}, items...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Budget{Items: shuffled, TaxRate: 6.25, ContingencyPct: 10}.Summary()
		assert.InDelta(t, b.Summary().Total, got.Total, 1e-6)
	}
}

func TestCompletionLabel_Scenario(t *testing.T) {
	var w Workspace
	w, _ = w.CreateProject("p1")
	w, _ = w.UpdateActive(func(p *Project) bool {
		return p.AddRoom("r1", "Kitchen") &&
			p.AddScopeItem("r1", "s1", "Install cabinets") &&
			p.ToggleScopeItem("r1", "s1")
	})
	p, _ := w.Active()
	assert.Equal(t, "1/1", p.Rooms[0].CompletionLabel())
}

func TestCompletionLabel_EmptyRoom(t *testing.T) {
	assert.Equal(t, "0/0", Room{Name: "Bath"}.CompletionLabel())
}

func TestScopeProgress_SumsRooms(t *testing.T) {
	p := NewProject("p1", "Reno")
	p.AddRoom("r1", "Kitchen")
	p.AddRoom("r2", "Bath")
	p.AddScopeItem("r1", "a", "Cabinets")
	p.AddScopeItem("r1", "b", "Counters")
	p.AddScopeItem("r2", "c", "Vanity")
	p.ToggleScopeItem("r2", "c")

	done, total := p.ScopeProgress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)
}

func TestBudgetByRoom_GroupsInRoomOrderWithUnassignedLast(t *testing.T) {
	p := NewProject("p1", "Reno")
	p.AddRoom("r1", "Kitchen")
	p.AddRoom("r2", "Bath")
	p.AddRoom("r3", "Garage")
	p.AddBudgetItem(BudgetLineItem{ID: "b1", RoomID: "", Desc: "Permit", Qty: 1, UnitCost: 300})
	p.AddBudgetItem(BudgetLineItem{ID: "b2", RoomID: "r2", Desc: "Vanity", Qty: 1, UnitCost: 400})
	p.AddBudgetItem(BudgetLineItem{ID: "b3", RoomID: "r1", Desc: "Cabinets", Qty: 2, UnitCost: 1000})
	p.AddBudgetItem(BudgetLineItem{ID: "b4", RoomID: "gone", Desc: "Old room", Qty: 1, UnitCost: 5})

	rows := p.BudgetByRoom()

	require.Len(t, rows, 3)
	assert.Equal(t, "Kitchen", rows[0].RoomName)
	assert.Equal(t, 2000.0, rows[0].Subtotal)
	assert.Equal(t, "Bath", rows[1].RoomName)
	assert.Equal(t, UnassignedRoomLabel, rows[2].RoomName)
	assert.Equal(t, 305.0, rows[2].Subtotal)
	assert.Equal(t, 2, rows[2].Items)
}

func TestROI_Scenario(t *testing.T) {
	r := ROI{EstValueIncrease: 50000, ProjectCost: 40000}
	assert.Equal(t, 10000.0, r.Net())
	assert.InDelta(t, 25.0, r.Percent(), 1e-9)
}

func TestROI_ZeroCostPercentIsZero(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 50000} {
		r := ROI{EstValueIncrease: v, ProjectCost: 0}
		assert.Equal(t, 0.0, r.Percent(), "value %v", v)
		assert.Equal(t, v, r.Net())
	}
}

func TestROI_Loss(t *testing.T) {
	r := ROI{EstValueIncrease: 30000, ProjectCost: 40000}
	assert.Equal(t, -10000.0, r.Net())
	assert.InDelta(t, -25.0, r.Percent(), 1e-9)
}
