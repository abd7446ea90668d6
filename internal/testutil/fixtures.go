package testutil

import (
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithStatus(s domain.Phase) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithAddress(addr string) ProjectOption {
	return func(p *domain.Project) {
		p.Address = addr
	}
}

// WithRoom appends a room with the given id and name.
func WithRoom(id, name string) ProjectOption {
	return func(p *domain.Project) {
		p.AddRoom(id, name)
	}
}

func WithScopeItem(roomID, id, text string, done bool) ProjectOption {
	return func(p *domain.Project) {
		p.AddScopeItem(roomID, id, text)
		if done {
			p.ToggleScopeItem(roomID, id)
		}
	}
}

func WithBudgetItem(it domain.BudgetLineItem) ProjectOption {
	return func(p *domain.Project) {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		p.AddBudgetItem(it)
	}
}

func WithRates(taxRate, contingencyPct float64) ProjectOption {
	return func(p *domain.Project) {
		p.SetTaxRate(taxRate)
		p.SetContingencyPct(contingencyPct)
	}
}

func WithTask(task domain.TimelineTask) ProjectOption {
	return func(p *domain.Project) {
		if task.ID == "" {
			task.ID = uuid.New().String()
		}
		p.AddTask(task)
	}
}

func WithMaterial(m domain.MaterialEntry) ProjectOption {
	return func(p *domain.Project) {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		p.AddMaterial(m)
	}
}

func WithVendor(v domain.VendorEntry) ProjectOption {
	return func(p *domain.Project) {
		if v.ID == "" {
			v.ID = uuid.New().String()
		}
		p.AddVendor(v)
	}
}

func WithMoodImage(m domain.MoodImage) ProjectOption {
	return func(p *domain.Project) {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		p.AddMoodImage(m)
	}
}

func WithROI(valueIncrease, cost float64) ProjectOption {
	return func(p *domain.Project) {
		p.SetROI(domain.ROI{EstValueIncrease: valueIncrease, ProjectCost: cost})
	}
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.NewProject(uuid.New().String(), name)
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestWorkspace returns a workspace holding the given projects with the
// first one active.
func NewTestWorkspace(projects ...domain.Project) domain.Workspace {
	w := domain.Workspace{Projects: append([]domain.Project{}, projects...)}
	return w.Normalize()
}
