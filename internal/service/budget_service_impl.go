package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type budgetService struct {
	store *Store
}

func NewBudgetService(store *Store) BudgetService {
	return &budgetService{store: store}
}

// AddItem assigns a fresh id to item and appends it. The returned item holds
// the stored values after coercion.
func (s *budgetService) AddItem(ctx context.Context, item domain.BudgetLineItem) (domain.BudgetLineItem, bool, error) {
	var stored domain.BudgetLineItem
	added, err := s.store.mutateActive(ctx, "add-budget-item", map[string]any{"desc": item.Desc}, func(p *domain.Project) bool {
		item.ID = s.store.id()
		if !p.AddBudgetItem(item) {
			return false
		}
		stored = p.Budget.Items[len(p.Budget.Items)-1]
		return true
	})
	return stored, added, err
}

func (s *budgetService) EditItem(ctx context.Context, id string, patch domain.BudgetItemPatch) (bool, error) {
	return s.store.mutateActive(ctx, "edit-budget-item", map[string]any{"item": id}, func(p *domain.Project) bool {
		return p.EditBudgetItem(id, patch)
	})
}

func (s *budgetService) RemoveItem(ctx context.Context, id string) (bool, error) {
	return s.store.mutateActive(ctx, "remove-budget-item", map[string]any{"item": id}, func(p *domain.Project) bool {
		return p.RemoveBudgetItem(id)
	})
}

func (s *budgetService) SetTaxRate(ctx context.Context, pct float64) (bool, error) {
	return s.store.mutateActive(ctx, "set-tax-rate", map[string]any{"pct": pct}, func(p *domain.Project) bool {
		return p.SetTaxRate(pct)
	})
}

func (s *budgetService) SetContingency(ctx context.Context, pct float64) (bool, error) {
	return s.store.mutateActive(ctx, "set-contingency", map[string]any{"pct": pct}, func(p *domain.Project) bool {
		return p.SetContingencyPct(pct)
	})
}
