package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type scopeService struct {
	store *Store
}

func NewScopeService(store *Store) ScopeService {
	return &scopeService{store: store}
}

func (s *scopeService) Add(ctx context.Context, roomID, text string) (domain.ScopeItem, bool, error) {
	var item domain.ScopeItem
	added, err := s.store.mutateActive(ctx, "add-scope-item", map[string]any{"room": roomID}, func(p *domain.Project) bool {
		if !p.AddScopeItem(roomID, s.store.id(), text) {
			return false
		}
		r, _ := p.FindRoom(roomID)
		item = r.Scope[len(r.Scope)-1]
		return true
	})
	return item, added, err
}

func (s *scopeService) Toggle(ctx context.Context, roomID, itemID string) (bool, error) {
	return s.store.mutateActive(ctx, "toggle-scope-item", map[string]any{"room": roomID, "item": itemID}, func(p *domain.Project) bool {
		return p.ToggleScopeItem(roomID, itemID)
	})
}

func (s *scopeService) Edit(ctx context.Context, roomID, itemID, text string) (bool, error) {
	return s.store.mutateActive(ctx, "edit-scope-item", map[string]any{"room": roomID, "item": itemID}, func(p *domain.Project) bool {
		return p.EditScopeItem(roomID, itemID, text)
	})
}

func (s *scopeService) Remove(ctx context.Context, roomID, itemID string) (bool, error) {
	return s.store.mutateActive(ctx, "remove-scope-item", map[string]any{"room": roomID, "item": itemID}, func(p *domain.Project) bool {
		return p.RemoveScopeItem(roomID, itemID)
	})
}
