package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type materialService struct {
	store *Store
}

func NewMaterialService(store *Store) MaterialService {
	return &materialService{store: store}
}

func (s *materialService) Add(ctx context.Context, m domain.MaterialEntry) (domain.MaterialEntry, bool, error) {
	var stored domain.MaterialEntry
	added, err := s.store.mutateActive(ctx, "add-material", map[string]any{"material": m.Name}, func(p *domain.Project) bool {
		m.ID = s.store.id()
		if !p.AddMaterial(m) {
			return false
		}
		stored = p.Materials[len(p.Materials)-1]
		return true
	})
	return stored, added, err
}

func (s *materialService) Edit(ctx context.Context, id string, patch domain.MaterialPatch) (bool, error) {
	return s.store.mutateActive(ctx, "edit-material", map[string]any{"material": id}, func(p *domain.Project) bool {
		return p.EditMaterial(id, patch)
	})
}

func (s *materialService) Remove(ctx context.Context, id string) (bool, error) {
	return s.store.mutateActive(ctx, "remove-material", map[string]any{"material": id}, func(p *domain.Project) bool {
		return p.RemoveMaterial(id)
	})
}
