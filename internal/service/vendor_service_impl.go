package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type vendorService struct {
	store *Store
}

func NewVendorService(store *Store) VendorService {
	return &vendorService{store: store}
}

func (s *vendorService) Add(ctx context.Context, v domain.VendorEntry) (domain.VendorEntry, bool, error) {
	var stored domain.VendorEntry
	added, err := s.store.mutateActive(ctx, "add-vendor", map[string]any{"vendor": v.Name}, func(p *domain.Project) bool {
		v.ID = s.store.id()
		if !p.AddVendor(v) {
			return false
		}
		stored = p.Vendors[len(p.Vendors)-1]
		return true
	})
	return stored, added, err
}

func (s *vendorService) Edit(ctx context.Context, id string, patch domain.VendorPatch) (bool, error) {
	return s.store.mutateActive(ctx, "edit-vendor", map[string]any{"vendor": id}, func(p *domain.Project) bool {
		return p.EditVendor(id, patch)
	})
}

func (s *vendorService) Remove(ctx context.Context, id string) (bool, error) {
	return s.store.mutateActive(ctx, "remove-vendor", map[string]any{"vendor": id}, func(p *domain.Project) bool {
		return p.RemoveVendor(id)
	})
}
