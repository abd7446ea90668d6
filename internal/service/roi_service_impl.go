package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type roiService struct {
	store *Store
}

func NewROIService(store *Store) ROIService {
	return &roiService{store: store}
}

// Set stores both figures together.
func (s *roiService) Set(ctx context.Context, roi domain.ROI) (bool, error) {
	return s.store.mutateActive(ctx, "set-roi", nil, func(p *domain.Project) bool {
		return p.SetROI(roi)
	})
}
