package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type moodService struct {
	store *Store
}

func NewMoodService(store *Store) MoodService {
	return &moodService{store: store}
}

func (s *moodService) Add(ctx context.Context, img domain.MoodImage) (domain.MoodImage, bool, error) {
	var stored domain.MoodImage
	added, err := s.store.mutateActive(ctx, "add-mood-image", nil, func(p *domain.Project) bool {
		img.ID = s.store.id()
		if !p.AddMoodImage(img) {
			return false
		}
		stored = p.Mood[len(p.Mood)-1]
		return true
	})
	return stored, added, err
}

func (s *moodService) Remove(ctx context.Context, id string) (bool, error) {
	return s.store.mutateActive(ctx, "remove-mood-image", map[string]any{"image": id}, func(p *domain.Project) bool {
		return p.RemoveMoodImage(id)
	})
}
