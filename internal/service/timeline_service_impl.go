package service

import (
	"context"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type timelineService struct {
	store *Store
}

func NewTimelineService(store *Store) TimelineService {
	return &timelineService{store: store}
}

func (s *timelineService) AddTask(ctx context.Context, task domain.TimelineTask) (domain.TimelineTask, bool, error) {
	var stored domain.TimelineTask
	added, err := s.store.mutateActive(ctx, "add-task", map[string]any{"task": task.Name}, func(p *domain.Project) bool {
		task.ID = s.store.id()
		if !p.AddTask(task) {
			return false
		}
		stored = p.Timeline[len(p.Timeline)-1]
		return true
	})
	return stored, added, err
}

func (s *timelineService) EditTask(ctx context.Context, id string, patch domain.TaskPatch) (bool, error) {
	return s.store.mutateActive(ctx, "edit-task", map[string]any{"task": id}, func(p *domain.Project) bool {
		return p.EditTask(id, patch)
	})
}

func (s *timelineService) RemoveTask(ctx context.Context, id string) (bool, error) {
	return s.store.mutateActive(ctx, "remove-task", map[string]any{"task": id}, func(p *domain.Project) bool {
		return p.RemoveTask(id)
	})
}
