package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type projectService struct {
	store *Store
}

func NewProjectService(store *Store) ProjectService {
	return &projectService{store: store}
}

func (s *projectService) List(ctx context.Context) (domain.Workspace, error) {
	return s.store.Snapshot(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (domain.Project, error) {
	w, err := s.store.Snapshot(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	p, ok := w.Find(id)
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: %q", domain.ErrProjectNotFound, id)
	}
	return p, nil
}

func (s *projectService) Active(ctx context.Context) (domain.Project, error) {
	return s.store.Active(ctx)
}

func (s *projectService) Create(ctx context.Context) (domain.Project, error) {
	var created domain.Project
	fields := map[string]any{}
	_, err := s.store.mutate(ctx, "create-project", fields, func(w domain.Workspace) (domain.Workspace, bool, error) {
		next, p := w.CreateProject(s.store.id())
		created = p
		fields["project"] = p.ID
		return next, true, nil
	})
	return created, err
}

func (s *projectService) SetActive(ctx context.Context, id string) error {
	_, err := s.store.mutate(ctx, "use-project", map[string]any{"project": id}, func(w domain.Workspace) (domain.Workspace, bool, error) {
		next, err := w.SetActive(id)
		if err != nil {
			return w, false, err
		}
		return next, w.ActiveID != id, nil
	})
	return err
}

func (s *projectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) (bool, error) {
	return s.store.mutate(ctx, "update-project", map[string]any{"project": id}, func(w domain.Workspace) (domain.Workspace, bool, error) {
		if _, ok := w.Find(id); !ok {
			return w, false, fmt.Errorf("%w: %q", domain.ErrProjectNotFound, id)
		}
		next, changed := w.UpdateProject(id, patch.Apply)
		return next, changed, nil
	})
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	_, err := s.store.mutate(ctx, "delete-project", map[string]any{"project": id}, func(w domain.Workspace) (domain.Workspace, bool, error) {
		if _, ok := w.Find(id); !ok {
			return w, false, fmt.Errorf("%w: %q", domain.ErrProjectNotFound, id)
		}
		return w.DeleteProject(id), true, nil
	})
	return err
}
