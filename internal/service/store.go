package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/alexanderramin/reimagine/internal/repository"
	"github.com/google/uuid"
)

// ErrNoActiveProject is returned by operations on the active project when
// none is selected. State is left untouched.
var ErrNoActiveProject = errors.New("no active project (create one with 'reimagine project new')")

// SaveError reports that a change was applied in memory but could not be
// persisted. The in-memory state is not reverted.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("changes kept in memory but not saved: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Store owns the in-memory snapshot of every project and the active pointer.
// Each change replaces the snapshot and writes it back in full.
type Store struct {
	mu         sync.Mutex
	repo       repository.StateRepo
	state      domain.Workspace
	loaded     bool
	newID      func() string
	roomPolicy domain.RoomDeletePolicy
	observer   UseCaseObserver
}

type StoreOption func(*Store)

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) {
		s.newID = gen
	}
}

func WithRoomDeletePolicy(p domain.RoomDeletePolicy) StoreOption {
	return func(s *Store) {
		s.roomPolicy = p
	}
}

func WithObserver(obs UseCaseObserver) StoreOption {
	return func(s *Store) {
		s.observer = useCaseObserverOrNoop([]UseCaseObserver{obs})
	}
}

func NewStore(repo repository.StateRepo, opts ...StoreOption) *Store {
	s := &Store{
		repo:       repo,
		newID:      uuid.NewString,
		roomPolicy: domain.RoomDeleteKeep,
		observer:   NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot. A malformed payload is replaced by an
// empty workspace and only reported to the observer.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	var recovered error
	fields := map[string]any{}
	defer func() {
		ev := UseCaseEvent{
			Name:      "load-state",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		}
		if recovered != nil {
			ev.Err = recovered
			fields["recovered"] = true
		}
		s.observer.ObserveUseCase(ctx, ev)
	}()

	w, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrMalformedState) {
			return fmt.Errorf("loading state: %w", err)
		}
		recovered, err = err, nil
		w = domain.Workspace{}
	}
	s.state = w.Normalize()
	s.loaded = true
	fields["projects"] = len(s.state.Projects)
	return nil
}

// Snapshot returns the current state. Callers must treat it as read-only.
func (s *Store) Snapshot(ctx context.Context) (domain.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Workspace{}, err
	}
	return s.state, nil
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

// mutate computes the next state from the current one. When fn reports a
// change the snapshot is replaced and saved; a failed save yields *SaveError
// with the new state kept.
func (s *Store) mutate(
	ctx context.Context,
	name string,
	fields map[string]any,
	fn func(w domain.Workspace) (domain.Workspace, bool, error),
) (changed bool, err error) {
	startedAt := time.Now().UTC()
	if fields == nil {
		fields = map[string]any{}
	}
	defer func() {
		fields["changed"] = changed
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	next, changed, err := fn(s.state)
	if err != nil || !changed {
		return false, err
	}
	s.state = next
	if err := s.repo.Save(ctx, next); err != nil {
		return true, &SaveError{Err: err}
	}
	return true, nil
}

// mutateActive applies fn to a copy of the active project.
func (s *Store) mutateActive(ctx context.Context, name string, fields map[string]any, fn func(p *domain.Project) bool) (bool, error) {
	return s.mutate(ctx, name, fields, func(w domain.Workspace) (domain.Workspace, bool, error) {
		if _, ok := w.Active(); !ok {
			return w, false, ErrNoActiveProject
		}
		next, changed := w.UpdateActive(fn)
		return next, changed, nil
	})
}

// Active returns the active project.
func (s *Store) Active(ctx context.Context) (domain.Project, error) {
	w, err := s.Snapshot(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	p, ok := w.Active()
	if !ok {
		return domain.Project{}, ErrNoActiveProject
	}
	return p, nil
}

func (s *Store) id() string {
	return s.newID()
}
