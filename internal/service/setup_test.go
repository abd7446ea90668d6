package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/alexanderramin/reimagine/internal/repository"
	"github.com/alexanderramin/reimagine/internal/testutil"
	"github.com/stretchr/testify/require"
)

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// recordingObserver collects use-case events.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, ev UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

func (o *recordingObserver) byName(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, ev := range o.events {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}

// setupStore returns a store over a fresh in-memory SQLite database.
func setupStore(t *testing.T, opts ...StoreOption) (*Store, repository.StateRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(testutil.NewTestUoW(database))
	opts = append([]StoreOption{WithIDGenerator(sequentialIDs())}, opts...)
	store := NewStore(repo, opts...)
	require.NoError(t, store.Load(context.Background()))
	return store, repo
}

// setupActiveProject creates one project and returns its id.
func setupActiveProject(t *testing.T, store *Store) string {
	t.Helper()
	p, err := NewProjectService(store).Create(context.Background())
	require.NoError(t, err)
	return p.ID
}

func activeProject(t *testing.T, store *Store) domain.Project {
	t.Helper()
	p, err := store.Active(context.Background())
	require.NoError(t, err)
	return p
}
