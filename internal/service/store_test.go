package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/reimagine/internal/db"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/alexanderramin/reimagine/internal/repository"
	"github.com/alexanderramin/reimagine/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadEmpty(t *testing.T) {
	store, _ := setupStore(t)

	w, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, w.Projects)
	assert.Equal(t, "", w.ActiveID)
}

func TestStore_MalformedStateRecoversToEmpty(t *testing.T) {
	repo := &testutil.MemStateRepo{LoadErr: fmt.Errorf("decoding rp.projects: %w", repository.ErrMalformedState)}
	obs := &recordingObserver{}
	store := NewStore(repo, WithObserver(obs))

	require.NoError(t, store.Load(context.Background()))

	w, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, w.Projects)

	events := obs.byName("load-state")
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.ErrorIs(t, events[0].Err, repository.ErrMalformedState)
	assert.Equal(t, true, events[0].Fields["recovered"])
}

func TestStore_MalformedStateIsLoggedAtWarn(t *testing.T) {
	var logs bytes.Buffer
	repo := &testutil.MemStateRepo{LoadErr: repository.ErrMalformedState}
	store := NewStore(repo, WithObserver(NewLogUseCaseObserver(&logs, slog.LevelInfo)))

	require.NoError(t, store.Load(context.Background()))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "use_case=load-state")
}

func TestStore_OtherLoadErrorsAreReturned(t *testing.T) {
	repo := &testutil.MemStateRepo{LoadErr: errors.New("disk unreadable")}
	store := NewStore(repo)

	err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk unreadable")
}

func TestStore_SaveFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := &testutil.MemStateRepo{}
	store := NewStore(repo, WithIDGenerator(sequentialIDs()))
	require.NoError(t, store.Load(ctx))
	projects := NewProjectService(store)

	_, err := projects.Create(ctx)
	require.NoError(t, err)

	injected := errors.New("quota exceeded")
	repo.SaveErr = injected
	_, _, err = NewRoomService(store).Add(ctx, "Kitchen")

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.ErrorIs(t, err, injected)

	p := activeProject(t, store)
	require.Len(t, p.Rooms, 1, "mutation is not reverted")
	assert.Equal(t, "Kitchen", p.Rooms[0].Name)
	assert.Empty(t, repo.Saved.Projects[0].Rooms, "storage still holds the previous snapshot")
}

func TestStore_UnchangedStateIsNotSaved(t *testing.T) {
	ctx := context.Background()
	repo := &testutil.MemStateRepo{}
	store := NewStore(repo)
	setupActiveProject(t, store)
	require.Equal(t, 1, repo.SaveCount())

	_, added, err := NewRoomService(store).Add(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, repo.SaveCount())
}

func TestStore_NoActiveProject(t *testing.T) {
	store, _ := setupStore(t)

	_, added, err := NewRoomService(store).Add(context.Background(), "Kitchen")
	assert.ErrorIs(t, err, ErrNoActiveProject)
	assert.False(t, added)

	_, err = store.Active(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveProject)
}

func TestStore_LazyLoadOnFirstUse(t *testing.T) {
	repo := &testutil.MemStateRepo{Saved: testutil.NewTestWorkspace(testutil.NewTestProject("Existing"))}
	store := NewStore(repo)

	p, err := store.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Existing", p.Name)
}

// A store reopened over the same database file sees every saved change.
func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reimagine.db")

	open := func() (*Store, func()) {
		database, err := db.OpenDB(path)
		require.NoError(t, err)
		repo := repository.NewSQLiteStateRepo(db.NewSQLiteUnitOfWork(database))
		store := NewStore(repo)
		require.NoError(t, store.Load(ctx))
		return store, func() { database.Close() }
	}

	store, closeDB := open()
	setupActiveProject(t, store)
	_, _, err := NewBudgetService(store).AddItem(ctx, domain.BudgetLineItem{Desc: "Tile", Qty: 2, UnitCost: 100})
	require.NoError(t, err)
	closeDB()

	store, closeDB = open()
	defer closeDB()
	p := activeProject(t, store)
	require.Len(t, p.Budget.Items, 1)
	assert.Equal(t, 200.0, p.Budget.Summary().Subtotal)
}
