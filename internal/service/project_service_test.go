package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateNamesAndActivates(t *testing.T) {
	store, repo := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(store)

	p1, err := svc.Create(ctx)
	require.NoError(t, err)
	p2, err := svc.Create(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Project 1", p1.Name)
	assert.Equal(t, "Project 2", p2.Name)
	assert.Equal(t, domain.FirstPhase, p2.Status)
	assert.Equal(t, 10.0, p2.Budget.ContingencyPct)

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted.Projects, 2)
	assert.Equal(t, p2.ID, persisted.ActiveID)
}

func TestProjectService_DeleteActivePromotesFirst(t *testing.T) {
	store, repo := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(store)

	a, _ := svc.Create(ctx)
	b, _ := svc.Create(ctx)
	c, _ := svc.Create(ctx)
	require.NoError(t, svc.SetActive(ctx, b.ID))

	require.NoError(t, svc.Delete(ctx, b.ID))

	w, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, w.ActiveID)
	require.Len(t, w.Projects, 2)
	assert.Equal(t, c.ID, w.Projects[1].ID)

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, persisted.ActiveID)
}

func TestProjectService_DeleteLastClearsActive(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(store)
	p, _ := svc.Create(ctx)

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err := svc.Active(ctx)
	assert.ErrorIs(t, err, ErrNoActiveProject)
}

func TestProjectService_UnknownIDs(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(store)
	svc.Create(ctx)

	assert.ErrorIs(t, svc.SetActive(ctx, "nope"), domain.ErrProjectNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "nope"), domain.ErrProjectNotFound)
	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectService_Update(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	svc := NewProjectService(store)
	p, _ := svc.Create(ctx)

	name, phase := "Lake House", domain.PhaseDemo
	changed, err := svc.Update(ctx, p.ID, domain.ProjectPatch{Name: &name, Status: &phase})
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lake House", got.Name)
	assert.Equal(t, domain.PhaseDemo, got.Status)

	changed, err = svc.Update(ctx, p.ID, domain.ProjectPatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestProjectService_SetActiveSameIsNoChange(t *testing.T) {
	store, _ := setupStore(t)
	obs := &recordingObserver{}
	store.observer = obs
	ctx := context.Background()
	svc := NewProjectService(store)
	p, _ := svc.Create(ctx)

	require.NoError(t, svc.SetActive(ctx, p.ID))

	events := obs.byName("use-project")
	require.Len(t, events, 1)
	assert.Equal(t, false, events[0].Fields["changed"])
}
