package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workspaceWith(ids ...string) Workspace {
	var w Workspace
	for _, id := range ids {
		w, _ = w.CreateProject(id)
	}
	return w
}

func TestCreateProject_AppendsAndActivates(t *testing.T) {
	var w Workspace

	w, p1 := w.CreateProject("a")
	assert.Equal(t, "Project 1", p1.Name)
	assert.Equal(t, "a", w.ActiveID)

	w, p2 := w.CreateProject("b")
	assert.Equal(t, "Project 2", p2.Name)
	assert.Equal(t, "b", w.ActiveID)
	require.Len(t, w.Projects, 2)
	assert.Equal(t, "a", w.Projects[0].ID)
	assert.Equal(t, "b", w.Projects[1].ID)
}

func TestCreateProject_DoesNotModifyReceiver(t *testing.T) {
	w := workspaceWith("a")
	_, _ = w.CreateProject("b")
	assert.Len(t, w.Projects, 1)
	assert.Equal(t, "a", w.ActiveID)
}

func TestDeleteProject_ActivePromotesFirstRemaining(t *testing.T) {
	w := workspaceWith("a", "b", "c")
	w, err := w.SetActive("b")
	require.NoError(t, err)

	w = w.DeleteProject("b")

	assert.Equal(t, "a", w.ActiveID)
	require.Len(t, w.Projects, 2)
	assert.Equal(t, "c", w.Projects[1].ID)
}

func TestDeleteProject_FirstActivePromotesNextInStoredOrder(t *testing.T) {
	w := workspaceWith("a", "b", "c")
	w, _ = w.SetActive("a")

	w = w.DeleteProject("a")

	assert.Equal(t, "b", w.ActiveID)
}

func TestDeleteProject_InactiveKeepsActive(t *testing.T) {
	w := workspaceWith("a", "b")
	w = w.DeleteProject("a")
	assert.Equal(t, "b", w.ActiveID)
}

func TestDeleteProject_LastClearsActive(t *testing.T) {
	w := workspaceWith("a")
	w = w.DeleteProject("a")
	assert.Empty(t, w.Projects)
	assert.Equal(t, "", w.ActiveID)
}

func TestDeleteProject_UnknownIsNoop(t *testing.T) {
	w := workspaceWith("a", "b")
	next := w.DeleteProject("zzz")
	assert.Equal(t, w, next)
}

func TestSetActive_UnknownID(t *testing.T) {
	w := workspaceWith("a")
	next, err := w.SetActive("nope")
	require.ErrorIs(t, err, ErrProjectNotFound)
	assert.Equal(t, "a", next.ActiveID)
}

func TestUpdateActive_NoActiveIsNoop(t *testing.T) {
	var w Workspace
	called := false
	next, changed := w.UpdateActive(func(p *Project) bool {
		called = true
		return true
	})
	assert.False(t, changed)
	assert.False(t, called)
	assert.Equal(t, w, next)
}

func TestUpdateProject_MutatesCopyOnly(t *testing.T) {
	w := workspaceWith("a")
	next, changed := w.UpdateProject("a", func(p *Project) bool {
		return p.AddRoom("r1", "Kitchen")
	})

	require.True(t, changed)
	assert.Empty(t, w.Projects[0].Rooms, "previous state must be untouched")
	require.Len(t, next.Projects[0].Rooms, 1)
}

func TestUpdateProject_UnchangedReturnsSameState(t *testing.T) {
	w := workspaceWith("a")
	next, changed := w.UpdateProject("a", func(p *Project) bool {
		return p.AddRoom("r1", "   ")
	})
	assert.False(t, changed)
	assert.Equal(t, w, next)
}

func TestNormalize_RepairsDanglingActive(t *testing.T) {
	w := Workspace{Projects: []Project{{ID: "a"}, {ID: "b"}}, ActiveID: "gone"}
	n := w.Normalize()
	assert.Equal(t, "a", n.ActiveID)
	assert.Equal(t, FirstPhase, n.Projects[0].Status)

	empty := Workspace{ActiveID: "gone"}.Normalize()
	assert.Equal(t, "", empty.ActiveID)
}
