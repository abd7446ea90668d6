package domain

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound is returned when a project id does not resolve.
var ErrProjectNotFound = errors.New("project not found")

// Workspace is the whole persisted state: every project in display order plus
// the id of the active one. ActiveID is either "" or the id of a project in
// Projects.
//
// Workspace methods never modify their receiver; each returns the next state.
type Workspace struct {
	Projects []Project
	ActiveID string
}

// Normalize fills missing lists on every project and repairs an active id
// that no longer resolves by falling back to the first project.
func (w Workspace) Normalize() Workspace {
	next := Workspace{Projects: make([]Project, len(w.Projects)), ActiveID: w.ActiveID}
	for i, p := range w.Projects {
		p = p.Clone()
		p.Normalize()
		next.Projects[i] = p
	}
	if _, ok := next.Find(next.ActiveID); !ok {
		next.ActiveID = next.firstID()
	}
	return next
}

// Find returns the project with the given id.
func (w Workspace) Find(id string) (Project, bool) {
	if id == "" {
		return Project{}, false
	}
	for _, p := range w.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Active returns the active project, if any.
func (w Workspace) Active() (Project, bool) {
	return w.Find(w.ActiveID)
}

// CreateProject appends a new empty project named after the current count and
// makes it active.
func (w Workspace) CreateProject(id string) (Workspace, Project) {
	p := NewProject(id, DefaultProjectName(len(w.Projects)))
	next := Workspace{
		Projects: append(append(make([]Project, 0, len(w.Projects)+1), w.Projects...), p),
		ActiveID: p.ID,
	}
	return next, p
}

// DeleteProject removes the project with the given id. If it was active the
// first remaining project becomes active, or none when the list is empty.
func (w Workspace) DeleteProject(id string) Workspace {
	next := Workspace{Projects: make([]Project, 0, len(w.Projects)), ActiveID: w.ActiveID}
	for _, p := range w.Projects {
		if p.ID != id {
			next.Projects = append(next.Projects, p)
		}
	}
	if w.ActiveID == id {
		next.ActiveID = next.firstID()
	}
	return next
}

// SetActive selects the project with the given id.
func (w Workspace) SetActive(id string) (Workspace, error) {
	if _, ok := w.Find(id); !ok {
		return w, fmt.Errorf("%w: %q", ErrProjectNotFound, id)
	}
	return Workspace{Projects: w.Projects, ActiveID: id}, nil
}

// UpdateProject applies mutate to a deep copy of the named project and
// returns the workspace holding the copy. mutate reports whether it changed
// anything; when it did not, or the id is unknown, the workspace is returned
// unchanged and changed is false.
func (w Workspace) UpdateProject(id string, mutate func(p *Project) bool) (next Workspace, changed bool) {
	for i, p := range w.Projects {
		if p.ID != id {
			continue
		}
		c := p.Clone()
		if !mutate(&c) {
			return w, false
		}
		projects := append([]Project{}, w.Projects...)
		projects[i] = c
		return Workspace{Projects: projects, ActiveID: w.ActiveID}, true
	}
	return w, false
}

// UpdateActive is UpdateProject on the active project. With no active
// project it is a no-op.
func (w Workspace) UpdateActive(mutate func(p *Project) bool) (Workspace, bool) {
	if w.ActiveID == "" {
		return w, false
	}
	return w.UpdateProject(w.ActiveID, mutate)
}

func (w Workspace) firstID() string {
	if len(w.Projects) == 0 {
		return ""
	}
	return w.Projects[0].ID
}
