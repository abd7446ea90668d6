package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// Storage keys of the two persisted documents.
const (
	KeyProjects = "rp.projects"
	KeyActiveID = "rp.activeId"
)

var (
	// ErrNotFound is returned when a key has never been written.
	ErrNotFound = errors.New("not found")
	// ErrMalformedState is returned when a stored document cannot be decoded.
	ErrMalformedState = errors.New("malformed persisted state")
)

// KVRepo reads and writes raw JSON documents by key.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// StateRepo persists the whole planner snapshot: the project collection and
// the active project pointer.
type StateRepo interface {
	Load(ctx context.Context) (domain.Workspace, error)
	Save(ctx context.Context, w domain.Workspace) error
}
