package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// MemStateRepo is an in-memory StateRepo with switchable failures. LoadErr is
// returned by Load; SaveErr makes every Save fail without touching Saved.
type MemStateRepo struct {
	mu      sync.Mutex
	Saved   domain.Workspace
	Saves   int
	LoadErr error
	SaveErr error
}

func (r *MemStateRepo) Load(ctx context.Context) (domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.LoadErr != nil {
		return domain.Workspace{}, r.LoadErr
	}
	return r.Saved, nil
}

func (r *MemStateRepo) Save(ctx context.Context, w domain.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Saved = w
	r.Saves++
	return nil
}

// SaveCount returns how many saves succeeded.
func (r *MemStateRepo) SaveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Saves
}
