package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/reimagine/internal/db"
	"github.com/alexanderramin/reimagine/internal/domain"
)

// SQLiteStateRepo stores the snapshot as two JSON documents. Save writes both
// keys in one transaction so the active pointer never outlives its project
// list on disk.
type SQLiteStateRepo struct {
	uow db.UnitOfWork
}

func NewSQLiteStateRepo(uow db.UnitOfWork) *SQLiteStateRepo {
	return &SQLiteStateRepo{uow: uow}
}

// Load returns an empty workspace when nothing has been saved yet. A document
// that fails to decode yields ErrMalformedState and no partial result. Both
// keys are read in one transaction so they come from the same save.
func (r *SQLiteStateRepo) Load(ctx context.Context) (domain.Workspace, error) {
	var w domain.Workspace
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := NewSQLiteKVRepo(tx)
		if err := loadJSON(ctx, kv, KeyProjects, &w.Projects); err != nil {
			return err
		}
		return loadJSON(ctx, kv, KeyActiveID, &w.ActiveID)
	})
	if err != nil {
		return domain.Workspace{}, err
	}
	return w.Normalize(), nil
}

func loadJSON(ctx context.Context, kv KVRepo, key string, dst any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decoding %s: %w: %v", key, ErrMalformedState, err)
	}
	return nil
}

func (r *SQLiteStateRepo) Save(ctx context.Context, w domain.Workspace) error {
	projects := w.Projects
	if projects == nil {
		projects = []domain.Project{}
	}
	projectsJSON, err := marshalValue(projects)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", KeyProjects, err)
	}
	activeJSON, err := marshalValue(w.ActiveID)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", KeyActiveID, err)
	}

	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := NewSQLiteKVRepo(tx)
		if err := kv.Put(ctx, KeyProjects, string(projectsJSON)); err != nil {
			return err
		}
		return kv.Put(ctx, KeyActiveID, string(activeJSON))
	})
}
