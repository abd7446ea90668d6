package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/alexanderramin/reimagine/internal/exchange"
)

type exchangeService struct {
	store *Store
}

func NewExchangeService(store *Store) ExchangeService {
	return &exchangeService{store: store}
}

func (s *exchangeService) Export(ctx context.Context, w io.Writer) error {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	return exchange.Encode(w, exchange.NewDocument(snap))
}

// ExportToDir writes the export file for now's date into dir and returns its
// path. An existing file of the same name is replaced.
func (s *exchangeService) ExportToDir(ctx context.Context, dir string, now time.Time) (path string, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.store.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"path": path},
		})
	}()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path = filepath.Join(dir, exchange.Filename(now))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	if err := s.Export(ctx, f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

// Import replaces the whole project collection with the file's. Nothing
// changes unless the file decodes completely.
func (s *exchangeService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	parsed, err := exchange.Decode(r)
	if err != nil {
		s.observeRejected(ctx, err)
		return nil, err
	}
	return s.apply(ctx, parsed)
}

func (s *exchangeService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	parsed, err := exchange.LoadFile(path)
	if err != nil {
		s.observeRejected(ctx, err)
		return nil, err
	}
	return s.apply(ctx, parsed)
}

func (s *exchangeService) apply(ctx context.Context, parsed exchange.Parsed) (*ImportResult, error) {
	var result ImportResult
	fields := map[string]any{"projects": len(parsed.Projects)}
	_, err := s.store.mutate(ctx, "import", fields, func(w domain.Workspace) (domain.Workspace, bool, error) {
		next := parsed.Apply(w)
		result = ImportResult{ProjectCount: len(next.Projects), ActiveID: next.ActiveID}
		return next, true, nil
	})
	var saveErr *SaveError
	if err != nil && !errors.As(err, &saveErr) {
		return nil, err
	}
	return &result, err
}

func (s *exchangeService) observeRejected(ctx context.Context, err error) {
	s.store.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "import",
		StartedAt: time.Now().UTC(),
		Err:       err,
	})
}
