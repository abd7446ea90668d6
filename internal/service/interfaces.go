package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/reimagine/internal/domain"
)

type ProjectService interface {
	List(ctx context.Context) (domain.Workspace, error)
	Get(ctx context.Context, id string) (domain.Project, error)
	Active(ctx context.Context) (domain.Project, error)
	Create(ctx context.Context) (domain.Project, error)
	SetActive(ctx context.Context, id string) error
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (bool, error)
	Delete(ctx context.Context, id string) error
}

// The services below operate on the active project and return
// ErrNoActiveProject when there is none. Add methods report added=false when
// the primary field is blank; nothing is stored in that case.

type RoomService interface {
	Add(ctx context.Context, name string) (room domain.Room, added bool, err error)
	Rename(ctx context.Context, roomID, name string) (bool, error)
	Remove(ctx context.Context, roomID string) (bool, error)
}

type ScopeService interface {
	Add(ctx context.Context, roomID, text string) (item domain.ScopeItem, added bool, err error)
	Toggle(ctx context.Context, roomID, itemID string) (bool, error)
	Edit(ctx context.Context, roomID, itemID, text string) (bool, error)
	Remove(ctx context.Context, roomID, itemID string) (bool, error)
}

type BudgetService interface {
	AddItem(ctx context.Context, item domain.BudgetLineItem) (domain.BudgetLineItem, bool, error)
	EditItem(ctx context.Context, id string, patch domain.BudgetItemPatch) (bool, error)
	RemoveItem(ctx context.Context, id string) (bool, error)
	SetTaxRate(ctx context.Context, pct float64) (bool, error)
	SetContingency(ctx context.Context, pct float64) (bool, error)
}

type TimelineService interface {
	AddTask(ctx context.Context, task domain.TimelineTask) (domain.TimelineTask, bool, error)
	EditTask(ctx context.Context, id string, patch domain.TaskPatch) (bool, error)
	RemoveTask(ctx context.Context, id string) (bool, error)
}

type MaterialService interface {
	Add(ctx context.Context, m domain.MaterialEntry) (domain.MaterialEntry, bool, error)
	Edit(ctx context.Context, id string, patch domain.MaterialPatch) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type VendorService interface {
	Add(ctx context.Context, v domain.VendorEntry) (domain.VendorEntry, bool, error)
	Edit(ctx context.Context, id string, patch domain.VendorPatch) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type MoodService interface {
	Add(ctx context.Context, img domain.MoodImage) (domain.MoodImage, bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type ROIService interface {
	Set(ctx context.Context, roi domain.ROI) (bool, error)
}

// ImportResult holds the outcome of an import.
type ImportResult struct {
	ProjectCount int
	ActiveID     string
}

type ExchangeService interface {
	Export(ctx context.Context, w io.Writer) error
	ExportToDir(ctx context.Context, dir string, now time.Time) (path string, err error)
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}
