package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// ErrInvalidFile is returned for any import file that is not a well-formed
// export document. The message is what the user sees.
var ErrInvalidFile = errors.New("Invalid file")

// Document is the export file layout: the full project collection plus the
// active pointer.
type Document struct {
	Projects []domain.Project `json:"projects"`
	ActiveID string           `json:"activeId"`
}

// Parsed is a decoded import file. ActiveID is nil when the file carries no
// usable active pointer.
type Parsed struct {
	Projects []domain.Project
	ActiveID *string
}

type rawDocument struct {
	Projects json.RawMessage `json:"projects"`
	ActiveID *string         `json:"activeId"`
}

// NewDocument captures a workspace for export.
func NewDocument(w domain.Workspace) Document {
	projects := w.Projects
	if projects == nil {
		projects = []domain.Project{}
	}
	return Document{Projects: projects, ActiveID: w.ActiveID}
}

// Encode writes the document as two-space indented JSON.
func Encode(out io.Writer, doc Document) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// Decode parses an import file. Anything other than an object with a
// "projects" array of valid records is ErrInvalidFile.
func Decode(in io.Reader) (Parsed, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return Parsed{}, fmt.Errorf("reading import: %w", err)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Parsed{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if len(bytes.TrimSpace(raw.Projects)) == 0 || bytes.Equal(bytes.TrimSpace(raw.Projects), []byte("null")) {
		return Parsed{}, fmt.Errorf("%w: missing projects", ErrInvalidFile)
	}

	var projects []domain.Project
	if err := json.Unmarshal(raw.Projects, &projects); err != nil {
		return Parsed{}, fmt.Errorf("%w: projects: %v", ErrInvalidFile, err)
	}
	if errs := ValidateProjects(projects); len(errs) > 0 {
		return Parsed{}, fmt.Errorf("%w: %w", ErrInvalidFile, errors.Join(errs...))
	}

	parsed := Parsed{Projects: projects}
	if raw.ActiveID != nil && *raw.ActiveID != "" {
		parsed.ActiveID = raw.ActiveID
	}
	return parsed, nil
}

// LoadFile reads and decodes an import file from disk.
func LoadFile(path string) (Parsed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Apply replaces the project collection of current with the imported one.
// The active pointer is taken from the file when present, then repaired so
// it names an imported project or is empty.
func (p Parsed) Apply(current domain.Workspace) domain.Workspace {
	next := domain.Workspace{Projects: p.Projects, ActiveID: current.ActiveID}
	if p.ActiveID != nil {
		next.ActiveID = *p.ActiveID
	}
	return next.Normalize()
}

// Filename is the export file name for the given day.
func Filename(t time.Time) string {
	return "reimagine-" + t.Format("2006-01-02") + ".json"
}
