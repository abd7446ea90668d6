package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// resolveID matches input against the ids of items: an exact id wins, then a
// unique case-insensitive prefix.
func resolveID[T any](kind, input string, items []T, idOf func(T) string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, it := range items {
		if idOf(it) == input {
			return input, nil
		}
	}

	lower := strings.ToLower(input)
	var matches []string
	for _, it := range items {
		if strings.HasPrefix(strings.ToLower(idOf(it)), lower) {
			matches = append(matches, idOf(it))
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	w, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	return resolveID("project", input, w.Projects, func(p domain.Project) string { return p.ID })
}

// resolveRoomID accepts a room id, a unique id prefix, or a room name
// (case-insensitive). An exact name match wins over a prefix.
func resolveRoomID(p domain.Project, input string) (string, error) {
	input = strings.TrimSpace(input)
	var named []string
	for _, r := range p.Rooms {
		if r.ID == input {
			return r.ID, nil
		}
		if strings.EqualFold(r.Name, input) {
			named = append(named, r.ID)
		}
	}
	switch len(named) {
	case 1:
		return named[0], nil
	case 0:
		return resolveID("room", input, p.Rooms, func(r domain.Room) string { return r.ID })
	default:
		return "", fmt.Errorf("room name %q is ambiguous (%d rooms)", input, len(named))
	}
}

// resolveRoomRef resolves an optional --room flag. Empty means unassigned.
func resolveRoomRef(p domain.Project, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	return resolveRoomID(p, input)
}

func resolveScopeItemID(r domain.Room, input string) (string, error) {
	return resolveID("scope item", input, r.Scope, func(s domain.ScopeItem) string { return s.ID })
}

func resolveBudgetItemID(p domain.Project, input string) (string, error) {
	return resolveID("budget item", input, p.Budget.Items, func(it domain.BudgetLineItem) string { return it.ID })
}

func resolveTaskID(p domain.Project, input string) (string, error) {
	return resolveID("task", input, p.Timeline, func(t domain.TimelineTask) string { return t.ID })
}

func resolveMaterialID(p domain.Project, input string) (string, error) {
	return resolveID("material", input, p.Materials, func(m domain.MaterialEntry) string { return m.ID })
}

func resolveVendorID(p domain.Project, input string) (string, error) {
	return resolveID("vendor", input, p.Vendors, func(v domain.VendorEntry) string { return v.ID })
}

func resolveMoodImageID(p domain.Project, input string) (string, error) {
	return resolveID("image", input, p.Mood, func(m domain.MoodImage) string { return m.ID })
}
