package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/reimagine/internal/config"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/alexanderramin/reimagine/internal/repository"
	"github.com/alexanderramin/reimagine/internal/service"
	"github.com/alexanderramin/reimagine/internal/testutil"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newTestApp wires an App over repo with deterministic ids and clock.
func newTestApp(repo repository.StateRepo, opts ...service.StoreOption) *App {
	opts = append([]service.StoreOption{service.WithIDGenerator(sequentialIDs())}, opts...)
	app := &App{
		IsInteractive: func() bool { return false },
		Now:           func() time.Time { return testNow },
	}
	app.Bind(service.NewStore(repo, opts...))
	return app
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T, opts ...service.StoreOption) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newTestApp(repository.NewSQLiteStateRepo(testutil.NewTestUoW(database)), opts...)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "reimagine %s\n%s", strings.Join(args, " "), out)
	return out
}

func activeProject(t *testing.T, app *App) domain.Project {
	t.Helper()
	p, err := app.Projects.Active(context.Background())
	require.NoError(t, err)
	return p
}

// --- project ---

func TestProjectNew_DefaultName(t *testing.T) {
	app := testApp(t)

	out := mustRun(t, app, "project", "new")

	assert.Contains(t, out, "Created project Project 1 [id-1]")
	assert.Equal(t, "id-1", activeProject(t, app).ID)
}

func TestProjectNew_WithFields(t *testing.T) {
	app := testApp(t)

	mustRun(t, app, "project", "new", "--name", "Lake House", "--address", "1 Shore Rd", "--status", "bids")

	p := activeProject(t, app)
	assert.Equal(t, "Lake House", p.Name)
	assert.Equal(t, "1 Shore Rd", p.Address)
	assert.Equal(t, domain.PhaseBids, p.Status)
}

func TestProjectNew_InvalidStatus(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "project", "new", "--status", "framing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "framing")
}

func TestProjectList_MarksActive(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new", "--name", "Lake House")
	mustRun(t, app, "project", "new", "--name", "Condo")

	out := mustRun(t, app, "project", "list")

	assert.Contains(t, out, "Lake House")
	assert.Contains(t, out, "Condo")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Condo") {
			assert.Contains(t, line, "▸")
		}
	}
}

func TestProjectUse_PrefixResolution(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	mustRun(t, app, "project", "new")

	out := mustRun(t, app, "project", "use", "id-1")
	assert.Contains(t, out, "Active project: Project 1")
	assert.Equal(t, "id-1", activeProject(t, app).ID)

	_, err := executeCmd(t, app, "project", "use", "id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = executeCmd(t, app, "project", "use", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProjectUse_NonInteractiveRequiresID(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	_, err := executeCmd(t, app, "project", "use")
	require.Error(t, err)
}

func TestProjectUpdate_StatusAndNoop(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")

	out := mustRun(t, app, "project", "update", "--status", "6", "--notes", "Keep the hardwood")
	assert.Contains(t, out, "Updated project")
	p := activeProject(t, app)
	assert.Equal(t, domain.PhaseRoughIn, p.Status)
	assert.Equal(t, "Keep the hardwood", p.Notes)

	out = mustRun(t, app, "project", "update")
	assert.Contains(t, out, "No changes.")
}

func TestProjectShow_Overview(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new", "--name", "Lake House", "--status", "demo")

	out := mustRun(t, app, "project", "show")

	assert.Contains(t, out, "Lake House")
	assert.Contains(t, out, "Demo")
}

func TestProjectRemove_ActivePromotesFirst(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	mustRun(t, app, "project", "new")
	mustRun(t, app, "project", "new")
	mustRun(t, app, "project", "use", "id-2")

	out := mustRun(t, app, "project", "remove", "id-2", "--yes")

	assert.Contains(t, out, "Deleted project Project 2")
	assert.Equal(t, "id-1", activeProject(t, app).ID)
}

func TestProjectRemove_LastClearsActive(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	mustRun(t, app, "project", "remove", "id-1")

	_, err := app.Projects.Active(context.Background())
	assert.ErrorIs(t, err, service.ErrNoActiveProject)
}

func TestProjectPhases_HighlightsCurrent(t *testing.T) {
	app := testApp(t)
	out := mustRun(t, app, "project", "phases")
	assert.Contains(t, out, "1. Scope & Vision")

	mustRun(t, app, "project", "new", "--status", "Permits")
	out = mustRun(t, app, "project", "phases")
	assert.Contains(t, out, "▸ 4. Permits")
}

// --- rooms and scope ---

func TestRoomsAndScope_CompletionScenario(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")

	out := mustRun(t, app, "room", "add", "Kitchen")
	assert.Contains(t, out, "Added room Kitchen [id-2]")

	out = mustRun(t, app, "scope", "add", "kitchen", "Install", "cabinets")
	assert.Contains(t, out, "Added to Kitchen: Install cabinets [id-3]")

	out = mustRun(t, app, "scope", "toggle", "Kitchen", "id-3")
	assert.Contains(t, out, "id-3 marked done (1/1)")

	out = mustRun(t, app, "room", "list")
	assert.Contains(t, out, "[ 1/1 ]")
	assert.Contains(t, out, "Install cabinets")
}

func TestRoomAdd_BlankIsNoop(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")

	out := mustRun(t, app, "room", "add")

	assert.Contains(t, out, nothingToAdd)
	assert.Empty(t, activeProject(t, app).Rooms)
}

func TestRoomAdd_InteractivePromptsForBlankName(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	app.IsInteractive = func() bool { return true }
	calls := 0
	app.RunForm = func(*huh.Form) error {
		calls++
		return nil
	}

	out := mustRun(t, app, "room", "add")
	assert.Equal(t, 1, calls)
	assert.Contains(t, out, nothingToAdd)

	mustRun(t, app, "room", "add", "Bath")
	assert.Equal(t, 1, calls, "no form when the name is given")
}

func TestTabCommands_NoActiveProjectIsNoop(t *testing.T) {
	for _, args := range [][]string{
		{"room", "add", "Kitchen"},
		{"budget", "add", "Tile", "--unit-cost", "5"},
		{"budget", "tax", "8"},
		{"task", "add", "Demo"},
		{"material", "add", "Oak"},
		{"vendor", "add", "Acme"},
		{"mood", "add", "https://example.com/a.jpg"},
		{"roi", "set", "--value", "1000"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			app := testApp(t)

			out, err := executeCmd(t, app, args...)

			require.NoError(t, err)
			assert.Contains(t, out, "Nothing changed: no active project")
			w, err := app.Projects.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, w.Projects)
		})
	}
}

func TestRoomRenameAndPresets(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	mustRun(t, app, "room", "add", "Kitchen")

	mustRun(t, app, "room", "rename", "Kitchen", "Chef", "Kitchen")
	assert.Equal(t, "Chef Kitchen", activeProject(t, app).Rooms[0].Name)

	mustRun(t, app, "room", "add", "Bath")
	out := mustRun(t, app, "room", "presets")
	assert.Contains(t, out, "✔ Bath")
	assert.Contains(t, out, "Primary Suite")
}

func TestRoomRemove_Policies(t *testing.T) {
	for _, tc := range []struct {
		policy domain.RoomDeletePolicy
		wantID string
	}{
		{domain.RoomDeleteKeep, "id-2"},
		{domain.RoomDeleteClear, ""},
	} {
		t.Run(string(tc.policy), func(t *testing.T) {
			app := testApp(t, service.WithRoomDeletePolicy(tc.policy))
			mustRun(t, app, "project", "new")
			mustRun(t, app, "room", "add", "Kitchen")
			mustRun(t, app, "budget", "add", "Cabinets", "--room", "Kitchen", "--unit-cost", "900")

			mustRun(t, app, "room", "remove", "Kitchen")

			p := activeProject(t, app)
			assert.Empty(t, p.Rooms)
			require.Len(t, p.Budget.Items, 1)
			assert.Equal(t, tc.wantID, p.Budget.Items[0].RoomID)
			assert.Contains(t, mustRun(t, app, "budget", "show"), "Unassigned")
		})
	}
}

// --- budget ---

func TestBudget_TotalsScenario(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	mustRun(t, app, "budget", "add", "Tile", "--qty", "2", "--unit-cost", "100")
	mustRun(t, app, "budget", "add", "Grout", "--unit-cost", "50")
	mustRun(t, app, "budget", "tax", "8")

	out := mustRun(t, app, "budget", "show")

	assert.Contains(t, out, "$250.00")
	assert.Contains(t, out, "$20.00")
	assert.Contains(t, out, "$25.00")
	assert.Contains(t, out, "$295.00")
}

func TestBudgetAdd_CoercesNumbers(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")

	mustRun(t, app, "budget", "add", "Oak", "--qty", "-3", "--unit-cost", "abc")

	it := activeProject(t, app).Budget.Items[0]
	assert.Equal(t, 0.0, it.Qty)
	assert.Equal(t, 0.0, it.UnitCost)
}

func TestBudgetAdd_BlankDescriptionIsNoop(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")

	out := mustRun(t, app, "budget", "add", "--category", "Flooring", "--unit-cost", "5")

	assert.Contains(t, out, nothingToAdd)
	assert.Empty(t, activeProject(t, app).Budget.Items)
}

func TestBudgetEditAndRemove(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	mustRun(t, app, "budget", "add", "Oak", "--qty", "2", "--unit-cost", "5", "--category", "Flooring")

	mustRun(t, app, "budget", "edit", "id-2", "--qty", "4")
	it := activeProject(t, app).Budget.Items[0]
	assert.Equal(t, 4.0, it.Qty)
	assert.Equal(t, 5.0, it.UnitCost)
	assert.Equal(t, "Flooring", it.Category)

	out := mustRun(t, app, "budget", "contingency", "15")
	assert.Contains(t, out, "Contingency set to 15%")
	assert.Equal(t, 15.0, activeProject(t, app).Budget.ContingencyPct)

	mustRun(t, app, "budget", "remove", "id-2")
	assert.Empty(t, activeProject(t, app).Budget.Items)

	_, err := executeCmd(t, app, "budget", "remove", "id-2")
	assert.Error(t, err)
}

// --- other tabs ---

func TestTimelineMaterialsVendorsMood(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")
	mustRun(t, app, "room", "add", "Kitchen")

	mustRun(t, app, "task", "add", "Demo", "kitchen", "--start", "2026-11-01", "--end", "2026-10-30")
	out := mustRun(t, app, "task", "list")
	assert.Contains(t, out, "Demo kitchen")
	assert.Contains(t, out, "2026-11-01")
	assert.Contains(t, out, "All")

	mustRun(t, app, "material", "add", "White", "Oak", "--unit", "sqft", "--unit-cost", "7.5", "--room", "Kitchen")
	out = mustRun(t, app, "material", "list")
	assert.Contains(t, out, "White Oak")
	assert.Contains(t, out, "Kitchen")

	mustRun(t, app, "vendor", "add", "Acme", "Builders", "--role", "GC")
	mustRun(t, app, "vendor", "edit", "id-5", "--phone", "555-0100")
	out = mustRun(t, app, "vendor", "list")
	assert.Contains(t, out, "Acme Builders")
	assert.Contains(t, out, "555-0100")

	mustRun(t, app, "mood", "add", "https://example.com/oak.jpg", "--caption", "Warm oak")
	out = mustRun(t, app, "mood", "list")
	assert.Contains(t, out, "Warm oak")

	p := activeProject(t, app)
	assert.Len(t, p.Timeline, 1)
	assert.Len(t, p.Materials, 1)
	assert.Len(t, p.Vendors, 1)
	assert.Len(t, p.Mood, 1)

	mustRun(t, app, "task", "remove", p.Timeline[0].ID)
	mustRun(t, app, "material", "remove", p.Materials[0].ID)
	mustRun(t, app, "vendor", "remove", p.Vendors[0].ID)
	mustRun(t, app, "mood", "remove", p.Mood[0].ID)
	p = activeProject(t, app)
	assert.Empty(t, p.Timeline)
	assert.Empty(t, p.Materials)
	assert.Empty(t, p.Vendors)
	assert.Empty(t, p.Mood)
}

func TestMaterialAdd_UnitDefaultsToEach(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")

	mustRun(t, app, "material", "add", "Hinges")
	mustRun(t, app, "material", "add", "Oak", "--unit", "sqft")

	p := activeProject(t, app)
	require.Len(t, p.Materials, 2)
	assert.Equal(t, "each", p.Materials[0].Unit)
	assert.Equal(t, "sqft", p.Materials[1].Unit)

	mustRun(t, app, "material", "edit", p.Materials[1].ID, "--supplier", "Lumber Co")
	assert.Equal(t, "sqft", activeProject(t, app).Materials[1].Unit, "edit leaves the unit alone")
}

func TestROI_Scenario(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new")

	out := mustRun(t, app, "roi", "set", "--value", "50000", "--cost", "40000")
	assert.Contains(t, out, "$10,000.00")
	assert.Contains(t, out, "25.0%")

	mustRun(t, app, "roi", "set", "--cost", "0")
	p := activeProject(t, app)
	assert.Equal(t, 50000.0, p.ROI.EstValueIncrease, "figure not given keeps its value")
	out = mustRun(t, app, "roi", "show")
	assert.Contains(t, out, "0.0%")
}

// --- export / import ---

func TestExport_StdoutAndDir(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new", "--name", "Lake House")

	out := mustRun(t, app, "export", "--dir", "-")
	assert.Contains(t, out, `"projects": [`)
	assert.Contains(t, out, `"activeId": "id-1"`)

	dir := t.TempDir()
	out = mustRun(t, app, "export", "--dir", dir)
	path := filepath.Join(dir, "reimagine-2026-10-15.json")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lake House")
}

func TestImport_RoundTripBetweenApps(t *testing.T) {
	src := testApp(t)
	mustRun(t, src, "project", "new", "--name", "Lake House")
	mustRun(t, src, "room", "add", "Kitchen")
	exported := mustRun(t, src, "export", "--dir", "-")

	dst := testApp(t)
	mustRun(t, dst, "project", "new", "--name", "Scratch")
	out, err := executeCmdWithInput(t, dst, exported, "import", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 project(s)")

	p := activeProject(t, dst)
	assert.Equal(t, "Lake House", p.Name)
	require.Len(t, p.Rooms, 1)
}

func TestImport_MissingProjectsLeavesStateUnchanged(t *testing.T) {
	app := testApp(t)
	mustRun(t, app, "project", "new", "--name", "Keep Me")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"activeId":"x"}`), 0o644))

	_, err := executeCmd(t, app, "import", path)

	require.Error(t, err)
	assert.Equal(t, "Invalid file: missing projects", err.Error())
	assert.Equal(t, "Keep Me", activeProject(t, app).Name)
}

// --- storage failures and wiring ---

func TestSaveFailure_WarnsAndKeepsChange(t *testing.T) {
	repo := &testutil.MemStateRepo{SaveErr: errors.New("disk full")}
	app := newTestApp(repo)

	out, err := executeCmd(t, app, "project", "new", "--name", "Unsaved")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: changes kept in memory but not saved: disk full")
	assert.Equal(t, "Unsaved", activeProject(t, app).Name)
	assert.Equal(t, 0, repo.SaveCount())
}

func TestConnect_UsesDBFlagThenConfig(t *testing.T) {
	var got []string
	cfg := config.DefaultConfig()
	cfg.Storage.Path = "/var/lib/reimagine/state.db"
	app := &App{Config: &cfg}
	app.Connect = func(_ context.Context, path string) error {
		got = append(got, path)
		app.Bind(service.NewStore(&testutil.MemStateRepo{}))
		return nil
	}

	mustRun(t, app, "project", "list")
	mustRun(t, app, "--db", "/tmp/other.db", "project", "list")

	assert.Equal(t, []string{"/var/lib/reimagine/state.db", "/tmp/other.db"}, got)
}

func TestConfigCommands_DoNotConnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv(config.EnvConfigPath, path)
	app := &App{Connect: func(context.Context, string) error {
		return errors.New("must not connect")
	}}

	out := mustRun(t, app, "config", "path")
	assert.Equal(t, path+"\n", out)

	out = mustRun(t, app, "config", "init")
	assert.Contains(t, out, "Wrote "+path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "config", "init")
	require.Error(t, err)
	mustRun(t, app, "config", "init", "--force")

	out = mustRun(t, app, "config", "show")
	assert.Contains(t, out, "room_delete_policy = \"keep\"")
}

func TestBrokenConfig_OnlyConfigCommandsRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv(config.EnvConfigPath, path)
	require.NoError(t, os.WriteFile(path, []byte("[storage\npath = "), 0o600))
	_, loadErr := config.Load()
	require.Error(t, loadErr)

	connected := false
	app := &App{
		ConfigErr: loadErr,
		Connect: func(context.Context, string) error {
			connected = true
			return nil
		},
	}

	_, err := executeCmd(t, app, "project", "list")
	require.ErrorIs(t, err, loadErr)
	assert.False(t, connected)

	_, err = executeCmd(t, app, "config", "show")
	require.ErrorIs(t, err, loadErr)

	assert.Equal(t, path+"\n", mustRun(t, app, "config", "path"))
	mustRun(t, app, "config", "init", "--force")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Planner, cfg.Planner)
}
