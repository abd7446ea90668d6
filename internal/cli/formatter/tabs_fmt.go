package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/reimagine/internal/domain"
)

// FormatRooms renders rooms and their scope checklists as a tree.
func FormatRooms(p domain.Project) string {
	if len(p.Rooms) == 0 {
		return EmptyState("No rooms yet. Add one with `reimagine room add`.") + "\n"
	}
	done, total := p.ScopeProgress()
	return RenderTree(ScopeTree(p.Rooms)) + "\n" + Dim("Overall ") + RenderScopeProgress(done, total, 20) + "\n"
}

// FormatTimeline renders tasks in stored order. Dates are shown as entered.
func FormatTimeline(p domain.Project, now time.Time) string {
	if len(p.Timeline) == 0 {
		return EmptyState("No tasks yet.") + "\n"
	}
	rows := make([][]string, 0, len(p.Timeline))
	for _, t := range p.Timeline {
		rows = append(rows, []string{
			Dim(TruncID(t.ID)),
			t.Name,
			TaskDate(t.Start, now),
			TaskDate(t.End, now),
			p.RoomName(t.RoomID, domain.AllRoomsLabel),
		})
	}
	return RenderTable([]string{"ID", "TASK", "START", "END", "ROOM"}, rows)
}

func FormatMaterials(p domain.Project) string {
	if len(p.Materials) == 0 {
		return EmptyState("No materials yet.") + "\n"
	}
	rows := make([][]string, 0, len(p.Materials))
	for _, m := range p.Materials {
		unit := Currency(m.UnitCost)
		if m.Unit != "" {
			unit += Dim(" / " + m.Unit)
		}
		rows = append(rows, []string{
			Dim(TruncID(m.ID)),
			m.Name,
			p.RoomName(m.RoomID, domain.UnassignedRoomLabel),
			Fallback(m.Supplier),
			unit,
			Fallback(Truncate(m.Link, 40)),
		})
	}
	out := Table{
		Headers: []string{"ID", "MATERIAL", "ROOM", "SUPPLIER", "UNIT COST", "LINK"},
		Rows:    rows,
		Right:   []int{4},
	}.Render()
	return out + notesBlock(materialNotes(p.Materials))
}

func materialNotes(ms []domain.MaterialEntry) [][2]string {
	var notes [][2]string
	for _, m := range ms {
		if strings.TrimSpace(m.Notes) != "" {
			notes = append(notes, [2]string{m.Name, m.Notes})
		}
	}
	return notes
}

func FormatVendors(p domain.Project) string {
	if len(p.Vendors) == 0 {
		return EmptyState("No vendors yet.") + "\n"
	}
	rows := make([][]string, 0, len(p.Vendors))
	var notes [][2]string
	for _, v := range p.Vendors {
		rows = append(rows, []string{
			Dim(TruncID(v.ID)),
			Bold(v.Name),
			Fallback(v.Role),
			Fallback(v.Phone),
			Fallback(v.Email),
		})
		if strings.TrimSpace(v.Notes) != "" {
			notes = append(notes, [2]string{v.Name, v.Notes})
		}
	}
	return RenderTable([]string{"ID", "NAME", "ROLE", "PHONE", "EMAIL"}, rows) + notesBlock(notes)
}

func notesBlock(notes [][2]string) string {
	if len(notes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + Header("Notes") + "\n")
	for _, n := range notes {
		b.WriteString(Bold(n[0]) + Dim(": ") + n[1] + "\n")
	}
	return b.String()
}

// FormatMood lists mood board images with their captions and rooms.
func FormatMood(p domain.Project) string {
	if len(p.Mood) == 0 {
		return EmptyState("No images yet.") + "\n"
	}
	var b strings.Builder
	for _, m := range p.Mood {
		caption := m.Caption
		if caption == "" {
			caption = Dim("(no caption)")
		}
		room := p.RoomName(m.RoomID, domain.AllRoomsLabel)
		b.WriteString(fmt.Sprintf("%s %s %s\n", Dim(TruncID(m.ID)), Bold(caption), StyleBlue.Render("[ "+room+" ]")))
		b.WriteString("  " + StyleDim.Render(m.URL) + "\n")
	}
	return b.String()
}

// FormatROI renders the inputs and the derived net gain and percentage.
func FormatROI(r domain.ROI) string {
	net := r.Net()
	netStr := Currency(net)
	switch {
	case net > 0:
		netStr = StyleGreen.Render(netStr)
	case net < 0:
		netStr = StyleRed.Render(netStr)
	}
	rows := [][]string{
		{"Projected value increase", Currency(r.EstValueIncrease)},
		{"Total project cost", Currency(r.ProjectCost)},
		{"Net gain/loss", netStr},
		{"ROI", Percent(r.Percent())},
	}
	out := Table{Headers: []string{"ESTIMATE", "VALUE"}, Rows: rows, Right: []int{1}}.Render()
	return out + "\n" + Dim("Simple estimate. Actual ROI depends on comps, finishes, and market conditions.") + "\n"
}

func formatROIInline(r domain.ROI) string {
	if r == (domain.ROI{}) {
		return Dim("--")
	}
	return fmt.Sprintf("%s net, %s", Currency(r.Net()), Percent(r.Percent()))
}
