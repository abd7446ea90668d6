package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/reimagine/internal/cli/formatter"
	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// nothingToAdd is printed when an add command gets a blank primary field.
const nothingToAdd = "Nothing to add."

func reimagineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(reimagineHuhTheme()).WithShowHelp(false)
}

func textInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value)
}

// amountInput accepts any text; non-numeric input is stored as 0, matching
// the flag behavior.
func amountInput(title, placeholder string, value *string) *huh.Input {
	return textInput(title, placeholder, value).
		Description("Blank or non-numeric counts as 0")
}

// roomSelect offers the project's rooms plus an empty choice labelled with
// the fallback name.
func roomSelect(p domain.Project, fallback string, value *string) *huh.Select[string] {
	options := []huh.Option[string]{huh.NewOption(fallback, "")}
	for _, r := range p.Rooms {
		options = append(options, huh.NewOption(r.Name, r.ID))
	}
	return huh.NewSelect[string]().
		Title("Room").
		Options(options...).
		Value(value)
}

func phaseSelect(value *domain.Phase) *huh.Select[domain.Phase] {
	options := make([]huh.Option[domain.Phase], 0, len(domain.Phases))
	for i, ph := range domain.Phases {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", i+1, ph), ph))
	}
	return huh.NewSelect[domain.Phase]().
		Title("Status").
		Options(options...).
		Value(value)
}

// selectProjectForm lists every project. Returns nil when there are none.
func selectProjectForm(ctx context.Context, app *App, result *string) *huh.Form {
	w, err := app.Projects.List(ctx)
	if err != nil || len(w.Projects) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(w.Projects))
	for _, p := range w.Projects {
		label := fmt.Sprintf("%s  %s", domain.ShortID(p.ID), p.Name)
		options = append(options, huh.NewOption(label, p.ID))
	}
	*result = w.ActiveID

	return newForm(
		huh.NewSelect[string]().
			Title("Which Project?").
			Options(options...).
			Value(result),
	)
}

func confirmForm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(result),
	)
}

// promptIfBlank runs form when primary is blank and the terminal is
// interactive. It reports whether primary holds text afterwards.
func promptIfBlank(app *App, primary *string, form func() *huh.Form) (bool, error) {
	if strings.TrimSpace(*primary) == "" && app.interactive() {
		if err := app.runForm(form()); err != nil {
			return false, err
		}
	}
	return strings.TrimSpace(*primary) != "", nil
}
