package cli

import (
	"strings"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// phaseValue is a pflag.Value accepting a phase name or its 1-based position.
type phaseValue struct {
	phase *domain.Phase
}

var _ pflag.Value = phaseValue{}

func newPhaseValue(p *domain.Phase) phaseValue {
	return phaseValue{phase: p}
}

func (v phaseValue) String() string {
	if v.phase == nil {
		return ""
	}
	return string(*v.phase)
}

func (v phaseValue) Set(s string) error {
	ph, err := domain.ParsePhase(s)
	if err != nil {
		return err
	}
	*v.phase = ph
	return nil
}

func (phaseValue) Type() string { return "phase" }

// changedString returns &v when the flag was given, so patches leave absent
// fields untouched.
func changedString(cmd *cobra.Command, name, v string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// changedAmount coerces a numeric flag the way form input is coerced.
func changedAmount(cmd *cobra.Command, name, raw string, nonNegative bool) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v := domain.ParseAmount(raw)
	if nonNegative {
		v = domain.NonNegative(v)
	}
	return &v
}

// argText joins positional words into one text field.
func argText(args []string) string {
	return strings.Join(args, " ")
}
