package scene

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathoo/leveldesc/ctxlog"
	"github.com/nathoo/leveldesc/level"
	"github.com/nathoo/leveldesc/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Validate checks a scene for references and ranges the file format itself
// cannot express. Warnings are logged; the returned error is a
// *ValidationError when there is at least one error.
func Validate(ctx context.Context, s *Scene) error {
	ve := Check(s)

	logger := ctxlog.FromContext(ctx)
	for _, w := range ve.Warnings {
		logger.Warn(w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// Check runs validation and returns everything it found, even when empty.
func Check(s *Scene) *ValidationError {
	ve := &ValidationError{}

	// Objects.
	placed := map[types.ObjectType]bool{}
	for i, o := range s.Objects {
		placed[o.Type] = true
		if o.Team < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"object %d (%s) has negative team %d", i, level.ObjectTypeName(o.Type), o.Team))
		}
		if o.Power < 0 || o.Power > 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"object %d (%s) power %g outside [0, 1]", i, level.ObjectTypeName(o.Type), o.Power))
		}
		if o.Type == types.ObjectNull {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("object %d has type Null", i))
		}
	}

	// Automats refer to placed buildings.
	for i, a := range s.Automats {
		if !placed[a.Object] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"automat %d refers to %s, which is not placed by any CreateObject",
				i, level.ObjectTypeName(a.Object)))
		}
		if a.Progress < 0 || a.Progress > 1 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"automat %d progress %g outside [0, 1]", i, a.Progress))
		}
	}

	// Material ids unique.
	ids := map[int]bool{}
	for _, m := range s.Materials {
		if ids[m.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate terrain material id %d", m.ID))
		}
		ids[m.ID] = true
	}

	for i, p := range s.Pyros {
		if p.Power < 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("pyro %d has negative power %g", i, p.Power))
		}
	}

	// Research marked done must be enabled.
	if extra := s.Research.Done &^ s.Research.Enabled; extra != 0 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"research done flags %s are not enabled", level.NewResearchFlag("", extra).Value()))
	}

	if s.Mission.Title == "" {
		ve.Warnings = append(ve.Warnings, "mission has no title")
	}

	for _, l := range s.Extra {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"unknown command %q at %s:%d", l.Command, l.Filename(), l.Number()))
	}

	return ve
}
