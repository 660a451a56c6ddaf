package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/timeline"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their file names rather than Go names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidateRosterSchema checks the roster for errors before conversion.
// Returns a slice of all validation errors found.
//
// Dates are deliberately not checked here; see LintDates.
func ValidateRosterSchema(schema *RosterSchema) []error {
	var errs []error

	if err := validate.Struct(schema); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []error{err}
		}
		for _, fe := range verrs {
			errs = append(errs, errors.New(formatFieldError(fe)))
		}
	}

	errs = append(errs, validateMembers(schema.Members)...)
	errs = append(errs, validateGroups(schema.Groups)...)

	return errs
}

func validateMembers(members []MemberImport) []error {
	var errs []error

	memberIDs := make(map[string]bool)
	taskIDs := make(map[string]bool)
	for i, m := range members {
		if m.ID != "" {
			if memberIDs[m.ID] {
				errs = append(errs, fmt.Errorf("members[%d].id: duplicate id %q", i, m.ID))
			}
			memberIDs[m.ID] = true
		}
		for j, t := range m.Tasks {
			path := fmt.Sprintf("members[%d].tasks[%d]", i, j)
			if t.ID != "" {
				if taskIDs[t.ID] {
					errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", path, t.ID))
				}
				taskIDs[t.ID] = true
			}
			if (t.StartWeek == nil) != (t.Duration == nil) {
				errs = append(errs, fmt.Errorf("%s: start_week and duration must be set together", path))
			}
		}
	}

	return errs
}

func validateGroups(groups []ActivityGroupImport) []error {
	var errs []error

	groupIDs := make(map[string]bool)
	activityIDs := make(map[string]bool)
	for i, g := range groups {
		if g.ID != "" {
			if groupIDs[g.ID] {
				errs = append(errs, fmt.Errorf("activity_groups[%d].id: duplicate id %q", i, g.ID))
			}
			groupIDs[g.ID] = true
		}
		for j, a := range g.Activities {
			if a.ID == "" {
				continue
			}
			if activityIDs[a.ID] {
				errs = append(errs, fmt.Errorf("activity_groups[%d].activities[%d].id: duplicate id %q", i, j, a.ID))
			}
			activityIDs[a.ID] = true
		}
	}

	return errs
}

// LintDates reports malformed task dates and unknown statuses. These are
// warnings: the affected rows are skipped at layout time instead of failing
// the whole roster.
func LintDates(schema *RosterSchema) []string {
	var warnings []string

	for i, m := range schema.Members {
		for j, t := range m.Tasks {
			path := fmt.Sprintf("members[%d].tasks[%d]", i, j)
			if t.DueDate != "" {
				if _, err := timeline.ParseDate("due_date", t.DueDate); err != nil {
					warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
				}
			}
			if t.StartDate != "" {
				if _, err := timeline.ParseDate("start_date", t.StartDate); err != nil {
					warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
				}
			}
			if st := domain.ParseTaskStatus(t.Status); st != "" && !st.Known() {
				warnings = append(warnings, fmt.Sprintf("%s.status: unknown status %q renders as neutral", path, t.Status))
			}
		}
	}
	for i, g := range schema.Groups {
		for j, a := range g.Activities {
			if st := domain.ParseTaskStatus(a.Status); st != "" && !st.Known() {
				warnings = append(warnings, fmt.Sprintf("activity_groups[%d].activities[%d].status: unknown status %q renders as neutral", i, j, a.Status))
			}
		}
	}

	return warnings
}

func formatFieldError(fe validator.FieldError) string {
	path := strings.TrimPrefix(fe.Namespace(), "RosterSchema.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "nonblank":
		return fmt.Sprintf("%s cannot be blank", path)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", path, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", path, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", path, fe.Tag())
	}
}
