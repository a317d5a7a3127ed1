package compiler

import (
	"fmt"
	"strings"

	"github.com/roach88/advkit/pkg/advancement"
	"github.com/roach88/advkit/pkg/ir"
	"github.com/roach88/advkit/pkg/text"
)

// Validation error codes (E200-E299)
const (
	// File errors (E200-E201)
	ErrUnsupportedFormat = "E200" // unknown file extension or format
	ErrParse             = "E201" // file could not be decoded

	// Identity errors (E202-E203)
	ErrInvalidID     = "E202" // id missing or malformed
	ErrInvalidParent = "E203" // parent is not a valid key

	// Criteria errors (E204-E207)
	ErrCriterionNameEmpty = "E204" // criterion name is required
	ErrDuplicateCriterion = "E205" // two criteria share a name
	ErrUnknownTrigger     = "E206" // trigger kind not recognized
	ErrInvalidConditions  = "E207" // condition value cannot be rendered

	// Display errors (E208-E210)
	ErrMissingIcon  = "E208" // display requires an icon
	ErrInvalidFrame = "E209" // frame not task|goal|challenge|random
	ErrInvalidColor = "E210" // unknown text color

	// Requirements and rewards (E211-E213)
	ErrUnknownRequirement = "E211" // requirement names an unknown criterion
	ErrEmptyRequirement   = "E212" // requirement group is empty
	ErrInvalidReward      = "E213" // negative experience or malformed id
)

// ValidationError represents a definition validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidationErrors is every problem found in one definition.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks def against the advancement format rules.
// Returns all errors found (does not fail-fast).
func Validate(def *Definition) []ValidationError {
	var errs []ValidationError

	// E202: id is required and must be a valid key
	if strings.TrimSpace(def.ID) == "" {
		errs = append(errs, ValidationError{
			Field:   "id",
			Message: "id is required",
			Code:    ErrInvalidID,
		})
	} else if _, err := advancement.ParseKey(def.ID); err != nil {
		errs = append(errs, ValidationError{
			Field:   "id",
			Message: err.Error(),
			Code:    ErrInvalidID,
		})
	}

	// E203: parent must be a valid key when present
	if def.Parent != "" {
		if _, err := advancement.ParseKey(def.Parent); err != nil {
			errs = append(errs, ValidationError{
				Field:   "parent",
				Message: err.Error(),
				Code:    ErrInvalidParent,
			})
		}
	}

	if def.Display != nil {
		errs = append(errs, validateDisplay(def.Display)...)
	}

	known := make(map[string]bool)
	for i, c := range def.Criteria {
		field := fmt.Sprintf("criteria[%d]", i)

		// E204: name is required
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "criterion name is required",
				Code:    ErrCriterionNameEmpty,
			})
		} else if known[c.Name] {
			// E205: duplicate name
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate criterion name: %q", c.Name),
				Code:    ErrDuplicateCriterion,
			})
		}
		known[c.Name] = true

		// E206: trigger must be known
		if _, err := advancement.ParseTriggerType(c.Trigger); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".trigger",
				Message: err.Error(),
				Code:    ErrUnknownTrigger,
			})
		}

		// E207: conditions must convert to JSON values
		for _, key := range sortedKeys(c.Conditions) {
			if _, err := ir.FromAny(c.Conditions[key]); err != nil {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.conditions.%s", field, key),
					Message: err.Error(),
					Code:    ErrInvalidConditions,
				})
			}
		}
	}
	if len(def.Criteria) == 0 {
		known[advancement.DefaultCriterion] = true
	}

	for i, group := range def.Requirements {
		field := fmt.Sprintf("requirements[%d]", i)

		// E212: group must name at least one criterion
		if len(group) == 0 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "requirement group is empty",
				Code:    ErrEmptyRequirement,
			})
		}

		// E211: every name must be a criterion
		for j, name := range group {
			if !known[name] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s[%d]", field, j),
					Message: fmt.Sprintf("unknown criterion: %q", name),
					Code:    ErrUnknownRequirement,
				})
			}
		}
	}

	if def.Rewards != nil {
		errs = append(errs, validateRewards(def.Rewards)...)
	}

	return errs
}

func validateDisplay(d *DisplayDef) []ValidationError {
	var errs []ValidationError

	// E208: icon is required
	if strings.TrimSpace(d.Icon) == "" {
		errs = append(errs, ValidationError{
			Field:   "display.icon",
			Message: "icon is required",
			Code:    ErrMissingIcon,
		})
	}

	// E209: frame must be one of the known frames
	if d.Frame != "" {
		switch advancement.Frame(strings.ToLower(strings.TrimSpace(d.Frame))) {
		case advancement.FrameTask, advancement.FrameGoal, advancement.FrameChallenge, advancement.FrameRandom:
		default:
			errs = append(errs, ValidationError{
				Field:   "display.frame",
				Message: fmt.Sprintf("invalid frame %q (must be task, goal, challenge or random)", d.Frame),
				Code:    ErrInvalidFrame,
			})
		}
	}

	errs = append(errs, validateText("display.title", d.Title)...)
	errs = append(errs, validateText("display.description", d.Description)...)
	return errs
}

// validateText checks colors recursively through extra components.
func validateText(field string, t TextDef) []ValidationError {
	var errs []ValidationError

	// E210: color must be a named chat color
	if t.Color != "" {
		if _, ok := text.ParseColor(t.Color); !ok {
			errs = append(errs, ValidationError{
				Field:   field + ".color",
				Message: fmt.Sprintf("unknown color %q", t.Color),
				Code:    ErrInvalidColor,
			})
		}
	}
	for i, child := range t.Extra {
		errs = append(errs, validateText(fmt.Sprintf("%s.extra[%d]", field, i), child)...)
	}
	return errs
}

func validateRewards(r *RewardsDef) []ValidationError {
	var errs []ValidationError

	// E213: experience is non-negative
	if r.Experience != nil && *r.Experience < 0 {
		errs = append(errs, ValidationError{
			Field:   "rewards.experience",
			Message: fmt.Sprintf("experience must be non-negative, got %d", *r.Experience),
			Code:    ErrInvalidReward,
		})
	}

	// E213: ids must be valid keys
	check := func(field, id string) {
		if _, err := advancement.ParseKey(id); err != nil {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: err.Error(),
				Code:    ErrInvalidReward,
			})
		}
	}
	for i, id := range r.Recipes {
		check(fmt.Sprintf("rewards.recipes[%d]", i), id)
	}
	for i, id := range r.Loots {
		check(fmt.Sprintf("rewards.loots[%d]", i), id)
	}
	if r.Function != "" {
		check("rewards.function", r.Function)
	}
	return errs
}
