package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

var validate = validator.New()

const priorityRule = "required,oneof=low medium high"

// Violation is one broken rule of a task payload.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError collects every violation found in a payload. It matches ErrValidation.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// validatePayload checks p against the task field rules. With partial set, a
// rule only runs when its field is present (an explicit null is present).
func validatePayload(p model.Payload, partial bool) []Violation {
	var violations []Violation

	check := func(field string, ok func(v any) bool, v Violation) {
		raw, present := p[field]
		if partial && !present {
			return
		}
		if !present || !ok(raw) {
			violations = append(violations, v)
		}
	}

	check("title", isNonEmptyString, Violation{
		Field:   "title",
		Rule:    "required_string",
		Message: "Title is required and must be a non-empty string",
	})
	check("description", isNonEmptyString, Violation{
		Field:   "description",
		Rule:    "required_string",
		Message: "Description is required and must be a non-empty string",
	})
	check("completed", isBool, Violation{
		Field:   "completed",
		Rule:    "required_bool",
		Message: "Completed is required and must be a boolean",
	})

	// priority is optional even on create
	if raw, present := p["priority"]; present && !isPriority(raw) {
		violations = append(violations, Violation{
			Field:   "priority",
			Rule:    "oneof",
			Message: "Priority must be one of: low, medium, high",
		})
	}

	return violations
}

func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isPriority(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return validPriority(s)
}

func validPriority(level string) bool {
	return validate.Var(strings.ToLower(level), priorityRule) == nil
}

// patchFrom converts an already validated payload into a TaskPatch.
func patchFrom(p model.Payload) model.TaskPatch {
	var patch model.TaskPatch
	if s, ok := p["title"].(string); ok {
		patch.Title = &s
	}
	if s, ok := p["description"].(string); ok {
		patch.Description = &s
	}
	if b, ok := p["completed"].(bool); ok {
		patch.Completed = &b
	}
	if s, ok := p["priority"].(string); ok {
		level := model.Priority(s)
		patch.Priority = &level
	}
	return patch
}
