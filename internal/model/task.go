package model

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the accepted levels in the order they are reported.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Normalize lowercases the level. Tasks stored without a level count as medium.
func (p Priority) Normalize() Priority {
	if p == "" {
		return PriorityMedium
	}
	return Priority(strings.ToLower(string(p)))
}

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskPatch carries the fields present in an update request. Nil means "leave as is".
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
}

// Apply merges the patch onto t. ID and CreatedAt are never touched.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = p.Priority.Normalize()
	}
	return t
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type TaskFilter struct {
	Completed *bool
	Priority  *Priority
	// SortByCreatedAt orders the result by creation time, Order picks the direction.
	SortByCreatedAt bool
	Order           SortOrder
}

// Payload is a decoded JSON request body before validation.
type Payload map[string]any
