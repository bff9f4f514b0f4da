package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Normalize(t *testing.T) {
	assert.Equal(t, PriorityMedium, Priority("").Normalize())
	assert.Equal(t, PriorityHigh, Priority("HiGh").Normalize())
	assert.Equal(t, PriorityLow, PriorityLow.Normalize())
}

func TestTaskPatch_Apply(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	task := Task{ID: 3, Title: "old", Description: "desc", Priority: PriorityLow, CreatedAt: created}

	title := "  new  "
	level := Priority("HIGH")
	got := TaskPatch{Title: &title, Priority: &level}.Apply(task)

	assert.Equal(t, Task{
		ID:          3,
		Title:       "new",
		Description: "desc",
		Priority:    PriorityHigh,
		CreatedAt:   created,
	}, got)
	assert.Equal(t, task, TaskPatch{}.Apply(task), "empty patch changes nothing")
}
