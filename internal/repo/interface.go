package repo

import (
	"context"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id int64) (model.Task, error)
	GetStats(ctx context.Context) (Stats, error)
}

type Stats struct {
	TotalTasks int                    `json:"total_tasks"`
	Completed  int                    `json:"completed"`
	Pending    int                    `json:"pending"`
	ByPriority map[model.Priority]int `json:"by_priority"`
}
