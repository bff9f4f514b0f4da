package repo

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

type TaskRepo struct { // Хранилище задач в памяти процесса
	mu    sync.RWMutex
	tasks []model.Task
	now   func() time.Time
}

func NewTaskRepo() *TaskRepo { // Конструктор
	return &TaskRepo{
		now: time.Now,
	}
}

// WithClock replaces the time source used for CreatedAt.
func (r *TaskRepo) WithClock(now func() time.Time) *TaskRepo {
	r.now = now
	return r
}

// Create assigns the next id and the creation timestamp, then appends t.
// Whatever ID or CreatedAt the caller set is discarded.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID()
	t.CreatedAt = r.now().UTC().Truncate(time.Millisecond) // точность как у ISO-8601 с миллисекундами
	t.Priority = t.Priority.Normalize()

	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}
	return r.tasks[i], nil
}

// List works on a copy, the stored order is never changed by a read.
func (r *TaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	r.mu.RLock()
	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != nil && t.Priority.Normalize() != filter.Priority.Normalize() {
			continue
		}
		tasks = append(tasks, t)
	}
	r.mu.RUnlock()

	if filter.SortByCreatedAt {
		desc := filter.Order == model.SortDesc
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			if desc {
				return b.CreatedAt.Compare(a.CreatedAt)
			}
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}
	return tasks, nil
}

// Update merges patch onto the stored task and replaces it in place.
func (r *TaskRepo) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}

	existing := r.tasks[i]
	updated := patch.Apply(existing)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	r.tasks[i] = updated
	return updated, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}

	removed := r.tasks[i]
	r.tasks = slices.Delete(r.tasks, i, i+1)
	return removed, nil
}

func (r *TaskRepo) GetStats(ctx context.Context) (Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		TotalTasks: len(r.tasks),
		ByPriority: make(map[model.Priority]int, len(model.Priorities)),
	}
	for _, p := range model.Priorities {
		stats.ByPriority[p] = 0
	}
	for _, t := range r.tasks {
		if t.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		stats.ByPriority[t.Priority.Normalize()]++
	}
	return stats, nil
}

// nextID is max(id)+1 over the current contents, so deleting the highest
// task lets its id be handed out again. Caller holds the lock.
func (r *TaskRepo) nextID() int64 {
	var maxID int64
	for _, t := range r.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

func (r *TaskRepo) indexOf(id int64) int {
	return slices.IndexFunc(r.tasks, func(t model.Task) bool { return t.ID == id })
}
