package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/repo"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid task id")
	ErrInvalidPriority = errors.New("invalid priority level")
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// ParseID parses a path id. Anything that is not a base-10 integer is ErrInvalidID.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func (s *TaskService) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	return s.repo.List(ctx, filter)
}

func (s *TaskService) ListByPriority(ctx context.Context, level string) ([]model.Task, error) {
	if !validPriority(level) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, level)
	}
	p := model.Priority(level).Normalize()
	return s.repo.List(ctx, model.TaskFilter{Priority: &p})
}

func (s *TaskService) Get(ctx context.Context, rawID string) (model.Task, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, p model.Payload) (model.Task, error) {
	if violations := validatePayload(p, false); len(violations) > 0 { // Валидация всех полей сразу
		return model.Task{}, &ValidationError{Violations: violations}
	}

	// completed обязателен, поэтому значение по умолчанию здесь не нужно
	t := patchFrom(p).Apply(model.Task{Priority: model.PriorityMedium})
	return s.repo.Create(ctx, t)
}

// Update resolves the task first, so an unknown id wins over a bad payload.
func (s *TaskService) Update(ctx context.Context, rawID string, p model.Payload) (model.Task, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return model.Task{}, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return model.Task{}, err
	}

	if violations := validatePayload(p, true); len(violations) > 0 {
		return model.Task{}, &ValidationError{Violations: violations}
	}
	return s.repo.Update(ctx, id, patchFrom(p))
}

func (s *TaskService) Delete(ctx context.Context, rawID string) (model.Task, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) GetStats(ctx context.Context) (repo.Stats, error) {
	return s.repo.GetStats(ctx)
}
