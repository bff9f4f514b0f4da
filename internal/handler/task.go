package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/repo"
	"github.com/BuzzLyutic/task-store-api/internal/service"
	"github.com/BuzzLyutic/task-store-api/pkg/respond"
)

const maxBodyBytes = 1 << 20

var (
	errMalformedJSON = errors.New("malformed json")
	errBodyTooLarge  = errors.New("request body too large")
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := h.decodePayload(w, r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.Created(w, r, fmt.Sprintf("/tasks/%d", task.ID), task)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

// List supports ?completed=true|..., ?sort=createdAt and ?order=asc|desc.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter model.TaskFilter
	if q.Has("completed") {
		completed := q.Get("completed") == "true"
		filter.Completed = &completed
	}
	if q.Get("sort") == "createdAt" {
		filter.SortByCreatedAt = true
		filter.Order = model.SortAsc
		if q.Get("order") == string(model.SortDesc) {
			filter.Order = model.SortDesc
		}
	}

	tasks, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) ListByPriority(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListByPriority(r.Context(), chi.URLParam(r, "level"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := h.decodePayload(w, r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	task, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, stats)
}

// decodePayload reads a JSON object body. An empty body is an empty object.
func (h *TaskHandler) decodePayload(w http.ResponseWriter, r *http.Request) (model.Payload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return model.Payload{}, nil
	}

	var payload model.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.Debug("failed to decode json", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errMalformedJSON, err)
	}
	if payload == nil { // литерал null
		return nil, errMalformedJSON
	}
	return payload, nil
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errMalformedJSON):
		respond.Error(w, r, http.StatusBadRequest, "Invalid JSON format")
	case errors.Is(err, errBodyTooLarge):
		respond.Error(w, r, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidID):
		respond.Error(w, r, http.StatusBadRequest, "Invalid task ID")
	case errors.Is(err, service.ErrInvalidPriority):
		respond.Error(w, r, http.StatusBadRequest, "Invalid priority level. Must be one of: low, medium, high")
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "Task not found")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error")
	}
}
