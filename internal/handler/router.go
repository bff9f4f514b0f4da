package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/pkg/respond"
)

// NewRouter wires the task routes. Unknown paths and methods get the same 404.
func NewRouter(h *TaskHandler, logger *zap.Logger) chi.Router {
	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/", Welcome)
	r.Get("/health", Health)
	r.Get("/stats", h.Stats)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/priority/{level}", h.ListByPriority)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func Welcome(w http.ResponseWriter, r *http.Request) {
	respond.Message(w, r, http.StatusOK, "Welcome to the Task Manager API")
}

func Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, r, http.StatusNotFound, "Route not found")
}
