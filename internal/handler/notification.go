package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	Repo repository.NotificationRepository
}

func (h NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/notifications", h.list)
	r.Post("/notifications", h.create)
	r.Post("/notifications/{id}/read", h.markRead)
	r.Post("/notifications/read-all", h.markAllRead)
	r.Delete("/notifications/{id}", h.delete)
}

func (h NotificationHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 100)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list notifications", err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, n := range items {
		resp = append(resp, notificationResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h NotificationHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title" validate:"required"`
		Message string `json:"message"`
		Icon    string `json:"icon"`
		Link    string `json:"link"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	n, err := h.Repo.Create(r.Context(), repository.NotificationInput{
		Title:     req.Title,
		Message:   req.Message,
		Timestamp: time.Now(),
		Icon:      req.Icon,
		Link:      req.Link,
	})
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create notification", err)
		return
	}
	writeJSON(w, http.StatusCreated, notificationResponse(*n))
}

func (h NotificationHandler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Repo.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "notification not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "mark notification read", err)
		return
	}
	writeJSON(w, http.StatusOK, notificationResponse(*n))
}

func (h NotificationHandler) markAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.MarkAllRead(r.Context()); err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "mark all read", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h NotificationHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "notification not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete notification", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notificationResponse(n domain.Notification) map[string]any {
	return map[string]any{
		"id":        n.ID,
		"title":     n.Title,
		"message":   n.Message,
		"timestamp": n.Timestamp.UTC().Format(time.RFC3339),
		"isRead":    n.IsRead,
		"icon":      n.Icon,
		"link":      n.Link,
	}
}
