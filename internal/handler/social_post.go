package handler

import (
	"errors"
	"net/http"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/report"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/go-chi/chi/v5"
)

type SocialPostHandler struct {
	Repo repository.SocialPostRepository
}

func (h SocialPostHandler) RegisterRoutes(r chi.Router) {
	r.Get("/social-posts", h.list)
	r.Post("/social-posts", h.create)
	r.Put("/social-posts/{id}", h.update)
	r.Patch("/social-posts/{id}/status", h.updateStatus)
	r.Delete("/social-posts/{id}", h.delete)
	r.Get("/social-planner", h.planner)
}

type socialPostPayload struct {
	ProjectID     *int64 `json:"projectId"`
	ClientName    string `json:"clientName"`
	PostType      string `json:"postType"`
	Platform      string `json:"platform" validate:"required"`
	ScheduledDate string `json:"scheduledDate" validate:"required"`
	Caption       string `json:"caption"`
	MediaURL      string `json:"mediaUrl"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func (p socialPostPayload) toInput() (repository.SocialPostInput, error) {
	scheduled, err := parseDateField(p.ScheduledDate)
	if err != nil {
		return repository.SocialPostInput{}, err
	}
	status := domain.PostStatus(p.Status)
	if status == "" {
		status = domain.PostDraft
	}
	return repository.SocialPostInput{
		ProjectID:     p.ProjectID,
		ClientName:    p.ClientName,
		PostType:      p.PostType,
		Platform:      p.Platform,
		ScheduledDate: scheduled,
		Caption:       p.Caption,
		MediaURL:      p.MediaURL,
		Status:        status,
		Notes:         p.Notes,
	}, nil
}

func (h SocialPostHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "list social posts", err)
		return
	}
	items = report.FilterPosts(items, r.URL.Query().Get("status"), r.URL.Query().Get("platform"))
	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, socialPostResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// planner returns posts grouped by scheduled date, dates ascending.
func (h SocialPostHandler) planner(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "load social posts", err)
		return
	}
	items = report.FilterPosts(items, r.URL.Query().Get("status"), r.URL.Query().Get("platform"))
	groups := report.GroupPostsByDate(items)

	days := make([]map[string]any, 0, len(groups))
	for _, date := range report.SortedDateKeys(groups) {
		posts := make([]map[string]any, 0, len(groups[date]))
		for _, p := range groups[date] {
			posts = append(posts, socialPostResponse(p))
		}
		days = append(days, map[string]any{
			"date":  date,
			"posts": posts,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days})
}

func (h SocialPostHandler) create(w http.ResponseWriter, r *http.Request) {
	var req socialPostPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	p, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeErrorWithErr(w, http.StatusInternalServerError, "create social post", err)
		return
	}
	writeJSON(w, http.StatusCreated, socialPostResponse(*p))
}

func (h SocialPostHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req socialPostPayload
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}
	p, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "social post not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update social post", err)
		return
	}
	writeJSON(w, http.StatusOK, socialPostResponse(*p))
}

func (h SocialPostHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Status string `json:"status" validate:"required,oneof=draft scheduled published cancelled"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.Repo.UpdateStatus(r.Context(), id, domain.PostStatus(req.Status))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "social post not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "update post status", err)
		return
	}
	writeJSON(w, http.StatusOK, socialPostResponse(*p))
}

func (h SocialPostHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "social post not found")
			return
		}
		writeErrorWithErr(w, http.StatusInternalServerError, "delete social post", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func socialPostResponse(p domain.SocialMediaPost) map[string]any {
	return map[string]any{
		"id":            p.ID,
		"projectId":     p.ProjectID,
		"clientName":    p.ClientName,
		"postType":      p.PostType,
		"platform":      p.Platform,
		"scheduledDate": p.ScheduledDate.Format(dateLayout),
		"caption":       p.Caption,
		"mediaUrl":      p.MediaURL,
		"status":        string(p.Status),
		"notes":         p.Notes,
	}
}
