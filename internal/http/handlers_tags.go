package httpx

import (
	"net/http"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	"github.com/jobtrackr/jobtrackr-api/internal/service"
)

// TagHandlers provides HTTP handlers for tag operations.
type TagHandlers struct {
	Svc *service.TagService
}

// List handles GET /api/tags.
func (h *TagHandlers) List(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	tags, err := h.Svc.List(r.Context(), user.ID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tags)
}

// Create handles POST /api/tags.
func (h *TagHandlers) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	var req model.CreateTagRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	tag, err := h.Svc.Create(r.Context(), user.ID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, tag)
}
