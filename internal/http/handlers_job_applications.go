// Package httpx provides the HTTP handlers and routing for the jobtrackr API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	"github.com/jobtrackr/jobtrackr-api/internal/service"
)

// JobApplicationHandlers provides HTTP handlers for job application operations.
type JobApplicationHandlers struct {
	Svc *service.JobApplicationService
}

// List handles GET /api/applications. With a status query parameter it lists
// one pipeline column ordered by position; without it, all active applications
// newest first.
func (h *JobApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		apps, err := h.Svc.ListByStatus(r.Context(), user.ID, model.ApplicationStatus(status))
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, apps)
		return
	}

	apps, err := h.Svc.ListActive(r.Context(), user.ID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}

// Get handles GET /api/applications/{id}.
func (h *JobApplicationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	app, err := h.Svc.GetByID(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}

// Create handles POST /api/applications.
func (h *JobApplicationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	var req model.CreateJobApplicationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.Create(r.Context(), user.ID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, app)
}

// Reorder handles PUT /api/applications/reorder.
func (h *JobApplicationHandlers) Reorder(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	var req model.ReorderRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	apps, err := h.Svc.Reorder(r.Context(), user.ID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}

// ChangeStatus handles PUT /api/applications/{id}/status.
func (h *JobApplicationHandlers) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	var req model.ChangeStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.ChangeStatus(r.Context(), user.ID, r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}

// History handles GET /api/applications/{id}/history.
func (h *JobApplicationHandlers) History(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	entries, err := h.Svc.ListHistory(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

// Delete handles DELETE /api/applications/{id}.
func (h *JobApplicationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		writeMissingUser(w)
		return
	}

	app, err := h.Svc.SoftDelete(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}

// writeMissingUser reports a request that reached an authenticated handler
// without a user in context, which means the route was wired without
// RequireAuth.
func writeMissingUser(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
