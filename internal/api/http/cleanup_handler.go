package http

import (
	"net/http"
	"strconv"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/service"
)

type CleanupHandler struct {
	cleanupSvc service.CleanupService
}

func NewCleanupHandler(cleanupSvc service.CleanupService) *CleanupHandler {
	return &CleanupHandler{cleanupSvc: cleanupSvc}
}

type submitResponse struct {
	Cleanup *domain.Cleanup `json:"cleanup"`
	Profile *domain.Profile `json:"profile"`
}

type listResponse struct {
	Cleanups []domain.Cleanup `json:"cleanups"`
	Total    int32            `json:"total"`
}

// Submit accepts a multipart form with description, location, points and an
// optional photo file.
func (h *CleanupHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	points, err := strconv.ParseInt(r.FormValue("points"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "points must be an integer")
		return
	}

	sub := service.CleanupSubmission{
		Description:  r.FormValue("description"),
		Location:     r.FormValue("location"),
		PointsEarned: int32(points),
	}

	file, header, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()
		sub.Photo = file
		sub.PhotoName = header.Filename
	} else if err != http.ErrMissingFile {
		writeError(w, http.StatusBadRequest, "invalid photo upload")
		return
	}

	cleanup, profile, err := h.cleanupSvc.Submit(r.Context(), userID, sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Cleanup: cleanup,
		Profile: profile,
	})
}

// List returns the caller's submissions, newest first.
func (h *CleanupHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	page := parseQueryInt(r, "page", 1)
	pageSize := parseQueryInt(r, "page_size", 20)

	cleanups, total, err := h.cleanupSvc.ListByUser(r.Context(), userID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if cleanups == nil {
		cleanups = []domain.Cleanup{}
	}
	writeJSON(w, http.StatusOK, listResponse{Cleanups: cleanups, Total: total})
}

func parseQueryInt(r *http.Request, name string, fallback int32) int32 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return fallback
	}
	n, err := strconv.ParseInt(val, 10, 32)
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
