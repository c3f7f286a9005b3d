package http

import (
	"encoding/json"
	"net/http"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/service"
)

type ChallengeHandler struct {
	challengeSvc service.ChallengeService
}

func NewChallengeHandler(challengeSvc service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeSvc: challengeSvc}
}

type createChallengeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      string `json:"reward"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Create persists a challenge for the caller's organization. Member-role
// callers get a 403 and nothing is written.
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	challenge := &domain.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Reward:      req.Reward,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := h.challengeSvc.Create(r.Context(), userID, challenge); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, challenge)
}

func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")

	challenges, err := h.challengeSvc.List(r.Context(), organizationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if challenges == nil {
		challenges = []domain.Challenge{}
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Challenge{"challenges": challenges})
}
