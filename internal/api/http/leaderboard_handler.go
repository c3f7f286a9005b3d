package http

import (
	"net/http"

	"cleansweep-backend/internal/service"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

type userEntry struct {
	Rank   int32  `json:"rank"`
	UserID int32  `json:"user_id"`
	Name   string `json:"name"`
	Points int32  `json:"points"`
}

type orgEntry struct {
	Rank           int32  `json:"rank"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	TotalPoints    int32  `json:"total_points"`
}

// TopUsers returns the highest-scoring profiles, descending.
func (h *LeaderboardHandler) TopUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.leaderboardSvc.TopUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	entries := make([]userEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, userEntry{
			Rank:   int32(i + 1),
			UserID: p.ID,
			Name:   p.Name,
			Points: p.Points,
		})
	}
	writeJSON(w, http.StatusOK, map[string][]userEntry{"leaderboard": entries})
}

// TopOrganizations returns the highest-scoring organizations, descending.
func (h *LeaderboardHandler) TopOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.leaderboardSvc.TopOrganizations(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	entries := make([]orgEntry, 0, len(orgs))
	for i, o := range orgs {
		entries = append(entries, orgEntry{
			Rank:           int32(i + 1),
			OrganizationID: o.ID,
			Name:           o.Name,
			TotalPoints:    o.TotalPoints,
		})
	}
	writeJSON(w, http.StatusOK, map[string][]orgEntry{"leaderboard": entries})
}
