package http

import (
	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Cleanup     *CleanupHandler
	Challenge   *ChallengeHandler
	Leaderboard *LeaderboardHandler
	Photo       *PhotoHandler
	Stream      *StreamHandler
}

// NewRouter builds the API route table. Reads that back anonymous views
// (leaderboards, challenge lists, photo downloads) are public; everything
// touching the caller's own data requires an access token.
func NewRouter(h *Handlers, auth *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods("POST")
	api.HandleFunc("/leaderboard/users", h.Leaderboard.TopUsers).Methods("GET")
	api.HandleFunc("/leaderboard/organizations", h.Leaderboard.TopOrganizations).Methods("GET")
	api.HandleFunc("/challenges", h.Challenge.List).Methods("GET")
	api.HandleFunc("/photos/download", h.Photo.Download).Methods("GET")

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(auth.RequireAccess)
	protected.HandleFunc("/me", h.Profile.Me).Methods("GET")
	protected.HandleFunc("/cleanups", h.Cleanup.Submit).Methods("POST")
	protected.HandleFunc("/cleanups", h.Cleanup.List).Methods("GET")
	protected.HandleFunc("/challenges", h.Challenge.Create).Methods("POST")
	protected.HandleFunc("/dashboard/stream", h.Stream.Stream).Methods("GET")

	return router
}
