package submissions

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-intake/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/submissions", listMySubmissionsHandler(svc))
	r.Get("/submissions/{submissionID}", getSubmissionHandler(svc))
}

type submissionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Variant   string    `json:"variant"`
	PetType   string    `json:"petType"`
	PetID     string    `json:"petId,omitempty"`
	Status    Status    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// listMySubmissionsHandler godoc
// @Summary  Lista los envíos del usuario autenticado
// @Tags     submissions
// @Produce  json
// @Success  200 {array} submissionResponse
// @Failure  401 {string} string "unauthorized"
// @Router   /me/submissions [get]
func listMySubmissionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]submissionResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getSubmissionHandler godoc
// @Summary  Detalle de un envío (solo el dueño)
// @Tags     submissions
// @Produce  json
// @Param    submissionID path string true "submission id"
// @Success  200 {object} submissionResponse
// @Failure  404 {string} string "submission not found"
// @Router   /submissions/{submissionID} [get]
func getSubmissionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sub, err := svc.GetForUser(r.Context(), chi.URLParam(r, "submissionID"), claims.UserID)
		if err != nil {
			http.Error(w, "submission not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sub))
	}
}

func toResponse(s Submission) submissionResponse {
	return submissionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Variant:   s.Variant,
		PetType:   s.PetType,
		PetID:     s.PetID,
		Status:    s.Status,
		Error:     s.Error,
		CreatedAt: s.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
