package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scanoverlay/internal/database"
	"scanoverlay/internal/models"
	"scanoverlay/internal/session"
)

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

type App struct {
	Sessions       *session.Manager
	Profiles       *database.ProfileRepo
	DefaultMetrics models.DisplayMetrics
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Error encoding response: %v", err)
	}
}

type createSessionRequest struct {
	ProfileID string                 `json:"profileId"`
	Metrics   *models.DisplayMetrics `json:"metrics"`
}

type createSessionResponse struct {
	ID      string                `json:"id"`
	Metrics models.DisplayMetrics `json:"metrics"`
}

// CreateSessionHandler registers a new scan session. Display metrics come
// from the request body, from a stored profile, or from the server default,
// in that order of preference.
func (app *App) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil {
		// io.EOF means an empty body (chunked requests report no
		// ContentLength); fall through to the default metrics.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	metrics := app.DefaultMetrics
	switch {
	case req.Metrics != nil:
		metrics = *req.Metrics
	case req.ProfileID != "":
		profile, err := app.Profiles.GetByID(r.Context(), req.ProfileID)
		if err != nil {
			http.Error(w, "Error loading profile", http.StatusInternalServerError)
			return
		}
		if profile == nil {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		metrics = profile.Metrics
	}

	sess := app.Sessions.Create(metrics)
	writeJSON(w, http.StatusCreated, createSessionResponse{ID: sess.ID, Metrics: metrics})
}

func (app *App) RemoveSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !app.Sessions.Remove(id) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *App) StartSessionHandler(w http.ResponseWriter, r *http.Request) {
	sess, exists := app.Sessions.Get(chi.URLParam(r, "id"))
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	sess.Start()
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (app *App) StopSessionHandler(w http.ResponseWriter, r *http.Request) {
	sess, exists := app.Sessions.Get(chi.URLParam(r, "id"))
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	sess.Stop()
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// DetectionsHandler is the scanner-facing ingest endpoint, called once per
// processed camera frame. The session decides whether the frame is accepted;
// the scanner keeps posting regardless of scanning state.
func (app *App) DetectionsHandler(w http.ResponseWriter, r *http.Request) {
	sess, exists := app.Sessions.Get(chi.URLParam(r, "id"))
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var frame models.DetectionFrame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		http.Error(w, "Invalid detection frame", http.StatusBadRequest)
		return
	}

	sess.OnDetectionFrame(frame)
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (app *App) SessionStateHandler(w http.ResponseWriter, r *http.Request) {
	sess, exists := app.Sessions.Get(chi.URLParam(r, "id"))
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// SessionStreamHandler streams state snapshots over SSE so the presentation
// layer can redraw without polling. The current snapshot is sent on connect,
// then every published update until the client goes away.
func (app *App) SessionStreamHandler(w http.ResponseWriter, r *http.Request) {
	sess, exists := app.Sessions.Get(chi.URLParam(r, "id"))
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	updates := sess.Updates().Subscribe()
	defer sess.Updates().Unsubscribe(updates)

	clientGone := r.Context().Done()

	writeSSE := func(snap session.Snapshot) {
		data, err := json.Marshal(snap)
		if err != nil {
			log.Printf("[API] Error marshaling snapshot: %v", err)
			return
		}
		fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
		flusher.Flush()
	}

	writeSSE(sess.Snapshot())

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				return
			}
			writeSSE(snap)
		case <-clientGone:
			return
		}
	}
}

type createProfileRequest struct {
	Name    string                `json:"name"`
	Metrics models.DisplayMetrics `json:"metrics"`
}

func (app *App) CreateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	profile := models.NewDisplayProfile(req.Name, req.Metrics)
	if err := app.Profiles.Insert(r.Context(), profile); err != nil {
		log.Printf("[API] Error inserting profile: %v", err)
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (app *App) ListProfilesHandler(w http.ResponseWriter, r *http.Request) {
	profiles, err := app.Profiles.List(r.Context())
	if err != nil {
		log.Printf("[API] Error listing profiles: %v", err)
		http.Error(w, "Failed to list profiles", http.StatusInternalServerError)
		return
	}

	if profiles == nil {
		profiles = []models.DisplayProfile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (app *App) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := app.Profiles.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("[API] Error getting profile: %v", err)
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (app *App) DeleteProfileHandler(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.Profiles.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("[API] Error deleting profile: %v", err)
		http.Error(w, "Failed to delete profile", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
