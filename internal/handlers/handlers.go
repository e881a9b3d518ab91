// Package handlers is the HTTP boundary toward the view layer. Handlers
// stay thin: they decode intents, forward them to the stores, and render
// store state as JSON. No business logic lives here.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kevin-411/college-network-app/internal/auth"
	"github.com/kevin-411/college-network-app/internal/posts"
	"github.com/kevin-411/college-network-app/internal/search"
	"github.com/kevin-411/college-network-app/internal/seed"
)

type Handler struct {
	sessions *auth.Manager
	posts    *posts.Store
	log      *zap.Logger
}

func New(sessions *auth.Manager, posts *posts.Store, log *zap.Logger) *Handler {
	return &Handler{sessions: sessions, posts: posts, log: log}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("encoding response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) authed(r *http.Request) bool {
	tok := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	cur := h.sessions.Current()
	return cur.IsAuthenticated && tok != "" && tok == cur.Token
}

func (h *Handler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authed(r) {
			h.writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func (h *Handler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authed(r) || !h.sessions.Current().IsAdmin {
			h.writeError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// -------- Session

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Bad request")
		return
	}
	if !h.sessions.Login(r.Context(), strings.TrimSpace(body.Email), body.Password) {
		h.writeError(w, http.StatusUnauthorized, "Wrong email or password")
		return
	}
	h.writeJSON(w, http.StatusOK, h.sessions.Current())
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	h.sessions.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, h.sessions.Current())
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	var up auth.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		h.writeError(w, http.StatusBadRequest, "Bad request")
		return
	}
	h.sessions.UpdateProfile(up)
	h.writeJSON(w, http.StatusOK, h.sessions.Current())
}

// -------- Timeline

func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, map[string]any{
			"posts":   h.posts.Posts(),
			"loading": h.posts.Loading(),
			"error":   h.posts.Err(),
		})
	case http.MethodPost:
		h.CreatePost(w, r)
	default:
		h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	}
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var draft posts.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.writeError(w, http.StatusBadRequest, "Bad request")
		return
	}
	if strings.TrimSpace(draft.Content) == "" {
		h.writeError(w, http.StatusBadRequest, "Content required")
		return
	}
	// The author is whoever is acting; drafts never name someone else.
	cur := h.sessions.Current()
	if cur.User != nil {
		draft.AuthorID = cur.User.ID
		draft.Author = *cur.User
		draft.College = cur.User.College
	}
	p, ok := h.posts.Create(r.Context(), draft)
	if !ok {
		h.writeError(w, http.StatusBadGateway, h.posts.Err())
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) RefreshPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	h.posts.FetchAll(r.Context())
	if msg := h.posts.Err(); msg != "" {
		h.writeError(w, http.StatusBadGateway, msg)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"posts": h.posts.Posts()})
}

// PostByID routes /api/posts/{id} and /api/posts/{id}/like.
func (h *Handler) PostByID(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/posts/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		h.writeError(w, http.StatusNotFound, "Not found")
		return
	}
	id := parts[0]

	if len(parts) == 2 && parts[1] == "like" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}
		h.posts.Like(id)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var up posts.PostUpdate
		if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
			h.writeError(w, http.StatusBadRequest, "Bad request")
			return
		}
		h.posts.Update(id, up)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		h.posts.Remove(id)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	}
}

// -------- Search

func (h *Handler) snapshot() search.Snapshot {
	return search.Snapshot{Users: seed.Users(), Posts: h.posts.Posts()}
}

// SearchOverlay is the capped instant search. Sub-threshold queries get
// the fixed trending list instead of computed results.
func (h *Handler) SearchOverlay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	res := search.Overlay(q, h.snapshot())
	h.writeJSON(w, http.StatusOK, map[string]any{
		"users":    res.Users,
		"posts":    res.Posts,
		"tags":     res.Tags,
		"trending": search.Trending(),
	})
}

// SearchFull is the dedicated page: uncapped, with the toggle filters
// tracked from query params. The selection is echoed back but does not
// restrict results.
func (h *Handler) SearchFull(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var filters search.Filters
	for _, f := range r.URL.Query()["filter"] {
		filters.Toggle(search.Filter(f))
	}
	res := search.Search(q, h.snapshot(), search.Caps{})
	h.writeJSON(w, http.StatusOK, map[string]any{
		"users":       res.Users,
		"posts":       res.Posts,
		"tags":        res.Tags,
		"filters":     filters.Selected(),
		"popularTags": search.PopularTags(),
	})
}

func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"trending": search.Trending()})
}

// -------- Directory surfaces

func (h *Handler) Colleges(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"colleges": seed.Colleges()})
}

func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"messages": seed.Messages()})
}

// AdminStats is a read-only console view over the same stores.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	all := h.posts.Posts()
	likes := 0
	for _, p := range all {
		likes += p.Likes
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"users":    len(seed.Users()),
		"posts":    len(all),
		"likes":    likes,
		"colleges": len(seed.Colleges()),
	})
}
