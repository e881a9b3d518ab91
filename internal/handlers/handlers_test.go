package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevin-411/college-network-app/internal/auth"
	"github.com/kevin-411/college-network-app/internal/db"
	"github.com/kevin-411/college-network-app/internal/models"
	"github.com/kevin-411/college-network-app/internal/posts"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	dbc, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbc.Close() })
	require.NoError(t, db.Migrate(dbc))

	logger := zap.NewNop()
	sessions := auth.NewManager(auth.NewDirectory(0), db.NewSnapshots(dbc), logger)
	store := posts.NewStore(posts.NewSeedBackend(0), logger)
	return New(sessions, store, logger)
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func login(t *testing.T, h *Handler, email, password string) string {
	t.Helper()
	w := doJSON(t, h.Login, http.MethodPost, "/api/login", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var sess auth.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	require.NotEmpty(t, sess.Token)
	return sess.Token
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("demo login succeeds", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h.Login, http.MethodPost, "/api/login", "",
			`{"email":"someone@example.edu","password":"pw"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var sess auth.Session
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
		assert.False(t, sess.IsAdmin)
		require.NotNil(t, sess.User)
		assert.Equal(t, "sarah_chen", sess.User.Username)
	})

	t.Run("empty credentials rejected", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h.Login, http.MethodPost, "/api/login", "", `{"email":"","password":""}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin pair is admin", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h.Login, http.MethodPost, "/api/login", "",
			`{"email":"admin@collegeNetwork.edu","password":"admin123"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var sess auth.Session
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
		assert.True(t, sess.IsAdmin)
	})
}

func TestCreatePostEndpoint(t *testing.T) {
	t.Run("requires auth", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h.RequireAuth(h.CreatePost), http.MethodPost, "/api/posts", "",
			`{"content":"hello"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stamps the acting user as author", func(t *testing.T) {
		h := newTestHandler(t)
		token := login(t, h, "someone@example.edu", "pw")

		w := doJSON(t, h.RequireAuth(h.CreatePost), http.MethodPost, "/api/posts", token,
			`{"content":"hello timeline","tags":["Test"]}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var p models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "hello timeline", p.Content)
		assert.Equal(t, "sarah_chen", p.Author.Username)
		assert.Equal(t, "Stanford University", p.College)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		h := newTestHandler(t)
		token := login(t, h, "someone@example.edu", "pw")

		w := doJSON(t, h.RequireAuth(h.CreatePost), http.MethodPost, "/api/posts", token,
			`{"content":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLikeEndpoint(t *testing.T) {
	h := newTestHandler(t)
	token := login(t, h, "someone@example.edu", "pw")

	before := h.posts.Posts()[0]
	w := doJSON(t, h.RequireAuth(h.PostByID), http.MethodPost, "/api/posts/"+before.ID+"/like", token, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, before.Likes+1, h.posts.Posts()[0].Likes)
}

func TestSearchEndpoints(t *testing.T) {
	t.Run("overlay falls back to trending under threshold", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h.SearchOverlay, http.MethodGet, "/api/search?q=ai", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Users    []models.User `json:"users"`
			Posts    []models.Post `json:"posts"`
			Tags     []string      `json:"tags"`
			Trending []string      `json:"trending"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.Users)
		assert.Empty(t, body.Posts)
		assert.Empty(t, body.Tags)
		assert.Equal(t, []string{"MachineLearning", "StudyGroup", "MIT", "AI", "Neuroscience"}, body.Trending)
	})

	t.Run("dedicated page matches short queries and echoes filters", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h.SearchFull, http.MethodGet,
			"/api/search/full?q=AI&filter=Verified+Only&filter=My+College", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Posts   []models.Post `json:"posts"`
			Tags    []string      `json:"tags"`
			Filters []string      `json:"filters"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Posts)
		assert.Contains(t, body.Tags, "AI")
		assert.Equal(t, []string{"Verified Only", "My College"}, body.Filters)
	})
}

func TestAdminStatsEndpoint(t *testing.T) {
	t.Run("forbidden for members", func(t *testing.T) {
		h := newTestHandler(t)
		token := login(t, h, "someone@example.edu", "pw")
		w := doJSON(t, h.RequireAdmin(h.AdminStats), http.MethodGet, "/api/admin/stats", token, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("console counts for the admin", func(t *testing.T) {
		h := newTestHandler(t)
		token := login(t, h, "admin@collegeNetwork.edu", "admin123")
		w := doJSON(t, h.RequireAdmin(h.AdminStats), http.MethodGet, "/api/admin/stats", token, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]int
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 3, body["posts"])
		assert.Equal(t, 5, body["colleges"])
	})
}

func TestMeEndpoint(t *testing.T) {
	t.Run("reports the current session", func(t *testing.T) {
		h := newTestHandler(t)
		login(t, h, "someone@example.edu", "pw")

		var sess auth.Session
		w := doJSON(t, h.Me, http.MethodGet, "/api/me", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
		assert.True(t, sess.IsAuthenticated)
	})

	t.Run("rejects non-GET methods", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h.Me, http.MethodPost, "/api/me", "", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	h := newTestHandler(t)
	login(t, h, "someone@example.edu", "pw")

	w := doJSON(t, h.Logout, http.MethodPost, "/api/logout", "", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	var sess auth.Session
	me := doJSON(t, h.Me, http.MethodGet, "/api/me", "", "")
	require.NoError(t, json.Unmarshal(me.Body.Bytes(), &sess))
	assert.False(t, sess.IsAuthenticated)
	assert.Nil(t, sess.User)
}
