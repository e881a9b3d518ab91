package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kevin-411/college-network-app/internal/auth"
	"github.com/kevin-411/college-network-app/internal/config"
	"github.com/kevin-411/college-network-app/internal/db"
	"github.com/kevin-411/college-network-app/internal/handlers"
	"github.com/kevin-411/college-network-app/internal/posts"
)

func main() {
	cfgPath := flag.String("config", "./config.yaml", "path to config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database), 0755); err != nil {
		logger.Fatal("creating data dir", zap.Error(err))
	}

	dbc, err := db.Open(cfg.Database)
	if err != nil {
		logger.Fatal("opening database", zap.Error(err))
	}
	defer dbc.Close()

	if err := db.Migrate(dbc); err != nil {
		logger.Fatal("migrating database", zap.Error(err))
	}

	sessions := auth.NewManager(auth.NewDirectory(cfg.Latency()), db.NewSnapshots(dbc), logger)
	store := posts.NewStore(posts.NewSeedBackend(cfg.Latency()), logger)

	h := handlers.New(sessions, store, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", h.Login)
	mux.HandleFunc("/api/logout", h.Logout)
	mux.HandleFunc("/api/me", h.Me)
	mux.HandleFunc("/api/profile", h.RequireAuth(h.UpdateProfile))

	mux.HandleFunc("/api/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.RequireAuth(h.CreatePost)(w, r)
			return
		}
		h.Posts(w, r)
	})
	mux.HandleFunc("/api/posts/refresh", h.RefreshPosts)
	mux.HandleFunc("/api/posts/", h.RequireAuth(h.PostByID))

	mux.HandleFunc("/api/search", h.SearchOverlay)
	mux.HandleFunc("/api/search/full", h.SearchFull)
	mux.HandleFunc("/api/trending", h.Trending)

	mux.HandleFunc("/api/colleges", h.Colleges)
	mux.HandleFunc("/api/messages", h.RequireAuth(h.Messages))

	mux.HandleFunc("/api/admin/stats", h.RequireAdmin(h.AdminStats))

	logger.Info("listening", zap.String("addr", cfg.Addr))
	handler := handlers.WithRecover(handlers.WithLogging(mux, logger), logger)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
