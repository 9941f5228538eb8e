package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"AuraFM/cache"
	"AuraFM/config"
	"AuraFM/core/library"
	"AuraFM/db"
	"AuraFM/ingest"
	"AuraFM/logger"
	"AuraFM/model"
	"AuraFM/repository"
	"AuraFM/storage"

	"github.com/gorilla/mux"
	"github.com/minio/minio-go/v7"
)

// Start initializes dependencies and runs the HTTP server until interrupted.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
	})

	if err := storage.InitMinio(cfg); err != nil {
		logger.Fatal("failed to initialize MinIO", logger.ErrorField(err))
	}

	if err := db.ConnectGormDB(cfg); err != nil {
		logger.Fatal("failed to connect to database", logger.ErrorField(err))
	}
	defer db.CloseGormDB()

	if err := db.AutoMigrateModels(&model.Track{}); err != nil {
		logger.Fatal("failed to migrate schema", logger.ErrorField(err))
	}

	if err := cache.ConnectRedis(cfg); err != nil {
		logger.Warn("redis unavailable, search cache disabled", logger.ErrorField(err))
	}
	defer cache.CloseRedis()

	trackRepo := repository.NewGormTrackRepository(db.GormDB)
	lib := library.NewStore()
	loadLibrary(cfg, trackRepo, lib)

	if cfg.WatchLibrary {
		watcher, err := ingest.Watch(cfg.LibraryCSV, func(tracks []model.Track) {
			if err := trackRepo.UpsertTracks(tracks); err != nil {
				logger.Warn("failed to persist reloaded library", logger.ErrorField(err))
			}
			lib.Replace(tracks)
			if err := cache.FlushSearch(context.Background()); err != nil {
				logger.Warn("failed to flush search cache", logger.ErrorField(err))
			}
		})
		if err != nil {
			logger.Warn("library watcher disabled", logger.ErrorField(err))
		} else {
			defer watcher.Close()
		}
	}

	apiHandler := NewAPIHandler(lib, cfg)

	router := mux.NewRouter()

	// CORS middleware
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// API endpoints
	router.HandleFunc("/api/search", apiHandler.SearchHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/tracks", apiHandler.GetTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks/{uri}", apiHandler.GetTrackHandler).Methods(http.MethodGet)

	// Visualizer frame stream
	router.HandleFunc("/ws/visualizer", apiHandler.VisualizerSocketHandler)

	// Stored snapshots are proxied from MinIO.
	router.PathPrefix("/snapshots/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		objectPath := strings.TrimPrefix(r.URL.Path, "/")
		client := storage.GetMinioClient()
		if client == nil {
			http.Error(w, "object storage not available", http.StatusInternalServerError)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		object, err := client.GetObject(ctx, cfg.MinioBucket, objectPath, minio.GetObjectOptions{})
		if err != nil {
			http.Error(w, "snapshot not found", http.StatusNotFound)
			return
		}
		defer object.Close()

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=31536000")
		if _, err := io.Copy(w, object); err != nil {
			logger.Warn("error serving snapshot", logger.ErrorField(err))
		}
	})

	server := &http.Server{
		Addr:        cfg.ServerAddr,
		Handler:     router,
		ReadTimeout: 30 * time.Second,
		// No WriteTimeout: the visualizer socket streams frames indefinitely.
		IdleTimeout: 120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			logger.String("addr", cfg.ServerAddr),
			logger.Int("tracks", lib.Len()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", logger.ErrorField(err))
	}
	logger.Info("server stopped")
}

// loadLibrary fills the in-memory snapshot, preferring the database and
// falling back to a first-run CSV ingest.
func loadLibrary(cfg *config.Config, repo repository.TrackRepository, lib *library.Store) {
	tracks, err := repo.GetAllTracks()
	if err != nil {
		logger.Fatal("failed to load library from database", logger.ErrorField(err))
	}

	if len(tracks) == 0 {
		logger.Info("database empty, ingesting library CSV", logger.String("path", cfg.LibraryCSV))
		tracks, err = ingest.LoadCSV(cfg.LibraryCSV)
		if err != nil {
			logger.Fatal("failed to ingest library CSV", logger.ErrorField(err))
		}
		if err := repo.UpsertTracks(tracks); err != nil {
			logger.Fatal("failed to persist library", logger.ErrorField(err))
		}
	}

	lib.Replace(tracks)
	logger.Info("library loaded", logger.Int("tracks", lib.Len()))
}
