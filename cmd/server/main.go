package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"scanoverlay/internal/api"
	"scanoverlay/internal/database"
	"scanoverlay/internal/models"
	"scanoverlay/internal/session"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./scanoverlay.db"
	}

	clearDelay := session.DefaultClearDelay
	if env := os.Getenv("CLEAR_DELAY_MS"); env != "" {
		ms, err := strconv.Atoi(env)
		if err != nil {
			log.Fatal("Invalid CLEAR_DELAY_MS:", err)
		}
		clearDelay = time.Duration(ms) * time.Millisecond
	}

	defaultMetrics := models.DisplayMetrics{
		ScreenWidth:  parseFloatEnv("SCREEN_WIDTH", 1080),
		ScreenHeight: parseFloatEnv("SCREEN_HEIGHT", 2400),
		PixelRatio:   parseFloatEnv("PIXEL_RATIO", 3),
	}

	db, err := database.NewDB(database.Config{Path: dbPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	profileRepo := database.NewProfileRepo(db)
	sessions := session.NewManager(clearDelay, session.SystemClock())
	defer sessions.Shutdown()

	app := &api.App{
		Sessions:       sessions,
		Profiles:       profileRepo,
		DefaultMetrics: defaultMetrics,
	}

	router := api.NewRouter(app)

	log.Printf("Server starting on port %s", port)
	log.Printf("Database path: %s", dbPath)
	log.Printf("Clear delay: %v", clearDelay)
	log.Printf("Default display: %gx%g @%gx",
		defaultMetrics.ScreenWidth, defaultMetrics.ScreenHeight, defaultMetrics.PixelRatio)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}

func parseFloatEnv(key string, fallback float64) float64 {
	env := os.Getenv(key)
	if env == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(env, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}
