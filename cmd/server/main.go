package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"portal_backend/internal/app/di"
	"portal_backend/internal/app/router"
	authadapters "portal_backend/internal/feature/auth/adapters"
	authhandler "portal_backend/internal/feature/auth/transport/handler"
	authusecase "portal_backend/internal/feature/auth/usecase"
	settingshandler "portal_backend/internal/feature/settings/transport/handler"
	settingsusecase "portal_backend/internal/feature/settings/usecase"
	userdataadapters "portal_backend/internal/feature/userdata/adapters"
	userdatahandler "portal_backend/internal/feature/userdata/transport/handler"
	userdatausecase "portal_backend/internal/feature/userdata/usecase"
	infradb "portal_backend/internal/platform/db"
	"portal_backend/internal/platform/hash"
	infraredis "portal_backend/internal/platform/redis"
	"portal_backend/internal/shared/ratelimiter"
)

// defaultSessionTTL bounds how long an idle session survives.
const defaultSessionTTL = 24 * time.Hour

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to MySQL sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	userDataRepo := userdataadapters.NewUserDataMySQL(db)

	// Usecase
	sessionMgr := authusecase.NewSessionManager(sessionRepo, sessionTTL())
	authUC := authusecase.NewAuthUsecase(userRepo, hash.NewBcryptHasher(0), sessionMgr)
	themeUC := settingsusecase.NewThemeUsecase(sessionMgr)
	userDataUC := userdatausecase.NewUserDataUsecase(userDataRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, sessionMgr, themeUC)
	settingsH := settingshandler.NewSettingsHandler(themeUC)
	userDataH := userdatahandler.NewUserDataHandler(userDataUC)

	// Data API rate limit: 100 requests per 15 minutes per client IP.
	limiter := ratelimiter.NewRateLimiter(100, 15*time.Minute)

	r := router.NewRouter(authH, settingsH, userDataH, sessionMgr, limiter)

	addr := ":" + port()
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

// port returns the listen port, defaulting to 8080.
func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// sessionTTL returns the configured session lifetime.
func sessionTTL() time.Duration {
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
		log.Println("[WARN] Invalid SESSION_TTL, using default.")
	}
	return defaultSessionTTL
}
