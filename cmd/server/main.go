package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"survey_backend/internal/app/di"
	"survey_backend/internal/app/router"
	authadapters "survey_backend/internal/feature/auth/adapters"
	authhandler "survey_backend/internal/feature/auth/transport/handler"
	authusecase "survey_backend/internal/feature/auth/usecase"
	mailhandler "survey_backend/internal/feature/mail/transport/handler"
	mailusecase "survey_backend/internal/feature/mail/usecase"
	surveyhandler "survey_backend/internal/feature/survey/transport/handler"
	surveyusecase "survey_backend/internal/feature/survey/usecase"
	infradb "survey_backend/internal/platform/db"
	infraredis "survey_backend/internal/platform/redis"
	jwtmw "survey_backend/internal/platform/jwt"
	"survey_backend/internal/shared/latency"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional: the submission cache degrades to direct DB reads)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
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
	userRepo := authadapters.NewUserGorm(db)
	submissionRepo := di.NewSubmissionRepository(rdb, db, 5*time.Minute)

	// Token issuer
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	issuer := jwtmw.NewGenerator(secret, tokenExpiration())

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, issuer)
	surveyUC := surveyusecase.NewSurveyUsecase(submissionRepo)
	mailUC := mailusecase.NewMailUsecase(di.NewMailer())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	surveyH := surveyhandler.NewSurveyHandler(surveyUC)
	emailH := mailhandler.NewEmailHandler(mailUC)

	r := router.NewRouter(authH, surveyH, emailH, latency.FromEnv())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// tokenExpiration reads JWT_EXPIRATION (a Go duration, e.g. "24h") and
// falls back to 24 hours.
func tokenExpiration() time.Duration {
	raw := os.Getenv("JWT_EXPIRATION")
	if raw == "" {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[WARN] invalid JWT_EXPIRATION %q; using 24h", raw)
		return 24 * time.Hour
	}
	return d
}
