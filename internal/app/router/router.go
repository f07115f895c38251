// Package router wires the HTTP routes to their handlers.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "survey_backend/internal/feature/auth/transport/handler"
	emailhandler "survey_backend/internal/feature/mail/transport/handler"
	surveyhandler "survey_backend/internal/feature/survey/transport/handler"
	"survey_backend/internal/platform/http/handler"
	jwtmw "survey_backend/internal/platform/jwt"
	"survey_backend/internal/shared/latency"
)

// NewRouter builds the gin engine with all routes registered.
// simulatedDelay is applied in front of every route (zero disables it).
func NewRouter(auth *authhandler.AuthHandler, survey *surveyhandler.SurveyHandler,
	email *emailhandler.EmailHandler, simulatedDelay time.Duration) *gin.Engine {
	r := gin.Default()

	// Middleware must be in place before the first route is registered:
	// gin snapshots each route's handler chain at registration time, so
	// anything added later never runs for these routes.
	r.Use(cors.Default())
	r.Use(latency.Middleware(simulatedDelay))

	// No authentication
	r.GET("/healthz", handler.Health)

	a := r.Group("/auth")
	{
		a.POST("/register", auth.Register)
		a.POST("/login", auth.Login)
		// Password-reset flow: verify the email, then change the password.
		a.POST("/verify-email", auth.VerifyEmail)
		a.POST("/change-password", auth.ChangePassword)
	}

	// The has-answered check is readable without a token; an anonymous
	// caller simply has not answered.
	r.GET("/survey/check", jwtmw.AuthOptional(), survey.Check)

	// Token required
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/survey/submit", survey.Submit)
		protected.POST("/email/send-survey", email.SendSurvey)
	}

	return r
}
