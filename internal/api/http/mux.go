package http

import (
	"context"
	"net/http"
	"time"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Service analyzes github profiles.
//go:generate mockgen -destination mock/service.go -package mock github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/http Service
type Service interface {
	AnalyzeProfile(ctx context.Context, profile app.Profile) (*app.Analysis, error)
	UpdatePoints(ctx context.Context, userID string, points int) (*app.PointsUpdate, error)
}

// MuxConfig configures router of app's http server.
type MuxConfig struct {
	Timeout      time.Duration
	AllowOrigins []string
}

// NewMux creates router for app's http server.
func NewMux(service Service, cfg MuxConfig, l logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		NewRequestIDMiddleware(),
		NewLoggingMiddleware(l),
		NewRequestedHeadersMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
			ExposeHeaders:    []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		NewTimeoutMiddleware(cfg.Timeout),
	)

	r.POST("/", NewHomeHandler())
	r.GET("/api/test", NewTestHandler())
	r.POST("/analyze-github-profile", NewAnalyzeProfileHandler(service, l))
	r.POST("/update-points", NewUpdatePointsHandler(service, l))

	return r
}
