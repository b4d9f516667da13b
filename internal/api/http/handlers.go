package http

import (
	"net/http"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type analyzeRequest struct {
	Username string `json:"username" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
}

type repoDetail struct {
	Name       string `json:"name"`
	Stars      int    `json:"stars"`
	Forks      int    `json:"forks"`
	Commits    int    `json:"commits"`
	Difficulty string `json:"difficulty"`
}

type analyzeResponse struct {
	Username     string       `json:"username"`
	TotalRepos   int          `json:"total_repos"`
	TotalStars   int          `json:"total_stars"`
	TotalForks   int          `json:"total_forks"`
	TotalCommits int          `json:"total_commits"`
	RepoDetails  []repoDetail `json:"repo_details"`
	TotalPoints  float64      `json:"total_points"`
}

func newAnalyzeResponse(a *app.Analysis) analyzeResponse {
	details := make([]repoDetail, 0, len(a.RepoDetails))
	for _, d := range a.RepoDetails {
		details = append(details, repoDetail{
			Name:       d.Name,
			Stars:      d.Stars,
			Forks:      d.Forks,
			Commits:    d.Commits,
			Difficulty: string(d.Difficulty),
		})
	}

	return analyzeResponse{
		Username:     a.Username,
		TotalRepos:   a.TotalRepos,
		TotalStars:   a.TotalStars,
		TotalForks:   a.TotalForks,
		TotalCommits: a.TotalCommits,
		RepoDetails:  details,
		TotalPoints:  a.TotalPoints,
	}
}

type updatePointsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Points *int   `json:"points" binding:"required"`
}

type updatePointsResponse struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	NewPoints int    `json:"new_points"`
}

// NewHomeHandler creates handler greeting on the root path.
func NewHomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, messageResponse{Message: "Hello from home page"})
	}
}

// NewTestHandler creates liveness handler.
func NewTestHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, messageResponse{Message: "Hello World"})
	}
}

// NewAnalyzeProfileHandler creates handler scoring github profile.
func NewAnalyzeProfileHandler(service Service, l logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
			return
		}

		analysis, err := service.AnalyzeProfile(c.Request.Context(), app.Profile{
			Username: req.Username,
			UserID:   req.UserID,
		})
		if err != nil {
			writeError(c, requestLogger(c, l), err)
			return
		}

		c.JSON(http.StatusOK, newAnalyzeResponse(analysis))
	}
}

// NewUpdatePointsHandler creates handler acknowledging points update.
func NewUpdatePointsHandler(service Service, l logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePointsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
			return
		}

		update, err := service.UpdatePoints(c.Request.Context(), req.UserID, *req.Points)
		if err != nil {
			writeError(c, requestLogger(c, l), err)
			return
		}

		c.JSON(http.StatusOK, updatePointsResponse{
			Message:   "Points updated successfully",
			UserID:    update.UserID,
			NewPoints: update.NewPoints,
		})
	}
}

func writeError(c *gin.Context, l logrus.FieldLogger, err error) {
	switch {
	case app.IsInvalidRequestError(err):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
	case app.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, errorResponse{Detail: err.Error()})
	case app.IsInternalError(err):
		l.Errorf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: err.Error()})
	default:
		l.Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An unexpected error occurred: " + err.Error()})
	}
}
