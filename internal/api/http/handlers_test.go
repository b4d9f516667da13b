package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/http/mock"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestStaticHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := NewMux(mock.NewMockService(ctrl), testMuxConfig(), newTestLogger())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/", nil)
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello from home page"}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/test", nil)
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, w.Body.String())
}

func TestAnalyzeProfileHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mock.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid response",
			body: `{"username":"octocat","user_id":"u1"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeProfile(gomock.Any(), app.Profile{Username: "octocat", UserID: "u1"}).
					Return(&app.Analysis{
						Username:     "octocat",
						TotalRepos:   2,
						TotalStars:   60,
						TotalForks:   5,
						TotalCommits: 40,
						RepoDetails: []app.RepositoryDetail{
							{Name: "hello", Stars: 50, Forks: 4, Commits: 40, Difficulty: app.DifficultyHard, Points: 230},
						},
						TotalPoints: 301.5,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"username": "octocat",
				"total_repos": 2,
				"total_stars": 60,
				"total_forks": 5,
				"total_commits": 40,
				"repo_details": [
					{"name": "hello", "stars": 50, "forks": 4, "commits": 40, "difficulty": "hard"}
				],
				"total_points": 301.5
			}`,
		},
		{
			name: "no repositories",
			body: `{"username":"octocat","user_id":"u1"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeProfile(gomock.Any(), gomock.Any()).
					Return(&app.Analysis{Username: "octocat", TotalPoints: 12}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"username":"octocat","total_repos":0,"total_stars":0,"total_forks":0,"total_commits":0,"repo_details":[],"total_points":12}`,
		},
		{
			name:       "missing user id",
			body:       `{"username":"octocat"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "empty username",
			body:       `{"username":"","user_id":"u1"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "profile not found",
			body: `{"username":"ghost","user_id":"u1"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeProfile(gomock.Any(), gomock.Any()).
					Return(nil, app.NotFoundError("GitHub profile not found. Status code: 404, Response: Not Found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"GitHub profile not found. Status code: 404, Response: Not Found"}`,
		},
		{
			name: "calculation error",
			body: `{"username":"octocat","user_id":"u1"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeProfile(gomock.Any(), gomock.Any()).
					Return(nil, app.InternalError("Error calculating points: boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Error calculating points: boom"}`,
		},
		{
			name: "unexpected error",
			body: `{"username":"octocat","user_id":"u1"}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeProfile(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"An unexpected error occurred: connection refused"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			mux := NewMux(s, testMuxConfig(), newTestLogger())
			req, _ := http.NewRequest(http.MethodPost, "/analyze-github-profile", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"detail"`)
			}
		})
	}
}

func TestUpdatePointsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mock.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid request",
			body: `{"user_id":"u1","points":120}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					UpdatePoints(gomock.Any(), "u1", 120).
					Return(&app.PointsUpdate{UserID: "u1", NewPoints: 120}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Points updated successfully","user_id":"u1","new_points":120}`,
		},
		{
			name: "zero points",
			body: `{"user_id":"u1","points":0}`,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					UpdatePoints(gomock.Any(), "u1", 0).
					Return(&app.PointsUpdate{UserID: "u1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Points updated successfully","user_id":"u1","new_points":0}`,
		},
		{
			name:       "missing points",
			body:       `{"user_id":"u1"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "points not a number",
			body:       `{"user_id":"u1","points":"many"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			mux := NewMux(s, testMuxConfig(), newTestLogger())
			req, _ := http.NewRequest(http.MethodPost, "/update-points", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
