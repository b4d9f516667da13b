package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/api/http/mock"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMuxConfig() MuxConfig {
	return MuxConfig{
		Timeout:      time.Second,
		AllowOrigins: []string{"http://localhost:5173", "http://localhost:5174"},
	}
}

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := 5 * time.Millisecond

	tests := []struct {
		name           string
		method         string
		path           string
		muxTimeout     time.Duration
		wantStatusCode int
	}{
		{
			name:           "valid analyze request",
			method:         http.MethodPost,
			path:           "/analyze-github-profile",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "service exceeding handler timeout",
			method:         http.MethodPost,
			path:           "/analyze-github-profile",
			muxTimeout:     time.Microsecond,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "invalid path",
			method:         http.MethodGet,
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			service.EXPECT().
				AnalyzeProfile(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, profile app.Profile) (*app.Analysis, error) {
					time.Sleep(serviceDelay)

					select {
					case <-ctx.Done():
						return nil, errors.New("context timeout")
					default:
						return &app.Analysis{Username: profile.Username}, nil
					}
				}).
				MaxTimes(1)

			cfg := testMuxConfig()
			cfg.Timeout = tt.muxTimeout
			server := httptest.NewServer(NewMux(service, cfg, newTestLogger()))
			defer server.Close()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, strings.NewReader(`{"username":"octocat","user_id":"u1"}`))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}

func TestMuxCORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := NewMux(mock.NewMockService(ctrl), testMuxConfig(), newTestLogger())

	req, _ := http.NewRequest(http.MethodOptions, "/analyze-github-profile", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))

	req, _ = http.NewRequest(http.MethodOptions, "/update-points", nil)
	req.Header.Set("Origin", "http://localhost:5174")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-firebase-appcheck,x-client-version")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5174", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "content-type,x-firebase-appcheck,x-client-version", w.Header().Get("Access-Control-Allow-Headers"))

	req, _ = http.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMuxRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := NewMux(mock.NewMockService(ctrl), testMuxConfig(), newTestLogger())

	req, _ := http.NewRequest(http.MethodGet, "/api/test", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req, _ = http.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}
