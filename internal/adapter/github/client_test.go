package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUser(t *testing.T) {
	t.Parallel()

	followers := 42

	tests := []struct {
		name       string
		doer       *mock.HTTPDoer
		username   string
		want       *app.AccountData
		wantErr    bool
		wantStatus int
	}{
		{
			name:     "empty username",
			username: "",
			wantErr:  true,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{
					[]byte(`{
						"login": "octocat",
						"id": 583231,
						"followers": 42,
						"created_at": "2011-01-25T18:44:36Z"
					}`),
				},
			},
			username: "octocat",
			want: &app.AccountData{
				CreatedAt: "2011-01-25T18:44:36Z",
				Followers: &followers,
			},
		},
		{
			name: "missing fields",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"login": "octocat"}`)},
			},
			username: "octocat",
			want:     &app.AccountData{},
		},
		{
			name: "not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
				Bodies:   [][]byte{[]byte(`{"message":"Not Found"}`)},
			},
			username:   "ghost",
			wantErr:    true,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "rate limited",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers:  []http.Header{{"X-Ratelimit-Remaining": []string{"0"}}},
			},
			username:   "octocat",
			wantErr:    true,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "invalid json",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{`)},
			},
			username: "octocat",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "https://raw.fake", "master", "token")
			got, err := c.User(context.Background(), tt.username)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			if tt.wantStatus != 0 {
				use, ok := app.AsUpstreamStatusError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantStatus, use.StatusCode)
			}

			if tt.doer == nil {
				return
			}

			reqs := tt.doer.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, "https://fake/users/"+tt.username, reqs[0].URL.String())
			checkAPIHeaders(reqs[0], t)
		})
	}
}

func TestClientRepositories(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{
			[]byte(`[
				{
					"id": 1,
					"name": "hello",
					"full_name": "octocat/hello",
					"stargazers_count": 12,
					"forks_count": 3
				},
				{
					"id": 2,
					"name": "spoon",
					"full_name": "octocat/spoon",
					"stargazers_count": 0,
					"forks_count": 0
				}
			]`),
		},
	}
	c := NewClient(doer, "https://fake/", "https://raw.fake", "master", "token")

	got, err := c.Repositories(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, []app.Repository{
		{Name: "hello", FullName: "octocat/hello", Stars: 12, Forks: 3},
		{Name: "spoon", FullName: "octocat/spoon"},
	}, got)

	reqs := doer.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "https://fake/users/octocat/repos", reqs[0].URL.String())
	checkAPIHeaders(reqs[0], t)

	failing := &mock.HTTPDoer{Statuses: []int{http.StatusInternalServerError}}
	c = NewClient(failing, "https://fake", "https://raw.fake", "master", "")
	_, err = c.Repositories(context.Background(), "octocat")
	require.Error(t, err)
	use, ok := app.AsUpstreamStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, use.StatusCode)
	assert.Empty(t, failing.Requests()[0].Header.Get("Authorization"))
}

func TestClientCommitCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doer     *mock.HTTPDoer
		fullName string
		want     int
		wantErr  bool
	}{
		{
			name:     "invalid full name",
			fullName: "octocat",
			wantErr:  true,
		},
		{
			name:     "empty owner",
			fullName: "/hello",
			wantErr:  true,
		},
		{
			name: "three commits",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`[{"sha":"a"},{"sha":"b"},{"sha":"c"}]`)},
			},
			fullName: "octocat/hello",
			want:     3,
		},
		{
			name: "empty list",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`[]`)},
			},
			fullName: "octocat/hello",
			want:     0,
		},
		{
			name: "empty repository",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusConflict},
				Bodies:   [][]byte{[]byte(`{"message":"Git Repository is empty."}`)},
			},
			fullName: "octocat/hello",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "https://raw.fake", "master", "token")
			got, err := c.CommitCount(context.Background(), tt.fullName)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			if tt.doer == nil {
				return
			}

			reqs := tt.doer.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, "https://fake/repos/"+tt.fullName+"/commits", reqs[0].URL.String())
			checkAPIHeaders(reqs[0], t)
		})
	}
}

func TestClientReadme(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte("# Hello\n\nA tiny project.")},
	}
	c := NewClient(doer, "https://fake", "https://raw.fake/", "main", "token")

	got, err := c.Readme(context.Background(), "octocat/hello")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n\nA tiny project.", got)

	reqs := doer.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "https://raw.fake/octocat/hello/main/README.md", reqs[0].URL.String())
	assert.Empty(t, reqs[0].Header.Get("Authorization"))

	missing := &mock.HTTPDoer{
		Statuses: []int{http.StatusNotFound},
		Bodies:   [][]byte{[]byte("404: Not Found")},
	}
	c = NewClient(missing, "https://fake", "https://raw.fake", "master", "token")
	_, err = c.Readme(context.Background(), "octocat/hello")
	use, ok := app.AsUpstreamStatusError(err)
	require.True(t, ok)
	assert.Equal(t, "404: Not Found", use.Body)
}

func TestClientResponseTooLarge(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{make([]byte, 1024*1024+1)},
	}
	c := NewClient(doer, "https://fake", "https://raw.fake", "master", "token")

	_, err := c.User(context.Background(), "octocat")
	require.Error(t, err)
}

func TestClientTransportError(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		DoFunc: func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	c := NewClient(doer, "https://fake", "https://raw.fake", "master", "token")

	_, err := c.User(context.Background(), "octocat")
	require.Error(t, err)
	_, ok := app.AsUpstreamStatusError(err)
	assert.False(t, ok)
}

func checkAPIHeaders(r *http.Request, t *testing.T) {
	assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
	assert.Contains(t, r.Header.Get("Authorization"), "token ")
}
