package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github account and repository data.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer         HTTPDoer
	address      string
	rawAddress   string
	readmeBranch string
	authToken    string

	userResponseMaxSize    int
	reposResponseMaxSize   int
	commitsResponseMaxSize int
	readmeResponseMaxSize  int
	errorBodyMaxSize       int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// address is the rest api address, rawAddress serves raw repository files.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, rawAddress string, readmeBranch string, authToken string) *Client {
	c := Client{
		doer:         doer,
		address:      strings.TrimSuffix(address, "/"),
		rawAddress:   strings.TrimSuffix(rawAddress, "/"),
		readmeBranch: readmeBranch,
		authToken:    authToken,

		userResponseMaxSize:    1024 * 1024,
		reposResponseMaxSize:   1024 * 1024 * 10,
		commitsResponseMaxSize: 1024 * 1024 * 10,
		readmeResponseMaxSize:  1024 * 1024 * 5,
		errorBodyMaxSize:       1024 * 64,
	}

	return &c
}

// User returns account data of given github user.
func (c *Client) User(ctx context.Context, username string) (*app.AccountData, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	body, err := c.get(ctx, c.address+"/users/"+url.PathEscape(username), true, c.userResponseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToAccountData(), nil
}

// Repositories returns public repositories of given github user.
func (c *Client) Repositories(ctx context.Context, username string) ([]app.Repository, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	body, err := c.get(ctx, c.address+"/users/"+url.PathEscape(username)+"/repos", true, c.reposResponseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToRepositories(), nil
}

// CommitCount returns number of commits listed for given repository.
// Github lists one page of commits, so the count is bounded by the page size.
func (c *Client) CommitCount(ctx context.Context, fullName string) (int, error) {
	if err := validateFullName(fullName); err != nil {
		return 0, err
	}

	body, err := c.get(ctx, c.address+"/repos/"+fullName+"/commits", true, c.commitsResponseMaxSize)
	if err != nil {
		return 0, fmt.Errorf("making http request: %w", err)
	}

	var resp commitsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("unmarshalling response: %w", err)
	}

	return len(resp), nil
}

// Readme returns README.md content of given repository from the configured branch.
func (c *Client) Readme(ctx context.Context, fullName string) (string, error) {
	if err := validateFullName(fullName); err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/%s/%s/README.md", c.rawAddress, fullName, url.PathEscape(c.readmeBranch))
	body, err := c.get(ctx, u, false, c.readmeResponseMaxSize)
	if err != nil {
		return "", fmt.Errorf("making http request: %w", err)
	}

	return string(body), nil
}

func (c *Client) get(ctx context.Context, u string, api bool, maxBytes int) ([]byte, error) {
	if _, err := url.Parse(u); err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	if api {
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		if c.authToken != "" {
			req.Header.Set("Authorization", "token "+c.authToken)
		}
	}

	return c.makeRequest(req, maxBytes)
}

func (c *Client) makeRequest(req *http.Request, maxBytes int) ([]byte, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, int64(c.errorBodyMaxSize)))
		statusErr := &app.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, fmt.Errorf("rate limit exceeded: %w", statusErr)
		}
		return nil, statusErr
	}

	// Read one byte over the limit to tell truncated bodies apart.
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBytes)
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

func validateFullName(fullName string) error {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return app.InvalidRequestError(fmt.Sprintf("invalid repository name %q", fullName))
	}
	return nil
}
