package classifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	responseMaxSize  = 1024 * 1024
	errorBodyMaxSize = 1024 * 16
)

// errEmptyInput is returned when README content has no text left after preparation.
var errEmptyInput = errors.New("empty input text")

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// postJSON sends reqBody as json and decodes a 200 response into respBody.
func postJSON(ctx context.Context, doer HTTPDoer, url string, headers map[string]string, reqBody interface{}, respBody interface{}) error {
	data, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyMaxSize))
		return &app.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, responseMaxSize))
	if err != nil {
		return fmt.Errorf("reading http response body: %w", err)
	}
	if err := json.Unmarshal(b, respBody); err != nil {
		return fmt.Errorf("unmarshalling response: %w", err)
	}

	return nil
}
