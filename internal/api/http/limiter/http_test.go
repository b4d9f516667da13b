package limiter

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedHTTPDoerRate(t *testing.T) {
	maxRate := 500.0
	testTime := 200 * time.Millisecond

	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, maxRate, 1)

	req, _ := http.NewRequest(http.MethodGet, "http://fake/users/octocat", nil)
	startTime := time.Now()
	var dos int
	for startTime.Add(testTime).After(time.Now()) {
		_, err := limitedDoer.Do(req)
		require.NoError(t, err)
		dos++
	}

	expectedDos := maxRate * float64(testTime) / float64(time.Second)
	diff := math.Abs(float64(dos)-expectedDos) / expectedDos
	assert.LessOrEqual(t, diff, 0.1, "unexpected number of Dos: %d, want %d", dos, int(expectedDos))
}

func TestLimitedHTTPDoerTimeout(t *testing.T) {
	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, 1, 1)

	req, _ := http.NewRequest(http.MethodGet, "http://fake/users/octocat", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	_, err := limitedDoer.Do(req)
	require.NoError(t, err)

	// Short ctx timeout and low rate limit.
	_, err = limitedDoer.Do(req)
	require.Error(t, err)
	assert.True(t, app.IsTooManyRequestsError(err))
	assert.Len(t, doer.Requests(), 1)
}

func TestLimitedHTTPDoerDisabled(t *testing.T) {
	doer := &mock.HTTPDoer{}
	assert.Same(t, doer, NewHTTPDoer(doer, 0, 1))
}
